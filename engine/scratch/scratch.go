// Package scratch holds package-level reusable marshal buffers for the
// batched SDL draw calls (single-threaded usage). Initialize once with
// Init(capacity). Reset() every frame. The batched primitive path hands
// SDL one contiguous array instead of issuing per-primitive calls, so
// these buffers are on the hot path.
package scratch

import "github.com/veandco/go-sdl2/sdl"

var (
	points []sdl.Point
	rects  []sdl.Rect
)

// Init sets up the global scratch buffers. Call once at startup.
// capacity is in entries; <= 0 picks a default.
func Init(capacity int) {
	if capacity <= 0 {
		capacity = 256
	}
	points = make([]sdl.Point, 0, capacity)
	rects = make([]sdl.Rect, 0, capacity)
}

// Reset clears buffer lengths without freeing memory.
// Call this once per frame, before any drawing.
func Reset() {
	points = points[:0]
	rects = rects[:0]
}

// Points returns a slice of n points carved from the frame buffer.
// Contents are unspecified; callers fill every entry. The slice is valid
// until the next Reset.
func Points(n int) []sdl.Point {
	if points == nil {
		Init(0)
	}
	start := len(points)
	if start+n > cap(points) {
		grown := make([]sdl.Point, len(points), nextCap(cap(points), start+n))
		copy(grown, points)
		points = grown
	}
	points = points[:start+n]
	return points[start : start+n]
}

// Rects returns a slice of n rects carved from the frame buffer.
// Contents are unspecified; callers fill every entry. The slice is valid
// until the next Reset.
func Rects(n int) []sdl.Rect {
	if rects == nil {
		Init(0)
	}
	start := len(rects)
	if start+n > cap(rects) {
		grown := make([]sdl.Rect, len(rects), nextCap(cap(rects), start+n))
		copy(grown, rects)
		rects = grown
	}
	rects = rects[:start+n]
	return rects[start : start+n]
}

// PointCap reports the current point capacity. Useful for tuning.
func PointCap() int { return cap(points) }

// RectCap reports the current rect capacity.
func RectCap() int { return cap(rects) }

func nextCap(cur, need int) int {
	next := cur * 2
	if next < need {
		next = need
	}
	return next
}
