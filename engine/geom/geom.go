package geom

import "github.com/veandco/go-sdl2/sdl"

// Point is a 2D pixel coordinate.
type Point struct {
	X, Y int32
}

// Size is a width/height pair in pixels.
type Size struct {
	W, H int32
}

// IsZero reports whether no size has been set.
func (s Size) IsZero() bool { return s.W == 0 && s.H == 0 }

// Rect is an (x, y, w, h) pixel rectangle.
type Rect struct {
	X, Y, W, H int32
}

// Area is the corner form (x0, y0, x1, y1) of a rectangle.
type Area struct {
	X0, Y0, X1, Y1 int32
}

// AreaOf derives the corner form from a position and size.
func AreaOf(x, y, w, h int32) Area {
	return Area{X0: x, Y0: y, X1: x + w, Y1: y + h}
}

// SDL returns the native rect form.
func (r Rect) SDL() sdl.Rect { return sdl.Rect{X: r.X, Y: r.Y, W: r.W, H: r.H} }

// SDL returns the native point form.
func (p Point) SDL() sdl.Point { return sdl.Point{X: p.X, Y: p.Y} }
