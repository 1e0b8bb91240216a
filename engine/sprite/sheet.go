package sprite

import (
	"github.com/sorenkal/fjord/engine/geom"
	"github.com/sorenkal/fjord/engine/gfx"
)

// Frame describes a source sub-rect of a sprite-sheet texture.
type Frame struct {
	Source gfx.TextureSource
	Rect   geom.Rect
}

// FrameAt builds a frame from pixel coordinates within an atlas.
func FrameAt(src gfx.TextureSource, x, y, w, h int32) Frame {
	return Frame{Source: src, Rect: geom.Rect{X: x, Y: y, W: w, H: h}}
}

// FrameGrid builds a frame from tile grid coordinates (cx, cy) of cell
// size (cw, ch).
func FrameGrid(src gfx.TextureSource, cx, cy, cw, ch int32) Frame {
	return FrameAt(src, cx*cw, cy*ch, cw, ch)
}

// Draw copies the frame to (x, y) at its native cell size.
func (f Frame) Draw(ctx *gfx.RenderContext, x, y int32) error {
	dst := geom.Rect{X: x, Y: y, W: f.Rect.W, H: f.Rect.H}
	return ctx.Copy(f.Source, &f.Rect, &dst)
}
