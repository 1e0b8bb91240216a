// Package gfx wraps the SDL renderer behind a small draw-state and
// primitive-drawing API shared by both sprite backends.
package gfx

import (
	"github.com/veandco/go-sdl2/sdl"

	"github.com/sorenkal/fjord/engine/colors"
	"github.com/sorenkal/fjord/engine/core"
	"github.com/sorenkal/fjord/engine/geom"
	"github.com/sorenkal/fjord/engine/scratch"
)

// RenderContext owns a renderer bound to exactly one target for its
// lifetime. Destroying the context destroys the renderer it created but
// never the target.
type RenderContext struct {
	renderer *sdl.Renderer
	owned    bool
}

// NewRenderContext creates a renderer for the given target: hardware for
// windows, software for surfaces. A RawRenderer target is adopted as-is.
func NewRenderContext(target RenderTarget) (*RenderContext, error) {
	switch t := target.(type) {
	case WindowTarget:
		if t.Window == nil {
			return nil, core.Validationf("gfx.NewRenderContext", "nil window")
		}
		flags := uint32(sdl.RENDERER_ACCELERATED)
		if t.VSync {
			flags |= uint32(sdl.RENDERER_PRESENTVSYNC)
		}
		r, err := sdl.CreateRenderer(t.Window.SDLWindow(), -1, flags)
		if err != nil {
			return nil, core.Backend("gfx.NewRenderContext", err)
		}
		core.Logger().Info("render context created", "target", "window")
		return &RenderContext{renderer: r, owned: true}, nil
	case SurfaceTarget:
		if t.Surface == nil {
			return nil, core.Validationf("gfx.NewRenderContext", "nil surface")
		}
		r, err := sdl.CreateSoftwareRenderer(t.Surface)
		if err != nil {
			return nil, core.Backend("gfx.NewRenderContext", err)
		}
		core.Logger().Info("render context created", "target", "surface")
		return &RenderContext{renderer: r, owned: true}, nil
	case RawRenderer:
		if t.Renderer == nil {
			return nil, core.Validationf("gfx.NewRenderContext", "nil renderer")
		}
		return &RenderContext{renderer: t.Renderer, owned: false}, nil
	default:
		return nil, core.Validationf("gfx.NewRenderContext", "nil target")
	}
}

// SDLRenderer implements RendererSource.
func (c *RenderContext) SDLRenderer() *sdl.Renderer { return c.renderer }

// Destroy releases the renderer if the context created it. Idempotent.
func (c *RenderContext) Destroy() {
	if c.renderer != nil && c.owned {
		c.renderer.Destroy()
	}
	c.renderer = nil
}

// Color reads the current draw color.
func (c *RenderContext) Color() (colors.Color, error) {
	r, g, b, a, err := c.renderer.GetDrawColor()
	if err != nil {
		return colors.Color{}, core.Backend("gfx.Color", err)
	}
	return colors.Color{R: r, G: g, B: b, A: a}, nil
}

// SetColor sets the draw color used by Clear and the primitive draws.
func (c *RenderContext) SetColor(col colors.Color) error {
	return core.Backend("gfx.SetColor", c.renderer.SetDrawColor(col.R, col.G, col.B, col.A))
}

// BlendMode reads the blend mode used for drawing operations.
func (c *RenderContext) BlendMode() (sdl.BlendMode, error) {
	var mode sdl.BlendMode
	if err := c.renderer.GetDrawBlendMode(&mode); err != nil {
		return mode, core.Backend("gfx.BlendMode", err)
	}
	return mode, nil
}

// SetBlendMode sets the blend mode used for drawing operations.
func (c *RenderContext) SetBlendMode(mode sdl.BlendMode) error {
	return core.Backend("gfx.SetBlendMode", c.renderer.SetDrawBlendMode(mode))
}

// Clear clears the whole target with the current draw color, or with the
// given color for just this call.
func (c *RenderContext) Clear(tint ...colors.Color) error {
	return c.withColor("gfx.Clear", tint, func() error {
		return c.renderer.Clear()
	})
}

// Copy blits a texture into dstrect (nil for the whole target), reading
// from srcrect (nil for the whole texture).
func (c *RenderContext) Copy(src TextureSource, srcrect, dstrect *geom.Rect) error {
	if src == nil || src.SDLTexture() == nil {
		return core.Validationf("gfx.Copy", "src has no texture")
	}
	return core.Backend("gfx.Copy",
		c.renderer.Copy(src.SDLTexture(), sdlRect(srcrect), sdlRect(dstrect)))
}

// Present flips the renderer's backbuffer.
func (c *RenderContext) Present() { c.renderer.Present() }

// DrawLine draws one line from a flat (x1, y1, x2, y2) list, or a batch
// of connected lines from longer lists. Batches are marshalled into one
// contiguous point array and issued as a single native call.
func (c *RenderContext) DrawLine(points []int32, tint ...colors.Color) error {
	const op = "gfx.DrawLine"
	if len(points)%4 != 0 {
		return core.Validationf(op, "flat point list length %d is not a multiple of 4", len(points))
	}
	if len(points) == 0 {
		return nil
	}
	return c.withColor(op, tint, func() error {
		if len(points) == 4 {
			return c.renderer.DrawLine(points[0], points[1], points[2], points[3])
		}
		return c.renderer.DrawLines(marshalPoints(points))
	})
}

// DrawPoint draws one point from a flat (x, y) pair, or a batch from
// longer lists, as a single native call.
func (c *RenderContext) DrawPoint(points []int32, tint ...colors.Color) error {
	const op = "gfx.DrawPoint"
	if len(points)%2 != 0 {
		return core.Validationf(op, "flat point list length %d is not a multiple of 2", len(points))
	}
	if len(points) == 0 {
		return nil
	}
	return c.withColor(op, tint, func() error {
		if len(points) == 2 {
			return c.renderer.DrawPoint(points[0], points[1])
		}
		return c.renderer.DrawPoints(marshalPoints(points))
	})
}

// DrawRect outlines one or more rectangles; batches become a single
// native call over a contiguous rect array.
func (c *RenderContext) DrawRect(rects []geom.Rect, tint ...colors.Color) error {
	if len(rects) == 0 {
		return nil
	}
	return c.withColor("gfx.DrawRect", tint, func() error {
		if len(rects) == 1 {
			r := rects[0].SDL()
			return c.renderer.DrawRect(&r)
		}
		return c.renderer.DrawRects(marshalRects(rects))
	})
}

// Fill fills one or more rectangles; batches become a single native call
// over a contiguous rect array.
func (c *RenderContext) Fill(rects []geom.Rect, tint ...colors.Color) error {
	if len(rects) == 0 {
		return nil
	}
	return c.withColor("gfx.Fill", tint, func() error {
		if len(rects) == 1 {
			r := rects[0].SDL()
			return c.renderer.FillRect(&r)
		}
		return c.renderer.FillRects(marshalRects(rects))
	})
}

// withColor runs fn with a temporary draw color when one is supplied.
// The previous color is restored on every exit path, including fn
// failure.
func (c *RenderContext) withColor(op string, tint []colors.Color, fn func() error) error {
	if len(tint) == 0 {
		if err := fn(); err != nil {
			return core.Backend(op, err)
		}
		return nil
	}
	prev, err := c.Color()
	if err != nil {
		return err
	}
	if err := c.SetColor(tint[0]); err != nil {
		return err
	}
	defer c.SetColor(prev)
	if err := fn(); err != nil {
		return core.Backend(op, err)
	}
	return nil
}

// marshalPoints packs a flat (x, y, ...) list into the per-frame point
// scratch buffer.
func marshalPoints(flat []int32) []sdl.Point {
	pts := scratch.Points(len(flat) / 2)
	for i := range pts {
		pts[i] = sdl.Point{X: flat[2*i], Y: flat[2*i+1]}
	}
	return pts
}

// marshalRects packs rects into the per-frame rect scratch buffer.
func marshalRects(rects []geom.Rect) []sdl.Rect {
	out := scratch.Rects(len(rects))
	for i, r := range rects {
		out[i] = r.SDL()
	}
	return out
}

func sdlRect(r *geom.Rect) *sdl.Rect {
	if r == nil {
		return nil
	}
	s := r.SDL()
	return &s
}
