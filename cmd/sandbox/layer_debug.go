package main

import (
	"github.com/sorenkal/fjord/engine/colors"
	"github.com/sorenkal/fjord/engine/core"
	"github.com/sorenkal/fjord/engine/gfx"
)

// DebugLayer paints primitive overlays behind the sprite layer: a dot
// grid, sprite bounding boxes and a crosshair at the camera focus.
type DebugLayer struct {
	ctx   *gfx.RenderContext
	scene *SpriteLayer
}

func (l *DebugLayer) OnAttach(e *core.Engine) {}
func (l *DebugLayer) OnDetach(e *core.Engine) {}

func (l *DebugLayer) OnUpdate(e *core.Engine, dt float64) {}

func (l *DebugLayer) OnRender(e *core.Engine, alpha float64) {
	dx, dy := l.scene.cam.Offset()
	w, h := l.cfgSize()

	const step = 64
	points := make([]int32, 0, 2*(w/step+1)*(h/step+1))
	for y := dy % step; y < h; y += step {
		for x := dx % step; x < w; x += step {
			points = append(points, x, y)
		}
	}
	if err := l.ctx.DrawPoint(points, colors.DarkGray); err != nil {
		core.Logger().Warn("debug grid failed", "error", err)
	}

	rects := l.scene.spriteAreas(dx, dy)
	if err := l.ctx.DrawRect(rects, colors.Gray); err != nil {
		core.Logger().Warn("debug boxes failed", "error", err)
	}

	cx, cy := w/2, h/2
	cross := []int32{
		cx - 12, cy, cx + 12, cy,
		cx, cy - 12, cx, cy + 12,
	}
	if err := l.ctx.DrawLine(cross, colors.White); err != nil {
		core.Logger().Warn("debug crosshair failed", "error", err)
	}
}

func (l *DebugLayer) OnEvent(e *core.Engine, ev core.Event) bool { return false }

func (l *DebugLayer) cfgSize() (int32, int32) {
	return l.scene.cfg.Width, l.scene.cfg.Height
}
