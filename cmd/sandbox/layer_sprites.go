package main

import (
	"math"
	"os"

	"github.com/sorenkal/fjord/engine/assets"
	"github.com/sorenkal/fjord/engine/colors"
	"github.com/sorenkal/fjord/engine/core"
	"github.com/sorenkal/fjord/engine/geom"
	"github.com/sorenkal/fjord/engine/scene"
	"github.com/sorenkal/fjord/engine/sprite"
)

const bgPath = "assets/background.png"

// SpriteLayer animates a handful of solid-color sprites at different
// depths so the sort order is visible where they overlap. When an
// assets/ directory exists, a background image is loaded and hot
// reloaded on change.
type SpriteLayer struct {
	cfg     core.Config
	factory *sprite.SpriteFactory
	rend    sprite.SpriteRenderer
	sprites []sprite.Sprite
	bg      sprite.Sprite
	watch   *assets.Watcher
	cam     *scene.Camera2D
	camCtl  *scene.CamController2D
	t       float64
}

func NewSpriteLayer(cfg core.Config, factory *sprite.SpriteFactory, rend sprite.SpriteRenderer) *SpriteLayer {
	cam := scene.NewCamera2D()
	l := &SpriteLayer{
		cfg:     cfg,
		factory: factory,
		rend:    rend,
		cam:     cam,
		camCtl:  scene.NewCamController2D(cam),
	}

	palette := []colors.Color{colors.Red, colors.Green, colors.Blue, colors.Yellow, colors.Magenta}
	depths := []int{4, 0, 3, 1, 2}
	for i, col := range palette {
		sp, err := factory.FromColor(col, geom.Size{W: 96, H: 96}, 32, nil)
		if err != nil {
			panic(err)
		}
		sp.SetPosition(int32(120+i*70), int32(160+i*40))
		sp.SetDepth(depths[i])
		l.sprites = append(l.sprites, sp)
	}
	return l
}

func (l *SpriteLayer) OnAttach(e *core.Engine) {
	if _, err := os.Stat("assets"); err != nil {
		return
	}
	l.loadBackground()
	w, err := assets.Watch("assets")
	if err != nil {
		core.Logger().Warn("asset watch unavailable", "error", err)
		return
	}
	l.watch = w
}

func (l *SpriteLayer) OnDetach(e *core.Engine) {
	if l.watch != nil {
		_ = l.watch.Close()
	}
	if l.bg != nil {
		l.bg.Destroy()
	}
	for _, sp := range l.sprites {
		sp.Destroy()
	}
}

func (l *SpriteLayer) OnUpdate(e *core.Engine, dt float64) {
	l.t += dt
	l.camCtl.Update(e, dt)
	l.drainAssetEvents()

	for i, sp := range l.sprites {
		pos := sp.Position()
		wobble := int32(20 * math.Sin(l.t*2+float64(i)))
		sp.SetPosition(pos.X, 160+int32(i*40)+wobble)
	}
}

func (l *SpriteLayer) OnRender(e *core.Engine, alpha float64) {
	dx, dy := l.cam.Offset()
	batch := l.sprites
	if l.bg != nil {
		batch = append([]sprite.Sprite{l.bg}, l.sprites...)
	}
	if err := l.rend.ProcessOffset(batch, dx, dy); err != nil {
		core.Logger().Error("sprite render failed", "error", err)
	}
}

func (l *SpriteLayer) OnEvent(e *core.Engine, ev core.Event) bool { return false }

func (l *SpriteLayer) drainAssetEvents() {
	if l.watch == nil {
		return
	}
	for {
		select {
		case path, ok := <-l.watch.Events:
			if !ok {
				l.watch = nil
				return
			}
			if path == bgPath {
				l.loadBackground()
			}
		default:
			return
		}
	}
}

func (l *SpriteLayer) loadBackground() {
	sp, err := l.factory.FromImage(bgPath)
	if err != nil {
		core.Logger().Warn("background load failed", "path", bgPath, "error", err)
		return
	}
	sp.SetDepth(-1)
	if l.bg != nil {
		l.bg.Destroy()
	}
	l.bg = sp
	core.Logger().Info("background loaded", "path", bgPath)
}

// spriteAreas returns screen-space bounding rects for the debug overlay.
func (l *SpriteLayer) spriteAreas(dx, dy int32) []geom.Rect {
	rects := make([]geom.Rect, 0, len(l.sprites))
	for _, sp := range l.sprites {
		pos := sp.Position()
		size := sp.Size()
		rects = append(rects, geom.Rect{X: dx + pos.X, Y: dy + pos.Y, W: size.W, H: size.H})
	}
	return rects
}
