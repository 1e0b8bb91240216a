package main

import (
	"github.com/sorenkal/fjord/engine/colors"
	"github.com/sorenkal/fjord/engine/core"
	"github.com/sorenkal/fjord/engine/gfx"
	"github.com/sorenkal/fjord/engine/profiler"
	"github.com/sorenkal/fjord/engine/sprite"
	"github.com/sorenkal/fjord/engine/video"
)

// App wires the sandbox: a texture-backend factory, a depth-sorted
// sprite layer and a primitive-drawing debug overlay.
type App struct {
	cfg core.Config
	win *video.Window

	ctx     *gfx.RenderContext
	factory *sprite.SpriteFactory
	rend    sprite.SpriteRenderer
}

func (a *App) OnStart(e *core.Engine) {
	profiler.Init(1 << 10)

	ctx, err := gfx.NewRenderContext(gfx.WindowTarget{Window: a.win, VSync: a.cfg.VSync})
	if err != nil {
		panic(err)
	}
	a.ctx = ctx

	a.factory, err = sprite.NewFactory(sprite.FactoryConfig{
		Backend:  sprite.Texture,
		Renderer: ctx,
	})
	if err != nil {
		panic(err)
	}

	a.rend, err = a.factory.CreateSpriteRenderer(a.win)
	if err != nil {
		panic(err)
	}

	spriteLayer := NewSpriteLayer(a.cfg, a.factory, a.rend)
	// Debug primitives draw under the sprites; the sprite layer's
	// Process call presents the whole frame.
	e.Layers.Push(&DebugLayer{ctx: a.ctx, scene: spriteLayer})
	e.Layers.Push(spriteLayer)
}

func (a *App) OnUpdate(e *core.Engine, dt float64) {}

func (a *App) OnRender(e *core.Engine, alpha float64) {
	cc := a.cfg.ClearColor
	if err := a.ctx.Clear(colors.Color{R: cc[0], G: cc[1], B: cc[2], A: cc[3]}); err != nil {
		core.Logger().Warn("clear failed", "error", err)
	}
}

func (a *App) OnEvent(e *core.Engine, ev core.Event) {}

func (a *App) OnShutdown(e *core.Engine) {
	a.ctx.Destroy()
}
