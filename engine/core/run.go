package core

import (
	"runtime"
	"time"

	"github.com/sorenkal/fjord/engine/scratch"
)

// Run wires the platform window and executes the main loop. Renderer and
// sprite setup belong to the App (the backend choice is its business).
func Run(app App, cfg Config, newWindow func(Config) (Window, error)) error {
	// SDL video requires the main OS thread.
	runtime.LockOSThread()

	cfg.Defaults()
	scratch.Init(cfg.ScratchCapacity)

	win, err := newWindow(cfg)
	if err != nil {
		return err
	}
	defer win.Destroy()

	eng := &Engine{Window: win, Input: NewInput(), start: time.Now()}
	eng.Layers.eng = eng
	win.SetEventCallback(func(ev Event) {
		eng.Input.Handle(ev)
		app.OnEvent(eng, ev)
		eng.Layers.ForEachReverse(func(l Layer) bool {
			return l.OnEvent(eng, ev)
		})
	})

	app.OnStart(eng)

	// Fixed-timestep (60 Hz) with interpolation
	const tick = time.Second / 60
	var (
		accum   time.Duration
		prev    = time.Now()
		maxStep = 10 // prevent spiral of death
	)

	for !win.ShouldClose() {
		now := time.Now()
		frame := now.Sub(prev)
		prev = now
		accum += frame

		win.PollEvents()

		steps := 0
		for accum >= tick && steps < maxStep {
			dt := float64(tick) / float64(time.Second)
			app.OnUpdate(eng, dt)
			eng.Layers.ForEach(func(l Layer) { l.OnUpdate(eng, dt) })
			accum -= tick
			steps++
		}
		alpha := float64(accum) / float64(tick)

		// Marshal buffers live for exactly one frame.
		scratch.Reset()

		app.OnRender(eng, alpha)
		eng.Layers.ForEach(func(l Layer) { l.OnRender(eng, alpha) })
	}

	// Layers detach before the app tears down shared backends.
	eng.Layers.Clear()
	app.OnShutdown(eng)
	Logger().Info("engine exit", "uptime", eng.Uptime())
	return nil
}
