package video

import (
	"github.com/veandco/go-sdl2/sdl"

	"github.com/sorenkal/fjord/engine/core"
)

// Window wraps an SDL window and pushes translated events to the app.
// It implements core.Window.
type Window struct {
	win    *sdl.Window
	onEv   func(core.Event)
	closed bool
}

// NewWindow creates a shown, centered window. Must be called on the main
// thread after (or it will perform) video.Init.
func NewWindow(cfg core.Config) (*Window, error) {
	if err := Init(); err != nil {
		return nil, err
	}
	cfg.Defaults()
	win, err := sdl.CreateWindow(cfg.Title,
		int32(sdl.WINDOWPOS_CENTERED), int32(sdl.WINDOWPOS_CENTERED),
		cfg.Width, cfg.Height, uint32(sdl.WINDOW_SHOWN))
	if err != nil {
		return nil, core.Backend("video.NewWindow", err)
	}
	return &Window{win: win}, nil
}

// NewHiddenWindow creates a window that never appears on screen. Used by
// offscreen tooling and tests.
func NewHiddenWindow(cfg core.Config) (*Window, error) {
	if err := Init(); err != nil {
		return nil, err
	}
	cfg.Defaults()
	win, err := sdl.CreateWindow(cfg.Title,
		int32(sdl.WINDOWPOS_UNDEFINED), int32(sdl.WINDOWPOS_UNDEFINED),
		cfg.Width, cfg.Height, uint32(sdl.WINDOW_HIDDEN))
	if err != nil {
		return nil, core.Backend("video.NewHiddenWindow", err)
	}
	return &Window{win: win}, nil
}

// SDLWindow exposes the native handle for packages that create renderers
// or query the window surface.
func (w *Window) SDLWindow() *sdl.Window { return w.win }

// Surface returns the window's pixel surface. The surface is owned by the
// window; callers must not free it.
func (w *Window) Surface() (*sdl.Surface, error) {
	sf, err := w.win.GetSurface()
	if err != nil {
		return nil, core.Backend("window.Surface", err)
	}
	return sf, nil
}

// UpdateSurface pushes the window surface to the screen.
func (w *Window) UpdateSurface() error {
	return core.Backend("window.UpdateSurface", w.win.UpdateSurface())
}

// core.Window impl
func (w *Window) ShouldClose() bool                    { return w.closed }
func (w *Window) SetTitle(t string)                    { w.win.SetTitle(t) }
func (w *Window) SetEventCallback(cb func(core.Event)) { w.onEv = cb }

func (w *Window) Size() (int32, int32) { return w.win.GetSize() }

// Destroy releases the native window. Idempotent.
func (w *Window) Destroy() {
	if w.win != nil {
		w.win.Destroy()
		w.win = nil
	}
}

// PollEvents drains the SDL event queue and emits core events.
func (w *Window) PollEvents() {
	for ev := sdl.PollEvent(); ev != nil; ev = sdl.PollEvent() {
		switch e := ev.(type) {
		case *sdl.QuitEvent:
			w.closed = true
			w.emit(core.EventCloseRequested{})
		case *sdl.WindowEvent:
			switch e.Event {
			case sdl.WINDOWEVENT_CLOSE:
				w.closed = true
				w.emit(core.EventCloseRequested{})
			case sdl.WINDOWEVENT_SIZE_CHANGED:
				w.emit(core.EventResize{W: e.Data1, H: e.Data2})
			}
		case *sdl.KeyboardEvent:
			if e.Repeat != 0 {
				continue
			}
			k := translateKey(e.Keysym.Sym)
			if k == core.KeyUnknown {
				continue
			}
			w.emit(core.EventKey{
				Key:  k,
				Down: e.Type == sdl.KEYDOWN,
				Mods: translateMods(e.Keysym.Mod),
			})
		case *sdl.MouseMotionEvent:
			w.emit(core.EventMouseMove{X: e.X, Y: e.Y})
		case *sdl.MouseWheelEvent:
			w.emit(core.EventScroll{Xoff: e.X, Yoff: e.Y})
		}
	}
}

func (w *Window) emit(ev core.Event) {
	if w.onEv != nil {
		w.onEv(ev)
	}
}

func translateKey(k sdl.Keycode) core.Key {
	switch k {
	case sdl.K_ESCAPE:
		return core.KeyEscape
	case sdl.K_SPACE:
		return core.KeySpace
	case sdl.K_w:
		return core.KeyW
	case sdl.K_a:
		return core.KeyA
	case sdl.K_s:
		return core.KeyS
	case sdl.K_d:
		return core.KeyD
	default:
		return core.KeyUnknown
	}
}

func translateMods(m uint16) core.Mod {
	var out core.Mod
	if m&uint16(sdl.KMOD_SHIFT) != 0 {
		out |= core.ModShift
	}
	if m&uint16(sdl.KMOD_CTRL) != 0 {
		out |= core.ModCtrl
	}
	if m&uint16(sdl.KMOD_ALT) != 0 {
		out |= core.ModAlt
	}
	if m&uint16(sdl.KMOD_GUI) != 0 {
		out |= core.ModSuper
	}
	return out
}
