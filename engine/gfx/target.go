package gfx

import (
	"github.com/veandco/go-sdl2/sdl"

	"github.com/sorenkal/fjord/engine/video"
)

// RenderTarget is the closed set of things a RenderContext can draw to.
// Construct one of WindowTarget, SurfaceTarget or RawRenderer; there is
// no runtime type sniffing beyond this set.
type RenderTarget interface {
	target()
}

// WindowTarget binds a context to a window via a hardware-accelerated
// renderer.
type WindowTarget struct {
	Window *video.Window
	VSync  bool
}

func (WindowTarget) target() {}

// SurfaceTarget binds a context to an offscreen surface via a software
// renderer. The surface stays owned by the caller.
type SurfaceTarget struct {
	Surface *sdl.Surface
}

func (SurfaceTarget) target() {}

// RawRenderer adopts an existing renderer handle. The context never
// destroys an adopted handle.
type RawRenderer struct {
	Renderer *sdl.Renderer
}

func (RawRenderer) target() {}

// SDLRenderer implements RendererSource.
func (r RawRenderer) SDLRenderer() *sdl.Renderer { return r.Renderer }

// RendererSource yields a native renderer handle. Implemented by
// *RenderContext and RawRenderer.
type RendererSource interface {
	SDLRenderer() *sdl.Renderer
}

// TextureSource yields a native texture handle. Implemented by
// sprite.TextureSprite and RawTexture.
type TextureSource interface {
	SDLTexture() *sdl.Texture
}

// RawTexture adapts a bare texture handle to TextureSource.
type RawTexture struct {
	Texture *sdl.Texture
}

func (t RawTexture) SDLTexture() *sdl.Texture { return t.Texture }
