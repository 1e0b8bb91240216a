// Package sprite implements the sprite object model and the depth-sorted
// renderer systems for both the software (surface blit) and texture
// (hardware copy) backends.
package sprite

import (
	"fmt"

	"github.com/veandco/go-sdl2/sdl"

	"github.com/sorenkal/fjord/engine/core"
	"github.com/sorenkal/fjord/engine/geom"
)

// Sprite is a positioned, depth-ordered 2D drawable. Size is fixed by
// the backend at construction; Area derives from position and size.
type Sprite interface {
	Position() geom.Point
	SetPosition(x, y int32)
	Depth() int
	SetDepth(d int)
	Size() geom.Size
	Area() geom.Area
	Destroy()
}

// anchor carries the position/depth state shared by both variants.
type anchor struct {
	x, y  int32
	depth int
}

func (a *anchor) Position() geom.Point   { return geom.Point{X: a.x, Y: a.y} }
func (a *anchor) SetPosition(x, y int32) { a.x, a.y = x, y }
func (a *anchor) Depth() int             { return a.depth }
func (a *anchor) SetDepth(d int)         { a.depth = d }

// SoftwareSprite draws from a CPU pixel surface.
type SoftwareSprite struct {
	anchor
	surface *sdl.Surface
	owns    bool
	size    geom.Size
}

// NewSoftwareSprite wraps a decoded surface. When owns is true the
// sprite frees the surface on Destroy.
func NewSoftwareSprite(sf *sdl.Surface, owns bool) (*SoftwareSprite, error) {
	if sf == nil {
		return nil, core.Validationf("sprite.NewSoftwareSprite", "nil surface")
	}
	return &SoftwareSprite{
		surface: sf,
		owns:    owns,
		size:    geom.Size{W: sf.W, H: sf.H},
	}, nil
}

func (s *SoftwareSprite) Size() geom.Size { return s.size }

func (s *SoftwareSprite) Area() geom.Area {
	return geom.AreaOf(s.x, s.y, s.size.W, s.size.H)
}

// Surface exposes the pixel buffer. It stays owned by the sprite.
func (s *SoftwareSprite) Surface() *sdl.Surface { return s.surface }

// Destroy frees the surface exactly once, and only if owned. Idempotent.
func (s *SoftwareSprite) Destroy() {
	if s.surface != nil && s.owns {
		s.surface.Free()
	}
	s.surface = nil
}

func (s *SoftwareSprite) String() string {
	return fmt.Sprintf("SoftwareSprite(size=%dx%d, owns=%t)", s.size.W, s.size.H, s.owns)
}

// TextureSprite draws from a GPU texture.
type TextureSprite struct {
	anchor
	texture *sdl.Texture
	size    geom.Size
	format  uint32
	access  int
}

// NewTextureSprite takes ownership of the texture and caches its
// format/access/size via a query. The cached size is authoritative; it
// is never re-queried. On query failure the texture is destroyed and
// nothing escapes.
func NewTextureSprite(tex *sdl.Texture) (*TextureSprite, error) {
	if tex == nil {
		return nil, core.Validationf("sprite.NewTextureSprite", "nil texture")
	}
	format, access, w, h, err := tex.Query()
	if err != nil {
		tex.Destroy()
		return nil, core.Backend("sprite.NewTextureSprite", err)
	}
	return &TextureSprite{
		texture: tex,
		size:    geom.Size{W: w, H: h},
		format:  format,
		access:  access,
	}, nil
}

func (s *TextureSprite) Size() geom.Size { return s.size }

func (s *TextureSprite) Area() geom.Area {
	return geom.AreaOf(s.x, s.y, s.size.W, s.size.H)
}

// SDLTexture implements gfx.TextureSource. The handle stays owned by
// the sprite and is never shared between sprites.
func (s *TextureSprite) SDLTexture() *sdl.Texture { return s.texture }

// Format reports the pixel format cached at construction.
func (s *TextureSprite) Format() uint32 { return s.format }

// Streaming reports whether the texture allows pixel-buffer access.
func (s *TextureSprite) Streaming() bool {
	return s.access == sdl.TEXTUREACCESS_STREAMING
}

// Destroy releases the texture exactly once. Idempotent.
func (s *TextureSprite) Destroy() {
	if s.texture != nil {
		s.texture.Destroy()
	}
	s.texture = nil
}

func (s *TextureSprite) String() string {
	return fmt.Sprintf("TextureSprite(format=%d, streaming=%t, size=%dx%d)",
		s.format, s.Streaming(), s.size.W, s.size.H)
}
