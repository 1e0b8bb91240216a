package sprite

import (
	"io"

	"github.com/veandco/go-sdl2/sdl"

	"github.com/sorenkal/fjord/engine/assets"
	"github.com/sorenkal/fjord/engine/colors"
	"github.com/sorenkal/fjord/engine/core"
	"github.com/sorenkal/fjord/engine/geom"
	"github.com/sorenkal/fjord/engine/gfx"
	"github.com/sorenkal/fjord/engine/video"
)

// Backend selects how factory-produced sprites store their pixels.
type Backend int

const (
	// Texture sprites live in GPU textures, drawn through a renderer.
	Texture Backend = iota
	// Software sprites live in CPU surfaces, drawn by blitting.
	Software
)

func (b Backend) String() string {
	switch b {
	case Texture:
		return "texture"
	case Software:
		return "software"
	default:
		return "unknown"
	}
}

// Masks are explicit RGBA bit masks for surface allocation. Zero masks
// let SDL infer a layout from the bit depth.
type Masks struct {
	R, G, B, A uint32
}

// FactoryConfig enumerates the recognized factory settings per backend.
// Renderer is required for the Texture backend and unused by Software.
type FactoryConfig struct {
	Backend  Backend
	Renderer *gfx.RenderContext

	// Defaults applied by CreateSprite when a parameter is left zero.
	DefaultSize  geom.Size
	DefaultBPP   int
	DefaultMasks *Masks
}

// SpriteFactory builds sprites of one backend. It is stateless beyond
// its config; every call produces an independent sprite.
type SpriteFactory struct {
	cfg FactoryConfig
}

// NewFactory validates the config at construction, not call time.
func NewFactory(cfg FactoryConfig) (*SpriteFactory, error) {
	switch cfg.Backend {
	case Texture:
		if cfg.Renderer == nil {
			return nil, core.Validationf("sprite.NewFactory", "texture backend requires a renderer")
		}
	case Software:
	default:
		return nil, core.Validationf("sprite.NewFactory", "backend must be Texture or Software, got %d", cfg.Backend)
	}
	if cfg.DefaultBPP == 0 {
		cfg.DefaultBPP = 32
	}
	return &SpriteFactory{cfg: cfg}, nil
}

// Backend reports which sprite variant this factory produces.
func (f *SpriteFactory) Backend() Backend { return f.cfg.Backend }

// CreateSpriteRenderer returns the renderer system matching the
// factory's backend. For Texture the factory's render context is used
// and win is ignored; for Software the renderer binds to win's surface.
func (f *SpriteFactory) CreateSpriteRenderer(win *video.Window) (SpriteRenderer, error) {
	if f.cfg.Backend == Texture {
		return NewTextureSpriteRenderer(f.cfg.Renderer)
	}
	return NewSoftwareSpriteRenderer(win)
}

// FromImage decodes an image file into a sprite.
func (f *SpriteFactory) FromImage(path string) (Sprite, error) {
	sf, err := assets.LoadSurface(path)
	if err != nil {
		return nil, err
	}
	return f.FromSurface(sf, true)
}

// FromSurface wraps a decoded surface. With free set, the factory takes
// ownership of the surface: the Texture backend releases it after the
// texture is built, the Software backend releases it when the sprite is
// destroyed.
func (f *SpriteFactory) FromSurface(sf *sdl.Surface, free bool) (Sprite, error) {
	if sf == nil {
		return nil, core.Validationf("sprite.FromSurface", "nil surface")
	}
	if f.cfg.Backend == Software {
		return NewSoftwareSprite(sf, free)
	}
	tex, err := f.cfg.Renderer.SDLRenderer().CreateTextureFromSurface(sf)
	if free {
		sf.Free()
	}
	if err != nil {
		return nil, core.Backend("sprite.FromSurface", err)
	}
	return NewTextureSprite(tex)
}

// FromReader decodes a BMP byte stream into a sprite. The decoded
// surface is always owned.
func (f *SpriteFactory) FromReader(r io.Reader) (Sprite, error) {
	sf, err := assets.DecodeBMP(r)
	if err != nil {
		return nil, err
	}
	return f.FromSurface(sf, true)
}

// FromColor builds a solid-color sprite of the given size. The color is
// mapped through the surface's pixel format: alpha-aware when the format
// has an alpha channel, RGB-only otherwise.
func (f *SpriteFactory) FromColor(col colors.Color, size geom.Size, bpp int, masks *Masks) (Sprite, error) {
	sf, err := createSurface("sprite.FromColor", size, bpp, masks)
	if err != nil {
		return nil, err
	}
	format := sf.Format
	var pixel uint32
	if format.Amask != 0 {
		pixel = sdl.MapRGBA(format, col.R, col.G, col.B, col.A)
	} else {
		pixel = sdl.MapRGB(format, col.R, col.G, col.B)
	}
	if err := sf.FillRect(nil, pixel); err != nil {
		sf.Free()
		return nil, core.Backend("sprite.FromColor", err)
	}
	return f.FromSurface(sf, true)
}

// SpriteParams are per-call overrides for CreateSprite. Zero values fall
// back to the factory defaults.
type SpriteParams struct {
	Size  geom.Size
	BPP   int    // software only
	Masks *Masks // software only

	Format    uint32 // texture only; 0 means RGBA8888
	Streaming bool   // texture only
}

// CreateSprite builds an empty sprite, merging params over the factory
// defaults and dispatching on the backend.
func (f *SpriteFactory) CreateSprite(p SpriteParams) (Sprite, error) {
	if p.Size.IsZero() {
		p.Size = f.cfg.DefaultSize
	}
	if p.BPP == 0 {
		p.BPP = f.cfg.DefaultBPP
	}
	if p.Masks == nil {
		p.Masks = f.cfg.DefaultMasks
	}
	if f.cfg.Backend == Texture {
		return f.CreateTextureSprite(f.cfg.Renderer, p.Size, p.Format, p.Streaming)
	}
	return f.CreateSoftwareSprite(p.Size, p.BPP, p.Masks)
}

// CreateSoftwareSprite allocates a blank owned surface.
func (f *SpriteFactory) CreateSoftwareSprite(size geom.Size, bpp int, masks *Masks) (*SoftwareSprite, error) {
	sf, err := createSurface("sprite.CreateSoftwareSprite", size, bpp, masks)
	if err != nil {
		return nil, err
	}
	return NewSoftwareSprite(sf, true)
}

// CreateTextureSprite allocates a blank texture on the given renderer.
// Static textures (the default) trade pixel access for faster copies;
// pass streaming for a writable pixel buffer.
func (f *SpriteFactory) CreateTextureSprite(rend gfx.RendererSource, size geom.Size, format uint32, streaming bool) (*TextureSprite, error) {
	const op = "sprite.CreateTextureSprite"
	if rend == nil || rend.SDLRenderer() == nil {
		return nil, core.Validationf(op, "nil renderer")
	}
	if size.W <= 0 || size.H <= 0 {
		return nil, core.Validationf(op, "invalid size %dx%d", size.W, size.H)
	}
	if format == 0 {
		format = uint32(sdl.PIXELFORMAT_RGBA8888)
	}
	access := sdl.TEXTUREACCESS_STATIC
	if streaming {
		access = sdl.TEXTUREACCESS_STREAMING
	}
	tex, err := rend.SDLRenderer().CreateTexture(format, access, size.W, size.H)
	if err != nil {
		return nil, core.Backend(op, err)
	}
	return NewTextureSprite(tex)
}

func createSurface(op string, size geom.Size, bpp int, masks *Masks) (*sdl.Surface, error) {
	if size.W <= 0 || size.H <= 0 {
		return nil, core.Validationf(op, "invalid size %dx%d", size.W, size.H)
	}
	if bpp == 0 {
		bpp = 32
	}
	var m Masks
	if masks != nil {
		m = *masks
	}
	sf, err := sdl.CreateRGBSurface(0, size.W, size.H, int32(bpp), m.R, m.G, m.B, m.A)
	if err != nil {
		return nil, core.Backend(op, err)
	}
	return sf, nil
}
