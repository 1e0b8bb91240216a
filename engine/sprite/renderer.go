package sprite

import (
	"sort"

	"github.com/veandco/go-sdl2/sdl"

	"github.com/sorenkal/fjord/engine/core"
	"github.com/sorenkal/fjord/engine/geom"
	"github.com/sorenkal/fjord/engine/gfx"
	"github.com/sorenkal/fjord/engine/profiler"
	"github.com/sorenkal/fjord/engine/video"
)

// SortFunc orders sprites before rendering. The default orders by
// ascending depth: lower depths draw first, higher depths overpaint.
type SortFunc func(a, b Sprite) bool

// SpriteRenderer consumes a sprite batch each frame. Renderers never own
// the sprites they draw; callers must keep sprites alive for the whole
// call.
type SpriteRenderer interface {
	// Process filters out foreign variants, sorts by the active sort
	// func (stable) and renders the result.
	Process(sprites []Sprite) error
	// ProcessOffset is Process with a relative offset applied at draw
	// time.
	ProcessOffset(sprites []Sprite, dx, dy int32) error
	// Render draws the batch as-is at each sprite's own position.
	Render(sprites []Sprite) error
	// RenderOffset draws the batch with a relative offset added to each
	// sprite's position.
	RenderOffset(sprites []Sprite, dx, dy int32) error
	// RenderAt draws a single sprite at an absolute position.
	RenderAt(sp Sprite, x, y int32) error
	SetSortFunc(less SortFunc)
}

func byDepth(a, b Sprite) bool { return a.Depth() < b.Depth() }

// renderSystem is the shared sort-then-draw machinery behind both
// backend renderers.
type renderSystem struct {
	less    SortFunc
	accepts func(Sprite) bool
	render  func([]Sprite, int32, int32) error
	order   []Sprite // reused between frames
}

func newRenderSystem(accepts func(Sprite) bool, render func([]Sprite, int32, int32) error) renderSystem {
	return renderSystem{less: byDepth, accepts: accepts, render: render}
}

func (s *renderSystem) SetSortFunc(less SortFunc) {
	if less == nil {
		less = byDepth
	}
	s.less = less
}

func (s *renderSystem) Process(sprites []Sprite) error {
	return s.ProcessOffset(sprites, 0, 0)
}

func (s *renderSystem) ProcessOffset(sprites []Sprite, dx, dy int32) error {
	defer profiler.Start("sprite.Process")()
	s.order = s.order[:0]
	for _, sp := range sprites {
		if s.accepts == nil || s.accepts(sp) {
			s.order = append(s.order, sp)
		}
	}
	sort.SliceStable(s.order, func(i, j int) bool {
		return s.less(s.order[i], s.order[j])
	})
	return s.render(s.order, dx, dy)
}

// SoftwareSpriteRenderer blits SoftwareSprites onto a window's surface
// and pushes the surface to the screen after each batch.
type SoftwareSpriteRenderer struct {
	renderSystem
	window  *video.Window
	surface *sdl.Surface
}

// NewSoftwareSpriteRenderer binds to the window's surface; fails with a
// backend error if the window has none.
func NewSoftwareSpriteRenderer(win *video.Window) (*SoftwareSpriteRenderer, error) {
	if win == nil {
		return nil, core.Validationf("sprite.NewSoftwareSpriteRenderer", "nil window")
	}
	sf, err := win.Surface()
	if err != nil {
		return nil, err
	}
	r := &SoftwareSpriteRenderer{window: win, surface: sf}
	r.renderSystem = newRenderSystem(
		func(sp Sprite) bool { _, ok := sp.(*SoftwareSprite); return ok },
		r.RenderOffset,
	)
	return r, nil
}

func (r *SoftwareSpriteRenderer) Render(sprites []Sprite) error {
	return r.RenderOffset(sprites, 0, 0)
}

// RenderOffset blits in input order, so later sprites overpaint earlier
// ones at overlapping pixels, then updates the window once.
func (r *SoftwareSpriteRenderer) RenderOffset(sprites []Sprite, dx, dy int32) error {
	const op = "sprite.SoftwareSpriteRenderer.RenderOffset"
	for _, sp := range sprites {
		ss, ok := sp.(*SoftwareSprite)
		if !ok {
			return core.Validationf(op, "batch contains a %T, want *SoftwareSprite", sp)
		}
		pos := ss.Position()
		dst := sdl.Rect{X: dx + pos.X, Y: dy + pos.Y}
		if err := ss.surface.Blit(nil, r.surface, &dst); err != nil {
			return core.Backend(op, err)
		}
	}
	return r.window.UpdateSurface()
}

func (r *SoftwareSpriteRenderer) RenderAt(sp Sprite, x, y int32) error {
	const op = "sprite.SoftwareSpriteRenderer.RenderAt"
	ss, ok := sp.(*SoftwareSprite)
	if !ok {
		return core.Validationf(op, "got a %T, want *SoftwareSprite", sp)
	}
	dst := sdl.Rect{X: x, Y: y}
	if err := ss.surface.Blit(nil, r.surface, &dst); err != nil {
		return core.Backend(op, err)
	}
	return r.window.UpdateSurface()
}

// TextureSpriteRenderer copies TextureSprites through a render context:
// one copy per sprite, one present per batch.
type TextureSpriteRenderer struct {
	renderSystem
	ctx      *gfx.RenderContext
	ownedCtx bool
	present  func()
}

// NewTextureSpriteRenderer binds to an existing render context or raw
// renderer handle. The context reference is retained so its renderer
// stays alive for this renderer's lifetime.
func NewTextureSpriteRenderer(rend gfx.RendererSource) (*TextureSpriteRenderer, error) {
	if rend == nil || rend.SDLRenderer() == nil {
		return nil, core.Validationf("sprite.NewTextureSpriteRenderer", "nil renderer")
	}
	ctx, ok := rend.(*gfx.RenderContext)
	if !ok {
		adopted, err := gfx.NewRenderContext(gfx.RawRenderer{Renderer: rend.SDLRenderer()})
		if err != nil {
			return nil, err
		}
		ctx = adopted
	}
	return newTextureSpriteRenderer(ctx, false), nil
}

// NewTextureSpriteRendererForWindow creates a dedicated hardware render
// context for the window and owns it.
func NewTextureSpriteRendererForWindow(win *video.Window) (*TextureSpriteRenderer, error) {
	ctx, err := gfx.NewRenderContext(gfx.WindowTarget{Window: win})
	if err != nil {
		return nil, err
	}
	return newTextureSpriteRenderer(ctx, true), nil
}

func newTextureSpriteRenderer(ctx *gfx.RenderContext, owned bool) *TextureSpriteRenderer {
	r := &TextureSpriteRenderer{ctx: ctx, ownedCtx: owned}
	r.present = ctx.Present
	r.renderSystem = newRenderSystem(
		func(sp Sprite) bool { _, ok := sp.(*TextureSprite); return ok },
		r.RenderOffset,
	)
	return r
}

// Context exposes the render context the renderer draws through.
func (r *TextureSpriteRenderer) Context() *gfx.RenderContext { return r.ctx }

// Destroy releases the context only if this renderer created it.
func (r *TextureSpriteRenderer) Destroy() {
	if r.ownedCtx && r.ctx != nil {
		r.ctx.Destroy()
	}
	r.ctx = nil
}

func (r *TextureSpriteRenderer) Render(sprites []Sprite) error {
	return r.RenderOffset(sprites, 0, 0)
}

// RenderOffset issues one hardware copy per sprite (each has a distinct
// texture, so rect batching does not apply) and presents once at the
// end of the batch.
func (r *TextureSpriteRenderer) RenderOffset(sprites []Sprite, dx, dy int32) error {
	const op = "sprite.TextureSpriteRenderer.RenderOffset"
	for _, sp := range sprites {
		ts, ok := sp.(*TextureSprite)
		if !ok {
			return core.Validationf(op, "batch contains a %T, want *TextureSprite", sp)
		}
		pos := ts.Position()
		size := ts.Size()
		dst := geom.Rect{X: dx + pos.X, Y: dy + pos.Y, W: size.W, H: size.H}
		if err := r.ctx.Copy(ts, nil, &dst); err != nil {
			return err
		}
	}
	r.present()
	return nil
}

func (r *TextureSpriteRenderer) RenderAt(sp Sprite, x, y int32) error {
	const op = "sprite.TextureSpriteRenderer.RenderAt"
	ts, ok := sp.(*TextureSprite)
	if !ok {
		return core.Validationf(op, "got a %T, want *TextureSprite", sp)
	}
	size := ts.Size()
	dst := geom.Rect{X: x, Y: y, W: size.W, H: size.H}
	if err := r.ctx.Copy(ts, nil, &dst); err != nil {
		return err
	}
	r.present()
	return nil
}
