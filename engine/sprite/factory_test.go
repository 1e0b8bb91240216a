package sprite

import (
	"bytes"
	"encoding/binary"
	"image"
	"image/color"
	"strings"
	"testing"

	"github.com/veandco/go-sdl2/sdl"
	"golang.org/x/image/bmp"

	"github.com/sorenkal/fjord/engine/colors"
	"github.com/sorenkal/fjord/engine/geom"
)

func softwareFactory(t *testing.T) *SpriteFactory {
	t.Helper()
	f, err := NewFactory(FactoryConfig{Backend: Software})
	if err != nil {
		t.Fatal(err)
	}
	return f
}

func TestNewFactoryValidation(t *testing.T) {
	t.Run("texture without renderer", func(t *testing.T) {
		_, err := NewFactory(FactoryConfig{Backend: Texture})
		wantValidation(t, err)
	})
	t.Run("unknown backend", func(t *testing.T) {
		_, err := NewFactory(FactoryConfig{Backend: Backend(9)})
		wantValidation(t, err)
	})
	t.Run("software needs nothing", func(t *testing.T) {
		f, err := NewFactory(FactoryConfig{Backend: Software})
		if err != nil {
			t.Fatal(err)
		}
		if f.Backend() != Software {
			t.Fatalf("backend = %v", f.Backend())
		}
	})
}

func TestBackendString(t *testing.T) {
	if Texture.String() != "texture" || Software.String() != "software" {
		t.Fatal("backend names wrong")
	}
	if !strings.Contains(Backend(9).String(), "unknown") {
		t.Fatalf("Backend(9) = %q", Backend(9))
	}
}

func TestFromColorSoftware(t *testing.T) {
	f := softwareFactory(t)
	sp, err := f.FromColor(colors.Red, geom.Size{W: 10, H: 12}, 32, nil)
	if err != nil {
		t.Fatal(err)
	}
	defer sp.Destroy()

	soft, ok := sp.(*SoftwareSprite)
	if !ok {
		t.Fatalf("sprite is %T", sp)
	}
	if soft.Size() != (geom.Size{W: 10, H: 12}) {
		t.Fatalf("size = %v", soft.Size())
	}
	got := colors.FromColor(soft.Surface().At(5, 5))
	if got.R != 255 || got.G != 0 || got.B != 0 {
		t.Fatalf("pixel = %v, want red", got)
	}
}

func TestFromColorAlphaMasks(t *testing.T) {
	f := softwareFactory(t)
	masks := &Masks{R: 0x000000ff, G: 0x0000ff00, B: 0x00ff0000, A: 0xff000000}
	sp, err := f.FromColor(colors.Color{R: 10, G: 20, B: 30, A: 128}, geom.Size{W: 4, H: 4}, 32, masks)
	if err != nil {
		t.Fatal(err)
	}
	defer sp.Destroy()

	sf := sp.(*SoftwareSprite).Surface()
	if sf.Format.Amask == 0 {
		t.Fatal("surface has no alpha mask")
	}
	want := sdl.MapRGBA(sf.Format, 10, 20, 30, 128)

	px := sf.Pixels()
	first := binary.NativeEndian.Uint32(px[:4])
	if first != want {
		t.Fatalf("pixel = %#x, want alpha-aware mapping %#x", first, want)
	}
	if a := (first & sf.Format.Amask) >> 24; a != 128 {
		t.Fatalf("alpha channel = %d, want 128", a)
	}
	last := binary.NativeEndian.Uint32(px[len(px)-4:])
	if last != want {
		t.Fatalf("last pixel = %#x, want %#x", last, want)
	}
}

func TestFromColorInvalidSize(t *testing.T) {
	f := softwareFactory(t)
	_, err := f.FromColor(colors.Red, geom.Size{}, 32, nil)
	wantValidation(t, err)
	_, err = f.FromColor(colors.Red, geom.Size{W: -1, H: 4}, 32, nil)
	wantValidation(t, err)
}

func TestFromColorTexture(t *testing.T) {
	ctx := newSurfaceContext(t)
	f, err := NewFactory(FactoryConfig{Backend: Texture, Renderer: ctx})
	if err != nil {
		t.Fatal(err)
	}
	sp, err := f.FromColor(colors.Cyan, geom.Size{W: 6, H: 7}, 32, nil)
	if err != nil {
		t.Fatal(err)
	}
	defer sp.Destroy()

	tex, ok := sp.(*TextureSprite)
	if !ok {
		t.Fatalf("sprite is %T", sp)
	}
	if tex.Size() != (geom.Size{W: 6, H: 7}) {
		t.Fatalf("size = %v", tex.Size())
	}
}

func TestFromSurfaceNil(t *testing.T) {
	f := softwareFactory(t)
	_, err := f.FromSurface(nil, true)
	wantValidation(t, err)
}

func TestFromSurfaceBorrowed(t *testing.T) {
	f := softwareFactory(t)
	sf := newSurface(t, 8, 8)
	defer sf.Free()

	sp, err := f.FromSurface(sf, false)
	if err != nil {
		t.Fatal(err)
	}
	sp.Destroy()
	if err := sf.FillRect(nil, 0); err != nil {
		t.Fatalf("borrowed surface dead: %v", err)
	}
}

func TestFromReader(t *testing.T) {
	img := image.NewRGBA(image.Rect(0, 0, 5, 3))
	for y := 0; y < 3; y++ {
		for x := 0; x < 5; x++ {
			img.Set(x, y, color.RGBA{R: 200, G: 100, B: 50, A: 255})
		}
	}
	var buf bytes.Buffer
	if err := bmp.Encode(&buf, img); err != nil {
		t.Fatal(err)
	}

	f := softwareFactory(t)
	sp, err := f.FromReader(&buf)
	if err != nil {
		t.Fatal(err)
	}
	defer sp.Destroy()
	if sp.Size() != (geom.Size{W: 5, H: 3}) {
		t.Fatalf("size = %v", sp.Size())
	}
}

func TestFromReaderGarbage(t *testing.T) {
	f := softwareFactory(t)
	_, err := f.FromReader(strings.NewReader("not a bmp"))
	wantValidation(t, err)
}

func TestCreateSpriteMergesDefaults(t *testing.T) {
	f, err := NewFactory(FactoryConfig{
		Backend:     Software,
		DefaultSize: geom.Size{W: 24, H: 24},
	})
	if err != nil {
		t.Fatal(err)
	}

	sp, err := f.CreateSprite(SpriteParams{})
	if err != nil {
		t.Fatal(err)
	}
	defer sp.Destroy()
	if sp.Size() != (geom.Size{W: 24, H: 24}) {
		t.Fatalf("size = %v, want factory default", sp.Size())
	}

	over, err := f.CreateSprite(SpriteParams{Size: geom.Size{W: 4, H: 4}})
	if err != nil {
		t.Fatal(err)
	}
	defer over.Destroy()
	if over.Size() != (geom.Size{W: 4, H: 4}) {
		t.Fatalf("size = %v, want override", over.Size())
	}
}

func TestCreateSoftwareSpriteMasks(t *testing.T) {
	f := softwareFactory(t)
	masks := &Masks{R: 0x000000ff, G: 0x0000ff00, B: 0x00ff0000, A: 0xff000000}
	sp, err := f.CreateSoftwareSprite(geom.Size{W: 4, H: 4}, 32, masks)
	if err != nil {
		t.Fatal(err)
	}
	defer sp.Destroy()
	if sp.Surface().Format.Amask == 0 {
		t.Fatal("alpha mask not honored")
	}
}

func TestCreateTextureSprite(t *testing.T) {
	ctx := newSurfaceContext(t)
	f, err := NewFactory(FactoryConfig{Backend: Texture, Renderer: ctx})
	if err != nil {
		t.Fatal(err)
	}

	t.Run("defaults to RGBA8888 static", func(t *testing.T) {
		sp, err := f.CreateTextureSprite(ctx, geom.Size{W: 16, H: 16}, 0, false)
		if err != nil {
			t.Fatal(err)
		}
		defer sp.Destroy()
		if sp.Format() != uint32(sdl.PIXELFORMAT_RGBA8888) {
			t.Fatalf("format = %d", sp.Format())
		}
		if sp.Streaming() {
			t.Fatal("static texture reported as streaming")
		}
	})

	t.Run("streaming", func(t *testing.T) {
		sp, err := f.CreateTextureSprite(ctx, geom.Size{W: 16, H: 16}, 0, true)
		if err != nil {
			t.Fatal(err)
		}
		defer sp.Destroy()
		if !sp.Streaming() {
			t.Fatal("streaming texture not reported")
		}
	})

	t.Run("validation", func(t *testing.T) {
		_, err := f.CreateTextureSprite(nil, geom.Size{W: 4, H: 4}, 0, false)
		wantValidation(t, err)
		_, err = f.CreateTextureSprite(ctx, geom.Size{}, 0, false)
		wantValidation(t, err)
	})
}

func TestCreateSpriteRendererMatchesBackend(t *testing.T) {
	ctx := newSurfaceContext(t)
	tf, err := NewFactory(FactoryConfig{Backend: Texture, Renderer: ctx})
	if err != nil {
		t.Fatal(err)
	}
	rend, err := tf.CreateSpriteRenderer(nil)
	if err != nil {
		t.Fatal(err)
	}
	if _, ok := rend.(*TextureSpriteRenderer); !ok {
		t.Fatalf("renderer is %T", rend)
	}

	sf := softwareFactory(t)
	win := newHiddenWindow(t)
	srend, err := sf.CreateSpriteRenderer(win)
	if err != nil {
		t.Fatal(err)
	}
	if _, ok := srend.(*SoftwareSpriteRenderer); !ok {
		t.Fatalf("renderer is %T", srend)
	}
}
