// Package assets decodes images into SDL surfaces for the sprite
// factory.
package assets

import (
	"image"
	"image/draw"
	_ "image/jpeg"
	_ "image/png"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/veandco/go-sdl2/sdl"
	"golang.org/x/image/bmp"

	"github.com/sorenkal/fjord/engine/core"
)

// LoadSurface decodes an image file (PNG, JPEG or BMP) into a freshly
// allocated RGBA32 surface. The caller owns the surface.
func LoadSurface(path string) (*sdl.Surface, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, core.Validationf("assets.LoadSurface", "open %q: %v", path, err)
	}
	defer f.Close()

	var img image.Image
	if strings.EqualFold(filepath.Ext(path), ".bmp") {
		img, err = bmp.Decode(f)
	} else {
		img, _, err = image.Decode(f)
	}
	if err != nil {
		return nil, core.Validationf("assets.LoadSurface", "decode %q: %v", path, err)
	}
	return SurfaceFromImage(img)
}

// DecodeBMP decodes a BMP byte stream into a surface. The caller owns
// the surface.
func DecodeBMP(r io.Reader) (*sdl.Surface, error) {
	img, err := bmp.Decode(r)
	if err != nil {
		return nil, core.Validationf("assets.DecodeBMP", "decode: %v", err)
	}
	return SurfaceFromImage(img)
}

// SurfaceFromImage copies any decoded image into a new RGBA32 surface.
func SurfaceFromImage(img image.Image) (*sdl.Surface, error) {
	rgba := imageToRGBA(img)
	w := int32(rgba.Bounds().Dx())
	h := int32(rgba.Bounds().Dy())

	sf, err := sdl.CreateRGBSurfaceWithFormat(0, w, h, 32, uint32(sdl.PIXELFORMAT_RGBA32))
	if err != nil {
		return nil, core.Backend("assets.SurfaceFromImage", err)
	}

	// Repack in tight rows into the surface's pitch.
	dst := sf.Pixels()
	src := rgba.Pix
	srcStride := rgba.Stride
	dstPitch := int(sf.Pitch)
	rowBytes := int(w) * 4
	for y := 0; y < int(h); y++ {
		copy(dst[y*dstPitch:y*dstPitch+rowBytes], src[y*srcStride:y*srcStride+rowBytes])
	}
	return sf, nil
}

func imageToRGBA(img image.Image) *image.RGBA {
	if m, ok := img.(*image.RGBA); ok && m.Stride == m.Rect.Dx()*4 {
		return m
	}
	dst := image.NewRGBA(image.Rect(0, 0, img.Bounds().Dx(), img.Bounds().Dy()))
	draw.Draw(dst, dst.Bounds(), img, img.Bounds().Min, draw.Src)
	return dst
}
