package colors

import (
	"fmt"
	"image/color"
)

// Color is an 8-bit-per-channel RGBA color, matching what the SDL draw
// and pixel-mapping calls consume.
type Color struct {
	R, G, B, A uint8
}

var (
	White    = Color{255, 255, 255, 255}
	Red      = Color{255, 0, 0, 255}
	Green    = Color{0, 255, 0, 255}
	Blue     = Color{0, 0, 255, 255}
	Black    = Color{0, 0, 0, 255}
	Magenta  = Color{255, 0, 255, 255}
	Cyan     = Color{0, 255, 255, 255}
	Yellow   = Color{255, 255, 0, 255}
	Gray     = Color{128, 128, 128, 255}
	DarkGray = Color{20, 26, 31, 255}
)

// RGB returns an opaque color.
func RGB(r, g, b uint8) Color { return Color{r, g, b, 255} }

func (c Color) WithAlpha(a uint8) Color {
	c.A = a
	return c
}

// RGBA implements color.Color.
func (c Color) RGBA() (r, g, b, a uint32) {
	return color.RGBA(c).RGBA()
}

// FromColor converts any color.Color, quantizing to 8 bits per channel.
func FromColor(c color.Color) Color {
	r, g, b, a := c.RGBA()
	return Color{uint8(r >> 8), uint8(g >> 8), uint8(b >> 8), uint8(a >> 8)}
}

// Hex parses "RGB", "RGBA", "RRGGBB" or "RRGGBBAA", with or without a
// leading '#'. Malformed input yields opaque black.
func Hex(hex string) Color {
	if hex != "" && hex[0] == '#' {
		hex = hex[1:]
	}
	var r, g, b uint32
	a := uint32(255)
	switch len(hex) {
	case 3:
		parseHex(hex[0:1], &r)
		parseHex(hex[1:2], &g)
		parseHex(hex[2:3], &b)
		r, g, b = r*17, g*17, b*17
	case 4:
		parseHex(hex[0:1], &r)
		parseHex(hex[1:2], &g)
		parseHex(hex[2:3], &b)
		parseHex(hex[3:4], &a)
		r, g, b, a = r*17, g*17, b*17, a*17
	case 6:
		parseHex(hex[0:2], &r)
		parseHex(hex[2:4], &g)
		parseHex(hex[4:6], &b)
	case 8:
		parseHex(hex[0:2], &r)
		parseHex(hex[2:4], &g)
		parseHex(hex[4:6], &b)
		parseHex(hex[6:8], &a)
	default:
		return Black
	}
	return Color{uint8(r), uint8(g), uint8(b), uint8(a)}
}

func parseHex(s string, val *uint32) {
	*val = 0
	for i := 0; i < len(s); i++ {
		c := s[i]
		*val *= 16
		switch {
		case '0' <= c && c <= '9':
			*val += uint32(c - '0')
		case 'a' <= c && c <= 'f':
			*val += uint32(c - 'a' + 10)
		case 'A' <= c && c <= 'F':
			*val += uint32(c - 'A' + 10)
		default:
			return
		}
	}
}

func (c Color) String() string {
	return fmt.Sprintf("Color(%d, %d, %d, %d)", c.R, c.G, c.B, c.A)
}
