package imaging

import (
	"fmt"
	"image/color"

	"github.com/lucasb-eyer/go-colorful"
)

// RGB is a 24-bit color packed as 0xRRGGBB. The top byte is always zero.
type RGB uint32

const (
	// White is the background color, stored at WhiteLabel in every LUT.
	White RGB = 0xFFFFFF
	// Black is the foreground color of bitmaps, stored at BlackLabel.
	Black RGB = 0x000000
)

// colorStep is the increment used to derive pseudo-random successor colors.
const colorStep = 7639

// MakeRGB packs 8-bit components into an RGB value.
func MakeRGB(r, g, b uint8) RGB {
	return RGB(r)<<16 | RGB(g)<<8 | RGB(b)
}

// Components returns the 8-bit red, green and blue components.
func (c RGB) Components() (r, g, b uint8) {
	return uint8(c >> 16), uint8(c >> 8), uint8(c)
}

// Next returns the pseudo-random successor of c. The sequence is a fixed
// linear step modulo 2^24, so it is reproducible for a given start value.
func (c RGB) Next() RGB {
	return (c + colorStep) & 0xFFFFFF
}

// Color converts c to a go-colorful color.
func (c RGB) Color() colorful.Color {
	r, g, b := c.Components()
	return colorful.Color{R: float64(r) / 255, G: float64(g) / 255, B: float64(b) / 255}
}

// RGBA converts c to an opaque standard library color.
func (c RGB) RGBA() color.RGBA {
	r, g, b := c.Components()
	return color.RGBA{R: r, G: g, B: b, A: 255}
}

// Hex formats c as "#rrggbb".
func (c RGB) Hex() string {
	return c.Color().Hex()
}

func (c RGB) String() string {
	r, g, b := c.Components()
	return fmt.Sprintf("(%3d,%3d,%3d)", r, g, b)
}

// ParseRGB parses a "#rrggbb" color string.
func ParseRGB(hex string) (RGB, error) {
	col, err := colorful.Hex(hex)
	if err != nil {
		return 0, fmt.Errorf("imaging: invalid color %q: %w", hex, err)
	}
	r, g, b := col.RGB255()
	return MakeRGB(r, g, b), nil
}

// RGBFromColor converts any standard library color to RGB, dropping alpha.
// Colors with zero alpha map to White, the background.
func RGBFromColor(c color.Color) RGB {
	col, ok := colorful.MakeColor(c)
	if !ok {
		return White
	}
	r, g, b := col.RGB255()
	return MakeRGB(r, g, b)
}
