package imaging

import (
	"fmt"
	"math"
	"sort"

	"github.com/ironsheep/lutimage-mcp/internal/instr"
)

// RGBColor represents an RGB color with 8-bit components.
type RGBColor struct {
	R uint8 `json:"r"` // Red component (0-255)
	G uint8 `json:"g"` // Green component (0-255)
	B uint8 `json:"b"` // Blue component (0-255)
}

// HSLColor represents a color in HSL (Hue, Saturation, Lightness) color space.
type HSLColor struct {
	H int `json:"h"` // Hue: 0-360 degrees (0=red, 120=green, 240=blue)
	S int `json:"s"` // Saturation: 0-100 percent (0=gray, 100=vivid)
	L int `json:"l"` // Lightness: 0-100 percent (0=black, 50=normal, 100=white)
}

// ColorResult describes one LUT entry in several representations.
type ColorResult struct {
	Label Label    `json:"label"` // LUT index
	Hex   string   `json:"hex"`   // Hex format "#rrggbb"
	RGB   RGBColor `json:"rgb"`   // RGB components
	HSL   HSLColor `json:"hsl"`   // HSL representation
}

// describe builds the ColorResult of a LUT entry.
func describe(label Label, c RGB) ColorResult {
	r, g, b := c.Components()
	h, s, l := c.Color().Hsl()
	if math.IsNaN(h) {
		h = 0
	}
	return ColorResult{
		Label: label,
		Hex:   c.Hex(),
		RGB:   RGBColor{R: r, G: g, B: b},
		HSL:   HSLColor{H: int(h), S: int(s * 100), L: int(l * 100)},
	}
}

// SampleColor returns the label and color of the pixel at column u, row v.
//
// Unlike Pixel, out-of-range coordinates are reported as ErrOutOfBounds
// rather than a panic, since the coordinates usually come from a caller
// outside the program.
func SampleColor(img *Image, u, v int) (*ColorResult, error) {
	if !img.IsValidPixel(u, v) {
		return nil, fmt.Errorf("%w: (%d,%d)", ErrOutOfBounds, u, v)
	}
	label := img.Pixel(u, v)
	result := describe(label, img.ColorOf(label))
	return &result, nil
}

// ColorUsage is a LUT entry together with how many pixels use it.
type ColorUsage struct {
	Color      ColorResult `json:"color"`
	Pixels     int         `json:"pixels"`
	Percentage float64     `json:"percentage"` // Share of all pixels (0-100)
}

// PaletteResult lists every LUT entry of an image.
//
// Colors are sorted by pixel count in descending order; ties keep label
// order. Unused entries are included with a zero count.
type PaletteResult struct {
	NumColors int          `json:"num_colors"`
	Colors    []ColorUsage `json:"colors"`
}

// Palette counts how many pixels use each LUT entry.
func Palette(img *Image) *PaletteResult {
	counts := make([]int, len(img.lut))
	for _, label := range img.pix {
		counts[label]++
	}
	instr.PixMem.Add(len(img.pix))

	total := float64(len(img.pix))
	colors := make([]ColorUsage, len(img.lut))
	for i, c := range img.lut {
		colors[i] = ColorUsage{
			Color:      describe(Label(i), c),
			Pixels:     counts[i],
			Percentage: math.Round(float64(counts[i])/total*10000) / 100,
		}
	}

	sort.SliceStable(colors, func(i, j int) bool {
		return colors[i].Pixels > colors[j].Pixels
	})

	return &PaletteResult{NumColors: len(img.lut), Colors: colors}
}
