package imaging

import (
	"fmt"
	"image"
	"image/color"
	"image/draw"
	"strconv"

	"github.com/disintegration/imaging"

	"github.com/ironsheep/lutimage-mcp/internal/instr"
)

// RenderOptions controls how an indexed image is turned into a viewable
// RGBA picture.
type RenderOptions struct {
	// Scale is the integer magnification; each pixel becomes a Scale x Scale
	// block. Values below 1 are treated as 1.
	Scale int `json:"scale"`

	// GridSpacing draws a grid line every GridSpacing source pixels.
	// Zero disables the grid.
	GridSpacing int `json:"grid_spacing"`

	// ShowCoordinates labels grid intersections with their source
	// coordinates. Ignored without a grid.
	ShowCoordinates bool `json:"show_coordinates"`

	// GridColor is "#RRGGBB" or "#RRGGBBAA". Defaults to semi-transparent red.
	GridColor string `json:"grid_color"`
}

// Render resolves every label through the LUT and returns an NRGBA picture,
// magnified with nearest-neighbour sampling so label boundaries stay sharp,
// with an optional coordinate grid on top.
func Render(img *Image, opts RenderOptions) *image.NRGBA {
	scale := opts.Scale
	if scale < 1 {
		scale = 1
	}

	var result *image.NRGBA
	if scale == 1 {
		result = imaging.Clone(img)
	} else {
		result = imaging.Resize(img, img.width*scale, img.height*scale, imaging.NearestNeighbor)
	}
	instr.PixMem.Add(len(img.pix))

	if opts.GridSpacing <= 0 {
		return result
	}

	gridColor, err := parseHexColor(opts.GridColor)
	if err != nil {
		gridColor = color.RGBA{255, 0, 0, 128} // Default: semi-transparent red
	}

	bounds := result.Bounds()
	width, height := bounds.Dx(), bounds.Dy()
	step := opts.GridSpacing * scale

	// Draw vertical lines
	for x := step; x < width; x += step {
		for y := 0; y < height; y++ {
			result.Set(x, y, gridColor)
		}
	}

	// Draw horizontal lines
	for y := step; y < height; y += step {
		for x := 0; x < width; x++ {
			result.Set(x, y, gridColor)
		}
	}

	if opts.ShowCoordinates {
		labelColor := color.RGBA{255, 255, 255, 255}
		bgColor := color.RGBA{0, 0, 0, 180}

		for y := step; y < height; y += step {
			for x := step; x < width; x += step {
				label := fmt.Sprintf("%d,%d", x/scale, y/scale)
				drawLabel(result, x+2, y+2, label, labelColor, bgColor)
			}
		}
	}

	return result
}

// parseHexColor parses a hex color string like "#FF0000" or "#FF000080"
func parseHexColor(hex string) (color.RGBA, error) {
	if len(hex) == 0 {
		return color.RGBA{}, fmt.Errorf("empty color string")
	}
	if hex[0] == '#' {
		hex = hex[1:]
	}

	var r, g, b, a uint8 = 0, 0, 0, 255

	switch len(hex) {
	case 6:
		val, err := strconv.ParseUint(hex, 16, 32)
		if err != nil {
			return color.RGBA{}, err
		}
		r = uint8(val >> 16)
		g = uint8(val >> 8)
		b = uint8(val)
	case 8:
		val, err := strconv.ParseUint(hex, 16, 32)
		if err != nil {
			return color.RGBA{}, err
		}
		r = uint8(val >> 24)
		g = uint8(val >> 16)
		b = uint8(val >> 8)
		a = uint8(val)
	default:
		return color.RGBA{}, fmt.Errorf("invalid hex color length")
	}

	return color.RGBA{R: r, G: g, B: b, A: a}, nil
}

// drawLabel draws a label in a 3x5 pixel font on a filled background box.
func drawLabel(img draw.Image, x, y int, text string, fg, bg color.RGBA) {
	// Simple 3x5 pixel font for digits and comma
	glyphs := map[rune][]string{
		'0': {"111", "101", "101", "101", "111"},
		'1': {"010", "110", "010", "010", "111"},
		'2': {"111", "001", "111", "100", "111"},
		'3': {"111", "001", "111", "001", "111"},
		'4': {"101", "101", "111", "001", "001"},
		'5': {"111", "100", "111", "001", "111"},
		'6': {"111", "100", "111", "101", "111"},
		'7': {"111", "001", "001", "001", "001"},
		'8': {"111", "101", "111", "101", "111"},
		'9': {"111", "101", "111", "001", "111"},
		',': {"000", "000", "000", "010", "010"},
	}

	bounds := img.Bounds()
	charWidth := 4
	labelWidth := len(text) * charWidth
	labelHeight := 7

	// Draw background
	for dy := -1; dy < labelHeight; dy++ {
		for dx := -1; dx < labelWidth; dx++ {
			px, py := x+dx, y+dy
			if px >= bounds.Min.X && px < bounds.Max.X && py >= bounds.Min.Y && py < bounds.Max.Y {
				img.Set(px, py, bg)
			}
		}
	}

	// Draw text
	cx := x
	for _, ch := range text {
		glyph, ok := glyphs[ch]
		if !ok {
			cx += charWidth
			continue
		}
		for row, line := range glyph {
			for col, pixel := range line {
				if pixel == '1' {
					px, py := cx+col, y+row
					if px >= bounds.Min.X && px < bounds.Max.X && py >= bounds.Min.Y && py < bounds.Max.Y {
						img.Set(px, py, fg)
					}
				}
			}
		}
		cx += charWidth
	}
}
