package imaging

import (
	"fmt"

	"github.com/ironsheep/lutimage-mcp/internal/instr"
)

// Region represents a rectangular region within an image.
//
// Coordinates follow the standard image convention:
//   - (X1, Y1) is the top-left corner (inclusive)
//   - (X2, Y2) is the bottom-right corner (exclusive)
//   - Width = X2 - X1, Height = Y2 - Y1
type Region struct {
	X1 int `json:"x1"` // Left edge X coordinate (inclusive)
	Y1 int `json:"y1"` // Top edge Y coordinate (inclusive)
	X2 int `json:"x2"` // Right edge X coordinate (exclusive)
	Y2 int `json:"y2"` // Bottom edge Y coordinate (exclusive)
}

// Crop returns a new image holding the given region of img.
//
// The LUT is copied verbatim, so the crop may list colors none of its pixels
// use. img is not modified.
func Crop(img *Image, r Region) (*Image, error) {
	if r.X1 < 0 || r.Y1 < 0 || r.X2 > img.width || r.Y2 > img.height {
		return nil, fmt.Errorf("%w: crop region (%d,%d)-(%d,%d) outside %dx%d image",
			ErrOutOfBounds, r.X1, r.Y1, r.X2, r.Y2, img.width, img.height)
	}
	if r.X1 >= r.X2 || r.Y1 >= r.Y2 {
		return nil, fmt.Errorf("%w: x1 must be < x2, y1 must be < y2", ErrInvalidDimensions)
	}

	w := r.X2 - r.X1
	dst, err := newLike(img, w, r.Y2-r.Y1)
	if err != nil {
		return nil, err
	}
	for v := r.Y1; v < r.Y2; v++ {
		copy(dst.pix[(v-r.Y1)*w:(v-r.Y1+1)*w], img.pix[v*img.width+r.X1:v*img.width+r.X2])
	}
	instr.PixMem.Add(2 * len(dst.pix))

	return dst, nil
}

// CropQuadrant extracts a named region from an image.
//
// Recognised names are top-left, top-right, bottom-left, bottom-right,
// top-half, bottom-half, left-half, right-half and center (the middle 50%).
func CropQuadrant(img *Image, region string) (*Image, error) {
	w := img.width
	h := img.height
	midX := w / 2
	midY := h / 2

	var r Region

	switch region {
	case "top-left":
		r = Region{0, 0, midX, midY}
	case "top-right":
		r = Region{midX, 0, w, midY}
	case "bottom-left":
		r = Region{0, midY, midX, h}
	case "bottom-right":
		r = Region{midX, midY, w, h}
	case "top-half":
		r = Region{0, 0, w, midY}
	case "bottom-half":
		r = Region{0, midY, w, h}
	case "left-half":
		r = Region{0, 0, midX, h}
	case "right-half":
		r = Region{midX, 0, w, h}
	case "center":
		qW := w / 4
		qH := h / 4
		r = Region{qW, qH, w - qW, h - qH}
	default:
		return nil, fmt.Errorf("unknown region: %s", region)
	}

	return Crop(img, r)
}
