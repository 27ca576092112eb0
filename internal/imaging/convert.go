package imaging

import (
	"fmt"
	"image"
	"io"

	"github.com/anthonynsimon/bild/imgio"
	"github.com/anthonynsimon/bild/segment"
	"github.com/disintegration/imaging"
	_ "golang.org/x/image/bmp"  // Register BMP format decoder
	_ "golang.org/x/image/tiff" // Register TIFF format decoder

	"github.com/ironsheep/lutimage-mcp/internal/instr"
)

// Export renders img and writes it to path. The format is chosen from the
// file extension: .png, .jpg/.jpeg, .gif, .tif/.tiff or .bmp.
func Export(img *Image, path string, opts RenderOptions) error {
	if err := imaging.Save(Render(img, opts), path); err != nil {
		return fmt.Errorf("failed to export image: %w", err)
	}
	return nil
}

// Encode renders img and writes it to w in the format named by ext
// (for example ".png").
func Encode(w io.Writer, img *Image, ext string, opts RenderOptions) error {
	format, err := imaging.FormatFromExtension(ext)
	if err != nil {
		return fmt.Errorf("failed to encode image: %w", err)
	}
	if err := imaging.Encode(w, Render(img, opts), format); err != nil {
		return fmt.Errorf("failed to encode image: %w", err)
	}
	return nil
}

// FromImage converts any image to an indexed image, giving every distinct
// RGB value its own label. Alpha is dropped.
//
// The LUT starts as {White, Black} like every other image, so an RGB picture
// with more than MaxColors-2 other colors fails with ErrLUTOverflow.
func FromImage(src image.Image) (*Image, error) {
	bounds := src.Bounds()
	img, err := New(bounds.Dx(), bounds.Dy())
	if err != nil {
		return nil, err
	}

	for v := 0; v < img.height; v++ {
		row := img.pix[v*img.width : (v+1)*img.width]
		for u := range row {
			label, err := img.AllocColor(RGBFromColor(src.At(bounds.Min.X+u, bounds.Min.Y+v)))
			if err != nil {
				return nil, fmt.Errorf("pixel (%d,%d): %w", u, v, err)
			}
			row[u] = label
		}
	}
	instr.PixMem.Add(len(img.pix))

	return img, nil
}

// Binarize thresholds src into a two-color bitmap: pixels whose luminance is
// at least level become White, darker pixels become Black.
//
// The result has exactly the {White, Black} LUT, so it can be saved as PBM
// and segmented directly.
func Binarize(src image.Image, level uint8) (*Image, error) {
	gray := segment.Threshold(src, level)
	bounds := gray.Bounds()

	img, err := New(bounds.Dx(), bounds.Dy())
	if err != nil {
		return nil, err
	}
	for v := 0; v < img.height; v++ {
		row := img.pix[v*img.width : (v+1)*img.width]
		for u := range row {
			if gray.GrayAt(bounds.Min.X+u, bounds.Min.Y+v).Y == 0 {
				row[u] = BlackLabel
			}
		}
	}
	instr.PixMem.Add(len(img.pix))

	return img, nil
}

// Import reads a PNG, JPEG, GIF, BMP or TIFF file and binarizes it at the
// given luminance level.
func Import(path string, level uint8) (*Image, error) {
	src, err := imgio.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open image: %w", err)
	}
	return Binarize(src, level)
}
