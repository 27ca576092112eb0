package netpbm

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/ironsheep/lutimage-mcp/internal/imaging"
)

// DecodePPM reads a plain-text PPM ("P3") image from r.
//
// Samples are stored as read, without rescaling by maxval. Each triplet is
// resolved with AllocColor, so pixels of the same color share a label and
// the LUT keeps the reserved White and Black entries at labels 0 and 1.
func DecodePPM(r io.Reader) (*imaging.Image, error) {
	t := newTokenReader(r)
	if err := t.magic('3'); err != nil {
		return nil, err
	}
	w, h, err := t.dimensions()
	if err != nil {
		return nil, err
	}
	maxval, err := t.headerField("maxval")
	if err != nil {
		return nil, err
	}
	if maxval < 0 || maxval > 255 {
		return nil, fmt.Errorf("%w: maxval %d", ErrDepth, maxval)
	}
	if err := t.separator(); err != nil {
		return nil, err
	}

	img, err := imaging.New(w, h)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrDimensions, err)
	}

	var rgb [3]uint8
	for v := 0; v < h; v++ {
		for u := 0; u < w; u++ {
			for i := range rgb {
				n, err := t.number(false)
				if errors.Is(err, io.EOF) || errors.Is(err, io.ErrUnexpectedEOF) {
					return nil, fmt.Errorf("%w: pixel (%d,%d)", ErrTruncated, u, v)
				}
				if err != nil {
					return nil, fmt.Errorf("%w: pixel (%d,%d): %v", ErrPixel, u, v, err)
				}
				if n < 0 || n > maxval {
					return nil, fmt.Errorf("%w: pixel (%d,%d): sample %d outside 0..%d", ErrPixel, u, v, n, maxval)
				}
				rgb[i] = uint8(n)
			}
			label, err := img.AllocColor(imaging.MakeRGB(rgb[0], rgb[1], rgb[2]))
			if err != nil {
				return nil, fmt.Errorf("pixel (%d,%d): %w", u, v, err)
			}
			img.SetPixel(u, v, label)
		}
	}

	return img, nil
}

// EncodePPM writes img to w as a plain-text PPM ("P3") image with maxval 255,
// one space-padded triplet per pixel and one line per row.
func EncodePPM(w io.Writer, img *imaging.Image) error {
	width, height := img.Width(), img.Height()
	bw := bufio.NewWriter(w)
	fmt.Fprintf(bw, "P3\n%d %d\n255\n", width, height)

	for v := 0; v < height; v++ {
		for u := 0; u < width; u++ {
			r, g, b := img.ColorOf(img.Pixel(u, v)).Components()
			fmt.Fprintf(bw, "  %3d %3d %3d", r, g, b)
		}
		bw.WriteByte('\n')
	}

	// bufio.Writer keeps the first write error and reports it here.
	if err := bw.Flush(); err != nil {
		return fmt.Errorf("failed to write PPM: %w", err)
	}
	return nil
}

// LoadPPM reads a plain-text PPM file.
func LoadPPM(path string) (*imaging.Image, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open image: %w", err)
	}
	defer f.Close()

	img, err := DecodePPM(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return img, nil
}

// SavePPM writes img to path as a plain-text PPM file.
func SavePPM(img *imaging.Image, path string) error {
	return saveFile(path, func(w io.Writer) error { return EncodePPM(w, img) })
}
