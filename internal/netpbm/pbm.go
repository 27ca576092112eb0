package netpbm

import (
	"bufio"
	"fmt"
	"io"
	"os"

	"github.com/ironsheep/lutimage-mcp/internal/imaging"
)

// DecodePBM reads a binary PBM ("P4") image from r.
//
// The result has exactly the {White, Black} LUT: set bits become BlackLabel,
// clear bits WhiteLabel. Padding bits at the end of each row are ignored.
func DecodePBM(r io.Reader) (*imaging.Image, error) {
	t := newTokenReader(r)
	if err := t.magic('4'); err != nil {
		return nil, err
	}
	w, h, err := t.dimensions()
	if err != nil {
		return nil, err
	}
	if err := t.separator(); err != nil {
		return nil, err
	}

	img, err := imaging.New(w, h)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrDimensions, err)
	}

	row := make([]byte, (w+7)/8)
	for v := 0; v < h; v++ {
		if _, err := io.ReadFull(t.r, row); err != nil {
			return nil, fmt.Errorf("%w: row %d of %d: %v", ErrTruncated, v, h, err)
		}
		for u := 0; u < w; u++ {
			if row[u>>3]&(0x80>>(u&7)) != 0 {
				img.SetPixel(u, v, imaging.BlackLabel)
			}
		}
	}

	return img, nil
}

// EncodePBM writes img to w as a binary PBM ("P4") image.
//
// img must have exactly two colors, otherwise ErrNotBitmap is returned and
// nothing is written. Every non-white label is written as a set bit and rows
// are padded with white bits up to the byte boundary.
func EncodePBM(w io.Writer, img *imaging.Image) error {
	if n := img.NumColors(); n != 2 {
		return fmt.Errorf("%w: image has %d colors", ErrNotBitmap, n)
	}

	width, height := img.Width(), img.Height()
	bw := bufio.NewWriter(w)
	fmt.Fprintf(bw, "P4\n%d %d\n", width, height)

	row := make([]byte, (width+7)/8)
	for v := 0; v < height; v++ {
		clear(row)
		for u := 0; u < width; u++ {
			if img.Pixel(u, v) != imaging.WhiteLabel {
				row[u>>3] |= 0x80 >> (u & 7)
			}
		}
		bw.Write(row)
	}

	// bufio.Writer keeps the first write error and reports it here.
	if err := bw.Flush(); err != nil {
		return fmt.Errorf("failed to write PBM: %w", err)
	}
	return nil
}

// LoadPBM reads a binary PBM file.
func LoadPBM(path string) (*imaging.Image, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open image: %w", err)
	}
	defer f.Close()

	img, err := DecodePBM(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return img, nil
}

// SavePBM writes img to path as a binary PBM file.
func SavePBM(img *imaging.Image, path string) error {
	return saveFile(path, func(w io.Writer) error { return EncodePBM(w, img) })
}

// saveFile creates path and hands it to encode, reporting close errors so a
// short write on a full disk is not lost.
func saveFile(path string, encode func(io.Writer) error) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create file: %w", err)
	}
	if err := encode(f); err != nil {
		f.Close()
		return fmt.Errorf("%s: %w", path, err)
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("%s: %w", path, err)
	}
	return nil
}
