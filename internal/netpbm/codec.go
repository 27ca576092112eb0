package netpbm

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/ironsheep/lutimage-mcp/internal/imaging"
)

// Format names an on-disk image format.
type Format string

const (
	FormatPBM Format = "pbm"
	FormatPPM Format = "ppm"
)

// Decode sniffs the magic number of r and decodes a PBM or PPM image,
// returning the format it found.
func Decode(r io.Reader) (*imaging.Image, Format, error) {
	br := bufio.NewReader(r)
	magic, err := br.Peek(2)
	if err != nil {
		return nil, "", fmt.Errorf("%w: reading magic number: %v", ErrFormat, err)
	}

	switch string(magic) {
	case "P4":
		img, err := DecodePBM(br)
		return img, FormatPBM, err
	case "P3":
		img, err := DecodePPM(br)
		return img, FormatPPM, err
	default:
		return nil, "", fmt.Errorf("%w: magic %q", ErrUnsupported, magic)
	}
}

// Load opens path and decodes it as PBM or PPM according to its contents.
func Load(path string) (*imaging.Image, Format, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, "", fmt.Errorf("failed to open image: %w", err)
	}
	defer f.Close()

	img, format, err := Decode(f)
	if err != nil {
		return nil, "", fmt.Errorf("%s: %w", path, err)
	}
	return img, format, nil
}

// Save writes img to path in the format chosen by its extension. ".pbm" and
// ".ppm" use the codecs of this package; any other extension is rendered
// through imaging.Export at natural size.
func Save(img *imaging.Image, path string) error {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".pbm":
		return SavePBM(img, path)
	case ".ppm":
		return SavePPM(img, path)
	default:
		return imaging.Export(img, path, imaging.RenderOptions{})
	}
}
