package imaging

import (
	"fmt"
	"image"
	"image/color"
	"io"

	"github.com/ironsheep/lutimage-mcp/internal/instr"
)

// Label is a pixel value: an index into the image's LUT.
type Label uint16

const (
	// WhiteLabel is the label reserved for White in every LUT. Segmentation
	// treats it as the unvisited background.
	WhiteLabel Label = 0
	// BlackLabel is the label reserved for Black in every LUT.
	BlackLabel Label = 1
)

const (
	// MaxColors is the fixed capacity of every LUT.
	MaxColors = 1000

	// MaxPixels bounds width*height so that a hostile header cannot make the
	// process attempt an absurd allocation.
	MaxPixels = 1 << 28
)

// Image is an indexed-color raster: a row-major grid of labels plus a LUT
// mapping each label to an RGB color.
//
// Every stored label is below NumColors. The LUT only grows. Images never
// share storage; Copy and the transforms always allocate fresh buffers.
//
// Image implements image.Image so it can be handed to standard and
// third-party encoders directly. The methods are not safe for concurrent
// mutation.
type Image struct {
	width  int
	height int
	pix    []Label // len = width*height, stride = width
	lut    []RGB   // len = NumColors, cap = MaxColors
}

// New creates a width x height image with every pixel set to WhiteLabel and
// the LUT seeded with {White, Black}.
//
// It returns ErrInvalidDimensions if either dimension is not positive and
// ErrTooLarge if the grid would exceed MaxPixels.
func New(width, height int) (*Image, error) {
	if width <= 0 || height <= 0 {
		return nil, fmt.Errorf("%w: %dx%d", ErrInvalidDimensions, width, height)
	}
	if width > MaxPixels/height {
		return nil, fmt.Errorf("%w: %dx%d", ErrTooLarge, width, height)
	}

	lut := make([]RGB, 2, MaxColors)
	lut[WhiteLabel] = White
	lut[BlackLabel] = Black

	return &Image{
		width:  width,
		height: height,
		pix:    make([]Label, width*height),
		lut:    lut,
	}, nil
}

// NewChess creates an image with a chess pattern of edge x edge squares.
// The square containing pixel (0,0) and every square of the same parity get
// color c; the others stay White.
func NewChess(width, height, edge int, c RGB) (*Image, error) {
	if edge <= 0 {
		return nil, fmt.Errorf("%w: edge %d", ErrInvalidDimensions, edge)
	}
	img, err := New(width, height)
	if err != nil {
		return nil, err
	}

	label, err := img.AllocColor(c)
	if err != nil {
		return nil, err
	}

	for v := 0; v < height; v++ {
		row := img.pix[v*width : (v+1)*width]
		i := v / edge
		for u := range row {
			if (i+u/edge)%2 == 0 {
				row[u] = label
			}
		}
	}
	instr.PixMem.Add(width * height)

	return img, nil
}

// NewPalette creates an image whose LUT is filled to capacity with generated
// colors, tiled in edge x edge squares so that successive tiles use
// successive labels.
func NewPalette(width, height, edge int) (*Image, error) {
	if edge <= 0 {
		return nil, fmt.Errorf("%w: edge %d", ErrInvalidDimensions, edge)
	}
	img, err := New(width, height)
	if err != nil {
		return nil, err
	}

	c := Black
	for len(img.lut) < MaxColors {
		c = c.Next()
		img.lut = append(img.lut, c)
	}

	wtiles := width / edge
	for v := 0; v < height; v++ {
		row := img.pix[v*width : (v+1)*width]
		i := v / edge
		for u := range row {
			row[u] = Label((i*wtiles + u/edge) % MaxColors)
		}
	}
	instr.PixMem.Add(width * height)

	return img, nil
}

// Release drops the pixel grid and LUT. The image must not be used
// afterwards; callers should also drop their reference. Releasing twice is
// harmless but any other call after Release panics.
func (img *Image) Release() {
	img.pix = nil
	img.lut = nil
	img.width = 0
	img.height = 0
}

// Copy returns a deep copy of img: same dimensions, a new grid with the same
// labels and a new LUT with the same entries in the same order.
func (img *Image) Copy() *Image {
	lut := make([]RGB, len(img.lut), MaxColors)
	copy(lut, img.lut)

	pix := make([]Label, len(img.pix))
	copy(pix, img.pix)
	instr.PixMem.Add(len(pix))

	return &Image{width: img.width, height: img.height, pix: pix, lut: lut}
}

// newLike returns a blank width x height image whose LUT is a verbatim copy
// of src's, so labels keep their meaning.
func newLike(src *Image, width, height int) (*Image, error) {
	dst, err := New(width, height)
	if err != nil {
		return nil, err
	}
	dst.lut = dst.lut[:len(src.lut)]
	copy(dst.lut, src.lut)
	return dst, nil
}

// Width returns the number of columns.
func (img *Image) Width() int { return img.width }

// Height returns the number of rows.
func (img *Image) Height() int { return img.height }

// NumColors returns the current LUT length.
func (img *Image) NumColors() int { return len(img.lut) }

// LUT returns a copy of the LUT, indexed by label.
func (img *Image) LUT() []RGB {
	out := make([]RGB, len(img.lut))
	copy(out, img.lut)
	return out
}

// ColorOf returns the RGB color of label. It panics if the label is not in
// the LUT.
func (img *Image) ColorOf(label Label) RGB {
	return img.lut[label]
}

// IsValidPixel reports whether column u and row v lie inside the image.
func (img *Image) IsValidPixel(u, v int) bool {
	return 0 <= u && u < img.width && 0 <= v && v < img.height
}

// Pixel returns the label at column u, row v. It panics if the coordinates
// are outside the image.
func (img *Image) Pixel(u, v int) Label {
	if !img.IsValidPixel(u, v) {
		panic(fmt.Sprintf("imaging: Pixel(%d,%d) outside %dx%d image", u, v, img.width, img.height))
	}
	instr.PixMem.Inc()
	return img.pix[v*img.width+u]
}

// SetPixel stores label at column u, row v. It panics if the coordinates are
// outside the image or the label is not in the LUT.
func (img *Image) SetPixel(u, v int, label Label) {
	if !img.IsValidPixel(u, v) {
		panic(fmt.Sprintf("imaging: SetPixel(%d,%d) outside %dx%d image", u, v, img.width, img.height))
	}
	if int(label) >= len(img.lut) {
		panic(fmt.Sprintf("imaging: SetPixel label %d not in LUT of %d colors", label, len(img.lut)))
	}
	instr.PixMem.Inc()
	img.pix[v*img.width+u] = label
}

// FindColor returns the label of c, scanning the LUT in order.
func (img *Image) FindColor(c RGB) (Label, bool) {
	for i, entry := range img.lut {
		if entry == c {
			return Label(i), true
		}
	}
	return 0, false
}

// AllocColor returns the label of c, appending it to the LUT if it is not
// already there. It returns ErrLUTOverflow when a new entry is needed and
// the LUT is full; existing entries are never touched.
func (img *Image) AllocColor(c RGB) (Label, error) {
	if label, ok := img.FindColor(c); ok {
		return label, nil
	}
	return img.AddColor(c)
}

// AddColor appends c to the LUT even if an equal color is already present
// and returns its new label. It returns ErrLUTOverflow when the LUT is full.
func (img *Image) AddColor(c RGB) (Label, error) {
	if len(img.lut) >= MaxColors {
		return 0, fmt.Errorf("%w: cannot add %s to %d colors", ErrLUTOverflow, c.Hex(), MaxColors)
	}
	img.lut = append(img.lut, c)
	return Label(len(img.lut) - 1), nil
}

// Equal reports whether img and other have the same dimensions, the same LUT
// entries in the same order, and the same label at every pixel.
//
// Two images that render identically can still differ when their LUTs order
// the same colors differently: label identity is part of equality.
func (img *Image) Equal(other *Image) bool {
	if img == nil || other == nil {
		return false
	}
	if img == other {
		return true
	}
	if img.width != other.width || img.height != other.height {
		return false
	}
	if len(img.lut) != len(other.lut) {
		return false
	}
	for i := range img.lut {
		if img.lut[i] != other.lut[i] {
			return false
		}
	}

	w := img.width
	for v := 0; v < img.height; v++ {
		a := img.pix[v*w : (v+1)*w]
		b := other.pix[v*w : (v+1)*w]
		instr.PixMem.Add(2 * w)
		for u := range a {
			if a[u] != b[u] {
				return false
			}
		}
	}
	return true
}

// Different is the negation of Equal.
func (img *Image) Different(other *Image) bool {
	return !img.Equal(other)
}

// ColorModel implements image.Image.
func (img *Image) ColorModel() color.Model { return color.RGBAModel }

// Bounds implements image.Image.
func (img *Image) Bounds() image.Rectangle {
	return image.Rect(0, 0, img.width, img.height)
}

// At implements image.Image. Points outside the image are transparent.
func (img *Image) At(x, y int) color.Color {
	if !img.IsValidPixel(x, y) {
		return color.RGBA{}
	}
	return img.lut[img.pix[y*img.width+x]].RGBA()
}

// WriteRaw writes a human-readable dump of img: dimensions, the label of
// every pixel row by row, and the LUT.
func (img *Image) WriteRaw(w io.Writer) error {
	ew := &errWriter{w: w}
	ew.printf("width = %d height = %d\n", img.width, img.height)
	ew.printf("num_colors = %d\n", len(img.lut))
	ew.printf("RAW image\n")
	for v := 0; v < img.height; v++ {
		for _, label := range img.pix[v*img.width : (v+1)*img.width] {
			ew.printf("%2d", label)
		}
		ew.printf("\n")
	}
	ew.printf("LUT:\n")
	for i, c := range img.lut {
		ew.printf("%3d -> %s\n", i, c)
	}
	ew.printf("\n")
	return ew.err
}

// errWriter remembers the first write error so formatting code can stay
// linear.
type errWriter struct {
	w   io.Writer
	err error
}

func (ew *errWriter) printf(format string, args ...interface{}) {
	if ew.err != nil {
		return
	}
	_, ew.err = fmt.Fprintf(ew.w, format, args...)
}
