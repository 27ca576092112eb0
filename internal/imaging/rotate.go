package imaging

import "github.com/ironsheep/lutimage-mcp/internal/instr"

// Rotate90CW returns a new image holding img rotated 90 degrees clockwise.
//
// The result is height x width. The pixel at row v, column u of img lands at
// row u, column height-1-v. The LUT is copied verbatim and img is not
// modified.
func Rotate90CW(img *Image) (*Image, error) {
	w, h := img.width, img.height
	dst, err := newLike(img, h, w)
	if err != nil {
		return nil, err
	}

	for v := 0; v < h; v++ {
		src := img.pix[v*w : (v+1)*w]
		col := h - 1 - v
		for u, label := range src {
			dst.pix[u*h+col] = label
		}
	}
	instr.PixMem.Add(2 * w * h)

	return dst, nil
}

// Rotate180CW returns a new image holding img rotated 180 degrees.
//
// The result has the same dimensions. The pixel at row v, column u of img
// lands at row height-1-v, column width-1-u. The LUT is copied verbatim and
// img is not modified.
func Rotate180CW(img *Image) (*Image, error) {
	w, h := img.width, img.height
	dst, err := newLike(img, w, h)
	if err != nil {
		return nil, err
	}

	// Row-major order reversed is exactly the 180 degree rotation.
	n := len(img.pix)
	for i, label := range img.pix {
		dst.pix[n-1-i] = label
	}
	instr.PixMem.Add(2 * n)

	return dst, nil
}

// Rotate270CW returns img rotated 270 degrees clockwise (90 counter-clockwise).
func Rotate270CW(img *Image) (*Image, error) {
	half, err := Rotate180CW(img)
	if err != nil {
		return nil, err
	}
	return Rotate90CW(half)
}
