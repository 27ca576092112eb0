package imaging

import "github.com/ironsheep/lutimage-mcp/internal/instr"

// Outline returns a two-color image marking region boundaries of img.
//
// A pixel is Black in the result when at least one of its 4-connected
// neighbours inside the image carries a different label, and White
// otherwise. Image borders do not count as boundaries. img is not modified.
//
// The result is a valid bitmap and can be saved as PBM.
func Outline(img *Image) (*Image, error) {
	w, h := img.width, img.height
	dst, err := New(w, h)
	if err != nil {
		return nil, err
	}

	for v := 0; v < h; v++ {
		for u := 0; u < w; u++ {
			label := img.pix[v*w+u]
			edge := (u+1 < w && img.pix[v*w+u+1] != label) ||
				(u > 0 && img.pix[v*w+u-1] != label) ||
				(v+1 < h && img.pix[(v+1)*w+u] != label) ||
				(v > 0 && img.pix[(v-1)*w+u] != label)
			if edge {
				dst.pix[v*w+u] = BlackLabel
			}
		}
	}
	instr.PixMem.Add(6 * w * h)

	return dst, nil
}
