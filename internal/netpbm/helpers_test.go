package netpbm

import (
	"os"
	"testing"

	"github.com/ironsheep/lutimage-mcp/internal/imaging"
)

// writeTempFile writes data to a new temporary file with the given name
// pattern and returns its path. The file is removed when the test ends.
func writeTempFile(t *testing.T, pattern string, data []byte) string {
	t.Helper()
	tmpFile, err := os.CreateTemp("", pattern)
	if err != nil {
		t.Fatalf("failed to create temp file: %v", err)
	}
	defer tmpFile.Close()
	t.Cleanup(func() { os.Remove(tmpFile.Name()) })

	if _, err := tmpFile.Write(data); err != nil {
		t.Fatalf("failed to write temp file: %v", err)
	}
	return tmpFile.Name()
}

func mustChess(t *testing.T, width, height, edge int, c imaging.RGB) *imaging.Image {
	t.Helper()
	img, err := imaging.NewChess(width, height, edge, c)
	if err != nil {
		t.Fatalf("NewChess failed: %v", err)
	}
	return img
}

// sameColors reports whether a and b have the same size and render the same
// RGB color at every pixel, regardless of label assignment.
func sameColors(a, b *imaging.Image) bool {
	if a.Width() != b.Width() || a.Height() != b.Height() {
		return false
	}
	for v := 0; v < a.Height(); v++ {
		for u := 0; u < a.Width(); u++ {
			if a.ColorOf(a.Pixel(u, v)) != b.ColorOf(b.Pixel(u, v)) {
				return false
			}
		}
	}
	return true
}
