package imaging

import "testing"

// mustNew creates a blank image or fails the test.
func mustNew(t *testing.T, width, height int) *Image {
	t.Helper()
	img, err := New(width, height)
	if err != nil {
		t.Fatalf("New(%d, %d) failed: %v", width, height, err)
	}
	return img
}

// mustChess creates a chess image or fails the test.
func mustChess(t *testing.T, width, height, edge int, c RGB) *Image {
	t.Helper()
	img, err := NewChess(width, height, edge, c)
	if err != nil {
		t.Fatalf("NewChess(%d, %d, %d) failed: %v", width, height, edge, err)
	}
	return img
}

// mustAlloc allocates a color or fails the test.
func mustAlloc(t *testing.T, img *Image, c RGB) Label {
	t.Helper()
	label, err := img.AllocColor(c)
	if err != nil {
		t.Fatalf("AllocColor(%s) failed: %v", c.Hex(), err)
	}
	return label
}

// createPatternImage creates an image with a different color in each
// quadrant: red top-left, green top-right, blue bottom-left, white
// bottom-right.
func createPatternImage(t *testing.T, width, height int) *Image {
	t.Helper()
	img := mustNew(t, width, height)
	red := mustAlloc(t, img, 0xFF0000)
	green := mustAlloc(t, img, 0x00FF00)
	blue := mustAlloc(t, img, 0x0000FF)

	for v := 0; v < height; v++ {
		for u := 0; u < width; u++ {
			switch {
			case u < width/2 && v < height/2:
				img.SetPixel(u, v, red)
			case u >= width/2 && v < height/2:
				img.SetPixel(u, v, green)
			case u < width/2 && v >= height/2:
				img.SetPixel(u, v, blue)
			}
		}
	}
	return img
}
