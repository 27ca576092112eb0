package imaging

import (
	"image"
	"testing"

	"github.com/disintegration/imaging"
)

// createAsymmetricImage creates an image where every pixel differs from its
// rotated counterparts, so any misplaced pixel shows up.
func createAsymmetricImage(t *testing.T, width, height int) *Image {
	t.Helper()
	img := mustNew(t, width, height)
	for v := 0; v < height; v++ {
		for u := 0; u < width; u++ {
			img.SetPixel(u, v, mustAlloc(t, img, MakeRGB(uint8(u), uint8(v), 7)))
		}
	}
	return img
}

func mustRotate(t *testing.T, rotate func(*Image) (*Image, error), img *Image) *Image {
	t.Helper()
	out, err := rotate(img)
	if err != nil {
		t.Fatalf("rotate failed: %v", err)
	}
	return out
}

func TestRotate90CW(t *testing.T) {
	img := createAsymmetricImage(t, 3, 2)

	out := mustRotate(t, Rotate90CW, img)

	if out.Width() != 2 || out.Height() != 3 {
		t.Fatalf("dimensions: got %dx%d, want 2x3", out.Width(), out.Height())
	}
	for v := 0; v < 2; v++ {
		for u := 0; u < 3; u++ {
			if got, want := out.Pixel(2-1-v, u), img.Pixel(u, v); got != want {
				t.Errorf("source (%d,%d): got %d, want %d", u, v, got, want)
			}
		}
	}
}

func TestRotate180CW(t *testing.T) {
	img := createAsymmetricImage(t, 4, 3)

	out := mustRotate(t, Rotate180CW, img)

	if out.Width() != 4 || out.Height() != 3 {
		t.Fatalf("dimensions: got %dx%d, want 4x3", out.Width(), out.Height())
	}
	for v := 0; v < 3; v++ {
		for u := 0; u < 4; u++ {
			if got, want := out.Pixel(3-u, 2-v), img.Pixel(u, v); got != want {
				t.Errorf("source (%d,%d): got %d, want %d", u, v, got, want)
			}
		}
	}
}

func TestRotate_Compositions(t *testing.T) {
	img := mustChess(t, 50, 30, 7, MakeRGB(200, 10, 10))
	img.SetPixel(0, 0, BlackLabel)

	r90 := mustRotate(t, Rotate90CW, img)
	r180 := mustRotate(t, Rotate180CW, img)
	r270 := mustRotate(t, Rotate270CW, img)

	tests := []struct {
		name string
		got  *Image
		want *Image
	}{
		{"4 x 90 is identity", mustRotate(t, Rotate90CW, mustRotate(t, Rotate90CW, mustRotate(t, Rotate90CW, r90))), img},
		{"2 x 180 is identity", mustRotate(t, Rotate180CW, r180), img},
		{"90 then 90 is 180", mustRotate(t, Rotate90CW, r90), r180},
		{"180 then 90 is 270", mustRotate(t, Rotate90CW, r180), r270},
		{"270 then 90 is identity", mustRotate(t, Rotate90CW, r270), img},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if !tt.got.Equal(tt.want) {
				t.Error("images differ")
			}
		})
	}

	if r90.Equal(img) || r270.Equal(r90) {
		t.Error("asymmetric image should change under rotation")
	}
}

func TestRotate_DoesNotModifySource(t *testing.T) {
	img := createAsymmetricImage(t, 5, 4)
	before := img.Copy()

	for _, rotate := range []func(*Image) (*Image, error){Rotate90CW, Rotate180CW, Rotate270CW} {
		out := mustRotate(t, rotate, img)
		if out.NumColors() != img.NumColors() {
			t.Errorf("LUT should be copied verbatim: got %d colors, want %d", out.NumColors(), img.NumColors())
		}
	}
	if !img.Equal(before) {
		t.Error("source image changed")
	}
}

func TestRotate_MatchesRenderedRotation(t *testing.T) {
	img := createAsymmetricImage(t, 6, 4)

	// disintegration/imaging rotates counter-clockwise.
	tests := []struct {
		name   string
		rotate func(*Image) (*Image, error)
		ref    func(image.Image) *image.NRGBA
	}{
		{"90", Rotate90CW, imaging.Rotate270},
		{"180", Rotate180CW, imaging.Rotate180},
		{"270", Rotate270CW, imaging.Rotate90},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Render(mustRotate(t, tt.rotate, img), RenderOptions{})
			want := tt.ref(Render(img, RenderOptions{}))

			if got.Bounds() != want.Bounds() {
				t.Fatalf("bounds: got %v, want %v", got.Bounds(), want.Bounds())
			}
			for y := 0; y < got.Bounds().Dy(); y++ {
				for x := 0; x < got.Bounds().Dx(); x++ {
					if got.NRGBAAt(x, y) != want.NRGBAAt(x, y) {
						t.Fatalf("pixel (%d,%d): got %v, want %v", x, y, got.NRGBAAt(x, y), want.NRGBAAt(x, y))
					}
				}
			}
		})
	}
}
