package imaging

import (
	"errors"
	"testing"
)

func TestCrop(t *testing.T) {
	img := createPatternImage(t, 100, 100)

	result, err := Crop(img, Region{0, 0, 50, 50})
	if err != nil {
		t.Fatalf("Crop failed: %v", err)
	}

	if result.Width() != 50 || result.Height() != 50 {
		t.Errorf("dimensions: got %dx%d, want 50x50", result.Width(), result.Height())
	}
	if result.NumColors() != img.NumColors() {
		t.Errorf("LUT should be copied verbatim: got %d colors, want %d", result.NumColors(), img.NumColors())
	}
}

func TestCrop_OutOfBounds(t *testing.T) {
	img := mustNew(t, 100, 100)

	tests := []struct {
		name           string
		x1, y1, x2, y2 int
	}{
		{"x1 negative", -1, 0, 50, 50},
		{"y1 negative", 0, -1, 50, 50},
		{"x2 too large", 0, 0, 101, 50},
		{"y2 too large", 0, 0, 50, 101},
		{"all out of bounds", -1, -1, 200, 200},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Crop(img, Region{tt.x1, tt.y1, tt.x2, tt.y2})
			if !errors.Is(err, ErrOutOfBounds) {
				t.Errorf("got %v, want ErrOutOfBounds", err)
			}
		})
	}
}

func TestCrop_InvalidRegion(t *testing.T) {
	img := mustNew(t, 100, 100)

	tests := []struct {
		name           string
		x1, y1, x2, y2 int
	}{
		{"x1 >= x2", 50, 0, 50, 50},
		{"x1 > x2", 60, 0, 50, 50},
		{"y1 >= y2", 0, 50, 50, 50},
		{"y1 > y2", 0, 60, 50, 50},
		{"zero area", 50, 50, 50, 50},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Crop(img, Region{tt.x1, tt.y1, tt.x2, tt.y2})
			if !errors.Is(err, ErrInvalidDimensions) {
				t.Errorf("got %v, want ErrInvalidDimensions", err)
			}
		})
	}
}

func TestCrop_FullImage(t *testing.T) {
	img := createPatternImage(t, 100, 100)

	result, err := Crop(img, Region{0, 0, 100, 100})
	if err != nil {
		t.Fatalf("Crop full image failed: %v", err)
	}

	if !result.Equal(img) {
		t.Error("cropping the full image should produce an equal image")
	}
	if result == img {
		t.Error("Crop must return a new image")
	}
}

func TestCrop_VerifyContent(t *testing.T) {
	img := createPatternImage(t, 100, 100)
	red, _ := img.FindColor(0xFF0000)
	green, _ := img.FindColor(0x00FF00)

	result, err := Crop(img, Region{40, 10, 60, 20})
	if err != nil {
		t.Fatalf("Crop failed: %v", err)
	}

	for v := 0; v < result.Height(); v++ {
		for u := 0; u < result.Width(); u++ {
			want := red
			if u >= 10 {
				want = green
			}
			if got := result.Pixel(u, v); got != want {
				t.Fatalf("pixel (%d,%d): got %d, want %d", u, v, got, want)
			}
		}
	}
}

func TestCrop_DoesNotModifySource(t *testing.T) {
	img := createPatternImage(t, 100, 100)
	before := img.Copy()

	result, err := Crop(img, Region{0, 0, 50, 50})
	if err != nil {
		t.Fatalf("Crop failed: %v", err)
	}
	result.SetPixel(0, 0, BlackLabel)
	mustAlloc(t, result, 0x123456)

	if !img.Equal(before) {
		t.Error("source image changed")
	}
}

func TestCropQuadrant(t *testing.T) {
	img := createPatternImage(t, 100, 100)

	tests := []struct {
		region       string
		wantW, wantH int
	}{
		{"top-left", 50, 50},
		{"top-right", 50, 50},
		{"bottom-left", 50, 50},
		{"bottom-right", 50, 50},
		{"top-half", 100, 50},
		{"bottom-half", 100, 50},
		{"left-half", 50, 100},
		{"right-half", 50, 100},
		{"center", 50, 50},
	}

	for _, tt := range tests {
		t.Run(tt.region, func(t *testing.T) {
			result, err := CropQuadrant(img, tt.region)
			if err != nil {
				t.Fatalf("CropQuadrant(%s) failed: %v", tt.region, err)
			}

			if result.Width() != tt.wantW || result.Height() != tt.wantH {
				t.Errorf("dimensions: got %dx%d, want %dx%d",
					result.Width(), result.Height(), tt.wantW, tt.wantH)
			}
		})
	}
}

func TestCropQuadrant_InvalidRegion(t *testing.T) {
	img := mustNew(t, 100, 100)

	invalidRegions := []string{"invalid", "TOP-LEFT", "middle", "", "center-left"}

	for _, region := range invalidRegions {
		t.Run(region, func(t *testing.T) {
			_, err := CropQuadrant(img, region)
			if err == nil {
				t.Errorf("CropQuadrant should fail for invalid region %q", region)
			}
		})
	}
}

func TestCropQuadrant_VerifyContent(t *testing.T) {
	img := createPatternImage(t, 100, 100)

	tests := []struct {
		region  string
		wantHex string
	}{
		{"top-left", "#ff0000"},
		{"top-right", "#00ff00"},
		{"bottom-left", "#0000ff"},
		{"bottom-right", "#ffffff"},
	}

	for _, tt := range tests {
		t.Run(tt.region, func(t *testing.T) {
			result, err := CropQuadrant(img, tt.region)
			if err != nil {
				t.Fatalf("CropQuadrant(%s) failed: %v", tt.region, err)
			}

			label := result.Pixel(result.Width()/2, result.Height()/2)
			if gotHex := result.ColorOf(label).Hex(); gotHex != tt.wantHex {
				t.Errorf("color in %s: got %s, want %s", tt.region, gotHex, tt.wantHex)
			}
		})
	}
}

func TestCropQuadrant_OddDimensions(t *testing.T) {
	img := mustNew(t, 101, 101)

	result, err := CropQuadrant(img, "top-left")
	if err != nil {
		t.Fatalf("CropQuadrant with odd dimensions failed: %v", err)
	}

	// 101/2 = 50 (integer division)
	if result.Width() != 50 || result.Height() != 50 {
		t.Errorf("dimensions: got %dx%d, want 50x50", result.Width(), result.Height())
	}
}
