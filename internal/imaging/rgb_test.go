package imaging

import (
	"image/color"
	"testing"
)

func TestMakeRGB(t *testing.T) {
	c := MakeRGB(0x12, 0x34, 0x56)
	if c != 0x123456 {
		t.Errorf("MakeRGB: got %#06x, want 0x123456", uint32(c))
	}

	r, g, b := c.Components()
	if r != 0x12 || g != 0x34 || b != 0x56 {
		t.Errorf("Components: got (%d,%d,%d)", r, g, b)
	}
}

func TestNext(t *testing.T) {
	tests := []struct {
		name string
		c    RGB
		want RGB
	}{
		{"from black", Black, 7639},
		{"from seed blue", 0x0000FF, 0x0000FF + 7639},
		{"wraps at 24 bits", White, 7638},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.c.Next(); got != tt.want {
				t.Errorf("Next(%#06x): got %#06x, want %#06x", uint32(tt.c), uint32(got), uint32(tt.want))
			}
		})
	}
}

func TestNext_Deterministic(t *testing.T) {
	a, b := RGB(0x0000FF), RGB(0x0000FF)
	for i := 0; i < 1000; i++ {
		a, b = a.Next(), b.Next()
		if a != b || a > 0xFFFFFF {
			t.Fatalf("step %d: %#06x vs %#06x", i, uint32(a), uint32(b))
		}
	}
}

func TestHexAndString(t *testing.T) {
	c := MakeRGB(255, 128, 0)

	if got := c.Hex(); got != "#ff8000" {
		t.Errorf("Hex: got %s, want #ff8000", got)
	}
	if got := c.String(); got != "(255,128,  0)" {
		t.Errorf("String: got %q, want %q", got, "(255,128,  0)")
	}
}

func TestParseRGB(t *testing.T) {
	tests := []struct {
		input   string
		want    RGB
		wantErr bool
	}{
		{"#ff0000", 0xFF0000, false},
		{"#00FF00", 0x00FF00, false},
		{"#123456", 0x123456, false},
		{"#fff", White, false},
		{"ff0000", 0, true},
		{"#gggggg", 0, true},
		{"", 0, true},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := ParseRGB(tt.input)
			if (err != nil) != tt.wantErr {
				t.Fatalf("error: got %v, wantErr %v", err, tt.wantErr)
			}
			if !tt.wantErr && got != tt.want {
				t.Errorf("got %#06x, want %#06x", uint32(got), uint32(tt.want))
			}
		})
	}
}

func TestRGBFromColor(t *testing.T) {
	tests := []struct {
		name string
		c    color.Color
		want RGB
	}{
		{"opaque rgba", color.RGBA{10, 20, 30, 255}, 0x0A141E},
		{"gray", color.Gray{Y: 128}, 0x808080},
		{"nrgba", color.NRGBA{255, 0, 0, 255}, 0xFF0000},
		{"transparent", color.RGBA{}, White},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := RGBFromColor(tt.c); got != tt.want {
				t.Errorf("got %#06x, want %#06x", uint32(got), uint32(tt.want))
			}
		})
	}
}

func TestRGBA(t *testing.T) {
	if got := MakeRGB(1, 2, 3).RGBA(); got != (color.RGBA{1, 2, 3, 255}) {
		t.Errorf("RGBA: got %v", got)
	}
}
