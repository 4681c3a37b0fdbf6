package imaging

import (
	"errors"
	"testing"
)

func TestSampleColor(t *testing.T) {
	img := uniform(t, 10, 10, Color{R: 255, G: 128, B: 64})

	result, err := SampleColor(img, 5, 5)
	if err != nil {
		t.Fatalf("SampleColor failed: %v", err)
	}

	if result.Hex != "#FF8040" {
		t.Errorf("Hex: got %s, want #FF8040", result.Hex)
	}
	if result.RGB != (Color{R: 255, G: 128, B: 64}) {
		t.Errorf("RGB: got %v, want (255,128,64)", result.RGB)
	}
	if result.Row != 5 || result.Column != 5 {
		t.Errorf("coordinates: got (%d,%d), want (5,5)", result.Row, result.Column)
	}
}

func TestSampleColor_KnownColors(t *testing.T) {
	tests := []struct {
		name    string
		color   Color
		wantHex string
		wantHSL HSLColor
	}{
		{"pure red", Color{R: 255}, "#FF0000", HSLColor{H: 0, S: 100, L: 50}},
		{"pure green", Color{G: 255}, "#00FF00", HSLColor{H: 120, S: 100, L: 50}},
		{"pure blue", Color{B: 255}, "#0000FF", HSLColor{H: 240, S: 100, L: 50}},
		{"white", Color{R: 255, G: 255, B: 255}, "#FFFFFF", HSLColor{H: 0, S: 0, L: 100}},
		{"black", Color{}, "#000000", HSLColor{H: 0, S: 0, L: 0}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			img := uniform(t, 2, 2, tt.color)
			result, err := SampleColor(img, 1, 1)
			if err != nil {
				t.Fatalf("SampleColor failed: %v", err)
			}
			if result.Hex != tt.wantHex {
				t.Errorf("Hex: got %s, want %s", result.Hex, tt.wantHex)
			}
			if result.HSL != tt.wantHSL {
				t.Errorf("HSL: got %+v, want %+v", result.HSL, tt.wantHSL)
			}
		})
	}
}

func TestSampleColor_OutOfBounds(t *testing.T) {
	img := uniform(t, 10, 20, Color{R: 255})

	tests := []struct {
		name     string
		row, col int
	}{
		{"negative row", -1, 5},
		{"negative column", 5, -1},
		{"row too large", 10, 5},
		{"column too large", 5, 20},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := SampleColor(img, tt.row, tt.col)
			if !errors.Is(err, ErrInvalidArgument) {
				t.Errorf("got %v, want ErrInvalidArgument", err)
			}
		})
	}
}
