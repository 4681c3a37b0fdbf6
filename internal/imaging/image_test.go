package imaging

import (
	"errors"
	"image"
	"image/color"
	"testing"
)

func TestNewImage_Invalid(t *testing.T) {
	p := Pixel{}
	tests := []struct {
		name string
		rows [][]Pixel
	}{
		{"nil", nil},
		{"no rows", [][]Pixel{}},
		{"empty row", [][]Pixel{{}}},
		{"ragged", [][]Pixel{{p, p}, {p}}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NewImage(tt.rows)
			if !errors.Is(err, ErrInvalidArgument) {
				t.Errorf("got %v, want ErrInvalidArgument", err)
			}
		})
	}
}

func TestNewImage_CopiesInput(t *testing.T) {
	rows := [][]Pixel{{{Color: Color{R: 1}}, {Color: Color{R: 2}}}}
	img, err := NewImage(rows)
	if err != nil {
		t.Fatalf("NewImage failed: %v", err)
	}

	rows[0][0].Color = Color{R: 99}
	if got := img.At(0, 0).Color.R; got != 1 {
		t.Errorf("image changed with its input: got R=%d, want 1", got)
	}

	out := img.Rows()
	out[0][1].Color = Color{R: 99}
	if got := img.At(0, 1).Color.R; got != 2 {
		t.Errorf("image changed through Rows(): got R=%d, want 2", got)
	}
}

func TestImage_Dimensions(t *testing.T) {
	img := uniform(t, 3, 5, Color{})
	if img.Height() != 3 || img.Width() != 5 {
		t.Errorf("got %dx%d (w x h), want 5x3", img.Width(), img.Height())
	}
	assertPositions(t, img)
}

func TestNewUniformImage_Invalid(t *testing.T) {
	if _, err := NewUniformImage(0, 3, Color{}); !errors.Is(err, ErrInvalidArgument) {
		t.Errorf("zero height: got %v, want ErrInvalidArgument", err)
	}
	if _, err := NewUniformImage(3, -1, Color{}); !errors.Is(err, ErrInvalidArgument) {
		t.Errorf("negative width: got %v, want ErrInvalidArgument", err)
	}
}

func TestImage_EqualAndClone(t *testing.T) {
	a := mustImage(t, [][]Color{{{R: 1}, {G: 2}}, {{B: 3}, {R: 4}}})
	b := a.Clone()
	if !a.Equal(b) {
		t.Error("clone should equal original")
	}

	c := Brighten(a, 1)
	if a.Equal(c) {
		t.Error("brightened image should differ")
	}
	if a.Equal(uniform(t, 1, 2, Color{})) {
		t.Error("images of different size should differ")
	}
	if a.Equal(nil) {
		t.Error("image should not equal nil")
	}
}

func TestFromImage(t *testing.T) {
	src := image.NewNRGBA(image.Rect(0, 0, 2, 3))
	for y := 0; y < 3; y++ {
		for x := 0; x < 2; x++ {
			src.SetNRGBA(x, y, color.NRGBA{R: uint8(x * 100), G: uint8(y * 50), B: 7, A: 255})
		}
	}

	img, err := FromImage(src)
	if err != nil {
		t.Fatalf("FromImage failed: %v", err)
	}
	if img.Width() != 2 || img.Height() != 3 {
		t.Fatalf("dimensions: got %dx%d, want 2x3", img.Width(), img.Height())
	}
	if got := img.At(2, 1).Color; got != (Color{R: 100, G: 100, B: 7}) {
		t.Errorf("pixel (2,1): got %v, want (100,100,7)", got)
	}
	assertPositions(t, img)
}

func TestFromImage_Nil(t *testing.T) {
	if _, err := FromImage(nil); !errors.Is(err, ErrInvalidArgument) {
		t.Errorf("got %v, want ErrInvalidArgument", err)
	}
}

func TestToNRGBA(t *testing.T) {
	img := mustImage(t, [][]Color{{{R: 10, G: 20, B: 30}, {R: 40, G: 50, B: 60}}})
	out := img.ToNRGBA()

	if out.Bounds() != image.Rect(0, 0, 2, 1) {
		t.Fatalf("bounds: got %v", out.Bounds())
	}
	if got := out.NRGBAAt(1, 0); got != (color.NRGBA{R: 40, G: 50, B: 60, A: 255}) {
		t.Errorf("pixel (1,0): got %v", got)
	}

	back, err := FromImage(out)
	if err != nil {
		t.Fatalf("FromImage failed: %v", err)
	}
	if !back.Equal(img) {
		t.Error("ToNRGBA/FromImage should round-trip")
	}
}
