package imaging

import (
	"bytes"
	"errors"
	"testing"
)

func TestFormatFromPath(t *testing.T) {
	tests := []struct {
		path    string
		want    Format
		wantErr bool
	}{
		{"/tmp/a.ppm", FormatPPM, false},
		{"/tmp/a.PPM", FormatPPM, false},
		{"a.png", FormatPNG, false},
		{"a.jpg", FormatJPEG, false},
		{"a.jpeg", FormatJPEG, false},
		{"a.gif", FormatGIF, false},
		{"a.tif", FormatTIFF, false},
		{"a.tiff", FormatTIFF, false},
		{"a.bmp", FormatBMP, false},
		{"a.webp", FormatWebP, false},
		{"a.txt", "", true},
		{"noext", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.path, func(t *testing.T) {
			got, err := FormatFromPath(tt.path)
			if tt.wantErr {
				if !errors.Is(err, ErrInvalidArgument) {
					t.Errorf("got %v, want ErrInvalidArgument", err)
				}
				return
			}
			if err != nil {
				t.Fatalf("FormatFromPath failed: %v", err)
			}
			if got != tt.want {
				t.Errorf("got %s, want %s", got, tt.want)
			}
		})
	}
}

func TestEncodeDecode_LosslessFormats(t *testing.T) {
	img := mustImage(t, [][]Color{
		{{R: 255}, {G: 255}, {B: 255}},
		{{R: 12, G: 34, B: 56}, {R: 255, G: 255, B: 255}, {}},
	})

	for _, format := range []Format{FormatPPM, FormatPNG, FormatBMP, FormatTIFF} {
		t.Run(string(format), func(t *testing.T) {
			var buf bytes.Buffer
			if err := Encode(&buf, img, format, EncodeOptions{}); err != nil {
				t.Fatalf("Encode failed: %v", err)
			}
			back, err := Decode(&buf, format)
			if err != nil {
				t.Fatalf("Decode failed: %v", err)
			}
			if !back.Equal(img) {
				t.Errorf("round trip changed pixels: got %v", colorsOf(back))
			}
		})
	}
}

func TestEncodeDecode_JPEG(t *testing.T) {
	img := uniform(t, 8, 8, Color{R: 200, G: 100, B: 50})

	var buf bytes.Buffer
	if err := Encode(&buf, img, FormatJPEG, EncodeOptions{JPEGQuality: 100}); err != nil {
		t.Fatalf("Encode failed: %v", err)
	}
	back, err := Decode(&buf, FormatJPEG)
	if err != nil {
		t.Fatalf("Decode failed: %v", err)
	}
	if back.Width() != 8 || back.Height() != 8 {
		t.Fatalf("dimensions: got %dx%d, want 8x8", back.Width(), back.Height())
	}
	c := back.At(4, 4).Color
	if absDiff(c.R, 200) > 4 || absDiff(c.G, 100) > 4 || absDiff(c.B, 50) > 4 {
		t.Errorf("JPEG color drifted too far: %v", c)
	}
}

func TestEncode_Unsupported(t *testing.T) {
	img := uniform(t, 1, 1, Color{})
	var buf bytes.Buffer
	if err := Encode(&buf, img, FormatWebP, EncodeOptions{}); !errors.Is(err, ErrInvalidArgument) {
		t.Errorf("webp: got %v, want ErrInvalidArgument", err)
	}
	if err := Encode(&buf, img, Format("xcf"), EncodeOptions{}); !errors.Is(err, ErrInvalidArgument) {
		t.Errorf("xcf: got %v, want ErrInvalidArgument", err)
	}
}

func TestDecode_Garbage(t *testing.T) {
	if _, err := Decode(bytes.NewReader([]byte("not an image")), FormatPNG); !errors.Is(err, ErrInvalidArgument) {
		t.Errorf("got %v, want ErrInvalidArgument", err)
	}
	if _, err := Decode(bytes.NewReader(nil), Format("xcf")); !errors.Is(err, ErrInvalidArgument) {
		t.Errorf("got %v, want ErrInvalidArgument", err)
	}
}

func absDiff(a, b uint8) int {
	if a > b {
		return int(a - b)
	}
	return int(b - a)
}
