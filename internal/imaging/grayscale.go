package imaging

import (
	"fmt"
	"strings"
)

// GrayscaleMode selects how Grayscale derives the output channels.
type GrayscaleMode int

const (
	// GrayscaleRed copies the red channel into all three channels.
	GrayscaleRed GrayscaleMode = iota
	// GrayscaleGreen copies the green channel into all three channels.
	GrayscaleGreen
	// GrayscaleBlue copies the blue channel into all three channels.
	GrayscaleBlue
	// GrayscaleIntensity uses the integer mean (r+g+b)/3.
	GrayscaleIntensity
	// GrayscaleValue uses max(r, g, b).
	GrayscaleValue
	// GrayscaleLuma uses the Rec. 709 luma 0.2126r + 0.7152g + 0.0722b,
	// truncated, on all three channels.
	GrayscaleLuma
	// GrayscaleLumaPerChannel scales each channel by its own luma weight
	// (r*0.2126, g*0.7152, b*0.0722) without summing them. The output is
	// not gray; the mode exists for compatibility with images produced by
	// earlier versions of the "luma" operation.
	GrayscaleLumaPerChannel
)

var grayscaleModeNames = map[GrayscaleMode]string{
	GrayscaleRed:            "red",
	GrayscaleGreen:          "green",
	GrayscaleBlue:           "blue",
	GrayscaleIntensity:      "intensity",
	GrayscaleValue:          "value",
	GrayscaleLuma:           "luma",
	GrayscaleLumaPerChannel: "luma-per-channel",
}

func (m GrayscaleMode) String() string {
	if name, ok := grayscaleModeNames[m]; ok {
		return name
	}
	return fmt.Sprintf("GrayscaleMode(%d)", int(m))
}

// ParseGrayscaleMode maps a mode name (case-insensitive) to a GrayscaleMode.
func ParseGrayscaleMode(s string) (GrayscaleMode, error) {
	lower := strings.ToLower(s)
	for mode, name := range grayscaleModeNames {
		if name == lower {
			return mode, nil
		}
	}
	return 0, fmt.Errorf("%w: unknown grayscale mode %q", ErrInvalidArgument, s)
}

// Rec. 709 luma weights.
const (
	lumaRed   = 0.2126
	lumaGreen = 0.7152
	lumaBlue  = 0.0722
)

var lumaRow = [3]float64{lumaRed, lumaGreen, lumaBlue}

// Grayscale converts every pixel according to mode.
func Grayscale(img *Image, mode GrayscaleMode) (*Image, error) {
	var fn func(c Color) Color
	switch mode {
	case GrayscaleRed:
		fn = func(c Color) Color { return gray(c.R) }
	case GrayscaleGreen:
		fn = func(c Color) Color { return gray(c.G) }
	case GrayscaleBlue:
		fn = func(c Color) Color { return gray(c.B) }
	case GrayscaleIntensity:
		fn = func(c Color) Color {
			return gray(clampChannel((int(c.R) + int(c.G) + int(c.B)) / 3))
		}
	case GrayscaleValue:
		fn = func(c Color) Color { return gray(max(c.R, c.G, c.B)) }
	case GrayscaleLuma:
		fn = func(c Color) Color {
			return gray(dot(lumaRow, c))
		}
	case GrayscaleLumaPerChannel:
		fn = func(c Color) Color {
			return Color{
				R: uint8(float64(c.R) * lumaRed),
				G: uint8(float64(c.G) * lumaGreen),
				B: uint8(float64(c.B) * lumaBlue),
			}
		}
	default:
		return nil, fmt.Errorf("%w: unknown grayscale mode %d", ErrInvalidArgument, int(mode))
	}
	return mapColors(img, fn), nil
}

func gray(v uint8) Color {
	return Color{R: v, G: v, B: v}
}
