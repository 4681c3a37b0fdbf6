package imaging

import (
	"fmt"
	"strings"
)

// ColorTransformKind selects the fixed 3x3 matrix applied by ColorTransform.
type ColorTransformKind int

const (
	// ColorTransformGrayscale replaces every channel with the Rec. 709 luma.
	ColorTransformGrayscale ColorTransformKind = iota
	// ColorTransformSepia applies the classic sepia tone matrix.
	ColorTransformSepia
)

// colorMatrices holds the matrix for each kind. Row i produces output
// channel i (red, green, blue) from the input (r, g, b).
var colorMatrices = map[ColorTransformKind][3][3]float64{
	ColorTransformGrayscale: {
		lumaRow,
		lumaRow,
		lumaRow,
	},
	ColorTransformSepia: {
		{0.393, 0.769, 0.189},
		{0.349, 0.686, 0.168},
		{0.272, 0.534, 0.131},
	},
}

func (k ColorTransformKind) String() string {
	switch k {
	case ColorTransformGrayscale:
		return "grayscale"
	case ColorTransformSepia:
		return "sepia"
	default:
		return fmt.Sprintf("ColorTransformKind(%d)", int(k))
	}
}

// ParseColorTransformKind maps "grayscale" or "sepia" (case-insensitive).
func ParseColorTransformKind(s string) (ColorTransformKind, error) {
	switch strings.ToLower(s) {
	case "grayscale", "greyscale":
		return ColorTransformGrayscale, nil
	case "sepia":
		return ColorTransformSepia, nil
	default:
		return 0, fmt.Errorf("%w: unknown color transform %q", ErrInvalidArgument, s)
	}
}

// ColorTransform applies the matrix for kind to every pixel. Each output
// channel is the dot product of a matrix row with (r, g, b), truncated
// toward zero and clamped to [0, 255].
func ColorTransform(img *Image, kind ColorTransformKind) (*Image, error) {
	m, ok := colorMatrices[kind]
	if !ok {
		return nil, fmt.Errorf("%w: unknown color transform %d", ErrInvalidArgument, int(kind))
	}
	return mapColors(img, func(c Color) Color {
		return Color{R: dot(m[0], c), G: dot(m[1], c), B: dot(m[2], c)}
	}), nil
}

func dot(row [3]float64, c Color) uint8 {
	v := float64(c.R)*row[0] + float64(c.G)*row[1] + float64(c.B)*row[2]
	return clampChannel(int(v))
}
