package imaging

import (
	"fmt"
	"math"
	"strings"

	colorful "github.com/lucasb-eyer/go-colorful"
)

// HSLColor represents a color in HSL (Hue, Saturation, Lightness) color space.
type HSLColor struct {
	H int `json:"h"` // Hue: 0-360 degrees (0=red, 120=green, 240=blue)
	S int `json:"s"` // Saturation: 0-100 percent (0=gray, 100=vivid)
	L int `json:"l"` // Lightness: 0-100 percent (0=black, 50=normal, 100=white)
}

// ColorResult contains a pixel color in several representations.
type ColorResult struct {
	Row    int      `json:"row"`    // Row that was sampled
	Column int      `json:"column"` // Column that was sampled
	Hex    string   `json:"hex"`    // Hex format "#RRGGBB"
	RGB    Color    `json:"rgb"`    // 8-bit components
	HSL    HSLColor `json:"hsl"`    // HSL representation
}

// SampleColor returns the color of the pixel at (row, col).
//
// Returns an error wrapping ErrInvalidArgument if the coordinate lies
// outside the image.
func SampleColor(img *Image, row, col int) (*ColorResult, error) {
	if row < 0 || row >= img.Height() || col < 0 || col >= img.Width() {
		return nil, fmt.Errorf("%w: coordinates (%d,%d) outside image bounds %dx%d",
			ErrInvalidArgument, row, col, img.Width(), img.Height())
	}

	c := img.rows[row][col].Color
	return &ColorResult{
		Row:    row,
		Column: col,
		Hex:    c.Hex(),
		RGB:    c,
		HSL:    c.HSL(),
	}, nil
}

// Hex formats the color as "#RRGGBB".
func (c Color) Hex() string {
	return strings.ToUpper(c.toColorful().Hex())
}

// HSL converts the color to integer hue degrees and saturation/lightness
// percentages.
func (c Color) HSL() HSLColor {
	h, s, l := c.toColorful().Hsl()
	if math.IsNaN(h) {
		h = 0
	}
	return HSLColor{
		H: int(math.Round(h)) % 360,
		S: int(math.Round(s * 100)),
		L: int(math.Round(l * 100)),
	}
}

func (c Color) toColorful() colorful.Color {
	return colorful.Color{
		R: float64(c.R) / 255.0,
		G: float64(c.G) / 255.0,
		B: float64(c.B) / 255.0,
	}
}
