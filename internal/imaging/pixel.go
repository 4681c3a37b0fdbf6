package imaging

import "fmt"

// Color is an immutable 8-bit RGB value.
//
// The zero value is black. Colors are comparable with == and usable as map
// keys. Use NewColor to build one from unchecked integers.
type Color struct {
	R uint8 `json:"r"` // Red component (0-255)
	G uint8 `json:"g"` // Green component (0-255)
	B uint8 `json:"b"` // Blue component (0-255)
}

// NewColor builds a Color from three integer channels.
//
// Returns an error wrapping ErrInvalidArgument if any channel lies outside
// [0, 255].
func NewColor(r, g, b int) (Color, error) {
	if !inChannelRange(r) || !inChannelRange(g) || !inChannelRange(b) {
		return Color{}, fmt.Errorf("%w: color (%d,%d,%d) outside [0,255]", ErrInvalidArgument, r, g, b)
	}
	return Color{R: uint8(r), G: uint8(g), B: uint8(b)}, nil
}

// clampColor builds a Color, saturating each channel into [0, 255].
func clampColor(r, g, b int) Color {
	return Color{R: clampChannel(r), G: clampChannel(g), B: clampChannel(b)}
}

func (c Color) String() string {
	return fmt.Sprintf("(%d,%d,%d)", c.R, c.G, c.B)
}

func inChannelRange(v int) bool {
	return v >= 0 && v <= 255
}

// clampChannel saturates v into [0, 255].
func clampChannel(v int) uint8 {
	return uint8(clamp(v, 0, 255))
}

// Position is a (row, column) coordinate. Row is the vertical index and
// Column the horizontal one, both 0-based from the top-left corner.
type Position struct {
	Row    int `json:"row"`
	Column int `json:"column"`
}

// Pixel pairs a grid Position with its Color. Pixels are plain values;
// copying one copies both fields.
type Pixel struct {
	Position Position `json:"position"`
	Color    Color    `json:"color"`
}
