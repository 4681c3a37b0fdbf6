package imaging

import (
	"fmt"
	"strings"
)

// FlipAxis selects the mirror used by Flip.
type FlipAxis int

const (
	// FlipHorizontal mirrors left-right: pixel order within each row is reversed.
	FlipHorizontal FlipAxis = iota
	// FlipVertical mirrors top-bottom: row order is reversed.
	FlipVertical
)

func (a FlipAxis) String() string {
	switch a {
	case FlipHorizontal:
		return "horizontal"
	case FlipVertical:
		return "vertical"
	default:
		return fmt.Sprintf("FlipAxis(%d)", int(a))
	}
}

// ParseFlipAxis maps "horizontal" or "vertical" (case-insensitive) to a FlipAxis.
func ParseFlipAxis(s string) (FlipAxis, error) {
	switch strings.ToLower(s) {
	case "horizontal":
		return FlipHorizontal, nil
	case "vertical":
		return FlipVertical, nil
	default:
		return 0, fmt.Errorf("%w: unknown flip axis %q", ErrInvalidArgument, s)
	}
}

// Flip mirrors an image along the given axis. Dimensions are unchanged and
// every output pixel is renumbered to the grid slot it lands in, so
// flipping twice along the same axis restores the original image.
func Flip(img *Image, axis FlipAxis) (*Image, error) {
	h, w := img.Height(), img.Width()
	switch axis {
	case FlipHorizontal:
		return generate(h, w, func(row, col int) Color {
			return img.rows[row][w-1-col].Color
		}), nil
	case FlipVertical:
		return generate(h, w, func(row, col int) Color {
			return img.rows[h-1-row][col].Color
		}), nil
	default:
		return nil, fmt.Errorf("%w: unknown flip axis %d", ErrInvalidArgument, int(axis))
	}
}
