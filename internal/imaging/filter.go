package imaging

import (
	"fmt"
	"strings"
)

// FilterKind selects the convolution kernel applied by Filter.
type FilterKind int

const (
	// FilterBlur is a 3x3 Gaussian-like blur.
	FilterBlur FilterKind = iota
	// FilterSharpen is a 5x5 sharpening kernel.
	FilterSharpen
)

// filterKernels holds the square, odd-sized kernel for each kind.
//
// Blur:
//
//	1/16 1/8 1/16
//	1/8  1/4 1/8
//	1/16 1/8 1/16
//
// Sharpen: outer ring -1/8, inner ring 1/4, center 1.
var filterKernels = map[FilterKind][][]float64{
	FilterBlur: {
		{0.0625, 0.125, 0.0625},
		{0.125, 0.25, 0.125},
		{0.0625, 0.125, 0.0625},
	},
	FilterSharpen: {
		{-0.125, -0.125, -0.125, -0.125, -0.125},
		{-0.125, 0.25, 0.25, 0.25, -0.125},
		{-0.125, 0.25, 1.0, 0.25, -0.125},
		{-0.125, 0.25, 0.25, 0.25, -0.125},
		{-0.125, -0.125, -0.125, -0.125, -0.125},
	},
}

func (k FilterKind) String() string {
	switch k {
	case FilterBlur:
		return "blur"
	case FilterSharpen:
		return "sharpen"
	default:
		return fmt.Sprintf("FilterKind(%d)", int(k))
	}
}

// ParseFilterKind maps "blur" or "sharpen" (case-insensitive) to a FilterKind.
func ParseFilterKind(s string) (FilterKind, error) {
	switch strings.ToLower(s) {
	case "blur":
		return FilterBlur, nil
	case "sharpen":
		return FilterSharpen, nil
	default:
		return 0, fmt.Errorf("%w: unknown filter %q", ErrInvalidArgument, s)
	}
}

// Filter convolves the image with the kernel for kind.
//
// The kernel is centered on each output pixel. Taps whose neighbor falls
// outside the image contribute nothing: there is no edge replication or
// renormalization, so borders of a blurred image come out darker. Each
// channel sum is truncated toward zero and clamped to [0, 255].
func Filter(img *Image, kind FilterKind) (*Image, error) {
	kernel, ok := filterKernels[kind]
	if !ok {
		return nil, fmt.Errorf("%w: unknown filter %d", ErrInvalidArgument, int(kind))
	}
	return convolve(img, kernel), nil
}

func convolve(img *Image, kernel [][]float64) *Image {
	height, width := img.Height(), img.Width()
	half := len(kernel) / 2

	return generate(height, width, func(y, x int) Color {
		var r, g, b float64
		for ky := -half; ky <= half; ky++ {
			py := y + ky
			if py < 0 || py >= height {
				continue
			}
			for kx := -half; kx <= half; kx++ {
				px := x + kx
				if px < 0 || px >= width {
					continue
				}
				w := kernel[ky+half][kx+half]
				c := img.rows[py][px].Color
				r += float64(c.R) * w
				g += float64(c.G) * w
				b += float64(c.B) * w
			}
		}
		return clampColor(int(r), int(g), int(b))
	})
}
