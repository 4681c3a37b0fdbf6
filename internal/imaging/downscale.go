package imaging

import (
	"fmt"
	"math"
)

// Downscale resamples img to newHeight rows by newWidth columns.
//
// The target area may not exceed the source area; otherwise the error wraps
// ErrInvalidArgument. Destination pixel (i, j) maps to source coordinates
// x' = j*width/newWidth and y' = i*height/newHeight. When both are whole
// numbers the source pixel is copied. Otherwise the four neighbors at the
// floor/ceil of x' and y' are blended bilinearly, horizontally first and
// then vertically, with each channel truncated to an integer. If a ceil
// neighbor falls outside the source grid the pixel at (floor y', floor x')
// is copied instead.
func Downscale(img *Image, newHeight, newWidth int) (*Image, error) {
	if newHeight <= 0 || newWidth <= 0 {
		return nil, fmt.Errorf("%w: target dimensions %dx%d must be positive", ErrInvalidArgument, newWidth, newHeight)
	}
	height, width := img.Height(), img.Width()
	// newWidth*newHeight > width*height, without overflowing the product.
	if newWidth > width*height/newHeight {
		return nil, fmt.Errorf("%w: target %dx%d is larger than source %dx%d",
			ErrInvalidArgument, newWidth, newHeight, width, height)
	}

	return generate(newHeight, newWidth, func(i, j int) Color {
		xp := float64(j) * float64(width) / float64(newWidth)
		yp := float64(i) * float64(height) / float64(newHeight)
		return img.sampleBilinear(xp, yp)
	}), nil
}

// sampleBilinear returns the color at fractional source coordinates
// (x, y), where x is the column and y the row.
func (img *Image) sampleBilinear(x, y float64) Color {
	x0, y0 := int(math.Floor(x)), int(math.Floor(y))
	x1, y1 := int(math.Ceil(x)), int(math.Ceil(y))

	if x0 == x1 && y0 == y1 {
		return img.rows[y0][x0].Color
	}
	if x1 >= img.Width() || y1 >= img.Height() {
		return img.rows[y0][x0].Color
	}

	fx := x - float64(x0)
	fy := y - float64(y0)

	a := img.rows[y0][x0].Color
	b := img.rows[y0][x1].Color
	c := img.rows[y1][x0].Color
	d := img.rows[y1][x1].Color

	lerp := func(ca, cb, cc, cd uint8) uint8 {
		top := float64(ca)*(1-fx) + float64(cb)*fx
		bottom := float64(cc)*(1-fx) + float64(cd)*fx
		return clampChannel(int(top*(1-fy) + bottom*fy))
	}
	return Color{
		R: lerp(a.R, b.R, c.R, d.R),
		G: lerp(a.G, b.G, c.G, d.G),
		B: lerp(a.B, b.B, c.B, d.B),
	}
}
