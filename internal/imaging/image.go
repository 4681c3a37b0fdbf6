package imaging

import (
	"fmt"
	"image"
	"image/color"

	"github.com/anthonynsimon/bild/parallel"
	"github.com/disintegration/imaging"
)

// Image is an immutable rectangular grid of pixels.
//
// Row index is the vertical coordinate and column index the horizontal one.
// Every Image owns its pixel storage: constructors copy their input and
// accessors hand out copies, so an Image can be shared between goroutines
// without locking.
type Image struct {
	rows [][]Pixel
}

// NewImage builds an Image from rows of pixels.
//
// The grid must be non-empty and rectangular (every row the same, non-zero
// length); otherwise the error wraps ErrInvalidArgument. The rows are deep
// copied, so later changes to the argument do not affect the Image.
func NewImage(rows [][]Pixel) (*Image, error) {
	if len(rows) == 0 {
		return nil, fmt.Errorf("%w: image has no rows", ErrInvalidArgument)
	}
	width := len(rows[0])
	if width == 0 {
		return nil, fmt.Errorf("%w: image has no columns", ErrInvalidArgument)
	}
	for i, row := range rows {
		if len(row) != width {
			return nil, fmt.Errorf("%w: row %d has %d pixels, want %d", ErrInvalidArgument, i, len(row), width)
		}
	}
	return &Image{rows: copyRows(rows)}, nil
}

// NewUniformImage builds a height x width Image filled with one color.
func NewUniformImage(height, width int, c Color) (*Image, error) {
	if height <= 0 || width <= 0 {
		return nil, fmt.Errorf("%w: dimensions %dx%d must be positive", ErrInvalidArgument, width, height)
	}
	return generate(height, width, func(int, int) Color { return c }), nil
}

// FromImage converts a decoded bitmap into an Image. Alpha is discarded:
// each pixel keeps the 8-bit non-premultiplied red, green and blue values.
func FromImage(src image.Image) (*Image, error) {
	if src == nil {
		return nil, fmt.Errorf("%w: nil source image", ErrInvalidArgument)
	}
	nrgba := imaging.Clone(src)
	b := nrgba.Bounds()
	if b.Dx() == 0 || b.Dy() == 0 {
		return nil, fmt.Errorf("%w: empty source image", ErrInvalidArgument)
	}
	return generate(b.Dy(), b.Dx(), func(row, col int) Color {
		i := nrgba.PixOffset(b.Min.X+col, b.Min.Y+row)
		return Color{R: nrgba.Pix[i], G: nrgba.Pix[i+1], B: nrgba.Pix[i+2]}
	}), nil
}

// Width returns the number of columns.
func (img *Image) Width() int {
	return len(img.rows[0])
}

// Height returns the number of rows.
func (img *Image) Height() int {
	return len(img.rows)
}

// At returns the pixel at (row, col). It panics if the coordinate is
// outside the grid, like indexing a slice.
func (img *Image) At(row, col int) Pixel {
	return img.rows[row][col]
}

// Rows returns a deep copy of the pixel grid.
func (img *Image) Rows() [][]Pixel {
	return copyRows(img.rows)
}

// Clone returns a deep copy of the image.
func (img *Image) Clone() *Image {
	return &Image{rows: copyRows(img.rows)}
}

// Equal reports whether two images have the same dimensions and the same
// pixels (positions and colors) in the same order.
func (img *Image) Equal(other *Image) bool {
	if img == nil || other == nil {
		return img == other
	}
	if img.Height() != other.Height() || img.Width() != other.Width() {
		return false
	}
	for y, row := range img.rows {
		for x, p := range row {
			if other.rows[y][x] != p {
				return false
			}
		}
	}
	return true
}

// ToNRGBA renders the Image as an opaque standard library bitmap.
func (img *Image) ToNRGBA() *image.NRGBA {
	out := image.NewNRGBA(image.Rect(0, 0, img.Width(), img.Height()))
	for y, row := range img.rows {
		for x, p := range row {
			out.SetNRGBA(x, y, color.NRGBA{R: p.Color.R, G: p.Color.G, B: p.Color.B, A: 255})
		}
	}
	return out
}

func copyRows(rows [][]Pixel) [][]Pixel {
	out := make([][]Pixel, len(rows))
	for i, row := range rows {
		out[i] = append([]Pixel(nil), row...)
	}
	return out
}

// generate builds a height x width Image whose pixel at (row, col) has
// the color returned by fn and the position (row, col). Rows are filled
// concurrently; fn must not depend on evaluation order.
func generate(height, width int, fn func(row, col int) Color) *Image {
	rows := make([][]Pixel, height)
	parallel.Line(height, func(start, end int) {
		for y := start; y < end; y++ {
			row := make([]Pixel, width)
			for x := range row {
				row[x] = Pixel{Position: Position{Row: y, Column: x}, Color: fn(y, x)}
			}
			rows[y] = row
		}
	})
	return &Image{rows: rows}
}

// mapColors builds an Image of the same size as src whose colors are fn
// applied to the source color at the same position.
func mapColors(src *Image, fn func(c Color) Color) *Image {
	return generate(src.Height(), src.Width(), func(row, col int) Color {
		return fn(src.rows[row][col].Color)
	})
}
