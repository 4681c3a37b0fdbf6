package imaging

import "testing"

// mustImage builds an image from a grid of colors, numbering positions by
// grid slot.
func mustImage(t *testing.T, grid [][]Color) *Image {
	t.Helper()
	rows := make([][]Pixel, len(grid))
	for y, line := range grid {
		rows[y] = make([]Pixel, len(line))
		for x, c := range line {
			rows[y][x] = Pixel{Position: Position{Row: y, Column: x}, Color: c}
		}
	}
	img, err := NewImage(rows)
	if err != nil {
		t.Fatalf("NewImage failed: %v", err)
	}
	return img
}

// uniform builds a height x width image of one color.
func uniform(t *testing.T, height, width int, c Color) *Image {
	t.Helper()
	img, err := NewUniformImage(height, width, c)
	if err != nil {
		t.Fatalf("NewUniformImage failed: %v", err)
	}
	return img
}

// grayGrid builds an image whose pixel (r, c) is the gray value fn(r, c).
func grayGrid(t *testing.T, height, width int, fn func(r, c int) uint8) *Image {
	t.Helper()
	grid := make([][]Color, height)
	for y := range grid {
		grid[y] = make([]Color, width)
		for x := range grid[y] {
			grid[y][x] = gray(fn(y, x))
		}
	}
	return mustImage(t, grid)
}

// colorsOf returns the color grid of an image.
func colorsOf(img *Image) [][]Color {
	out := make([][]Color, img.Height())
	for y := range out {
		out[y] = make([]Color, img.Width())
		for x := range out[y] {
			out[y][x] = img.At(y, x).Color
		}
	}
	return out
}

func assertColors(t *testing.T, img *Image, want [][]Color) {
	t.Helper()
	got := colorsOf(img)
	if len(got) != len(want) {
		t.Fatalf("height: got %d, want %d", len(got), len(want))
	}
	for y := range want {
		if len(got[y]) != len(want[y]) {
			t.Fatalf("row %d width: got %d, want %d", y, len(got[y]), len(want[y]))
		}
		for x := range want[y] {
			if got[y][x] != want[y][x] {
				t.Errorf("pixel (%d,%d): got %v, want %v", y, x, got[y][x], want[y][x])
			}
		}
	}
}

// assertPositions checks that every pixel's position matches its grid slot.
func assertPositions(t *testing.T, img *Image) {
	t.Helper()
	for y := 0; y < img.Height(); y++ {
		for x := 0; x < img.Width(); x++ {
			if p := img.At(y, x).Position; p != (Position{Row: y, Column: x}) {
				t.Errorf("pixel (%d,%d) has position %+v", y, x, p)
			}
		}
	}
}
