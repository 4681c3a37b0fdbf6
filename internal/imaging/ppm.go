package imaging

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strconv"
)

const (
	// PPMMagic is the format token of a plain-text RGB pixel map.
	PPMMagic = "P3"

	// PPMComment is the comment line written by EncodePPM.
	PPMComment = "# Created by image-processor-mcp"

	// ppmMaxVal is the maximum channel value written by EncodePPM.
	ppmMaxVal = 255

	// ppmPreallocLimit caps how many rows or pixels DecodePPM reserves
	// ahead of reading them.
	ppmPreallocLimit = 4096
)

// DecodePPM reads a plain-text (P3) pixel map.
//
// The stream starts with the token "P3", followed by the width, height and
// maximum channel value, then width*height red/green/blue triples in
// row-major order. Everything from '#' to the end of a line is a comment.
// Tokens may be separated by any whitespace.
//
// # Errors
//
//   - ErrInvalidArgument: missing or wrong format token, malformed or
//     non-positive dimensions, a maximum value outside 1-255, a sample
//     above the maximum value, or too few samples.
//   - ErrIO: the reader failed.
func DecodePPM(r io.Reader) (*Image, error) {
	tok := newPPMTokenizer(r)

	magic, err := tok.next()
	if err != nil {
		return nil, fmt.Errorf("failed to read format token: %w", err)
	}
	if magic != PPMMagic {
		return nil, fmt.Errorf("%w: plain pixel map must begin with %s, got %q", ErrInvalidArgument, PPMMagic, magic)
	}

	width, err := tok.nextInt("width")
	if err != nil {
		return nil, err
	}
	height, err := tok.nextInt("height")
	if err != nil {
		return nil, err
	}
	if width <= 0 || height <= 0 {
		return nil, fmt.Errorf("%w: dimensions %dx%d must be positive", ErrInvalidArgument, width, height)
	}
	maxVal, err := tok.nextInt("maximum value")
	if err != nil {
		return nil, err
	}
	if maxVal < 1 || maxVal > 255 {
		return nil, fmt.Errorf("%w: maximum value %d outside 1-255", ErrInvalidArgument, maxVal)
	}

	// Storage grows with the samples actually read, never with the header
	// dimensions alone.
	rows := make([][]Pixel, 0, min(height, ppmPreallocLimit))
	for y := 0; y < height; y++ {
		row := make([]Pixel, 0, min(width, ppmPreallocLimit))
		for x := 0; x < width; x++ {
			var rgb [3]int
			for i := range rgb {
				v, err := tok.nextInt("sample")
				if err != nil {
					return nil, fmt.Errorf("pixel (%d,%d): %w", y, x, err)
				}
				if v > maxVal {
					return nil, fmt.Errorf("%w: pixel (%d,%d) sample %d exceeds maximum value %d", ErrInvalidArgument, y, x, v, maxVal)
				}
				rgb[i] = v
			}
			c, err := NewColor(rgb[0], rgb[1], rgb[2])
			if err != nil {
				return nil, fmt.Errorf("pixel (%d,%d): %w", y, x, err)
			}
			row = append(row, Pixel{Position: Position{Row: y, Column: x}, Color: c})
		}
		rows = append(rows, row)
	}
	return &Image{rows: rows}, nil
}

// EncodePPM writes img as a plain-text (P3) pixel map: the format token, a
// fixed comment line, "width height", the maximum value 255, then each
// pixel's red, green and blue on their own lines in row-major order.
func EncodePPM(w io.Writer, img *Image) error {
	bw := bufio.NewWriter(w)
	fmt.Fprintf(bw, "%s\n%s\n%d %d\n%d\n", PPMMagic, PPMComment, img.Width(), img.Height(), ppmMaxVal)

	buf := make([]byte, 0, 4)
	for _, row := range img.rows {
		for _, p := range row {
			for _, v := range [3]uint8{p.Color.R, p.Color.G, p.Color.B} {
				buf = strconv.AppendUint(buf[:0], uint64(v), 10)
				buf = append(buf, '\n')
				bw.Write(buf)
			}
		}
	}
	if err := bw.Flush(); err != nil {
		return fmt.Errorf("%w: failed to write pixel map: %v", ErrIO, err)
	}
	return nil
}

// ppmTokenizer splits a pixel map into whitespace-separated tokens,
// dropping comments. Line length is not limited.
type ppmTokenizer struct {
	r   *bufio.Reader
	tok []byte
}

func newPPMTokenizer(r io.Reader) *ppmTokenizer {
	return &ppmTokenizer{r: bufio.NewReader(r)}
}

var errUnexpectedEOF = errors.New("unexpected end of pixel map")

func (t *ppmTokenizer) next() (string, error) {
	t.tok = t.tok[:0]
	for {
		b, err := t.r.ReadByte()
		if err == io.EOF {
			if len(t.tok) > 0 {
				return string(t.tok), nil
			}
			return "", fmt.Errorf("%w: %v", ErrInvalidArgument, errUnexpectedEOF)
		}
		if err != nil {
			return "", fmt.Errorf("%w: %v", ErrIO, err)
		}

		switch b {
		case '#':
			if err := t.skipComment(); err != nil {
				return "", err
			}
			if len(t.tok) > 0 {
				return string(t.tok), nil
			}
		case ' ', '\t', '\n', '\r', '\v', '\f':
			if len(t.tok) > 0 {
				return string(t.tok), nil
			}
		default:
			t.tok = append(t.tok, b)
		}
	}
}

// skipComment discards input up to and including the next newline.
func (t *ppmTokenizer) skipComment() error {
	for {
		b, err := t.r.ReadByte()
		if err == io.EOF || b == '\n' {
			return nil
		}
		if err != nil {
			return fmt.Errorf("%w: %v", ErrIO, err)
		}
	}
}

func (t *ppmTokenizer) nextInt(what string) (int, error) {
	tok, err := t.next()
	if err != nil {
		return 0, fmt.Errorf("failed to read %s: %w", what, err)
	}
	v, err := strconv.Atoi(tok)
	if err != nil {
		return 0, fmt.Errorf("%w: %s %q is not an integer", ErrInvalidArgument, what, tok)
	}
	return v, nil
}
