package processor

import (
	"bytes"
	"fmt"
	"image"
	"io"
	"os"

	"github.com/ironsheep/image-processor-mcp/internal/imaging"
)

// Options configures a Session.
type Options struct {
	// JPEGQuality is used when saving JPEG files. Zero selects
	// imaging.DefaultJPEGQuality.
	JPEGQuality int
}

// Session owns a Registry and exposes the image operations on named images.
//
// Every transformation resolves its source by name, computes a new image and
// stores it under the destination name. A failed operation leaves the
// registry unchanged.
type Session struct {
	registry *Registry
	opts     Options
}

// NewSession creates a session with an empty registry.
func NewSession(opts Options) *Session {
	return &Session{
		registry: NewRegistry(),
		opts:     opts,
	}
}

// Registry returns the session's image registry.
func (s *Session) Registry() *Registry {
	return s.registry
}

// Resolve returns the image stored under name.
func (s *Session) Resolve(name string) (*imaging.Image, error) {
	return s.registry.Get(name)
}

// Reset drops every image in the session.
func (s *Session) Reset() {
	s.registry.Reset()
}

// Load reads the image file at path and stores it under newName. The format
// is chosen from the file extension: .ppm files are read as plain pixel
// maps, other supported extensions through the bitmap codec.
func (s *Session) Load(path, newName string) error {
	if path == "" {
		return fmt.Errorf("%w: path is empty", imaging.ErrInvalidArgument)
	}
	format, err := imaging.FormatFromPath(path)
	if err != nil {
		return err
	}

	f, err := os.Open(path)
	if err != nil {
		return fmt.Errorf("%w: failed to open image: %v", imaging.ErrIO, err)
	}
	defer f.Close()

	return s.LoadReader(f, format, newName)
}

// LoadReader decodes an image of the given format from r and stores it
// under newName.
func (s *Session) LoadReader(r io.Reader, format imaging.Format, newName string) error {
	if err := checkName(newName); err != nil {
		return err
	}
	img, err := imaging.Decode(r, format)
	if err != nil {
		return fmt.Errorf("failed to load %q: %w", newName, err)
	}
	return s.registry.Put(newName, img)
}

// LoadImage converts an already decoded bitmap and stores it under newName.
func (s *Session) LoadImage(src image.Image, newName string) error {
	if err := checkName(newName); err != nil {
		return err
	}
	img, err := imaging.FromImage(src)
	if err != nil {
		return err
	}
	return s.registry.Put(newName, img)
}

// Encode serializes the named image in the given format.
func (s *Session) Encode(name string, format imaging.Format) ([]byte, error) {
	img, err := s.registry.Get(name)
	if err != nil {
		return nil, err
	}
	var buf bytes.Buffer
	if err := imaging.Encode(&buf, img, format, imaging.EncodeOptions{JPEGQuality: s.opts.JPEGQuality}); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// Save writes the named image to path, in the format given by the file
// extension. The file is only created once encoding has succeeded.
func (s *Session) Save(name, path string) error {
	if path == "" {
		return fmt.Errorf("%w: path is empty", imaging.ErrInvalidArgument)
	}
	format, err := imaging.FormatFromPath(path)
	if err != nil {
		return err
	}
	data, err := s.Encode(name, format)
	if err != nil {
		return err
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("%w: failed to write image: %v", imaging.ErrIO, err)
	}
	return nil
}

// Brighten adds delta to every channel of src and stores the result as dst.
func (s *Session) Brighten(delta int, src, dst string) error {
	return s.apply(src, dst, func(img *imaging.Image) (*imaging.Image, error) {
		return imaging.Brighten(img, delta), nil
	})
}

// Darken subtracts delta from every channel of src and stores the result
// as dst.
func (s *Session) Darken(delta int, src, dst string) error {
	return s.apply(src, dst, func(img *imaging.Image) (*imaging.Image, error) {
		return imaging.Darken(img, delta), nil
	})
}

// Flip mirrors src along axis and stores the result as dst.
func (s *Session) Flip(axis imaging.FlipAxis, src, dst string) error {
	return s.apply(src, dst, func(img *imaging.Image) (*imaging.Image, error) {
		return imaging.Flip(img, axis)
	})
}

// Grayscale converts src with mode and stores the result as dst.
func (s *Session) Grayscale(mode imaging.GrayscaleMode, src, dst string) error {
	return s.apply(src, dst, func(img *imaging.Image) (*imaging.Image, error) {
		return imaging.Grayscale(img, mode)
	})
}

// Filter convolves src with the kernel for kind and stores the result as dst.
func (s *Session) Filter(kind imaging.FilterKind, src, dst string) error {
	return s.apply(src, dst, func(img *imaging.Image) (*imaging.Image, error) {
		return imaging.Filter(img, kind)
	})
}

// ColorTransform applies the color matrix for kind to src and stores the
// result as dst.
func (s *Session) ColorTransform(kind imaging.ColorTransformKind, src, dst string) error {
	return s.apply(src, dst, func(img *imaging.Image) (*imaging.Image, error) {
		return imaging.ColorTransform(img, kind)
	})
}

// Downscale resamples src to newHeight x newWidth and stores the result as dst.
func (s *Session) Downscale(newHeight, newWidth int, src, dst string) error {
	return s.apply(src, dst, func(img *imaging.Image) (*imaging.Image, error) {
		return imaging.Downscale(img, newHeight, newWidth)
	})
}

// Histogram returns the 256-bin histogram of the named image's channel.
func (s *Session) Histogram(name string, ch imaging.Channel) ([256]int, error) {
	img, err := s.registry.Get(name)
	if err != nil {
		return [256]int{}, err
	}
	return imaging.Histogram(img, ch)
}

// SampleColor returns the color of the named image at (row, col).
func (s *Session) SampleColor(name string, row, col int) (*imaging.ColorResult, error) {
	img, err := s.registry.Get(name)
	if err != nil {
		return nil, err
	}
	return imaging.SampleColor(img, row, col)
}

// ImageInfo describes a registry entry.
type ImageInfo struct {
	Name   string `json:"name"`
	Width  int    `json:"width"`
	Height int    `json:"height"`
}

// Info returns the dimensions of the named image.
func (s *Session) Info(name string) (*ImageInfo, error) {
	img, err := s.registry.Get(name)
	if err != nil {
		return nil, err
	}
	return &ImageInfo{Name: name, Width: img.Width(), Height: img.Height()}, nil
}

// apply resolves src, runs op and stores its result as dst. Nothing is
// stored if any step fails.
func (s *Session) apply(src, dst string, op func(*imaging.Image) (*imaging.Image, error)) error {
	if err := checkName(dst); err != nil {
		return err
	}
	img, err := s.registry.Get(src)
	if err != nil {
		return err
	}
	out, err := op(img)
	if err != nil {
		return err
	}
	return s.registry.Put(dst, out)
}

func checkName(name string) error {
	if name == "" {
		return fmt.Errorf("%w: destination name is empty", imaging.ErrInvalidArgument)
	}
	return nil
}
