package imaging

import (
	"fmt"
	"io"
	"path/filepath"
	"strings"

	"github.com/disintegration/imaging"
	_ "golang.org/x/image/webp" // Register WebP format decoder
)

// Format identifies an on-disk image encoding.
type Format string

const (
	FormatPPM  Format = "ppm"
	FormatPNG  Format = "png"
	FormatJPEG Format = "jpeg"
	FormatGIF  Format = "gif"
	FormatTIFF Format = "tiff"
	FormatBMP  Format = "bmp"
	FormatWebP Format = "webp" // decode only
)

// bitmapFormats maps encodable bitmap formats to the codec's identifiers.
var bitmapFormats = map[Format]imaging.Format{
	FormatPNG:  imaging.PNG,
	FormatJPEG: imaging.JPEG,
	FormatGIF:  imaging.GIF,
	FormatTIFF: imaging.TIFF,
	FormatBMP:  imaging.BMP,
}

// DefaultJPEGQuality is used when EncodeOptions leaves the quality unset.
const DefaultJPEGQuality = 95

// EncodeOptions tunes bitmap encoding.
type EncodeOptions struct {
	// JPEGQuality is the JPEG quality, 1-100. Zero selects DefaultJPEGQuality.
	JPEGQuality int
}

// FormatFromPath detects the format from a file name's extension
// (case-insensitive).
//
// Recognized extensions: .ppm, .png, .jpg, .jpeg, .gif, .tif, .tiff, .bmp,
// .webp. Anything else is an error wrapping ErrInvalidArgument.
func FormatFromPath(path string) (Format, error) {
	ext := strings.ToLower(strings.TrimPrefix(filepath.Ext(path), "."))
	switch ext {
	case "ppm":
		return FormatPPM, nil
	case "png":
		return FormatPNG, nil
	case "jpg", "jpeg":
		return FormatJPEG, nil
	case "gif":
		return FormatGIF, nil
	case "tif", "tiff":
		return FormatTIFF, nil
	case "bmp":
		return FormatBMP, nil
	case "webp":
		return FormatWebP, nil
	default:
		return "", fmt.Errorf("%w: unsupported image extension %q", ErrInvalidArgument, filepath.Ext(path))
	}
}

// Decode reads an image in the given format. Plain pixel maps go through
// DecodePPM; every other format is decoded as a bitmap and converted with
// FromImage.
func Decode(r io.Reader, format Format) (*Image, error) {
	if format == FormatPPM {
		return DecodePPM(r)
	}
	if _, ok := bitmapFormats[format]; !ok && format != FormatWebP {
		return nil, fmt.Errorf("%w: unsupported format %q", ErrInvalidArgument, format)
	}
	src, err := imaging.Decode(r)
	if err != nil {
		return nil, fmt.Errorf("%w: failed to decode %s image: %v", ErrInvalidArgument, format, err)
	}
	return FromImage(src)
}

// Encode writes img in the given format. Plain pixel maps go through
// EncodePPM; bitmap formats are rendered with ToNRGBA and encoded by the
// bitmap codec. WebP has no encoder.
func Encode(w io.Writer, img *Image, format Format, opts EncodeOptions) error {
	if format == FormatPPM {
		return EncodePPM(w, img)
	}
	f, ok := bitmapFormats[format]
	if !ok {
		return fmt.Errorf("%w: cannot encode format %q", ErrInvalidArgument, format)
	}
	quality := opts.JPEGQuality
	if quality == 0 {
		quality = DefaultJPEGQuality
	}
	if err := imaging.Encode(w, img.ToNRGBA(), f, imaging.JPEGQuality(quality)); err != nil {
		return fmt.Errorf("%w: failed to encode %s image: %v", ErrIO, format, err)
	}
	return nil
}
