// Package imaging provides the pixel model and the transformation engine.
//
// An Image is an immutable rectangular grid of Pixels. Every Pixel knows its
// own Position and carries an 8-bit RGB Color. Transformations never modify
// their input: they build a new Image whose pixel positions match the grid
// slot they occupy.
//
// # Coordinate System
//
// Positions are 0-based (row, column) pairs with (0,0) at the top-left
// corner. Row increases downward and column increases rightward.
//
// # Operations
//
//   - Brighten, Darken: add or subtract a delta on every channel, clamped
//   - Flip: mirror horizontally or vertically
//   - Grayscale: red, green, blue, intensity, value, luma (and a legacy
//     per-channel luma mode)
//   - Filter: blur or sharpen by convolution
//   - ColorTransform: grayscale or sepia 3x3 color matrix
//   - Downscale: bilinear resampling to a smaller area
//   - Histogram: 256-bin counts for a channel or intensity
//   - SampleColor: hex, RGB and HSL of one pixel
//
// # Codecs
//
// DecodePPM and EncodePPM read and write the plain-text P3 pixel map. Decode
// and Encode dispatch on a Format and hand bitmap formats (PNG, JPEG, GIF,
// TIFF, BMP, WebP) to github.com/disintegration/imaging.
//
// # Errors
//
// Failures wrap one of ErrInvalidArgument, ErrNotFound or ErrIO and should
// be checked with errors.Is.
package imaging
