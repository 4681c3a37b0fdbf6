package imaging

import "errors"

// Error kinds reported by the engine, the codecs and the registry.
// Callers match them with errors.Is; the returned errors wrap one of these
// with operation-specific detail.
var (
	// ErrInvalidArgument reports a missing or malformed parameter: an
	// out-of-range channel, a ragged pixel grid, a bad format token or a
	// downscale target larger than its source.
	ErrInvalidArgument = errors.New("invalid argument")

	// ErrNotFound reports a registry lookup for an unknown image name.
	ErrNotFound = errors.New("not found")

	// ErrIO reports a failure of the underlying reader, writer or file.
	ErrIO = errors.New("i/o failure")
)
