package netpbm

import "errors"

var (
	// ErrFormat is returned when the magic number is not the expected one.
	ErrFormat = errors.New("netpbm: invalid file format")

	// ErrHeader is returned when a header token is missing or malformed.
	ErrHeader = errors.New("netpbm: malformed header")

	// ErrDimensions is returned for negative, zero or oversized dimensions.
	ErrDimensions = errors.New("netpbm: invalid dimensions")

	// ErrDepth is returned when a PPM maxval is outside 0..255.
	ErrDepth = errors.New("netpbm: invalid depth")

	// ErrPixel is returned when a PPM sample is malformed or above maxval.
	ErrPixel = errors.New("netpbm: invalid pixel color")

	// ErrTruncated is returned when the pixel data ends early.
	ErrTruncated = errors.New("netpbm: truncated pixel data")

	// ErrNotBitmap is returned when saving an image that does not have
	// exactly two colors as PBM.
	ErrNotBitmap = errors.New("netpbm: image is not a two-color bitmap")

	// ErrUnsupported is returned when a file's format cannot be determined.
	ErrUnsupported = errors.New("netpbm: unsupported format")
)
