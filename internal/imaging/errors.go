package imaging

import "errors"

var (
	// ErrInvalidDimensions is returned when an image is requested with a
	// non-positive width, height or tile edge.
	ErrInvalidDimensions = errors.New("imaging: invalid dimensions")

	// ErrTooLarge is returned when the pixel grid would exceed MaxPixels.
	ErrTooLarge = errors.New("imaging: image too large")

	// ErrLUTOverflow is returned when a color cannot be added because the
	// LUT already holds MaxColors entries.
	ErrLUTOverflow = errors.New("imaging: LUT overflow")

	// ErrOutOfBounds is returned by queries that report, rather than panic
	// on, coordinates outside the image.
	ErrOutOfBounds = errors.New("imaging: coordinates outside image bounds")
)
