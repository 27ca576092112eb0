// Package netpbm reads and writes the two Netpbm formats understood by the
// engine, and caches decoded images by path.
//
//   - PBM (magic "P4"): binary bitmap. Rows of ceil(width/8) bytes, most
//     significant bit first; 1 is BlackLabel, 0 is WhiteLabel.
//   - PPM (magic "P3"): plain-text pixmap. A maxval of at most 255 followed by
//     width*height decimal "R G B" triplets in row-major order.
//
// Comment lines starting with '#' may appear between header tokens. The last
// header token is followed by exactly one whitespace byte.
//
// # Error Handling
//
// Every decoding or encoding failure is fatal for the operation and is
// returned as an error wrapping one of the sentinels below (ErrFormat,
// ErrHeader, ErrDimensions, ErrDepth, ErrPixel, ErrTruncated, ErrNotBitmap),
// or imaging.ErrLUTOverflow when a PPM holds too many colors. Nothing is
// retried or repaired: a malformed file never yields a partial image.
// When saving fails, a partial and invalid file may be left on disk.
package netpbm
