// Package imaging implements the indexed-color image model used by the
// region-growing engine.
//
// An Image stores one Label per pixel in a contiguous row-major buffer and a
// look-up table (LUT) mapping each label to a 24-bit RGB color. Labels 0 and
// 1 are reserved for White and Black when an image is created; further
// colors are appended with AllocColor or AddColor until the LUT reaches
// MaxColors entries.
//
// # Coordinate System
//
// Pixel coordinates are 0-based with the origin at the top-left corner:
//   - u: column (0 = leftmost pixel)
//   - v: row (0 = topmost pixel)
//   - For regions, (X1,Y1) is inclusive and (X2,Y2) is exclusive
//
// # Error Handling
//
// Two kinds of failure are distinguished:
//   - Resource errors (LUT overflow, oversized or invalid dimensions, I/O
//     failures during import and export) are returned as errors wrapping
//     the sentinels in this package, so callers can test them with errors.Is.
//   - Programmer errors (pixel access outside the image, storing a label
//     that is not in the LUT) panic, in the same way slice indexing does.
//     Use IsValidPixel to test coordinates that come from outside.
//
// # Transforms
//
// Rotate90CW, Rotate180CW, Rotate270CW and Crop never modify their input.
// They return a new Image whose LUT is a verbatim copy of the source LUT, so
// every label keeps its color.
//
// # Instrumentation
//
// Every access to the pixel grid is counted on instr.PixMem. Bulk operations
// add the number of pixels they touch in one step.
//
// # Thread Safety
//
// An Image has no internal locking. Distinct images never share storage and
// can be processed on different goroutines.
package imaging
