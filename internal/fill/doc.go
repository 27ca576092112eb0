// Package fill implements region growing on indexed images: three
// interchangeable 4-connected flood-fill strategies and the segmentation
// driver that labels every white region of an image.
//
// # Fill Contract
//
// Every strategy relabels exactly the 4-connected component of pixels that
// share the seed's current label and returns how many pixels it changed.
// A seed outside the image, or one that already carries the target label,
// changes nothing and returns 0. The three strategies leave identical images
// behind and return identical counts; only their visiting order and memory
// profile differ:
//
//   - Stack: explicit LIFO, depth-first. The default.
//   - Queue: explicit FIFO, breadth-first.
//   - Recursive: one Go call frame per pixel. Kept as the reference
//     implementation; very large regions grow the goroutine stack
//     proportionally and can exhaust the runtime's maximum stack size,
//     which is a fatal error rather than a recoverable panic. Callers
//     handling untrusted sizes check Strategy.CheckSize first.
//
// The explicit strategies relabel a pixel when it is pushed, not when it is
// popped, so each coordinate enters the container at most once.
//
// # Segmentation
//
// Segment scans the image row by row and starts a fill at every pixel still
// carrying imaging.WhiteLabel, giving each region a freshly generated LUT
// color. Running out of LUT space ends the scan early; the partial count is
// returned, not an error.
package fill
