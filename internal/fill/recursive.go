package fill

import "github.com/ironsheep/lutimage-mcp/internal/imaging"

// fillRecursive visits (u, v) and then recurses right, left, down and up.
// Recursion depth grows with the length of the traversal path, up to the
// region size.
func fillRecursive(img *imaging.Image, u, v int, background, label imaging.Label) int {
	if !img.IsValidPixel(u, v) || img.Pixel(u, v) != background {
		return 0
	}
	img.SetPixel(u, v, label)

	count := 1
	count += fillRecursive(img, u+1, v, background, label)
	count += fillRecursive(img, u-1, v, background, label)
	count += fillRecursive(img, u, v+1, background, label)
	count += fillRecursive(img, u, v-1, background, label)
	return count
}
