package fill

import (
	"github.com/ironsheep/lutimage-mcp/internal/coords"
	"github.com/ironsheep/lutimage-mcp/internal/imaging"
)

// fillStack floods depth-first with an explicit LIFO. Pixels are relabelled
// as they are pushed.
func fillStack(img *imaging.Image, u, v int, background, label imaging.Label) int {
	stack := coords.NewStack(containerHint(img))

	img.SetPixel(u, v, label)
	stack.Push(coords.Coord{U: u, V: v})
	count := 1

	for !stack.IsEmpty() {
		for _, n := range stack.Pop().Neighbors() {
			if img.IsValidPixel(n.U, n.V) && img.Pixel(n.U, n.V) == background {
				img.SetPixel(n.U, n.V, label)
				stack.Push(n)
				count++
			}
		}
	}
	return count
}
