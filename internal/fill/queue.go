package fill

import (
	"github.com/ironsheep/lutimage-mcp/internal/coords"
	"github.com/ironsheep/lutimage-mcp/internal/imaging"
)

// fillQueue floods breadth-first with an explicit FIFO. Pixels are
// relabelled as they are enqueued.
func fillQueue(img *imaging.Image, u, v int, background, label imaging.Label) int {
	queue := coords.NewQueue(containerHint(img))

	img.SetPixel(u, v, label)
	queue.Enqueue(coords.Coord{U: u, V: v})
	count := 1

	for !queue.IsEmpty() {
		for _, n := range queue.Dequeue().Neighbors() {
			if img.IsValidPixel(n.U, n.V) && img.Pixel(n.U, n.V) == background {
				img.SetPixel(n.U, n.V, label)
				queue.Enqueue(n)
				count++
			}
		}
	}
	return count
}
