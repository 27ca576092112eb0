package coords

import "fmt"

// Coord identifies a pixel by column (U) and row (V).
type Coord struct {
	U int `json:"u"` // Column index (0 = leftmost)
	V int `json:"v"` // Row index (0 = topmost)
}

// Neighbors returns the 4-connected neighbours of c in fill order:
// right, left, down, up. Results may lie outside any image.
func (c Coord) Neighbors() [4]Coord {
	return [4]Coord{
		{U: c.U + 1, V: c.V},
		{U: c.U - 1, V: c.V},
		{U: c.U, V: c.V + 1},
		{U: c.U, V: c.V - 1},
	}
}

func (c Coord) String() string {
	return fmt.Sprintf("(%d,%d)", c.U, c.V)
}
