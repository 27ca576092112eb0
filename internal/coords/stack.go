package coords

// Stack is a LIFO of coordinates backed by a single growable slice.
//
// The zero value is an empty stack ready for use.
type Stack struct {
	items []Coord
}

// NewStack returns an empty stack with room for capHint coordinates before
// the first reallocation. Negative hints are treated as zero.
func NewStack(capHint int) *Stack {
	if capHint < 0 {
		capHint = 0
	}
	return &Stack{items: make([]Coord, 0, capHint)}
}

// Push adds c to the top of the stack.
func (s *Stack) Push(c Coord) {
	s.items = append(s.items, c)
}

// Pop removes and returns the top coordinate. It panics if the stack is empty.
func (s *Stack) Pop() Coord {
	n := len(s.items)
	if n == 0 {
		panic("coords: Pop on empty stack")
	}
	c := s.items[n-1]
	s.items = s.items[:n-1]
	return c
}

// Peek returns the top coordinate without removing it. It panics if the
// stack is empty.
func (s *Stack) Peek() Coord {
	if len(s.items) == 0 {
		panic("coords: Peek on empty stack")
	}
	return s.items[len(s.items)-1]
}

// Len returns the number of stacked coordinates.
func (s *Stack) Len() int { return len(s.items) }

// IsEmpty reports whether the stack holds no coordinates.
func (s *Stack) IsEmpty() bool { return len(s.items) == 0 }

// Clear empties the stack, keeping its storage.
func (s *Stack) Clear() { s.items = s.items[:0] }
