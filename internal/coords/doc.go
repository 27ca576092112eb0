// Package coords provides the small containers of pixel coordinates used by
// the iterative flood-fill strategies.
//
// A Coord is a transient (column, row) pair. Stack is a LIFO and Queue a
// FIFO; both grow on demand and know nothing about images. Popping or
// dequeuing from an empty container is a programmer error and panics.
package coords
