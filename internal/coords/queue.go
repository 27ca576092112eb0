package coords

// Queue is a FIFO of coordinates backed by a ring buffer that doubles when
// full.
//
// The zero value is an empty queue ready for use.
type Queue struct {
	buf   []Coord
	head  int // index of the front element
	count int
}

// NewQueue returns an empty queue with room for capHint coordinates before
// the first reallocation. Negative hints are treated as zero.
func NewQueue(capHint int) *Queue {
	if capHint < 0 {
		capHint = 0
	}
	return &Queue{buf: make([]Coord, capHint)}
}

// Enqueue appends c at the back of the queue.
func (q *Queue) Enqueue(c Coord) {
	if q.count == len(q.buf) {
		q.grow()
	}
	q.buf[(q.head+q.count)%len(q.buf)] = c
	q.count++
}

// Dequeue removes and returns the front coordinate. It panics if the queue
// is empty.
func (q *Queue) Dequeue() Coord {
	if q.count == 0 {
		panic("coords: Dequeue on empty queue")
	}
	c := q.buf[q.head]
	q.head = (q.head + 1) % len(q.buf)
	q.count--
	return c
}

// Front returns the front coordinate without removing it. It panics if the
// queue is empty.
func (q *Queue) Front() Coord {
	if q.count == 0 {
		panic("coords: Front on empty queue")
	}
	return q.buf[q.head]
}

// Len returns the number of queued coordinates.
func (q *Queue) Len() int { return q.count }

// IsEmpty reports whether the queue holds no coordinates.
func (q *Queue) IsEmpty() bool { return q.count == 0 }

// Clear empties the queue, keeping its storage.
func (q *Queue) Clear() {
	q.head = 0
	q.count = 0
}

// grow doubles the ring, unwrapping the live elements to the start.
func (q *Queue) grow() {
	size := 2 * len(q.buf)
	if size == 0 {
		size = 16
	}
	buf := make([]Coord, size)
	for i := 0; i < q.count; i++ {
		buf[i] = q.buf[(q.head+i)%len(q.buf)]
	}
	q.buf = buf
	q.head = 0
}
