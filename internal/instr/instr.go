// Package instr keeps named operation counters used to compare the cost of
// algorithms independently of wall-clock noise.
//
// Counters are process-wide and updated atomically, so code running on
// several goroutines may share them. PixMem counts pixel-grid accesses and
// is incremented by the imaging package.
package instr

import (
	"fmt"
	"io"
	"sort"
	"sync"
	"sync/atomic"
	"time"
)

// Counter is a named, monotonically increasing operation count.
type Counter struct {
	name string
	n    atomic.Uint64
}

// Name returns the counter's registered name.
func (c *Counter) Name() string { return c.name }

// Add increases the counter by n.
func (c *Counter) Add(n int) { c.n.Add(uint64(n)) }

// Inc increases the counter by one.
func (c *Counter) Inc() { c.n.Add(1) }

// Value returns the current count.
func (c *Counter) Value() uint64 { return c.n.Load() }

// Reset sets the counter back to zero.
func (c *Counter) Reset() { c.n.Store(0) }

var (
	mu       sync.Mutex
	counters []*Counter
	started  = time.Now()
)

// PixMem counts pixel array accesses (reads and writes).
var PixMem = Register("pixmem")

// Register creates a counter and adds it to the package registry. Names are
// not required to be unique, but reports are easier to read when they are.
func Register(name string) *Counter {
	c := &Counter{name: name}
	mu.Lock()
	counters = append(counters, c)
	mu.Unlock()
	return c
}

// Reset zeroes every registered counter and restarts the elapsed-time clock.
func Reset() {
	mu.Lock()
	defer mu.Unlock()
	for _, c := range counters {
		c.Reset()
	}
	started = time.Now()
}

// Elapsed returns the time since the last Reset (or process start).
func Elapsed() time.Duration {
	mu.Lock()
	defer mu.Unlock()
	return time.Since(started)
}

// Snapshot returns the current value of every registered counter by name.
func Snapshot() map[string]uint64 {
	mu.Lock()
	defer mu.Unlock()
	out := make(map[string]uint64, len(counters))
	for _, c := range counters {
		out[c.name] += c.Value()
	}
	return out
}

// Report writes the elapsed time followed by one line per counter, sorted
// by name.
func Report(w io.Writer) error {
	snap := Snapshot()
	names := make([]string, 0, len(snap))
	for name := range snap {
		names = append(names, name)
	}
	sort.Strings(names)

	if _, err := fmt.Fprintf(w, "%-12s %15s\n", "time", Elapsed()); err != nil {
		return err
	}
	for _, name := range names {
		if _, err := fmt.Fprintf(w, "%-12s %15d\n", name, snap[name]); err != nil {
			return err
		}
	}
	return nil
}
