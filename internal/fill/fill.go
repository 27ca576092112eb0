package fill

import (
	"errors"
	"fmt"
	"strings"

	"github.com/ironsheep/lutimage-mcp/internal/imaging"
)

// Filler is anything that can flood-fill a region of an image.
type Filler interface {
	// Fill relabels the 4-connected region containing (u, v) with label and
	// returns the number of pixels changed.
	Fill(img *imaging.Image, u, v int, label imaging.Label) int
}

// Strategy selects one of the built-in traversal orders. The zero value is
// Stack.
type Strategy int

const (
	Stack Strategy = iota
	Queue
	Recursive
)

var strategyNames = [...]string{
	Stack:     "stack",
	Queue:     "queue",
	Recursive: "recursive",
}

// MaxRecursivePixels is the largest image, in pixels, that CheckSize accepts
// for the Recursive strategy. Recursion depth can reach the region size, and
// running out of goroutine stack aborts the whole process.
const MaxRecursivePixels = 1 << 20

// ErrTooLarge is returned by CheckSize when an image is too large for the
// selected strategy.
var ErrTooLarge = errors.New("fill: image too large for strategy")

// Strategies returns every built-in strategy.
func Strategies() []Strategy {
	return []Strategy{Stack, Queue, Recursive}
}

// ParseStrategy maps a case-insensitive name to a Strategy. An empty name
// selects Stack.
func ParseStrategy(name string) (Strategy, error) {
	if name == "" {
		return Stack, nil
	}
	for i, n := range strategyNames {
		if strings.EqualFold(name, n) {
			return Strategy(i), nil
		}
	}
	return 0, fmt.Errorf("unknown fill strategy: %s", name)
}

func (s Strategy) String() string {
	if s < 0 || int(s) >= len(strategyNames) {
		return fmt.Sprintf("Strategy(%d)", int(s))
	}
	return strategyNames[s]
}

// CheckSize returns ErrTooLarge if s is Recursive and img has more than
// MaxRecursivePixels pixels. The explicit strategies accept any image.
func (s Strategy) CheckSize(img *imaging.Image) error {
	if s != Recursive {
		return nil
	}
	if n := img.Width() * img.Height(); n > MaxRecursivePixels {
		return fmt.Errorf("%w: %s fill of %dx%d exceeds %d pixels, use stack or queue",
			ErrTooLarge, s, img.Width(), img.Height(), MaxRecursivePixels)
	}
	return nil
}

// Fill implements Filler. It panics if s is not a built-in strategy, or if
// a pixel has to be changed and label is not in the image's LUT.
func (s Strategy) Fill(img *imaging.Image, u, v int, label imaging.Label) int {
	if !img.IsValidPixel(u, v) {
		return 0
	}
	background := img.Pixel(u, v)
	if background == label {
		return 0
	}

	switch s {
	case Stack:
		return fillStack(img, u, v, background, label)
	case Queue:
		return fillQueue(img, u, v, background, label)
	case Recursive:
		return fillRecursive(img, u, v, background, label)
	default:
		panic(fmt.Sprintf("fill: unknown strategy %d", int(s)))
	}
}

// containerHint sizes the explicit containers: one percent of the image,
// but never fewer than 100 coordinates.
func containerHint(img *imaging.Image) int {
	return max(img.Width()*img.Height()/100, 100)
}
