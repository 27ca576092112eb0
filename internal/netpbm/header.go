package netpbm

import (
	"bufio"
	"errors"
	"fmt"
	"io"
)

// maxToken bounds decimal header and sample values while they are parsed.
const maxToken = 1 << 30

// tokenReader parses the whitespace-separated decimal tokens of a Netpbm
// stream.
type tokenReader struct {
	r *bufio.Reader
}

func newTokenReader(r io.Reader) *tokenReader {
	return &tokenReader{r: bufio.NewReader(r)}
}

func isSpace(b byte) bool {
	switch b {
	case ' ', '\t', '\n', '\v', '\f', '\r':
		return true
	}
	return false
}

// magic consumes the two-byte magic number and fails with ErrFormat unless
// it is "P" followed by want.
func (t *tokenReader) magic(want byte) error {
	var m [2]byte
	if _, err := io.ReadFull(t.r, m[:]); err != nil {
		return fmt.Errorf("%w: reading magic number: %v", ErrFormat, err)
	}
	if m[0] != 'P' || m[1] != want {
		return fmt.Errorf("%w: magic %q, want \"P%c\"", ErrFormat, m[:], want)
	}
	return nil
}

// skip consumes whitespace and, if comments is set, '#' comments running to
// the end of the line.
func (t *tokenReader) skip(comments bool) error {
	for {
		b, err := t.r.ReadByte()
		if err != nil {
			return err
		}
		switch {
		case isSpace(b):
		case b == '#' && comments:
			if _, err := t.r.ReadString('\n'); err != nil {
				return err
			}
		default:
			return t.r.UnreadByte()
		}
	}
}

// number reads one optionally signed decimal integer after skipping
// separators. The terminating byte is left unread.
func (t *tokenReader) number(comments bool) (int, error) {
	if err := t.skip(comments); err != nil {
		return 0, err
	}

	neg := false
	b, err := t.r.ReadByte()
	if err != nil {
		return 0, err
	}
	if b == '-' || b == '+' {
		neg = b == '-'
		if b, err = t.r.ReadByte(); err != nil {
			return 0, err
		}
	}
	if b < '0' || b > '9' {
		return 0, fmt.Errorf("unexpected byte %q", b)
	}

	n := 0
	for {
		n = n*10 + int(b-'0')
		if n > maxToken {
			return 0, fmt.Errorf("number too large")
		}
		b, err = t.r.ReadByte()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return 0, err
		}
		if b < '0' || b > '9' {
			if err := t.r.UnreadByte(); err != nil {
				return 0, err
			}
			break
		}
	}
	if neg {
		n = -n
	}
	return n, nil
}

// headerField reads a header integer, wrapping any failure in ErrHeader.
func (t *tokenReader) headerField(name string) (int, error) {
	n, err := t.number(true)
	if err != nil {
		return 0, fmt.Errorf("%w: %s: %v", ErrHeader, name, err)
	}
	return n, nil
}

// dimensions reads the width and height header fields.
func (t *tokenReader) dimensions() (width, height int, err error) {
	if width, err = t.headerField("width"); err != nil {
		return 0, 0, err
	}
	if width < 0 {
		return 0, 0, fmt.Errorf("%w: width %d", ErrDimensions, width)
	}
	if height, err = t.headerField("height"); err != nil {
		return 0, 0, err
	}
	if height < 0 {
		return 0, 0, fmt.Errorf("%w: height %d", ErrDimensions, height)
	}
	return width, height, nil
}

// separator consumes the single whitespace byte that ends the header.
func (t *tokenReader) separator() error {
	b, err := t.r.ReadByte()
	if err != nil {
		return fmt.Errorf("%w: whitespace expected: %v", ErrHeader, err)
	}
	if !isSpace(b) {
		return fmt.Errorf("%w: whitespace expected, got %q", ErrHeader, b)
	}
	return nil
}
