package column

import (
	"errors"
	"fmt"
)

// ErrMalformed is returned when a record cannot be parsed.
var ErrMalformed = errors.New("malformed record")

// Columns holds the left and right values of an input, in file order.
type Columns struct {
	Left  []int64
	Right []int64
}

// Len returns the number of records.
func (c Columns) Len() int {
	return len(c.Left)
}

func (c *Columns) grow(n int) {
	if n <= 0 {
		return
	}
	if c.Left == nil {
		c.Left = make([]int64, 0, n)
		c.Right = make([]int64, 0, n)
	}
}

func (c *Columns) append(l, r int64) {
	c.Left = append(c.Left, l)
	c.Right = append(c.Right, r)
}

// ParseError reports a record that is not two integers.
type ParseError struct {
	Line int
	Text string
	Err  error
}

func (e *ParseError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("line %d: malformed record %q: %v", e.Line, e.Text, e.Err)
	}
	return fmt.Sprintf("line %d: malformed record %q", e.Line, e.Text)
}

// Unwrap returns ErrMalformed so that errors.Is(err, ErrMalformed) holds.
func (e *ParseError) Unwrap() error {
	return ErrMalformed
}
