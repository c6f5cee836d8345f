package distance

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidInput is matched by every error caused by the shape of the
	// arguments: mismatched lengths or an empty domain.
	ErrInvalidInput = errors.New("invalid input")

	// ErrOutOfDomain is matched when an element falls outside the domain.
	ErrOutOfDomain = errors.New("value out of domain")
)

// LengthMismatchError indicates that the two columns differ in length.
type LengthMismatchError struct {
	Left  int
	Right int
}

func (e *LengthMismatchError) Error() string {
	return fmt.Sprintf("invalid input: length mismatch: left has %d values, right has %d", e.Left, e.Right)
}

func (e *LengthMismatchError) Unwrap() error { return ErrInvalidInput }

// InvalidDomainError indicates a domain whose range is not positive or too
// large for a bucket table.
type InvalidDomainError struct {
	Domain Domain
}

func (e *InvalidDomainError) Error() string {
	return fmt.Sprintf("invalid input: invalid domain %s (range %d)", e.Domain, e.Domain.Range())
}

func (e *InvalidDomainError) Unwrap() error { return ErrInvalidInput }

// OutOfDomainError reports the first element found outside the domain.
type OutOfDomainError struct {
	Column string // "left" or "right"
	Index  int
	Value  int64
	Domain Domain
}

func (e *OutOfDomainError) Error() string {
	return fmt.Sprintf("value out of domain: %s[%d] = %d not in %s", e.Column, e.Index, e.Value, e.Domain)
}

func (e *OutOfDomainError) Unwrap() error { return ErrOutOfDomain }

// OverflowError indicates that the distance does not fit in an int64.
// Only SortZip over a domain wider than math.MaxInt64 can produce it.
type OverflowError struct {
	Index int // first pair whose difference or running sum overflowed
}

func (e *OverflowError) Error() string {
	return fmt.Sprintf("invalid input: distance overflows int64 at pair %d", e.Index)
}

func (e *OverflowError) Unwrap() error { return ErrInvalidInput }
