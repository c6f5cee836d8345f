package sortdist

import (
	"errors"
	"fmt"

	"github.com/hupe1980/sortdist/blobstore"
	"github.com/hupe1980/sortdist/column"
	"github.com/hupe1980/sortdist/distance"
	"github.com/hupe1980/sortdist/resource"
)

var (
	// ErrNotFound is returned when an input does not exist in the store.
	ErrNotFound = errors.New("input not found")

	// ErrClosed is returned when using a closed Runner.
	ErrClosed = errors.New("runner is closed")

	// ErrResourceExhausted is returned when a bucket table can never fit the
	// configured memory limit.
	ErrResourceExhausted = errors.New("resource exhausted")

	// ErrInvalidInput is returned for columns of different lengths and for
	// empty domains.
	ErrInvalidInput = distance.ErrInvalidInput

	// ErrOutOfDomain is returned when a value lies outside the domain.
	ErrOutOfDomain = distance.ErrOutOfDomain

	// ErrMalformed is returned when an input record is not two integers.
	ErrMalformed = column.ErrMalformed
)

// InputError records the failure of a single input of a run.
//
// The original underlying error can be accessed via errors.Unwrap.
type InputError struct {
	Name  string
	cause error
}

func (e *InputError) Error() string {
	return fmt.Sprintf("input %s: %v", e.Name, e.cause)
}

func (e *InputError) Unwrap() error { return e.cause }

// ErrInvalidKernel indicates an unsupported kernel.
type ErrInvalidKernel struct {
	Kernel distance.Kernel
	cause  error
}

func (e *ErrInvalidKernel) Error() string {
	return fmt.Sprintf("invalid kernel: %s", e.Kernel)
}

func (e *ErrInvalidKernel) Unwrap() error { return e.cause }

func translateError(err error) error {
	if err == nil {
		return nil
	}

	// Not found unification across stores.
	if errors.Is(err, blobstore.ErrNotFound) {
		return fmt.Errorf("%w: %w", ErrNotFound, err)
	}

	var le *resource.LimitError
	if errors.As(err, &le) {
		return fmt.Errorf("%w: %w", ErrResourceExhausted, err)
	}

	return err
}
