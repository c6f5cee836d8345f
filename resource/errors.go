package resource

import (
	"errors"
	"fmt"
)

// ErrLimitExceeded is returned when a single request can never fit the limit.
var ErrLimitExceeded = errors.New("resource limit exceeded")

// LimitError reports a memory request larger than the configured limit.
type LimitError struct {
	Requested int64
	Limit     int64
}

func (e *LimitError) Error() string {
	return fmt.Sprintf("memory request of %d bytes exceeds limit of %d bytes", e.Requested, e.Limit)
}

func (e *LimitError) Unwrap() error {
	return ErrLimitExceeded
}
