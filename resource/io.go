package resource

import (
	"context"
	"io"
)

// RateLimitedReader wraps an io.Reader with the controller's IO limit.
type RateLimitedReader struct {
	r   io.Reader
	rc  *Controller
	ctx context.Context
}

// NewRateLimitedReader creates a new RateLimitedReader.
func NewRateLimitedReader(ctx context.Context, r io.Reader, rc *Controller) *RateLimitedReader {
	return &RateLimitedReader{
		r:   r,
		rc:  rc,
		ctx: ctx,
	}
}

// Read reads into p, charging the limiter for the bytes actually read.
func (r *RateLimitedReader) Read(p []byte) (int, error) {
	n, err := r.r.Read(p)
	if n > 0 {
		if werr := r.rc.AcquireIO(r.ctx, n); werr != nil {
			return n, werr
		}
	}
	return n, err
}

// Throttle wraps r with the IO limit of rc. It returns r unchanged when
// rc has no IO limit.
func Throttle(ctx context.Context, r io.Reader, rc *Controller) io.Reader {
	if rc == nil || rc.ioLimiter == nil {
		return r
	}
	return NewRateLimitedReader(ctx, r, rc)
}
