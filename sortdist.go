package sortdist

import (
	"context"
	"errors"
	"io"
	"sync/atomic"
	"time"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"

	"github.com/hupe1980/sortdist/blobstore"
	"github.com/hupe1980/sortdist/column"
	"github.com/hupe1980/sortdist/distance"
)

// DefaultInputs is the reference input set, smallest first.
var DefaultInputs = []string{
	"input_1k.txt",
	"input_10k.txt",
	"input_100k.txt",
	"input_1m.txt",
	"input_10m.txt",
	"input_50m.txt",
	"input_100m.txt",
}

// Result describes one processed input.
type Result struct {
	// RunID identifies the Run (or ComputeInput call) that produced the result.
	RunID    string
	Name     string
	Records  int
	Distance int64
	Kernel   distance.Kernel
	// Elapsed covers loading and computing.
	Elapsed time.Duration
	// Err is nil on success. Failures are *InputError.
	Err error
}

// HistoryRecorder persists processed inputs.
type HistoryRecorder interface {
	Record(ctx context.Context, r Result) error
}

// Runner loads inputs from a blob store and computes their distances.
// A Runner is safe for concurrent use.
type Runner struct {
	store  blobstore.BlobStore
	opts   options
	fn     distance.Func
	logger *Logger
	closed atomic.Bool
}

// New creates a Runner reading inputs from store.
func New(store blobstore.BlobStore, optFns ...Option) (*Runner, error) {
	if store == nil {
		return nil, errors.New("sortdist: store is required")
	}

	opts := applyOptions(optFns)

	fn, err := distance.Provider(opts.kernel)
	if err != nil {
		return nil, &ErrInvalidKernel{Kernel: opts.kernel, cause: err}
	}

	if opts.kernel.Buckets() {
		if err := opts.domain.Validate(); err != nil {
			return nil, err
		}
	} else if opts.domain.Min > opts.domain.Max {
		return nil, &distance.InvalidDomainError{Domain: opts.domain}
	}

	return &Runner{
		store:  store,
		opts:   opts,
		fn:     fn,
		logger: opts.logger.WithKernel(opts.kernel),
	}, nil
}

// Domain returns the configured value domain.
func (r *Runner) Domain() distance.Domain { return r.opts.domain }

// Kernel returns the configured kernel.
func (r *Runner) Kernel() distance.Kernel { return r.opts.kernel }

// Compute returns the distance between a and b using the configured kernel
// and domain. Memory for the bucket tables is reserved from the resource
// controller for the duration of the call.
func (r *Runner) Compute(ctx context.Context, a, b []int64) (int64, error) {
	if r.closed.Load() {
		return 0, ErrClosed
	}
	d, err := r.compute(ctx, r.logger, a, b)
	return d, translateError(err)
}

func (r *Runner) compute(ctx context.Context, log *Logger, a, b []int64) (int64, error) {
	if err := ctx.Err(); err != nil {
		return 0, err
	}

	mem := r.memoryFor(len(a))
	if err := r.opts.controller.AcquireMemory(ctx, mem); err != nil {
		return 0, err
	}
	defer r.opts.controller.ReleaseMemory(mem)

	start := r.opts.clock()

	var (
		d   int64
		err error
	)
	if r.opts.kernel == distance.KernelCounting && r.opts.shards > 1 {
		d, err = distance.CountingParallel(ctx, a, b, r.opts.domain, r.opts.shards)
	} else {
		d, err = r.fn(a, b, r.opts.domain)
	}

	elapsed := r.opts.clock().Sub(start)
	r.opts.metricsCollector.RecordCompute(r.opts.kernel, len(a), elapsed, err)
	log.LogCompute(ctx, len(a), d, elapsed, err)

	return d, err
}

// memoryFor returns the bytes a kernel call on columns of length n holds.
func (r *Runner) memoryFor(n int) int64 {
	switch {
	case r.opts.kernel == distance.KernelCounting:
		return distance.TableBytes(r.opts.domain) * int64(distance.EffectiveShards(n, r.opts.shards))
	case r.opts.kernel.Buckets():
		return distance.TableBytes(r.opts.domain)
	default:
		// Sorted copies of both columns.
		return int64(n) * 16
	}
}

// ComputeInput loads the named input and computes its distance.
// The returned error equals Result.Err.
func (r *Runner) ComputeInput(ctx context.Context, name string) (Result, error) {
	if r.closed.Load() {
		return Result{Name: name, Kernel: r.opts.kernel, Err: ErrClosed}, ErrClosed
	}
	return r.computeInput(ctx, newRunID(), name)
}

func (r *Runner) computeInput(ctx context.Context, runID, name string) (Result, error) {
	log := r.logger.WithRunID(runID).WithInput(name)
	res := Result{RunID: runID, Name: name, Kernel: r.opts.kernel}

	start := r.opts.clock()
	cols, stats, err := column.Load(ctx, r.store, name, column.LoadOptions{Controller: r.opts.controller})
	loadTime := r.opts.clock().Sub(start)

	r.opts.metricsCollector.RecordLoad(stats.Records, stats.Bytes, loadTime, err)
	log.LogLoad(ctx, stats, loadTime, err)

	if err == nil {
		res.Records = stats.Records
		res.Distance, err = r.compute(ctx, log, cols.Left, cols.Right)
	}
	res.Elapsed = r.opts.clock().Sub(start)

	if err != nil {
		res.Distance = 0
		res.Err = &InputError{Name: name, cause: translateError(err)}
	}

	r.record(ctx, log, res)
	return res, res.Err
}

func (r *Runner) record(ctx context.Context, log *Logger, res Result) {
	if r.opts.history == nil {
		return
	}
	if err := r.opts.history.Record(context.WithoutCancel(ctx), res); err != nil {
		log.WarnContext(ctx, "history record failed", "error", err)
	}
}

// Run processes names with the configured parallelism and calls fn once per
// input, in the order of names. A failing input does not stop the run.
//
// Run returns the joined errors of all failed inputs, or nil.
func (r *Runner) Run(ctx context.Context, names []string, fn func(Result)) error {
	if r.closed.Load() {
		return ErrClosed
	}

	runID := newRunID()
	log := r.logger.WithRunID(runID)
	start := r.opts.clock()

	results := make([]Result, len(names))
	ready := make([]chan struct{}, len(names))
	for i := range ready {
		ready[i] = make(chan struct{})
	}

	var g errgroup.Group
	g.SetLimit(r.opts.parallelism)

	go func() {
		for i, name := range names {
			g.Go(func() error {
				defer close(ready[i])

				if err := r.opts.controller.AcquireWorker(ctx); err != nil {
					results[i] = Result{
						RunID:  runID,
						Name:   name,
						Kernel: r.opts.kernel,
						Err:    &InputError{Name: name, cause: err},
					}
					return nil
				}
				defer r.opts.controller.ReleaseWorker()

				results[i], _ = r.computeInput(ctx, runID, name)
				return nil
			})
		}
	}()

	var errs []error
	for i := range names {
		<-ready[i]
		if fn != nil {
			fn(results[i])
		}
		if results[i].Err != nil {
			errs = append(errs, results[i].Err)
		}
	}

	log.LogRun(ctx, len(names), len(errs), r.opts.clock().Sub(start))
	return errors.Join(errs...)
}

// Close releases the history recorder. Further calls return ErrClosed.
func (r *Runner) Close() error {
	if !r.closed.CompareAndSwap(false, true) {
		return ErrClosed
	}
	if c, ok := r.opts.history.(io.Closer); ok {
		return c.Close()
	}
	return nil
}

func newRunID() string {
	id, err := uuid.NewV7()
	if err != nil {
		return uuid.NewString()
	}
	return id.String()
}
