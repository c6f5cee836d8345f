package sortdist

import (
	"log/slog"
	"time"

	"github.com/hupe1980/sortdist/distance"
	"github.com/hupe1980/sortdist/resource"
)

type options struct {
	domain           distance.Domain
	kernel           distance.Kernel
	shards           int
	parallelism      int
	controller       *resource.Controller
	history          HistoryRecorder
	metricsCollector MetricsCollector
	logger           *Logger
	clock            func() time.Time
}

// Option configures a Runner.
type Option func(*options)

// WithDomain sets the inclusive value domain [Min, Max] of the inputs.
// Defaults to distance.DefaultDomain ([10000, 99999]).
func WithDomain(d distance.Domain) Option {
	return func(o *options) {
		o.domain = d
	}
}

// WithKernel selects the distance kernel. Defaults to distance.KernelCounting.
//
// KernelSort does not allocate bucket tables and accepts any domain with
// Min <= Max.
func WithKernel(k distance.Kernel) Option {
	return func(o *options) {
		o.kernel = k
	}
}

// WithShards tallies each column on up to n goroutines before the pairing
// walk. Only KernelCounting is sharded. Columns shorter than 64Ki values per
// shard use fewer shards.
//
// Each shard holds a private pair of tables, so memory grows linearly with n.
//
// If n <= 1, sharding is disabled.
func WithShards(n int) Option {
	return func(o *options) {
		o.shards = n
	}
}

// WithParallelism sets how many inputs Run processes at once.
// Results are still reported in input order. Defaults to 1.
func WithParallelism(n int) Option {
	return func(o *options) {
		o.parallelism = n
	}
}

// WithResourceController bounds bucket table memory, worker slots and read
// throughput. A controller may be shared between runners.
//
// Example:
//
//	rc := resource.NewController(resource.Config{MemoryLimitBytes: 32 << 20})
//	runner, _ := sortdist.New(store, sortdist.WithResourceController(rc))
func WithResourceController(rc *resource.Controller) Option {
	return func(o *options) {
		o.controller = rc
	}
}

// WithHistory records every processed input. The Runner takes ownership of
// h and closes it on Close if it implements io.Closer.
func WithHistory(h HistoryRecorder) Option {
	return func(o *options) {
		o.history = h
	}
}

// WithClock replaces time.Now for elapsed-time measurement.
func WithClock(now func() time.Time) Option {
	return func(o *options) {
		o.clock = now
	}
}

// WithMetricsCollector configures a metrics collector for monitoring operations.
// Pass nil to disable metrics collection.
//
// Example with BasicMetricsCollector:
//
//	metrics := &sortdist.BasicMetricsCollector{}
//	runner, _ := sortdist.New(store, sortdist.WithMetricsCollector(metrics))
//	// ... use runner ...
//	stats := metrics.GetStats()
//	fmt.Printf("Computes: %d, Avg latency: %dns\n", stats.ComputeCount, stats.ComputeAvgNanos)
func WithMetricsCollector(mc MetricsCollector) Option {
	return func(o *options) {
		o.metricsCollector = mc
	}
}

// WithLogger configures structured logging for operations.
// Pass nil to disable logging.
//
// Example with JSON logging:
//
//	logger := sortdist.NewJSONLogger(slog.LevelInfo)
//	runner, _ := sortdist.New(store, sortdist.WithLogger(logger))
func WithLogger(logger *Logger) Option {
	return func(o *options) {
		o.logger = logger
	}
}

// WithLogLevel creates a text logger with the specified level and sets it.
// Convenience wrapper for WithLogger(NewTextLogger(level)).
func WithLogLevel(level slog.Level) Option {
	return func(o *options) {
		o.logger = NewTextLogger(level)
	}
}

func applyOptions(optFns []Option) options {
	o := options{
		domain:           distance.DefaultDomain,
		kernel:           distance.KernelCounting,
		shards:           1,
		parallelism:      1,
		metricsCollector: NoopMetricsCollector{},
		logger:           NoopLogger(),
		clock:            time.Now,
	}
	for _, fn := range optFns {
		if fn != nil {
			fn(&o)
		}
	}
	if o.metricsCollector == nil {
		o.metricsCollector = NoopMetricsCollector{}
	}
	if o.logger == nil {
		o.logger = NoopLogger()
	}
	if o.clock == nil {
		o.clock = time.Now
	}
	o.shards = max(o.shards, 1)
	o.parallelism = max(o.parallelism, 1)
	return o
}
