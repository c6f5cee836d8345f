package sortdist

import (
	"sync/atomic"
	"time"

	"github.com/hupe1980/sortdist/distance"
)

// MetricsCollector defines an interface for collecting operational metrics.
// Implement this interface to integrate with monitoring systems like Prometheus.
//
// Example Prometheus integration:
//
//	type PrometheusCollector struct {
//	    computeCounter   prometheus.Counter
//	    computeHistogram prometheus.Histogram
//	}
//
//	func (p *PrometheusCollector) RecordCompute(k distance.Kernel, n int, d time.Duration, err error) {
//	    p.computeCounter.Inc()
//	    p.computeHistogram.Observe(d.Seconds())
//	}
type MetricsCollector interface {
	// RecordLoad is called after each input is loaded.
	// records and bytes describe the input, err is nil if successful.
	RecordLoad(records int, bytes int64, duration time.Duration, err error)

	// RecordCompute is called after each kernel invocation.
	// n is the column length, err is nil if successful.
	RecordCompute(kernel distance.Kernel, n int, duration time.Duration, err error)
}

// NoopMetricsCollector is a no-op implementation of MetricsCollector.
// Use this when metrics collection is not needed.
type NoopMetricsCollector struct{}

func (NoopMetricsCollector) RecordLoad(int, int64, time.Duration, error)              {}
func (NoopMetricsCollector) RecordCompute(distance.Kernel, int, time.Duration, error) {}

// BasicMetricsCollector provides simple in-memory metrics collection.
// Useful for debugging and basic monitoring without external dependencies.
type BasicMetricsCollector struct {
	LoadCount         atomic.Int64
	LoadErrors        atomic.Int64
	LoadRecords       atomic.Int64
	LoadBytes         atomic.Int64
	LoadTotalNanos    atomic.Int64
	ComputeCount      atomic.Int64
	ComputeErrors     atomic.Int64
	ComputeElements   atomic.Int64
	ComputeTotalNanos atomic.Int64
}

// RecordLoad implements MetricsCollector.
func (b *BasicMetricsCollector) RecordLoad(records int, bytes int64, duration time.Duration, err error) {
	b.LoadCount.Add(1)
	b.LoadTotalNanos.Add(duration.Nanoseconds())
	if err != nil {
		b.LoadErrors.Add(1)
		return
	}
	b.LoadRecords.Add(int64(records))
	b.LoadBytes.Add(bytes)
}

// RecordCompute implements MetricsCollector.
func (b *BasicMetricsCollector) RecordCompute(_ distance.Kernel, n int, duration time.Duration, err error) {
	b.ComputeCount.Add(1)
	b.ComputeTotalNanos.Add(duration.Nanoseconds())
	if err != nil {
		b.ComputeErrors.Add(1)
		return
	}
	b.ComputeElements.Add(int64(n))
}

// GetStats returns a snapshot of current metrics.
func (b *BasicMetricsCollector) GetStats() BasicMetricsStats {
	return BasicMetricsStats{
		LoadCount:       b.LoadCount.Load(),
		LoadErrors:      b.LoadErrors.Load(),
		LoadRecords:     b.LoadRecords.Load(),
		LoadBytes:       b.LoadBytes.Load(),
		LoadAvgNanos:    avg(b.LoadTotalNanos.Load(), b.LoadCount.Load()),
		ComputeCount:    b.ComputeCount.Load(),
		ComputeErrors:   b.ComputeErrors.Load(),
		ComputeElements: b.ComputeElements.Load(),
		ComputeAvgNanos: avg(b.ComputeTotalNanos.Load(), b.ComputeCount.Load()),
	}
}

func avg(total, count int64) int64 {
	if count == 0 {
		return 0
	}
	return total / count
}

// BasicMetricsStats is a snapshot of BasicMetricsCollector state.
type BasicMetricsStats struct {
	LoadCount       int64
	LoadErrors      int64
	LoadRecords     int64
	LoadBytes       int64
	LoadAvgNanos    int64
	ComputeCount    int64
	ComputeErrors   int64
	ComputeElements int64
	ComputeAvgNanos int64
}
