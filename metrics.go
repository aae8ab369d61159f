package difvec

import (
	"sync/atomic"
	"time"
)

// MetricsCollector defines an interface for collecting operational metrics.
// Implement this interface to integrate with monitoring systems like Prometheus.
//
// Example Prometheus integration:
//
//	type PrometheusCollector struct {
//	    filterCounter   prometheus.Counter
//	    uniqueHistogram prometheus.Histogram
//	}
//
//	func (p *PrometheusCollector) RecordFilter(duration time.Duration, err error) {
//	    p.filterCounter.Inc()
//	    // ... record error state, duration, etc.
//	}
type MetricsCollector interface {
	// RecordConvert is called after each detector-to-reciprocal conversion.
	// duration is the total time taken, err is nil if successful.
	RecordConvert(duration time.Duration, err error)

	// RecordFilter is called after each vector filter operation.
	RecordFilter(duration time.Duration, err error)

	// RecordMatch is called after each basis matching operation.
	RecordMatch(duration time.Duration, err error)

	// RecordUnique is called after each unique-vector clustering operation.
	// clusters is the number of representatives produced, duration is the
	// time taken, err is nil if successful.
	RecordUnique(clusters int, duration time.Duration, err error)

	// RecordFlatten is called after each table export.
	// rows is the number of rows produced.
	RecordFlatten(rows int, duration time.Duration)
}

// NoopMetricsCollector is a no-op implementation of MetricsCollector.
// Use this when metrics collection is not needed.
type NoopMetricsCollector struct{}

func (NoopMetricsCollector) RecordConvert(time.Duration, error)     {}
func (NoopMetricsCollector) RecordFilter(time.Duration, error)      {}
func (NoopMetricsCollector) RecordMatch(time.Duration, error)       {}
func (NoopMetricsCollector) RecordUnique(int, time.Duration, error) {}
func (NoopMetricsCollector) RecordFlatten(int, time.Duration)       {}

// BasicMetricsCollector provides simple in-memory metrics collection.
// Useful for debugging and basic monitoring without external dependencies.
type BasicMetricsCollector struct {
	ConvertCount     atomic.Int64
	ConvertErrors    atomic.Int64
	FilterCount      atomic.Int64
	FilterErrors     atomic.Int64
	FilterTotalNanos atomic.Int64
	MatchCount       atomic.Int64
	MatchErrors      atomic.Int64
	UniqueCount      atomic.Int64
	UniqueErrors     atomic.Int64
	UniqueClusters   atomic.Int64
	UniqueTotalNanos atomic.Int64
	FlattenCount     atomic.Int64
	FlattenRows      atomic.Int64
}

// RecordConvert implements MetricsCollector.
func (b *BasicMetricsCollector) RecordConvert(duration time.Duration, err error) {
	b.ConvertCount.Add(1)
	if err != nil {
		b.ConvertErrors.Add(1)
	}
}

// RecordFilter implements MetricsCollector.
func (b *BasicMetricsCollector) RecordFilter(duration time.Duration, err error) {
	b.FilterCount.Add(1)
	b.FilterTotalNanos.Add(duration.Nanoseconds())
	if err != nil {
		b.FilterErrors.Add(1)
	}
}

// RecordMatch implements MetricsCollector.
func (b *BasicMetricsCollector) RecordMatch(duration time.Duration, err error) {
	b.MatchCount.Add(1)
	if err != nil {
		b.MatchErrors.Add(1)
	}
}

// RecordUnique implements MetricsCollector.
func (b *BasicMetricsCollector) RecordUnique(clusters int, duration time.Duration, err error) {
	b.UniqueCount.Add(1)
	b.UniqueClusters.Add(int64(clusters))
	b.UniqueTotalNanos.Add(duration.Nanoseconds())
	if err != nil {
		b.UniqueErrors.Add(1)
	}
}

// RecordFlatten implements MetricsCollector.
func (b *BasicMetricsCollector) RecordFlatten(rows int, duration time.Duration) {
	b.FlattenCount.Add(1)
	b.FlattenRows.Add(int64(rows))
}

// GetStats returns a snapshot of current metrics.
func (b *BasicMetricsCollector) GetStats() BasicMetricsStats {
	return BasicMetricsStats{
		ConvertCount:   b.ConvertCount.Load(),
		ConvertErrors:  b.ConvertErrors.Load(),
		FilterCount:    b.FilterCount.Load(),
		FilterErrors:   b.FilterErrors.Load(),
		FilterAvgNanos: b.getAvgFilterNanos(),
		MatchCount:     b.MatchCount.Load(),
		MatchErrors:    b.MatchErrors.Load(),
		UniqueCount:    b.UniqueCount.Load(),
		UniqueErrors:   b.UniqueErrors.Load(),
		UniqueClusters: b.UniqueClusters.Load(),
		UniqueAvgNanos: b.getAvgUniqueNanos(),
		FlattenCount:   b.FlattenCount.Load(),
		FlattenRows:    b.FlattenRows.Load(),
	}
}

func (b *BasicMetricsCollector) getAvgFilterNanos() int64 {
	count := b.FilterCount.Load()
	if count == 0 {
		return 0
	}
	return b.FilterTotalNanos.Load() / count
}

func (b *BasicMetricsCollector) getAvgUniqueNanos() int64 {
	count := b.UniqueCount.Load()
	if count == 0 {
		return 0
	}
	return b.UniqueTotalNanos.Load() / count
}

// BasicMetricsStats is a snapshot of BasicMetricsCollector state.
type BasicMetricsStats struct {
	ConvertCount   int64
	ConvertErrors  int64
	FilterCount    int64
	FilterErrors   int64
	FilterAvgNanos int64
	MatchCount     int64
	MatchErrors    int64
	UniqueCount    int64
	UniqueErrors   int64
	UniqueClusters int64
	UniqueAvgNanos int64
	FlattenCount   int64
	FlattenRows    int64
}
