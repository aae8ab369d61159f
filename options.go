package difvec

import (
	"log/slog"
)

type options struct {
	metricsCollector MetricsCollector
	logger           *Logger
	concurrency      int
	calibration      Calibration
}

// Option configures VectorMap constructor behavior.
//
// Options exist to avoid exploding the API surface with constructor
// variants; the zero configuration (no logging, no metrics, default
// concurrency, empty calibration) is always valid.
type Option func(*options)

// WithMetricsCollector configures a metrics collector for monitoring operations.
// Pass nil to disable metrics collection.
//
// Example with BasicMetricsCollector:
//
//	metrics := &difvec.BasicMetricsCollector{}
//	vm, _ := difvec.New(g, difvec.WithMetricsCollector(metrics))
//	// ... use vm ...
//	stats := metrics.GetStats()
//	fmt.Printf("Filters: %d, Avg latency: %dns\n", stats.FilterCount, stats.FilterAvgNanos)
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
//	logger := difvec.NewJSONLogger(slog.LevelInfo)
//	vm, _ := difvec.New(g, difvec.WithLogger(logger))
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

// WithConcurrency bounds the number of scan positions processed in parallel
// by grid-dispatched operations. Values below 1 select GOMAXPROCS.
func WithConcurrency(n int) Option {
	return func(o *options) {
		o.concurrency = n
	}
}

// WithCalibration sets the calibration metadata carried by the VectorMap and
// stamped onto every derived output.
func WithCalibration(cal Calibration) Option {
	return func(o *options) {
		o.calibration = cal
	}
}

func applyOptions(optFns []Option) options {
	o := options{
		metricsCollector: NoopMetricsCollector{},
		logger:           NoopLogger(),
	}
	for _, fn := range optFns {
		if fn != nil {
			fn(&o)
		}
	}
	return o
}
