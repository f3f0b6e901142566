package middleware

import (
	"context"
	stderrors "errors"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"

	"github.com/vango-dev/pact/internal/errors"
	"github.com/vango-dev/pact/pkg/runtime"
)

// MetricsConfig configures the Prometheus metrics middleware.
type MetricsConfig struct {
	// Namespace is the metrics namespace (default: "pact").
	Namespace string

	// Subsystem is the metrics subsystem (default: "").
	Subsystem string

	// ConstLabels are constant labels added to all metrics.
	ConstLabels prometheus.Labels

	// Buckets are the histogram buckets for pass duration.
	// Default: prometheus.DefBuckets
	Buckets []float64

	// Registry is the Prometheus registry to use.
	// Default: prometheus.DefaultRegisterer
	Registry prometheus.Registerer
}

// MetricsOption configures the Prometheus metrics middleware.
type MetricsOption func(*MetricsConfig)

// WithNamespace sets the metrics namespace.
func WithNamespace(namespace string) MetricsOption {
	return func(c *MetricsConfig) {
		c.Namespace = namespace
	}
}

// WithSubsystem sets the metrics subsystem.
func WithSubsystem(subsystem string) MetricsOption {
	return func(c *MetricsConfig) {
		c.Subsystem = subsystem
	}
}

// WithConstLabels sets constant labels for all metrics.
func WithConstLabels(labels prometheus.Labels) MetricsOption {
	return func(c *MetricsConfig) {
		c.ConstLabels = labels
	}
}

// WithBuckets sets the histogram buckets.
func WithBuckets(buckets []float64) MetricsOption {
	return func(c *MetricsConfig) {
		c.Buckets = buckets
	}
}

// WithRegistry sets the Prometheus registry.
func WithRegistry(registry prometheus.Registerer) MetricsOption {
	return func(c *MetricsConfig) {
		c.Registry = registry
	}
}

func defaultMetricsConfig() MetricsConfig {
	return MetricsConfig{
		Namespace: "pact",
		Buckets:   []float64{.0001, .00025, .0005, .001, .0025, .005, .01, .025, .05, .1},
		Registry:  prometheus.DefaultRegisterer,
	}
}

// Metrics holds the pass metrics of one registry.
type Metrics struct {
	passesTotal  *prometheus.CounterVec
	passDuration prometheus.Histogram
	patchesTotal *prometheus.CounterVec
	effectsRun   prometheus.Counter
	passErrors   *prometheus.CounterVec
}

// NewMetrics registers the pass metrics with the configured registry.
// Registering twice on the same registry panics, as promauto does.
func NewMetrics(opts ...MetricsOption) *Metrics {
	config := defaultMetricsConfig()
	for _, opt := range opts {
		opt(&config)
	}

	factory := promauto.With(config.Registry)

	return &Metrics{
		passesTotal: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace:   config.Namespace,
			Subsystem:   config.Subsystem,
			Name:        "passes_total",
			Help:        "Total number of render passes",
			ConstLabels: config.ConstLabels,
		}, []string{"kind", "status"}),

		passDuration: factory.NewHistogram(prometheus.HistogramOpts{
			Namespace:   config.Namespace,
			Subsystem:   config.Subsystem,
			Name:        "pass_duration_seconds",
			Help:        "Render pass duration in seconds",
			ConstLabels: config.ConstLabels,
			Buckets:     config.Buckets,
		}),

		patchesTotal: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace:   config.Namespace,
			Subsystem:   config.Subsystem,
			Name:        "patches_total",
			Help:        "Total number of patches applied to the render target",
			ConstLabels: config.ConstLabels,
		}, []string{"op"}),

		effectsRun: factory.NewCounter(prometheus.CounterOpts{
			Namespace:   config.Namespace,
			Subsystem:   config.Subsystem,
			Name:        "effects_run_total",
			Help:        "Total number of effects run",
			ConstLabels: config.ConstLabels,
		}),

		passErrors: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace:   config.Namespace,
			Subsystem:   config.Subsystem,
			Name:        "pass_errors_total",
			Help:        "Total number of failed render passes",
			ConstLabels: config.ConstLabels,
		}, []string{"code"}),
	}
}

// Prometheus creates a metrics middleware with its own Metrics.
func Prometheus(opts ...MetricsOption) runtime.Middleware {
	return NewMetrics(opts...).Middleware()
}

// Middleware returns pass middleware that records into m.
func (m *Metrics) Middleware() runtime.Middleware {
	return func(next runtime.PassFunc) runtime.PassFunc {
		return func(ctx context.Context, info *runtime.PassInfo) error {
			err := next(ctx, info)
			m.Observe(info, err)
			return err
		}
	}
}

// Observe records a finished pass.
func (m *Metrics) Observe(info *runtime.PassInfo, err error) {
	status := "success"
	if err != nil {
		status = "error"
		m.passErrors.WithLabelValues(errorCode(err)).Inc()
	}
	m.passesTotal.WithLabelValues(passKind(info), status).Inc()
	m.passDuration.Observe(info.Duration.Seconds())

	for op, n := range info.Patches.Counts() {
		m.patchesTotal.WithLabelValues(op.String()).Add(float64(n))
	}
	m.effectsRun.Add(float64(info.Effects))
}

// passKind labels a pass as mount, update or nested.
func passKind(info *runtime.PassInfo) string {
	switch {
	case info.Mount():
		return "mount"
	case info.Nested():
		return "nested"
	default:
		return "update"
	}
}

// errorCode returns the error code of err, keeping label cardinality bounded.
func errorCode(err error) string {
	var pe *errors.PactError
	if stderrors.As(err, &pe) && pe.Code != "" {
		return pe.Code
	}
	return "internal"
}
