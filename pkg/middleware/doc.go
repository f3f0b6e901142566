// Package middleware provides pass middleware for pact roots.
//
// This package includes:
//   - OpenTelemetry tracing of render passes
//   - Prometheus metrics for passes, patches and effects
//
// # OpenTelemetry Middleware
//
// Tracing starts one span per pass. Nested passes (a state write during
// render or inside an effect) become child spans of the pass that caused
// them. Spans carry the pass number, depth, patch counts per operation and
// the number of effects run.
//
//	root, err := runtime.RenderRoot(doc, container, App,
//	    runtime.WithMiddleware(
//	        middleware.Tracing(middleware.WithTracerName("my-app")),
//	    ),
//	)
//
// The tracer comes from the global OpenTelemetry provider unless
// WithTracerProvider is given. Configure it before mounting:
//
//	otel.SetTracerProvider(tp)
//
// # Prometheus Metrics
//
// Metrics collects:
//   - pact_passes_total: passes by kind (mount, update, nested) and status
//   - pact_pass_duration_seconds: pass duration histogram
//   - pact_patches_total: applied patches by operation
//   - pact_effects_run_total: effects run
//   - pact_pass_errors_total: failed passes by error code
//
//	reg := prometheus.NewRegistry()
//	m := middleware.NewMetrics(middleware.WithRegistry(reg))
//	root, err := runtime.RenderRoot(doc, container, App,
//	    runtime.WithMiddleware(m.Middleware()),
//	)
//
//	http.Handle("/metrics", promhttp.HandlerFor(reg, promhttp.HandlerOpts{}))
package middleware
