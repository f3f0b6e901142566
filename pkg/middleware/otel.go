package middleware

import (
	"context"
	"fmt"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"

	"github.com/vango-dev/pact/pkg/runtime"
)

// Default tracer name for pact roots.
const defaultTracerName = "pact"

// TracingConfig configures the OpenTelemetry middleware.
type TracingConfig struct {
	// TracerName is the name of the tracer (default: "pact").
	TracerName string

	// Provider supplies the tracer. Nil means the global provider.
	Provider trace.TracerProvider

	// AttributeExtractor adds custom attributes to every pass span.
	AttributeExtractor func(info *runtime.PassInfo) []attribute.KeyValue

	tracer trace.Tracer
}

// TracingOption configures the OpenTelemetry middleware.
type TracingOption func(*TracingConfig)

// WithTracerName sets the tracer name.
func WithTracerName(name string) TracingOption {
	return func(c *TracingConfig) {
		c.TracerName = name
	}
}

// WithTracerProvider sets the tracer provider.
func WithTracerProvider(tp trace.TracerProvider) TracingOption {
	return func(c *TracingConfig) {
		c.Provider = tp
	}
}

// WithAttributeExtractor sets a custom attribute extractor.
func WithAttributeExtractor(extractor func(info *runtime.PassInfo) []attribute.KeyValue) TracingOption {
	return func(c *TracingConfig) {
		c.AttributeExtractor = extractor
	}
}

// Tracing creates middleware that starts a span for every pass.
func Tracing(opts ...TracingOption) runtime.Middleware {
	config := TracingConfig{TracerName: defaultTracerName}
	for _, opt := range opts {
		opt(&config)
	}

	if config.Provider == nil {
		config.Provider = otel.GetTracerProvider()
	}
	config.tracer = config.Provider.Tracer(config.TracerName)

	return func(next runtime.PassFunc) runtime.PassFunc {
		return func(ctx context.Context, info *runtime.PassInfo) error {
			attrs := []attribute.KeyValue{
				attribute.Int("pact.pass", info.Number),
				attribute.Int("pact.depth", info.Depth),
			}
			if config.AttributeExtractor != nil {
				attrs = append(attrs, config.AttributeExtractor(info)...)
			}

			spanCtx, span := config.tracer.Start(ctx, spanName(info),
				trace.WithSpanKind(trace.SpanKindInternal),
				trace.WithAttributes(attrs...),
			)
			defer span.End()

			err := next(spanCtx, info)

			if err != nil {
				span.RecordError(err)
				span.SetStatus(codes.Error, err.Error())
			} else {
				span.SetStatus(codes.Ok, "")
			}

			result := []attribute.KeyValue{
				attribute.Int("pact.patch_count", len(info.Patches)),
				attribute.Int("pact.effects", info.Effects),
			}
			for op, n := range info.Patches.Counts() {
				result = append(result, attribute.Int("pact.patches."+op.String(), n))
			}
			span.SetAttributes(result...)

			return err
		}
	}
}

func spanName(info *runtime.PassInfo) string {
	return fmt.Sprintf("pact.%s", passKind(info))
}
