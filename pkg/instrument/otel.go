package instrument

import (
	"context"
	"fmt"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"

	"github.com/pulsekit/pulse/pkg/pulse"
)

// Default tracer name for pulse instrumentation.
const defaultTracerName = "pulse"

// TraceConfig configures the tracing wrapper.
type TraceConfig struct {
	// TracerName is the name of the tracer (default: "pulse").
	TracerName string

	// Attributes are added to every delivery span.
	Attributes []attribute.KeyValue

	// tracer is the resolved tracer instance.
	tracer trace.Tracer
}

// TraceOption configures the tracing wrapper.
type TraceOption func(*TraceConfig)

// WithTracerName sets the tracer name.
func WithTracerName(name string) TraceOption {
	return func(c *TraceConfig) {
		c.TracerName = name
	}
}

// WithAttributes adds attributes to every delivery span.
func WithAttributes(attrs ...attribute.KeyValue) TraceOption {
	return func(c *TraceConfig) {
		c.Attributes = append(c.Attributes, attrs...)
	}
}

// TracedChannel wraps a pulse.Channel so that every delivery runs inside an
// OpenTelemetry span.
type TracedChannel struct {
	name string
	ch   *pulse.Channel
	cfg  TraceConfig
}

// Traced wraps ch so that every Notify runs inside a span named
// "pulse.notify". The tracer comes from the global tracer provider;
// configure it with otel.SetTracerProvider before wrapping.
func Traced(name string, ch *pulse.Channel, opts ...TraceOption) *TracedChannel {
	cfg := TraceConfig{TracerName: defaultTracerName}
	for _, opt := range opts {
		opt(&cfg)
	}
	cfg.tracer = otel.Tracer(cfg.TracerName)

	return &TracedChannel{name: name, ch: ch, cfg: cfg}
}

// Observe forwards to the wrapped channel.
func (t *TracedChannel) Observe(fn func()) *pulse.Subscription {
	return t.ch.Observe(fn)
}

// Len forwards to the wrapped channel.
func (t *TracedChannel) Len() int {
	return t.ch.Len()
}

// Unwrap returns the underlying channel.
func (t *TracedChannel) Unwrap() *pulse.Channel {
	return t.ch
}

// Notify runs the delivery inside a span. A panicking callback is recorded
// on the span, the span is ended, and the panic propagates to the caller,
// matching the core's abort-on-panic delivery policy.
func (t *TracedChannel) Notify(ctx context.Context) {
	attrs := append([]attribute.KeyValue{
		attribute.String("pulse.channel", t.name),
		attribute.Int("pulse.subscribers", t.ch.Len()),
	}, t.cfg.Attributes...)

	_, span := t.cfg.tracer.Start(ctx, "pulse.notify",
		trace.WithSpanKind(trace.SpanKindInternal),
		trace.WithAttributes(attrs...),
	)

	defer func() {
		if r := recover(); r != nil {
			span.RecordError(fmt.Errorf("callback panic: %v", r))
			span.SetStatus(codes.Error, "callback panic")
			span.End()
			panic(r)
		}
		span.SetStatus(codes.Ok, "")
		span.End()
	}()

	t.ch.Notify()
}
