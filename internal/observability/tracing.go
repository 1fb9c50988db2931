package observability

import (
	"context"
	"log/slog"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
)

// Tracer wraps an OpenTelemetry tracer with lex and parse span creation.
// Every span carries the service identity it was created with.
type Tracer struct {
	tracer  trace.Tracer
	service []attribute.KeyValue
}

// NewTracer creates a new Tracer using the given TracerProvider. Empty
// service name or version values are omitted from spans.
func NewTracer(tp trace.TracerProvider, serviceName, serviceVersion string) *Tracer {
	t := &Tracer{tracer: tp.Tracer(TracerName)}
	if serviceName != "" {
		t.service = append(t.service, ServiceNameAttr(serviceName))
	}
	if serviceVersion != "" {
		t.service = append(t.service, ServiceVersionAttr(serviceVersion))
	}
	return t
}

// StartParse starts a span for parsing one query.
func (t *Tracer) StartParse(ctx context.Context, source string) (context.Context, trace.Span) {
	return t.start(ctx, "odataquery.parse", OperationAttr(OpParse), SourceLengthAttr(len(source)))
}

// StartLex starts a span for tokenizing one query.
func (t *Tracer) StartLex(ctx context.Context, source string) (context.Context, trace.Span) {
	return t.start(ctx, "odataquery.lex", OperationAttr(OpLex), SourceLengthAttr(len(source)))
}

func (t *Tracer) start(ctx context.Context, name string, attrs ...attribute.KeyValue) (context.Context, trace.Span) {
	attrs = append(attrs, t.service...)
	return t.tracer.Start(ctx, name, trace.WithAttributes(attrs...))
}

// RecordError records an error on the span.
func (t *Tracer) RecordError(span trace.Span, err error, attrs ...attribute.KeyValue) {
	if err != nil {
		span.RecordError(err, trace.WithAttributes(attrs...))
		span.SetStatus(codes.Error, err.Error())
	}
}

// LoggerWithTrace returns a logger enriched with trace context.
func LoggerWithTrace(ctx context.Context, logger *slog.Logger) *slog.Logger {
	span := trace.SpanFromContext(ctx)
	if !span.SpanContext().IsValid() {
		return logger
	}
	return logger.With(
		slog.String(LogFieldTraceID, span.SpanContext().TraceID().String()),
		slog.String(LogFieldSpanID, span.SpanContext().SpanID().String()),
	)
}
