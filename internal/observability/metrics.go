package observability

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.opentelemetry.io/otel/metric"
)

// Metrics holds the lexing and parsing metric instruments.
type Metrics struct {
	parseDuration metric.Float64Histogram
	parseCount    metric.Int64Counter
	tokenCount    metric.Int64Histogram
	errorCount    metric.Int64Counter
}

// NewMetrics creates the instruments on a meter from mp. It fails if any
// instrument cannot be created.
func NewMetrics(mp metric.MeterProvider) (*Metrics, error) {
	meter := mp.Meter(MeterName)
	m := &Metrics{}

	var errs []error
	collect := func(err error) {
		if err != nil {
			errs = append(errs, err)
		}
	}

	var err error
	m.parseDuration, err = meter.Float64Histogram(
		"odataquery.parse.duration",
		metric.WithDescription("Duration of lex and parse operations in milliseconds"),
		metric.WithUnit("ms"),
	)
	collect(err)

	m.parseCount, err = meter.Int64Counter(
		"odataquery.parse.count",
		metric.WithDescription("Total number of lex and parse operations"),
		metric.WithUnit("{query}"),
	)
	collect(err)

	m.tokenCount, err = meter.Int64Histogram(
		"odataquery.token.count",
		metric.WithDescription("Number of tokens produced per query"),
		metric.WithUnit("{token}"),
	)
	collect(err)

	m.errorCount, err = meter.Int64Counter(
		"odataquery.error.count",
		metric.WithDescription("Total number of lex and parse errors"),
		metric.WithUnit("{error}"),
	)
	collect(err)

	if len(errs) > 0 {
		return nil, fmt.Errorf("failed to create metric instruments: %w", errors.Join(errs...))
	}
	return m, nil
}

// RecordParse records a completed lex or parse operation.
func (m *Metrics) RecordParse(ctx context.Context, operation string, cacheHit bool, duration time.Duration) {
	attrs := metric.WithAttributes(
		OperationAttr(operation),
		CacheHitAttr(cacheHit),
	)
	m.parseDuration.Record(ctx, float64(duration.Microseconds())/1000, attrs)
	m.parseCount.Add(ctx, 1, attrs)
}

// RecordTokens records the number of tokens lexed from one query.
func (m *Metrics) RecordTokens(ctx context.Context, operation string, count int) {
	m.tokenCount.Record(ctx, int64(count), metric.WithAttributes(OperationAttr(operation)))
}

// RecordError records an error occurrence.
func (m *Metrics) RecordError(ctx context.Context, operation, errorKind string) {
	attrs := metric.WithAttributes(
		OperationAttr(operation),
		ErrorKindAttr(errorKind),
	)
	m.errorCount.Add(ctx, 1, attrs)
}
