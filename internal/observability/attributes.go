// Package observability provides OpenTelemetry-based instrumentation for query
// lexing and parsing.
//
// It supports tracing, metrics collection, and structured logging enriched
// with trace context.
//
// All observability features are opt-in. When not configured, no-op
// implementations are used.
package observability

import "go.opentelemetry.io/otel/attribute"

// Instrumentation identity constants
const (
	// TracerName is the instrumentation name for tracing.
	TracerName = "github.com/nlstn/go-odata-query"
	// MeterName is the instrumentation name for metrics.
	MeterName = "github.com/nlstn/go-odata-query"
)

// Attribute keys attached to spans and metrics.
const (
	AttrOperation    = "odataquery.operation"
	AttrSourceLength = "odataquery.source.length"
	AttrTokenCount   = "odataquery.token.count"
	AttrCacheHit     = "odataquery.cache.hit"
	AttrRootNode     = "odataquery.root.node"

	AttrErrorKind   = "odataquery.error.kind"
	AttrErrorOffset = "odataquery.error.offset"

	AttrServiceName    = "service.name"
	AttrServiceVersion = "service.version"
)

// Operation types for the odataquery.operation attribute.
const (
	OpLex   = "lex"
	OpParse = "parse"
)

// Log field keys for structured logging with trace context.
const (
	LogFieldTraceID   = "trace_id"
	LogFieldSpanID    = "span_id"
	LogFieldOperation = "operation"
	LogFieldOffset    = "offset"
	LogFieldDuration  = "duration_ms"
	LogFieldError     = "error"
)

// OperationAttr creates an attribute for the operation type.
func OperationAttr(op string) attribute.KeyValue {
	return attribute.String(AttrOperation, op)
}

// SourceLengthAttr creates an attribute for the raw length of the input.
func SourceLengthAttr(n int) attribute.KeyValue {
	return attribute.Int(AttrSourceLength, n)
}

// TokenCountAttr creates an attribute for the number of lexed tokens.
func TokenCountAttr(n int) attribute.KeyValue {
	return attribute.Int(AttrTokenCount, n)
}

// CacheHitAttr creates an attribute recording whether a cached tree was used.
func CacheHitAttr(hit bool) attribute.KeyValue {
	return attribute.Bool(AttrCacheHit, hit)
}

// RootNodeAttr creates an attribute naming the type of the root node.
func RootNodeAttr(kind string) attribute.KeyValue {
	return attribute.String(AttrRootNode, kind)
}

// ErrorKindAttr creates an attribute classifying an error.
func ErrorKindAttr(kind string) attribute.KeyValue {
	return attribute.String(AttrErrorKind, kind)
}

// ErrorOffsetAttr creates an attribute for the raw offset of a rejected token.
func ErrorOffsetAttr(offset int) attribute.KeyValue {
	return attribute.Int(AttrErrorOffset, offset)
}

// ServiceNameAttr creates an attribute naming the embedding service.
func ServiceNameAttr(name string) attribute.KeyValue {
	return attribute.String(AttrServiceName, name)
}

// ServiceVersionAttr creates an attribute for the embedding service version.
func ServiceVersionAttr(version string) attribute.KeyValue {
	return attribute.String(AttrServiceVersion, version)
}
