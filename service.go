package odataquery

import (
	"context"
	"log/slog"
	"time"

	"go.opentelemetry.io/otel/metric"
	"go.opentelemetry.io/otel/trace"

	"github.com/nlstn/go-odata-query/internal/ast"
	"github.com/nlstn/go-odata-query/internal/cache"
	"github.com/nlstn/go-odata-query/internal/lexer"
	"github.com/nlstn/go-odata-query/internal/observability"
	"github.com/nlstn/go-odata-query/internal/parser"
)

// Parser is an instrumented front end to Lex and Parse. Each call is traced,
// measured and, on failure, logged at debug level with the offending offset.
// Parsed trees can optionally be cached by query text.
//
// A Parser is safe for concurrent use. Trees returned from the cache are
// shared between callers and must be treated as read-only, which every tree
// is by construction.
type Parser struct {
	logger        *slog.Logger
	observability *observability.Config
	cache         *cache.Cache[Node]
}

type parserConfig struct {
	logger    *slog.Logger
	obsOpts   []observability.Option
	cacheSize int
}

// Option configures a Parser.
type Option func(*parserConfig)

// WithLogger sets the logger. A nil logger selects slog.Default().
func WithLogger(logger *slog.Logger) Option {
	return func(c *parserConfig) {
		c.logger = logger
	}
}

// WithTracerProvider enables tracing through tp.
func WithTracerProvider(tp trace.TracerProvider) Option {
	return func(c *parserConfig) {
		c.obsOpts = append(c.obsOpts, observability.WithTracerProvider(tp))
	}
}

// WithMeterProvider enables metrics through mp.
func WithMeterProvider(mp metric.MeterProvider) Option {
	return func(c *parserConfig) {
		c.obsOpts = append(c.obsOpts, observability.WithMeterProvider(mp))
	}
}

// WithServiceName sets the service.name attribute of every span. It
// defaults to "odataquery".
func WithServiceName(name string) Option {
	return func(c *parserConfig) {
		c.obsOpts = append(c.obsOpts, observability.WithServiceName(name))
	}
}

// WithServiceVersion sets the service.version attribute of every span.
func WithServiceVersion(version string) Option {
	return func(c *parserConfig) {
		c.obsOpts = append(c.obsOpts, observability.WithServiceVersion(version))
	}
}

// WithCache keeps up to size parsed trees keyed by their query text. When the
// cache is full it is cleared. A size of zero or less disables caching.
func WithCache(size int) Option {
	return func(c *parserConfig) {
		c.cacheSize = size
	}
}

// NewParser creates a Parser with the given options.
func NewParser(opts ...Option) *Parser {
	cfg := &parserConfig{}
	for _, opt := range opts {
		opt(cfg)
	}

	p := &Parser{
		observability: observability.NewConfig(cfg.obsOpts...),
	}
	p.SetLogger(cfg.logger)

	if err := p.observability.Initialize(); err != nil {
		p.logger.Warn("Observability disabled", slog.String(observability.LogFieldError, err.Error()))
		p.observability = nil
	}

	if cfg.cacheSize > 0 {
		p.cache = cache.New[Node](cfg.cacheSize)
	}
	return p
}

// SetLogger replaces the logger. A nil logger selects slog.Default().
func (p *Parser) SetLogger(logger *slog.Logger) {
	if logger == nil {
		logger = slog.Default()
	}
	p.logger = logger
}

// Parse builds the syntax tree for source, as the package-level Parse does.
func (p *Parser) Parse(ctx context.Context, source string) (Node, error) {
	ctx, span := p.observability.Tracer().StartParse(ctx, source)
	defer span.End()

	start := time.Now()
	compute := func(source string) (Node, error) {
		return p.parse(ctx, source)
	}

	var (
		node Node
		hit  bool
		err  error
	)
	if p.cache != nil {
		node, hit, err = p.cache.GetOrCompute(source, compute)
	} else {
		node, err = compute(source)
	}
	duration := time.Since(start)

	if err != nil {
		p.fail(ctx, span, observability.OpParse, err, duration)
		return nil, err
	}

	span.SetAttributes(
		observability.CacheHitAttr(hit),
		observability.RootNodeAttr(ast.Name(node)),
	)
	p.observability.Metrics().RecordParse(ctx, observability.OpParse, hit, duration)

	observability.LoggerWithTrace(ctx, p.logger).Debug("Parsed query",
		slog.String(observability.LogFieldOperation, observability.OpParse),
		slog.Bool("cache_hit", hit),
		slog.Float64(observability.LogFieldDuration, float64(duration.Microseconds())/1000),
	)
	return node, nil
}

func (p *Parser) parse(ctx context.Context, source string) (Node, error) {
	tokens, err := lexer.Lex(source)
	if err != nil {
		return nil, err
	}
	p.observability.Metrics().RecordTokens(ctx, observability.OpParse, len(tokens))

	return parser.New(source, tokens).Parse()
}

// Lex tokenizes source, as the package-level Lex does.
func (p *Parser) Lex(ctx context.Context, source string) ([]TokenSpan, error) {
	ctx, span := p.observability.Tracer().StartLex(ctx, source)
	defer span.End()

	start := time.Now()
	tokens, err := lexer.Lex(source)
	duration := time.Since(start)

	if err != nil {
		p.fail(ctx, span, observability.OpLex, err, duration)
		return nil, err
	}

	span.SetAttributes(observability.TokenCountAttr(len(tokens)))
	metrics := p.observability.Metrics()
	metrics.RecordTokens(ctx, observability.OpLex, len(tokens))
	metrics.RecordParse(ctx, observability.OpLex, false, duration)
	return tokens, nil
}

// fail records a rejected query on the span, in metrics and in the log.
func (p *Parser) fail(ctx context.Context, span trace.Span, operation string, err error, duration time.Duration) {
	kind := ErrorKind(err)
	offset, _ := ErrorOffset(err)

	p.observability.Tracer().RecordError(span, err,
		observability.ErrorKindAttr(kind),
		observability.ErrorOffsetAttr(offset),
	)

	metrics := p.observability.Metrics()
	metrics.RecordError(ctx, operation, kind)
	metrics.RecordParse(ctx, operation, false, duration)

	observability.LoggerWithTrace(ctx, p.logger).Debug("Rejected query",
		slog.String(observability.LogFieldOperation, operation),
		slog.Int(observability.LogFieldOffset, offset),
		slog.String(observability.LogFieldError, err.Error()),
	)
}
