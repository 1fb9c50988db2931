// Package parser turns a token span stream into an ast.Node tree.
//
// There is a single recursive production, parseNode, which reads one primary
// and then applies postfix extensions (navigation, assignment, call, list,
// options, binary operator) until none matches. Binary operators are gated by
// a stack of precedence restrictions; everything else binds unconditionally.
package parser

import (
	"github.com/nlstn/go-odata-query/internal/ast"
	"github.com/nlstn/go-odata-query/internal/lexer"
)

// Parser holds the state of one parse. It is not safe for concurrent use and
// is not reusable.
type Parser struct {
	source string
	tokens []lexer.Span
	pos    int
	greed  []rank
}

// New creates a parser over tokens previously lexed from source.
func New(source string, tokens []lexer.Span) *Parser {
	return &Parser{
		source: source,
		tokens: tokens,
	}
}

// Parse lexes and parses source. Input consisting only of spaces yields a nil
// node and no error.
func Parse(source string) (ast.Node, error) {
	tokens, err := lexer.Lex(source)
	if err != nil {
		return nil, err
	}
	return New(source, tokens).Parse()
}

// Parse parses the whole token stream, which must be bounded by Start and End.
func (p *Parser) Parse() (ast.Node, error) {
	if err := p.expect(lexer.Start); err != nil {
		return nil, err
	}
	p.skipSpaces()

	var node ast.Node
	var err error

	switch p.kind() {
	case lexer.End:
		return nil, nil
	case lexer.QuestionMark:
		node, err = p.parseOptions(nil)
	default:
		node, err = p.parseNode()
	}
	if err != nil {
		return nil, err
	}

	p.skipSpaces()
	if err := p.expect(lexer.End); err != nil {
		return nil, err
	}
	return node, nil
}

// current returns the current token. Past the end of the stream it returns a
// zero-width End at the final offset.
func (p *Parser) current() lexer.Span {
	return p.at(p.pos)
}

// next returns the token after the current one.
func (p *Parser) next() lexer.Span {
	return p.at(p.pos + 1)
}

func (p *Parser) at(i int) lexer.Span {
	if i < len(p.tokens) {
		return p.tokens[i]
	}
	end := len(p.source)
	if n := len(p.tokens); n > 0 {
		end = p.tokens[n-1].Right
	}
	return lexer.Of(lexer.End, end, end)
}

func (p *Parser) kind() lexer.Kind {
	return p.current().Kind
}

// advance consumes the current token and returns it.
func (p *Parser) advance() lexer.Span {
	tok := p.current()
	if p.pos < len(p.tokens) {
		p.pos++
	}
	return tok
}

// expect consumes the current token if it has the given kind.
func (p *Parser) expect(kind lexer.Kind) error {
	if p.kind() != kind {
		return p.unexpected(kind)
	}
	p.advance()
	return nil
}

func (p *Parser) skipSpaces() {
	for p.kind() == lexer.Space {
		p.advance()
	}
}

func (p *Parser) text(tok lexer.Span) string {
	return tok.Text(p.source)
}

// unexpected builds an error for the current token.
func (p *Parser) unexpected(expected ...lexer.Kind) *ParseError {
	tok := p.current()
	err := ErrUnexpectedToken
	if tok.Kind == lexer.End {
		err = ErrUnexpectedEnd
	}
	return &ParseError{
		Offset:   tok.Left,
		Expected: expected,
		Actual:   tok.Kind,
		Err:      err,
	}
}

// named builds an error for a token whose text was rejected.
func (p *Parser) named(tok lexer.Span, err, cause error) *ParseError {
	return &ParseError{
		Offset: tok.Left,
		Actual: tok.Kind,
		Name:   p.text(tok),
		Err:    err,
		Cause:  cause,
	}
}

// parseNode reads one primary and applies postfix extensions until none
// matches.
func (p *Parser) parseNode() (ast.Node, error) {
	node, err := p.parsePrimary()
	if err != nil {
		return nil, err
	}

	for {
		extended, ok, err := p.extend(node)
		if err != nil {
			return nil, err
		}
		if !ok {
			return node, nil
		}
		node = extended
	}
}
