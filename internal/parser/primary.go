package parser

import (
	"strings"

	"github.com/nlstn/go-odata-query/internal/ast"
	"github.com/nlstn/go-odata-query/internal/edm"
	"github.com/nlstn/go-odata-query/internal/lexer"
)

// primaryKinds are the token kinds a primary production can start with.
var primaryKinds = []lexer.Kind{
	lexer.Open,
	lexer.Hyphen,
	lexer.String,
	lexer.Guid,
	lexer.Date,
	lexer.Decimal,
	lexer.Number,
	lexer.Word,
	lexer.ReservedWord,
}

var booleanLiterals = map[string]bool{
	"true":  true,
	"false": false,
}

func (p *Parser) parsePrimary() (ast.Node, error) {
	tok := p.current()

	switch tok.Kind {
	case lexer.Open:
		return p.parseGroup()

	case lexer.Hyphen:
		p.advance()
		return p.parseUnary(ast.Negate)

	case lexer.String:
		p.advance()
		return literal(p, tok, edm.Unquote)

	case lexer.Guid:
		p.advance()
		return literal(p, tok, edm.ParseGuid)

	case lexer.Date:
		p.advance()
		return literal(p, tok, edm.ParseDateTimeOffset)

	case lexer.Decimal:
		p.advance()
		return literal(p, tok, edm.ParseDecimal)

	case lexer.Number:
		p.advance()
		return literal(p, tok, edm.ParseInt32)

	case lexer.Word:
		if p.atNot() {
			p.advance()
			p.skipSpaces()
			return p.parseUnary(ast.Not)
		}
		if v, ok := booleanLiterals[p.text(tok)]; ok {
			p.advance()
			return &ast.ValueNode[bool]{Value: v}, nil
		}
		return p.parseAccessor(nil)

	case lexer.ReservedWord:
		p.advance()
		symbol, ok := ast.LookupSymbol(p.text(tok))
		if !ok {
			return nil, p.named(tok, ErrUnknownSymbol, nil)
		}
		return &ast.SymbolNode{Symbol: symbol}, nil

	default:
		return nil, p.unexpected(primaryKinds...)
	}
}

// atNot reports whether the current word is the not operator rather than a
// property that happens to be called "not".
func (p *Parser) atNot() bool {
	if !p.current().Is(p.source, "not") {
		return false
	}
	switch p.next().Kind {
	case lexer.Space, lexer.Open:
		return true
	default:
		return false
	}
}

func (p *Parser) parseUnary(op ast.Operator) (ast.Node, error) {
	operand, err := p.within(rankOf(op))
	if err != nil {
		return nil, err
	}
	return &ast.UnaryNode{Operator: op, Operand: operand}, nil
}

// parseGroup parses a parenthesized node, which reopens full precedence.
func (p *Parser) parseGroup() (ast.Node, error) {
	return p.parseParenthesized(false)
}

// parseParenthesized consumes '(' node ')'. The node may be absent only when
// allowEmpty is set, in which case nil is returned for "()".
func (p *Parser) parseParenthesized(allowEmpty bool) (ast.Node, error) {
	if err := p.expect(lexer.Open); err != nil {
		return nil, err
	}
	p.skipSpaces()

	var node ast.Node
	if !allowEmpty || p.kind() != lexer.Close {
		var err error
		if node, err = p.within(rankFull); err != nil {
			return nil, err
		}
		p.skipSpaces()
	}

	if err := p.expect(lexer.Close); err != nil {
		return nil, err
	}
	return node, nil
}

// parseAccessor reads a name from contiguous Word and Number tokens.
func (p *Parser) parseAccessor(parent ast.Node) (ast.Node, error) {
	if p.kind() != lexer.Word {
		return nil, p.unexpected(lexer.Word)
	}

	var name strings.Builder
	for p.kind() == lexer.Word || p.kind() == lexer.Number {
		name.WriteString(p.text(p.advance()))
	}
	return &ast.AccessorNode{Parent: parent, Name: name.String()}, nil
}

// literal converts the text of tok into a value node.
func literal[T edm.Primitive](p *Parser, tok lexer.Span, convert func(string) (T, error)) (ast.Node, error) {
	v, err := convert(p.text(tok))
	if err != nil {
		return nil, p.named(tok, ErrInvalidLiteral, err)
	}
	return &ast.ValueNode[T]{Value: v}, nil
}
