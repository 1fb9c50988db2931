// Package odataquery lexes and parses OData-style resource paths, query
// options and filter expressions into an immutable syntax tree.
//
// The package-level Lex and Parse functions are pure and safe for concurrent
// use. Parser wraps them with logging, tracing, metrics and an optional cache
// of parsed trees.
//
// Example:
//
//	node, err := odataquery.Parse("Animals?$filter=Name/Length() eq 10")
//	if err != nil {
//	    var perr *odataquery.ParseError
//	    if errors.As(err, &perr) {
//	        log.Printf("bad query at offset %d", perr.Offset)
//	    }
//	    return err
//	}
//	fmt.Println(odataquery.Format(node))
package odataquery

import (
	"github.com/nlstn/go-odata-query/internal/ast"
	"github.com/nlstn/go-odata-query/internal/edm"
	"github.com/nlstn/go-odata-query/internal/lexer"
	"github.com/nlstn/go-odata-query/internal/parser"
)

// Token model.
type (
	// TokenSpan is a token kind plus the half-open raw byte range it covers in
	// the undecoded source.
	TokenSpan = lexer.Span
	TokenKind = lexer.Kind
)

// Token kinds.
const (
	TokenStart        = lexer.Start
	TokenEnd          = lexer.End
	TokenSpace        = lexer.Space
	TokenNumber       = lexer.Number
	TokenWord         = lexer.Word
	TokenReservedWord = lexer.ReservedWord
	TokenString       = lexer.String
	TokenOpen         = lexer.Open
	TokenClose        = lexer.Close
	TokenSlash        = lexer.Slash
	TokenHyphen       = lexer.Hyphen
	TokenColon        = lexer.Colon
	TokenComma        = lexer.Comma
	TokenQuestionMark = lexer.QuestionMark
	TokenHash         = lexer.Hash
	TokenDot          = lexer.Dot
	TokenEquals       = lexer.Equals
	TokenAmpersand    = lexer.Ampersand
	TokenGuid         = lexer.Guid
	TokenDate         = lexer.Date
	TokenDecimal      = lexer.Decimal
)

// Syntax tree.
type (
	Node = ast.Node

	// Primitive is the set of literal value types.
	Primitive = edm.Primitive

	ValueNode[T edm.Primitive] = ast.ValueNode[T]

	AccessorNode   = ast.AccessorNode
	CallNode       = ast.CallNode
	UnaryNode      = ast.UnaryNode
	BinaryNode     = ast.BinaryNode
	AssignmentNode = ast.AssignmentNode
	SymbolNode     = ast.SymbolNode
	ListNode       = ast.ListNode
	OptionsNode    = ast.OptionsNode

	Operator = ast.Operator
	Symbol   = ast.Symbol
)

// Operators.
const (
	Not         = ast.Not
	Negate      = ast.Negate
	Equals      = ast.Equals
	NotEquals   = ast.NotEquals
	GreaterThan = ast.GreaterThan
	LessThan    = ast.LessThan
	And         = ast.And
	Or          = ast.Or
	Add         = ast.Add
	Subtract    = ast.Subtract
	Multiply    = ast.Multiply
	Divide      = ast.Divide
	Modulo      = ast.Modulo
)

// Reserved query option symbols.
const (
	Filter  = ast.Filter
	Select  = ast.Select
	Top     = ast.Top
	Skip    = ast.Skip
	OrderBy = ast.OrderBy
	Count   = ast.Count
)

// Lex tokenizes source. The result starts with a zero-width TokenStart span
// and ends with a zero-width TokenEnd span. A *LexError is returned when no
// token rule matches.
func Lex(source string) ([]TokenSpan, error) {
	return lexer.Lex(source)
}

// Parse builds the syntax tree for source. Input consisting only of spaces
// yields a nil Node and no error. Failures are a *LexError or *ParseError.
func Parse(source string) (Node, error) {
	return parser.Parse(source)
}

// Walk visits n and its descendants in pre-order, skipping the children of
// any node for which fn returns false.
func Walk(n Node, fn func(Node) bool) {
	ast.Walk(n, fn)
}

// Format renders a tree as a compact S-expression.
func Format(n Node) string {
	return ast.Format(n)
}

// Dump converts a tree into nested maps suitable for JSON or YAML encoding.
func Dump(n Node) interface{} {
	return ast.Dump(n)
}

// Items flattens a list chain into a slice.
func Items(n Node) []Node {
	return ast.Items(n)
}

// Path returns the accessor names from the root of an accessor chain to n.
func Path(n *AccessorNode) []string {
	return ast.Path(n)
}
