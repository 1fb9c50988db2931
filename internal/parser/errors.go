package parser

import (
	"errors"
	"fmt"
	"strings"

	"github.com/nlstn/go-odata-query/internal/lexer"
)

// Parser errors
var (
	ErrUnexpectedToken = errors.New("unexpected token")
	ErrUnexpectedEnd   = errors.New("unexpected end of input")
	ErrUnknownOperator = errors.New("unknown operator")
	ErrUnknownSymbol   = errors.New("unknown reserved word")
	ErrInvalidLiteral  = errors.New("invalid literal")
)

// ParseError reports the first token the parser could not accept.
type ParseError struct {
	// Offset is the raw source offset of the offending token.
	Offset int
	// Expected lists the token kinds that would have been accepted, if known.
	Expected []lexer.Kind
	Actual   lexer.Kind
	// Name is the decoded text of an unknown operator, unknown reserved word
	// or invalid literal.
	Name  string
	Err   error
	Cause error
}

func (e *ParseError) Error() string {
	var b strings.Builder

	if e.Name != "" {
		fmt.Fprintf(&b, "%v '%s' at position %d", e.Err, e.Name, e.Offset)
	} else {
		fmt.Fprintf(&b, "%v: expected %s, got %v at position %d", e.Err, joinKinds(e.Expected), e.Actual, e.Offset)
	}

	if e.Cause != nil {
		fmt.Fprintf(&b, ": %v", e.Cause)
	}
	return b.String()
}

func (e *ParseError) Unwrap() error {
	return e.Err
}

func joinKinds(kinds []lexer.Kind) string {
	if len(kinds) == 0 {
		return "nothing"
	}
	names := make([]string, len(kinds))
	for i, k := range kinds {
		names[i] = k.String()
	}
	return strings.Join(names, " or ")
}
