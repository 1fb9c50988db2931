package odataquery

import (
	"errors"

	"github.com/nlstn/go-odata-query/internal/lexer"
	"github.com/nlstn/go-odata-query/internal/parser"
)

// LexError reports the raw offset at which tokenization failed.
type LexError = lexer.LexError

// ParseError reports the first token the parser could not accept, with the
// expected and actual token kinds.
type ParseError = parser.ParseError

// Sentinel errors carried by LexError and ParseError.
// These can be used with errors.Is() for error handling.
var (
	// ErrUnexpectedCharacter indicates no token rule matched a character.
	ErrUnexpectedCharacter = lexer.ErrUnexpectedCharacter

	// ErrUnterminatedString indicates a quoted string with no closing quote.
	ErrUnterminatedString = lexer.ErrUnterminatedString

	// ErrUnexpectedToken indicates a token of the wrong kind.
	ErrUnexpectedToken = parser.ErrUnexpectedToken

	// ErrUnexpectedEnd indicates the input ended while more was required.
	ErrUnexpectedEnd = parser.ErrUnexpectedEnd

	// ErrUnknownOperator indicates a word in operator position that is not a
	// binary operator keyword.
	ErrUnknownOperator = parser.ErrUnknownOperator

	// ErrUnknownSymbol indicates a reserved $word outside the supported set.
	ErrUnknownSymbol = parser.ErrUnknownSymbol

	// ErrInvalidLiteral indicates a literal whose text cannot be converted,
	// such as an out-of-range integer or an impossible date.
	ErrInvalidLiteral = parser.ErrInvalidLiteral
)

var errorKinds = []struct {
	err  error
	kind string
}{
	{ErrUnexpectedCharacter, "unexpected_character"},
	{ErrUnterminatedString, "unterminated_string"},
	{ErrUnexpectedToken, "unexpected_token"},
	{ErrUnexpectedEnd, "unexpected_end"},
	{ErrUnknownOperator, "unknown_operator"},
	{ErrUnknownSymbol, "unknown_symbol"},
	{ErrInvalidLiteral, "invalid_literal"},
}

// ErrorKind classifies err by the sentinel it wraps, e.g. "unknown_operator".
// Errors that wrap none of the sentinels are classified as "internal".
func ErrorKind(err error) string {
	for _, k := range errorKinds {
		if errors.Is(err, k.err) {
			return k.kind
		}
	}
	return "internal"
}

// ErrorOffset returns the raw source offset carried by a LexError or
// ParseError anywhere in err's chain.
func ErrorOffset(err error) (int, bool) {
	var lexErr *LexError
	if errors.As(err, &lexErr) {
		return lexErr.Offset, true
	}

	var parseErr *ParseError
	if errors.As(err, &parseErr) {
		return parseErr.Offset, true
	}

	return 0, false
}
