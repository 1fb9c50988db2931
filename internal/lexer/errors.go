package lexer

import (
	"errors"
	"fmt"
)

var (
	// ErrUnexpectedCharacter is reported when no tokenization rule matches.
	ErrUnexpectedCharacter = errors.New("unexpected character")
	// ErrUnterminatedString is reported when a quoted string has no closing quote.
	ErrUnterminatedString = errors.New("unterminated string literal")
)

// LexError reports the raw offset at which tokenization failed.
type LexError struct {
	// Offset is the raw (undecoded) offset of the offending character.
	Offset int
	// Char is the decoded character found at Offset.
	Char byte
	// Err is one of the package sentinel errors.
	Err error
}

func (e *LexError) Error() string {
	if errors.Is(e.Err, ErrUnterminatedString) {
		return fmt.Sprintf("%v starting at position %d", e.Err, e.Offset)
	}
	return fmt.Sprintf("%v '%c' at position %d", e.Err, e.Char, e.Offset)
}

func (e *LexError) Unwrap() error {
	return e.Err
}
