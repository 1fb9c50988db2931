package odataquery

import (
	"errors"
	"fmt"
	"testing"
)

func TestErrorsMatchSentinels(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected error
		kind     string
		offset   int
	}{
		{"UnexpectedCharacter", "Name eq ^", ErrUnexpectedCharacter, "unexpected_character", 8},
		{"UnterminatedString", "Name eq 'Boris", ErrUnterminatedString, "unterminated_string", 8},
		{"UnexpectedToken", "Dogs)", ErrUnexpectedToken, "unexpected_token", 4},
		{"UnexpectedEnd", "(Dogs", ErrUnexpectedEnd, "unexpected_end", 5},
		{"UnknownOperator", "Name desc", ErrUnknownOperator, "unknown_operator", 5},
		{"UnknownSymbol", "?$expand=Orders", ErrUnknownSymbol, "unknown_symbol", 1},
		{"InvalidLiteral", "Age gt 99999999999", ErrInvalidLiteral, "invalid_literal", 7},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Parse(tt.input)
			if !errors.Is(err, tt.expected) {
				t.Fatalf("errors.Is(%v, %v) = false, want true", err, tt.expected)
			}
			if kind := ErrorKind(err); kind != tt.kind {
				t.Errorf("ErrorKind() = %q, want %q", kind, tt.kind)
			}
			offset, ok := ErrorOffset(err)
			if !ok || offset != tt.offset {
				t.Errorf("ErrorOffset() = %d, %v, want %d, true", offset, ok, tt.offset)
			}
		})
	}
}

func TestErrorHelpersOnForeignErrors(t *testing.T) {
	err := errors.New("something else")

	if kind := ErrorKind(err); kind != "internal" {
		t.Errorf("ErrorKind() = %q, want %q", kind, "internal")
	}
	if _, ok := ErrorOffset(err); ok {
		t.Error("ErrorOffset() should not find an offset")
	}
	if _, ok := ErrorOffset(nil); ok {
		t.Error("ErrorOffset(nil) should not find an offset")
	}
}

func TestErrorOffsetThroughWrapping(t *testing.T) {
	_, err := Parse("Dogs/")
	wrapped := fmt.Errorf("resolving request: %w", err)

	offset, ok := ErrorOffset(wrapped)
	if !ok || offset != 5 {
		t.Errorf("ErrorOffset() = %d, %v, want 5, true", offset, ok)
	}

	var parseErr *ParseError
	if !errors.As(wrapped, &parseErr) {
		t.Fatal("expected a *ParseError in the chain")
	}
	if parseErr.Actual != TokenEnd {
		t.Errorf("Actual = %v, want %v", parseErr.Actual, TokenEnd)
	}
	if len(parseErr.Expected) != 1 || parseErr.Expected[0] != TokenWord {
		t.Errorf("Expected = %v, want [%v]", parseErr.Expected, TokenWord)
	}
}
