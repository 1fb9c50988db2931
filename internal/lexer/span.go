package lexer

import (
	"fmt"
	"strconv"
)

// Span is one lexical unit: a kind plus the half-open raw byte range
// [Left, Right) it occupies in the undecoded source.
type Span struct {
	Kind  Kind
	Left  int
	Right int
}

// Of is shorthand for constructing a Span.
func Of(kind Kind, left, right int) Span {
	return Span{Kind: kind, Left: left, Right: right}
}

// Size returns the raw width of the span.
func (s Span) Size() int { return s.Right - s.Left }

// Raw returns the undecoded source text covered by the span.
func (s Span) Raw(source string) string {
	return source[s.Left:s.Right]
}

// Text returns the percent-decoded text covered by the span.
func (s Span) Text(source string) string {
	return Decode(source, s.Left, s.Right)
}

// Int returns the decoded text interpreted as a base-10 integer.
func (s Span) Int(source string) (int, error) {
	n, err := strconv.Atoi(s.Text(source))
	if err != nil {
		return 0, fmt.Errorf("span %v is not an integer: %w", s, err)
	}
	return n, nil
}

// Is reports whether the decoded text of the span equals text exactly.
func (s Span) Is(source, text string) bool {
	r := NewWindowReader(source, s.Left, s.Size())
	i := 0
	for r.Advance() {
		if i >= len(text) || text[i] != r.Current() {
			return false
		}
		i++
	}
	return i == len(text)
}

func (s Span) String() string {
	return fmt.Sprintf("(%d, %d) %s", s.Left, s.Right, s.Kind)
}
