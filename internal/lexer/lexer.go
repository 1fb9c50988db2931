// Package lexer tokenizes OData resource paths and query strings into spans
// over the raw, still percent-encoded source.
package lexer

var guidGroups = [...]int{8, 4, 4, 4, 12}

// Lexer produces token spans from a source string. It keeps one character
// of lookahead (the current and next characters) over the decoded stream.
type Lexer struct {
	source string
	cur    Reader
	ahead  Reader
	start  int
}

// New creates a lexer positioned before the first token of source.
func New(source string) *Lexer {
	l := &Lexer{source: source}
	l.cur = NewReader(source)
	l.cur.Advance()
	l.ahead = l.cur
	l.ahead.Advance()
	return l
}

// Lex tokenizes source in full. The result always starts with a zero-width
// Start span and ends with a zero-width End span at the final raw offset.
func Lex(source string) ([]Span, error) {
	l := New(source)
	spans := []Span{l.emit(Start)}

	for {
		span, err := l.Next()
		if err != nil {
			return nil, err
		}

		spans = append(spans, span)

		if span.Kind == End {
			break
		}
	}

	return spans, nil
}

// Next returns the next token span. Once the source is exhausted it keeps
// returning a zero-width End span.
func (l *Lexer) Next() (Span, error) {
	if l.atEnd() {
		return l.emit(End), nil
	}

	if span, ok := l.lexSpace(); ok {
		return span, nil
	}

	if span, ok := l.lexPunctuation(); ok {
		return span, nil
	}

	if span, ok, err := l.lexString(); ok || err != nil {
		return span, err
	}

	if span, ok := l.lexGuid(); ok {
		return span, nil
	}

	if span, ok := l.lexDate(); ok {
		return span, nil
	}

	if span, ok := l.lexNumeric(); ok {
		return span, nil
	}

	if span, ok := l.lexReservedWord(); ok {
		return span, nil
	}

	if span, ok := l.lexWord(); ok {
		return span, nil
	}

	return Span{}, &LexError{Offset: l.pos(), Char: l.ch(), Err: ErrUnexpectedCharacter}
}

func (l *Lexer) ch() byte    { return l.cur.Current() }
func (l *Lexer) peek() byte  { return l.ahead.Current() }
func (l *Lexer) atEnd() bool { return l.cur.AtEnd() }
func (l *Lexer) pos() int    { return l.cur.ReadStart() }

// shift moves the lookahead window forward by one decoded character.
func (l *Lexer) shift() {
	l.cur = l.ahead
	l.ahead.Advance()
}

// emit closes the span running from the last emitted position to the current one.
func (l *Lexer) emit(kind Kind) Span {
	span := Of(kind, l.start, l.pos())
	l.start = l.pos()
	return span
}

func (l *Lexer) accept(c byte) bool {
	if l.atEnd() || l.ch() != c {
		return false
	}
	l.shift()
	return true
}

func (l *Lexer) acceptRun(pred func(byte) bool) {
	for !l.atEnd() && pred(l.ch()) {
		l.shift()
	}
}

// acceptCount consumes exactly n characters matching pred.
func (l *Lexer) acceptCount(pred func(byte) bool, n int) bool {
	for i := 0; i < n; i++ {
		if l.atEnd() || !pred(l.ch()) {
			return false
		}
		l.shift()
	}
	return true
}

func (l *Lexer) lexSpace() (Span, bool) {
	if l.ch() != ' ' {
		return Span{}, false
	}
	l.acceptRun(isSpace)
	return l.emit(Space), true
}

func (l *Lexer) lexPunctuation() (Span, bool) {
	kind, ok := singleCharKinds[l.ch()]
	if !ok {
		return Span{}, false
	}
	l.shift()
	return l.emit(kind), true
}

// lexString consumes a quoted string. A doubled quote mark inside the string
// is an escaped quote and does not terminate it.
func (l *Lexer) lexString() (Span, bool, error) {
	quote := l.ch()
	if !isQuoteMark(quote) {
		return Span{}, false, nil
	}
	l.shift()

	for {
		if l.atEnd() {
			return Span{}, false, &LexError{Offset: l.start, Char: quote, Err: ErrUnterminatedString}
		}
		c := l.ch()
		l.shift()
		if c != quote {
			continue
		}
		if l.accept(quote) {
			continue
		}
		break
	}

	return l.emit(String), true, nil
}

// lexGuid speculatively consumes 8-4-4-4-12 hex digit groups. On mismatch the
// lexer state is restored to where the attempt started.
func (l *Lexer) lexGuid() (Span, bool) {
	if !isHex(l.ch()) || !isHex(l.peek()) {
		return Span{}, false
	}

	checkpoint := *l
	for i, n := range guidGroups {
		if i > 0 && !l.accept('-') {
			*l = checkpoint
			return Span{}, false
		}
		if !l.acceptCount(isHex, n) {
			*l = checkpoint
			return Span{}, false
		}
	}

	return l.emit(Guid), true
}

// lexDate speculatively consumes YYYY-MM-DD with an optional time-of-day
// suffix. An incomplete suffix is left for the following tokens.
func (l *Lexer) lexDate() (Span, bool) {
	if !isDigit(l.ch()) || !isDigit(l.peek()) {
		return Span{}, false
	}

	checkpoint := *l
	if !l.acceptCount(isDigit, 4) || !l.accept('-') ||
		!l.acceptCount(isDigit, 2) || !l.accept('-') ||
		!l.acceptCount(isDigit, 2) {
		*l = checkpoint
		return Span{}, false
	}

	if !l.atEnd() && l.ch() == 'T' {
		dateOnly := *l
		if !l.lexTimeOfDay() {
			*l = dateOnly
		}
	}

	return l.emit(Date), true
}

// lexTimeOfDay consumes T HH:MM[:SS[.fff]] followed by Z or a ±HH:MM offset.
func (l *Lexer) lexTimeOfDay() bool {
	l.shift() // T

	if !l.acceptCount(isDigit, 2) || !l.accept(':') || !l.acceptCount(isDigit, 2) {
		return false
	}

	if l.accept(':') {
		if !l.acceptCount(isDigit, 2) {
			return false
		}
		if l.ch() == '.' && isDigit(l.peek()) {
			l.shift()
			l.acceptRun(isDigit)
		}
	}

	if l.accept('Z') {
		return true
	}
	if l.accept('+') || l.accept('-') {
		return l.acceptCount(isDigit, 2) && l.accept(':') && l.acceptCount(isDigit, 2)
	}
	return false
}

func (l *Lexer) lexNumeric() (Span, bool) {
	if !isDigit(l.ch()) {
		return Span{}, false
	}

	l.acceptRun(isDigit)

	if l.ch() == '.' && isDigit(l.peek()) {
		l.shift()
		l.acceptRun(isDigit)
		return l.emit(Decimal), true
	}

	return l.emit(Number), true
}

func (l *Lexer) lexReservedWord() (Span, bool) {
	if l.ch() != '$' || !isLetter(l.peek()) {
		return Span{}, false
	}
	l.shift()
	l.acceptRun(isLetter)
	return l.emit(ReservedWord), true
}

// lexWord consumes an identifier. Digits may follow but never start a word.
func (l *Lexer) lexWord() (Span, bool) {
	if !isWordStart(l.ch()) {
		return Span{}, false
	}
	l.acceptRun(isWordChar)
	return l.emit(Word), true
}

func isSpace(c byte) bool     { return c == ' ' }
func isDigit(c byte) bool     { return c >= '0' && c <= '9' }
func isLetter(c byte) bool    { return (c >= 'a' && c <= 'z') || (c >= 'A' && c <= 'Z') }
func isWordStart(c byte) bool { return isLetter(c) || c == '_' }
func isWordChar(c byte) bool  { return isWordStart(c) || isDigit(c) }
func isQuoteMark(c byte) bool { return c == '\'' || c == '"' }

func isHex(c byte) bool {
	_, ok := hexValue(c)
	return ok
}
