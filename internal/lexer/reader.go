package lexer

// Reader decodes a raw source string into a sequence of logical characters.
// A percent-encoding (%XX) is produced as the single byte it encodes; the raw
// extent of the character just produced is available through ReadStart and
// ReadLength so callers can keep offsets in terms of the undecoded source.
//
// Reader is a value type. Copying it yields an independent checkpoint.
type Reader struct {
	source     string
	remaining  int
	readStart  int
	readLength int
	current    byte
	atEnd      bool
}

// NewReader creates a reader over the whole of source.
func NewReader(source string) Reader {
	return NewWindowReader(source, 0, len(source))
}

// NewWindowReader creates a reader over source[start:start+length].
// A negative length reads to the end of source.
func NewWindowReader(source string, start, length int) Reader {
	if start < 0 {
		start = 0
	}
	if start > len(source) {
		start = len(source)
	}
	if length < 0 || start+length > len(source) {
		length = len(source) - start
	}
	return Reader{
		source:    source,
		remaining: length,
		readStart: start,
	}
}

// Advance produces the next logical character. It returns false once the
// window is exhausted, after which Current returns 0.
func (r *Reader) Advance() bool {
	r.readStart += r.readLength
	r.readLength = 0

	if r.remaining <= 0 {
		r.current = 0
		r.atEnd = true
		return false
	}

	c := r.source[r.readStart]
	r.readLength = 1
	r.remaining--

	if c == '%' && r.remaining >= 2 {
		hi, okHi := hexValue(r.source[r.readStart+1])
		lo, okLo := hexValue(r.source[r.readStart+2])
		if okHi && okLo {
			c = hi<<4 | lo
			r.readLength = 3
			r.remaining -= 2
		}
	}

	r.current = c
	return true
}

// Current returns the character produced by the last Advance.
func (r *Reader) Current() byte { return r.current }

// ReadStart returns the raw offset of the current character.
func (r *Reader) ReadStart() int { return r.readStart }

// ReadLength returns the number of raw bytes the current character occupies.
func (r *Reader) ReadLength() int { return r.readLength }

// AtEnd reports whether the reader has run past the end of its window.
func (r *Reader) AtEnd() bool { return r.atEnd }

// Decode returns the fully decoded text of source[start:end].
func Decode(source string, start, end int) string {
	r := NewWindowReader(source, start, end-start)
	buf := make([]byte, 0, end-start)
	for r.Advance() {
		buf = append(buf, r.Current())
	}
	return string(buf)
}

func hexValue(c byte) (byte, bool) {
	switch {
	case c >= '0' && c <= '9':
		return c - '0', true
	case c >= 'a' && c <= 'f':
		return c - 'a' + 10, true
	case c >= 'A' && c <= 'F':
		return c - 'A' + 10, true
	}
	return 0, false
}
