package lexer

import "fmt"

// Kind identifies the lexical class of a token span.
type Kind int

const (
	Start Kind = iota
	End
	Space
	Number
	Word
	ReservedWord
	String
	Open
	Close
	Slash
	Hyphen
	Colon
	Comma
	QuestionMark
	Hash
	Dot
	Equals
	Ampersand
	Guid
	Date
	Decimal
)

var kindNames = [...]string{
	Start:        "Start",
	End:          "End",
	Space:        "Space",
	Number:       "Number",
	Word:         "Word",
	ReservedWord: "ReservedWord",
	String:       "String",
	Open:         "Open",
	Close:        "Close",
	Slash:        "Slash",
	Hyphen:       "Hyphen",
	Colon:        "Colon",
	Comma:        "Comma",
	QuestionMark: "QuestionMark",
	Hash:         "Hash",
	Dot:          "Dot",
	Equals:       "Equals",
	Ampersand:    "Ampersand",
	Guid:         "Guid",
	Date:         "Date",
	Decimal:      "Decimal",
}

func (k Kind) String() string {
	if k >= 0 && int(k) < len(kindNames) {
		return kindNames[k]
	}
	return fmt.Sprintf("Kind(%d)", int(k))
}

// singleCharKinds maps the one-character punctuation tokens to their kinds.
var singleCharKinds = map[byte]Kind{
	'/': Slash,
	',': Comma,
	'.': Dot,
	'=': Equals,
	'(': Open,
	')': Close,
	':': Colon,
	'-': Hyphen,
	'&': Ampersand,
	'?': QuestionMark,
	'#': Hash,
}
