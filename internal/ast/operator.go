package ast

import "fmt"

// Operator identifies a unary or binary operator.
type Operator int

const (
	// Unary
	Not Operator = iota
	Negate

	// Binary
	Equals
	NotEquals
	GreaterThan
	LessThan
	And
	Or

	Add
	Subtract
	Multiply
	Divide
	Modulo
)

var operatorKeywords = [...]string{
	Not:         "not",
	Negate:      "-",
	Equals:      "eq",
	NotEquals:   "ne",
	GreaterThan: "gt",
	LessThan:    "lt",
	And:         "and",
	Or:          "or",
	Add:         "add",
	Subtract:    "sub",
	Multiply:    "mul",
	Divide:      "div",
	Modulo:      "mod",
}

var binaryOperators = map[string]Operator{
	"eq":  Equals,
	"ne":  NotEquals,
	"gt":  GreaterThan,
	"lt":  LessThan,
	"and": And,
	"or":  Or,
	"add": Add,
	"sub": Subtract,
	"mul": Multiply,
	"div": Divide,
	"mod": Modulo,
}

// String returns the operator keyword as written in a query.
func (o Operator) String() string {
	if o >= 0 && int(o) < len(operatorKeywords) {
		return operatorKeywords[o]
	}
	return fmt.Sprintf("Operator(%d)", int(o))
}

// BinaryOperator looks up an infix operator keyword.
func BinaryOperator(keyword string) (Operator, bool) {
	op, ok := binaryOperators[keyword]
	return op, ok
}

// Symbol identifies a reserved $name keyword.
type Symbol int

const (
	Filter Symbol = iota
	Select
	Top
	Skip
	OrderBy
	Count
)

var symbolNames = map[string]Symbol{
	"$filter":  Filter,
	"$select":  Select,
	"$top":     Top,
	"$skip":    Skip,
	"$orderby": OrderBy,
	"$count":   Count,
}

// LookupSymbol maps a reserved word, including its leading '$', to a Symbol.
func LookupSymbol(name string) (Symbol, bool) {
	s, ok := symbolNames[name]
	return s, ok
}

func (s Symbol) String() string {
	switch s {
	case Filter:
		return "$filter"
	case Select:
		return "$select"
	case Top:
		return "$top"
	case Skip:
		return "$skip"
	case OrderBy:
		return "$orderby"
	case Count:
		return "$count"
	default:
		return fmt.Sprintf("Symbol(%d)", int(s))
	}
}
