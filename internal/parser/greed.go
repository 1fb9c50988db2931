package parser

import (
	"math"

	"github.com/nlstn/go-odata-query/internal/ast"
)

// rank is an operator binding restriction. Lower ranks bind tighter.
type rank int

const (
	rankUnary rank = iota + 1
	rankMultiplicative
	rankAdditive
	rankRelational
	rankEquality
	rankAnd
	rankOr

	// rankFull places no restriction on the operators that may follow.
	rankFull rank = math.MaxInt
)

var operatorRanks = map[ast.Operator]rank{
	ast.Multiply:    rankMultiplicative,
	ast.Divide:      rankMultiplicative,
	ast.Modulo:      rankMultiplicative,
	ast.Add:         rankAdditive,
	ast.Subtract:    rankAdditive,
	ast.GreaterThan: rankRelational,
	ast.LessThan:    rankRelational,
	ast.Equals:      rankEquality,
	ast.NotEquals:   rankEquality,
	ast.And:         rankAnd,
	ast.Or:          rankOr,
	ast.Not:         rankUnary,
	ast.Negate:      rankUnary,
}

func rankOf(op ast.Operator) rank {
	return operatorRanks[op]
}

// restriction returns the innermost active restriction.
func (p *Parser) restriction() rank {
	if len(p.greed) == 0 {
		return rankFull
	}
	return p.greed[len(p.greed)-1]
}

func (p *Parser) push(r rank) {
	p.greed = append(p.greed, r)
}

func (p *Parser) pop() {
	p.greed = p.greed[:len(p.greed)-1]
}

// admits reports whether an operator of rank r may be consumed in the current
// context. Equal ranks are left to the enclosing call so that chains of the
// same operator associate to the left.
func (p *Parser) admits(r rank) bool {
	return p.restriction() > r
}

// within parses one node with r pushed as the active restriction.
func (p *Parser) within(r rank) (ast.Node, error) {
	p.push(r)
	defer p.pop()
	return p.parseNode()
}
