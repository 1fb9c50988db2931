package parser

import (
	"github.com/nlstn/go-odata-query/internal/ast"
	"github.com/nlstn/go-odata-query/internal/lexer"
)

// extend tries each postfix extension against node in order. It reports
// false when none applies, leaving the current token unconsumed. Only the
// binary operator extension consults the restriction stack; the others are
// taken whenever their leading token is present.
func (p *Parser) extend(node ast.Node) (ast.Node, bool, error) {
	var (
		extended ast.Node
		err      error
	)

	switch p.kind() {
	case lexer.Slash:
		p.advance()
		extended, err = p.parseAccessor(node)

	case lexer.Equals:
		p.advance()
		extended, err = p.parseAssignment(node)

	case lexer.Open:
		extended, err = p.parseCall(node)

	case lexer.Comma:
		extended, err = p.parseList(node)

	case lexer.QuestionMark:
		extended, err = p.parseOptions(node)

	case lexer.Space:
		return p.parseBinary(node)

	default:
		return node, false, nil
	}

	if err != nil {
		return nil, false, err
	}
	return extended, true, nil
}

// parseAssignment parses the right side of left=right under the current
// restriction.
func (p *Parser) parseAssignment(left ast.Node) (ast.Node, error) {
	right, err := p.parseNode()
	if err != nil {
		return nil, err
	}
	return &ast.AssignmentNode{Left: left, Right: right}, nil
}

func (p *Parser) parseCall(function ast.Node) (ast.Node, error) {
	args, err := p.parseParenthesized(true)
	if err != nil {
		return nil, err
	}
	return &ast.CallNode{Function: function, Args: args}, nil
}

// parseList consumes ", node". The rest of the list is parsed recursively so
// the chain grows to the right.
func (p *Parser) parseList(item ast.Node) (ast.Node, error) {
	if err := p.expect(lexer.Comma); err != nil {
		return nil, err
	}
	p.skipSpaces()

	next, err := p.parseNode()
	if err != nil {
		return nil, err
	}
	return &ast.ListNode{Item: item, Next: next}, nil
}

// parseOptions consumes "? option ('&' option)*". A single option is stored
// directly; several are chained into list cells.
func (p *Parser) parseOptions(source ast.Node) (ast.Node, error) {
	if err := p.expect(lexer.QuestionMark); err != nil {
		return nil, err
	}
	p.skipSpaces()

	var options []ast.Node
	for {
		option, err := p.parseNode()
		if err != nil {
			return nil, err
		}
		options = append(options, option)

		if p.kind() != lexer.Ampersand {
			break
		}
		p.advance()
		p.skipSpaces()
	}

	return &ast.OptionsNode{Source: source, Options: chain(options)}, nil
}

// parseBinary handles "space keyword space node". A space that does not lead
// into a word ends the postfix loop. An operator that binds looser than the
// active restriction is left for an enclosing call.
func (p *Parser) parseBinary(left ast.Node) (ast.Node, bool, error) {
	keyword := p.next()
	if keyword.Kind != lexer.Word {
		return left, false, nil
	}

	op, ok := ast.BinaryOperator(p.text(keyword))
	if !ok {
		return nil, false, p.named(keyword, ErrUnknownOperator, nil)
	}
	if !p.admits(rankOf(op)) {
		return left, false, nil
	}

	p.advance()
	p.advance()
	if err := p.expect(lexer.Space); err != nil {
		return nil, false, err
	}

	right, err := p.within(rankOf(op))
	if err != nil {
		return nil, false, err
	}
	return &ast.BinaryNode{Operator: op, Left: left, Right: right}, true, nil
}

// chain links nodes into right-growing list cells. The last node is the tail
// of the final cell.
func chain(nodes []ast.Node) ast.Node {
	if len(nodes) == 0 {
		return nil
	}
	tail := nodes[len(nodes)-1]
	for i := len(nodes) - 2; i >= 0; i-- {
		tail = &ast.ListNode{Item: nodes[i], Next: tail}
	}
	return tail
}
