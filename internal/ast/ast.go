// Package ast defines the immutable syntax tree produced by the parser.
//
// Node is a closed set: only the types in this package implement it, and
// every walker in this package switches over all of them.
package ast

import (
	"github.com/nlstn/go-odata-query/internal/edm"
)

// Node represents a node in the abstract syntax tree.
type Node interface {
	astNode()
}

// ValueNode is a literal value.
type ValueNode[T edm.Primitive] struct {
	Value T
}

func (n *ValueNode[T]) astNode() {}

// TypeName returns the EDM type name of the literal.
func (n *ValueNode[T]) TypeName() string {
	return edm.TypeName(n.Value)
}

// AccessorNode is a named navigation step. Parent is the node navigated from,
// or nil for a root access.
type AccessorNode struct {
	Parent Node
	Name   string
}

func (n *AccessorNode) astNode() {}

// CallNode is an invocation of Function. Args is nil for an empty argument
// list, a single node for one argument, or a ListNode chain.
type CallNode struct {
	Function Node
	Args     Node
}

func (n *CallNode) astNode() {}

// UnaryNode applies a prefix operator (not, negation).
type UnaryNode struct {
	Operator Operator
	Operand  Node
}

func (n *UnaryNode) astNode() {}

// BinaryNode applies an infix operator.
type BinaryNode struct {
	Operator Operator
	Left     Node
	Right    Node
}

func (n *BinaryNode) astNode() {}

// AssignmentNode is a `left=right` pair, as used by query options.
type AssignmentNode struct {
	Left  Node
	Right Node
}

func (n *AssignmentNode) astNode() {}

// SymbolNode is a reserved $name keyword.
type SymbolNode struct {
	Symbol Symbol
}

func (n *SymbolNode) astNode() {}

// ListNode is one cell of a right-growing singly linked list. The final item
// is stored directly in Next of the last cell, so Next is never nil in a
// parsed tree.
type ListNode struct {
	Item Node
	Next Node
}

func (n *ListNode) astNode() {}

// OptionsNode pairs a resource path with the options following '?'.
// Source is nil when the query starts with '?'.
type OptionsNode struct {
	Source  Node
	Options Node
}

func (n *OptionsNode) astNode() {}

// Items flattens a ListNode chain into a slice. A non-list node yields a
// single item and nil yields none.
func Items(n Node) []Node {
	var items []Node
	for n != nil {
		list, ok := n.(*ListNode)
		if !ok {
			return append(items, n)
		}
		items = append(items, list.Item)
		n = list.Next
	}
	return items
}

// Path returns the accessor names from the root of an accessor chain down to n.
func Path(n *AccessorNode) []string {
	var names []string
	for cur := Node(n); cur != nil; {
		acc, ok := cur.(*AccessorNode)
		if !ok {
			break
		}
		names = append([]string{acc.Name}, names...)
		cur = acc.Parent
	}
	return names
}
