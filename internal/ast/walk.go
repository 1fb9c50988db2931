package ast

import (
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Walk visits n and its descendants in pre-order. Children of a node are
// skipped when fn returns false for it. Nil children are not visited.
func Walk(n Node, fn func(Node) bool) {
	if n == nil || !fn(n) {
		return
	}

	switch n := n.(type) {
	case *ValueNode[bool], *ValueNode[int32], *ValueNode[decimal.Decimal],
		*ValueNode[string], *ValueNode[uuid.UUID], *ValueNode[time.Time], *SymbolNode:
	case *AccessorNode:
		Walk(n.Parent, fn)
	case *CallNode:
		Walk(n.Function, fn)
		Walk(n.Args, fn)
	case *UnaryNode:
		Walk(n.Operand, fn)
	case *BinaryNode:
		Walk(n.Left, fn)
		Walk(n.Right, fn)
	case *AssignmentNode:
		Walk(n.Left, fn)
		Walk(n.Right, fn)
	case *ListNode:
		Walk(n.Item, fn)
		Walk(n.Next, fn)
	case *OptionsNode:
		Walk(n.Source, fn)
		Walk(n.Options, fn)
	default:
		panic(fmt.Sprintf("ast: unexpected node type %T", n))
	}
}

// Format renders a tree as a compact S-expression, e.g. (add 43 (mul 3 7)).
// Accessor chains print as slash-separated paths.
func Format(n Node) string {
	var b strings.Builder
	format(&b, n)
	return b.String()
}

func format(b *strings.Builder, n Node) {
	switch n := n.(type) {
	case nil:
		b.WriteString("_")
	case *ValueNode[bool]:
		fmt.Fprintf(b, "%t", n.Value)
	case *ValueNode[int32]:
		fmt.Fprintf(b, "%d", n.Value)
	case *ValueNode[decimal.Decimal]:
		b.WriteString(n.Value.String())
		b.WriteString("M")
	case *ValueNode[string]:
		b.WriteString("'")
		b.WriteString(strings.ReplaceAll(n.Value, "'", "''"))
		b.WriteString("'")
	case *ValueNode[uuid.UUID]:
		b.WriteString(n.Value.String())
	case *ValueNode[time.Time]:
		b.WriteString(n.Value.Format(time.RFC3339Nano))
	case *SymbolNode:
		b.WriteString(n.Symbol.String())
	case *AccessorNode:
		if n.Parent != nil {
			format(b, n.Parent)
			b.WriteString("/")
		}
		b.WriteString(n.Name)
	case *CallNode:
		b.WriteString("(call ")
		format(b, n.Function)
		for _, arg := range Items(n.Args) {
			b.WriteString(" ")
			format(b, arg)
		}
		b.WriteString(")")
	case *UnaryNode:
		fmt.Fprintf(b, "(%s ", n.Operator)
		format(b, n.Operand)
		b.WriteString(")")
	case *BinaryNode:
		fmt.Fprintf(b, "(%s ", n.Operator)
		format(b, n.Left)
		b.WriteString(" ")
		format(b, n.Right)
		b.WriteString(")")
	case *AssignmentNode:
		b.WriteString("(= ")
		format(b, n.Left)
		b.WriteString(" ")
		format(b, n.Right)
		b.WriteString(")")
	case *ListNode:
		b.WriteString("(list")
		for _, item := range Items(n) {
			b.WriteString(" ")
			format(b, item)
		}
		b.WriteString(")")
	case *OptionsNode:
		b.WriteString("(? ")
		format(b, n.Source)
		b.WriteString(" ")
		format(b, n.Options)
		b.WriteString(")")
	default:
		panic(fmt.Sprintf("ast: unexpected node type %T", n))
	}
}

// Dump converts a tree into nested maps and slices suitable for JSON or YAML
// encoding. Every node becomes a map with a "node" key naming its type.
func Dump(n Node) interface{} {
	switch n := n.(type) {
	case nil:
		return nil
	case *ValueNode[bool]:
		return dumpValue(n.TypeName(), n.Value)
	case *ValueNode[int32]:
		return dumpValue(n.TypeName(), n.Value)
	case *ValueNode[decimal.Decimal]:
		return dumpValue(n.TypeName(), n.Value.String())
	case *ValueNode[string]:
		return dumpValue(n.TypeName(), n.Value)
	case *ValueNode[uuid.UUID]:
		return dumpValue(n.TypeName(), n.Value.String())
	case *ValueNode[time.Time]:
		return dumpValue(n.TypeName(), n.Value.Format(time.RFC3339Nano))
	case *SymbolNode:
		return map[string]interface{}{"node": "symbol", "symbol": n.Symbol.String()}
	case *AccessorNode:
		return map[string]interface{}{"node": "accessor", "name": n.Name, "parent": Dump(n.Parent)}
	case *CallNode:
		args := []interface{}{}
		for _, arg := range Items(n.Args) {
			args = append(args, Dump(arg))
		}
		return map[string]interface{}{"node": "call", "function": Dump(n.Function), "args": args}
	case *UnaryNode:
		return map[string]interface{}{"node": "unary", "operator": n.Operator.String(), "operand": Dump(n.Operand)}
	case *BinaryNode:
		return map[string]interface{}{
			"node":     "binary",
			"operator": n.Operator.String(),
			"left":     Dump(n.Left),
			"right":    Dump(n.Right),
		}
	case *AssignmentNode:
		return map[string]interface{}{"node": "assignment", "left": Dump(n.Left), "right": Dump(n.Right)}
	case *ListNode:
		items := []interface{}{}
		for _, item := range Items(n) {
			items = append(items, Dump(item))
		}
		return map[string]interface{}{"node": "list", "items": items}
	case *OptionsNode:
		return map[string]interface{}{"node": "options", "source": Dump(n.Source), "options": Dump(n.Options)}
	default:
		panic(fmt.Sprintf("ast: unexpected node type %T", n))
	}
}

// Name returns the short name of the node type, as used in Dump output.
func Name(n Node) string {
	switch n.(type) {
	case nil:
		return "nil"
	case *ValueNode[bool], *ValueNode[int32], *ValueNode[decimal.Decimal],
		*ValueNode[string], *ValueNode[uuid.UUID], *ValueNode[time.Time]:
		return "value"
	case *SymbolNode:
		return "symbol"
	case *AccessorNode:
		return "accessor"
	case *CallNode:
		return "call"
	case *UnaryNode:
		return "unary"
	case *BinaryNode:
		return "binary"
	case *AssignmentNode:
		return "assignment"
	case *ListNode:
		return "list"
	case *OptionsNode:
		return "options"
	default:
		panic(fmt.Sprintf("ast: unexpected node type %T", n))
	}
}

func dumpValue(typeName string, value interface{}) map[string]interface{} {
	return map[string]interface{}{"node": "value", "type": typeName, "value": value}
}
