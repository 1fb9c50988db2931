package main

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/fatih/color"

	"github.com/nlstn/go-odata-query"
)

var (
	labelColor = color.New(color.FgCyan)
	errorColor = color.New(color.FgRed, color.Bold)
	caretColor = color.New(color.FgYellow)
)

// renderTree prints node as an indented tree, one node per line.
func renderTree(w io.Writer, node odataquery.Node) error {
	if node == nil {
		_, err := fmt.Fprintln(w, "(empty)")
		return err
	}
	return renderNode(w, node, "", "")
}

func renderNode(w io.Writer, node odataquery.Node, prefix, childPrefix string) error {
	label, children := describe(node)
	if _, err := fmt.Fprintf(w, "%s%s\n", prefix, labelColor.Sprint(label)); err != nil {
		return err
	}

	for i, child := range children {
		branch, indent := "├── ", "│   "
		if i == len(children)-1 {
			branch, indent = "└── ", "    "
		}
		if err := renderNode(w, child, childPrefix+branch, childPrefix+indent); err != nil {
			return err
		}
	}
	return nil
}

// describe returns a one-line label for node and the children to print
// beneath it.
func describe(node odataquery.Node) (string, []odataquery.Node) {
	switch n := node.(type) {
	case nil:
		return "_", nil
	case *odataquery.AccessorNode:
		if n.Parent == nil {
			return "Accessor " + n.Name, nil
		}
		return "Accessor " + n.Name, []odataquery.Node{n.Parent}
	case *odataquery.CallNode:
		return "Call", append([]odataquery.Node{n.Function}, odataquery.Items(n.Args)...)
	case *odataquery.UnaryNode:
		return "Unary " + n.Operator.String(), []odataquery.Node{n.Operand}
	case *odataquery.BinaryNode:
		return "Binary " + n.Operator.String(), []odataquery.Node{n.Left, n.Right}
	case *odataquery.AssignmentNode:
		return "Assignment", []odataquery.Node{n.Left, n.Right}
	case *odataquery.SymbolNode:
		return "Symbol " + n.Symbol.String(), nil
	case *odataquery.ListNode:
		return "List", odataquery.Items(n)
	case *odataquery.OptionsNode:
		return "Options", []odataquery.Node{n.Source, n.Options}
	default:
		return "Value " + odataquery.Format(n), nil
	}
}

// printError writes err and, for query failures, the query with a caret
// under the offending raw offset.
func printError(w io.Writer, err error) {
	errorColor.Fprintf(w, "Error: %v\n", err)

	var qe *queryError
	if !errors.As(err, &qe) {
		return
	}
	offset, ok := odataquery.ErrorOffset(qe.Err)
	if !ok {
		return
	}
	if offset > len(qe.Source) {
		offset = len(qe.Source)
	}

	fmt.Fprintf(w, "  %s\n", qe.Source)
	caretColor.Fprintf(w, "  %s^\n", strings.Repeat(" ", offset))
}
