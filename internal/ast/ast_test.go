package ast

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sampleTree() Node {
	name := &AccessorNode{Name: "Name"}
	length := &CallNode{Function: &AccessorNode{Parent: name, Name: "Length"}}
	filter := &AssignmentNode{
		Left: &SymbolNode{Symbol: Filter},
		Right: &BinaryNode{
			Operator: Equals,
			Left:     length,
			Right:    &ValueNode[int32]{Value: 10},
		},
	}
	return &OptionsNode{Source: &AccessorNode{Name: "Animals"}, Options: filter}
}

func TestFormat(t *testing.T) {
	id := uuid.MustParse("0f8fad5b-d9cb-469f-a165-70867728950e")

	tests := []struct {
		name     string
		node     Node
		expected string
	}{
		{name: "Nil", node: nil, expected: "_"},
		{name: "Options", node: sampleTree(), expected: "(? Animals (= $filter (eq (call Name/Length) 10)))"},
		{name: "String with quote", node: &ValueNode[string]{Value: "O'Brien"}, expected: "'O''Brien'"},
		{name: "Decimal", node: &ValueNode[decimal.Decimal]{Value: decimal.RequireFromString("2.89")}, expected: "2.89M"},
		{name: "Guid", node: &ValueNode[uuid.UUID]{Value: id}, expected: "0f8fad5b-d9cb-469f-a165-70867728950e"},
		{
			name:     "Datetime",
			node:     &ValueNode[time.Time]{Value: time.Date(2012, 5, 29, 9, 13, 28, 0, time.UTC)},
			expected: "2012-05-29T09:13:28Z",
		},
		{
			name: "Call with list args and unary",
			node: &CallNode{
				Function: &AccessorNode{Name: "Choose"},
				Args: &ListNode{
					Item: &ValueNode[string]{Value: "Dogs"},
					Next: &UnaryNode{Operator: Negate, Operand: &ValueNode[int32]{Value: 1}},
				},
			},
			expected: "(call Choose 'Dogs' (- 1))",
		},
		{
			name: "List",
			node: &ListNode{
				Item: &ValueNode[bool]{Value: true},
				Next: &ListNode{Item: &ValueNode[bool]{Value: false}},
			},
			expected: "(list true false)",
		},
		{
			name:     "Options without source",
			node:     &OptionsNode{Options: &AssignmentNode{Left: &SymbolNode{Symbol: Top}, Right: &ValueNode[int32]{Value: 2}}},
			expected: "(? _ (= $top 2))",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, Format(tt.node))
		})
	}
}

func TestWalk(t *testing.T) {
	var visited []string
	Walk(sampleTree(), func(n Node) bool {
		switch n := n.(type) {
		case *AccessorNode:
			visited = append(visited, n.Name)
		case *SymbolNode:
			visited = append(visited, n.Symbol.String())
		}
		return true
	})
	assert.Equal(t, []string{"Animals", "$filter", "Length", "Name"}, visited)

	count := 0
	Walk(sampleTree(), func(n Node) bool {
		count++
		_, isAssignment := n.(*AssignmentNode)
		return !isAssignment
	})
	assert.Equal(t, 3, count, "children of the assignment should be skipped")
}

type foreignNode struct{}

func (foreignNode) astNode() {}

func TestWalkPanicsOnForeignNode(t *testing.T) {
	assert.Panics(t, func() {
		Walk(foreignNode{}, func(Node) bool { return true })
	})
}

func TestItemsAndPath(t *testing.T) {
	assert.Nil(t, Items(nil))

	single := &ValueNode[int32]{Value: 1}
	assert.Equal(t, []Node{single}, Items(single))

	a, b := &ValueNode[int32]{Value: 1}, &ValueNode[int32]{Value: 2}
	assert.Equal(t, []Node{a, b}, Items(&ListNode{Item: a, Next: b}))

	chain := &AccessorNode{Parent: &AccessorNode{Parent: &AccessorNode{Name: "A"}, Name: "B"}, Name: "C"}
	assert.Equal(t, []string{"A", "B", "C"}, Path(chain))
}

func TestDump(t *testing.T) {
	data, err := json.Marshal(Dump(sampleTree()))
	require.NoError(t, err)

	var decoded map[string]interface{}
	require.NoError(t, json.Unmarshal(data, &decoded))

	assert.Equal(t, "options", decoded["node"])
	source := decoded["source"].(map[string]interface{})
	assert.Equal(t, "Animals", source["name"])
	assert.Nil(t, source["parent"])

	options := decoded["options"].(map[string]interface{})
	right := options["right"].(map[string]interface{})
	assert.Equal(t, "eq", right["operator"])
	value := right["right"].(map[string]interface{})
	assert.Equal(t, "Edm.Int32", value["type"])
	assert.Equal(t, float64(10), value["value"])
}

func TestName(t *testing.T) {
	assert.Equal(t, "options", Name(sampleTree()))
	assert.Equal(t, "value", Name(&ValueNode[uuid.UUID]{}))
	assert.Equal(t, "list", Name(&ListNode{}))
	assert.Equal(t, "nil", Name(nil))
	assert.Panics(t, func() { Name(foreignNode{}) })
}

func TestOperatorsAndSymbols(t *testing.T) {
	op, ok := BinaryOperator("mod")
	require.True(t, ok)
	assert.Equal(t, Modulo, op)
	assert.Equal(t, "mod", op.String())

	_, ok = BinaryOperator("ge")
	assert.False(t, ok)
	_, ok = BinaryOperator("not")
	assert.False(t, ok)

	sym, ok := LookupSymbol("$orderby")
	require.True(t, ok)
	assert.Equal(t, OrderBy, sym)
	_, ok = LookupSymbol("$expand")
	assert.False(t, ok)
	_, ok = LookupSymbol("$Filter")
	assert.False(t, ok)
}
