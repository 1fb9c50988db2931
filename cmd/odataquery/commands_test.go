package main

import (
	"bytes"
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"os"
	"strings"
	"testing"

	"github.com/fatih/color"
	"github.com/goccy/go-yaml"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMain(m *testing.M) {
	color.NoColor = true
	os.Exit(m.Run())
}

func newContext(out io.Writer) *Context {
	return &Context{
		Out:    out,
		Logger: slog.New(slog.NewTextHandler(io.Discard, nil)),
	}
}

func TestParseCmdTree(t *testing.T) {
	var out bytes.Buffer
	cmd := &ParseCmd{Query: "Dogs/Chihuahuas('Boris')", Format: "tree"}

	require.NoError(t, cmd.Run(newContext(&out)))

	expected := strings.Join([]string{
		"Call",
		"├── Accessor Chihuahuas",
		"│   └── Accessor Dogs",
		"└── Value 'Boris'",
		"",
	}, "\n")
	assert.Equal(t, expected, out.String())
}

func TestParseCmdOptionsTree(t *testing.T) {
	var out bytes.Buffer
	cmd := &ParseCmd{Query: "?$top=2", Format: "tree"}

	require.NoError(t, cmd.Run(newContext(&out)))

	expected := strings.Join([]string{
		"Options",
		"├── _",
		"└── Assignment",
		"    ├── Symbol $top",
		"    └── Value 2",
		"",
	}, "\n")
	assert.Equal(t, expected, out.String())
}

func TestParseCmdFormats(t *testing.T) {
	query := "43 add 3 mul 7"

	t.Run("sexpr", func(t *testing.T) {
		var out bytes.Buffer
		require.NoError(t, (&ParseCmd{Query: query, Format: "sexpr"}).Run(newContext(&out)))
		assert.Equal(t, "(add 43 (mul 3 7))\n", out.String())
	})

	t.Run("json", func(t *testing.T) {
		var out bytes.Buffer
		require.NoError(t, (&ParseCmd{Query: query, Format: "json"}).Run(newContext(&out)))

		var decoded map[string]interface{}
		require.NoError(t, json.Unmarshal(out.Bytes(), &decoded))
		assert.Equal(t, "binary", decoded["node"])
		assert.Equal(t, "add", decoded["operator"])
	})

	t.Run("yaml", func(t *testing.T) {
		var out bytes.Buffer
		require.NoError(t, (&ParseCmd{Query: query, Format: "yaml"}).Run(newContext(&out)))

		var decoded map[string]interface{}
		require.NoError(t, yaml.Unmarshal(out.Bytes(), &decoded))
		assert.Equal(t, "binary", decoded["node"])
		right, ok := decoded["right"].(map[string]interface{})
		require.True(t, ok)
		assert.Equal(t, "mul", right["operator"])
	})

	t.Run("empty query", func(t *testing.T) {
		var out bytes.Buffer
		require.NoError(t, (&ParseCmd{Query: "", Format: "tree"}).Run(newContext(&out)))
		assert.Equal(t, "(empty)\n", out.String())
	})

	t.Run("unsupported", func(t *testing.T) {
		err := writeTree(io.Discard, nil, "xml")
		assert.ErrorIs(t, err, ErrUnsupportedFormat)
	})
}

func TestLexCmd(t *testing.T) {
	var out bytes.Buffer
	cmd := &LexCmd{Query: "Top%3D12", Format: "table"}

	require.NoError(t, cmd.Run(newContext(&out)))

	lines := strings.Split(strings.TrimRight(out.String(), "\n"), "\n")
	require.Len(t, lines, 5)
	assert.Equal(t, `Start            0    0  ""`, lines[0])
	assert.Equal(t, `Word             0    3  "Top"`, lines[1])
	assert.Equal(t, `Equals           3    6  "="`, lines[2])
	assert.Equal(t, `Number           6    8  "12"`, lines[3])
	assert.Equal(t, `End              8    8  ""`, lines[4])
}

func TestLexCmdJSON(t *testing.T) {
	var out bytes.Buffer
	cmd := &LexCmd{Query: "(%27Hello%27)", Format: "json"}

	require.NoError(t, cmd.Run(newContext(&out)))

	var tokens []tokenView
	require.NoError(t, json.Unmarshal(out.Bytes(), &tokens))
	require.Len(t, tokens, 5)
	assert.Equal(t, tokenView{Kind: "String", Left: 1, Right: 12, Raw: "%27Hello%27", Text: "'Hello'"}, tokens[2])
}

func TestQueryErrorCaret(t *testing.T) {
	cmd := &ParseCmd{Query: "Name desc", Format: "tree"}
	err := cmd.Run(newContext(io.Discard))
	require.Error(t, err)

	var qe *queryError
	require.True(t, errors.As(err, &qe))

	var out bytes.Buffer
	printError(&out, err)

	expected := strings.Join([]string{
		"Error: unknown operator 'desc' at position 5",
		"  Name desc",
		"       ^",
		"",
	}, "\n")
	assert.Equal(t, expected, out.String())
}

func TestLexErrorCaret(t *testing.T) {
	cmd := &LexCmd{Query: "Name eq 'Boris", Format: "table"}
	err := cmd.Run(newContext(io.Discard))
	require.Error(t, err)

	var out bytes.Buffer
	printError(&out, err)

	assert.Contains(t, out.String(), "unterminated string literal starting at position 8")
	assert.True(t, strings.HasSuffix(out.String(), "          ^\n"))
}

func TestPrintErrorWithoutOffset(t *testing.T) {
	var out bytes.Buffer
	printError(&out, errors.New("flag problem"))
	assert.Equal(t, "Error: flag problem\n", out.String())
}
