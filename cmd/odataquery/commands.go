package main

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"

	"github.com/goccy/go-yaml"

	"github.com/nlstn/go-odata-query"
)

var ErrUnsupportedFormat = errors.New("unsupported output format")

// queryError ties a lex or parse failure to the query it came from so the
// offending position can be shown.
type queryError struct {
	Source string
	Err    error
}

func (e *queryError) Error() string { return e.Err.Error() }
func (e *queryError) Unwrap() error { return e.Err }

// LexCmd represents the lex command
type LexCmd struct {
	Query  string `arg:"" help:"Query to tokenize, e.g. \"Dogs/Chihuahuas('Boris')\""`
	Format string `help:"Output format" enum:"table,json,yaml" default:"table" short:"f"`
}

// Run executes the lex command
func (cmd *LexCmd) Run(ctx *Context) error {
	p := odataquery.NewParser(odataquery.WithLogger(ctx.Logger))

	tokens, err := p.Lex(context.Background(), cmd.Query)
	if err != nil {
		return &queryError{Source: cmd.Query, Err: err}
	}

	return writeTokens(ctx.Out, cmd.Query, tokens, cmd.Format)
}

// ParseCmd represents the parse command
type ParseCmd struct {
	Query  string `arg:"" help:"Query to parse, e.g. \"Animals?$filter=Name eq 'Boris'\""`
	Format string `help:"Output format" enum:"tree,sexpr,json,yaml" default:"tree" short:"f"`
}

// Run executes the parse command
func (cmd *ParseCmd) Run(ctx *Context) error {
	p := odataquery.NewParser(odataquery.WithLogger(ctx.Logger))

	node, err := p.Parse(context.Background(), cmd.Query)
	if err != nil {
		return &queryError{Source: cmd.Query, Err: err}
	}

	return writeTree(ctx.Out, node, cmd.Format)
}

type tokenView struct {
	Kind  string `json:"kind" yaml:"kind"`
	Left  int    `json:"left" yaml:"left"`
	Right int    `json:"right" yaml:"right"`
	Raw   string `json:"raw" yaml:"raw"`
	Text  string `json:"text" yaml:"text"`
}

func writeTokens(w io.Writer, source string, tokens []odataquery.TokenSpan, format string) error {
	views := make([]tokenView, len(tokens))
	for i, tok := range tokens {
		views[i] = tokenView{
			Kind:  tok.Kind.String(),
			Left:  tok.Left,
			Right: tok.Right,
			Raw:   tok.Raw(source),
			Text:  tok.Text(source),
		}
	}

	switch format {
	case "table", "":
		for _, v := range views {
			if _, err := fmt.Fprintf(w, "%-13s %4d %4d  %q\n", v.Kind, v.Left, v.Right, v.Text); err != nil {
				return err
			}
		}
		return nil
	case "json":
		return writeJSON(w, views)
	case "yaml":
		return writeYAML(w, views)
	default:
		return fmt.Errorf("%w: %s", ErrUnsupportedFormat, format)
	}
}

func writeTree(w io.Writer, node odataquery.Node, format string) error {
	switch format {
	case "tree", "":
		return renderTree(w, node)
	case "sexpr":
		_, err := fmt.Fprintln(w, odataquery.Format(node))
		return err
	case "json":
		return writeJSON(w, odataquery.Dump(node))
	case "yaml":
		return writeYAML(w, odataquery.Dump(node))
	default:
		return fmt.Errorf("%w: %s", ErrUnsupportedFormat, format)
	}
}

func writeJSON(w io.Writer, v interface{}) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

func writeYAML(w io.Writer, v interface{}) error {
	data, err := yaml.Marshal(v)
	if err != nil {
		return fmt.Errorf("failed to encode yaml: %w", err)
	}
	_, err = w.Write(data)
	return err
}
