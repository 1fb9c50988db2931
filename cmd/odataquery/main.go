// Command odataquery lexes and parses OData query strings and prints the
// resulting tokens or syntax tree. It is intended for debugging queries.
package main

import (
	"io"
	"log/slog"
	"os"

	"github.com/alecthomas/kong"
	"github.com/fatih/color"
)

// Context represents the global context for commands
type Context struct {
	Out    io.Writer
	Logger *slog.Logger
}

// CLI represents the command-line interface
var CLI struct {
	Verbose bool     `help:"Log lexing and parsing at debug level" short:"v"`
	NoColor bool     `help:"Disable colored output" name:"no-color"`
	Lex     LexCmd   `cmd:"" help:"Print the tokens of a query"`
	Parse   ParseCmd `cmd:"" help:"Print the syntax tree of a query"`
}

func main() {
	ctx := kong.Parse(&CLI,
		kong.Name("odataquery"),
		kong.Description("Inspect how OData resource paths and query options are tokenized and parsed."),
		kong.UsageOnError(),
	)

	if CLI.NoColor {
		color.NoColor = true
	}

	level := slog.LevelWarn
	if CLI.Verbose {
		level = slog.LevelDebug
	}

	appCtx := &Context{
		Out:    os.Stdout,
		Logger: slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level})),
	}

	if err := ctx.Run(appCtx); err != nil {
		printError(os.Stderr, err)
		os.Exit(1)
	}
}
