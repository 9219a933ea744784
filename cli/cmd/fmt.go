package cmd

import (
	"context"
	"io"
	"log/slog"
	"os"

	"github.com/ardnew/spiral/lang"
	"github.com/ardnew/spiral/log"
)

// Output holds the flags shared by commands that print tokens or trees.
type Output struct {
	Format lang.Format `default:"text" enum:"text,repr,json,yaml,infix" help:"Output format (${enum})."      short:"o"`
	Indent int         `default:"2"                                     help:"Indent width for JSON and YAML." short:"i"`

	out io.Writer
}

func (o *Output) writer() io.Writer {
	if o.out == nil {
		return os.Stdout
	}

	return o.out
}

// Tokens prints the tokens of an expression.
type Tokens struct {
	Input  `embed:""`
	Output `embed:""`

	Trivia bool `help:"Include whitespace and newline tokens." short:"t"`
}

// Run executes the tokens command.
func (t *Tokens) Run(ctx context.Context) (err error) {
	ctx, cancel := context.WithCancelCause(ctx)

	defer func(err *error) { cancel(*err) }(&err)

	source, err := t.read(ctx)
	if err != nil {
		return err
	}

	tokens, err := lang.ScanString(ctx, source, langOptionsFrom(ctx)...)
	if err != nil {
		return err
	}

	log.DebugContext(ctx, "scanned",
		slog.Int("tokens", len(tokens)),
		slog.String("format", t.Format.String()))

	err = lang.WriteTokens(ctx, t.writer(), tokens, t.Format, t.Indent, t.Trivia)
	if err != nil {
		return ErrWriteOutput.Wrap(err).With(slog.String("command", "tokens"))
	}

	return nil
}

// Parse prints the expression tree of an expression.
type Parse struct {
	Input  `embed:""`
	Output `embed:""`
}

// Run executes the parse command.
func (p *Parse) Run(ctx context.Context) (err error) {
	ctx, cancel := context.WithCancelCause(ctx)

	defer func(err *error) { cancel(*err) }(&err)

	source, err := p.read(ctx)
	if err != nil {
		return err
	}

	node, err := lang.ParseString(ctx, source, langOptionsFrom(ctx)...)
	if err != nil {
		return err
	}

	err = lang.WriteTree(ctx, p.writer(), node, p.Format, p.Indent)
	if err != nil {
		return ErrWriteOutput.Wrap(err).With(slog.String("command", "parse"))
	}

	return nil
}
