package cmd

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/ardnew/spiral/lang"
)

// Eval evaluates an expression and prints its value.
type Eval struct {
	Input `embed:""`

	out io.Writer
}

// Run executes the eval command.
func (e *Eval) Run(ctx context.Context) (err error) {
	ctx, cancel := context.WithCancelCause(ctx)

	defer func(err *error) { cancel(*err) }(&err)

	source, err := e.read(ctx)
	if err != nil {
		return err
	}

	result, err := lang.EvaluateString(ctx, source, langOptionsFrom(ctx)...)
	if err != nil {
		return lang.WrapError(err).With(slog.String("command", "eval"))
	}

	out := e.out
	if out == nil {
		out = os.Stdout
	}

	if _, err := fmt.Fprintln(out, result); err != nil {
		return ErrWriteOutput.Wrap(err).With(slog.String("command", "eval"))
	}

	return nil
}
