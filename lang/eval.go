package lang

import (
	"context"
	"log/slog"

	"github.com/expr-lang/expr"
	"github.com/expr-lang/expr/vm"

	"github.com/ardnew/spiral/lang/ast"
)

// ErrCompile reports that the infix form of a tree was rejected by expr-lang.
var ErrCompile = NewError("failed to compile expression")

// Evaluate computes the value of the tree rooted at n. The tree is rendered
// with [ast.Infix] and run by expr-lang, so the result is an int for trees
// of addition, subtraction and multiplication and a float64 once a division
// is involved.
func Evaluate(ctx context.Context, n ast.Node, opts ...Option) (any, error) {
	if n == nil {
		return nil, ErrEvaluate.Wrap(ErrParse)
	}

	if err := ctx.Err(); err != nil {
		return nil, ErrEvaluate.Wrap(err)
	}

	o := makeOptions(opts...)
	source := ast.Infix(n)

	program, err := expr.Compile(source)
	if err != nil {
		return nil, ErrCompile.Wrap(err).With(slog.String("source", source))
	}

	result, err := vm.Run(program, nil)
	if err != nil {
		return nil, ErrEvaluate.Wrap(err).With(slog.String("source", source))
	}

	o.logger.TraceContext(ctx, "evaluate complete",
		slog.String("source", source),
		slog.Any("result", result))

	return result, nil
}

// EvaluateString parses source and evaluates the resulting tree.
func EvaluateString(ctx context.Context, source string, opts ...Option) (any, error) {
	node, err := ParseString(ctx, source, opts...)
	if err != nil {
		return nil, err
	}

	return Evaluate(ctx, node, opts...)
}
