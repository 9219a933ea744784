package lang

import (
	"context"
	"io"
	"log/slog"

	"github.com/klauspost/readahead"

	"github.com/ardnew/spiral/lang/ast"
	"github.com/ardnew/spiral/lang/lexer"
	"github.com/ardnew/spiral/lang/parser"
	"github.com/ardnew/spiral/lang/token"
	"github.com/ardnew/spiral/log"
)

// Option configures a single call into the package.
type Option func(*options)

type options struct {
	logger  log.Logger
	noCache bool
}

func makeOptions(opts ...Option) options {
	var o options

	for _, opt := range opts {
		opt(&o)
	}

	return o
}

// WithLogger sets the logger passed to the lexer and parser.
func WithLogger(logger log.Logger) Option {
	return func(o *options) { o.logger = logger }
}

// WithCache enables or disables the token cache. It is enabled by default.
func WithCache(enable bool) Option {
	return func(o *options) { o.noCache = !enable }
}

// ScanString tokenizes source.
func ScanString(ctx context.Context, source string, opts ...Option) ([]token.Token, error) {
	o := makeOptions(opts...)

	return o.scan(ctx, source)
}

// ParseString tokenizes and parses source as one expression.
func ParseString(ctx context.Context, source string, opts ...Option) (ast.Node, error) {
	o := makeOptions(opts...)

	tokens, err := o.scan(ctx, source)
	if err != nil {
		return nil, err
	}

	node, err := parser.New(parser.WithLogger(o.logger)).Parse(ctx, tokens)
	if err != nil {
		return nil, ErrParse.Wrap(err).With(slog.Int("source_runes", len([]rune(source))))
	}

	return node, nil
}

// ReadSource reads all of r through an asynchronous read-ahead buffer.
func ReadSource(ctx context.Context, r io.Reader, opts ...Option) (string, error) {
	o := makeOptions(opts...)

	ra := readahead.NewReader(r)
	defer ra.Close()

	data, err := io.ReadAll(ra)
	if err != nil {
		return "", ErrReadInput.Wrap(err)
	}

	o.logger.TraceContext(ctx, "read input",
		slog.Int("source_bytes", len(data)),
		slog.Bool("read_ahead", true))

	return string(data), nil
}

// ScanReader tokenizes everything read from r.
func ScanReader(ctx context.Context, r io.Reader, opts ...Option) ([]token.Token, error) {
	source, err := ReadSource(ctx, r, opts...)
	if err != nil {
		return nil, err
	}

	return ScanString(ctx, source, opts...)
}

// ParseReader parses everything read from r as one expression.
func ParseReader(ctx context.Context, r io.Reader, opts ...Option) (ast.Node, error) {
	source, err := ReadSource(ctx, r, opts...)
	if err != nil {
		return nil, err
	}

	return ParseString(ctx, source, opts...)
}

// scan runs the lexer, consulting the cache unless it is disabled.
func (o options) scan(ctx context.Context, source string) ([]token.Token, error) {
	lx := lexer.New(lexer.WithLogger(o.logger))

	run := func() ([]token.Token, error) {
		tokens, err := lx.Scan(ctx, source)
		if err != nil {
			return nil, ErrScan.Wrap(err).With(slog.Int("source_runes", len([]rune(source))))
		}

		return tokens, nil
	}

	if o.noCache {
		o.logger.TraceContext(ctx, "cache bypass")

		return run()
	}

	return cached(ctx, o.logger, source, run)
}
