// Package parser builds expression trees from lexer tokens.
//
// The grammar, from lowest to highest precedence:
//
//	expression := term (('+' | '-') term)*
//	term       := factor (('*' | '/') factor)*
//	factor     := ('+' | '-') factor | Integer | '(' expression ')'
//
// Binary operators associate to the left and unary operators nest to the
// right. Whitespace and newline tokens are skipped. Tokens left over after
// the expression are ignored unless the Parser is made [WithStrict].
// Parsing stops at the first failure and reports it as a [diag.Diagnostic]; no partial tree is
// returned.
package parser

import (
	"context"
	"log/slog"

	"github.com/ardnew/spiral/lang/ast"
	"github.com/ardnew/spiral/lang/diag"
	"github.com/ardnew/spiral/lang/token"
	"github.com/ardnew/spiral/log"
)

// Parser parses token sequences. It holds no per-parse state.
type Parser struct {
	logger log.Logger
	strict bool
}

// Option configures a [Parser].
type Option func(*Parser)

// WithLogger sets the logger that receives trace records.
func WithLogger(logger log.Logger) Option {
	return func(p *Parser) { p.logger = logger }
}

// WithStrict makes tokens left over after the expression an
// [diag.UnexpectedToken] failure.
func WithStrict() Option {
	return func(p *Parser) { p.strict = true }
}

// New returns a Parser.
func New(opts ...Option) *Parser {
	p := &Parser{}

	for _, opt := range opts {
		opt(p)
	}

	return p
}

// Parse parses tokens with a default [Parser].
func Parse(tokens []token.Token) (ast.Node, error) {
	return New().Parse(context.Background(), tokens)
}

// Parse parses tokens as a single expression.
func (p *Parser) Parse(ctx context.Context, tokens []token.Token) (ast.Node, error) {
	s := &state{tokens: tokens}
	s.skipTrivia()

	root, d := s.expression()
	if d == nil && p.strict {
		if tok, ok := s.peek(); ok {
			d = diag.New(diag.UnexpectedToken, "Unexpected token: "+tok.Value).
				WithHelp("Join it to the expression with an operator, or remove it").
				AtToken(tok)
		}
	}

	if d != nil {
		p.logger.TraceContext(ctx, "parse failed",
			slog.Int("tokens", len(tokens)),
			slog.Any("diagnostic", d))

		return nil, d
	}

	p.logger.TraceContext(ctx, "parse complete",
		slog.Int("tokens", len(tokens)),
		slog.Int("nodes", ast.Count(root)))

	return root, nil
}

// state is the cursor over one token sequence.
type state struct {
	tokens []token.Token
	last   *token.Token // most recently consumed significant token
	pos    int
}

func (s *state) skipTrivia() {
	for s.pos < len(s.tokens) && s.tokens[s.pos].Category.IsTrivia() {
		s.pos++
	}
}

// peek returns the next significant token.
func (s *state) peek() (token.Token, bool) {
	if s.pos >= len(s.tokens) {
		return token.Token{}, false
	}

	return s.tokens[s.pos], true
}

// consume takes the next significant token and skips the trivia after it.
func (s *state) consume() token.Token {
	tok := s.tokens[s.pos]
	s.last = &s.tokens[s.pos]
	s.pos++
	s.skipTrivia()

	return tok
}

// accept consumes the next token if it has one of the given categories.
func (s *state) accept(cats ...token.Category) (token.Token, bool) {
	tok, ok := s.peek()
	if !ok {
		return token.Token{}, false
	}

	for _, cat := range cats {
		if tok.Category == cat {
			return s.consume(), true
		}
	}

	return token.Token{}, false
}

// anchor reports d at the last consumed token, or at fallback when nothing
// has been consumed yet.
func (s *state) anchor(d *diag.Diagnostic, fallback *token.Token) *diag.Diagnostic {
	switch {
	case s.last != nil:
		return d.AtToken(*s.last)
	case fallback != nil:
		return d.AtToken(*fallback)
	case len(s.tokens) > 0:
		return d.AtToken(s.tokens[len(s.tokens)-1])
	default:
		return d.Span(1, "", 0, 0)
	}
}

// binary parses operand (op operand)* folding to the left.
func (s *state) binary(
	operand func() (ast.Node, *diag.Diagnostic),
	ops ...token.Category,
) (ast.Node, *diag.Diagnostic) {
	left, d := operand()
	if d != nil {
		return nil, d
	}

	for {
		op, ok := s.accept(ops...)
		if !ok {
			return left, nil
		}

		right, d := operand()
		if d != nil {
			return nil, d
		}

		left = ast.NewBinary(op, left, right)
	}
}

func (s *state) expression() (ast.Node, *diag.Diagnostic) {
	return s.binary(s.term, token.Plus, token.Dash)
}

func (s *state) term() (ast.Node, *diag.Diagnostic) {
	return s.binary(s.factor, token.Star, token.ForwardSlash)
}

func (s *state) factor() (ast.Node, *diag.Diagnostic) {
	tok, ok := s.peek()
	if !ok {
		return nil, s.anchor(
			diag.New(diag.ExpectedFactor, "Expected a factor. Valid factors are: Int").
				WithHelp("Add an integer, a signed factor or a bracketed expression"),
			nil)
	}

	switch tok.Category {
	case token.Plus, token.Dash:
		op := s.consume()

		operand, d := s.factor()
		if d != nil {
			return nil, d
		}

		return ast.NewUnary(op, operand), nil

	case token.Integer:
		return ast.NewInteger(s.consume()), nil

	case token.LeftBracket:
		return s.group()

	default:
		return nil, s.anchor(
			diag.New(diag.UnknownFactor, "Unknown factor").
				WithHelp("Replace it with an integer or a bracketed expression"),
			&tok)
	}
}

// group parses a bracketed expression. A missing ')' is reported from the
// opening bracket through the last token read, cut at the end of the
// opening bracket's line.
func (s *state) group() (ast.Node, *diag.Diagnostic) {
	open := s.consume()

	inner, d := s.expression()
	if d != nil {
		return nil, d
	}

	if _, ok := s.accept(token.RightBracket); ok {
		return inner, nil
	}

	last := *s.last
	if tok, ok := s.peek(); ok {
		last = tok
	}

	end := open.EndColumn()
	if last.Line == open.Line {
		end = last.EndColumn()
	} else if n := len([]rune(open.LineText)); n > 0 {
		end = n - 1
	}

	if n := len([]rune(open.LineText)); end >= n && n > 0 {
		end = n - 1
	}

	return nil, diag.New(diag.UnclosedBracket, "Unclosed bracket").
		WithHelp("Please close the bracket").
		Span(open.Line, open.LineText, open.Column, end)
}
