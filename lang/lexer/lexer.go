// Package lexer converts spiral source text into tokens.
//
// Scanning runs left to right over runes. At each position the current rune
// is offered to an ordered list of rules (sigil identifiers, literals,
// punctuation, operators, trivia, words and numbers); the first rule that
// matches consumes the lexeme. A rune no rule accepts, or a lexeme a rule
// rejects, stops the scan with a [diag.Diagnostic]. Nothing is skipped, so
// joining the values of the returned tokens reproduces the input.
package lexer

import (
	"context"
	"fmt"
	"iter"
	"log/slog"

	"github.com/ardnew/spiral/lang/diag"
	"github.com/ardnew/spiral/lang/token"
	"github.com/ardnew/spiral/log"
)

// Lexer scans source text. A Lexer holds no per-scan state and may be used
// by multiple goroutines.
type Lexer struct {
	logger log.Logger
	rules  []rule
}

// Option configures a [Lexer].
type Option func(*Lexer)

// WithLogger sets the logger that receives trace records.
func WithLogger(logger log.Logger) Option {
	return func(l *Lexer) { l.logger = logger }
}

// New returns a Lexer with the default rule set.
func New(opts ...Option) *Lexer {
	l := &Lexer{rules: rules}

	for _, opt := range opts {
		opt(l)
	}

	return l
}

// Scan tokenizes input with a default [Lexer].
func Scan(input string) ([]token.Token, error) {
	return New().Scan(context.Background(), input)
}

// Scan tokenizes all of input. On failure it returns the first diagnostic
// and no tokens.
func (l *Lexer) Scan(ctx context.Context, input string) ([]token.Token, error) {
	var tokens []token.Token

	for tok, err := range l.All(ctx, input) {
		if err != nil {
			return nil, err
		}

		tokens = append(tokens, tok)
	}

	l.logger.TraceContext(ctx, "scan complete",
		slog.Int("runes", len([]rune(input))),
		slog.Int("tokens", len(tokens)))

	return tokens, nil
}

// All returns an iterator over the tokens of input. A failure is yielded
// once, as a zero token with a non-nil error, and ends the sequence.
func (l *Lexer) All(ctx context.Context, input string) iter.Seq2[token.Token, error] {
	return func(yield func(token.Token, error) bool) {
		c := newCursor(input)

		for !c.eof() {
			tok, d := l.next(c)
			if d != nil {
				l.logger.TraceContext(ctx, "scan failed", slog.Any("diagnostic", d))
				yield(token.Token{}, d)

				return
			}

			if !yield(tok, nil) {
				return
			}
		}
	}
}

// next dispatches the rune under the cursor to the first matching rule.
func (l *Lexer) next(c *cursor) (token.Token, *diag.Diagnostic) {
	r, _ := c.peek()

	for _, rl := range l.rules {
		if !rl.matches(r) {
			continue
		}

		start := c.pos

		tok, d := rl.produce(r, c)
		if d == nil && c.pos <= start {
			panic("lexer: rule " + rl.name + " consumed no input")
		}

		return tok, d
	}

	m := c.mark()

	return token.Token{}, c.fail(diag.UnrecognizedCharacter, m, m.pos,
		fmt.Sprintf("Unknown character: %q", r),
		"Remove the character or replace it with a valid token")
}
