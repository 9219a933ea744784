// Package diag defines the structured errors reported by the spiral lexer
// and parser.
//
// A [Diagnostic] carries a message, an optional remediation hint and the
// source line it refers to, with an inclusive column span to underline.
// Rendering is a pure function of those fields:
//
//	Unclosed bracket
//
//	L1: (1 + 2
//	    ^^^^^^
//	Please close the bracket
//
// Every [Kind] is itself an error, so callers test the class of a failure
// with [errors.Is]:
//
//	if errors.Is(err, diag.UnclosedBracket) { ... }
package diag

//go:generate go tool stringer --type Kind --output kind_string.go

import (
	"log/slog"
	"strconv"
	"strings"

	"github.com/ardnew/spiral/lang/token"
)

// Kind classifies a [Diagnostic].
type Kind int

const (
	// Lexer failures.
	UnrecognizedCharacter Kind = iota + 1
	MustStartCapital
	UnterminatedLiteral
	MultiplePeriods
	UnknownOperator

	// Parser failures.
	ExpectedFactor
	UnknownFactor
	UnclosedBracket
	UnexpectedToken
)

// Error implements the error interface so that a Kind can be used as the
// target of [errors.Is].
func (k Kind) Error() string { return k.String() }

// IsLexical reports whether k is produced by the lexer.
func (k Kind) IsLexical() bool {
	return k >= UnrecognizedCharacter && k <= UnknownOperator
}

// IsSyntactic reports whether k is produced by the parser.
func (k Kind) IsSyntactic() bool {
	return k >= ExpectedFactor && k <= UnexpectedToken
}

// gutter is the width of the "L" prefix and ": " separator that precede the
// source line in rendered output.
const gutter = 3

// Diagnostic is a displayable error anchored to a span of one source line.
//
// Begin and End are inclusive, zero-based columns into LineText; Begin <= End
// always holds for values built by this package.
type Diagnostic struct {
	Message  string
	Help     string
	LineText string
	Kind     Kind
	Line     int
	Begin    int
	End      int
}

// New returns a Diagnostic of the given kind anchored to column 0 of line 1.
// Use [Diagnostic.Span] or [Diagnostic.AtToken] to place it.
func New(kind Kind, message string) *Diagnostic {
	return &Diagnostic{
		Kind:    kind,
		Message: message,
		Line:    1,
	}
}

// WithHelp returns a copy of d with the given remediation hint.
func (d *Diagnostic) WithHelp(help string) *Diagnostic {
	c := *d
	c.Help = help

	return &c
}

// Span returns a copy of d anchored to columns begin through end of the
// given source line. An end before begin is clamped to begin.
func (d *Diagnostic) Span(line int, lineText string, begin, end int) *Diagnostic {
	if begin < 0 {
		begin = 0
	}

	if end < begin {
		end = begin
	}

	c := *d
	c.Line = line
	c.LineText = lineText
	c.Begin = begin
	c.End = end

	return &c
}

// AtToken returns a copy of d spanning every column of t that lies on its
// starting line.
func (d *Diagnostic) AtToken(t token.Token) *Diagnostic {
	end := t.EndColumn()
	if n := len([]rune(t.LineText)); end >= n && n > 0 {
		end = n - 1
	}

	return d.Span(t.Line, t.LineText, t.Column, end)
}

// Width returns the number of marker characters drawn under the source line.
func (d *Diagnostic) Width() int { return d.End - d.Begin + 1 }

// Error implements the error interface with a single-line summary. Use
// [Diagnostic.Render] for the full excerpt.
func (d *Diagnostic) Error() string {
	return "L" + strconv.Itoa(d.Line) + ":" + strconv.Itoa(d.Begin) + ": " +
		d.Message
}

// Is reports whether target is the Kind of d.
func (d *Diagnostic) Is(target error) bool {
	k, ok := target.(Kind)

	return ok && k == d.Kind
}

// LogValue implements slog.LogValuer.
func (d *Diagnostic) LogValue() slog.Value {
	attrs := []slog.Attr{
		slog.String("kind", d.Kind.String()),
		slog.String("error", d.Message),
		slog.Int("line", d.Line),
		slog.Int("begin", d.Begin),
		slog.Int("end", d.End),
	}

	if d.Help != "" {
		attrs = append(attrs, slog.String("help", d.Help))
	}

	return slog.GroupValue(attrs...)
}

// Source returns the source excerpt line, "L{line}: {text}".
func (d *Diagnostic) Source() string {
	return "L" + strconv.Itoa(d.Line) + ": " + d.LineText
}

// Marker returns the underline drawn beneath [Diagnostic.Source].
func (d *Diagnostic) Marker() string {
	pad := d.Begin + gutter + len(strconv.Itoa(d.Line))

	return strings.Repeat(" ", pad) + strings.Repeat("^", d.Width())
}

// Render returns the four-part display block: message, a blank line, the
// source excerpt, the marker line, and the help text.
func (d *Diagnostic) Render() string {
	return d.Message + "\n\n" + d.Source() + "\n" + d.Marker() + "\n" + d.Help
}
