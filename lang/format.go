package lang

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"iter"
	"slices"
	"strings"

	"github.com/goccy/go-yaml"

	"github.com/ardnew/spiral/lang/ast"
	"github.com/ardnew/spiral/lang/token"
)

// Format selects how tokens and trees are written.
type Format int

// Output formats.
const (
	FormatText Format = iota
	FormatJSON
	FormatYAML
	FormatInfix
)

// DefaultFormat is the output format used when none is given.
const DefaultFormat = FormatText

// ErrFormat reports an unknown format or one that does not apply to the
// value being written.
var ErrFormat = NewError("invalid output format")

var formatNames = [...]string{
	FormatText:  "text",
	FormatJSON:  "json",
	FormatYAML:  "yaml",
	FormatInfix: "infix",
}

// Formats returns every output format in order.
func Formats() iter.Seq[Format] {
	return func(yield func(Format) bool) {
		for f := range Format(len(formatNames)) {
			if !yield(f) {
				return
			}
		}
	}
}

// FormatNames returns the names of every output format.
func FormatNames() []string { return slices.Clone(formatNames[:]) }

func (f Format) String() string {
	if f >= 0 && int(f) < len(formatNames) {
		return formatNames[f]
	}

	return fmt.Sprintf("Format(%d)", int(f))
}

// MarshalText implements encoding.TextMarshaler.
func (f Format) MarshalText() ([]byte, error) { return []byte(f.String()), nil }

// UnmarshalText implements encoding.TextUnmarshaler.
func (f *Format) UnmarshalText(text []byte) error {
	name := strings.ToLower(strings.TrimSpace(string(text)))
	if name == "repr" {
		name = formatNames[FormatText]
	}

	i := slices.Index(formatNames[:], name)
	if i < 0 {
		return ErrFormat.Wrap(fmt.Errorf("%q (want one of %s)",
			text, strings.Join(formatNames[:], ", ")))
	}

	*f = Format(i)

	return nil
}

// WriteTokens writes tokens to w in format f. The text format writes one
// token per line. Trivia is written only when trivia is set. Indent applies
// to JSON and YAML; zero selects compact output.
func WriteTokens(
	ctx context.Context,
	w io.Writer,
	tokens []token.Token,
	f Format,
	indent int,
	trivia bool,
) error {
	switch f {
	case FormatText:
		for _, t := range tokens {
			if !trivia && t.Category.IsTrivia() {
				continue
			}

			if _, err := fmt.Fprintln(w, t.String()); err != nil {
				return err
			}
		}

		return nil

	case FormatJSON:
		return writeJSON(w, TokensToNative(tokens, trivia), indent)

	case FormatYAML:
		return writeYAML(ctx, w, TokensToNative(tokens, trivia), indent)

	case FormatInfix:
		_, err := fmt.Fprintln(w, token.Join(tokens))

		return err
	}

	return ErrFormat.Wrap(fmt.Errorf("%s", f))
}

// WriteTree writes the tree rooted at n to w in format f. The text format
// writes the nested constructor form and the infix format writes fully
// parenthesized source text.
func WriteTree(ctx context.Context, w io.Writer, n ast.Node, f Format, indent int) error {
	switch f {
	case FormatText:
		if n == nil {
			_, err := fmt.Fprintln(w)

			return err
		}

		_, err := fmt.Fprintln(w, n.String())

		return err

	case FormatJSON:
		return writeJSON(w, TreeToNative(n), indent)

	case FormatYAML:
		return writeYAML(ctx, w, TreeToNative(n), indent)

	case FormatInfix:
		_, err := fmt.Fprintln(w, ast.Infix(n))

		return err
	}

	return ErrFormat.Wrap(fmt.Errorf("%s", f))
}

func writeJSON(w io.Writer, v any, indent int) error {
	var (
		data []byte
		err  error
	)

	if indent > 0 {
		data, err = json.MarshalIndent(v, "", strings.Repeat(" ", indent))
	} else {
		data, err = json.Marshal(v)
	}

	if err != nil {
		return err
	}

	_, err = fmt.Fprintln(w, string(data))

	return err
}

func writeYAML(ctx context.Context, w io.Writer, v any, indent int) error {
	var opts []yaml.EncodeOption
	if indent > 0 {
		opts = append(opts, yaml.Indent(indent))
	} else {
		opts = append(opts, yaml.Flow(true))
	}

	data, err := yaml.MarshalContext(ctx, v, opts...)
	if err != nil {
		return err
	}

	_, err = fmt.Fprint(w, string(data))

	return err
}
