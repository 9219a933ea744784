package cmd

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"strings"
	"testing"

	"github.com/ardnew/spiral/lang"
	"github.com/ardnew/spiral/lang/diag"
)

func words(s string) []string { return strings.Fields(s) }

func TestTokensRun(t *testing.T) {
	tests := []struct {
		name   string
		source string
		format lang.Format
		trivia bool
		want   string
	}{
		{
			name:   "text",
			source: "1 + 2",
			format: lang.FormatText,
			want:   "Integer \"1\" @1:0\nPlus \"+\" @1:2\nInteger \"2\" @1:4\n",
		},
		{
			name:   "text_trivia",
			source: "1 + 2",
			format: lang.FormatText,
			trivia: true,
			want: "Integer \"1\" @1:0\nWhitespace \" \" @1:1\nPlus \"+\" @1:2\n" +
				"Whitespace \" \" @1:3\nInteger \"2\" @1:4\n",
		},
		{
			name:   "infix",
			source: "1 + 2",
			format: lang.FormatInfix,
			want:   "1 + 2\n",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer

			cmd := &Tokens{
				Input:  Input{Expr: words(tt.source)},
				Output: Output{Format: tt.format, Indent: 2, out: &buf},
				Trivia: tt.trivia,
			}

			if err := cmd.Run(context.Background()); err != nil {
				t.Fatalf("Run() error: %v", err)
			}

			if got := buf.String(); got != tt.want {
				t.Errorf("Run() output =\n%s\nwant\n%s", got, tt.want)
			}
		})
	}
}

func TestTokensRunJSON(t *testing.T) {
	var buf bytes.Buffer

	cmd := &Tokens{
		Input:  Input{Expr: []string{"12*x"}},
		Output: Output{Format: lang.FormatJSON, Indent: 2, out: &buf},
	}

	if err := cmd.Run(context.Background()); err != nil {
		t.Fatalf("Run() error: %v", err)
	}

	var got []map[string]any
	if err := json.Unmarshal(buf.Bytes(), &got); err != nil {
		t.Fatalf("output is not JSON: %v\n%s", err, buf.String())
	}

	if len(got) != 3 {
		t.Fatalf("decoded %d tokens, want 3", len(got))
	}

	if got[0]["category"] != "Integer" || got[0]["value"] != "12" {
		t.Errorf("first token = %v", got[0])
	}
}

func TestTokensRunScanError(t *testing.T) {
	var buf bytes.Buffer

	cmd := &Tokens{
		Input:  Input{Expr: []string{"1 + ~"}},
		Output: Output{Format: lang.FormatText, out: &buf},
	}

	err := cmd.Run(context.Background())
	if !errors.Is(err, diag.UnrecognizedCharacter) {
		t.Fatalf("Run() error = %v, want UnrecognizedCharacter", err)
	}

	if buf.Len() != 0 {
		t.Errorf("Run() wrote %q on failure", buf.String())
	}
}

func TestParseRun(t *testing.T) {
	tests := []struct {
		name   string
		source string
		format lang.Format
		want   string
	}{
		{
			name:   "text",
			source: "1 + 2 * 3",
			format: lang.FormatText,
			want:   "BinaryOp(+, 1, BinaryOp(*, 2, 3))\n",
		},
		{
			name:   "infix",
			source: "1 + 2 * 3",
			format: lang.FormatInfix,
			want:   "(1 + (2 * 3))\n",
		},
		{
			name:   "infix_unary",
			source: "-(1 - 2)",
			format: lang.FormatInfix,
			want:   "(-(1 - 2))\n",
		},
		{
			name:   "trailing",
			source: "1 2",
			format: lang.FormatText,
			want:   "1\n",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer

			cmd := &Parse{
				Input:  Input{Expr: words(tt.source)},
				Output: Output{Format: tt.format, Indent: 2, out: &buf},
			}

			if err := cmd.Run(context.Background()); err != nil {
				t.Fatalf("Run() error: %v", err)
			}

			if got := buf.String(); got != tt.want {
				t.Errorf("Run() output = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestParseRunJSON(t *testing.T) {
	var buf bytes.Buffer

	cmd := &Parse{
		Input:  Input{Expr: []string{"1 + 2"}},
		Output: Output{Format: lang.FormatJSON, Indent: 0, out: &buf},
	}

	if err := cmd.Run(context.Background()); err != nil {
		t.Fatalf("Run() error: %v", err)
	}

	var got map[string]any
	if err := json.Unmarshal(buf.Bytes(), &got); err != nil {
		t.Fatalf("output is not JSON: %v\n%s", err, buf.String())
	}

	if got["nodes"] != float64(3) || got["depth"] != float64(2) {
		t.Errorf("decoded tree = %v, want nodes 3 and depth 2", got)
	}
}

func TestParseRunDiagnostic(t *testing.T) {
	tests := []struct {
		source string
		kind   diag.Kind
	}{
		{"(1 + 2", diag.UnclosedBracket},
		{"1 +", diag.ExpectedFactor},
		{"(1 2", diag.UnclosedBracket},
	}

	for _, tt := range tests {
		t.Run(tt.source, func(t *testing.T) {
			var buf bytes.Buffer

			cmd := &Parse{
				Input:  Input{Expr: []string{tt.source}},
				Output: Output{Format: lang.FormatText, out: &buf},
			}

			err := cmd.Run(context.Background())
			if !errors.Is(err, tt.kind) {
				t.Fatalf("Run() error = %v, want %v", err, tt.kind)
			}

			if !errors.Is(err, lang.ErrParse) {
				t.Errorf("errors.Is(err, lang.ErrParse) = false for %v", err)
			}

			var out bytes.Buffer
			if !Report(&out, err, diag.PlainStyles()) {
				t.Fatal("Report() found no diagnostic")
			}

			var d *diag.Diagnostic
			if !errors.As(err, &d) {
				t.Fatal("errors.As(err, *diag.Diagnostic) = false")
			}

			if want := d.Render() + "\n"; out.String() != want {
				t.Errorf("Report() wrote\n%s\nwant\n%s", out.String(), want)
			}
		})
	}
}

func TestReportWithoutDiagnostic(t *testing.T) {
	var out bytes.Buffer

	if Report(&out, ErrWriteOutput.Wrap(errors.New("closed")), diag.PlainStyles()) {
		t.Error("Report() = true for an error without a diagnostic")
	}

	if out.Len() != 0 {
		t.Errorf("Report() wrote %q", out.String())
	}
}
