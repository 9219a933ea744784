package diag

import (
	"bytes"
	"errors"
	"fmt"
	"log/slog"
	"strconv"
	"strings"
	"testing"

	"github.com/charmbracelet/lipgloss"

	"github.com/ardnew/spiral/lang/token"
)

func TestRender(t *testing.T) {
	tests := []struct {
		name string
		diag *Diagnostic
		want string
	}{
		{
			name: "single column",
			diag: New(UnrecognizedCharacter, "Unknown character: '$'").
				WithHelp("Remove the character").
				Span(1, "1 $ 2", 2, 2),
			want: "Unknown character: '$'\n\nL1: 1 $ 2\n      ^\nRemove the character",
		},
		{
			name: "wide span",
			diag: New(UnclosedBracket, "Unclosed bracket").
				WithHelp("Please close the bracket").
				Span(1, "(1 + 2", 0, 5),
			want: "Unclosed bracket\n\nL1: (1 + 2\n    ^^^^^^\nPlease close the bracket",
		},
		{
			name: "two digit line number",
			diag: New(MultiplePeriods, "Number contains multiple periods").
				Span(12, "x 3.1.4", 2, 2),
			want: "Number contains multiple periods\n\nL12: x 3.1.4\n       ^\n",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.diag.Render(); got != tt.want {
				t.Errorf("Render() =\n%s\nwant:\n%s", got, tt.want)
			}
		})
	}
}

func TestMarkerAlignment(t *testing.T) {
	for _, line := range []int{1, 9, 10, 99, 100, 12345} {
		d := New(UnknownFactor, "Unknown factor").Span(line, "abcdefgh", 3, 5)

		src := d.Source()
		marker := d.Marker()

		col := strings.Index(marker, "^")
		if got := src[col:][:3]; got != "def" {
			t.Errorf("line %d: marker under %q, want %q", line, got, "def")
		}

		if n := strings.Count(marker, "^"); n != d.Width() {
			t.Errorf("line %d: %d markers, want %d", line, n, d.Width())
		}
	}
}

func TestSpanClamp(t *testing.T) {
	d := New(ExpectedFactor, "m").Span(1, "abc", 2, 0)
	if d.Begin != 2 || d.End != 2 {
		t.Errorf("Span(2, 0) = [%d, %d], want [2, 2]", d.Begin, d.End)
	}

	d = New(ExpectedFactor, "m").Span(1, "abc", -4, 1)
	if d.Begin != 0 || d.End != 1 {
		t.Errorf("Span(-4, 1) = [%d, %d], want [0, 1]", d.Begin, d.End)
	}
}

func TestAtToken(t *testing.T) {
	tok := token.Token{
		Value:    "\n\n",
		LineText: "1 +",
		Category: token.Newline,
		Begin:    3,
		End:      4,
		Line:     1,
		Column:   3,
	}

	d := New(ExpectedFactor, "m").AtToken(tok)
	if d.Begin != 3 || d.End != 3 {
		t.Errorf("AtToken() = [%d, %d], want [3, 3]", d.Begin, d.End)
	}

	tok = token.Token{
		Value:    "foo",
		LineText: "let foo",
		Category: token.VariableID,
		Begin:    4,
		End:      6,
		Line:     1,
		Column:   4,
	}

	d = New(UnknownFactor, "m").AtToken(tok)
	if d.Begin != 4 || d.End != 6 || d.LineText != "let foo" {
		t.Errorf("AtToken() = %+v", d)
	}
}

func TestErrorsIs(t *testing.T) {
	d := New(UnclosedBracket, "Unclosed bracket").Span(2, "(1", 0, 1)
	err := fmt.Errorf("parse: %w", d)

	if !errors.Is(err, UnclosedBracket) {
		t.Error("errors.Is(err, UnclosedBracket) = false")
	}

	if errors.Is(err, UnknownFactor) {
		t.Error("errors.Is(err, UnknownFactor) = true")
	}

	var got *Diagnostic
	if !errors.As(err, &got) || got != d {
		t.Error("errors.As did not recover the diagnostic")
	}

	if want := "L2:0: Unclosed bracket"; d.Error() != want {
		t.Errorf("Error() = %q, want %q", d.Error(), want)
	}
}

func TestKind(t *testing.T) {
	lexical := []Kind{
		UnrecognizedCharacter, MustStartCapital, UnterminatedLiteral,
		MultiplePeriods, UnknownOperator,
	}
	syntactic := []Kind{ExpectedFactor, UnknownFactor, UnclosedBracket, UnexpectedToken}

	for _, k := range lexical {
		if !k.IsLexical() || k.IsSyntactic() {
			t.Errorf("%v: lexical=%v syntactic=%v", k, k.IsLexical(), k.IsSyntactic())
		}
	}

	for _, k := range syntactic {
		if k.IsLexical() || !k.IsSyntactic() {
			t.Errorf("%v: lexical=%v syntactic=%v", k, k.IsLexical(), k.IsSyntactic())
		}
	}

	for _, k := range []Kind{0, UnexpectedToken + 1} {
		if got, want := k.String(), "Kind("+strconv.Itoa(int(k))+")"; got != want {
			t.Errorf("Kind(%d).String() = %q, want %q", int(k), got, want)
		}
	}
}

func TestKindString(t *testing.T) {
	tests := []struct {
		kind Kind
		want string
	}{
		{UnrecognizedCharacter, "UnrecognizedCharacter"},
		{MustStartCapital, "MustStartCapital"},
		{UnterminatedLiteral, "UnterminatedLiteral"},
		{MultiplePeriods, "MultiplePeriods"},
		{UnknownOperator, "UnknownOperator"},
		{ExpectedFactor, "ExpectedFactor"},
		{UnknownFactor, "UnknownFactor"},
		{UnclosedBracket, "UnclosedBracket"},
		{UnexpectedToken, "UnexpectedToken"},
	}

	for _, tt := range tests {
		if got := tt.kind.String(); got != tt.want {
			t.Errorf("Kind(%d).String() = %q, want %q", int(tt.kind), got, tt.want)
		}

		if got := tt.kind.Error(); got != tt.want {
			t.Errorf("Kind(%d).Error() = %q, want %q", int(tt.kind), got, tt.want)
		}
	}
}

func TestLogValue(t *testing.T) {
	d := New(UnknownOperator, "Unknown operator: '|'").
		WithHelp("Use '||' or '|>'").
		Span(1, "a | b", 2, 2)

	v := d.LogValue()
	if v.Kind() != slog.KindGroup {
		t.Fatalf("LogValue().Kind() = %v, want group", v.Kind())
	}

	got := map[string]string{}
	for _, a := range v.Group() {
		got[a.Key] = a.Value.String()
	}

	want := map[string]string{
		"kind":  "UnknownOperator",
		"error": "Unknown operator: '|'",
		"line":  "1",
		"begin": "2",
		"end":   "2",
		"help":  "Use '||' or '|>'",
	}

	for k, w := range want {
		if got[k] != w {
			t.Errorf("attr %q = %q, want %q", k, got[k], w)
		}
	}
}

func TestRenderStyledPlain(t *testing.T) {
	d := New(UnclosedBracket, "Unclosed bracket").
		WithHelp("Please close the bracket").
		Span(1, "(1 + 2", 0, 5)

	if got, want := d.RenderStyled(PlainStyles()), d.Render(); got != want {
		t.Errorf("RenderStyled(PlainStyles()) =\n%s\nwant:\n%s", got, want)
	}
}

func TestRenderStyledLayout(t *testing.T) {
	d := New(ExpectedFactor, "Expected a factor. Valid factors are: Int").
		WithHelp("Add an integer, a signed factor or a bracketed expression").
		Span(2, "  +", 2, 2)

	got := d.RenderStyled(NewStyles(lipgloss.NewRenderer(&bytes.Buffer{})))

	if n, want := strings.Count(got, "\n"), strings.Count(d.Render(), "\n"); n != want {
		t.Errorf("styled render has %d line breaks, want %d:\n%s", n, want, got)
	}

	if !strings.Contains(got, "L2:   +") {
		t.Errorf("styled render lost the source line:\n%s", got)
	}
}
