package lexer

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/ardnew/spiral/lang/diag"
	"github.com/ardnew/spiral/lang/token"
)

type lexeme struct {
	cat   token.Category
	value string
}

func scanLexemes(t *testing.T, input string) []lexeme {
	t.Helper()

	tokens, err := Scan(input)
	if err != nil {
		t.Fatalf("Scan(%q) error: %v", input, err)
	}

	out := make([]lexeme, len(tokens))
	for i, tok := range tokens {
		out[i] = lexeme{tok.Category, tok.Value}
	}

	return out
}

func expectLexemes(t *testing.T, input string, want ...lexeme) {
	t.Helper()

	got := scanLexemes(t, input)
	if len(got) != len(want) {
		t.Fatalf("Scan(%q) = %v, want %v", input, got, want)
	}

	for i := range want {
		if got[i] != want[i] {
			t.Errorf("Scan(%q)[%d] = %v, want %v", input, i, got[i], want[i])
		}
	}
}

func expectFailure(t *testing.T, input string, kind diag.Kind) *diag.Diagnostic {
	t.Helper()

	tokens, err := Scan(input)
	if err == nil {
		t.Fatalf("Scan(%q) = %v, want %v", input, tokens, kind)
	}

	if tokens != nil {
		t.Errorf("Scan(%q) returned %d tokens with error", input, len(tokens))
	}

	if !errors.Is(err, kind) {
		t.Fatalf("Scan(%q) error = %v, want kind %v", input, err, kind)
	}

	var d *diag.Diagnostic
	if !errors.As(err, &d) {
		t.Fatalf("Scan(%q) error %T is not a diagnostic", input, err)
	}

	if d.Begin > d.End {
		t.Errorf("Scan(%q) diagnostic span [%d, %d] inverted", input, d.Begin, d.End)
	}

	return d
}

func TestSingleCharacters(t *testing.T) {
	tests := map[string]token.Category{
		"[": token.LeftSquareBracket,
		"]": token.RightSquareBracket,
		"(": token.LeftBracket,
		")": token.RightBracket,
		"{": token.LeftCurlyBracket,
		"}": token.RightCurlyBracket,
		"_": token.Underscore,
		",": token.Comma,
		":": token.Colon,
		"-": token.Dash,
		"/": token.ForwardSlash,
		"*": token.Star,
		"^": token.Caret,
		".": token.Period,
		"<": token.LessThan,
		">": token.GreaterThan,
		"=": token.Equals,
		"!": token.Not,
		"+": token.Plus,
	}

	for input, cat := range tests {
		t.Run(input, func(t *testing.T) {
			expectLexemes(t, input, lexeme{cat, input})
		})
	}
}

func TestLookaheadOperators(t *testing.T) {
	tests := []struct {
		input string
		want  []lexeme
	}{
		{"<=", []lexeme{{token.LessThanEquals, "<="}}},
		{"<-", []lexeme{{token.LeftArrow, "<-"}}},
		{"<<", []lexeme{{token.LessThan, "<"}, {token.LessThan, "<"}}},
		{"< -", []lexeme{{token.LessThan, "<"}, {token.Whitespace, " "}, {token.Dash, "-"}}},
		{">=", []lexeme{{token.GreaterThanEquals, ">="}}},
		{">-", []lexeme{{token.GreaterThan, ">"}, {token.Dash, "-"}}},
		{"||", []lexeme{{token.Or, "||"}}},
		{"|>", []lexeme{{token.Flow, "|>"}}},
		{"&&", []lexeme{{token.And, "&&"}}},
		{"==", []lexeme{{token.DoubleEquals, "=="}}},
		{"===", []lexeme{{token.DoubleEquals, "=="}, {token.Equals, "="}}},
		{"=1", []lexeme{{token.Equals, "="}, {token.Integer, "1"}}},
		{"!=", []lexeme{{token.NotEquals, "!="}}},
		{"!a", []lexeme{{token.Not, "!"}, {token.VariableID, "a"}}},
		{"++", []lexeme{{token.DoublePlus, "++"}}},
		{"+++", []lexeme{{token.DoublePlus, "++"}, {token.Plus, "+"}}},
		{"+1", []lexeme{{token.Plus, "+"}, {token.Integer, "1"}}},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			expectLexemes(t, tt.input, tt.want...)
		})
	}
}

func TestUnknownOperator(t *testing.T) {
	for _, input := range []string{"|", "| ", "|a", "&", "&|", "a & b"} {
		t.Run(input, func(t *testing.T) {
			d := expectFailure(t, input, diag.UnknownOperator)

			col := strings.IndexAny(input, "|&")
			if d.Begin != col || d.End != col {
				t.Errorf("span = [%d, %d], want [%d, %d]", d.Begin, d.End, col, col)
			}
		})
	}
}

func TestWords(t *testing.T) {
	for _, word := range token.Keywords() {
		t.Run(word, func(t *testing.T) {
			cat, _ := token.Lookup(word)
			expectLexemes(t, word, lexeme{cat, word})
		})
	}

	tests := []struct {
		input string
		want  []lexeme
	}{
		{"x", []lexeme{{token.VariableID, "x"}}},
		{"lets", []lexeme{{token.VariableID, "lets"}}},
		{"iff", []lexeme{{token.VariableID, "iff"}}},
		{"inX", []lexeme{{token.VariableID, "inX"}}},
		{"name:", []lexeme{{token.FieldID, "name:"}}},
		{"let:", []lexeme{{token.FieldID, "let:"}}},
		{"a:b", []lexeme{{token.FieldID, "a:"}, {token.VariableID, "b"}}},
		{"a::", []lexeme{{token.FieldID, "a:"}, {token.Colon, ":"}}},
		{"let x", []lexeme{
			{token.KeywordLet, "let"},
			{token.Whitespace, " "},
			{token.VariableID, "x"},
		}},
		{"Map", []lexeme{{token.FunctionID, "Map"}}},
		{"MapAll", []lexeme{{token.FunctionID, "MapAll"}}},
		{"M1", []lexeme{{token.FunctionID, "M"}, {token.Integer, "1"}}},
		{"x1", []lexeme{{token.VariableID, "x"}, {token.Integer, "1"}}},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			expectLexemes(t, tt.input, tt.want...)
		})
	}
}

func TestNumbers(t *testing.T) {
	expectLexemes(t, "42", lexeme{token.Integer, "42"})
	expectLexemes(t, "0", lexeme{token.Integer, "0"})
	expectLexemes(t, "3.14", lexeme{token.Float, "3.14"})
	expectLexemes(t, "3.", lexeme{token.Float, "3."})
	expectLexemes(t, "1+2",
		lexeme{token.Integer, "1"},
		lexeme{token.Plus, "+"},
		lexeme{token.Integer, "2"},
	)

	d := expectFailure(t, "3.14.6", diag.MultiplePeriods)
	if d.Begin != 0 || d.End != 0 {
		t.Errorf("span = [%d, %d], want [0, 0]", d.Begin, d.End)
	}

	d = expectFailure(t, "x = 1..2", diag.MultiplePeriods)
	if d.Begin != 4 {
		t.Errorf("Begin = %d, want 4", d.Begin)
	}
}

func TestSigilIdentifiers(t *testing.T) {
	expectLexemes(t, "#Type", lexeme{token.TypeID, "#Type"})
	expectLexemes(t, "#TypeName", lexeme{token.TypeID, "#TypeName"})
	expectLexemes(t, "@Core", lexeme{token.NamespaceID, "@Core"})
	expectLexemes(t, "#T(",
		lexeme{token.TypeID, "#T"},
		lexeme{token.LeftBracket, "("},
	)

	tests := []struct {
		input      string
		begin, end int
	}{
		{"#", 0, 0},
		{"@", 0, 0},
		{"#type", 0, 1},
		{"@core", 0, 1},
		{"#1", 0, 1},
		{"x #", 2, 2},
		{"#\n", 0, 0},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			d := expectFailure(t, tt.input, diag.MustStartCapital)
			if d.Begin != tt.begin || d.End != tt.end {
				t.Errorf("span = [%d, %d], want [%d, %d]", d.Begin, d.End, tt.begin, tt.end)
			}
		})
	}
}

func TestQuotedLiterals(t *testing.T) {
	expectLexemes(t, `'c'`, lexeme{token.Char, `'c'`})
	expectLexemes(t, `''`, lexeme{token.Char, `''`})
	expectLexemes(t, `"hello world"`, lexeme{token.String, `"hello world"`})
	expectLexemes(t, `"a\"b"`, lexeme{token.String, `"a\"b"`})
	expectLexemes(t, `'\''`, lexeme{token.Char, `'\''`})
	expectLexemes(t, `"it's"`, lexeme{token.String, `"it's"`})
	expectLexemes(t, `'"'`, lexeme{token.Char, `'"'`})
	expectLexemes(t, `"a" "b"`,
		lexeme{token.String, `"a"`},
		lexeme{token.Whitespace, " "},
		lexeme{token.String, `"b"`},
	)

	for _, input := range []string{`"unclosed`, `'c`, `'`, `"`, `"a\"`} {
		t.Run(input, func(t *testing.T) {
			d := expectFailure(t, input, diag.UnterminatedLiteral)

			last := len([]rune(input)) - 1
			if d.Begin != 0 || d.End != last {
				t.Errorf("span = [%d, %d], want [0, %d]", d.Begin, d.End, last)
			}
		})
	}
}

func TestUnrecognizedCharacter(t *testing.T) {
	tests := []struct {
		input  string
		line   int
		column int
	}{
		{"$", 1, 0},
		{"1 $ 2", 1, 2},
		{"\t", 1, 0},
		{"a;", 1, 1},
		{"1 +\n  ~", 2, 2},
		{"é", 1, 0},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			d := expectFailure(t, tt.input, diag.UnrecognizedCharacter)

			if d.Line != tt.line || d.Begin != tt.column || d.End != tt.column {
				t.Errorf("got L%d [%d, %d], want L%d [%d, %d]",
					d.Line, d.Begin, d.End, tt.line, tt.column, tt.column)
			}
		})
	}
}

func TestTrivia(t *testing.T) {
	expectLexemes(t, "   ", lexeme{token.Whitespace, "   "})
	expectLexemes(t, "\n\r\n", lexeme{token.Newline, "\n\r\n"})
	expectLexemes(t, "1 \n 2",
		lexeme{token.Integer, "1"},
		lexeme{token.Whitespace, " "},
		lexeme{token.Newline, "\n"},
		lexeme{token.Whitespace, " "},
		lexeme{token.Integer, "2"},
	)
}

func TestLocations(t *testing.T) {
	tokens, err := Scan("let x\n\n  foo + 12\nbar")
	if err != nil {
		t.Fatal(err)
	}

	type loc struct {
		value      string
		begin, end int
		line, col  int
		lineText   string
	}

	want := []loc{
		{"let", 0, 2, 1, 0, "let x"},
		{" ", 3, 3, 1, 3, "let x"},
		{"x", 4, 4, 1, 4, "let x"},
		{"\n\n", 5, 6, 1, 5, "let x"},
		{"  ", 7, 8, 3, 0, "  foo + 12"},
		{"foo", 9, 11, 3, 2, "  foo + 12"},
		{" ", 12, 12, 3, 5, "  foo + 12"},
		{"+", 13, 13, 3, 6, "  foo + 12"},
		{" ", 14, 14, 3, 7, "  foo + 12"},
		{"12", 15, 16, 3, 8, "  foo + 12"},
		{"\n", 17, 17, 3, 10, "  foo + 12"},
		{"bar", 18, 20, 4, 0, "bar"},
	}

	if len(tokens) != len(want) {
		t.Fatalf("got %d tokens, want %d: %v", len(tokens), len(want), tokens)
	}

	for i, w := range want {
		tok := tokens[i]
		got := loc{tok.Value, tok.Begin, tok.End, tok.Line, tok.Column, tok.LineText}

		if got != w {
			t.Errorf("token %d = %+v, want %+v", i, got, w)
		}
	}
}

func TestRuneOffsets(t *testing.T) {
	tokens, err := Scan(`"héllo" x`)
	if err != nil {
		t.Fatal(err)
	}

	if n := len(tokens); n != 3 {
		t.Fatalf("got %d tokens, want 3", n)
	}

	if tokens[0].End != 6 {
		t.Errorf("string End = %d, want 6", tokens[0].End)
	}

	if x := tokens[2]; x.Begin != 8 || x.Column != 8 {
		t.Errorf("x at Begin %d Column %d, want 8", x.Begin, x.Column)
	}
}

func TestEmptyInput(t *testing.T) {
	tokens, err := Scan("")
	if err != nil {
		t.Fatalf("Scan(\"\") error: %v", err)
	}

	if len(tokens) != 0 {
		t.Errorf("Scan(\"\") = %v, want none", tokens)
	}
}

func TestAllStopsEarly(t *testing.T) {
	count := 0

	for tok, err := range New().All(context.Background(), "a b c d") {
		if err != nil {
			t.Fatal(err)
		}

		count++

		if tok.Value == "b" {
			break
		}
	}

	if count != 3 {
		t.Errorf("iterated %d tokens, want 3", count)
	}
}

func TestAllYieldsFailureOnce(t *testing.T) {
	var (
		tokens int
		errs   int
	)

	for _, err := range New().All(context.Background(), "1 + $ 2") {
		if err != nil {
			errs++

			continue
		}

		tokens++
	}

	if tokens != 4 || errs != 1 {
		t.Errorf("got %d tokens and %d errors, want 4 and 1", tokens, errs)
	}
}

func TestRoundTrip(t *testing.T) {
	inputs := []string{
		"namespace @Core exposing (Map, #List)",
		"let x = 3.14 in x |> Round",
		"record <- { name: \"n\", age: 3 }",
		"if a <= b && !c || d != e then 'x' else \"y\"",
		"[1, 2, 3] ++ [4]\r\n\n  _ -> 2 ^ 8 / 4 * 2 - 1",
		"match v when true: 1 when false: 0",
	}

	for _, input := range inputs {
		tokens, err := Scan(input)
		if err != nil {
			t.Fatalf("Scan(%q) error: %v", input, err)
		}

		if got := token.Join(tokens); got != input {
			t.Errorf("Join(Scan(%q)) = %q", input, got)
		}

		again, err := Scan(token.Join(tokens))
		if err != nil || len(again) != len(tokens) {
			t.Errorf("rescan of %q: %d tokens, err %v", input, len(again), err)
		}
	}
}

func FuzzScan(f *testing.F) {
	for _, seed := range []string{
		"1 + 2 * 3",
		"(1 - 2) / -3",
		"let name: #Type = @Ns",
		"'a' \"b\\\"c\" 3.5",
		"a\n\r\nb <- c |> D",
		"3.1.4",
		"|",
	} {
		f.Add(seed)
	}

	f.Fuzz(func(t *testing.T, input string) {
		tokens, err := Scan(input)
		if err != nil {
			var d *diag.Diagnostic
			if !errors.As(err, &d) {
				t.Fatalf("error %T is not a diagnostic", err)
			}

			if d.Begin > d.End {
				t.Fatalf("inverted span [%d, %d]", d.Begin, d.End)
			}

			return
		}

		if got := token.Join(tokens); got != input {
			t.Fatalf("Join = %q, want %q", got, input)
		}

		next := 0
		for _, tok := range tokens {
			if tok.Begin != next || tok.End < tok.Begin {
				t.Fatalf("token %v not contiguous at %d", tok, next)
			}

			next = tok.End + 1
		}
	})
}

func BenchmarkScan(b *testing.B) {
	input := strings.Repeat("let total = (price + 12) * 3 / rate |> Round\n", 64)
	l := New()
	ctx := context.Background()

	b.ReportAllocs()

	for b.Loop() {
		if _, err := l.Scan(ctx, input); err != nil {
			b.Fatal(err)
		}
	}
}
