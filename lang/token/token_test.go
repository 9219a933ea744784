package token

import "testing"

func TestLookup(t *testing.T) {
	for i, word := range Keywords() {
		c, ok := Lookup(word)
		if !ok {
			t.Fatalf("Lookup(%q) not found", word)
		}

		if want := KeywordNamespace + Category(i); c != want {
			t.Errorf("Lookup(%q) = %v, want %v", word, c, want)
		}

		if !c.IsKeyword() {
			t.Errorf("%v.IsKeyword() = false", c)
		}
	}

	for _, word := range []string{"lets", "Let", "iff", "", "namespaces"} {
		if c, ok := Lookup(word); ok {
			t.Errorf("Lookup(%q) = %v, want not found", word, c)
		}
	}
}

func TestCategoryClasses(t *testing.T) {
	tests := []struct {
		cat        Category
		keyword    bool
		identifier bool
		literal    bool
		operator   bool
		trivia     bool
	}{
		{KeywordLet, true, false, false, false, false},
		{TypeID, false, true, false, false, false},
		{Float, false, false, true, false, false},
		{Flow, false, false, false, true, false},
		{LeftArrow, false, false, false, true, false},
		{Comma, false, false, false, false, false},
		{Whitespace, false, false, false, false, true},
		{Newline, false, false, false, false, true},
	}

	for _, tt := range tests {
		t.Run(tt.cat.String(), func(t *testing.T) {
			if got := tt.cat.IsKeyword(); got != tt.keyword {
				t.Errorf("IsKeyword() = %v, want %v", got, tt.keyword)
			}

			if got := tt.cat.IsIdentifier(); got != tt.identifier {
				t.Errorf("IsIdentifier() = %v, want %v", got, tt.identifier)
			}

			if got := tt.cat.IsLiteral(); got != tt.literal {
				t.Errorf("IsLiteral() = %v, want %v", got, tt.literal)
			}

			if got := tt.cat.IsOperator(); got != tt.operator {
				t.Errorf("IsOperator() = %v, want %v", got, tt.operator)
			}

			if got := tt.cat.IsTrivia(); got != tt.trivia {
				t.Errorf("IsTrivia() = %v, want %v", got, tt.trivia)
			}
		})
	}
}

func TestCategoryString(t *testing.T) {
	tests := map[Category]string{
		Invalid:      "Invalid",
		KeywordFalse: "KeywordFalse",
		DoublePlus:   "DoublePlus",
		Newline:      "Newline",
		Category(-1): "Category(-1)",
		Category(99): "Category(99)",
	}

	for c, want := range tests {
		if got := c.String(); got != want {
			t.Errorf("Category(%d).String() = %q, want %q", int(c), got, want)
		}
	}
}

func TestToken(t *testing.T) {
	tok := Token{
		Value:    "foo",
		LineText: "  foo",
		Category: VariableID,
		Begin:    8,
		End:      10,
		Line:     2,
		Column:   2,
	}

	if got := tok.Len(); got != 3 {
		t.Errorf("Len() = %d, want 3", got)
	}

	if got := tok.EndColumn(); got != 4 {
		t.Errorf("EndColumn() = %d, want 4", got)
	}

	if got, want := tok.String(), `VariableID "foo" @2:2`; got != want {
		t.Errorf("String() = %q, want %q", got, want)
	}
}

func TestJoin(t *testing.T) {
	tokens := []Token{
		{Value: "1", Category: Integer},
		{Value: " ", Category: Whitespace},
		{Value: "+", Category: Plus},
		{Value: "\n", Category: Newline},
		{Value: "2", Category: Integer},
	}

	if got, want := Join(tokens), "1 +\n2"; got != want {
		t.Errorf("Join() = %q, want %q", got, want)
	}

	if got := Join(nil); got != "" {
		t.Errorf("Join(nil) = %q, want empty", got)
	}
}
