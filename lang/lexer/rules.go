package lexer

import (
	"fmt"

	"github.com/ardnew/spiral/lang/diag"
	"github.com/ardnew/spiral/lang/token"
)

// rule scans one family of lexemes. The lexer offers the current rune to
// each rule in order and the first whose matches reports true produces the
// token. produce is called with the cursor on the matched rune and must
// consume at least that rune.
type rule struct {
	name    string
	matches func(r rune) bool
	produce func(r rune, c *cursor) (token.Token, *diag.Diagnostic)
}

// follow pairs a lookahead rune with the category it selects.
type follow struct {
	next rune
	cat  token.Category
}

// rules is the scan priority order. Categories overlap (a lowercase letter
// may begin a keyword, a field or a variable) and the order resolves them.
var rules = []rule{
	prefixedID('#', token.TypeID, "Type"),
	prefixedID('@', token.NamespaceID, "Namespace"),
	quoted('\'', token.Char, "Char"),
	quoted('"', token.String, "String"),

	single('[', token.LeftSquareBracket),
	single(']', token.RightSquareBracket),
	single('(', token.LeftBracket),
	single(')', token.RightBracket),
	single('{', token.LeftCurlyBracket),
	single('}', token.RightCurlyBracket),
	single('_', token.Underscore),
	single(',', token.Comma),
	single(':', token.Colon),

	lookahead('<', token.LessThan,
		follow{'=', token.LessThanEquals},
		follow{'-', token.LeftArrow},
	),
	lookahead('>', token.GreaterThan,
		follow{'=', token.GreaterThanEquals},
	),
	strict('|', "Use '||' for a boolean or, or '|>' to pipe a value",
		follow{'|', token.Or},
		follow{'>', token.Flow},
	),
	strict('&', "Use '&&' for a boolean and",
		follow{'&', token.And},
	),
	lookahead('=', token.Equals,
		follow{'=', token.DoubleEquals},
	),
	lookahead('!', token.Not,
		follow{'=', token.NotEquals},
	),
	lookahead('+', token.Plus,
		follow{'+', token.DoublePlus},
	),

	single('-', token.Dash),
	single('/', token.ForwardSlash),
	single('*', token.Star),
	single('^', token.Caret),
	single('.', token.Period),

	run("whitespace", isSpace, token.Whitespace),
	run("newline", isNewline, token.Newline),

	{name: "function", matches: isUpper, produce: scanFunctionID},
	{name: "word", matches: isLower, produce: scanWord},
	{name: "number", matches: isDigit, produce: scanNumber},
}

func is(want rune) func(rune) bool {
	return func(r rune) bool { return r == want }
}

// single scans a fixed one-rune lexeme.
func single(ch rune, cat token.Category) rule {
	return rule{
		name:    string(ch),
		matches: is(ch),
		produce: func(_ rune, c *cursor) (token.Token, *diag.Diagnostic) {
			m := c.mark()
			c.advance()

			return c.emit(cat, m), nil
		},
	}
}

// lookahead scans ch, extended by one rune when that rune selects one of
// the follow categories. Otherwise only ch is consumed and alone is used.
func lookahead(ch rune, alone token.Category, next ...follow) rule {
	return rule{
		name:    string(ch),
		matches: is(ch),
		produce: func(_ rune, c *cursor) (token.Token, *diag.Diagnostic) {
			m := c.mark()
			c.advance()

			if cat, ok := selectFollow(c, next); ok {
				c.advance()

				return c.emit(cat, m), nil
			}

			return c.emit(alone, m), nil
		},
	}
}

// strict is lookahead for runes that are not operators on their own.
func strict(ch rune, help string, next ...follow) rule {
	return rule{
		name:    string(ch),
		matches: is(ch),
		produce: func(_ rune, c *cursor) (token.Token, *diag.Diagnostic) {
			m := c.mark()
			c.advance()

			cat, ok := selectFollow(c, next)
			if !ok {
				return token.Token{}, c.fail(diag.UnknownOperator, m, m.pos,
					fmt.Sprintf("Unknown operator: '%c'", ch), help)
			}

			c.advance()

			return c.emit(cat, m), nil
		},
	}
}

func selectFollow(c *cursor, next []follow) (token.Category, bool) {
	r, ok := c.peek()
	if !ok {
		return token.Invalid, false
	}

	for _, f := range next {
		if f.next == r {
			return f.cat, true
		}
	}

	return token.Invalid, false
}

// run scans a maximal run of runes satisfying pred as one token.
func run(name string, pred func(rune) bool, cat token.Category) rule {
	return rule{
		name:    name,
		matches: pred,
		produce: func(_ rune, c *cursor) (token.Token, *diag.Diagnostic) {
			m := c.mark()
			c.advanceWhile(pred)

			return c.emit(cat, m), nil
		},
	}
}

// prefixedID scans a sigil followed by a capitalized run of letters.
func prefixedID(sigil rune, cat token.Category, what string) rule {
	return rule{
		name:    string(sigil),
		matches: is(sigil),
		produce: func(_ rune, c *cursor) (token.Token, *diag.Diagnostic) {
			m := c.mark()
			help := fmt.Sprintf("Capitalize the first letter, e.g. %c%s", sigil, what)

			c.advance()

			r, ok := c.peek()
			if !ok {
				return token.Token{}, c.fail(diag.MustStartCapital, m, m.pos,
					fmt.Sprintf("'%c' must be followed by a capital letter", sigil), help)
			}

			if !isUpper(r) {
				return token.Token{}, c.fail(diag.MustStartCapital, m, c.pos,
					what+" must begin with capital letter", help)
			}

			c.advanceWhile(isLetter)

			return c.emit(cat, m), nil
		},
	}
}

// quoted scans a delimited literal. The closing delimiter is the first one
// not immediately preceded by a backslash; the token value keeps both
// delimiters.
func quoted(delim rune, cat token.Category, what string) rule {
	return rule{
		name:    string(delim),
		matches: is(delim),
		produce: func(_ rune, c *cursor) (token.Token, *diag.Diagnostic) {
			m := c.mark()
			c.advance()

			for {
				r, ok := c.peek()
				if !ok {
					return token.Token{}, c.fail(diag.UnterminatedLiteral, m, c.pos-1,
						what+" must be closed",
						fmt.Sprintf("Add a closing %c", delim))
				}

				escaped := c.previous() == '\\'

				c.advance()

				if r == delim && !escaped {
					return c.emit(cat, m), nil
				}
			}
		},
	}
}

func scanFunctionID(_ rune, c *cursor) (token.Token, *diag.Diagnostic) {
	m := c.mark()
	c.advanceWhile(isLetter)

	return c.emit(token.FunctionID, m), nil
}

// scanWord scans a lowercase run. A colon ends it at once as a field name;
// otherwise the run is a keyword or a variable.
func scanWord(_ rune, c *cursor) (token.Token, *diag.Diagnostic) {
	m := c.mark()

	for r, ok := c.peek(); ok && (isLetter(r) || r == ':'); r, ok = c.peek() {
		c.advance()

		if r == ':' {
			return c.emit(token.FieldID, m), nil
		}
	}

	if cat, ok := token.Lookup(c.text(m)); ok {
		return c.emit(cat, m), nil
	}

	return c.emit(token.VariableID, m), nil
}

// scanNumber scans digits with at most one period.
func scanNumber(_ rune, c *cursor) (token.Token, *diag.Diagnostic) {
	m := c.mark()
	period := false

	for r, ok := c.peek(); ok && (isDigit(r) || r == '.'); r, ok = c.peek() {
		if r == '.' {
			if period {
				return token.Token{}, c.fail(diag.MultiplePeriods, m, m.pos,
					"Number contains multiple periods",
					"Ensure the number has a maximum of one period")
			}

			period = true
		}

		c.advance()
	}

	if period {
		return c.emit(token.Float, m), nil
	}

	return c.emit(token.Integer, m), nil
}
