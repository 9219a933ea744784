// Package token defines the lexemes produced by the spiral lexer.
//
// A [Token] couples the exact text of a lexeme with its [Category] and the
// location it was read from. Offsets are Unicode scalar (rune) indices, not
// byte offsets, so column arithmetic on the containing line is direct.
package token

//go:generate go tool stringer --type Category --output category_string.go

import (
	"strconv"
	"strings"
)

// Category classifies a [Token].
type Category int

const (
	// Invalid is the zero Category. The lexer never produces it.
	Invalid Category = iota

	KeywordNamespace
	KeywordExposing
	KeywordImport
	KeywordLet
	KeywordIn
	KeywordIf
	KeywordElse
	KeywordMatch
	KeywordWhen
	KeywordTrue
	KeywordFalse

	NamespaceID
	FunctionID
	TypeID
	FieldID
	VariableID

	Integer
	Float
	Char
	String

	LeftSquareBracket
	RightSquareBracket
	LeftBracket
	RightBracket
	LeftCurlyBracket
	RightCurlyBracket
	Underscore
	Comma
	Colon

	Or
	And
	LessThan
	GreaterThan
	LessThanEquals
	GreaterThanEquals
	Not
	Equals
	NotEquals
	DoubleEquals
	DoublePlus
	Flow
	Plus
	Dash
	ForwardSlash
	Star
	Caret
	Period
	LeftArrow

	Whitespace
	Newline
)

// keywords maps each reserved word to its category.
var keywords = map[string]Category{
	"namespace": KeywordNamespace,
	"exposing":  KeywordExposing,
	"import":    KeywordImport,
	"let":       KeywordLet,
	"in":        KeywordIn,
	"if":        KeywordIf,
	"else":      KeywordElse,
	"match":     KeywordMatch,
	"when":      KeywordWhen,
	"true":      KeywordTrue,
	"false":     KeywordFalse,
}

// Lookup returns the keyword category of word, if word is reserved.
// Only an exact match is a keyword: "lets" and "Let" are not.
func Lookup(word string) (Category, bool) {
	c, ok := keywords[word]

	return c, ok
}

// Keywords returns the reserved words in declaration order.
func Keywords() []string {
	return []string{
		"namespace", "exposing", "import", "let", "in",
		"if", "else", "match", "when", "true", "false",
	}
}

// IsKeyword reports whether c is one of the reserved-word categories.
func (c Category) IsKeyword() bool {
	return c >= KeywordNamespace && c <= KeywordFalse
}

// IsIdentifier reports whether c is one of the identifier classes.
func (c Category) IsIdentifier() bool {
	return c >= NamespaceID && c <= VariableID
}

// IsLiteral reports whether c is a numeric, character or string literal.
func (c Category) IsLiteral() bool {
	return c >= Integer && c <= String
}

// IsOperator reports whether c is an operator category.
func (c Category) IsOperator() bool {
	return c >= Or && c <= LeftArrow
}

// IsTrivia reports whether c carries no grammatical meaning.
func (c Category) IsTrivia() bool {
	return c == Whitespace || c == Newline
}

// Token is a classified lexeme with its source location.
//
// Begin and End are inclusive rune offsets into the whole input, so a
// single-character token has Begin == End. Line is 1-based and names the line
// containing Begin; LineText is that entire line without its terminator, and
// Column is the zero-based rune offset of Begin within LineText.
type Token struct {
	Value    string
	LineText string
	Category Category
	Begin    int
	End      int
	Line     int
	Column   int
}

// Len returns the number of runes spanned by t.
func (t Token) Len() int { return t.End - t.Begin + 1 }

// EndColumn returns the zero-based column of the last rune of t, relative to
// LineText. For tokens that cross a line break the result may exceed the
// length of LineText.
func (t Token) EndColumn() int { return t.Column + t.End - t.Begin }

// String returns a compact debugging form such as `Integer "42" @1:0`.
func (t Token) String() string {
	var sb strings.Builder

	sb.WriteString(t.Category.String())
	sb.WriteByte(' ')
	sb.WriteString(strconv.Quote(t.Value))
	sb.WriteString(" @")
	sb.WriteString(strconv.Itoa(t.Line))
	sb.WriteByte(':')
	sb.WriteString(strconv.Itoa(t.Column))

	return sb.String()
}

// Join concatenates the values of tokens in order. For any slice produced by
// the lexer this reproduces the scanned input exactly.
func Join(tokens []Token) string {
	var sb strings.Builder

	for _, t := range tokens {
		sb.WriteString(t.Value)
	}

	return sb.String()
}
