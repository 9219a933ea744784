package lexer

import (
	"github.com/ardnew/spiral/lang/diag"
	"github.com/ardnew/spiral/lang/token"
)

// cursor is the mutable scan state threaded through every rule.
//
// pos always indexes the next unconsumed rune: a rule starts with pos on its
// first rune and returns with pos one past the last rune it consumed.
type cursor struct {
	input  []rune
	lines  []string // text of each line, without terminator
	starts []int    // rune offset of the first rune of each line
	pos    int
	line   int // 1-based line containing pos
}

// mark records where a token began.
type mark struct {
	pos  int
	line int
}

func newCursor(input string) *cursor {
	c := &cursor{
		input: []rune(input),
		line:  1,
	}

	// Every '\n' and '\r' terminates a line, matching the line counter that
	// advance keeps.
	start := 0

	for i, r := range c.input {
		if isNewline(r) {
			c.lines = append(c.lines, string(c.input[start:i]))
			c.starts = append(c.starts, start)
			start = i + 1
		}
	}

	c.lines = append(c.lines, string(c.input[start:]))
	c.starts = append(c.starts, start)

	return c
}

func (c *cursor) eof() bool { return c.pos >= len(c.input) }

// peek returns the next unconsumed rune.
func (c *cursor) peek() (rune, bool) {
	if c.eof() {
		return 0, false
	}

	return c.input[c.pos], true
}

// previous returns the most recently consumed rune.
func (c *cursor) previous() rune {
	if c.pos == 0 {
		return 0
	}

	return c.input[c.pos-1]
}

// advance consumes one rune, counting line breaks as it goes.
func (c *cursor) advance() {
	if c.eof() {
		return
	}

	if isNewline(c.input[c.pos]) {
		c.line++
	}

	c.pos++
}

// advanceWhile consumes runes for as long as pred holds.
func (c *cursor) advanceWhile(pred func(rune) bool) {
	for r, ok := c.peek(); ok && pred(r); r, ok = c.peek() {
		c.advance()
	}
}

func (c *cursor) mark() mark { return mark{pos: c.pos, line: c.line} }

func (c *cursor) lineText(line int) string {
	if line < 1 || line > len(c.lines) {
		return ""
	}

	return c.lines[line-1]
}

// column converts an absolute rune offset into a column of the given line.
func (c *cursor) column(pos, line int) int {
	if line < 1 || line > len(c.starts) {
		return pos
	}

	return pos - c.starts[line-1]
}

// text returns the runes consumed since m.
func (c *cursor) text(m mark) string { return string(c.input[m.pos:c.pos]) }

// emit builds a token from everything consumed since m.
func (c *cursor) emit(cat token.Category, m mark) token.Token {
	return token.Token{
		Value:    c.text(m),
		LineText: c.lineText(m.line),
		Category: cat,
		Begin:    m.pos,
		End:      c.pos - 1,
		Line:     m.line,
		Column:   c.column(m.pos, m.line),
	}
}

// fail builds a diagnostic spanning absolute offsets m.pos through end, on
// the line where m was taken. A span running past that line is cut at its
// last column.
func (c *cursor) fail(
	kind diag.Kind,
	m mark,
	end int,
	message, help string,
) *diag.Diagnostic {
	text := c.lineText(m.line)
	begin := c.column(m.pos, m.line)
	last := c.column(end, m.line)

	if n := len([]rune(text)); last >= n {
		last = max(begin, n-1)
	}

	return diag.New(kind, message).
		WithHelp(help).
		Span(m.line, text, begin, last)
}

func isNewline(r rune) bool { return r == '\n' || r == '\r' }

func isSpace(r rune) bool { return r == ' ' }

func isUpper(r rune) bool { return r >= 'A' && r <= 'Z' }

func isLower(r rune) bool { return r >= 'a' && r <= 'z' }

func isLetter(r rune) bool { return isUpper(r) || isLower(r) }

func isDigit(r rune) bool { return r >= '0' && r <= '9' }
