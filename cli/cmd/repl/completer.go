package repl

import (
	"strings"
	"unicode/utf8"

	"github.com/charmbracelet/lipgloss"
	"github.com/sahilm/fuzzy"

	"github.com/ardnew/spiral/lang/token"
)

// ctrlCommands are the available control-mode commands.
var ctrlCommands = []string{"help", "tokens", "tree", "format", "clear", "quit"}

// formatArgs completes the argument of the format command.
var formatArgs = []string{"text", "json", "yaml", "infix"}

// isWordBoundary reports whether r separates words for completion. Operator
// and bracket characters of the language are boundaries, as is whitespace.
func isWordBoundary(r rune) bool {
	switch r {
	case ' ', '\t', '\n', '\r',
		'(', ')', '[', ']', '{', '}',
		'+', '-', '*', '/', '^', '<', '>', '=', '!',
		'&', '|', ',', ':', '.':
		return true
	}

	return false
}

// wordBounds returns the word at byte offset cursor of input and its byte
// boundaries. The word is empty when the cursor sits on a boundary.
func wordBounds(input string, cursor int) (word string, start, end int) {
	cursor = min(max(cursor, 0), len(input))

	start = cursor

	for start > 0 {
		r, size := utf8.DecodeLastRuneInString(input[:start])
		if isWordBoundary(r) {
			break
		}

		start -= size
	}

	end = cursor

	for end < len(input) {
		r, size := utf8.DecodeRuneInString(input[end:])
		if isWordBoundary(r) {
			break
		}

		end += size
	}

	return input[start:end], start, end
}

// candidatesFor returns the completion candidates for a word beginning at
// byte offset wordStart of input in mode.
func candidatesFor(mode inputMode, input string, wordStart int) []string {
	if mode == modeEval {
		return token.Keywords()
	}

	head := strings.Fields(input[:wordStart])
	if len(head) == 0 {
		return ctrlCommands
	}

	if head[0] == "format" && len(head) == 1 {
		return formatArgs
	}

	return nil
}

// computeMatches calculates the fuzzy match results for the word at the
// cursor, ranked best first, with the word boundaries. An empty word has no
// matches, so the hint line stays visible.
func (m model) computeMatches() (matches fuzzy.Matches, wordStart, wordEnd int) {
	input := m.input.Value()

	word, wordStart, wordEnd := wordBounds(input, m.input.Position())
	if word == "" {
		return nil, wordStart, wordEnd
	}

	candidates := candidatesFor(m.mode, input, wordStart)
	if len(candidates) == 0 {
		return nil, wordStart, wordEnd
	}

	return fuzzy.Find(word, candidates), wordStart, wordEnd
}

// renderCandidateBar builds the single-line completion bar, ellipsized to fit
// within width. The selected candidate (when tabbing) uses the selected
// style.
func renderCandidateBar(
	matches fuzzy.Matches,
	suggIdx int,
	tabActive bool,
	width int,
) string {
	if len(matches) == 0 || width <= 0 {
		return ""
	}

	const sep = "  "

	sepWidth := lipgloss.Width(sep)
	ellipsis := hintStyle.Render("...")
	ellipsisWidth := lipgloss.Width(ellipsis)

	var b strings.Builder

	used := 0

	for i, match := range matches {
		rendered := renderCandidate(match, tabActive && i == suggIdx)

		entryWidth := lipgloss.Width(rendered)
		if i > 0 {
			entryWidth += sepWidth
		}

		last := i == len(matches)-1
		if i > 0 && !(last && used+entryWidth <= width) &&
			used+entryWidth+sepWidth+ellipsisWidth > width {
			b.WriteString(sep)
			b.WriteString(ellipsis)

			break
		}

		if i > 0 {
			b.WriteString(sep)
		}

		b.WriteString(rendered)

		used += entryWidth
	}

	return b.String()
}

// renderCandidate renders a single candidate with matched characters
// highlighted.
func renderCandidate(match fuzzy.Match, selected bool) string {
	base, highlight := suggestionStyle, matchStyle
	if selected {
		base, highlight = selectedStyle, selectedMatchStyle
	}

	matched := make(map[int]bool, len(match.MatchedIndexes))
	for _, idx := range match.MatchedIndexes {
		matched[idx] = true
	}

	var b strings.Builder

	for i, r := range match.Str {
		if matched[i] {
			b.WriteString(highlight.Render(string(r)))
		} else {
			b.WriteString(base.Render(string(r)))
		}
	}

	return b.String()
}
