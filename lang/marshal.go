package lang

import (
	"github.com/ardnew/spiral/lang/ast"
	"github.com/ardnew/spiral/lang/token"
)

// TokenToNative converts t to a map suitable for JSON or YAML encoding.
func TokenToNative(t token.Token) map[string]any {
	return map[string]any{
		"category": t.Category.String(),
		"value":    t.Value,
		"line":     t.Line,
		"column":   t.Column,
		"begin":    t.Begin,
		"end":      t.End,
	}
}

// TokensToNative converts tokens to a slice of maps, dropping trivia unless
// trivia is set.
func TokensToNative(tokens []token.Token, trivia bool) []any {
	result := make([]any, 0, len(tokens))

	for _, t := range tokens {
		if !trivia && t.Category.IsTrivia() {
			continue
		}

		result = append(result, TokenToNative(t))
	}

	return result
}

// TreeToNative converts the tree rooted at n to nested maps, and adds the
// summary keys "nodes" and "depth" at the root.
func TreeToNative(n ast.Node) map[string]any {
	root, ok := ast.ToNative(n).(map[string]any)
	if !ok {
		return map[string]any{"nodes": 0, "depth": 0}
	}

	return map[string]any{
		"tree":  root,
		"nodes": ast.Count(n),
		"depth": ast.Depth(n),
	}
}
