// Package lang is the entry point to the spiral front end.
//
// It combines the [lexer] and [parser] packages into single calls that take
// source text and return tokens or an expression tree:
//
//	tokens, err := lang.ScanString(ctx, "let x = 1")
//	tree, err := lang.ParseString(ctx, "(1 + 2) * 3")
//
// Failures are [*Error] values wrapping the [diag.Diagnostic] that describes
// them, so both of these hold for a missing bracket:
//
//	errors.Is(err, lang.ErrParse)
//	errors.Is(err, diag.UnclosedBracket)
//
// # Caching
//
// Token sequences are cached by the xxh3 hash of their source text. Parsing
// the same text twice scans it once. [ClearCache] empties the cache and
// [WithCache] disables it per call.
//
// # Output
//
// Tokens and trees can be written as text, JSON or YAML, and a tree can be
// rendered back to fully parenthesized infix text. [Evaluate] computes the
// value of a tree by compiling its infix form with expr-lang; it exists for
// debugging the parser and follows expr-lang arithmetic, so integer division
// yields a float.
//
// [lexer]: github.com/ardnew/spiral/lang/lexer
// [parser]: github.com/ardnew/spiral/lang/parser
package lang
