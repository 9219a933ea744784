package ast

import "strings"

// Infix renders n as fully parenthesized source text. Every interior node is
// wrapped in brackets, so the result parses back to an equal tree:
//
//	BinaryOp(+, 1, BinaryOp(*, 2, 3))  =>  (1 + (2 * 3))
//	UnaryOp(-, 3)                      =>  (-3)
func Infix(n Node) string {
	var sb strings.Builder

	writeInfix(&sb, n)

	return sb.String()
}

func writeInfix(sb *strings.Builder, n Node) {
	switch n := n.(type) {
	case *IntegerLiteral:
		sb.WriteString(n.Tok.Value)
	case *UnaryOp:
		sb.WriteByte('(')
		sb.WriteString(n.Op.Value)
		writeInfix(sb, n.Operand)
		sb.WriteByte(')')
	case *BinaryOp:
		sb.WriteByte('(')
		writeInfix(sb, n.Left)
		sb.WriteByte(' ')
		sb.WriteString(n.Op.Value)
		sb.WriteByte(' ')
		writeInfix(sb, n.Right)
		sb.WriteByte(')')
	}
}

// ToNative converts n into maps and strings suitable for JSON or YAML
// encoding. Each node becomes a map with a "kind" key naming its variant.
// Leaves carry "value"; interior nodes carry "op" and their operands under
// "operand" or "left" and "right".
func ToNative(n Node) any {
	switch n := n.(type) {
	case *IntegerLiteral:
		return map[string]any{
			"kind":  "IntegerLiteral",
			"value": n.Tok.Value,
		}
	case *UnaryOp:
		return map[string]any{
			"kind":    "UnaryOp",
			"op":      n.Op.Value,
			"operand": ToNative(n.Operand),
		}
	case *BinaryOp:
		return map[string]any{
			"kind":  "BinaryOp",
			"op":    n.Op.Value,
			"left":  ToNative(n.Left),
			"right": ToNative(n.Right),
		}
	default:
		return nil
	}
}
