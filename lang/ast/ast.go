// Package ast defines the expression tree built by the parser.
//
// A tree is made of three node variants: [*IntegerLiteral] leaves, and
// [*UnaryOp] and [*BinaryOp] interior nodes that own their operands. Every
// node keeps a copy of the token it was built from. Trees are never shared
// and are not modified after parsing.
package ast

import (
	"iter"
	"strings"

	"github.com/ardnew/spiral/lang/token"
)

// Node is a node of an expression tree. The set of implementations is closed.
type Node interface {
	// Token returns the token that produced the node: the literal for a leaf,
	// the operator for an interior node.
	Token() token.Token
	// String returns the debugging form, e.g. "BinaryOp(+, 1, 2)".
	String() string

	node()
}

// IntegerLiteral is an integer leaf.
type IntegerLiteral struct {
	Tok token.Token
}

// UnaryOp applies a prefix operator to one operand.
type UnaryOp struct {
	Operand Node
	Op      token.Token
}

// BinaryOp applies an infix operator to two operands.
type BinaryOp struct {
	Left  Node
	Right Node
	Op    token.Token
}

// NewInteger returns a leaf for tok.
func NewInteger(tok token.Token) *IntegerLiteral { return &IntegerLiteral{Tok: tok} }

// NewUnary returns op applied to operand.
func NewUnary(op token.Token, operand Node) *UnaryOp {
	return &UnaryOp{Op: op, Operand: operand}
}

// NewBinary returns op applied to left and right.
func NewBinary(op token.Token, left, right Node) *BinaryOp {
	return &BinaryOp{Op: op, Left: left, Right: right}
}

func (n *IntegerLiteral) Token() token.Token { return n.Tok }
func (n *UnaryOp) Token() token.Token        { return n.Op }
func (n *BinaryOp) Token() token.Token       { return n.Op }

func (*IntegerLiteral) node() {}
func (*UnaryOp) node()        {}
func (*BinaryOp) node()       {}

// Value returns the literal text, e.g. "42".
func (n *IntegerLiteral) Value() string { return n.Tok.Value }

func (n *IntegerLiteral) String() string { return n.Tok.Value }

func (n *UnaryOp) String() string {
	var sb strings.Builder

	sb.WriteString("UnaryOp(")
	sb.WriteString(n.Op.Value)
	sb.WriteString(", ")
	sb.WriteString(n.Operand.String())
	sb.WriteByte(')')

	return sb.String()
}

func (n *BinaryOp) String() string {
	var sb strings.Builder

	sb.WriteString("BinaryOp(")
	sb.WriteString(n.Op.Value)
	sb.WriteString(", ")
	sb.WriteString(n.Left.String())
	sb.WriteString(", ")
	sb.WriteString(n.Right.String())
	sb.WriteByte(')')

	return sb.String()
}

// Children returns the direct operands of n, left to right.
func Children(n Node) []Node {
	switch n := n.(type) {
	case *UnaryOp:
		return []Node{n.Operand}
	case *BinaryOp:
		return []Node{n.Left, n.Right}
	default:
		return nil
	}
}

// Walk visits n and its descendants in pre-order. When visit returns false
// the children of that node are skipped.
func Walk(n Node, visit func(Node) bool) {
	if n == nil || !visit(n) {
		return
	}

	for _, child := range Children(n) {
		Walk(child, visit)
	}
}

// All returns a pre-order iterator over n and its descendants.
func All(n Node) iter.Seq[Node] {
	return func(yield func(Node) bool) {
		all(n, yield)
	}
}

func all(n Node, yield func(Node) bool) bool {
	if n == nil {
		return true
	}

	if !yield(n) {
		return false
	}

	for _, child := range Children(n) {
		if !all(child, yield) {
			return false
		}
	}

	return true
}

// Count returns the number of nodes in the tree rooted at n.
func Count(n Node) int {
	count := 0

	for range All(n) {
		count++
	}

	return count
}

// Depth returns the number of nodes on the longest root-to-leaf path.
func Depth(n Node) int {
	if n == nil {
		return 0
	}

	depth := 0
	for _, child := range Children(n) {
		depth = max(depth, Depth(child))
	}

	return depth + 1
}
