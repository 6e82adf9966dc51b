/*
File    : parselatex/ast/builders.go

Constructors for Node values. The parser never builds a Node by writing
struct literals directly (save for a few leaf conveniences); it goes
through these functions so the arity invariants of spec §3 are enforced
in exactly one place.
*/
package ast

// None returns the canonical empty-parse result (spec §7: "An empty input
// is not an error: expr() returns a canonical NONE node.").
func None() *Node {
	return &Node{Op: OpNone}
}

// Num builds a numeric leaf. lexeme must already be the canonical,
// separator-normalized numeric string (spec §3).
func Num(lexeme string, format NumberFormat) *Node {
	return &Node{Op: OpNum, Payload: lexeme, NumberFormat: format}
}

// Var builds an identifier leaf.
func Var(name string) *Node {
	return &Node{Op: OpVar, Payload: name}
}

// Text builds a \text{...}/\operatorname{...} leaf.
func Text(content string) *Node {
	return &Node{Op: OpText, Payload: content}
}

// Unary builds a one-argument node, e.g. SUB, ABS, PERCENT, PAREN.
func Unary(op Op, child *Node) *Node {
	checkArity(op, []*Node{child})
	return &Node{Op: op, Children: []*Node{child}}
}

// Binary builds a two-argument node without flattening. Used for FRAC,
// SUBSCRIPT, POW, and any binary relation/equality pair.
func Binary(op Op, left, right *Node) *Node {
	checkArity(op, []*Node{left, right})
	return &Node{Op: op, Children: []*Node{left, right}}
}

// Nary builds an n-ary node from children as given, with no flattening.
// Used for COMMA-of-zero (empty braces), MATRIX rows/cols, and any place
// that has already assembled its own child list.
func Nary(op Op, children ...*Node) *Node {
	checkArity(op, children)
	return &Node{Op: op, Children: children}
}

// FlattenBinary builds a binary node for a flattenable operator (ADD,
// MUL, COMMA), absorbing either operand's children into the result when
// that operand already has the same Op and no competing bracket context
// of its own — the "n-ary flattening...is permitted and is requested at
// construction" behavior of spec §3.
//
// flatten lets the caller (additiveExpr, under Options.CompareGrouping)
// suppress flattening without duplicating this merge logic at each call
// site.
func FlattenBinary(op Op, left, right *Node, flatten bool) *Node {
	if !flattenableOps[op] {
		return Binary(op, left, right)
	}
	if !flatten {
		return &Node{Op: op, Children: []*Node{left, right}}
	}
	var children []*Node
	children = append(children, flattenOperand(op, left)...)
	children = append(children, flattenOperand(op, right)...)
	checkArity(op, children)
	return &Node{Op: op, Children: children}
}

// flattenOperand expands operand into the slice of children it
// contributes to a flattened n-ary node: its own children if it shares
// op and carries no bracket context, otherwise itself as a single child.
func flattenOperand(op Op, operand *Node) []*Node {
	if operand.Op == op && !operand.hasBracketContext() {
		return operand.Children
	}
	return []*Node{operand}
}
