/*
File    : lox-go/ast/expr.go
Author  : Akash Maji
Contact : akashmaji(@iisc.ac.in)
*/

// Package ast defines the tagged expression and statement trees produced
// by the parser, plus the visitor interfaces used to walk them. Node
// identity (the pointer itself) is the key the resolver's depth side-table
// and the evaluator both use, per spec.md §3's "Expr" contract.
package ast

import (
	"github.com/akashmaji946/lox-go/token"
	"github.com/akashmaji946/lox-go/value"
)

// Expr is the interface every expression node implements. Each concrete
// type accepts an ExprVisitor, dispatching to the matching Visit method —
// the classic visitor pattern the teacher uses in parser/node.go, sized
// down to the expression shapes this language actually has.
type Expr interface {
	AcceptExpr(v ExprVisitor) (any, error)
}

// ExprVisitor is implemented by anything that walks expression trees: the
// resolver (to populate the depth side-table) and the evaluator (to
// produce values). The any/error result shape lets both share one
// interface even though the resolver discards its return value.
type ExprVisitor interface {
	VisitAssignExpr(e *AssignExpr) (any, error)
	VisitBinaryExpr(e *BinaryExpr) (any, error)
	VisitCallExpr(e *CallExpr) (any, error)
	VisitGroupingExpr(e *GroupingExpr) (any, error)
	VisitLiteralExpr(e *LiteralExpr) (any, error)
	VisitLogicalExpr(e *LogicalExpr) (any, error)
	VisitUnaryExpr(e *UnaryExpr) (any, error)
	VisitVariableExpr(e *VariableExpr) (any, error)
}

// AssignExpr is `name = value`. Only a bare identifier target is legal;
// the parser enforces that before building this node (spec.md §4.2).
type AssignExpr struct {
	Name  token.Token
	Value Expr
}

func (e *AssignExpr) AcceptExpr(v ExprVisitor) (any, error) { return v.VisitAssignExpr(e) }

// BinaryExpr is a two-operand arithmetic/comparison/equality expression:
// `left op right`. Both operands always evaluate, left before right.
type BinaryExpr struct {
	Left  Expr
	Op    token.Token
	Right Expr
}

func (e *BinaryExpr) AcceptExpr(v ExprVisitor) (any, error) { return v.VisitBinaryExpr(e) }

// CallExpr is `callee(args...)`. Paren is the closing-paren token, kept
// around purely so runtime errors ("can only call functions and classes")
// can be reported at a sensible source location.
type CallExpr struct {
	Callee Expr
	Paren  token.Token
	Args   []Expr
}

func (e *CallExpr) AcceptExpr(v ExprVisitor) (any, error) { return v.VisitCallExpr(e) }

// GroupingExpr is a parenthesized sub-expression: `(inner)`.
type GroupingExpr struct {
	Inner Expr
}

func (e *GroupingExpr) AcceptExpr(v ExprVisitor) (any, error) { return v.VisitGroupingExpr(e) }

// LiteralExpr wraps a compile-time constant value baked in by the parser:
// a number, string, boolean, or nil.
type LiteralExpr struct {
	Value value.Value
}

func (e *LiteralExpr) AcceptExpr(v ExprVisitor) (any, error) { return v.VisitLiteralExpr(e) }

// LogicalExpr is `left and right` / `left or right`. Kept distinct from
// BinaryExpr because it short-circuits: the right operand is evaluated
// only when the left operand's truthiness doesn't already decide the
// result (spec.md §4.5).
type LogicalExpr struct {
	Left  Expr
	Op    token.Token
	Right Expr
}

func (e *LogicalExpr) AcceptExpr(v ExprVisitor) (any, error) { return v.VisitLogicalExpr(e) }

// UnaryExpr is a prefix operator applied to a single operand: `!right` or
// `-right`.
type UnaryExpr struct {
	Op    token.Token
	Right Expr
}

func (e *UnaryExpr) AcceptExpr(v ExprVisitor) (any, error) { return v.VisitUnaryExpr(e) }

// VariableExpr reads a name from the environment. Name.Lexeme is the
// identifier text; the resolver's depth side-table is keyed on the
// *VariableExpr pointer itself.
type VariableExpr struct {
	Name token.Token
}

func (e *VariableExpr) AcceptExpr(v ExprVisitor) (any, error) { return v.VisitVariableExpr(e) }
