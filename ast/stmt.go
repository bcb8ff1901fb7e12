/*
File    : lox-go/ast/stmt.go
Author  : Akash Maji
Contact : akashmaji(@iisc.ac.in)
*/
package ast

import "github.com/akashmaji946/lox-go/token"

// Stmt is the interface every statement node implements.
type Stmt interface {
	AcceptStmt(v StmtVisitor) error
}

// StmtVisitor is implemented by the resolver and the evaluator to walk
// statement trees. Unlike ExprVisitor, statements never produce a value
// worth threading back through the visitor return — Return is modeled as
// a distinct signal type owned by the evaluator (spec.md §7), not as a
// visitor return value.
type StmtVisitor interface {
	VisitBlockStmt(s *BlockStmt) error
	VisitEmptyStmt(s *EmptyStmt) error
	VisitExpressionStmt(s *ExpressionStmt) error
	VisitFunctionStmt(s *FunctionStmt) error
	VisitIfStmt(s *IfStmt) error
	VisitPrintStmt(s *PrintStmt) error
	VisitReturnStmt(s *ReturnStmt) error
	VisitVarStmt(s *VarStmt) error
	VisitWhileStmt(s *WhileStmt) error
}

// EmptyStmt is a synthetic no-op statement, used for an omitted
// else-branch so IfStmt.Else is never a nil interface that callers must
// special-case.
type EmptyStmt struct{}

func (s *EmptyStmt) AcceptStmt(v StmtVisitor) error { return v.VisitEmptyStmt(s) }

// BlockStmt is `{ stmts... }`: a fresh lexical scope wrapping an ordered
// statement sequence.
type BlockStmt struct {
	Stmts []Stmt
}

func (s *BlockStmt) AcceptStmt(v StmtVisitor) error { return v.VisitBlockStmt(s) }

// ExpressionStmt evaluates an expression purely for its side effects and
// discards the result.
type ExpressionStmt struct {
	Expr Expr
}

func (s *ExpressionStmt) AcceptStmt(v StmtVisitor) error { return v.VisitExpressionStmt(s) }

// FunctionStmt declares a named function: `fun name(params) { body }`. It
// both defines a callable value and binds it under Name in the current
// scope.
type FunctionStmt struct {
	Name   token.Token
	Params []token.Token
	Body   []Stmt
}

func (s *FunctionStmt) AcceptStmt(v StmtVisitor) error { return v.VisitFunctionStmt(s) }

// IfStmt is `if (Cond) Then else Else`. Else is an *EmptyStmt, never nil,
// when the source omits an else-branch.
type IfStmt struct {
	Cond Expr
	Then Stmt
	Else Stmt
}

func (s *IfStmt) AcceptStmt(v StmtVisitor) error { return v.VisitIfStmt(s) }

// PrintStmt evaluates an expression and writes its display form plus a
// trailing newline to the interpreter's output stream.
type PrintStmt struct {
	Expr Expr
}

func (s *PrintStmt) AcceptStmt(v StmtVisitor) error { return v.VisitPrintStmt(s) }

// ReturnStmt unwinds to the nearest enclosing function call, carrying
// Value as the call's result. Keyword is the `return` token, kept for
// diagnostics.
type ReturnStmt struct {
	Keyword token.Token
	Value   Expr
}

func (s *ReturnStmt) AcceptStmt(v StmtVisitor) error { return v.VisitReturnStmt(s) }

// VarStmt declares a variable: `var Name = Initializer;`. The parser
// substitutes a `nil` LiteralExpr for Initializer when the source omits
// one, so Initializer is never nil.
type VarStmt struct {
	Name        token.Token
	Initializer Expr
}

func (s *VarStmt) AcceptStmt(v StmtVisitor) error { return v.VisitVarStmt(s) }

// WhileStmt is `while (Cond) Body`. The parser's for-loop desugaring
// (spec.md §4.2) lowers `for` into this node plus a wrapping BlockStmt, so
// the evaluator only ever needs to handle WhileStmt directly.
type WhileStmt struct {
	Cond Expr
	Body Stmt
}

func (s *WhileStmt) AcceptStmt(v StmtVisitor) error { return v.VisitWhileStmt(s) }
