/*
File    : lox-go/resolver/resolve_stmt.go
Author  : Akash Maji
Contact : akashmaji(@iisc.ac.in)
*/
package resolver

import (
	"github.com/akashmaji946/lox-go/ast"
	"github.com/akashmaji946/lox-go/token"
)

func (r *Resolver) resolveStmt(s ast.Stmt) {
	_ = s.AcceptStmt(r)
}

func (r *Resolver) VisitBlockStmt(s *ast.BlockStmt) error {
	r.pushScope()
	for _, stmt := range s.Stmts {
		r.resolveStmt(stmt)
	}
	r.popScope()
	return nil
}

func (r *Resolver) VisitEmptyStmt(s *ast.EmptyStmt) error { return nil }

func (r *Resolver) VisitExpressionStmt(s *ast.ExpressionStmt) error {
	r.resolveExpr(s.Expr)
	return nil
}

// VisitFunctionStmt declares and defines the function's own name
// immediately (enabling recursive self-reference), then resolves
// parameters and body in a fresh scope, matching
// original_source/src/resolver.rs's resolve_function.
func (r *Resolver) VisitFunctionStmt(s *ast.FunctionStmt) error {
	r.declare(s.Name)
	r.define(s.Name)
	r.resolveFunction(s.Params, s.Body)
	return nil
}

func (r *Resolver) resolveFunction(params []token.Token, body []ast.Stmt) {
	r.pushScope()
	for _, param := range params {
		r.declare(param)
		r.define(param)
	}
	for _, stmt := range body {
		r.resolveStmt(stmt)
	}
	r.popScope()
}

func (r *Resolver) VisitIfStmt(s *ast.IfStmt) error {
	r.resolveExpr(s.Cond)
	r.resolveStmt(s.Then)
	r.resolveStmt(s.Else)
	return nil
}

func (r *Resolver) VisitPrintStmt(s *ast.PrintStmt) error {
	r.resolveExpr(s.Expr)
	return nil
}

func (r *Resolver) VisitReturnStmt(s *ast.ReturnStmt) error {
	r.resolveExpr(s.Value)
	return nil
}

// VisitVarStmt implements the two-phase declare/resolve/define sequence:
// the initializer is resolved before the name becomes visible, so a
// self-referential initializer is caught by VisitVariableExpr.
func (r *Resolver) VisitVarStmt(s *ast.VarStmt) error {
	r.declare(s.Name)
	r.resolveExpr(s.Initializer)
	r.define(s.Name)
	return nil
}

func (r *Resolver) VisitWhileStmt(s *ast.WhileStmt) error {
	r.resolveExpr(s.Cond)
	r.resolveStmt(s.Body)
	return nil
}
