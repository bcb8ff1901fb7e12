/*
File    : lox-go/resolver/resolve_expr.go
Author  : Akash Maji
Contact : akashmaji(@iisc.ac.in)
*/
package resolver

import "github.com/akashmaji946/lox-go/ast"

func (r *Resolver) resolveExpr(e ast.Expr) {
	// AcceptExpr's (any, error) return is the evaluator's shape; the
	// resolver has nothing useful to put in either slot.
	_, _ = e.AcceptExpr(r)
}

func (r *Resolver) VisitAssignExpr(e *ast.AssignExpr) (any, error) {
	r.resolveExpr(e.Value)
	r.resolveLocal(e, e.Name.Lexeme)
	return nil, nil
}

func (r *Resolver) VisitBinaryExpr(e *ast.BinaryExpr) (any, error) {
	r.resolveExpr(e.Left)
	r.resolveExpr(e.Right)
	return nil, nil
}

func (r *Resolver) VisitCallExpr(e *ast.CallExpr) (any, error) {
	r.resolveExpr(e.Callee)
	for _, arg := range e.Args {
		r.resolveExpr(arg)
	}
	return nil, nil
}

func (r *Resolver) VisitGroupingExpr(e *ast.GroupingExpr) (any, error) {
	r.resolveExpr(e.Inner)
	return nil, nil
}

func (r *Resolver) VisitLiteralExpr(e *ast.LiteralExpr) (any, error) {
	return nil, nil
}

func (r *Resolver) VisitLogicalExpr(e *ast.LogicalExpr) (any, error) {
	r.resolveExpr(e.Left)
	r.resolveExpr(e.Right)
	return nil, nil
}

func (r *Resolver) VisitUnaryExpr(e *ast.UnaryExpr) (any, error) {
	r.resolveExpr(e.Right)
	return nil, nil
}

// VisitVariableExpr resolves a name read. Reading a name whose entry is
// still `false` in the innermost scope means the initializer references
// its own not-yet-defined binding (spec.md §4.3 / §8 scenario table).
func (r *Resolver) VisitVariableExpr(e *ast.VariableExpr) (any, error) {
	if len(r.scopes) > 0 {
		if defined, ok := r.scopes[len(r.scopes)-1][e.Name.Lexeme]; ok && !defined {
			r.errorAt(e.Name, "Can't read local variable in its own initializer.")
		}
	}
	r.resolveLocal(e, e.Name.Lexeme)
	return nil, nil
}
