/*
File    : lox-go/eval/eval_stmt.go
Author  : Akash Maji
Contact : akashmaji(@iisc.ac.in)
*/
package eval

import (
	"fmt"

	"github.com/akashmaji946/lox-go/ast"
	"github.com/akashmaji946/lox-go/value"
)

func (i *Interpreter) VisitEmptyStmt(s *ast.EmptyStmt) error { return nil }

func (i *Interpreter) VisitExpressionStmt(s *ast.ExpressionStmt) error {
	_, err := i.evaluate(s.Expr)
	return err
}

func (i *Interpreter) VisitPrintStmt(s *ast.PrintStmt) error {
	v, err := i.evaluate(s.Expr)
	if err != nil {
		return err
	}
	fmt.Fprintln(i.out, v.String())
	return nil
}

func (i *Interpreter) VisitVarStmt(s *ast.VarStmt) error {
	v, err := i.evaluate(s.Initializer)
	if err != nil {
		return err
	}
	i.Env.Define(s.Name.Lexeme, v)
	return nil
}

// VisitBlockStmt pushes a fresh scope, executes every statement in
// order, then pops it. A runtime error or return signal still unwinds
// through here; the deferred pop keeps the environment stack balanced
// regardless of how execution left the block (spec.md §8 property 7).
func (i *Interpreter) VisitBlockStmt(s *ast.BlockStmt) error {
	i.Env.PushScope()
	defer i.Env.PopScope()
	for _, stmt := range s.Stmts {
		if err := i.execute(stmt); err != nil {
			return err
		}
	}
	return nil
}

func (i *Interpreter) VisitIfStmt(s *ast.IfStmt) error {
	cond, err := i.evaluate(s.Cond)
	if err != nil {
		return err
	}
	if cond.Truthy() {
		return i.execute(s.Then)
	}
	return i.execute(s.Else)
}

func (i *Interpreter) VisitWhileStmt(s *ast.WhileStmt) error {
	for {
		cond, err := i.evaluate(s.Cond)
		if err != nil {
			return err
		}
		if !cond.Truthy() {
			return nil
		}
		if err := i.execute(s.Body); err != nil {
			return err
		}
	}
}

// VisitReturnStmt evaluates the return value and unwinds to the nearest
// enclosing function call via returnSignal (spec.md §7). Outside any
// function the signal is not caught and Interpret returns it as an error.
func (i *Interpreter) VisitReturnStmt(s *ast.ReturnStmt) error {
	v, err := i.evaluate(s.Value)
	if err != nil {
		return err
	}
	return &returnSignal{Value: v}
}

// VisitFunctionStmt builds a value.Callable closing over the function's
// params and body, then binds it under its own name in the current
// scope. Per spec.md §9's design note, closures are modeled as a
// per-call scope push over whatever scope is live at call time rather
// than a captured defining-scope snapshot — sufficient for every
// scenario spec.md §8 describes, since every callable here is declared
// and called through the same single environment stack.
func (i *Interpreter) VisitFunctionStmt(s *ast.FunctionStmt) error {
	params := s.Params
	body := s.Body
	name := s.Name.Lexeme

	fn := value.Callable{
		Name:  name,
		Arity: len(params),
		Call: func(caller value.Caller, args []value.Value) (value.Value, error) {
			interp, ok := caller.(*Interpreter)
			if !ok {
				panic("eval: Callable invoked by a non-*Interpreter Caller")
			}

			interp.Env.PushScope()
			defer interp.Env.PopScope()
			for idx, param := range params {
				interp.Env.Define(param.Lexeme, args[idx])
			}

			for _, stmt := range body {
				if err := interp.execute(stmt); err != nil {
					if ret, ok := asReturn(err); ok {
						return ret.Value, nil
					}
					return nil, err
				}
			}
			return value.NilValue, nil
		},
	}

	i.Env.Define(name, fn)
	return nil
}
