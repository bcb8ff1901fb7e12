/*
File    : lox-go/eval/interpreter.go
Author  : Akash Maji
Contact : akashmaji(@iisc.ac.in)
*/

// Package eval implements the tree-walking evaluator from spec.md §4.5:
// a mutually recursive interpreter over ast.Expr/ast.Stmt that executes
// statements against an environment.Environment, honoring lexical-scope
// semantics (via the resolver's depth side-table), short-circuit
// evaluation, truthiness, operator overloading on `+`, and function call
// frames. Grounded on the teacher's eval/evaluator.go top-level shape
// (an Evaluator struct wrapping scope + writer) and on
// original_source/src/interpreter.rs for the expression-dispatch shape,
// generalized to the full statement set and Return-as-signal scheme
// spec.md §7 and §9 call for.
package eval

import (
	"io"
	"os"

	"github.com/akashmaji946/lox-go/ast"
	"github.com/akashmaji946/lox-go/environment"
	"github.com/akashmaji946/lox-go/resolver"
	"github.com/akashmaji946/lox-go/value"
)

// Interpreter owns the single environment stack a program executes
// against and the resolver's depth side-table. It implements
// ast.ExprVisitor and ast.StmtVisitor, plus value.Caller so callables can
// re-enter it reentrantly (spec.md §5).
type Interpreter struct {
	Env    *environment.Environment
	depths resolver.Depths
	out    io.Writer
}

// New creates an Interpreter writing `print` output to out (os.Stdout if
// nil) with a fresh global scope carrying the single builtin clock().
func New(out io.Writer) *Interpreter {
	if out == nil {
		out = os.Stdout
	}
	interp := &Interpreter{Env: environment.New(), depths: make(resolver.Depths), out: out}
	installGlobals(interp.Env)
	return interp
}

// SetDepths installs the side-table produced by a resolver pass. Called
// once per program before Interpret.
func (i *Interpreter) SetDepths(d resolver.Depths) { i.depths = d }

// SetWriter redirects where Print statements write, matching the
// teacher's Evaluator.SetWriter used by the REPL to bind stdout per
// session.
func (i *Interpreter) SetWriter(w io.Writer) { i.out = w }

// Interpret executes each top-level statement in source order. A
// runtime error aborts the remaining statements and propagates to the
// caller (spec.md §4.5, §7).
func (i *Interpreter) Interpret(statements []ast.Stmt) error {
	for _, stmt := range statements {
		if err := i.execute(stmt); err != nil {
			return err
		}
	}
	return nil
}

func (i *Interpreter) execute(s ast.Stmt) error {
	return s.AcceptStmt(i)
}

func (i *Interpreter) evaluate(e ast.Expr) (value.Value, error) {
	v, err := e.AcceptExpr(i)
	if err != nil {
		return nil, err
	}
	return v.(value.Value), nil
}

// CallFunction implements value.Caller: arity is assumed already
// checked by the caller (VisitCallExpr checks it once, at the call
// site, so builtins re-entering another callable don't re-validate it).
func (i *Interpreter) CallFunction(c value.Callable, args []value.Value) (value.Value, error) {
	return c.Call(i, args)
}
