/*
File    : lox-go/eval/eval_expr.go
Author  : Akash Maji
Contact : akashmaji(@iisc.ac.in)
*/
package eval

import (
	"github.com/akashmaji946/lox-go/ast"
	"github.com/akashmaji946/lox-go/loxerr"
	"github.com/akashmaji946/lox-go/token"
	"github.com/akashmaji946/lox-go/value"
)

func (i *Interpreter) VisitLiteralExpr(e *ast.LiteralExpr) (any, error) {
	return e.Value, nil
}

func (i *Interpreter) VisitGroupingExpr(e *ast.GroupingExpr) (any, error) {
	return i.evaluate(e.Inner)
}

func (i *Interpreter) VisitUnaryExpr(e *ast.UnaryExpr) (any, error) {
	right, err := i.evaluate(e.Right)
	if err != nil {
		return nil, err
	}
	switch e.Op.Type {
	case token.Bang:
		return value.Boolean(!right.Truthy()), nil
	case token.Minus:
		n, ok := right.(value.Number)
		if !ok {
			return nil, loxerr.NewRuntimeError(e.Op, "unary minus only applicable to numbers")
		}
		return -n, nil
	default:
		panic("eval: unreachable unary operator " + string(e.Op.Type))
	}
}

// VisitBinaryExpr evaluates both operands left-to-right before dispatch
// (spec.md §5's ordering rule), then applies the operator rules from
// spec.md §4.5's binary-operator table.
func (i *Interpreter) VisitBinaryExpr(e *ast.BinaryExpr) (any, error) {
	left, err := i.evaluate(e.Left)
	if err != nil {
		return nil, err
	}
	right, err := i.evaluate(e.Right)
	if err != nil {
		return nil, err
	}

	switch e.Op.Type {
	case token.EqualEqual:
		return value.Boolean(value.Equal(left, right)), nil
	case token.BangEqual:
		return value.Boolean(!value.Equal(left, right)), nil
	case token.Plus:
		if ln, ok := left.(value.Number); ok {
			if rn, ok := right.(value.Number); ok {
				return ln + rn, nil
			}
		}
		if ls, ok := left.(value.String); ok {
			if rs, ok := right.(value.String); ok {
				return ls + rs, nil
			}
		}
		return nil, loxerr.NewRuntimeError(e.Op, "+ needs either strings or numbers")
	case token.Minus, token.Star, token.Slash, token.Greater, token.GreaterEqual, token.Less, token.LessEqual:
		ln, lok := left.(value.Number)
		rn, rok := right.(value.Number)
		if !lok || !rok {
			return nil, loxerr.NewRuntimeError(e.Op, "operands must be two numbers")
		}
		return i.numericBinary(e.Op.Type, ln, rn), nil
	default:
		panic("eval: unreachable binary operator " + string(e.Op.Type))
	}
}

func (i *Interpreter) numericBinary(op token.Type, l, r value.Number) value.Value {
	switch op {
	case token.Minus:
		return l - r
	case token.Star:
		return l * r
	case token.Slash:
		return l / r
	case token.Greater:
		return value.Boolean(l > r)
	case token.GreaterEqual:
		return value.Boolean(l >= r)
	case token.Less:
		return value.Boolean(l < r)
	case token.LessEqual:
		return value.Boolean(l <= r)
	}
	panic("eval: unreachable numeric operator " + string(op))
}

// VisitLogicalExpr short-circuits: `or` returns the left operand as soon
// as it's truthy, `and` as soon as it's falsy, without ever evaluating
// the right operand (spec.md §8 property 5).
func (i *Interpreter) VisitLogicalExpr(e *ast.LogicalExpr) (any, error) {
	left, err := i.evaluate(e.Left)
	if err != nil {
		return nil, err
	}
	if e.Op.Type == token.Or {
		if left.Truthy() {
			return left, nil
		}
	} else if !left.Truthy() {
		return left, nil
	}
	return i.evaluate(e.Right)
}

// VisitVariableExpr prefers the resolver's pre-computed depth; an
// absent entry means the name resolves against whichever scope it's
// actually bound in, found by walking the live stack (spec.md §4.4/4.5).
func (i *Interpreter) VisitVariableExpr(e *ast.VariableExpr) (any, error) {
	if depth, ok := i.depths[e]; ok {
		return i.Env.GetAt(depth, e.Name), nil
	}
	return i.Env.Get(e.Name)
}

func (i *Interpreter) VisitAssignExpr(e *ast.AssignExpr) (any, error) {
	v, err := i.evaluate(e.Value)
	if err != nil {
		return nil, err
	}
	if depth, ok := i.depths[e]; ok {
		i.Env.AssignAt(depth, e.Name, v)
		return v, nil
	}
	if err := i.Env.Assign(e.Name, v); err != nil {
		return nil, err
	}
	return v, nil
}

// VisitCallExpr evaluates the callee, checks it is callable, evaluates
// arguments left-to-right, verifies arity, then dispatches (spec.md
// §4.5's Call row).
func (i *Interpreter) VisitCallExpr(e *ast.CallExpr) (any, error) {
	calleeVal, err := i.evaluate(e.Callee)
	if err != nil {
		return nil, err
	}
	callable, ok := calleeVal.(value.Callable)
	if !ok {
		return nil, loxerr.NewRuntimeError(e.Paren, "can only call functions and classes")
	}

	args := make([]value.Value, 0, len(e.Args))
	for _, a := range e.Args {
		v, err := i.evaluate(a)
		if err != nil {
			return nil, err
		}
		args = append(args, v)
	}

	if len(args) != callable.Arity {
		return nil, loxerr.NewRuntimeError(e.Paren, "Expected %d arguments but got %d.", callable.Arity, len(args))
	}

	return callable.Call(i, args)
}
