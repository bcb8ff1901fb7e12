/*
File    : lox-go/value/value.go
Author  : Akash Maji
Contact : akashmaji(@iisc.ac.in)
*/

// Package value defines the runtime value domain the evaluator operates
// over: numbers, strings, booleans, nil, and first-class callables. Unlike
// the teacher's split Integer/Float object pair, the language specified
// here has a single numeric literal type (float64), matching the source
// this module was distilled from.
package value

import (
	"fmt"
	"strconv"
)

// Value is the interface every runtime value implements. Concrete types
// are Number, String, Boolean, Nil, and Callable.
type Value interface {
	// Truthy reports whether the value counts as true in boolean contexts.
	// Only Nil and Boolean(false) are falsy; everything else is truthy.
	Truthy() bool
	// String renders the display form used by `print` and the REPL.
	String() string
}

// Number is a double-precision floating point value. The language has no
// separate integer type; integer-looking literals are still float64 under
// the hood.
type Number float64

func (n Number) Truthy() bool { return true }

// String prints integer-valued numbers without a trailing ".0", matching
// the display convention spec.md §9 leaves as an open implementer choice.
func (n Number) String() string {
	f := float64(n)
	s := strconv.FormatFloat(f, 'f', -1, 64)
	return s
}

// String is a runtime text value.
type String string

func (s String) Truthy() bool  { return true }
func (s String) String() string { return string(s) }

// Boolean is a runtime true/false value.
type Boolean bool

func (b Boolean) Truthy() bool   { return bool(b) }
func (b Boolean) String() string { return strconv.FormatBool(bool(b)) }

// Nil is the sole null value. It is falsy and has no payload.
type Nil struct{}

func (Nil) Truthy() bool   { return false }
func (Nil) String() string { return "nil" }

// NilValue is the one instance of Nil used throughout the interpreter;
// Nil carries no data so sharing one value avoids needless allocation.
var NilValue = Nil{}

// Callable is a value produced by a call expression's callee: either a
// user-defined function (built by the evaluator from an ast.FunctionStmt) or
// a native builtin such as clock(). Dispatch takes the calling interpreter
// explicitly — see Caller below — rather than capturing it, so Callable
// stays a plain struct with no cyclic reference back into the evaluator.
type Callable struct {
	Name  string
	Arity int
	Call  func(caller Caller, args []Value) (Value, error)
}

func (Callable) Truthy() bool { return true }

func (c Callable) String() string {
	return fmt.Sprintf("<fn %s>", c.Name)
}

// Caller is the minimal surface a Callable's dispatch needs from the
// evaluator to invoke itself reentrantly (e.g. a user function calling
// another user function). eval.Interpreter implements this interface;
// defining it here (rather than importing eval) keeps value free of any
// dependency on the evaluator.
type Caller interface {
	CallFunction(c Callable, args []Value) (Value, error)
}

// Equal implements Lox/this-language equality: same-type comparison,
// cross-type comparisons are always false except the universal Nil==Nil,
// and functions never compare equal (not even to themselves), matching
// spec.md §4.5's binary-operator rules for == and !=.
func Equal(a, b Value) bool {
	switch av := a.(type) {
	case Number:
		bv, ok := b.(Number)
		return ok && av == bv
	case String:
		bv, ok := b.(String)
		return ok && av == bv
	case Boolean:
		bv, ok := b.(Boolean)
		return ok && av == bv
	case Nil:
		_, ok := b.(Nil)
		return ok
	case Callable:
		return false
	default:
		return false
	}
}

// TypeName returns a short tag naming the kind of v ("number", "string",
// "boolean", "nil", "function").
func TypeName(v Value) string {
	switch v.(type) {
	case Number:
		return "number"
	case String:
		return "string"
	case Boolean:
		return "boolean"
	case Nil:
		return "nil"
	case Callable:
		return "function"
	default:
		return "unknown"
	}
}

// Quote renders a value the way the AST printer does for string literals
// embedded inside a Lisp-prefix expression: quoted text for strings, bare
// display form for everything else.
func Quote(v Value) string {
	if s, ok := v.(String); ok {
		return strconv.Quote(string(s))
	}
	return v.String()
}
