/*
File    : lox-go/eval/interpreter_test.go
Author  : Akash Maji
Contact : akashmaji(@iisc.ac.in)
*/
package eval

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/akashmaji946/lox-go/parser"
	"github.com/akashmaji946/lox-go/resolver"
	"github.com/akashmaji946/lox-go/scanner"
)

// run scans, parses, resolves, and evaluates src, returning everything
// written to stdout. Any failure at any stage fails the test via
// require, except where the test explicitly wants to inspect an error.
func run(t *testing.T, src string) (string, error) {
	t.Helper()
	toks, scanErrs := scanner.New(src).ScanTokens()
	require.Empty(t, scanErrs)

	stmts, err := parser.New(toks).Parse()
	require.NoError(t, err)

	depths, err := resolver.New().Resolve(stmts)
	require.NoError(t, err)

	var buf bytes.Buffer
	interp := New(&buf)
	interp.SetDepths(depths)
	runErr := interp.Interpret(stmts)
	return buf.String(), runErr
}

// Table straight from spec.md §8.
func TestInterpret_ConcreteScenarios(t *testing.T) {
	cases := []struct {
		name string
		src  string
		want string
	}{
		{"addition", `print 1 + 2;`, "3\n"},
		{"string concat", `print "ab" + "cd";`, "abcd\n"},
		{"block shadowing", `var a = 1; { var a = 2; print a; } print a;`, "2\n1\n"},
		{"while loop", `var i = 0; while (i < 3) { print i; i = i + 1; }`, "0\n1\n2\n"},
		{"recursive fib", `fun fib(n) { if (n < 2) return n; return fib(n-1) + fib(n-2); } print fib(7);`, "13\n"},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			out, err := run(t, c.src)
			require.NoError(t, err)
			assert.Equal(t, c.want, out)
		})
	}
}

func TestInterpret_PlusTypeMismatchIsRuntimeError(t *testing.T) {
	_, err := run(t, `print 1 + "a";`)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "+ needs either strings or numbers")
}

func TestInterpret_UnaryMinusRequiresNumber(t *testing.T) {
	_, err := run(t, `print -"a";`)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unary minus only applicable to numbers")
}

func TestInterpret_UndefinedVariableIsRuntimeError(t *testing.T) {
	_, err := run(t, `print nope;`)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "undefined variable 'nope'")
}

func TestInterpret_CallArityMismatch(t *testing.T) {
	_, err := run(t, `fun f(a, b) { return a + b; } f(1);`)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "Expected 2 arguments but got 1.")
}

func TestInterpret_CallingNonCallableIsRuntimeError(t *testing.T) {
	_, err := run(t, `var x = 1; x();`)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "can only call functions and classes")
}

func TestInterpret_ShortCircuitAndSkipsRightOperand(t *testing.T) {
	out, err := run(t, `fun sideEffect() { print "evaluated"; return true; } print false and sideEffect();`)
	require.NoError(t, err)
	assert.Equal(t, "false\n", out)
}

func TestInterpret_ShortCircuitOrSkipsRightOperand(t *testing.T) {
	out, err := run(t, `fun sideEffect() { print "evaluated"; return true; } print true or sideEffect();`)
	require.NoError(t, err)
	assert.Equal(t, "true\n", out)
}

func TestInterpret_Truthiness(t *testing.T) {
	out, err := run(t, `print !nil; print !false; print !0; print !"";`)
	require.NoError(t, err)
	assert.Equal(t, "true\ntrue\nfalse\nfalse\n", out)
}

func TestInterpret_EqualityAcrossTypesIsFalse(t *testing.T) {
	out, err := run(t, `print 1 == "1"; print nil == false; print nil == nil;`)
	require.NoError(t, err)
	assert.Equal(t, "false\nfalse\ntrue\n", out)
}

func TestInterpret_ForLoopDesugaring(t *testing.T) {
	out, err := run(t, `for (var i = 0; i < 3; i = i + 1) print i;`)
	require.NoError(t, err)
	assert.Equal(t, "0\n1\n2\n", out)
}

func TestInterpret_ClockIsCallableWithZeroArity(t *testing.T) {
	out, err := run(t, `print clock() >= 0;`)
	require.NoError(t, err)
	assert.Equal(t, "true\n", out)
}

func TestInterpret_FunctionWithNoReturnYieldsNil(t *testing.T) {
	out, err := run(t, `fun noop() {} print noop();`)
	require.NoError(t, err)
	assert.Equal(t, "nil\n", out)
}

func TestInterpret_IntegerValuedNumbersPrintWithoutTrailingZero(t *testing.T) {
	out, err := run(t, `print 3.0; print 3.5;`)
	require.NoError(t, err)
	assert.Equal(t, "3\n3.5\n", out)
}
