/*
File    : lox-go/resolver/resolver_test.go
Author  : Akash Maji
Contact : akashmaji(@iisc.ac.in)
*/
package resolver

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/akashmaji946/lox-go/ast"
	"github.com/akashmaji946/lox-go/parser"
	"github.com/akashmaji946/lox-go/scanner"
)

func parseOK(t *testing.T, src string) []ast.Stmt {
	t.Helper()
	toks, scanErrs := scanner.New(src).ScanTokens()
	require.Empty(t, scanErrs)
	stmts, err := parser.New(toks).Parse()
	require.NoError(t, err)
	return stmts
}

func TestResolve_LocalShadowGetsDepthZeroAndGlobalGetsNoEntry(t *testing.T) {
	stmts := parseOK(t, `var a = 1; { var a = 2; print a; } print a;`)
	depths, err := New().Resolve(stmts)
	require.NoError(t, err)

	block := stmts[1].(*ast.BlockStmt)
	innerPrint := block.Stmts[1].(*ast.PrintStmt)
	innerVar := innerPrint.Expr.(*ast.VariableExpr)
	assert.Equal(t, 0, depths[innerVar])

	outerPrint := stmts[2].(*ast.PrintStmt)
	outerVar := outerPrint.Expr.(*ast.VariableExpr)
	_, global := depths[outerVar]
	assert.False(t, global, "global reference should have no depth entry")
}

func TestResolve_SelfReferentialInitializerIsAnError(t *testing.T) {
	stmts := parseOK(t, `{ var a = a; }`)
	_, err := New().Resolve(stmts)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "Can't read local variable in its own initializer.")
}

func TestResolve_FunctionParamsShadowEnclosingScope(t *testing.T) {
	stmts := parseOK(t, `var n = 1; fun f(n) { return n; }`)
	depths, err := New().Resolve(stmts)
	require.NoError(t, err)

	fn := stmts[1].(*ast.FunctionStmt)
	ret := fn.Body[0].(*ast.ReturnStmt)
	v := ret.Value.(*ast.VariableExpr)
	assert.Equal(t, 0, depths[v])
}

func TestResolve_FunctionCanReferenceItself(t *testing.T) {
	stmts := parseOK(t, `fun fib(n) { if (n < 2) return n; return fib(n-1) + fib(n-2); }`)
	_, err := New().Resolve(stmts)
	assert.NoError(t, err)
}
