/*
File    : lox-go/parser/parser_test.go
Author  : Akash Maji
Contact : akashmaji(@iisc.ac.in)
*/
package parser

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/akashmaji946/lox-go/ast"
	"github.com/akashmaji946/lox-go/scanner"
	"github.com/akashmaji946/lox-go/value"
)

func parse(t *testing.T, src string) []ast.Stmt {
	t.Helper()
	toks, scanErrs := scanner.New(src).ScanTokens()
	require.Empty(t, scanErrs)
	stmts, err := New(toks).Parse()
	require.NoError(t, err)
	return stmts
}

func TestParse_VarDeclaration_DefaultsToNilInitializer(t *testing.T) {
	stmts := parse(t, "var a;")
	require.Len(t, stmts, 1)
	v := stmts[0].(*ast.VarStmt)
	assert.Equal(t, "a", v.Name.Lexeme)
	lit := v.Initializer.(*ast.LiteralExpr)
	assert.Equal(t, value.NilValue, lit.Value)
}

func TestParse_PrintExpression(t *testing.T) {
	stmts := parse(t, `print 1 + 2;`)
	require.Len(t, stmts, 1)
	pr := stmts[0].(*ast.PrintStmt)
	bin := pr.Expr.(*ast.BinaryExpr)
	assert.Equal(t, value.Number(1), bin.Left.(*ast.LiteralExpr).Value)
	assert.Equal(t, value.Number(2), bin.Right.(*ast.LiteralExpr).Value)
}

func TestParse_PrecedenceClimbing(t *testing.T) {
	// 1 + 2 * 3 should parse as 1 + (2 * 3): term wraps factor.
	stmts := parse(t, `print 1 + 2 * 3;`)
	bin := stmts[0].(*ast.PrintStmt).Expr.(*ast.BinaryExpr)
	assert.Equal(t, value.Number(1), bin.Left.(*ast.LiteralExpr).Value)
	rhs := bin.Right.(*ast.BinaryExpr)
	assert.Equal(t, value.Number(2), rhs.Left.(*ast.LiteralExpr).Value)
	assert.Equal(t, value.Number(3), rhs.Right.(*ast.LiteralExpr).Value)
}

func TestParse_AssignmentRequiresVariableTarget(t *testing.T) {
	toks, _ := scanner.New(`1 + 2 = 3;`).ScanTokens()
	_, err := New(toks).Parse()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "Invalid assignment target.")
}

func TestParse_LogicalShortCircuitNodesAreDistinctFromBinary(t *testing.T) {
	stmts := parse(t, `print true or false;`)
	_, ok := stmts[0].(*ast.PrintStmt).Expr.(*ast.LogicalExpr)
	assert.True(t, ok)
}

func TestParse_ForDesugarsToWhileInsideBlock(t *testing.T) {
	stmts := parse(t, `for (var i = 0; i < 3; i = i + 1) print i;`)
	require.Len(t, stmts, 1)
	outer := stmts[0].(*ast.BlockStmt)
	require.Len(t, outer.Stmts, 2)
	_, isVar := outer.Stmts[0].(*ast.VarStmt)
	assert.True(t, isVar)
	while := outer.Stmts[1].(*ast.WhileStmt)
	body := while.Body.(*ast.BlockStmt)
	require.Len(t, body.Stmts, 2)
	_, isPrint := body.Stmts[0].(*ast.PrintStmt)
	assert.True(t, isPrint)
	_, isIncExpr := body.Stmts[1].(*ast.ExpressionStmt)
	assert.True(t, isIncExpr)
}

func TestParse_ForWithoutConditionDefaultsToTrue(t *testing.T) {
	stmts := parse(t, `for (;;) print 1;`)
	while := stmts[0].(*ast.WhileStmt)
	lit := while.Cond.(*ast.LiteralExpr)
	assert.Equal(t, value.Boolean(true), lit.Value)
}

func TestParse_FunctionDeclarationAndCall(t *testing.T) {
	stmts := parse(t, `fun add(a, b) { return a + b; } print add(1, 2);`)
	require.Len(t, stmts, 2)
	fn := stmts[0].(*ast.FunctionStmt)
	assert.Equal(t, "add", fn.Name.Lexeme)
	require.Len(t, fn.Params, 2)
	require.Len(t, fn.Body, 1)
	_, isReturn := fn.Body[0].(*ast.ReturnStmt)
	assert.True(t, isReturn)

	call := stmts[1].(*ast.PrintStmt).Expr.(*ast.CallExpr)
	assert.Len(t, call.Args, 2)
}

func TestParse_IfElse_EmptyElseWhenOmitted(t *testing.T) {
	stmts := parse(t, `if (true) print 1;`)
	ifStmt := stmts[0].(*ast.IfStmt)
	_, ok := ifStmt.Else.(*ast.EmptyStmt)
	assert.True(t, ok)
}

func TestParse_SynchronizeRecoversAfterError(t *testing.T) {
	toks, _ := scanner.New(`var = ; print 1;`).ScanTokens()
	p := New(toks)
	stmts, err := p.Parse()
	require.Error(t, err)
	require.True(t, p.HasErrors())
	// Parsing resumed after the bad declaration and collected the print.
	var sawPrint bool
	for _, s := range stmts {
		if _, ok := s.(*ast.PrintStmt); ok {
			sawPrint = true
		}
	}
	assert.True(t, sawPrint)
}

func TestParse_ErrorAtEOFRendersEndForm(t *testing.T) {
	toks, _ := scanner.New(`var a = 1`).ScanTokens()
	_, err := New(toks).Parse()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "Error at end:")
}
