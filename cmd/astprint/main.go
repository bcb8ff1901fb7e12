/*
File    : lox-go/cmd/astprint/main.go
Author  : Akash Maji
Contact : akashmaji(@iisc.ac.in)
*/
package main

import (
	"fmt"
	"os"

	"github.com/akashmaji946/lox-go/ast"
	"github.com/akashmaji946/lox-go/parser"
	"github.com/akashmaji946/lox-go/scanner"
)

// main prints each top-level expression statement's Lisp-prefix form.
// Non-expression statements (declarations, control flow) are skipped —
// this utility exists to inspect expression shapes, not to dump whole
// programs.
func main() {
	if len(os.Args) != 2 {
		fmt.Fprintln(os.Stderr, "Usage: astprint <script>")
		os.Exit(64)
	}

	src, err := os.ReadFile(os.Args[1])
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(64)
	}

	toks, scanErrs := scanner.New(string(src)).ScanTokens()
	if len(scanErrs) > 0 {
		for _, e := range scanErrs {
			fmt.Fprintln(os.Stderr, e)
		}
		os.Exit(65)
	}

	stmts, err := parser.New(toks).Parse()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(65)
	}

	for _, s := range stmts {
		if es, ok := s.(*ast.ExpressionStmt); ok {
			fmt.Println(Print(es.Expr))
		}
	}
}
