/*
File    : lox-go/resolver/resolver.go
Author  : Akash Maji
Contact : akashmaji(@iisc.ac.in)
*/

// Package resolver implements the static pass described in spec.md §4.3:
// it walks the post-parse AST once, validates a small set of lexical
// rules (no reading a local variable from inside its own initializer),
// and produces a side-table mapping each Variable/Assign expression node
// to the number of scopes to skip from the innermost at evaluation time.
// Grounded directly on original_source/src/resolver.rs, translated from
// RefCell<Vec<HashMap<..>>> bookkeeping to a plain Go slice-of-maps (no
// interior mutability needed since Go passes *Resolver by pointer).
package resolver

import (
	"github.com/akashmaji946/lox-go/ast"
	"github.com/akashmaji946/lox-go/loxerr"
	"github.com/akashmaji946/lox-go/token"
)

// Depths is the side-table the evaluator consults: expression node
// identity (the node's own pointer, boxed in `any`) to scopes-to-skip.
// An absent entry means "resolve globally" (spec.md §3's Depth-map).
type Depths map[any]int

// Resolver walks statement/expression trees, mirroring the environment's
// scope stack with name -> defined-bool maps so it never needs the
// runtime environment itself.
type Resolver struct {
	scopes []map[string]bool
	depths Depths
	errors []*loxerr.ResolveError
}

// New creates a Resolver ready to walk a freshly parsed program.
func New() *Resolver {
	return &Resolver{depths: make(Depths)}
}

// Resolve walks every top-level statement and returns the populated
// depth side-table. On any rule violation it returns a
// *loxerr.ResolveFailed wrapping every diagnostic collected.
func (r *Resolver) Resolve(stmts []ast.Stmt) (Depths, error) {
	for _, s := range stmts {
		r.resolveStmt(s)
	}
	if len(r.errors) > 0 {
		return r.depths, &loxerr.ResolveFailed{Errors: r.errors}
	}
	return r.depths, nil
}

func (r *Resolver) pushScope() { r.scopes = append(r.scopes, make(map[string]bool)) }

func (r *Resolver) popScope() { r.scopes = r.scopes[:len(r.scopes)-1] }

func (r *Resolver) declare(name token.Token) {
	if len(r.scopes) == 0 {
		return
	}
	r.scopes[len(r.scopes)-1][name.Lexeme] = false
}

func (r *Resolver) define(name token.Token) {
	if len(r.scopes) == 0 {
		return
	}
	r.scopes[len(r.scopes)-1][name.Lexeme] = true
}

// resolveLocal walks the scope stack innermost-outward; if name is bound
// at index i, it records node -> (len(scopes)-1-i) in the depth-table.
// An unmatched name is left unrecorded: the evaluator falls back to the
// global environment at evaluation time.
func (r *Resolver) resolveLocal(node any, name string) {
	for i := len(r.scopes) - 1; i >= 0; i-- {
		if _, ok := r.scopes[i][name]; ok {
			r.depths[node] = len(r.scopes) - 1 - i
			return
		}
	}
}

func (r *Resolver) errorAt(tok token.Token, message string) {
	r.errors = append(r.errors, &loxerr.ResolveError{Token: tok, Message: message})
}
