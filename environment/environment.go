/*
File    : lox-go/environment/environment.go
Author  : Akash Maji
Contact : akashmaji(@iisc.ac.in)
*/

// Package environment implements the LIFO stack of lexical scopes the
// evaluator executes against. Unlike the teacher's scope/scope.go (a
// parent-linked chain of scopes, one per Scope value with shared-object
// closures over objects.GoMixObject), spec.md §4.4 specifies a flat stack
// of maps with explicit push/pop and depth-indexed lookup, matching the
// resolver's "scopes to skip from innermost" side-table. Grounded on
// original_source/src/environment.rs (Environment.scopes: Vec<EnvMap>).
package environment

import (
	"github.com/akashmaji946/lox-go/loxerr"
	"github.com/akashmaji946/lox-go/token"
	"github.com/akashmaji946/lox-go/value"
)

// Environment is the runtime scope stack. Index 0 is always the global
// scope; the stack is never empty.
type Environment struct {
	scopes []map[string]value.Value
}

// New creates an Environment containing only the global scope.
func New() *Environment {
	return &Environment{scopes: []map[string]value.Value{make(map[string]value.Value)}}
}

// PushScope opens a new, empty innermost scope.
func (e *Environment) PushScope() {
	e.scopes = append(e.scopes, make(map[string]value.Value))
}

// PopScope closes the innermost scope. Popping the last remaining
// (global) scope is a programmer error, matching the teacher's Rust
// panic("cannot pop last scope!").
func (e *Environment) PopScope() {
	if len(e.scopes) <= 1 {
		panic("environment: cannot pop last scope")
	}
	e.scopes = e.scopes[:len(e.scopes)-1]
}

// Define inserts or overwrites name in the innermost scope.
func (e *Environment) Define(name string, v value.Value) {
	e.scopes[len(e.scopes)-1][name] = v
}

// Get walks the scope stack innermost-outward looking for tok's lexeme.
func (e *Environment) Get(tok token.Token) (value.Value, error) {
	for i := len(e.scopes) - 1; i >= 0; i-- {
		if v, ok := e.scopes[i][tok.Lexeme]; ok {
			return v, nil
		}
	}
	return nil, loxerr.NewRuntimeError(tok, "undefined variable '%s'", tok.Lexeme)
}

// GetAt looks up tok's lexeme exactly `depth` scopes out from the
// innermost. Absence there breaks the resolver's contract and is a
// programmer error, not a runtime error users can observe.
func (e *Environment) GetAt(depth int, tok token.Token) value.Value {
	scope := e.scopes[len(e.scopes)-1-depth]
	v, ok := scope[tok.Lexeme]
	if !ok {
		panic("environment: resolver/evaluator depth mismatch for '" + tok.Lexeme + "'")
	}
	return v
}

// Assign walks the scope stack innermost-outward and overwrites the
// first scope binding tok's lexeme.
func (e *Environment) Assign(tok token.Token, v value.Value) error {
	for i := len(e.scopes) - 1; i >= 0; i-- {
		if _, ok := e.scopes[i][tok.Lexeme]; ok {
			e.scopes[i][tok.Lexeme] = v
			return nil
		}
	}
	return loxerr.NewRuntimeError(tok, "undefined variable '%s'", tok.Lexeme)
}

// AssignAt overwrites tok's lexeme exactly `depth` scopes out from the
// innermost, per the resolver's pre-computed depth.
func (e *Environment) AssignAt(depth int, tok token.Token, v value.Value) {
	e.scopes[len(e.scopes)-1-depth][tok.Lexeme] = v
}

// Depth reports how many scopes currently exist, for tests that assert
// the LIFO invariant (spec.md §8 property 7) holds across a block.
func (e *Environment) Depth() int {
	return len(e.scopes)
}
