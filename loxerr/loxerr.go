/*
File    : lox-go/loxerr/loxerr.go
Author  : Akash Maji
Contact : akashmaji(@iisc.ac.in)
*/

// Package loxerr collects the diagnostic taxonomy from spec.md §7: scan,
// parse, resolve, and runtime errors, each carrying enough source location
// to render the "[line N] Error ...: msg" forms spec.md §6 specifies.
// ParseFailed/ResolveFailed bundle multiple collected diagnostics, mirroring
// the teacher's Parser.Errors/HasErrors/GetErrors accumulation pattern
// (parser/parser.go) rather than aborting on the first error.
package loxerr

import (
	"fmt"
	"strings"

	"github.com/akashmaji946/lox-go/token"
)

// ScanError reports an unterminated string literal or unrecognized
// character encountered while tokenizing.
type ScanError struct {
	Line    int
	Message string
}

func (e *ScanError) Error() string {
	return fmt.Sprintf("[line %d] Error: %s", e.Line, e.Message)
}

// ParseError is a single diagnostic from a failed declaration or
// expression, anchored at the offending token.
type ParseError struct {
	Token   token.Token
	Message string
}

func (e *ParseError) Error() string {
	if e.Token.Type == token.EOF {
		return fmt.Sprintf("[line %d] Error at end: %s", e.Token.Line, e.Message)
	}
	return fmt.Sprintf("[line %d] Error at %s: %s", e.Token.Line, e.Token.Lexeme, e.Message)
}

// ParseFailed wraps every ParseError collected during a parse pass. The
// parser keeps synchronizing and accumulating instead of aborting on the
// first bad declaration (spec.md §4.2).
type ParseFailed struct {
	Errors []*ParseError
}

func (e *ParseFailed) Error() string {
	lines := make([]string, len(e.Errors))
	for i, pe := range e.Errors {
		lines[i] = pe.Error()
	}
	return strings.Join(lines, "\n")
}

// ResolveError reports a static rule violation found during the resolver
// pass, e.g. reading a local variable from inside its own initializer.
type ResolveError struct {
	Token   token.Token
	Message string
}

func (e *ResolveError) Error() string {
	if e.Token.Type == token.EOF {
		return fmt.Sprintf("[line %d] Error at end: %s", e.Token.Line, e.Message)
	}
	return fmt.Sprintf("[line %d] Error at %s: %s", e.Token.Line, e.Token.Lexeme, e.Message)
}

// ResolveFailed wraps every ResolveError collected during a resolve pass,
// treated like ParseFailed for exit-code purposes (spec.md §7).
type ResolveFailed struct {
	Errors []*ResolveError
}

func (e *ResolveFailed) Error() string {
	lines := make([]string, len(e.Errors))
	for i, re := range e.Errors {
		lines[i] = re.Error()
	}
	return strings.Join(lines, "\n")
}

// RuntimeError aborts evaluation of the current statement sequence. It
// carries the offending token so the line can be reported.
type RuntimeError struct {
	Token   token.Token
	Message string
}

func (e *RuntimeError) Error() string {
	return fmt.Sprintf("[line %d] Error: %s", e.Token.Line, e.Message)
}

// NewRuntimeError is a small constructor convenience mirroring the
// teacher's createError helper (eval/evaluator.go), used throughout eval
// to keep call sites terse.
func NewRuntimeError(tok token.Token, format string, args ...any) *RuntimeError {
	return &RuntimeError{Token: tok, Message: fmt.Sprintf(format, args...)}
}
