/*
File    : lox-go/eval/signals.go
Author  : Akash Maji
Contact : akashmaji(@iisc.ac.in)
*/
package eval

import "github.com/akashmaji946/lox-go/value"

// returnSignal is the in-band unwinding mechanism `return` uses to cross
// function-body frames (spec.md §7, §9). It satisfies the `error`
// interface purely so it can travel through the same AcceptStmt/execute
// return channel as real errors; the Call closure that VisitFunctionStmt
// builds intercepts it and turns it into the call's result. Neither the
// parser nor the resolver rejects a `return` outside a function body: a
// top-level `return` reaches Interpret's caller as this value, whose
// Error() text is "return outside function".
type returnSignal struct {
	Value value.Value
}

func (r *returnSignal) Error() string { return "return outside function" }

// asReturn unwraps err as a *returnSignal, if that's what it is.
func asReturn(err error) (*returnSignal, bool) {
	rs, ok := err.(*returnSignal)
	return rs, ok
}
