/*
File    : lox-go/eval/globals.go
Author  : Akash Maji
Contact : akashmaji(@iisc.ac.in)
*/
package eval

import (
	"time"

	"github.com/akashmaji946/lox-go/environment"
	"github.com/akashmaji946/lox-go/value"
)

// installGlobals binds the single builtin spec.md §4.5 asks for: a
// zero-arity clock() returning wall-clock seconds as a float64. Grounded
// on original_source/src/interpreter/globals.rs's install_in, minus the
// SystemTime epoch-subtraction ceremony Go's time package does for free.
func installGlobals(env *environment.Environment) {
	env.Define("clock", value.Callable{
		Name:  "clock",
		Arity: 0,
		Call: func(_ value.Caller, _ []value.Value) (value.Value, error) {
			return value.Number(float64(time.Now().UnixNano()) / 1e9), nil
		},
	})
}
