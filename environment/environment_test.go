/*
File    : lox-go/environment/environment_test.go
Author  : Akash Maji
Contact : akashmaji(@iisc.ac.in)
*/
package environment

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/akashmaji946/lox-go/token"
	"github.com/akashmaji946/lox-go/value"
)

func ident(name string) token.Token {
	return token.New(token.Identifier, name, 1)
}

func TestEnvironment_DefineAndGet(t *testing.T) {
	env := New()
	env.Define("a", value.Number(1))
	v, err := env.Get(ident("a"))
	require.NoError(t, err)
	assert.Equal(t, value.Number(1), v)
}

func TestEnvironment_GetUndefinedIsRuntimeError(t *testing.T) {
	env := New()
	_, err := env.Get(ident("nope"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "undefined variable 'nope'")
}

func TestEnvironment_PushPopIsLIFO(t *testing.T) {
	env := New()
	before := env.Depth()
	env.PushScope()
	env.Define("a", value.Number(1))
	env.PopScope()
	assert.Equal(t, before, env.Depth())
}

func TestEnvironment_PopLastScopePanics(t *testing.T) {
	env := New()
	assert.Panics(t, func() { env.PopScope() })
}

func TestEnvironment_InnerScopeShadowsOuter(t *testing.T) {
	env := New()
	env.Define("a", value.Number(1))
	env.PushScope()
	env.Define("a", value.Number(2))
	v, err := env.Get(ident("a"))
	require.NoError(t, err)
	assert.Equal(t, value.Number(2), v)
	env.PopScope()
	v, err = env.Get(ident("a"))
	require.NoError(t, err)
	assert.Equal(t, value.Number(1), v)
}

func TestEnvironment_GetAtSkipsExactDepth(t *testing.T) {
	env := New()
	env.Define("a", value.Number(1)) // depth 1 once one more scope is pushed
	env.PushScope()
	env.Define("a", value.Number(2)) // depth 0

	assert.Equal(t, value.Number(2), env.GetAt(0, ident("a")))
	assert.Equal(t, value.Number(1), env.GetAt(1, ident("a")))
}

func TestEnvironment_AssignAtOverwritesExactScope(t *testing.T) {
	env := New()
	env.Define("a", value.Number(1))
	env.PushScope()
	env.Define("a", value.Number(2))

	env.AssignAt(1, ident("a"), value.Number(99))
	env.PopScope()
	v, err := env.Get(ident("a"))
	require.NoError(t, err)
	assert.Equal(t, value.Number(99), v)
}

func TestEnvironment_AssignUndefinedIsRuntimeError(t *testing.T) {
	env := New()
	err := env.Assign(ident("nope"), value.Number(1))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "undefined variable 'nope'")
}
