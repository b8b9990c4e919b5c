// ==============================================================================================
// FILE: internal/interp/scope_unit_test.go
// ==============================================================================================

package interp

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestScope_DefineLocalAndGet(t *testing.T) {
	s := NewScope(nil)
	s.DefineLocal("x", Int{Value: 1}, false)
	assert.Equal(t, Int{Value: 1}, s.Get("x"))
}

func TestScope_GetWalksParents(t *testing.T) {
	parent := NewScope(nil)
	parent.DefineLocal("x", Int{Value: 9}, false)
	child := NewScope(parent)
	assert.Equal(t, Int{Value: 9}, child.Get("x"))
}

func TestScope_GetUndefinedReturnsError(t *testing.T) {
	s := NewScope(nil)
	v := s.Get("missing")
	require.True(t, IsError(v))
	assert.Contains(t, v.(Error).Message, "undefined variable")
}

func TestScope_GetUndefinedSuggestsCloseName(t *testing.T) {
	s := NewScope(nil)
	s.DefineLocal("total", Int{Value: 1}, false)
	v := s.Get("totl")
	require.True(t, IsError(v))
	assert.Contains(t, v.(Error).Message, "did you mean")
	assert.Contains(t, v.(Error).Message, "total")
}

func TestScope_SetRebindsInAncestor(t *testing.T) {
	parent := NewScope(nil)
	parent.DefineLocal("x", Int{Value: 1}, false)
	child := NewScope(parent)
	ok, _ := child.Set("x", Int{Value: 2}, false)
	require.True(t, ok)
	assert.Equal(t, Int{Value: 2}, parent.Get("x"))
	_, foundLocally := child.vars["x"]
	assert.False(t, foundLocally)
}

func TestScope_SetCreatesInCurrentScopeWhenAbsentEverywhere(t *testing.T) {
	s := NewScope(nil)
	ok, _ := s.Set("fresh", Int{Value: 5}, false)
	require.True(t, ok)
	assert.Equal(t, Int{Value: 5}, s.Get("fresh"))
}

func TestScope_SetFailsOnLockedBinding(t *testing.T) {
	s := NewScope(nil)
	s.DefineLocal("x", Int{Value: 1}, true)
	ok, msg := s.Set("x", Int{Value: 2}, false)
	assert.False(t, ok)
	assert.Equal(t, "cannot assign to locked binding", msg)
	assert.Equal(t, Int{Value: 1}, s.Get("x"))
}

func TestScope_DefineLocalNeverWalksToParent(t *testing.T) {
	parent := NewScope(nil)
	parent.DefineLocal("x", Int{Value: 1}, true)
	child := NewScope(parent)
	child.DefineLocal("x", Int{Value: 99}, false)
	assert.Equal(t, Int{Value: 99}, child.Get("x"))
	assert.Equal(t, Int{Value: 1}, parent.Get("x"))
}
