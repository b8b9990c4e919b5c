// ==============================================================================================
// FILE: internal/interp/value_unit_test.go
// ==============================================================================================

package interp

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTruthy(t *testing.T) {
	assert.False(t, Truthy(Null{}))
	assert.False(t, Truthy(Bool{Value: false}))
	assert.True(t, Truthy(Bool{Value: true}))
	assert.False(t, Truthy(Int{Value: 0}))
	assert.True(t, Truthy(Int{Value: -1}))
	assert.False(t, Truthy(String{Value: ""}))
	assert.True(t, Truthy(String{Value: "a"}))
	assert.False(t, Truthy(NewError("boom")))
	assert.True(t, Truthy(&Function{}))
	assert.True(t, Truthy(&Builtin{}))
}

func TestEqual_SameKind(t *testing.T) {
	assert.True(t, Equal(Int{Value: 2}, Int{Value: 2}))
	assert.False(t, Equal(Int{Value: 2}, Int{Value: 3}))
	assert.True(t, Equal(String{Value: "a"}, String{Value: "a"}))
	assert.True(t, Equal(Null{}, Null{}))
	assert.True(t, Equal(Bool{Value: true}, Bool{Value: true}))
}

func TestEqual_DifferentKindIsFalseNotError(t *testing.T) {
	assert.False(t, Equal(Int{Value: 0}, String{Value: "0"}))
	assert.False(t, Equal(Null{}, Bool{Value: false}))
}

func TestEqual_FunctionAndBuiltinAreIdentityCompared(t *testing.T) {
	f1 := &Function{Name: "f"}
	f2 := &Function{Name: "f"}
	assert.True(t, Equal(f1, f1))
	assert.False(t, Equal(f1, f2))

	b1 := &Builtin{Name: "ask"}
	b2 := &Builtin{Name: "ask"}
	assert.True(t, Equal(b1, b1))
	assert.False(t, Equal(b1, b2))
}

func TestStringify(t *testing.T) {
	assert.Equal(t, "null", Null{}.Stringify())
	assert.Equal(t, "42", Int{Value: 42}.Stringify())
	assert.Equal(t, "-7", Int{Value: -7}.Stringify())
	assert.Equal(t, "hi", String{Value: "hi"}.Stringify())
	assert.Equal(t, "true", Bool{Value: true}.Stringify())
	assert.Equal(t, "false", Bool{Value: false}.Stringify())
	assert.Equal(t, "error: nope", NewError("nope").Stringify())
}

func TestIsError(t *testing.T) {
	assert.True(t, IsError(NewError("x")))
	assert.False(t, IsError(Int{Value: 1}))
}
