package facts

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func Test_Value_String(t *testing.T) {
	for _, tc := range []struct {
		val  Value
		str  string
		repr string
		kind Kind
	}{
		{Int(42), "42", "42", IntKind},
		{Int(-7), "-7", "-7", IntKind},
		{Float(3.25), "3.25", "3.25", FloatKind},
		{Float(2), "2.0", "2.0", FloatKind},
		{Float(math.Inf(1)), "+Inf", "+Inf", FloatKind},
		{Bool(true), "true", "true", BoolKind},
		{Bool(false), "false", "false", BoolKind},
		{Nil, "nil", "nil", NilKind},
		{Text("a b"), "a b", `"a b"`, TextKind},
		{Text(""), "", `""`, TextKind},
		{List{Int(1), Text("x"), List{Nil}}, "[1 x [nil]]", `[1 "x" [nil]]`, ListKind},
		{List{}, "[]", "[]", ListKind},
	} {
		t.Run(tc.repr, func(t *testing.T) {
			assert.Equal(t, tc.str, tc.val.String(), "expected String")
			assert.Equal(t, tc.repr, Repr(tc.val), "expected Repr")
			assert.Equal(t, tc.kind, tc.val.Kind(), "expected Kind")
		})
	}
}

func Test_Value_sourceRoundTrip(t *testing.T) {
	for _, val := range []Value{Int(-12), Float(0.5), Float(10), Bool(true), Bool(false), Nil} {
		in := New(WithOutput(nil))
		_, err := in.Eval(source(val))
		if assert.NoError(t, err, "unexpected error evaluating %v", val) {
			assert.Equal(t, []Value{val}, in.Stack(), "expected %v to evaluate to itself", val)
		}
	}
}

func Test_Truthy(t *testing.T) {
	for _, val := range []Value{Bool(false), Nil, nil} {
		assert.False(t, Truthy(val), "expected %v to be falsey", val)
	}
	for _, val := range []Value{Bool(true), Int(0), Float(0), Text(""), List{}, List(nil)} {
		assert.True(t, Truthy(val), "expected %v to be truthy", val)
	}
}

func Test_Kind_String(t *testing.T) {
	assert.Equal(t, "text", TextKind.String())
	assert.Equal(t, "Kind(99)", Kind(99).String())
}
