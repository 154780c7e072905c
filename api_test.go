package facts

import (
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func Test_Interp_Clone(t *testing.T) {
	orig, err := New(WithOutput(nil)).Eval("1 2 [ 3 ] 'three def")
	require.NoError(t, err)

	clone := orig.Clone()
	assert.Equal(t, orig.Stack(), clone.Stack(), "expected clone to start with the same stack")
	assert.Equal(t, orig.Words(), clone.Words(), "expected clone to start with the same words")

	_, err = clone.Eval("drop three [ 4 ] 'four def [ 'changed ] 'three def three")
	require.NoError(t, err)
	assert.Equal(t, []Value{Int(1), Int(3), Text("changed")}, clone.Stack())

	_, err = orig.Eval("three")
	require.NoError(t, err)
	assert.Equal(t, []Value{Int(1), Int(2), Int(3)}, orig.Stack(), "expected original stack unaffected by clone")
	_, defined := orig.Lookup("four")
	assert.False(t, defined, "expected clone definitions to stay in the clone")

	_, err = orig.Eval("four")
	assert.Equal(t, WordNotFoundError{Word: "four"}, err)
}

func Test_Interp_Clone_options(t *testing.T) {
	var out strings.Builder
	orig := New(WithOutput(&out), WithStackLimit(2))
	clone := orig.Clone()

	_, err := clone.Eval("'hi print 1 2 3")
	assert.Equal(t, StackOverflowError{Word: "3", What: "stack", Limit: 2}, err)
	assert.Equal(t, "hi\n", out.String(), "expected clone to share the output channel")
}

func Test_Interp_Axiom(t *testing.T) {
	in := New(WithOutput(nil))

	var got []Value
	require.NoError(t, in.Axiom("collect", 3, func(_ *Interp, args []Value) ([]Value, error) {
		got = append([]Value(nil), args...)
		return []Value{Int(len(args)), Text("done")}, nil
	}))
	_, err := in.Eval("0 1 2 3 collect")
	require.NoError(t, err)
	assert.Equal(t, []Value{Int(1), Int(2), Int(3)}, got, "expected args in stack order")
	assert.Equal(t, []Value{Int(0), Int(3), Text("done")}, in.Stack())

	require.NoError(t, in.Axiom("collect", 0, func(_ *Interp, _ []Value) ([]Value, error) {
		return []Value{nil}, nil
	}), "expected redefinition to succeed")
	_, err = in.Eval("collect")
	require.NoError(t, err)
	assert.Equal(t, Nil, in.Stack()[3], "expected a nil return to push Nil")

	err = in.Axiom("bad", -1, func(_ *Interp, _ []Value) ([]Value, error) { return nil, nil })
	assert.Equal(t, AxiomError{Name: "bad", Arity: -1, Reason: "arity must not be negative"}, err)
	assert.True(t, errors.Is(err, ErrFacts))

	err = in.Axiom("bad", 1, nil)
	assert.Equal(t, AxiomError{Name: "bad", Arity: 1, Reason: "nil function"}, err)

	_, defined := in.Lookup("bad")
	assert.False(t, defined, "expected failed registration to define nothing")
}

func Test_Interp_Axiom_error(t *testing.T) {
	errNope := errors.New("nope")
	in := New(WithOutput(nil))
	require.NoError(t, in.Axiom("fail", 1, func(_ *Interp, _ []Value) ([]Value, error) {
		return nil, errNope
	}))
	_, err := in.Eval("1 2 fail 3")
	assert.Equal(t, errNope, err)
	assert.Equal(t, []Value{Int(1)}, in.Stack(), "expected consumed args to stay consumed")
}

func Test_Interp_Push(t *testing.T) {
	in := New(WithOutput(nil), WithStackLimit(1)).Push(Int(1), nil, Text("x"))
	assert.Equal(t, []Value{Int(1), Nil, Text("x")}, in.Stack())
	assert.Equal(t, `<s:[1 nil "x"], w:[`+joinWords()+`]>`, in.String())
}

func Test_Interp_Stack(t *testing.T) {
	in := New(WithOutput(nil))
	assert.Equal(t, []Value{}, in.Stack(), "expected an empty, non-nil stack")

	in.Push(Int(1))
	stack := in.Stack()
	stack[0] = Int(2)
	assert.Equal(t, []Value{Int(1)}, in.Stack(), "expected Stack to return a copy")
}

func Test_Interp_Define(t *testing.T) {
	in := New(WithOutput(nil))
	in.Define("sq", "dup add")
	def, defined := in.Lookup("sq")
	require.True(t, defined)
	assert.Equal(t, UserWord{Body: "dup add"}, def)

	_, err := in.Eval("3 sq")
	require.NoError(t, err)
	assert.Equal(t, []Value{Int(6)}, in.Stack())

	def, defined = in.Lookup("add")
	require.True(t, defined)
	assert.Equal(t, 2, def.(Primitive).Arity)
}

func Test_Options(t *testing.T) {
	var a, b strings.Builder
	in := New(Options(WithOutput(&a), WithTee(&b)), nil)
	_, err := in.Eval("'one print [ two ] print")
	require.NoError(t, err)
	assert.Equal(t, "one\ntwo\n", a.String())
	assert.Equal(t, "one\ntwo\n", b.String())

	var c strings.Builder
	in = New(WithOutput(nil), WithTee(&c))
	_, err = in.Eval("'only print")
	require.NoError(t, err)
	assert.Equal(t, "only\n", c.String(), "expected tee onto discarded output to still write")
}
