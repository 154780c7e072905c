package facts

import (
	"math"
	"strconv"
	"strings"
)

// Kind tags the variant of a Value.
type Kind uint8

// Value kinds.
const (
	NilKind Kind = iota
	BoolKind
	IntKind
	FloatKind
	TextKind
	ListKind
)

var kindNames = [...]string{
	NilKind:   "nil",
	BoolKind:  "bool",
	IntKind:   "int",
	FloatKind: "float",
	TextKind:  "text",
	ListKind:  "list",
}

func (k Kind) String() string {
	if int(k) < len(kindNames) {
		return kindNames[k]
	}
	return "Kind(" + strconv.Itoa(int(k)) + ")"
}

// Value is anything that may be held on the stack. Values are immutable once
// pushed.
//
// String renders a value in source form: evaluating the String of any scalar
// value pushes an equal value, except for Text which renders raw.
type Value interface {
	Kind() Kind
	String() string
}

type (
	// Int is a 64-bit signed integer value.
	Int int64

	// Float is a 64-bit floating point value.
	Float float64

	// Bool is a boolean value, as pushed by the true and false words.
	Bool bool

	// Text is a string value; quotes and single-quoted symbols push Text,
	// which may later be evaluated as a program.
	Text string

	// List is an ordered aggregate of values, as pushed by the words word.
	List []Value

	nilValue struct{}
)

// Nil is the nil value, as pushed by the nil word.
var Nil Value = nilValue{}

func (Int) Kind() Kind      { return IntKind }
func (Float) Kind() Kind    { return FloatKind }
func (Bool) Kind() Kind     { return BoolKind }
func (Text) Kind() Kind     { return TextKind }
func (List) Kind() Kind     { return ListKind }
func (nilValue) Kind() Kind { return NilKind }

func (i Int) String() string    { return strconv.FormatInt(int64(i), 10) }
func (b Bool) String() string   { return strconv.FormatBool(bool(b)) }
func (t Text) String() string   { return string(t) }
func (nilValue) String() string { return "nil" }

func (f Float) String() string {
	x := float64(f)
	if math.IsInf(x, 0) || math.IsNaN(x) {
		return strconv.FormatFloat(x, 'g', -1, 64)
	}
	s := strconv.FormatFloat(x, 'f', -1, 64)
	if !strings.ContainsRune(s, '.') {
		s += ".0"
	}
	return s
}

func (l List) String() string {
	var sb strings.Builder
	sb.WriteByte('[')
	for i, v := range l {
		if i > 0 {
			sb.WriteByte(' ')
		}
		sb.WriteString(v.String())
	}
	sb.WriteByte(']')
	return sb.String()
}

// Truthy returns false only for Bool(false) and Nil; every other value,
// including Int(0) and empty Text, is true.
func Truthy(v Value) bool {
	switch v := v.(type) {
	case nil, nilValue:
		return false
	case Bool:
		return bool(v)
	}
	return true
}

// Repr renders a value for display: like String, but Text is quoted so that it
// can be told apart from other kinds.
func Repr(v Value) string {
	switch v := v.(type) {
	case nil:
		return "<nil>"
	case Text:
		return strconv.Quote(string(v))
	case List:
		var sb strings.Builder
		sb.WriteByte('[')
		for i, e := range v {
			if i > 0 {
				sb.WriteByte(' ')
			}
			sb.WriteString(Repr(e))
		}
		sb.WriteByte(']')
		return sb.String()
	}
	return v.String()
}

// source returns the program text of a value, as used by words like eval and
// def which treat their operands as code or names.
func source(v Value) string {
	if t, ok := v.(Text); ok {
		return string(t)
	}
	return v.String()
}
