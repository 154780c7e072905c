package facts

import "github.com/jcorbin/gofacts/internal/runeio"

//// Built-in axioms
//
// Each axiom below is documented by its stack effect, e.g. (a b -- b a)
// means that it takes the two topmost values, with b on top, and leaves them
// swapped.

type axiom struct {
	name  string
	arity int
	fn    AxiomFunc
}

//// Word operations

// def   (body name -- )
// installs a user word named name, that evaluates body each time it is
// called; any prior definition is replaced.
func def(in *Interp, args []Value) ([]Value, error) {
	in.Define(source(args[1]), source(args[0]))
	return nil, nil
}

// eval  (body -- * )
// evaluates body against the interpreter.
func eval(in *Interp, args []Value) ([]Value, error) {
	return nil, in.evalNested("eval", source(args[0]))
}

// words ( -- names )
// pushes a list of all defined word names, sorted.
func words(in *Interp, _ []Value) ([]Value, error) {
	return []Value{List(textValues(in.Words()))}, nil
}

// print (a -- )
// writes a to the output channel, followed by a line feed.
func printLine(in *Interp, args []Value) ([]Value, error) {
	_, err := runeio.WriteANSILine(in.out, source(args[0]))
	return nil, err
}

//// Flow control

// if    (cond then else -- * )
// evaluates then if cond is truthy, otherwise evaluates else; only false and
// nil are not truthy.
func ifElse(in *Interp, args []Value) ([]Value, error) {
	body := args[2]
	if Truthy(args[0]) {
		body = args[1]
	}
	return nil, in.evalNested("if", source(body))
}

//// Stack manipulation

// dup   (a -- a a)
func dup(_ *Interp, args []Value) ([]Value, error) {
	return []Value{args[0], args[0]}, nil
}

// drop  (a -- )
func drop(_ *Interp, _ []Value) ([]Value, error) {
	return nil, nil
}

// over  (a b -- a b a)
func over(_ *Interp, args []Value) ([]Value, error) {
	return []Value{args[0], args[1], args[0]}, nil
}

// swap  (a b -- b a)
func swap(_ *Interp, args []Value) ([]Value, error) {
	return []Value{args[1], args[0]}, nil
}

// nip   (a b -- b)
func nip(_ *Interp, args []Value) ([]Value, error) {
	return []Value{args[1]}, nil
}

//// Arithmetic

// add   (a b -- a+b)
// adds numbers, promoting to float if either is one; concatenates text.
func add(_ *Interp, args []Value) ([]Value, error) {
	switch a := args[0].(type) {
	case Int:
		switch b := args[1].(type) {
		case Int:
			return []Value{a + b}, nil
		case Float:
			return []Value{Float(a) + b}, nil
		}
	case Float:
		switch b := args[1].(type) {
		case Int:
			return []Value{a + Float(b)}, nil
		case Float:
			return []Value{a + b}, nil
		}
	case Text:
		if b, ok := args[1].(Text); ok {
			return []Value{a + b}, nil
		}
	}
	return nil, TypeError{Word: "add", Args: args}
}

// not   (a -- !a)
// logical negation of a's truthiness.
func not(_ *Interp, args []Value) ([]Value, error) {
	return []Value{Bool(!Truthy(args[0]))}, nil
}

// and   (a b -- a&b)
// or    (a b -- a|b)
// xor   (a b -- a^b)
// are bitwise on integers; when a is a bool or nil they are logical,
// combining a with b's truthiness.
func and(_ *Interp, args []Value) ([]Value, error) {
	return logic("and", args,
		func(a, b int64) int64 { return a & b },
		func(a, b bool) bool { return a && b })
}

func or(_ *Interp, args []Value) ([]Value, error) {
	return logic("or", args,
		func(a, b int64) int64 { return a | b },
		func(a, b bool) bool { return a || b })
}

func xor(_ *Interp, args []Value) ([]Value, error) {
	return logic("xor", args,
		func(a, b int64) int64 { return a ^ b },
		func(a, b bool) bool { return a != b })
}

func logic(
	word string, args []Value,
	bitwise func(a, b int64) int64,
	logical func(a, b bool) bool,
) ([]Value, error) {
	switch a := args[0].(type) {
	case Int:
		if b, ok := args[1].(Int); ok {
			return []Value{Int(bitwise(int64(a), int64(b)))}, nil
		}
	case Bool, nilValue:
		return []Value{Bool(logical(Truthy(a), Truthy(args[1])))}, nil
	}
	return nil, TypeError{Word: word, Args: args}
}

// rshift1 (a -- a>>1)
func rshift1(_ *Interp, args []Value) ([]Value, error) {
	if a, ok := args[0].(Int); ok {
		return []Value{a >> 1}, nil
	}
	return nil, TypeError{Word: "rshift1", Args: args}
}

//// Literals

// true  ( -- true)
// false ( -- false)
// nil   ( -- nil)
func pushTrue(_ *Interp, _ []Value) ([]Value, error)  { return []Value{Bool(true)}, nil }
func pushFalse(_ *Interp, _ []Value) ([]Value, error) { return []Value{Bool(false)}, nil }
func pushNil(_ *Interp, _ []Value) ([]Value, error)   { return []Value{Nil}, nil }

var builtins []axiom

func init() {
	builtins = []axiom{
		{"def", 2, def},
		{"eval", 1, eval},
		{"words", 0, words},
		{"print", 1, printLine},

		{"if", 3, ifElse},

		{"dup", 1, dup},
		{"drop", 1, drop},
		{"over", 2, over},
		{"swap", 2, swap},
		{"nip", 2, nip},

		{"add", 2, add},
		{"not", 1, not},
		{"and", 2, and},
		{"or", 2, or},
		{"xor", 2, xor},
		{"rshift1", 1, rshift1},

		{"true", 0, pushTrue},
		{"false", 0, pushFalse},
		{"nil", 0, pushNil},
	}
}
