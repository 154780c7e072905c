package facts

import (
	"context"
	"io"
)

// New creates an interpreter with an empty stack, and a dictionary holding
// the built-in axioms.
func New(opts ...Option) *Interp {
	var in Interp
	in.apply(defaults...)
	in.apply(opts...)
	in.dict = make(dictionary, len(builtins))
	for _, ax := range builtins {
		in.define(ax.name, Primitive{Arity: ax.arity, Fn: ax.fn})
	}
	return &in
}

// Eval evaluates text under a background context; see EvalContext.
func (in *Interp) Eval(text string) (*Interp, error) {
	return in.EvalContext(context.Background(), text)
}

// Stack returns a snapshot of the stack, deepest value first.
func (in *Interp) Stack() []Value {
	return append([]Value{}, in.stack...)
}

// Words returns the sorted names of all defined words.
func (in *Interp) Words() []string {
	return in.dict.names()
}

// Lookup returns the definition of the named word, if any.
func (in *Interp) Lookup(name string) (Definition, bool) {
	def, defined := in.dict[name]
	return def, defined
}

// Push adds values to the top of the stack, ignoring any stack limit; it is a
// convenience for hosts preparing an interpreter, and returns in for chaining.
func (in *Interp) Push(values ...Value) *Interp {
	for _, val := range values {
		if val == nil {
			val = Nil
		}
		in.stack = append(in.stack, val)
	}
	return in
}

// Axiom registers a primitive word that consumes arity values from the stack
// and pushes whatever fn returns. Any prior definition of name is replaced.
// Returns an AxiomError for a negative arity or nil fn.
func (in *Interp) Axiom(name string, arity int, fn AxiomFunc) error {
	if arity < 0 {
		return AxiomError{Name: name, Arity: arity, Reason: "arity must not be negative"}
	}
	if fn == nil {
		return AxiomError{Name: name, Arity: arity, Reason: "nil function"}
	}
	in.define(name, Primitive{Arity: arity, Fn: fn})
	return nil
}

// Define installs a user word that evaluates body each time it is called, as
// the def word does. Any prior definition of name is replaced.
func (in *Interp) Define(name, body string) {
	in.define(name, UserWord{Body: body})
}

// String renders the stack and the defined words.
func (in *Interp) String() string {
	return "<s:" + Repr(List(in.stack)) + ", w:" + List(textValues(in.Words())).String() + ">"
}

// Options combines any number of options into one.
func Options(opts ...Option) Option { return options(opts) }

// WithOutput sets the output channel written to by the print word; defaults
// to os.Stdout.
func WithOutput(w io.Writer) Option { return withOutput(w) }

// WithTee adds an additional output channel alongside any prior one.
func WithTee(w io.Writer) Option { return withTee(w) }

// WithLogf enables trace logging of every call through logfn.
func WithLogf(logfn func(mess string, args ...interface{})) Option { return withLogfn(logfn) }

// WithStackLimit limits how many values the stack may hold; pushes past it
// fail with StackOverflowError. Zero, the default, means no limit.
func WithStackLimit(limit int) Option { return withStackLimit(limit) }

// WithDepthLimit limits how deeply user words, eval, and if may nest; calls
// past it fail with StackOverflowError. Zero means no limit, leaving only the
// host's goroutine stack as a ceiling.
func WithDepthLimit(limit int) Option { return withDepthLimit(limit) }

func textValues(strs []string) []Value {
	values := make([]Value, len(strs))
	for i, s := range strs {
		values[i] = Text(s)
	}
	return values
}
