package facts

import "sort"

// Definition is an executable dictionary entry: either a Primitive or a
// UserWord. Definitions are immutable once registered.
type Definition interface {
	invoke(in *Interp, name string) error
}

// AxiomFunc implements a primitive word. It receives exactly as many values
// as its declared arity, in stack order (deepest first), and returns values
// to push, also in stack order.
type AxiomFunc func(in *Interp, args []Value) ([]Value, error)

// Primitive is a native word with a fixed, non-negative arity.
type Primitive struct {
	Arity int
	Fn    AxiomFunc
}

func (prim Primitive) invoke(in *Interp, name string) error {
	args, err := in.popN(name, prim.Arity)
	if err != nil {
		return err
	}
	rets, err := prim.Fn(in, args)
	if err != nil {
		return err
	}
	return in.push(name, rets...)
}

// UserWord is a word defined by a program, whose Body is evaluated against the
// live interpreter each time the word is called.
type UserWord struct {
	Body string
}

func (uw UserWord) invoke(in *Interp, name string) error {
	return in.evalNested(name, uw.Body)
}

// dictionary maps word names to their definitions.
type dictionary map[string]Definition

func (dict dictionary) clone() dictionary {
	c := make(dictionary, len(dict))
	for name, def := range dict {
		c[name] = def
	}
	return c
}

func (dict dictionary) names() []string {
	names := make([]string, 0, len(dict))
	for name := range dict {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
