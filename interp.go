package facts

import (
	"context"
	"io"
	"regexp"
	"strconv"
	"strings"

	"github.com/jcorbin/gofacts/internal/flushio"
	"github.com/jcorbin/gofacts/internal/panicerr"
)

// Interp is a stack machine: it owns exactly one stack of values, and one
// dictionary of words. Words are either native primitives (axioms), or user
// words defined by evaluated programs.
//
// An Interp must only be used by one caller at a time; use Clone to obtain an
// independent copy that may diverge.
type Interp struct {
	logging
	out flushio.WriteFlusher

	stack []Value
	dict  dictionary

	stackLimit int
	depthLimit int

	ctx     context.Context
	running bool
	depth   int
}

// Clone returns a new interpreter that starts out with all the words, stack
// values, and options of in, but thereafter diverges independently.
func (in *Interp) Clone() *Interp {
	c := &Interp{
		logging:    in.logging,
		out:        in.out,
		dict:       in.dict.clone(),
		stackLimit: in.stackLimit,
		depthLimit: in.depthLimit,
	}
	if len(in.stack) > 0 {
		c.stack = append([]Value(nil), in.stack...)
	}
	return c
}

// EvalContext evaluates text, calling each of its tokens in order against this
// interpreter. The first error aborts evaluation, leaving the stack as it was
// after the last successful token. The context is checked between tokens.
//
// Returns the interpreter itself, so that calls may be chained.
func (in *Interp) EvalContext(ctx context.Context, text string) (*Interp, error) {
	if ctx == nil {
		ctx = context.Background()
	}

	// re-entrant evaluation from within a host axiom
	if in.running {
		return in, in.eval(text)
	}

	in.ctx, in.running = ctx, true
	defer func() { in.ctx, in.running, in.depth = nil, false, 0 }()

	err := panicerr.Recover("facts", func() error {
		return in.eval(text)
	})
	if ferr := in.out.Flush(); err == nil {
		err = ferr
	}
	return in, err
}

// eval is the motor: tokenize, then call each token.
func (in *Interp) eval(text string) error {
	tz := NewTokenizer(text)
	for {
		if err := in.ctx.Err(); err != nil {
			return err
		}
		tok, err := tz.Next()
		if err == io.EOF {
			return nil
		} else if err != nil {
			return err
		}
		if err := in.call(tok.Text); err != nil {
			return err
		}
	}
}

func (in *Interp) evalNested(word, body string) error {
	if lim := in.depthLimit; lim > 0 && in.depth >= lim {
		return StackOverflowError{Word: word, What: "depth", Limit: lim}
	}
	in.depth++
	defer func() { in.depth-- }()
	if in.logfn != nil {
		in.logf("+", "%v [%v]", word, body)
		defer in.withLogPrefix("  ")()
	}
	return in.eval(body)
}

// call resolves a token: dictionary words always win over literal syntax.
func (in *Interp) call(name string) error {
	if def, defined := in.dict[name]; defined {
		if in.logfn != nil {
			in.logf(">", "call %v -- s:%v", name, Repr(List(in.stack)))
		}
		return def.invoke(in, name)
	}
	val, err := parseLiteral(name)
	if err != nil {
		return err
	}
	if in.logfn != nil {
		in.logf(">", "push %v", Repr(val))
	}
	return in.push(name, val)
}

var (
	intPattern   = regexp.MustCompile(`^[+-]?\d+$`)
	floatPattern = regexp.MustCompile(`^[+-]?\d+\.\d+$`)
)

func parseLiteral(token string) (Value, error) {
	if body, ok := quoteBody(token); ok {
		return Text(body), nil
	}
	if strings.HasPrefix(token, "'") {
		return Text(token[1:]), nil
	}
	if intPattern.MatchString(token) {
		n, err := strconv.ParseInt(token, 10, 64)
		if err != nil {
			return nil, WordNotFoundError{Word: token, Err: err}
		}
		return Int(n), nil
	}
	if floatPattern.MatchString(token) {
		f, err := strconv.ParseFloat(token, 64)
		if err != nil {
			return nil, WordNotFoundError{Word: token, Err: err}
		}
		return Float(f), nil
	}
	return nil, WordNotFoundError{Word: token}
}

func (in *Interp) push(word string, values ...Value) error {
	if lim := in.stackLimit; lim > 0 && len(in.stack)+len(values) > lim {
		return StackOverflowError{Word: word, What: "stack", Limit: lim}
	}
	for _, val := range values {
		if val == nil {
			val = Nil
		}
		in.stack = append(in.stack, val)
	}
	return nil
}

// popN removes the top n values, returning them in stack order; the stack is
// left untouched if it holds fewer than n values.
func (in *Interp) popN(word string, n int) ([]Value, error) {
	have := len(in.stack)
	if have < n {
		return nil, StackUnderflowError{Word: word, Need: n, Have: have}
	}
	if n == 0 {
		return nil, nil
	}
	i := have - n
	args := make([]Value, n)
	copy(args, in.stack[i:])
	for j := i; j < have; j++ {
		in.stack[j] = nil
	}
	in.stack = in.stack[:i]
	return args, nil
}

func (in *Interp) define(name string, def Definition) {
	if in.dict == nil {
		in.dict = make(dictionary)
	}
	if in.logfn != nil {
		if _, defined := in.dict[name]; defined {
			in.logf("#", "redefine %v", name)
		}
	}
	in.dict[name] = def
}
