package facts

import (
	"errors"
	"fmt"
	"strings"
)

// ErrFacts is the base failure category: every error produced by the
// interpreter satisfies errors.Is(err, ErrFacts).
var ErrFacts = errors.New("facts error")

// ParseError indicates a quote that was opened at Pos but never terminated.
type ParseError struct {
	Pos int
}

func (err ParseError) Error() string {
	return fmt.Sprintf("quote starting at %v never terminated", err.Pos)
}

// Is matches ErrFacts.
func (ParseError) Is(target error) bool { return target == ErrFacts }

// Incomplete returns true, since more input may yet terminate the quote;
// interactive readers use it to ask for a continuation line.
func (ParseError) Incomplete() bool { return true }

// StackUnderflowError indicates that a word needed more values than the stack
// held.
type StackUnderflowError struct {
	Word string
	Need int
	Have int
}

func (err StackUnderflowError) Error() string {
	return fmt.Sprintf("stack underflow: got %v in %v for `%v`", err.Have, err.Need, err.Word)
}

// Is matches ErrFacts.
func (StackUnderflowError) Is(target error) bool { return target == ErrFacts }

// StackOverflowError indicates that a host imposed limit was exceeded: either
// the data stack limit or the nested evaluation depth limit.
type StackOverflowError struct {
	Word  string
	What  string // "stack" or "depth"
	Limit int
}

func (err StackOverflowError) Error() string {
	return fmt.Sprintf("%v overflow: limit %v exceeded by `%v`", err.What, err.Limit, err.Word)
}

// Is matches ErrFacts.
func (StackOverflowError) Is(target error) bool { return target == ErrFacts }

// WordNotFoundError indicates a token that matched no dictionary entry and no
// literal syntax. Err is set when the token looked like a literal that could
// not be parsed, e.g. an out of range integer.
type WordNotFoundError struct {
	Word string
	Err  error
}

func (err WordNotFoundError) Error() string {
	if err.Err != nil {
		return fmt.Sprintf("word `%v` does not exist in dictionary: %v", err.Word, err.Err)
	}
	return fmt.Sprintf("word `%v` does not exist in dictionary", err.Word)
}

// Is matches ErrFacts.
func (WordNotFoundError) Is(target error) bool { return target == ErrFacts }

func (err WordNotFoundError) Unwrap() error { return err.Err }

// AxiomError indicates an invalid primitive registration.
type AxiomError struct {
	Name   string
	Arity  int
	Reason string
}

func (err AxiomError) Error() string {
	return fmt.Sprintf("invalid axiom `%v` arity %v: %v", err.Name, err.Arity, err.Reason)
}

// Is matches ErrFacts.
func (AxiomError) Is(target error) bool { return target == ErrFacts }

// TypeError indicates that a word was given values of kinds it cannot operate
// on.
type TypeError struct {
	Word string
	Args []Value
}

func (err TypeError) Error() string {
	var sb strings.Builder
	sb.WriteString("type error: `")
	sb.WriteString(err.Word)
	sb.WriteString("` cannot operate on")
	for i, arg := range err.Args {
		if i > 0 {
			sb.WriteByte(',')
		}
		sb.WriteByte(' ')
		sb.WriteString(arg.Kind().String())
	}
	return sb.String()
}

// Is matches ErrFacts.
func (TypeError) Is(target error) bool { return target == ErrFacts }
