/* Package facts implements FACTS, a small concatenative language.

FACTS is Forth-like: a program is a sequence of words that operate on a
shared stack of values.  There are only two kinds of syntax: symbols, which
are runs of non-space characters, and quotes, which are balanced square
bracket spans like [ 1 [ 2 ] add ].  Quotes may nest arbitrarily; their
bodies are not evaluated when read, but instead pushed as text values, to be
evaluated later by words like eval, if, and def.

Evaluating a symbol first looks it up in the dictionary, calling the
definition if found.  Only then is literal syntax considered:

	[...]   a quote, pushes its body as text
	'abc    pushes the text after the leading single quote
	-42     an integer
	3.14    a float

Since the dictionary is consulted first, any literal may be shadowed by a
word of the same name; so after

	[ 2 ] '1 def

the program "1 1 add" leaves 4 on the stack.

Built-in words, called axioms, are native Go functions with a fixed arity:
before an axiom is called, exactly that many values are popped off the stack
and passed to it in stack order, deepest first; whatever values it returns
are then pushed, in order.  An axiom called on a stack with too few values
fails with a StackUnderflowError, leaving the stack as it was.  Hosts may add
their own axioms with Interp.Axiom.

The built-in axioms, by stack effect:

	def     (body name -- )        define a user word
	eval    (body -- * )           evaluate a quote
	if      (cond then else -- * ) evaluate one of two quotes
	words   ( -- names )           list defined words
	print   (a -- )                write a line to the output channel

	dup     (a -- a a)
	drop    (a -- )
	over    (a b -- a b a)
	swap    (a b -- b a)
	nip     (a b -- b)

	add     (a b -- a+b)
	not     (a -- !a)
	and     (a b -- a&b)
	or      (a b -- a|b)
	xor     (a b -- a^b)
	rshift1 (a -- a>>1)

	true    ( -- true)
	false   ( -- false)
	nil     ( -- nil)

Only false and nil count as false when tested by if; every other value,
including 0, counts as true.

For example, this program defines a word that doubles its argument, then
prints 6 and yes:

	[ dup add ] 'double def
	3 double print
	0 [ 'yes ] [ 'no ] if print

An interpreter may be cloned at any point; the clone starts out with all of
its parent's words and stack values, but thereafter the two diverge.
*/
package facts
