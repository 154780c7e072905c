package facts

import (
	"bytes"
	"io"
	"strconv"
)

// Dump writes a human readable listing of an interpreter's stack and
// dictionary to w: the stack on one line, then one line per word, showing
// the arity of primitives and the body of user words.
func Dump(w io.Writer, in *Interp) error {
	d := dumper{in: in, out: w}
	d.dump()
	return d.err
}

type dumper struct {
	in  *Interp
	out io.Writer
	err error

	nameWidth int
	buf       bytes.Buffer

	userOnly bool
}

func (dump *dumper) dump() {
	dump.dumpStack()
	dump.dumpDict()
}

func (dump *dumper) dumpStack() {
	dump.buf.Reset()
	dump.buf.WriteString("stack: ")
	dump.buf.WriteString(Repr(List(dump.in.stack)))
	dump.flush()
}

func (dump *dumper) dumpDict() {
	names := dump.in.Words()
	if dump.nameWidth == 0 {
		for _, name := range names {
			if n := len(name); n > dump.nameWidth {
				dump.nameWidth = n
			}
		}
	}
	dump.buf.Reset()
	dump.buf.WriteString("dict:")
	dump.flush()
	for _, name := range names {
		dump.formatWord(name, dump.in.dict[name])
	}
}

func (dump *dumper) formatWord(name string, def Definition) {
	if _, isUser := def.(UserWord); dump.userOnly && !isUser {
		return
	}

	dump.buf.Reset()
	dump.buf.WriteString("  ")
	dump.buf.WriteString(name)
	for i := len(name); i < dump.nameWidth; i++ {
		dump.buf.WriteByte(' ')
	}
	dump.buf.WriteByte(' ')

	switch impl := def.(type) {
	case Primitive:
		dump.buf.WriteString("axiom/")
		dump.buf.WriteString(strconv.Itoa(impl.Arity))
	case UserWord:
		dump.buf.WriteByte('[')
		dump.buf.WriteString(impl.Body)
		dump.buf.WriteByte(']')
	default:
		dump.buf.WriteString("???")
	}
	dump.flush()
}

func (dump *dumper) flush() {
	if b := dump.buf.Bytes(); len(b) == 0 || b[len(b)-1] != '\n' {
		dump.buf.WriteByte('\n')
	}
	if dump.err == nil {
		_, dump.err = dump.buf.WriteTo(dump.out)
	}
	dump.buf.Reset()
}
