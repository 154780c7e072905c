package fileinput

import (
	"bufio"
	"fmt"
	"io"
)

// Location names a line in an Input file.
type Location struct {
	Name string
	Line int
}

func (loc Location) String() string { return fmt.Sprintf("%v:%v", loc.Name, loc.Line) }

// Line is a single line of input text, without its line terminator, along with
// the Location that it was read from.
type Line struct {
	Location
	Text string
}

func (il Line) String() string { return fmt.Sprintf("%v %q", il.Location, il.Text) }

// Input implements sequential line reading through a Queue of one or more
// input streams. Any stream that implements io.Closer is closed once it has
// been exhausted.
type Input struct {
	Queue []io.Reader

	cur  io.Reader
	sc   *bufio.Scanner
	scan Location
}

// ReadLine returns the next line from the current input stream, moving on to
// the next queued stream as each one is exhausted. Returns io.EOF once the
// queue is empty.
func (in *Input) ReadLine() (Line, error) {
	for {
		if in.sc == nil && !in.nextIn() {
			return Line{}, io.EOF
		}
		if in.sc.Scan() {
			in.scan.Line++
			return Line{in.scan, in.sc.Text()}, nil
		}
		err := in.sc.Err()
		in.closeIn()
		if err != nil {
			return Line{}, fmt.Errorf("%v: %w", in.scan, err)
		}
	}
}

// Close closes the current input stream, and any remaining queued ones.
func (in *Input) Close() (err error) {
	in.closeIn()
	for _, r := range in.Queue {
		if cl, ok := r.(io.Closer); ok {
			if cerr := cl.Close(); err == nil {
				err = cerr
			}
		}
	}
	in.Queue = nil
	return err
}

func (in *Input) closeIn() {
	if cl, ok := in.cur.(io.Closer); ok {
		cl.Close()
	}
	in.cur = nil
	in.sc = nil
}

func (in *Input) nextIn() bool {
	if len(in.Queue) == 0 {
		return false
	}
	r := in.Queue[0]
	in.Queue = in.Queue[1:]
	in.cur = r
	in.sc = bufio.NewScanner(r)
	in.scan = Location{Name: NameOf(r)}
	return true
}

// NameOf returns the result of any Name() method implemented by obj, or a
// generic description of obj's type.
func NameOf(obj interface{}) string {
	if nom, ok := obj.(interface{ Name() string }); ok {
		return nom.Name()
	}
	return fmt.Sprintf("<unnamed %T>", obj)
}

// NamedReader attaches a name to a reader, for use in Location.
func NamedReader(name string, r io.Reader) io.Reader {
	return namedReader{r, name}
}

type namedReader struct {
	io.Reader
	name string
}

func (nr namedReader) Name() string { return nr.name }
