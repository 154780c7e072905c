package flushio

import (
	"bufio"
	"bytes"
	"io"
	"io/ioutil"
)

// WriteFlusher is a flush-able io.Writer.
type WriteFlusher interface {
	io.Writer
	Flush() error
}

// Discard is a WriteFlusher that drops all writes.
var Discard WriteFlusher = nopFlusher{ioutil.Discard}

// NewWriteFlusher creates a new flushable writer: nil and ioutil.Discard
// result in Discard, in-memory buffers get a noop Flush, any existing
// WriteFlusher is returned as-is; otherwise a new bufio.Writer is returned.
func NewWriteFlusher(w io.Writer) WriteFlusher {
	if w == nil || w == ioutil.Discard {
		return Discard
	}

	if wf, is := w.(WriteFlusher); is {
		return wf
	}

	// in memory buffers, as implemented by types like bytes.Buffer and
	// strings.Builder, do not need to be flushed
	type buffer interface {
		io.Writer
		Len() int
		Grow(n int)
		Reset()
	}
	if _, isBuffer := w.(buffer); isBuffer {
		return nopFlusher{w}
	}

	return bufio.NewWriter(w)
}

type nopFlusher struct{ io.Writer }

func (nf nopFlusher) Flush() error { return nil }

// LineFlusher wraps a WriteFlusher, flushing it after every write that
// completes a line; interactive output uses it so that printed lines appear
// while a long evaluation is still running.
func LineFlusher(wf WriteFlusher) WriteFlusher {
	if wf == nil || wf == Discard {
		return wf
	}
	if _, is := wf.(nopFlusher); is {
		return wf
	}
	return lineFlusher{wf}
}

type lineFlusher struct{ WriteFlusher }

func (lf lineFlusher) Write(p []byte) (n int, err error) {
	n, err = lf.WriteFlusher.Write(p)
	if err == nil && bytes.IndexByte(p, '\n') >= 0 {
		err = lf.WriteFlusher.Flush()
	}
	return n, err
}
