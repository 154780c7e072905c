package facts

import (
	"io"
	"os"

	"github.com/jcorbin/gofacts/internal/flushio"
)

// Option configures an Interp.
type Option interface{ apply(in *Interp) }

const defaultDepthLimit = 1000

var defaults = []Option{
	withOutput(os.Stdout),
	withDepthLimit(defaultDepthLimit),
}

func (in *Interp) apply(opts ...Option) {
	for _, opt := range opts {
		if opt != nil {
			opt.apply(in)
		}
	}
}

type options []Option

func (opts options) apply(in *Interp) { in.apply(opts...) }

type withLogfn func(mess string, args ...interface{})

func (logfn withLogfn) apply(in *Interp) {
	in.logfn = logfn
}

type outputOption struct{ io.Writer }
type teeOption struct{ io.Writer }
type stackLimitOption int
type depthLimitOption int

func withOutput(w io.Writer) outputOption        { return outputOption{w} }
func withTee(w io.Writer) teeOption              { return teeOption{w} }
func withStackLimit(limit int) stackLimitOption { return stackLimitOption(limit) }
func withDepthLimit(limit int) depthLimitOption { return depthLimitOption(limit) }

func (o outputOption) apply(in *Interp) {
	if in.out != nil {
		in.out.Flush()
	}
	in.out = flushio.NewWriteFlusher(o.Writer)
}

func (o teeOption) apply(in *Interp) {
	in.out = flushio.WriteFlushers(in.out, flushio.NewWriteFlusher(o.Writer))
}

func (lim stackLimitOption) apply(in *Interp) {
	in.stackLimit = int(lim)
}

func (lim depthLimitOption) apply(in *Interp) {
	in.depthLimit = int(lim)
}
