package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"io/ioutil"
	"log"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/peterh/liner"
	"golang.org/x/sync/errgroup"

	facts "github.com/jcorbin/gofacts"
	"github.com/jcorbin/gofacts/internal/fileinput"
	"github.com/jcorbin/gofacts/internal/flushio"
	"github.com/jcorbin/gofacts/internal/logio"
	"github.com/jcorbin/gofacts/internal/panicerr"
)

func main() {
	ctx := context.Background()

	var (
		timeout    time.Duration
		trace      bool
		stackLimit int
		depthLimit int
		dump       bool
		evalText   string
	)
	flag.DurationVar(&timeout, "timeout", 0, "specify a time limit")
	flag.BoolVar(&trace, "trace", false, "enable trace logging")
	flag.IntVar(&stackLimit, "stack-limit", 0, "limit how many values the stack may hold")
	flag.IntVar(&depthLimit, "depth-limit", 0, "limit how deeply words may nest; defaults to 1000")
	flag.BoolVar(&dump, "dump", false, "dump the stack and dictionary before exiting")
	flag.StringVar(&evalText, "e", "", "evaluate text before any files")
	flag.Parse()

	cmd := command{
		out:  flushio.LineFlusher(flushio.NewWriteFlusher(os.Stdout)),
		log:  logio.NewLogger(os.Stderr),
		dump: dump,
	}

	opts := []facts.Option{facts.WithOutput(cmd.out)}
	if trace {
		opts = append(opts, facts.WithLogf(cmd.log.Leveledf("TRACE")))
	}
	if stackLimit != 0 {
		opts = append(opts, facts.WithStackLimit(stackLimit))
	}
	if depthLimit != 0 {
		opts = append(opts, facts.WithDepthLimit(depthLimit))
	}
	if err := cmd.init(opts...); err != nil {
		log.Fatalln(err)
	}

	if timeout != 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, timeout)
		defer cancel()
	}

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()
	eg, ctx := errgroup.WithContext(ctx)

	eg.Go(func() error {
		defer cancel()
		return cmd.run(ctx, evalText, flag.Args())
	})

	eg.Go(func() error {
		sigc := make(chan os.Signal, 1)
		signal.Notify(sigc, os.Interrupt, syscall.SIGTERM)
		defer signal.Stop(sigc)
		select {
		case <-ctx.Done():
			return nil
		case sig := <-sigc:
			// a second signal exits even if the run loop is blocked on a prompt
			go func() {
				<-sigc
				os.Exit(130)
			}()
			return fmt.Errorf("received %v", sig)
		}
	})

	if err := eg.Wait(); !errors.Is(err, context.Canceled) {
		cmd.log.ErrorIf(err)
	}
	os.Exit(cmd.log.ExitCode())
}

type command struct {
	in   *facts.Interp
	out  flushio.WriteFlusher
	log  *logio.Logger
	dump bool

	importing map[string]bool
}

func (cmd *command) init(opts ...facts.Option) error {
	cmd.in = facts.New(opts...)
	return cmd.in.Axiom("import", 1, cmd.importFile)
}

// run evaluates any text given by -e, then each named file; with no files,
// standard input is either read as a script or served as an interactive REPL.
func (cmd *command) run(ctx context.Context, text string, names []string) (rerr error) {
	defer func() {
		if cmd.dump {
			if err := facts.Dump(cmd.out, cmd.in); rerr == nil {
				rerr = err
			}
		}
		if err := cmd.out.Flush(); rerr == nil {
			rerr = err
		}
	}()

	var input fileinput.Input
	defer input.Close()

	if text != "" {
		input.Queue = append(input.Queue, fileinput.NamedReader("<-e>", strings.NewReader(text)))
	}
	for _, name := range names {
		if name == "-" {
			input.Queue = append(input.Queue, fileinput.NamedReader("<stdin>", os.Stdin))
			continue
		}
		f, err := os.Open(name)
		if err != nil {
			return err
		}
		input.Queue = append(input.Queue, f)
	}

	if len(names) == 0 {
		if isTerminal(os.Stdin) {
			if err := cmd.evalInput(ctx, &input); err != nil {
				return err
			}
			return cmd.repl(ctx)
		}
		input.Queue = append(input.Queue, fileinput.NamedReader("<stdin>", os.Stdin))
	}

	return cmd.evalInput(ctx, &input)
}

// evalInput evaluates input a line at a time, joining lines while a quote
// remains open; the first error stops evaluation, and is returned annotated
// with the location of the chunk that raised it.
func (cmd *command) evalInput(ctx context.Context, input *fileinput.Input) error {
	var (
		chunk strings.Builder
		start fileinput.Location
	)
	flush := func() error {
		if chunk.Len() == 0 {
			return nil
		}
		text := chunk.String()
		chunk.Reset()
		if _, err := cmd.in.EvalContext(ctx, text); err != nil {
			return fmt.Errorf("%v: %w", start, err)
		}
		return nil
	}

	for {
		line, err := input.ReadLine()
		if err == io.EOF {
			return flush()
		} else if err != nil {
			return err
		}
		if line.Location.Line == 1 || chunk.Len() == 0 {
			if err := flush(); err != nil {
				return err
			}
			start = line.Location
		}
		chunk.WriteString(line.Text)
		chunk.WriteByte('\n')
		if !incomplete(chunk.String()) {
			if err := flush(); err != nil {
				return err
			}
		}
	}
}

// importFile is the import word ( path -- * ), evaluating the named file's
// content against the running interpreter.
func (cmd *command) importFile(in *facts.Interp, args []facts.Value) ([]facts.Value, error) {
	path := args[0].String()
	if cmd.importing[path] {
		return nil, fmt.Errorf("import %v: import cycle", path)
	}
	content, err := ioutil.ReadFile(path)
	if err != nil {
		return nil, err
	}

	if cmd.importing == nil {
		cmd.importing = make(map[string]bool)
	}
	cmd.importing[path] = true
	defer delete(cmd.importing, path)

	if _, err := in.Eval(string(content)); err != nil {
		return nil, fmt.Errorf("import %v: %w", path, err)
	}
	return nil, nil
}

const (
	promptMain = "> "
	promptCont = ".. "
)

func (cmd *command) repl(ctx context.Context) error {
	ln := liner.NewLiner()
	defer ln.Close()
	ln.SetCtrlCAborts(true)

	for ctx.Err() == nil {
		text, ok := readByParseProbe(ln, promptMain, promptCont)
		if !ok {
			fmt.Fprintln(cmd.out)
			return nil
		}
		if strings.TrimSpace(text) == "" {
			continue
		}
		ln.AppendHistory(strings.ReplaceAll(text, "\n", " "))

		if _, err := cmd.in.EvalContext(ctx, text); err != nil {
			if errors.Is(err, context.Canceled) {
				return err
			}
			if panicerr.IsPanic(err) {
				cmd.log.Printf("ERROR", "%+v", err)
			} else {
				cmd.log.Printf("ERROR", "%v", err)
			}
		}
		fmt.Fprintln(cmd.out, facts.Repr(facts.List(cmd.in.Stack())))
		if err := cmd.out.Flush(); err != nil {
			return err
		}
	}
	return ctx.Err()
}

// readByParseProbe prompts for lines until they form text with no open quote;
// it returns false once input is exhausted.
func readByParseProbe(ln *liner.State, prompt, cont string) (string, bool) {
	var b strings.Builder
	for {
		p := prompt
		if b.Len() > 0 {
			p = cont
		}
		line, err := ln.Prompt(p)
		if errors.Is(err, io.EOF) {
			return "", false
		}
		if err == liner.ErrPromptAborted {
			b.Reset()
			continue
		}
		if err != nil {
			return "", false
		}

		if b.Len() > 0 {
			b.WriteByte('\n')
		}
		b.WriteString(line)
		if text := b.String(); !incomplete(text) {
			return text, true
		}
	}
}

func incomplete(text string) bool {
	_, err := facts.Tokenize(text)
	var perr facts.ParseError
	return errors.As(err, &perr) && perr.Incomplete()
}

func isTerminal(f *os.File) bool {
	info, err := f.Stat()
	return err == nil && info.Mode()&os.ModeCharDevice != 0
}
