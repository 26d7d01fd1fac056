// Command xplrun loads an XPL script and runs it against a small demo
// registry (an integer stack plus push/add/sub/mul/print/say/gt0/eq0),
// exercising the if/then/elseif/else/endif/or/and/yield control layer that
// xpl.Registry always provides.
package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"io/ioutil"
	"os"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/jcorbin/xpl/internal/flushio"
	"github.com/jcorbin/xpl/internal/logio"
	"github.com/jcorbin/xpl/internal/panicerr"
	"github.com/jcorbin/xpl/xpl"
)

var (
	traceFlag     = flag.Bool("trace", false, "log each dispatched call")
	timeoutFlag   = flag.Duration("timeout", 0, "abort if the run does not finish within this duration (0 disables)")
	dumpFlag      = flag.Bool("dump", false, "dump interpreter state after the run")
	stepLimitFlag = flag.Uint("step-limit", 0, "abort after this many dispatch steps (0 disables)")
)

func main() {
	flag.Parse()

	log := &logio.Logger{}
	log.SetOutput(os.Stderr)
	defer log.Close()

	if err := run(log); err != nil {
		log.Errorf("%v", err)
	}
	os.Exit(log.ExitCode())
}

func run(log *logio.Logger) error {
	text, err := readScript(flag.Args())
	if err != nil {
		return err
	}

	out := flushio.NewWriteFlusher(os.Stdout)
	defer out.Flush()

	d := &demoStack{out: out}
	reg := demoRegistry()

	opts := []xpl.Option{xpl.WithUserdata(d)}
	if *stepLimitFlag != 0 {
		opts = append(opts, xpl.WithStepLimit(*stepLimitFlag))
	}

	var tracer *tracePipe
	if *traceFlag {
		tracer = newTracePipe(log)
		opts = append(opts, xpl.WithLogf(tracer.logf))
	}

	ctx := xpl.Open(reg, opts...)
	ctx.Load(text)

	runErr := panicerr.Recover("xplrun", func() error {
		g, gctx := errgroup.WithContext(context.Background())
		if tracer != nil {
			g.Go(func() error { return tracer.drain(gctx) })
		}
		g.Go(func() error {
			defer func() {
				if tracer != nil {
					tracer.close()
				}
			}()
			status := runWithTimeout(ctx, *timeoutFlag)
			if status != xpl.StatusOK {
				return xpl.StatusError{Status: status, Detail: "run"}
			}
			return nil
		})
		return g.Wait()
	})

	if *dumpFlag {
		dumpState(out, ctx, d)
	}

	return runErr
}

// runWithTimeout runs ctx to completion, but if d is positive and the run
// has not finished within d, returns StatusErr early. The interpreter has
// no cooperative cancellation point of its own (Run drives straight
// through to completion, suspension, or error), so an expired timeout
// abandons the in-flight goroutine rather than stopping it cleanly.
func runWithTimeout(ctx *xpl.Context, d time.Duration) xpl.Status {
	if d <= 0 {
		return ctx.Run()
	}
	done := make(chan xpl.Status, 1)
	go func() { done <- ctx.Run() }()
	select {
	case status := <-done:
		return status
	case <-time.After(d):
		return xpl.StatusErr
	}
}

func readScript(args []string) (string, error) {
	if len(args) == 0 || args[0] == "-" {
		b, err := ioutil.ReadAll(os.Stdin)
		return string(b), err
	}
	b, err := ioutil.ReadFile(args[0])
	return string(b), err
}

// tracePipe routes -trace log lines through an io.Pipe so that producing
// them (inside callback dispatch) and consuming them (formatting to the
// logger) run on separate goroutines. Each pipe write still blocks until
// the drain goroutine has read it.
type tracePipe struct {
	pr *io.PipeReader
	pw *io.PipeWriter
	w  *logio.Writer
}

func newTracePipe(log *logio.Logger) *tracePipe {
	pr, pw := io.Pipe()
	return &tracePipe{pr: pr, pw: pw, w: &logio.Writer{Logf: log.Leveledf("TRACE")}}
}

func (t *tracePipe) logf(mess string, args ...interface{}) {
	fmt.Fprintf(t.pw, mess+"\n", args...)
}

func (t *tracePipe) close() { t.pw.Close() }

// drain copies traced call lines from the pipe into a logio.Writer, which
// buffers and splits them back into Logf calls one line at a time. Running
// this on its own goroutine means producing a trace line (inside callback
// dispatch) never blocks on the logger directly.
func (t *tracePipe) drain(ctx context.Context) error {
	defer t.w.Close()
	_, err := io.Copy(t.w, t.pr)
	if err != nil && err != io.ErrClosedPipe {
		return err
	}
	return nil
}
