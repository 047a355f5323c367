// internal/appcore/core.go
package appcore

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"iter"

	"semf/core/binding"
	"semf/internal/cmdutil"
	"semf/internal/pipeline"
	"semf/internal/runutil"
	"semf/internal/writers"
)

type Options struct {
	Threads          int
	Quiet            bool // silences the "no results" warning
	NoResultExitCode int
}

type VisitorFunc[J, T any] func(J) (keep bool, out T, err error)

type WriterFactory[T any] interface {
	Start(out io.Writer, bufSize int) (chan<- T, <-chan error)
}

// Run evaluates jobs through visit on the shared pipeline and streams kept
// results to the writer built by wf. It returns the process exit code.
func Run[J, T any](
	parent context.Context,
	stdout, stderr io.Writer,
	o Options,
	jobs iter.Seq[J],
	visit VisitorFunc[J, T],
	wf WriterFactory[T],
) int {
	outw := bufio.NewWriter(stdout)
	thr := runutil.Threads(o.Threads)

	inCh, writeErr := wf.Start(outw, thr*4)

	ctx, cancel := context.WithCancel(parent)
	defer cancel()

	total, perr := cmdutil.RunStream(
		ctx,
		pipeline.Config{Threads: thr},
		jobs,
		visit,
		func(x T) error {
			select {
			case inCh <- x:
				return nil
			case <-ctx.Done():
				return ctx.Err()
			}
		},
	)

	close(inCh)

	if werr := <-writeErr; writers.IsBrokenPipe(werr) {
		return 0
	} else if werr != nil {
		fmt.Fprintln(stderr, werr)
		return 3
	}
	if e := outw.Flush(); writers.IsBrokenPipe(e) {
		return 0
	} else if e != nil {
		fmt.Fprintln(stderr, e)
		return 3
	}

	if perr != nil {
		return ExitCode(stderr, perr)
	}
	if total == 0 {
		cmdutil.Warnf(stderr, o.Quiet, "no results")
		return o.NoResultExitCode
	}
	return 0
}

// ExitCode prints err and maps it to the documented exit codes.
func ExitCode(stderr io.Writer, err error) int {
	switch {
	case err == nil:
		return 0
	case errors.Is(err, context.Canceled):
		return 130
	case errors.Is(err, binding.ErrInvalidInput), errors.Is(err, binding.ErrInvalidConsts):
		fmt.Fprintln(stderr, "error:", err)
		return 2
	default:
		fmt.Fprintln(stderr, "error:", err)
		return 3
	}
}

// Flush flushes outw and returns code, 0 on a broken pipe, or 3 when the
// flush itself fails.
func Flush(outw *bufio.Writer, stderr io.Writer, code int) int {
	if e := outw.Flush(); writers.IsBrokenPipe(e) {
		return 0
	} else if e != nil {
		fmt.Fprintln(stderr, e)
		return 3
	}
	return code
}
