// internal/writers/registry.go
package writers

import (
	"fmt"
	"io"
	"sort"

	"semf/internal/output"
)

// ResultOptions configure result writers.
type ResultOptions struct {
	Sort bool   // buffer and sort before writing
	Rank string // common.Rank*; used when Sort is set
	Text output.TextOptions
}

// Format handlers consume the whole channel and return the first error.
type (
	resultFormat   func(out io.Writer, in <-chan output.Row, o ResultOptions) error
	residualFormat func(out io.Writer, in <-chan output.Residual, header bool) error
)

// Writer registries (format → handler). Register in init() blocks.
var (
	resultFormats   = map[string]resultFormat{}
	residualFormats = map[string]residualFormat{}
)

// Register helpers (idempotent last-wins).
func RegisterResult(format string, fn resultFormat)     { resultFormats[format] = fn }
func RegisterResidual(format string, fn residualFormat) { residualFormats[format] = fn }

// ResultFormats lists registered result formats, sorted.
func ResultFormats() []string {
	out := make([]string, 0, len(resultFormats))
	for k := range resultFormats {
		out = append(out, k)
	}
	sort.Strings(out)
	return out
}

func drain[T any](in <-chan T) {
	for range in {
	}
}

// StartResultWriter spins up a writer goroutine for evaluated rows.
func StartResultWriter(out io.Writer, format string, o ResultOptions, bufSize int) (chan<- output.Row, <-chan error) {
	if bufSize <= 0 {
		bufSize = 64
	}
	in := make(chan output.Row, bufSize)
	errCh := make(chan error, 1)
	go func() {
		fn, ok := resultFormats[format]
		if !ok {
			drain(in)
			errCh <- fmt.Errorf("unknown result format %q (no writer registered)", format)
			return
		}
		errCh <- fn(out, in, o)
	}()
	return in, errCh
}

// StartResidualWriter spins up a writer goroutine for fit residuals.
func StartResidualWriter(out io.Writer, format string, header bool, bufSize int) (chan<- output.Residual, <-chan error) {
	if bufSize <= 0 {
		bufSize = 64
	}
	in := make(chan output.Residual, bufSize)
	errCh := make(chan error, 1)
	go func() {
		fn, ok := residualFormats[format]
		if !ok {
			drain(in)
			errCh <- fmt.Errorf("unknown residual format %q (no writer registered)", format)
			return
		}
		errCh <- fn(out, in, header)
	}()
	return in, errCh
}
