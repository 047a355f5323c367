// internal/clibase/examples.go
package clibase

import (
	"errors"
	"fmt"
	"io"
)

// ErrPrintedAndExitOK is returned by ParseArgs when --examples was given.
// Apps print the quickstart and exit 0.
var ErrPrintedAndExitOK = errors.New("examples requested")

// PrintExamples writes a quickstart: a one-line summary, the example
// command lines, and a pointer to --help.
func PrintExamples(out io.Writer, name, summary string, examples ...string) {
	if out == nil {
		return
	}
	_, _ = fmt.Fprintf(out, "%s: quickstart\n\n%s\n", name, summary)
	if len(examples) > 0 {
		_, _ = fmt.Fprintln(out, "\nExamples:")
		for _, ex := range examples {
			_, _ = fmt.Fprintf(out, "  %s\n", ex)
		}
	}
	_, _ = fmt.Fprintln(out, "\nTip: run with --help for all flags.")
}
