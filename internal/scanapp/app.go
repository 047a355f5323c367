// internal/scanapp/app.go
package scanapp

import (
	"bufio"
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"iter"

	"semf/core/nuclide"
	"semf/internal/appcore"
	"semf/internal/clibase"
	"semf/internal/cmdutil"
	"semf/internal/output"
	"semf/internal/pretty"
	"semf/internal/runutil"
	"semf/internal/scancli"
	"semf/internal/version"
	"semf/internal/visitors"
	"semf/internal/writers"
)

const name = "semf-scan"

func Run(argv []string, stdout, stderr io.Writer) int {
	return RunContext(context.Background(), argv, stdout, stderr)
}

func RunContext(parent context.Context, argv []string, stdout, stderr io.Writer) int {
	outw := bufio.NewWriter(stdout)

	fs := scancli.NewFlagSet(name)
	fs.SetOutput(io.Discard)

	if len(argv) == 0 {
		_, _ = scancli.ParseArgs(fs, []string{"-h"})
		fs.SetOutput(outw)
		fs.Usage()
		return appcore.Flush(outw, stderr, 0)
	}

	opts, err := scancli.ParseArgs(fs, argv)
	if err != nil {
		switch {
		case errors.Is(err, clibase.ErrPrintedAndExitOK):
			scancli.PrintExamples(outw)
			return appcore.Flush(outw, stderr, 0)
		case errors.Is(err, flag.ErrHelp):
			fs.SetOutput(outw)
			fs.Usage()
			return appcore.Flush(outw, stderr, 0)
		}
		_, _ = fmt.Fprintln(stderr, err)
		fs.SetOutput(outw)
		fs.Usage()
		return appcore.Flush(outw, stderr, 2)
	}

	if opts.Version {
		_, _ = fmt.Fprintf(outw, "%s version %s\n", name, version.Version)
		return appcore.Flush(outw, stderr, 0)
	}

	c, label, err := runutil.ResolveConsts(opts.Preset, opts.ConstsFile)
	if err != nil {
		_, _ = fmt.Fprintln(stderr, "error:", err)
		return 2
	}

	win, warns := runutil.ClampScan(opts.MinA, opts.MaxA, opts.MinZ, opts.MaxZ)
	for _, w := range warns {
		cmdutil.Warnf(stderr, opts.Quiet, "%s", w)
	}

	v := visitors.NewBinding(c, label)
	v.Separation = opts.Separation
	v.MinEnergy = opts.MinEnergy

	textOpts := output.TextOptions{
		Header: opts.Header,
		Cols:   output.Columns{Terms: opts.Terms, Separation: opts.Separation},
	}
	if opts.Pretty {
		if opts.Output != "text" {
			cmdutil.Warnf(stderr, opts.Quiet, "--pretty only applies to text output")
		}
		tag, lw := runutil.ResolveLang(opts.Lang)
		for _, w := range lw {
			cmdutil.Warnf(stderr, opts.Quiet, "%s", w)
		}
		po := pretty.DefaultOptions
		po.Lang = tag
		textOpts.Pretty = pretty.Renderer(po)
	}
	wf := appcore.NewResultWriterFactory(opts.Output, writers.ResultOptions{
		Sort: opts.Sort,
		Rank: opts.Rank,
		Text: textOpts,
	})

	core := appcore.Options{
		Threads:          opts.Threads,
		Quiet:            opts.Quiet,
		NoResultExitCode: opts.NoResultExitCode,
	}
	if opts.Valley {
		if win.MinZ > 0 || win.MaxZ >= 0 {
			cmdutil.Warnf(stderr, opts.Quiet, "--valley searches every Z; ignoring --min-z/--max-z")
		}
		return appcore.Run(parent, stdout, stderr, core, massNumbers(win.MinA, win.MaxA), v.VisitValley, wf)
	}
	return appcore.Run(parent, stdout, stderr, core,
		nuclide.Chart(win.MinA, win.MaxA, win.MinZ, win.MaxZ), v.Visit, wf)
}

func massNumbers(lo, hi int) iter.Seq[int] {
	return func(yield func(int) bool) {
		for a := lo; a <= hi; a++ {
			if !yield(a) {
				return
			}
		}
	}
}
