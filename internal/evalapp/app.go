// internal/evalapp/app.go
package evalapp

import (
	"bufio"
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"slices"

	"semf/core/nuclide"
	"semf/internal/appcore"
	"semf/internal/clibase"
	"semf/internal/cliutil"
	"semf/internal/cmdutil"
	"semf/internal/common"
	"semf/internal/evalcli"
	"semf/internal/output"
	"semf/internal/pretty"
	"semf/internal/runutil"
	"semf/internal/tracelog"
	"semf/internal/version"
	"semf/internal/visitors"
	"semf/internal/writers"
)

const name = "semf"

func Run(argv []string, stdout, stderr io.Writer) int {
	return RunContext(context.Background(), argv, stdout, stderr)
}

func RunContext(parent context.Context, argv []string, stdout, stderr io.Writer) int {
	return RunWithInput(parent, argv, os.Stdin, stdout, stderr)
}

// RunWithInput is RunContext with an explicit stdin for the '-' spec.
func RunWithInput(parent context.Context, argv []string, stdin io.Reader, stdout, stderr io.Writer) int {
	outw := bufio.NewWriter(stdout)

	fs := evalcli.NewFlagSet(name)
	fs.SetOutput(io.Discard)

	if len(argv) == 0 {
		_, _ = evalcli.ParseArgs(fs, []string{"-h"})
		fs.SetOutput(outw)
		fs.Usage()
		return appcore.Flush(outw, stderr, 0)
	}

	opts, err := evalcli.ParseArgs(fs, argv)
	if err != nil {
		switch {
		case errors.Is(err, clibase.ErrPrintedAndExitOK):
			evalcli.PrintExamples(outw)
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

	list, err := collect(opts, stdin)
	if err != nil {
		_, _ = fmt.Fprintln(stderr, "error:", err)
		return 2
	}

	v := visitors.NewBinding(c, label)
	v.Separation = opts.Separation
	if opts.Trace {
		v.Log = tracelog.New(stderr, name, tracelog.TermLevel)
	}

	textOpts := output.TextOptions{
		Header: opts.Header,
		Cols:   output.Columns{Terms: opts.Terms, Separation: opts.Separation},
	}
	if opts.Pretty {
		if opts.Output != "text" {
			cmdutil.Warnf(stderr, opts.Quiet, "--pretty only applies to text output")
		}
		tag, warns := runutil.ResolveLang(opts.Lang)
		for _, w := range warns {
			cmdutil.Warnf(stderr, opts.Quiet, "%s", w)
		}
		po := pretty.DefaultOptions
		po.Lang = tag
		textOpts.Pretty = pretty.Renderer(po)
	}
	wf := appcore.NewResultWriterFactory(opts.Output, writers.ResultOptions{
		Sort: opts.Sort,
		Rank: common.RankNuclide,
		Text: textOpts,
	})

	// Input order is kept unless --sort reorders anyway.
	threads := 1
	if opts.Sort {
		threads = opts.Threads
	}
	return appcore.Run(parent, stdout, stderr, appcore.Options{
		Threads:          threads,
		Quiet:            opts.Quiet,
		NoResultExitCode: opts.NoResultExitCode,
	}, slices.Values(list), v.Visit, wf)
}

// collect parses every requested nuclide before anything is evaluated, so an
// invalid spec leaves stdout untouched.
func collect(opts evalcli.Options, stdin io.Reader) ([]nuclide.Nuclide, error) {
	var specs []string
	for _, s := range opts.Specs {
		if s != "-" {
			specs = append(specs, s)
			continue
		}
		toks, err := cliutil.ReadTokens(stdin)
		if err != nil {
			return nil, err
		}
		specs = append(specs, toks...)
	}

	var list []nuclide.Nuclide
	if opts.A >= 0 {
		n := nuclide.Nuclide{A: opts.A, Z: opts.Z}
		if err := n.Validate(); err != nil {
			return nil, err
		}
		list = append(list, n)
	}
	for _, s := range specs {
		n, err := nuclide.Parse(s)
		if err != nil {
			return nil, err
		}
		list = append(list, n)
	}
	return list, nil
}
