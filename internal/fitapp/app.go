// internal/fitapp/app.go
package fitapp

import (
	"bufio"
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"math"
	"os"
	"slices"

	"semf/core/binding"
	"semf/core/fit"
	"semf/core/nuclide"
	"semf/internal/appcore"
	"semf/internal/clibase"
	"semf/internal/cmdutil"
	"semf/internal/constsfile"
	"semf/internal/fitcli"
	"semf/internal/jsonutil"
	"semf/internal/output"
	"semf/internal/runutil"
	"semf/internal/version"
)

const name = "semf-fit"

func Run(argv []string, stdout, stderr io.Writer) int {
	return RunContext(context.Background(), argv, stdout, stderr)
}

func RunContext(parent context.Context, argv []string, stdout, stderr io.Writer) int {
	return RunWithInput(parent, argv, os.Stdin, stdout, stderr)
}

// RunWithInput is RunContext with an explicit stdin for the '-' file.
func RunWithInput(parent context.Context, argv []string, stdin io.Reader, stdout, stderr io.Writer) int {
	outw := bufio.NewWriter(stdout)

	fs := fitcli.NewFlagSet(name)
	fs.SetOutput(io.Discard)

	if len(argv) == 0 {
		_, _ = fitcli.ParseArgs(fs, []string{"-h"})
		fs.SetOutput(outw)
		fs.Usage()
		return appcore.Flush(outw, stderr, 0)
	}

	opts, err := fitcli.ParseArgs(fs, argv)
	if err != nil {
		switch {
		case errors.Is(err, clibase.ErrPrintedAndExitOK):
			fitcli.PrintExamples(outw)
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

	base, _, err := runutil.ResolveConsts(opts.Preset, opts.ConstsFile)
	if err != nil {
		_, _ = fmt.Fprintln(stderr, "error:", err)
		return 2
	}
	if opts.Pretty || opts.Sort {
		cmdutil.Warnf(stderr, opts.Quiet, "--pretty and --sort do not apply to %s; residuals are ordered by nuclide", name)
	}
	kp := opts.KP
	if math.IsNaN(kp) {
		kp = base.KP
	}

	obs, code := readAll(opts.ObsFiles, stdin, stderr)
	if code != 0 {
		return code
	}
	if parent.Err() != nil {
		return 130
	}

	rep, err := fit.Fit(obs, kp)
	if err != nil {
		_, _ = fmt.Fprintln(stderr, "error:", err)
		return 2
	}

	if err := writeConsts(outw, opts, rep.Consts); err != nil {
		_, _ = fmt.Fprintln(stderr, err)
		return 3
	}
	if !opts.Quiet {
		if err := writeReport(stderr, opts, rep); err != nil {
			return 3
		}
	}
	if code := appcore.Flush(outw, stderr, 0); code != 0 || opts.Residuals == "" {
		return code
	}

	return writeResiduals(parent, stdout, stderr, opts, obs, rep.Consts)
}

func readAll(files []string, stdin io.Reader, stderr io.Writer) ([]fit.Observation, int) {
	var obs []fit.Observation
	for _, path := range files {
		var (
			list []fit.Observation
			err  error
		)
		if path == "-" {
			list, err = fit.ReadObservations(stdin, "<stdin>")
		} else {
			list, err = readFile(path)
		}
		if err != nil {
			_, _ = fmt.Fprintln(stderr, "error:", err)
			if errors.Is(err, os.ErrNotExist) || errors.Is(err, os.ErrPermission) {
				return nil, 3
			}
			return nil, 2
		}
		obs = append(obs, list...)
	}
	return obs, 0
}

func readFile(path string) ([]fit.Observation, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return fit.ReadObservations(f, path)
}

func writeConsts(w io.Writer, opts fitcli.Options, c binding.Consts) error {
	if opts.Format == fitcli.FormatJSON {
		return jsonutil.EncodePretty(w, output.ToAPIConsts(c, opts.Name, ""))
	}
	b, err := constsfile.Marshal(c, opts.Name)
	if err != nil {
		return err
	}
	_, err = w.Write(b)
	return err
}

func writeReport(w io.Writer, opts fitcli.Options, rep fit.Report) error {
	if opts.Output != "text" {
		return jsonutil.Encode(w, output.ToAPIFit(rep, opts.Name), "")
	}
	_, err := fmt.Fprintf(w, "%s: %d observations, k_p %g, rms %.4f MeV, max |residual| %.4f MeV, mean %.4f MeV\n",
		name, rep.N, rep.Consts.KP, rep.RMS, rep.MaxAbs, rep.Mean)
	return err
}

// writeResiduals streams observed − predicted per observation through the
// residual writer, to stdout after the constants or to a file.
func writeResiduals(ctx context.Context, stdout, stderr io.Writer, opts fitcli.Options, obs []fit.Observation, c binding.Consts) int {
	dst := stdout
	if opts.Residuals != "-" {
		f, err := os.Create(opts.Residuals)
		if err != nil {
			_, _ = fmt.Fprintln(stderr, "error:", err)
			return 3
		}
		defer f.Close()
		dst = f
	}
	visit := func(o fit.Observation) (bool, output.Residual, error) {
		n := nuclide.Nuclide{A: o.A, Z: o.Z}
		return true, output.Residual{
			Nuclide:   n,
			Observed:  o.Energy,
			Predicted: binding.Evaluate(o.A, o.Z, c),
		}, nil
	}
	return appcore.Run(ctx, dst, stderr, appcore.Options{
		Threads:          opts.Threads,
		Quiet:            opts.Quiet,
		NoResultExitCode: opts.NoResultExitCode,
	}, slices.Values(obs), visit, appcore.NewResidualWriterFactory(opts.Output, opts.Header))
}
