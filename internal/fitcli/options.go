package fitcli

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"math"
	"strconv"

	"semf/internal/clibase"
	"semf/internal/cliutil"
	"semf/internal/config"
)

// Constants output formats.
const (
	FormatYAML = "yaml"
	FormatJSON = "json"
)

type Options struct {
	clibase.Common

	ObsFiles  []string // observation files or "-"
	KP        float64  // NaN = exponent of the base preset
	Format    string   // yaml|json
	Name      string   // label written into the constants
	Residuals string   // residual table destination, "" = none
}

func NewFlagSet(name string) *flag.FlagSet {
	fs := flag.NewFlagSet(name, flag.ContinueOnError)
	clibase.UsageCommon(fs, name, func(out io.Writer, def func(string) string) {
		_, _ = fmt.Fprintln(out, "Usage:")
		_, _ = fmt.Fprintf(out, "  %s [options] OBSERVATIONS...\n", name)
		_, _ = fmt.Fprintln(out, "\nObservation rows: 'A Z B_MeV' or 'NUCLIDE B_MeV'; '#' comments; '-' reads stdin.")

		_, _ = fmt.Fprintln(out, "\nFit:")
		_, _ = fmt.Fprintln(out, "      --kp float              Pairing exponent held fixed (default: from --preset)")
		_, _ = fmt.Fprintf(out, "      --format string         Constants format: yaml | json [%s]\n", def("format"))
		_, _ = fmt.Fprintf(out, "      --name string           Label stored with the constants [%s]\n", def("name"))
		_, _ = fmt.Fprintln(out, "      --residuals file        Write per-observation residuals (--output format)")
	})
	return fs
}

// PrintExamples prints a tiny, focused quickstart for semf-fit.
func PrintExamples(out io.Writer) {
	clibase.PrintExamples(out, "semf-fit",
		"Refit the five linear coefficients to measured binding energies.",
		"semf-fit ame.tsv > mine.yaml",
		"semf --consts mine.yaml Fe56",
		"semf-fit --kp -0.75 --residuals res.tsv 'data/*.tsv'",
	)
}

// ParseArgs parses argv with defaults from the process environment.
func ParseArgs(fs *flag.FlagSet, argv []string) (Options, error) {
	env, err := config.Load()
	if err != nil {
		return Options{}, err
	}
	return ParseArgsEnv(fs, argv, env)
}

func ParseArgsEnv(fs *flag.FlagSet, argv []string, env config.Env) (Options, error) {
	o := Options{KP: math.NaN()}
	var help bool
	var showExamples bool

	var c clibase.Common
	noHeader := clibase.Register(fs, &c, env)

	fs.Func("kp", "pairing exponent held fixed", func(s string) error {
		v, err := strconv.ParseFloat(s, 64)
		if err != nil || math.IsNaN(v) || math.IsInf(v, 0) {
			return fmt.Errorf("invalid --kp %q", s)
		}
		o.KP = v
		return nil
	})
	fs.StringVar(&o.Format, "format", FormatYAML, "constants format: yaml | json")
	fs.StringVar(&o.Name, "name", "fit", "label stored with the constants")
	fs.StringVar(&o.Residuals, "residuals", "", "write residuals to file ('-' = stdout after constants)")

	fs.BoolVar(&help, "h", false, "show this help [false]")
	fs.BoolVar(&showExamples, "examples", false, "show quickstart examples and exit [false]")

	flagArgs, posArgs := cliutil.SplitFlagsAndPositionals(fs, argv)
	if err := fs.Parse(flagArgs); err != nil {
		return o, err
	}
	if showExamples {
		return o, clibase.ErrPrintedAndExitOK
	}
	if help {
		return o, flag.ErrHelp
	}
	if c.Version {
		o.Common = c
		return o, nil
	}
	if err := clibase.AfterParse(&c, noHeader); err != nil {
		return o, err
	}

	if len(posArgs) > 0 {
		exp, err := cliutil.ExpandPositionals(posArgs)
		if err != nil {
			return o, err
		}
		o.ObsFiles = exp
	}
	if len(o.ObsFiles) == 0 {
		return o, errors.New("at least one observation file is required")
	}
	switch o.Format {
	case FormatYAML, FormatJSON:
	default:
		return o, fmt.Errorf("invalid --format %q", o.Format)
	}

	o.Common = c
	return o, nil
}
