package evalcli

import (
	"errors"
	"flag"
	"fmt"
	"io"

	"semf/internal/clibase"
	"semf/internal/cliutil"
	"semf/internal/config"
)

type Options struct {
	clibase.Common

	// Input
	Specs []string // nuclide specs; "-" reads one per stdin line
	A, Z  int      // -a/-z pair, -1 when unset

	// Evaluation
	Trace      bool
	Terms      bool
	Separation bool
}

func NewFlagSet(name string) *flag.FlagSet {
	fs := flag.NewFlagSet(name, flag.ContinueOnError)
	clibase.UsageCommon(fs, name, func(out io.Writer, def func(string) string) {
		_, _ = fmt.Fprintln(out, "Usage:")
		_, _ = fmt.Fprintf(out, "  %s [options] NUCLIDE...\n", name)
		_, _ = fmt.Fprintf(out, "  %s [options] -a A -z Z\n", name)
		_, _ = fmt.Fprintln(out, "\nNuclides: Fe56, Fe-56, 56Fe, 56:26 (A:Z), 26056, 260560000, n, p, '-' (stdin)")

		_, _ = fmt.Fprintln(out, "\nEvaluation:")
		_, _ = fmt.Fprintln(out, "  -a int                      Mass number (with -z)")
		_, _ = fmt.Fprintln(out, "  -z int                      Proton number (with -a)")
		_, _ = fmt.Fprintf(out, "      --terms                 Add the five term columns [%s]\n", def("terms"))
		_, _ = fmt.Fprintf(out, "      --separation            Add neutron/proton separation energies [%s]\n", def("separation"))
		_, _ = fmt.Fprintf(out, "      --trace                 Log each term to stderr [%s]\n", def("trace"))
	})
	return fs
}

// PrintExamples prints a tiny, focused quickstart for semf.
func PrintExamples(out io.Writer) {
	clibase.PrintExamples(out, "semf",
		"Binding energy of one or more nuclides.",
		"semf Fe56",
		"semf --preset fit2 --terms -o json U-238 208:82",
		"semf --pretty --lang de Pb208",
		"printf 'He4\\nC12\\n' | semf --separation -",
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
	var o Options
	var help bool
	var showExamples bool

	// Shared flags via clibase
	var c clibase.Common
	noHeader := clibase.Register(fs, &c, env)

	// Evaluation flags
	fs.IntVar(&o.A, "a", -1, "mass number (with -z)")
	fs.IntVar(&o.Z, "z", -1, "proton number (with -a)")
	fs.BoolVar(&o.Terms, "terms", false, "add term columns [false]")
	fs.BoolVar(&o.Separation, "separation", false, "add S_n / S_p columns [false]")
	fs.BoolVar(&o.Trace, "trace", env.Trace, "log each term to stderr")

	// Help / examples
	fs.BoolVar(&help, "h", false, "show this help [false]")
	fs.BoolVar(&showExamples, "examples", false, "show quickstart examples and exit [false]")

	// Split & parse
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
	o.Specs = posArgs

	// Evaluation-specific validation
	switch {
	case (o.A >= 0) != (o.Z >= 0):
		return o, errors.New("-a and -z must be supplied together")
	case o.A < 0 && len(o.Specs) == 0:
		return o, errors.New("provide at least one nuclide or -a/-z")
	}

	o.Common = c
	return o, nil
}
