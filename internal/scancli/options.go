package scancli

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"math"
	"strconv"

	"semf/internal/clibase"
	"semf/internal/cliutil"
	"semf/internal/common"
	"semf/internal/config"
)

type Options struct {
	clibase.Common

	// Chart window
	MinA, MaxA int
	MinZ, MaxZ int // MaxZ -1 = up to A

	// Selection
	Valley    bool
	MinEnergy float64 // NaN = no threshold
	Rank      string

	// Columns
	Terms      bool
	Separation bool
}

func NewFlagSet(name string) *flag.FlagSet {
	fs := flag.NewFlagSet(name, flag.ContinueOnError)
	clibase.UsageCommon(fs, name, func(out io.Writer, def func(string) string) {
		_, _ = fmt.Fprintln(out, "Usage:")
		_, _ = fmt.Fprintf(out, "  %s [options] --min-a 1 --max-a 300\n", name)

		_, _ = fmt.Fprintln(out, "\nChart:")
		_, _ = fmt.Fprintf(out, "      --min-a int             Smallest mass number [%s]\n", def("min-a"))
		_, _ = fmt.Fprintf(out, "      --max-a int             Largest mass number [%s]\n", def("max-a"))
		_, _ = fmt.Fprintf(out, "      --min-z int             Smallest proton number [%s]\n", def("min-z"))
		_, _ = fmt.Fprintf(out, "      --max-z int             Largest proton number (-1=up to A) [%s]\n", def("max-z"))

		_, _ = fmt.Fprintln(out, "\nSelection:")
		_, _ = fmt.Fprintf(out, "      --valley                Only the most bound Z per A [%s]\n", def("valley"))
		_, _ = fmt.Fprintln(out, "      --min-energy float      Drop nuclides bound by less than this (MeV)")
		_, _ = fmt.Fprintf(out, "      --rank string           Sort key: nuclide | energy | per-nucleon [%s]\n", def("rank"))
		_, _ = fmt.Fprintf(out, "      --terms                 Add the five term columns [%s]\n", def("terms"))
		_, _ = fmt.Fprintf(out, "      --separation            Add neutron/proton separation energies [%s]\n", def("separation"))
	})
	return fs
}

// PrintExamples prints a tiny, focused quickstart for semf-scan.
func PrintExamples(out io.Writer) {
	clibase.PrintExamples(out, "semf-scan",
		"Evaluate a window of the nuclide chart concurrently.",
		"semf-scan --max-a 60",
		"semf-scan --valley --max-a 260 -o jsonl",
		"semf-scan --min-a 50 --max-a 70 --rank per-nucleon --no-header | head",
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
	o := Options{MinEnergy: math.NaN()}
	var help bool
	var showExamples bool

	var c clibase.Common
	noHeader := clibase.Register(fs, &c, env)
	if err := clibase.SetDefault(fs, "sort", "true"); err != nil {
		return o, err
	}

	// Chart flags
	fs.IntVar(&o.MinA, "min-a", 1, "smallest mass number [1]")
	fs.IntVar(&o.MaxA, "max-a", 300, "largest mass number [300]")
	fs.IntVar(&o.MinZ, "min-z", 0, "smallest proton number [0]")
	fs.IntVar(&o.MaxZ, "max-z", -1, "largest proton number (-1=up to A) [-1]")

	// Selection flags
	fs.BoolVar(&o.Valley, "valley", false, "only the most bound Z per A [false]")
	fs.Func("min-energy", "drop nuclides bound by less than this (MeV)", func(s string) error {
		v, err := strconv.ParseFloat(s, 64)
		if err != nil || math.IsNaN(v) {
			return fmt.Errorf("invalid --min-energy %q", s)
		}
		o.MinEnergy = v
		return nil
	})
	fs.StringVar(&o.Rank, "rank", common.RankNuclide, "sort key: nuclide | energy | per-nucleon")
	fs.BoolVar(&o.Terms, "terms", false, "add term columns [false]")
	fs.BoolVar(&o.Separation, "separation", false, "add S_n / S_p columns [false]")

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
		return o, fmt.Errorf("unexpected argument %q", posArgs[0])
	}
	if o.MaxA < o.MinA {
		return o, fmt.Errorf("--max-a (%d) is smaller than --min-a (%d)", o.MaxA, o.MinA)
	}
	if o.MaxA < 1 {
		return o, errors.New("--max-a must be ≥ 1")
	}
	if o.MaxZ >= 0 && o.MaxZ < o.MinZ {
		return o, fmt.Errorf("--max-z (%d) is smaller than --min-z (%d)", o.MaxZ, o.MinZ)
	}
	rank, err := common.ParseRank(o.Rank)
	if err != nil {
		return o, err
	}
	o.Rank = rank

	o.Common = c
	return o, nil
}
