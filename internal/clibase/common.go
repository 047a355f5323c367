// internal/clibase/common.go
package clibase

import (
	"errors"
	"flag"
	"fmt"
	"slices"

	"semf/core/binding"
	"semf/internal/config"
)

// Output formats accepted by --output.
var Formats = []string{"text", "json", "jsonl"}

// Common holds CLI fields shared by semf, semf-scan and semf-fit.
type Common struct {
	// Coefficients
	Preset     string
	ConstsFile string

	// Performance
	Threads int

	// Output
	Output           string // text|json|jsonl
	Pretty           bool
	Lang             string
	Sort             bool
	Header           bool
	NoResultExitCode int

	// Misc
	Quiet   bool
	Version bool
}

// Register wires shared flags onto fs with defaults taken from env and
// returns a pointer to the “no-header” bool that AfterParse folds into
// Common.Header.
func Register(fs *flag.FlagSet, c *Common, env config.Env) *bool {
	// Coefficients
	fs.StringVar(&c.Preset, "preset", env.Preset, "coefficient preset: fit1 | fit2")
	fs.StringVar(&c.Preset, "P", env.Preset, "alias of --preset")
	fs.StringVar(&c.ConstsFile, "consts", env.ConstsFile, "YAML/JSON constants file (overrides --preset)")

	// Performance
	fs.IntVar(&c.Threads, "threads", env.Threads, "worker threads (0=all CPUs)")
	fs.IntVar(&c.Threads, "t", env.Threads, "alias of --threads")

	// Output
	fs.StringVar(&c.Output, "output", env.Output, "output: text | json | jsonl")
	fs.StringVar(&c.Output, "o", env.Output, "alias of --output")
	fs.BoolVar(&c.Pretty, "pretty", false, "append a term breakdown per row (text) [false]")
	fs.StringVar(&c.Lang, "lang", env.Lang, "number formatting language for --pretty")
	fs.BoolVar(&c.Sort, "sort", false, "sort outputs deterministically [false]")
	noHeader := false
	fs.BoolVar(&noHeader, "no-header", false, "suppress header line [false]")
	fs.IntVar(&c.NoResultExitCode, "no-result-exit-code", 1, "exit code when nothing is emitted [1]")

	// Misc
	fs.BoolVar(&c.Quiet, "quiet", false, "suppress non-essential warnings [false]")
	fs.BoolVar(&c.Quiet, "q", false, "alias of --quiet")
	fs.BoolVar(&c.Version, "v", false, "print version and exit [false]")
	fs.BoolVar(&c.Version, "version", false, "print version and exit [false]")

	return &noHeader
}

// SetDefault changes a registered flag's value and the default shown in usage.
func SetDefault(fs *flag.FlagSet, name, value string) error {
	f := fs.Lookup(name)
	if f == nil {
		return fmt.Errorf("no flag %q", name)
	}
	if err := f.Value.Set(value); err != nil {
		return err
	}
	f.DefValue = value
	return nil
}

// AfterParse finalizes header then runs shared validation.
func AfterParse(c *Common, noHeader *bool) error {
	c.Header = !*noHeader
	return Validate(c)
}

// Validate applies shared CLI invariants used by all tools.
func Validate(c *Common) error {
	if c.ConstsFile == "" {
		if _, ok := binding.CanonicalPreset(c.Preset); !ok {
			return fmt.Errorf("%w %q", binding.ErrUnknownPreset, c.Preset)
		}
	}
	if c.Threads < 0 {
		return errors.New("--threads must be ≥ 0")
	}
	if !slices.Contains(Formats, c.Output) {
		return fmt.Errorf("invalid --output %q", c.Output)
	}
	if c.NoResultExitCode < 0 || c.NoResultExitCode > 255 {
		return errors.New("--no-result-exit-code must be between 0 and 255")
	}
	return nil
}
