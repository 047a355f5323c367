// internal/clibase/usage.go
package clibase

import (
	"flag"
	"fmt"
	"io"

	"semf/internal/version"
)

// UsageCommon installs a shared Usage() handler on fs.
// extra prints tool-specific sections (usage line, tool flags).
func UsageCommon(fs *flag.FlagSet, name string, extra func(out io.Writer, def func(string) string)) {
	fs.Usage = func() {
		out := fs.Output()
		def := func(flagName string) string {
			if f := fs.Lookup(flagName); f != nil {
				return f.DefValue
			}
			return ""
		}

		// Header
		fmt.Fprintf(out, "%s – semi-empirical nuclear binding energy toolkit\n\n", name)
		fmt.Fprintln(out, "License: MIT")
		fmt.Fprintf(out, "Version: %s\n\n", version.Version)

		if extra != nil {
			extra(out, def)
		}

		// Shared blocks
		fmt.Fprintln(out, "\nCoefficients:")
		fmt.Fprintf(out, "  -P, --preset string         Coefficient preset: fit1 | fit2 [%s]\n", def("preset"))
		fmt.Fprintln(out, "      --consts file           YAML/JSON constants file (overrides --preset)")

		fmt.Fprintln(out, "\nPerformance:")
		fmt.Fprintf(out, "  -t, --threads int           Worker threads (0=all CPUs) [%s]\n", def("threads"))

		fmt.Fprintln(out, "\nOutput:")
		fmt.Fprintf(out, "  -o, --output string         Output: text | json | jsonl [%s]\n", def("output"))
		fmt.Fprintf(out, "      --pretty                Term breakdown block per row (text) [%s]\n", def("pretty"))
		fmt.Fprintf(out, "      --lang string           Number formatting language for --pretty [%s]\n", def("lang"))
		fmt.Fprintf(out, "      --sort                  Sort outputs deterministically [%s]\n", def("sort"))
		fmt.Fprintf(out, "      --no-header             Suppress header line [%s]\n", def("no-header"))
		fmt.Fprintf(out, "      --no-result-exit-code int  Exit code when nothing is emitted [%s]\n", def("no-result-exit-code"))

		fmt.Fprintln(out, "\nEnvironment:")
		fmt.Fprintln(out, "  SEMF_PRESET, SEMF_CONSTS, SEMF_OUTPUT, SEMF_LANG, SEMF_THREADS, SEMF_TRACE")
		fmt.Fprintln(out, "  set the defaults above; flags override them.")

		fmt.Fprintln(out, "\nMiscellaneous:")
		fmt.Fprintf(out, "  -q, --quiet                 Suppress non-essential warnings [%s]\n", def("quiet"))
		fmt.Fprintln(out, "      --examples              Show quickstart examples and exit")
		fmt.Fprintln(out, "  -v, --version               Print version and exit")
		fmt.Fprintln(out, "  -h, --help                  Show this help and exit")
	}
}
