package evalcli

import (
	"errors"
	"flag"
	"io"
	"slices"
	"testing"

	"semf/internal/clibase"
	"semf/internal/config"
)

func parse(t *testing.T, argv ...string) (Options, error) {
	t.Helper()
	fs := NewFlagSet("semf")
	fs.SetOutput(io.Discard)
	return ParseArgsEnv(fs, argv, config.Env{Preset: "fit1", Output: "text", Lang: "en"})
}

func TestParseArgs_Positionals(t *testing.T) {
	o, err := parse(t, "--terms", "Fe56", "-o", "json", "238:92", "-")
	if err != nil {
		t.Fatal(err)
	}
	if !slices.Equal(o.Specs, []string{"Fe56", "238:92", "-"}) {
		t.Fatalf("specs = %v", o.Specs)
	}
	if !o.Terms || o.Output != "json" || !o.Header || o.A != -1 {
		t.Fatalf("unexpected options: %+v", o)
	}
}

func TestParseArgs_AZ(t *testing.T) {
	o, err := parse(t, "-a", "56", "-z", "26", "--trace")
	if err != nil {
		t.Fatal(err)
	}
	if o.A != 56 || o.Z != 26 || !o.Trace || len(o.Specs) != 0 {
		t.Fatalf("unexpected options: %+v", o)
	}
	if _, err := parse(t, "-a", "56"); err == nil {
		t.Fatal("-a without -z should fail")
	}
}

func TestParseArgs_Errors(t *testing.T) {
	if _, err := parse(t, "--terms"); err == nil {
		t.Fatal("no nuclides should fail")
	}
	if _, err := parse(t, "-h"); !errors.Is(err, flag.ErrHelp) {
		t.Fatalf("want ErrHelp, got %v", err)
	}
	if _, err := parse(t, "--examples"); !errors.Is(err, clibase.ErrPrintedAndExitOK) {
		t.Fatalf("want ErrPrintedAndExitOK, got %v", err)
	}
	if _, err := parse(t, "--preset", "fit7", "Fe56"); err == nil {
		t.Fatal("unknown preset should fail")
	}
	o, err := parse(t, "-v")
	if err != nil || !o.Version {
		t.Fatalf("version: %v %+v", err, o)
	}
}
