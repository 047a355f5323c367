package tracelog

import (
	"bytes"
	"strings"
	"testing"

	"semf/core/binding"
	"semf/core/nuclide"
)

func TestTerms_Enabled(t *testing.T) {
	var buf bytes.Buffer
	log := New(&buf, "semf", TermLevel)
	n := nuclide.MustParse("Fe56")

	tr := Terms(log, n)
	if tr == nil {
		t.Fatal("tracer should be enabled")
	}
	r, err := binding.ComputeWithTrace(n.A, n.Z, binding.LinearFit1(), tr)
	if err != nil {
		t.Fatal(err)
	}
	Result(log, n, r)

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	if len(lines) != 6 {
		t.Fatalf("want 5 term lines + 1 result, got %d:\n%s", len(lines), buf.String())
	}
	for i, term := range []string{"volume", "surface", "coulomb", "asymmetry", "pairing"} {
		l := lines[i]
		if !strings.HasPrefix(l, "semf: ") || !strings.Contains(l, `"term"="`+term+`"`) || !strings.Contains(l, `"nuclide"="Fe-56"`) {
			t.Fatalf("line %d: %s", i, l)
		}
	}
	if !strings.Contains(lines[1], `"mev"=267.86`) {
		t.Fatalf("surface line should carry the a_s term: %s", lines[1])
	}
	if !strings.Contains(lines[5], `"msg"="binding"`) {
		t.Fatalf("result line: %s", lines[5])
	}
}

func TestTerms_Disabled(t *testing.T) {
	var buf bytes.Buffer
	log := New(&buf, "semf", 0)
	n := nuclide.MustParse("He4")
	if tr := Terms(log, n); tr != nil {
		t.Fatal("tracer should be nil at verbosity 0")
	}
	Result(log, n, binding.Result{})
	if buf.Len() != 0 {
		t.Fatalf("unexpected output: %s", buf.String())
	}
}
