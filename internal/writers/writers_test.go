package writers

import (
	"bytes"
	"encoding/json"
	"errors"
	"io"
	"strings"
	"syscall"
	"testing"

	"semf/core/binding"
	"semf/core/nuclide"
	"semf/internal/common"
	"semf/internal/output"
	"semf/pkg/api"
)

func rows(t *testing.T, specs ...string) []output.Row {
	t.Helper()
	var out []output.Row
	for _, s := range specs {
		n := nuclide.MustParse(s)
		res, err := binding.Compute(n.A, n.Z, binding.LinearFit1())
		if err != nil {
			t.Fatal(err)
		}
		out = append(out, output.Row{Nuclide: n, Result: res})
	}
	return out
}

func run(t *testing.T, format string, o ResultOptions, list []output.Row) string {
	t.Helper()
	var buf bytes.Buffer
	in, done := StartResultWriter(&buf, format, o, 4)
	for _, r := range list {
		in <- r
	}
	close(in)
	if err := <-done; err != nil {
		t.Fatalf("%s writer: %v", format, err)
	}
	return buf.String()
}

func TestResultWriter_TextSorted(t *testing.T) {
	got := run(t, "text", ResultOptions{Sort: true, Text: output.TextOptions{Header: true}},
		rows(t, "U238", "He4", "Fe56"))
	lines := strings.Split(strings.TrimSpace(got), "\n")
	if len(lines) != 4 || lines[0] != output.TSVHeader {
		t.Fatalf("unexpected output:\n%s", got)
	}
	for i, want := range []string{"He-4", "Fe-56", "U-238"} {
		if !strings.HasPrefix(lines[i+1], want+"\t") {
			t.Fatalf("line %d: want %s first, got %q", i+1, want, lines[i+1])
		}
	}
}

func TestResultWriter_TextStreamingKeepsOrder(t *testing.T) {
	got := run(t, "text", ResultOptions{}, rows(t, "U238", "He4"))
	if !strings.HasPrefix(got, "U-238\t") {
		t.Fatalf("streaming should keep input order:\n%s", got)
	}
}

func TestResultWriter_JSONRankedByEnergy(t *testing.T) {
	got := run(t, "json", ResultOptions{Sort: true, Rank: common.RankEnergy}, rows(t, "He4", "U238", "Fe56"))
	var list []api.BindingV1
	if err := json.Unmarshal([]byte(got), &list); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if len(list) != 3 || list[0].Nuclide != "U-238" || list[2].Nuclide != "He-4" {
		t.Fatalf("unexpected order: %+v", list)
	}
}

func TestResultWriter_JSONL(t *testing.T) {
	got := run(t, "jsonl", ResultOptions{Sort: true, Text: output.TextOptions{Cols: output.Columns{Terms: true}}},
		rows(t, "Fe56", "He4"))
	lines := strings.Split(strings.TrimSpace(got), "\n")
	if len(lines) != 2 {
		t.Fatalf("want 2 JSON lines, got %d:\n%s", len(lines), got)
	}
	var first api.BindingV1
	if err := json.Unmarshal([]byte(lines[0]), &first); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if first.Nuclide != "He-4" || first.Terms == nil {
		t.Fatalf("unexpected first line: %+v", first)
	}
}

func TestUnknownResultFormatError(t *testing.T) {
	var b bytes.Buffer
	in, done := StartResultWriter(&b, "nope-format", ResultOptions{}, 1)
	in <- rows(t, "He4")[0] // drained, not blocked
	close(in)
	err := <-done
	if err == nil || !strings.Contains(err.Error(), "unknown result format") {
		t.Fatalf("want 'unknown result format' error, got: %v", err)
	}
}

func TestResidualWriters(t *testing.T) {
	res := []output.Residual{
		{Nuclide: nuclide.Nuclide{A: 56, Z: 26}, Observed: 492.3, Predicted: 487.4},
		{Nuclide: nuclide.Nuclide{A: 4, Z: 2}, Observed: 28.3, Predicted: 10.2},
	}
	for _, format := range []string{"text", "json", "jsonl"} {
		var buf bytes.Buffer
		in, done := StartResidualWriter(&buf, format, true, 1)
		for _, r := range res {
			in <- r
		}
		close(in)
		if err := <-done; err != nil {
			t.Fatalf("%s: %v", format, err)
		}
		if !strings.Contains(buf.String(), "He-4") || !strings.Contains(buf.String(), "Fe-56") {
			t.Fatalf("%s output incomplete:\n%s", format, buf.String())
		}
	}

	var b bytes.Buffer
	in, done := StartResidualWriter(&b, "xml", false, 1)
	close(in)
	if err := <-done; err == nil || !strings.Contains(err.Error(), "unknown residual format") {
		t.Fatalf("want unknown residual format, got %v", err)
	}
}

func TestResultFormats(t *testing.T) {
	got := strings.Join(ResultFormats(), ",")
	if got != "json,jsonl,text" {
		t.Fatalf("registered formats: %s", got)
	}
}

func TestIsBrokenPipe(t *testing.T) {
	if !IsBrokenPipe(syscall.EPIPE) || !IsBrokenPipe(io.ErrClosedPipe) {
		t.Fatal("EPIPE / ErrClosedPipe should be broken pipes")
	}
	if IsBrokenPipe(nil) || IsBrokenPipe(errors.New("x")) {
		t.Fatal("false positive")
	}
}
