package output

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"

	"semf/core/binding"
	"semf/core/fit"
	"semf/core/nuclide"
	"semf/pkg/api"
)

func iron(t *testing.T) Row {
	t.Helper()
	res, err := binding.Compute(56, 26, binding.LinearFit1())
	if err != nil {
		t.Fatal(err)
	}
	sn, sp := 8.5, 10.25
	return Row{Nuclide: nuclide.Nuclide{A: 56, Z: 26}, Result: res, Preset: "fit1", Sn: &sn, Sp: &sp}
}

func TestHeader_Stable(t *testing.T) {
	want := "nuclide\ta\tz\tn\tenergy_mev\tper_nucleon_mev\tpairing_sign"
	if Header(Columns{}) != want {
		t.Fatalf("base header changed: %q", Header(Columns{}))
	}
	full := Header(Columns{Terms: true, Separation: true})
	if got := len(strings.Split(full, "\t")); got != 14 {
		t.Fatalf("full header has %d columns, want 14: %q", got, full)
	}
}

func TestFormatRowTSV(t *testing.T) {
	r := iron(t)
	got := FormatRowTSV(r, Columns{})
	want := "Fe-56\t56\t26\t30\t487.400699\t8.703584\t1"
	if got != want {
		t.Fatalf("row:\n got %q\nwant %q", got, want)
	}

	full := strings.Split(FormatRowTSV(r, Columns{Terms: true, Separation: true}), "\t")
	hdr := strings.Split(Header(Columns{Terms: true, Separation: true}), "\t")
	if len(full) != len(hdr) {
		t.Fatalf("row/header width mismatch: %d vs %d", len(full), len(hdr))
	}
	if full[8] != "267.861178" || full[12] != "8.500000" || full[13] != "10.250000" {
		t.Fatalf("unexpected columns: %v", full)
	}

	r.Sn, r.Sp = nil, nil
	cols := strings.Split(FormatRowTSV(r, Columns{Separation: true}), "\t")
	if cols[7] != "" || cols[8] != "" {
		t.Fatalf("missing separation energies should be empty, got %q %q", cols[7], cols[8])
	}
}

func TestWriteText(t *testing.T) {
	var buf bytes.Buffer
	r := iron(t)
	err := WriteText(&buf, []Row{r, r}, TextOptions{
		Header: true,
		Pretty: func(Row) string { return "  block\n" },
	})
	if err != nil {
		t.Fatal(err)
	}
	lines := strings.Split(strings.TrimRight(buf.String(), "\n"), "\n")
	if len(lines) != 5 || lines[0] != TSVHeader || lines[2] != "  block" {
		t.Fatalf("unexpected text output:\n%s", buf.String())
	}
}

func TestStreamText(t *testing.T) {
	in := make(chan Row, 2)
	in <- iron(t)
	close(in)
	var buf bytes.Buffer
	if err := StreamText(&buf, in, TextOptions{}); err != nil {
		t.Fatal(err)
	}
	if strings.Count(buf.String(), "\n") != 1 {
		t.Fatalf("want one line, got %q", buf.String())
	}
}

func TestWriteJSON(t *testing.T) {
	var buf bytes.Buffer
	r := iron(t)
	if err := WriteJSON(&buf, []Row{r}, Columns{Terms: true}); err != nil {
		t.Fatal(err)
	}
	var got []api.BindingV1
	if err := json.Unmarshal(buf.Bytes(), &got); err != nil {
		t.Fatalf("decode: %v\n%s", err, buf.String())
	}
	if len(got) != 1 || got[0].Nuclide != "Fe-56" || got[0].Terms == nil || got[0].SnMeV != nil {
		t.Fatalf("unexpected payload: %+v", got)
	}
	if got[0].Terms.Surface != r.Result.Terms.Surface {
		t.Fatalf("surface term lost: %v", got[0].Terms.Surface)
	}
	if strings.Contains(buf.String(), "sn_mev") {
		t.Fatalf("separation fields should be omitted:\n%s", buf.String())
	}
}

func TestResidualOutputs(t *testing.T) {
	res := []Residual{{Nuclide: nuclide.Nuclide{A: 4, Z: 2}, Observed: 28.3, Predicted: 28.0}}
	var buf bytes.Buffer
	if err := WriteResidualsText(&buf, res, true); err != nil {
		t.Fatal(err)
	}
	if !strings.HasPrefix(buf.String(), ResidualHeader+"\n") || !strings.Contains(buf.String(), "He-4\t4\t2\t28.300000\t28.000000\t0.300000") {
		t.Fatalf("unexpected residual text:\n%s", buf.String())
	}
	buf.Reset()
	if err := WriteResidualsJSON(&buf, res); err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(buf.String(), `"residual_mev"`) {
		t.Fatalf("missing residual_mev:\n%s", buf.String())
	}
}

func TestConstsRoundTrip(t *testing.T) {
	c := binding.LinearFit2()
	if got := FromAPIConsts(ToAPIConsts(c, "x", "")); got != c {
		t.Fatalf("round trip: %+v", got)
	}
}

func TestToAPIFit(t *testing.T) {
	r := fit.Report{Consts: binding.LinearFit1(), N: 12, RMS: 1.5, MaxAbs: 3, Mean: 0.1}
	v := ToAPIFit(r, "mine")
	if v.Consts.Name != "mine" || v.Consts.AV != 15.8 || v.Observations != 12 || v.RMSMeV != 1.5 {
		t.Fatalf("unexpected fit payload: %+v", v)
	}
}
