package pretty

import (
	"strings"
	"testing"

	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"semf/core/binding"
	"semf/core/nuclide"
	"semf/internal/output"
)

func lead(t *testing.T) output.Row {
	t.Helper()
	res, err := binding.Compute(208, 82, binding.LinearFit1())
	if err != nil {
		t.Fatal(err)
	}
	return output.Row{Nuclide: nuclide.Nuclide{A: 208, Z: 82}, Result: res, Preset: "fit1"}
}

func TestRenderRow_English(t *testing.T) {
	got := RenderRow(lead(t), DefaultOptions)
	for _, want := range []string{
		"Pb-208  (A=208, Z=82, N=126)  preset fit1",
		"volume",
		"3,286.400 MeV",
		"(even-even)",
		"1,626.794 MeV",
		"B/A 7.821 MeV",
	} {
		if !strings.Contains(got, want) {
			t.Fatalf("missing %q in:\n%s", want, got)
		}
	}
	if strings.Contains(got, "S_n") {
		t.Fatalf("separation line without energies:\n%s", got)
	}
	if !strings.HasSuffix(got, "\n\n") {
		t.Fatalf("block should end with a blank line")
	}
}

func TestRenderRow_German(t *testing.T) {
	opt := DefaultOptions
	opt.Lang = language.German
	got := RenderRow(lead(t), opt)
	if !strings.Contains(got, "1.626,794") {
		t.Fatalf("expected German number formatting:\n%s", got)
	}
}

func TestRenderRow_Separation(t *testing.T) {
	r := lead(t)
	sn, sp := 7.5, 8.25
	r.Sn, r.Sp = &sn, &sp
	got := RenderRow(r, Options{})
	if !strings.Contains(got, "S_n 7.500 MeV   S_p 8.250 MeV") {
		t.Fatalf("missing separation line:\n%s", got)
	}
}

func TestRenderRow_OddOddPairingAdds(t *testing.T) {
	res, err := binding.Compute(14, 7, binding.LinearFit1())
	if err != nil {
		t.Fatal(err)
	}
	got := RenderRow(output.Row{Nuclide: nuclide.Nuclide{A: 14, Z: 7}, Result: res}, DefaultOptions)
	want := message.NewPrinter(language.English).Sprintf("%-10s + %12.3f MeV  (odd-odd)", binding.TermPairing, -res.Terms.Pairing)
	if !strings.Contains(got, want) {
		t.Fatalf("missing %q in:\n%s", want, got)
	}
	if strings.Contains(got, "− -") || strings.Contains(got, "+ -") {
		t.Fatalf("doubled sign in:\n%s", got)
	}
}

func TestParityLabel(t *testing.T) {
	if ParityLabel(1) != "even-even" || ParityLabel(-1) != "odd-odd" || ParityLabel(0) != "odd A" {
		t.Fatal("unexpected parity labels")
	}
}
