package common

import (
	"testing"

	"semf/core/binding"
	"semf/internal/output"
)

func row(a, z int, e, bpn float64) output.Row {
	return output.Row{Result: binding.Result{A: a, Z: z, Energy: e, PerNucleon: bpn}}
}

func TestSortRows(t *testing.T) {
	base := func() []output.Row {
		return []output.Row{
			row(56, 26, 490, 8.75),
			row(4, 2, 28, 7.0),
			row(56, 25, 495, 8.84),
			row(208, 82, 1630, 7.84),
		}
	}

	rows := base()
	SortRows(rows, RankNuclide)
	if rows[0].Result.A != 4 || rows[1].Result.Z != 25 || rows[3].Result.A != 208 {
		t.Fatalf("nuclide order: %+v", rows)
	}

	rows = base()
	SortRows(rows, RankEnergy)
	if rows[0].Result.A != 208 || rows[3].Result.A != 4 {
		t.Fatalf("energy order: %+v", rows)
	}

	rows = base()
	SortRows(rows, RankPerNucleon)
	if rows[0].Result.Z != 25 || rows[3].Result.A != 4 {
		t.Fatalf("per-nucleon order: %+v", rows)
	}
}

func TestParseRank(t *testing.T) {
	for in, want := range map[string]string{
		"":            RankNuclide,
		"coord":       RankNuclide,
		"Energy":      RankEnergy,
		"bpn":         RankPerNucleon,
		"per-nucleon": RankPerNucleon,
	} {
		got, err := ParseRank(in)
		if err != nil || got != want {
			t.Fatalf("ParseRank(%q) = %q, %v", in, got, err)
		}
	}
	if _, err := ParseRank("score"); err == nil {
		t.Fatalf("expected error for unknown rank")
	}
}
