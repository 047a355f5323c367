package visitors

import (
	"bytes"
	"errors"
	"strings"
	"testing"

	"semf/core/binding"
	"semf/core/nuclide"
	"semf/internal/tracelog"
)

func TestBinding_Visit(t *testing.T) {
	v := NewBinding(binding.LinearFit1(), "fit1")
	keep, row, err := v.Visit(nuclide.MustParse("Fe56"))
	if err != nil || !keep {
		t.Fatalf("keep=%v err=%v", keep, err)
	}
	if row.Preset != "fit1" || row.Result.Energy != binding.Evaluate(56, 26, binding.LinearFit1()) {
		t.Fatalf("unexpected row: %+v", row)
	}
	if row.Sn != nil || row.Sp != nil {
		t.Fatalf("separation energies not requested")
	}
}

func TestBinding_VisitInvalid(t *testing.T) {
	v := NewBinding(binding.LinearFit1(), "")
	_, _, err := v.Visit(nuclide.Nuclide{A: 4, Z: 5})
	if !errors.Is(err, binding.ErrInvalidInput) {
		t.Fatalf("want ErrInvalidInput, got %v", err)
	}
}

func TestBinding_Separation(t *testing.T) {
	v := NewBinding(binding.LinearFit1(), "")
	v.Separation = true

	_, row, err := v.Visit(nuclide.MustParse("Fe56"))
	if err != nil {
		t.Fatal(err)
	}
	if row.Sn == nil || row.Sp == nil {
		t.Fatalf("separation energies missing")
	}

	// A lone neutron has no daughter for either.
	_, row, err = v.Visit(nuclide.MustParse("n"))
	if err != nil {
		t.Fatal(err)
	}
	if row.Sn != nil || row.Sp != nil {
		t.Fatalf("neutron should have no separation energies: %+v", row)
	}
}

func TestBinding_MinEnergy(t *testing.T) {
	v := NewBinding(binding.LinearFit1(), "")
	v.MinEnergy = 100
	if keep, _, _ := v.Visit(nuclide.MustParse("He4")); keep {
		t.Fatalf("He-4 is below 100 MeV and should be dropped")
	}
	if keep, _, _ := v.Visit(nuclide.MustParse("Fe56")); !keep {
		t.Fatalf("Fe-56 should be kept")
	}
}

func TestBinding_VisitValleyTraces(t *testing.T) {
	var buf bytes.Buffer
	v := NewBinding(binding.LinearFit1(), "")
	v.Log = tracelog.New(&buf, "semf-scan", tracelog.TermLevel)

	keep, row, err := v.VisitValley(56)
	if err != nil || !keep {
		t.Fatalf("keep=%v err=%v", keep, err)
	}
	if row.Result.Z != 25 || row.Nuclide.Z != 25 {
		t.Fatalf("valley Z: %+v", row)
	}
	if n := strings.Count(buf.String(), `"msg"="term"`); n != 5 {
		t.Fatalf("want 5 term records, got %d:\n%s", n, buf.String())
	}
}
