package nuclide

import (
	"errors"
	"testing"

	"semf/core/binding"
)

func TestParse(t *testing.T) {
	tests := []struct {
		in   string
		want Nuclide
	}{
		{"56:26", Nuclide{56, 26}},
		{" 238 : 92 ", Nuclide{238, 92}},
		{"Fe56", Nuclide{56, 26}},
		{"Fe-56", Nuclide{56, 26}},
		{"fe56", Nuclide{56, 26}},
		{"FE56", Nuclide{56, 26}},
		{"56Fe", Nuclide{56, 26}},
		{"56-Fe", Nuclide{56, 26}},
		{"U235", Nuclide{235, 92}},
		{"N14", Nuclide{14, 7}},
		{"92235", Nuclide{235, 92}},
		{"922350000", Nuclide{235, 92}},
		{"260560000", Nuclide{56, 26}},
		{"n", Nuclide{1, 0}},
		{"n1", Nuclide{1, 0}},
		{"p", Nuclide{1, 1}},
		{"H1", Nuclide{1, 1}},
		{"Og294", Nuclide{294, 118}},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := Parse(tt.in)
			if err != nil {
				t.Fatalf("Parse(%q): %v", tt.in, err)
			}
			if got != tt.want {
				t.Fatalf("Parse(%q) = %+v, want %+v", tt.in, got, tt.want)
			}
		})
	}
}

func TestParse_Errors(t *testing.T) {
	bad := []string{"", "Fe", "Xx56", "56", "a:b", "56:", "Fe56x", "922350001", "--"}
	for _, in := range bad {
		if _, err := Parse(in); err == nil {
			t.Errorf("Parse(%q): expected error", in)
		}
	}
	if _, err := Parse("Fe56x"); !errors.Is(err, ErrBadSpec) {
		t.Errorf("want ErrBadSpec, got %v", err)
	}
}

func TestParse_PhysicalRange(t *testing.T) {
	for _, in := range []string{"4:5", "0:0", "U10", "N1"} {
		_, err := Parse(in)
		if !errors.Is(err, binding.ErrInvalidInput) {
			t.Errorf("Parse(%q): want ErrInvalidInput, got %v", in, err)
		}
	}
}

func TestNuclideFormatting(t *testing.T) {
	n := MustParse("Fe56")
	if n.String() != "Fe-56" || n.Symbol() != "Fe" || n.N() != 30 || n.ID() != 260560000 {
		t.Fatalf("unexpected formatting: %s %s %d %d", n, n.Symbol(), n.N(), n.ID())
	}
	if s := (Nuclide{A: 1, Z: 0}).String(); s != "n" {
		t.Fatalf("neutron: %q", s)
	}
	if s := (Nuclide{A: 300, Z: 130}).String(); s != "Z130-A300" {
		t.Fatalf("beyond table: %q", s)
	}
}

func TestElementTable(t *testing.T) {
	if MaxZ != 118 {
		t.Fatalf("MaxZ = %d", MaxZ)
	}
	for z := 1; z <= MaxZ; z++ {
		got, ok := ZOf(SymbolOf(z))
		if !ok || got != z {
			t.Fatalf("round trip Z=%d (%s): got %d ok=%v", z, SymbolOf(z), got, ok)
		}
	}
	if SymbolOf(-1) != "" || SymbolOf(119) != "" {
		t.Fatalf("out-of-range symbols should be empty")
	}
}
