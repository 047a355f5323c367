// internal/common/sort.go
package common

import (
	"fmt"
	"sort"
	"strings"

	"semf/internal/output"
)

// Rank orders for --rank.
const (
	RankNuclide    = "nuclide"
	RankEnergy     = "energy"
	RankPerNucleon = "per-nucleon"
)

// Ranks lists accepted --rank values.
var Ranks = []string{RankNuclide, RankEnergy, RankPerNucleon}

// ParseRank normalizes a --rank value.
func ParseRank(s string) (string, error) {
	r := strings.ToLower(strings.TrimSpace(s))
	switch r {
	case "", "a", "coord":
		return RankNuclide, nil
	case RankNuclide, RankEnergy, RankPerNucleon:
		return r, nil
	case "bpn", "per_nucleon":
		return RankPerNucleon, nil
	}
	return "", fmt.Errorf("--rank must be one of %s", strings.Join(Ranks, " | "))
}

// LessNuclide orders by A, then Z.
func LessNuclide(a, b output.Row) bool {
	if a.Result.A != b.Result.A {
		return a.Result.A < b.Result.A
	}
	return a.Result.Z < b.Result.Z
}

// SortRows sorts deterministically. Energy ranks are descending; ties
// fall back to nuclide order.
func SortRows(rows []output.Row, rank string) {
	var less func(a, b output.Row) bool
	switch rank {
	case RankEnergy:
		less = func(a, b output.Row) bool {
			if a.Result.Energy != b.Result.Energy {
				return a.Result.Energy > b.Result.Energy
			}
			return LessNuclide(a, b)
		}
	case RankPerNucleon:
		less = func(a, b output.Row) bool {
			if a.Result.PerNucleon != b.Result.PerNucleon {
				return a.Result.PerNucleon > b.Result.PerNucleon
			}
			return LessNuclide(a, b)
		}
	default:
		less = LessNuclide
	}
	sort.SliceStable(rows, func(i, j int) bool { return less(rows[i], rows[j]) })
}

// SortResiduals orders residuals by A, then Z.
func SortResiduals(list []output.Residual) {
	sort.SliceStable(list, func(i, j int) bool {
		a, b := list[i].Nuclide, list[j].Nuclide
		if a.A != b.A {
			return a.A < b.A
		}
		return a.Z < b.Z
	})
}
