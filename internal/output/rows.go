// internal/output/rows.go
package output

import (
	"strconv"
	"strings"

	"semf/core/binding"
	"semf/core/nuclide"
)

// Row is one evaluated nuclide on its way to a writer.
type Row struct {
	Nuclide nuclide.Nuclide
	Result  binding.Result
	Preset  string
	Sn, Sp  *float64 // set when separation energies were requested
}

// Residual is one fit observation against its prediction.
type Residual struct {
	Nuclide   nuclide.Nuclide
	Observed  float64
	Predicted float64
}

func (r Residual) Value() float64 { return r.Observed - r.Predicted }

// FormatFloat renders MeV values with fixed precision for TSV.
func FormatFloat(v float64) string { return strconv.FormatFloat(v, 'f', 6, 64) }

func optFloat(p *float64) string {
	if p == nil {
		return ""
	}
	return FormatFloat(*p)
}

// FormatRowTSV returns one TSV row (no trailing newline).
func FormatRowTSV(r Row, cols Columns) string {
	res := r.Result
	f := []string{
		r.Nuclide.String(),
		strconv.Itoa(res.A), strconv.Itoa(res.Z), strconv.Itoa(res.N),
		FormatFloat(res.Energy), FormatFloat(res.PerNucleon),
		strconv.Itoa(res.PairingSign),
	}
	if cols.Terms {
		t := res.Terms
		f = append(f,
			FormatFloat(t.Volume), FormatFloat(t.Surface), FormatFloat(t.Coulomb),
			FormatFloat(t.Asymmetry), FormatFloat(t.Pairing),
		)
	}
	if cols.Separation {
		f = append(f, optFloat(r.Sn), optFloat(r.Sp))
	}
	return strings.Join(f, "\t")
}

// FormatResidualTSV returns one residual row (no trailing newline).
func FormatResidualTSV(r Residual) string {
	return strings.Join([]string{
		r.Nuclide.String(),
		strconv.Itoa(r.Nuclide.A), strconv.Itoa(r.Nuclide.Z),
		FormatFloat(r.Observed), FormatFloat(r.Predicted), FormatFloat(r.Value()),
	}, "\t")
}
