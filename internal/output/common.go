package output

// TSV header fragments for text outputs.
// Keep these as the single source of truth; all writers should use them.
const (
	TSVHeader        = "nuclide\ta\tz\tn\tenergy_mev\tper_nucleon_mev\tpairing_sign"
	TermsHeader      = "volume\tsurface\tcoulomb\tasymmetry\tpairing"
	SeparationHeader = "sn_mev\tsp_mev"
	ResidualHeader   = "nuclide\ta\tz\tobserved_mev\tpredicted_mev\tresidual_mev"
)

// Columns selects optional column groups.
type Columns struct {
	Terms      bool
	Separation bool
}

// Header returns the header row (no trailing newline) for cols.
func Header(cols Columns) string {
	h := TSVHeader
	if cols.Terms {
		h += "\t" + TermsHeader
	}
	if cols.Separation {
		h += "\t" + SeparationHeader
	}
	return h
}
