// internal/output/json.go
package output

import (
	"io"

	"semf/core/binding"
	"semf/core/fit"
	"semf/internal/jsonutil"
	"semf/pkg/api"
)

// ToAPIBinding converts a Row to the stable wire schema (v1).
// Terms are attached only when cols.Terms is set.
func ToAPIBinding(r Row, cols Columns) api.BindingV1 {
	res := r.Result
	v := api.BindingV1{
		Nuclide:       r.Nuclide.String(),
		A:             res.A,
		Z:             res.Z,
		N:             res.N,
		EnergyMeV:     res.Energy,
		PerNucleonMeV: res.PerNucleon,
		PairingSign:   res.PairingSign,
		Preset:        r.Preset,
	}
	if cols.Terms {
		t := res.Terms
		v.Terms = &api.TermsV1{
			Volume:    t.Volume,
			Surface:   t.Surface,
			Coulomb:   t.Coulomb,
			Asymmetry: t.Asymmetry,
			Pairing:   t.Pairing,
		}
	}
	if cols.Separation {
		v.SnMeV = r.Sn
		v.SpMeV = r.Sp
	}
	return v
}

// ToAPIResidual converts a fit residual to the wire schema.
func ToAPIResidual(r Residual) api.ResidualV1 {
	return api.ResidualV1{
		Nuclide:      r.Nuclide.String(),
		A:            r.Nuclide.A,
		Z:            r.Nuclide.Z,
		ObservedMeV:  r.Observed,
		PredictedMeV: r.Predicted,
		ResidualMeV:  r.Value(),
	}
}

// ToAPIConsts converts a coefficient set; name and base may be empty.
func ToAPIConsts(c binding.Consts, name, base string) api.ConstsV1 {
	return api.ConstsV1{
		Name: name,
		Base: base,
		AV:   c.AV,
		AS:   c.AS,
		AC:   c.AC,
		AA:   c.AA,
		AP:   c.AP,
		KP:   c.KP,
	}
}

// FromAPIConsts is the inverse of ToAPIConsts.
func FromAPIConsts(v api.ConstsV1) binding.Consts {
	return binding.Consts{AV: v.AV, AS: v.AS, AC: v.AC, AA: v.AA, AP: v.AP, KP: v.KP}
}

// ToAPIFit converts a fit report; the constants carry name.
func ToAPIFit(r fit.Report, name string) api.FitV1 {
	return api.FitV1{
		Consts:       ToAPIConsts(r.Consts, name, ""),
		Observations: r.N,
		RMSMeV:       r.RMS,
		MaxAbsMeV:    r.MaxAbs,
		MeanMeV:      r.Mean,
	}
}

// WriteJSON writes a single JSON array of v1 bindings (pretty-indented).
func WriteJSON(w io.Writer, list []Row, cols Columns) error {
	out := make([]api.BindingV1, 0, len(list))
	for _, r := range list {
		out = append(out, ToAPIBinding(r, cols))
	}
	return jsonutil.EncodePretty(w, out)
}

// WriteResidualsJSON writes a JSON array of residuals.
func WriteResidualsJSON(w io.Writer, list []Residual) error {
	out := make([]api.ResidualV1, 0, len(list))
	for _, r := range list {
		out = append(out, ToAPIResidual(r))
	}
	return jsonutil.EncodePretty(w, out)
}
