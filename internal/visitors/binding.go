// internal/visitors/binding.go
package visitors

import (
	"math"

	"github.com/go-logr/logr"

	"semf/core/binding"
	"semf/core/nuclide"
	"semf/internal/output"
	"semf/internal/tracelog"
)

// Binding evaluates nuclides into output rows.
type Binding struct {
	Consts     binding.Consts
	Preset     string      // label carried into rows
	Separation bool        // fill S_n / S_p where the daughter exists
	MinEnergy  float64     // drop rows below this energy; NaN disables
	Log        logr.Logger // term traces at tracelog.TermLevel
}

// NewBinding returns a visitor with the energy filter disabled.
func NewBinding(c binding.Consts, preset string) *Binding {
	return &Binding{Consts: c, Preset: preset, MinEnergy: math.NaN(), Log: logr.Discard()}
}

// Visit evaluates one nuclide; keep is false when filtered out.
func (v *Binding) Visit(n nuclide.Nuclide) (bool, output.Row, error) {
	res, err := binding.ComputeWithTrace(n.A, n.Z, v.Consts, tracelog.Terms(v.Log, n))
	if err != nil {
		return false, output.Row{}, err
	}
	tracelog.Result(v.Log, n, res)
	return v.finish(n, res)
}

// VisitValley evaluates the most bound isobar of mass number a.
func (v *Binding) VisitValley(a int) (bool, output.Row, error) {
	res, err := binding.MostStable(a, v.Consts)
	if err != nil {
		return false, output.Row{}, err
	}
	n := nuclide.Nuclide{A: res.A, Z: res.Z}
	if tr := tracelog.Terms(v.Log, n); tr != nil {
		res.Terms.Each(tr)
	}
	tracelog.Result(v.Log, n, res)
	return v.finish(n, res)
}

func (v *Binding) finish(n nuclide.Nuclide, res binding.Result) (bool, output.Row, error) {
	if !math.IsNaN(v.MinEnergy) && res.Energy < v.MinEnergy {
		return false, output.Row{}, nil
	}
	row := output.Row{Nuclide: n, Result: res, Preset: v.Preset}
	if v.Separation {
		if sn, err := binding.SeparationNeutron(n.A, n.Z, v.Consts); err == nil {
			row.Sn = &sn
		}
		if sp, err := binding.SeparationProton(n.A, n.Z, v.Consts); err == nil {
			row.Sp = &sp
		}
	}
	return true, row, nil
}
