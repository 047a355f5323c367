// core/fit/fit.go
// Least-squares refit of SEMF coefficients against measured binding energies.
//
// For a fixed pairing exponent kP the formula is linear in (aV, aS, aC, aA, aP):
//
//	B = aV·A − aS·A^(2/3) − aC·Z(Z−1)/A^(1/3) − aA·(A−2Z)²/A − aP·sign·A^kP
//
// so one QR solve of the design matrix gives the coefficients.
package fit

import (
	"errors"
	"fmt"
	"math"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/mat"
	"gonum.org/v1/gonum/stat"

	"semf/core/binding"
)

var (
	ErrInsufficientData = errors.New("insufficient data")
	ErrSingular         = errors.New("singular system")
)

// MinObservations is the number of free coefficients.
const MinObservations = 5

// Observation is one measured binding energy (MeV).
type Observation struct {
	A, Z   int
	Energy float64
}

// Report summarises a fit.
type Report struct {
	Consts binding.Consts
	N      int
	RMS    float64 // root-mean-square residual (MeV)
	MaxAbs float64 // largest |residual| (MeV)
	Mean   float64 // mean residual (MeV)
}

// Fit solves for aV..aP with the pairing exponent held at kp.
func Fit(obs []Observation, kp float64) (Report, error) {
	if len(obs) < MinObservations {
		return Report{}, fmt.Errorf("%w: need at least %d observations, got %d", ErrInsufficientData, MinObservations, len(obs))
	}
	if math.IsNaN(kp) || math.IsInf(kp, 0) {
		return Report{}, fmt.Errorf("%w: k_p is %v", binding.ErrInvalidConsts, kp)
	}
	for i, o := range obs {
		if err := binding.CheckNucleus(o.A, o.Z); err != nil {
			return Report{}, fmt.Errorf("observation %d: %w", i+1, err)
		}
		if math.IsNaN(o.Energy) || math.IsInf(o.Energy, 0) {
			return Report{}, fmt.Errorf("observation %d: %w: energy is %v", i+1, binding.ErrInvalidInput, o.Energy)
		}
	}

	x := mat.NewDense(len(obs), MinObservations, nil)
	y := mat.NewVecDense(len(obs), nil)
	for i, o := range obs {
		x.SetRow(i, designRow(o.A, o.Z, kp))
		y.SetVec(i, o.Energy)
	}

	var beta mat.VecDense
	if err := beta.SolveVec(x, y); err != nil {
		var cond mat.Condition
		if errors.As(err, &cond) || errors.Is(err, mat.ErrSingular) {
			return Report{}, fmt.Errorf("%w: %v", ErrSingular, err)
		}
		return Report{}, err
	}

	c := binding.Consts{
		AV: beta.AtVec(0),
		AS: beta.AtVec(1),
		AC: beta.AtVec(2),
		AA: beta.AtVec(3),
		AP: beta.AtVec(4),
		KP: kp,
	}
	if err := c.Validate(); err != nil {
		return Report{}, fmt.Errorf("%w: %v", ErrSingular, err)
	}

	res := Residuals(obs, c)
	return Report{
		Consts: c,
		N:      len(obs),
		RMS:    floats.Norm(res, 2) / math.Sqrt(float64(len(res))),
		MaxAbs: floats.Norm(res, math.Inf(1)),
		Mean:   stat.Mean(res, nil),
	}, nil
}

// designRow holds the partial derivatives of B w.r.t. aV, aS, aC, aA, aP.
func designRow(a, z int, kp float64) []float64 {
	unit := binding.Consts{AV: 1, AS: 1, AC: 1, AA: 1, AP: 1, KP: kp}
	return []float64{
		binding.Volume(a, unit),
		-binding.Surface(a, unit),
		-binding.Coulomb(a, z, unit),
		-binding.Asymmetry(a, z, unit),
		-binding.Pairing(a, z, unit),
	}
}

// Residuals returns observed − predicted for each observation.
func Residuals(obs []Observation, c binding.Consts) []float64 {
	out := make([]float64, len(obs))
	for i, o := range obs {
		out[i] = o.Energy - binding.Evaluate(o.A, o.Z, c)
	}
	return out
}
