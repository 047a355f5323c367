// core/binding/binding.go
// Semi-empirical mass formula (liquid drop model) for nuclear binding energy.
// Units: MeV. A = mass number, Z = atomic number, N = A − Z.
//
//	B(A,Z) = aV·A − aS·A^(2/3) − aC·Z(Z−1)/A^(1/3) − aA·(A−2Z)²/A − δ(A,Z)
//	δ(A,Z) = sign·aP·A^kP, sign = +1 even-even, −1 odd-odd, 0 odd A
//
// The products Z(Z−1) and (A−2Z)² are formed in float64 so no valid nucleus
// can wrap around; Z = 0 yields a Coulomb term of exactly +0. Evaluate does
// not validate; Compute does.
//
// This package has no app/output deps and is safe for concurrent use.

package binding

import (
	"errors"
	"fmt"
	"math"
)

var ErrInvalidInput = errors.New("invalid input")

// Term names, in evaluation order.
const (
	TermVolume    = "volume"
	TermSurface   = "surface"
	TermCoulomb   = "coulomb"
	TermAsymmetry = "asymmetry"
	TermPairing   = "pairing"
)

// Terms holds the five SEMF contributions of one nucleus (MeV).
// Pairing carries its sign; Sum subtracts it.
type Terms struct {
	Volume    float64
	Surface   float64
	Coulomb   float64
	Asymmetry float64
	Pairing   float64
}

// Sum combines the terms into the binding energy.
func (t Terms) Sum() float64 {
	return t.Volume -
		t.Surface -
		t.Coulomb -
		t.Asymmetry -
		t.Pairing
}

// Each calls fn for every term in evaluation order.
func (t Terms) Each(fn func(name string, value float64)) {
	fn(TermVolume, t.Volume)
	fn(TermSurface, t.Surface)
	fn(TermCoulomb, t.Coulomb)
	fn(TermAsymmetry, t.Asymmetry)
	fn(TermPairing, t.Pairing)
}

func (t *Terms) set(name string, v float64) {
	switch name {
	case TermVolume:
		t.Volume = v
	case TermSurface:
		t.Surface = v
	case TermCoulomb:
		t.Coulomb = v
	case TermAsymmetry:
		t.Asymmetry = v
	case TermPairing:
		t.Pairing = v
	}
}

// Result reports a validated evaluation.
type Result struct {
	A, Z, N     int
	Terms       Terms
	PairingSign int
	Energy      float64 // MeV
	PerNucleon  float64 // MeV per nucleon
}

// TraceFunc receives each term of an evaluation.
type TraceFunc func(name string, value float64)

func Volume(a int, c Consts) float64 {
	return c.AV * float64(a)
}

func Surface(a int, c Consts) float64 {
	return c.AS * math.Pow(float64(a), 2.0/3.0)
}

func Coulomb(a, z int, c Consts) float64 {
	zz := float64(z) * float64(z-1)
	if zz == 0 {
		zz = 0 // Z = 0 gives -0
	}
	return c.AC * zz / math.Cbrt(float64(a))
}

func Asymmetry(a, z int, c Consts) float64 {
	d := float64(a) - 2*float64(z)
	return c.AA * d * d / float64(a)
}

// PairingSign is −1 for odd-odd, +1 for even-even and 0 for odd A.
func PairingSign(a, z int) int {
	n := a - z
	switch {
	case n%2 != 0 && z%2 != 0:
		return -1
	case n%2 == 0 && z%2 == 0:
		return 1
	default:
		return 0
	}
}

func Pairing(a, z int, c Consts) float64 {
	delta0 := c.AP * math.Pow(float64(a), c.KP)
	return float64(PairingSign(a, z)) * delta0
}

// TermsOf evaluates every term once.
func TermsOf(a, z int, c Consts) Terms {
	return Terms{
		Volume:    Volume(a, c),
		Surface:   Surface(a, c),
		Coulomb:   Coulomb(a, z, c),
		Asymmetry: Asymmetry(a, z, c),
		Pairing:   Pairing(a, z, c),
	}
}

// Evaluate returns the binding energy (MeV) without validating inputs.
// A = 0 propagates NaN; Z > A gives a meaningless value.
func Evaluate(a, z int, c Consts) float64 {
	return TermsOf(a, z, c).Sum()
}

// EvaluateWithTrace returns the same value as Evaluate and reports each term
// to trace first. trace may be nil.
func EvaluateWithTrace(a, z int, c Consts, trace TraceFunc) float64 {
	t := TermsOf(a, z, c)
	if trace != nil {
		t.Each(trace)
	}
	return t.Sum()
}

// CheckNucleus validates 1 ≤ A and 0 ≤ Z ≤ A.
func CheckNucleus(a, z int) error {
	if a < 1 {
		return fmt.Errorf("%w: mass number A=%d must be ≥ 1", ErrInvalidInput, a)
	}
	if z < 0 {
		return fmt.Errorf("%w: atomic number Z=%d must be ≥ 0", ErrInvalidInput, z)
	}
	if z > a {
		return fmt.Errorf("%w: atomic number Z=%d exceeds mass number A=%d", ErrInvalidInput, z, a)
	}
	return nil
}

// Compute validates the nucleus and constants, then evaluates.
func Compute(a, z int, c Consts) (Result, error) {
	return ComputeWithTrace(a, z, c, nil)
}

// ComputeWithTrace is Compute with per-term tracing.
func ComputeWithTrace(a, z int, c Consts, trace TraceFunc) (Result, error) {
	if err := CheckNucleus(a, z); err != nil {
		return Result{}, err
	}
	if err := c.Validate(); err != nil {
		return Result{}, err
	}
	var t Terms
	e := EvaluateWithTrace(a, z, c, func(name string, v float64) {
		t.set(name, v)
		if trace != nil {
			trace(name, v)
		}
	})
	return Result{
		A:           a,
		Z:           z,
		N:           a - z,
		Terms:       t,
		PairingSign: PairingSign(a, z),
		Energy:      e,
		PerNucleon:  e / float64(a),
	}, nil
}
