// core/binding/consts.go
package binding

import (
	"errors"
	"fmt"
	"math"
	"strings"
)

var (
	ErrUnknownPreset = errors.New("unknown preset")
	ErrInvalidConsts = errors.New("invalid constants")
)

// Consts holds the SEMF coefficients (MeV). KP is dimensionless.
type Consts struct {
	AV float64 // volume
	AS float64 // surface
	AC float64 // Coulomb
	AA float64 // asymmetry
	AP float64 // pairing amplitude (delta_0 = AP * A^KP)
	KP float64 // pairing exponent
}

// LinearFit1 returns the "fit 1" coefficient set.
func LinearFit1() Consts {
	return Consts{
		AV: 15.8,
		AS: 18.3,
		AC: 0.714,
		AA: 23.2,
		AP: 12.0,
		KP: -1.0 / 2.0,
	}
}

// LinearFit2 returns the "fit 2" coefficient set.
func LinearFit2() Consts {
	return Consts{
		AV: 15.76,
		AS: 17.81,
		AC: 0.711,
		AA: 23.702,
		AP: 34.0,
		KP: -3.0 / 4.0,
	}
}

var presets = []struct {
	name    string
	aliases []string
	make    func() Consts
}{
	{"fit1", []string{"1", "linear-fit-1"}, LinearFit1},
	{"fit2", []string{"2", "linear-fit-2"}, LinearFit2},
}

// PresetNames lists the canonical preset names in order.
func PresetNames() []string {
	out := make([]string, 0, len(presets))
	for _, p := range presets {
		out = append(out, p.name)
	}
	return out
}

// Preset resolves a preset by canonical name or alias (case-insensitive).
func Preset(name string) (Consts, error) {
	key := strings.ToLower(strings.TrimSpace(name))
	for _, p := range presets {
		if key == p.name {
			return p.make(), nil
		}
		for _, a := range p.aliases {
			if key == a {
				return p.make(), nil
			}
		}
	}
	return Consts{}, fmt.Errorf("%w %q (want one of %s)", ErrUnknownPreset, name, strings.Join(PresetNames(), ", "))
}

// CanonicalPreset maps an alias to its canonical name; ok=false if unknown.
func CanonicalPreset(name string) (string, bool) {
	key := strings.ToLower(strings.TrimSpace(name))
	for _, p := range presets {
		if key == p.name {
			return p.name, true
		}
		for _, a := range p.aliases {
			if key == a {
				return p.name, true
			}
		}
	}
	return "", false
}

// Validate rejects non-finite coefficients.
func (c Consts) Validate() error {
	fields := []struct {
		name string
		v    float64
	}{
		{"a_v", c.AV}, {"a_s", c.AS}, {"a_c", c.AC},
		{"a_a", c.AA}, {"a_p", c.AP}, {"k_p", c.KP},
	}
	for _, f := range fields {
		if math.IsNaN(f.v) || math.IsInf(f.v, 0) {
			return fmt.Errorf("%w: %s is %v", ErrInvalidConsts, f.name, f.v)
		}
	}
	return nil
}
