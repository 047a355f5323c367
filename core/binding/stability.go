package binding

import "fmt"

// SeparationNeutron returns S_n = B(A,Z) − B(A−1,Z).
func SeparationNeutron(a, z int, c Consts) (float64, error) {
	return separation(a, z, a-1, z, c)
}

// SeparationProton returns S_p = B(A,Z) − B(A−1,Z−1).
func SeparationProton(a, z int, c Consts) (float64, error) {
	return separation(a, z, a-1, z-1, c)
}

func separation(a, z, da, dz int, c Consts) (float64, error) {
	parent, err := Compute(a, z, c)
	if err != nil {
		return 0, err
	}
	if err := CheckNucleus(da, dz); err != nil {
		return 0, fmt.Errorf("daughter of A=%d Z=%d: %w", a, z, err)
	}
	return parent.Energy - Evaluate(da, dz, c), nil
}

// MostStable returns the most bound isobar of mass number a.
// Ties resolve to the lower Z.
func MostStable(a int, c Consts) (Result, error) {
	best, err := Compute(a, 0, c)
	if err != nil {
		return Result{}, err
	}
	for z := 1; z <= a; z++ {
		e := Evaluate(a, z, c)
		if e > best.Energy {
			best, _ = Compute(a, z, c)
		}
	}
	return best, nil
}
