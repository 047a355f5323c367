package nuclide

import "iter"

// Chart yields every nuclide with minA ≤ A ≤ maxA and minZ ≤ Z ≤ min(A, maxZ),
// ordered by A then Z. A is clipped to ≥ 1 and Z to ≥ 0; maxZ < 0 means no cap.
func Chart(minA, maxA, minZ, maxZ int) iter.Seq[Nuclide] {
	return func(yield func(Nuclide) bool) {
		for a := max(minA, 1); a <= maxA; a++ {
			hi := a
			if maxZ >= 0 {
				hi = min(hi, maxZ)
			}
			for z := max(minZ, 0); z <= hi; z++ {
				if !yield(Nuclide{A: a, Z: z}) {
					return
				}
			}
		}
	}
}

// Count returns the number of nuclides Chart yields.
func Count(minA, maxA, minZ, maxZ int) int {
	n := 0
	for range Chart(minA, maxA, minZ, maxZ) {
		n++
	}
	return n
}
