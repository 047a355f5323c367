package nuclide

import "strings"

// symbols is indexed by atomic number; 0 is the free neutron.
var symbols = [...]string{
	"n",
	"H", "He", "Li", "Be", "B", "C", "N", "O", "F", "Ne",
	"Na", "Mg", "Al", "Si", "P", "S", "Cl", "Ar", "K", "Ca",
	"Sc", "Ti", "V", "Cr", "Mn", "Fe", "Co", "Ni", "Cu", "Zn",
	"Ga", "Ge", "As", "Se", "Br", "Kr", "Rb", "Sr", "Y", "Zr",
	"Nb", "Mo", "Tc", "Ru", "Rh", "Pd", "Ag", "Cd", "In", "Sn",
	"Sb", "Te", "I", "Xe", "Cs", "Ba", "La", "Ce", "Pr", "Nd",
	"Pm", "Sm", "Eu", "Gd", "Tb", "Dy", "Ho", "Er", "Tm", "Yb",
	"Lu", "Hf", "Ta", "W", "Re", "Os", "Ir", "Pt", "Au", "Hg",
	"Tl", "Pb", "Bi", "Po", "At", "Rn", "Fr", "Ra", "Ac", "Th",
	"Pa", "U", "Np", "Pu", "Am", "Cm", "Bk", "Cf", "Es", "Fm",
	"Md", "No", "Lr", "Rf", "Db", "Sg", "Bh", "Hs", "Mt", "Ds",
	"Rg", "Cn", "Nh", "Fl", "Mc", "Lv", "Ts", "Og",
}

// MaxZ is the heaviest tabulated element.
const MaxZ = len(symbols) - 1

var bySymbol = func() map[string]int {
	m := make(map[string]int, len(symbols))
	for z, s := range symbols[1:] {
		m[strings.ToLower(s)] = z + 1
	}
	return m
}()

// SymbolOf returns the element symbol for z, or "" when out of range.
func SymbolOf(z int) string {
	if z < 0 || z > MaxZ {
		return ""
	}
	return symbols[z]
}

// ZOf looks up an element symbol (case-insensitive). "n" is nitrogen here;
// Parse handles the free neutron.
func ZOf(symbol string) (int, bool) {
	z, ok := bySymbol[strings.ToLower(strings.TrimSpace(symbol))]
	return z, ok
}
