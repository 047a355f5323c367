// core/nuclide/nuclide.go
// Nuclide identifiers and the spec formats accepted on the command line:
//
//	A:Z          56:26
//	symbol+A     Fe56, Fe-56, fe56
//	A+symbol     56Fe, 56-Fe
//	ZZAAA        26056
//	ZZZAAAMMMM   260560000 (ground state only)
//	n, p         free neutron / proton
package nuclide

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
	"unicode"

	"semf/core/binding"
)

var ErrBadSpec = errors.New("bad nuclide spec")

// Nuclide is a (mass number, atomic number) pair.
type Nuclide struct {
	A int
	Z int
}

// N returns the neutron count.
func (n Nuclide) N() int { return n.A - n.Z }

// Symbol returns the element symbol, or "" beyond the table.
func (n Nuclide) Symbol() string {
	if n.Z == 0 && n.A == 1 {
		return "n"
	}
	return SymbolOf(n.Z)
}

// ID returns the ZZZAAAMMMM form.
func (n Nuclide) ID() int { return n.Z*10000000 + n.A*10000 }

// String renders "Fe-56", or "Z26-A56" past the element table.
func (n Nuclide) String() string {
	if n.Z == 0 && n.A == 1 {
		return "n"
	}
	if s := SymbolOf(n.Z); s != "" && n.Z > 0 {
		return fmt.Sprintf("%s-%d", s, n.A)
	}
	return fmt.Sprintf("Z%d-A%d", n.Z, n.A)
}

// Validate checks 1 ≤ A and 0 ≤ Z ≤ A.
func (n Nuclide) Validate() error { return binding.CheckNucleus(n.A, n.Z) }

// Parse reads one nuclide spec and validates it.
func Parse(spec string) (Nuclide, error) {
	s := strings.TrimSpace(spec)
	if s == "" {
		return Nuclide{}, fmt.Errorf("%w: empty", ErrBadSpec)
	}
	n, err := parse(s)
	if err != nil {
		return Nuclide{}, err
	}
	if err := n.Validate(); err != nil {
		return Nuclide{}, fmt.Errorf("%q: %w", spec, err)
	}
	return n, nil
}

// MustParse is Parse for literals; it panics on error.
func MustParse(spec string) Nuclide {
	n, err := Parse(spec)
	if err != nil {
		panic(err)
	}
	return n
}

func parse(s string) (Nuclide, error) {
	switch s {
	case "n", "n1", "n-1":
		return Nuclide{A: 1, Z: 0}, nil
	case "p", "p1":
		return Nuclide{A: 1, Z: 1}, nil
	}

	if a, z, ok := strings.Cut(s, ":"); ok {
		av, err1 := strconv.Atoi(strings.TrimSpace(a))
		zv, err2 := strconv.Atoi(strings.TrimSpace(z))
		if err1 != nil || err2 != nil {
			return Nuclide{}, fmt.Errorf("%w %q: want A:Z integers", ErrBadSpec, s)
		}
		return Nuclide{A: av, Z: zv}, nil
	}

	if isDigits(s) {
		return parseID(s)
	}

	body := strings.ReplaceAll(s, "-", "")
	i := strings.IndexFunc(body, unicode.IsDigit)
	if i < 0 {
		return Nuclide{}, fmt.Errorf("%w %q: missing mass number", ErrBadSpec, s)
	}
	var sym, mass string
	if i == 0 {
		j := strings.IndexFunc(body, unicode.IsLetter)
		if j < 0 {
			return Nuclide{}, fmt.Errorf("%w %q", ErrBadSpec, s)
		}
		mass, sym = body[:j], body[j:]
	} else {
		sym, mass = body[:i], body[i:]
	}
	if !isDigits(mass) || !isLetters(sym) {
		return Nuclide{}, fmt.Errorf("%w %q: want symbol and mass number, e.g. Fe56", ErrBadSpec, s)
	}
	z, ok := ZOf(sym)
	if !ok {
		return Nuclide{}, fmt.Errorf("%w %q: unknown element %q", ErrBadSpec, s, sym)
	}
	a, err := strconv.Atoi(mass)
	if err != nil {
		return Nuclide{}, fmt.Errorf("%w %q: %v", ErrBadSpec, s, err)
	}
	return Nuclide{A: a, Z: z}, nil
}

func parseID(s string) (Nuclide, error) {
	v, err := strconv.Atoi(s)
	if err != nil {
		return Nuclide{}, fmt.Errorf("%w %q: %v", ErrBadSpec, s, err)
	}
	if v >= 10000000 {
		if m := v % 10000; m != 0 {
			return Nuclide{}, fmt.Errorf("%w %q: excited state %d not supported", ErrBadSpec, s, m)
		}
		return Nuclide{A: (v / 10000) % 1000, Z: v / 10000000}, nil
	}
	if v < 1000 {
		return Nuclide{}, fmt.Errorf("%w %q: bare number is ambiguous, use A:Z", ErrBadSpec, s)
	}
	return Nuclide{A: v % 1000, Z: v / 1000}, nil
}

func isDigits(s string) bool {
	if s == "" {
		return false
	}
	for _, r := range s {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}

func isLetters(s string) bool {
	if s == "" {
		return false
	}
	for _, r := range s {
		if !unicode.IsLetter(r) {
			return false
		}
	}
	return true
}
