// internal/runutil/runutil.go
package runutil

import (
	"fmt"
	"runtime"

	"golang.org/x/text/language"

	"semf/core/binding"
	"semf/internal/constsfile"
)

// Threads returns the worker count: n when positive, otherwise all CPUs.
func Threads(n int) int {
	if n > 0 {
		return n
	}
	return runtime.NumCPU()
}

// ResolveConsts picks the coefficient set for a run. A constants file wins
// over the preset; label names the set in outputs.
func ResolveConsts(preset, constsFile string) (c binding.Consts, label string, err error) {
	if constsFile != "" {
		s, err := constsfile.Load(constsFile)
		if err != nil {
			return binding.Consts{}, "", err
		}
		return s.Consts, s.Name, nil
	}
	c, err = binding.Preset(preset)
	if err != nil {
		return binding.Consts{}, "", err
	}
	name, _ := binding.CanonicalPreset(preset)
	return c, name, nil
}

// ResolveLang parses a BCP 47 tag for number formatting. An unknown tag
// falls back to English with a warning.
func ResolveLang(tag string) (language.Tag, []string) {
	if tag == "" {
		return language.English, nil
	}
	t, err := language.Parse(tag)
	if err != nil {
		return language.English, []string{fmt.Sprintf("unknown --lang %q; using en", tag)}
	}
	return t, nil
}

// ScanRange is a normalised nuclide-chart window. MaxZ < 0 means Z ≤ A only.
type ScanRange struct {
	MinA, MaxA int
	MinZ, MaxZ int
}

// ClampScan normalises a requested window and returns the warnings for
// every bound it had to move.
// Rules:
//   - A starts at 1 (there is no A = 0 nucleus)
//   - Z starts at 0
//   - a MaxZ above MaxA is redundant and dropped
func ClampScan(minA, maxA, minZ, maxZ int) (ScanRange, []string) {
	var warns []string
	r := ScanRange{MinA: minA, MaxA: maxA, MinZ: minZ, MaxZ: maxZ}
	if r.MinA < 1 {
		warns = append(warns, fmt.Sprintf("--min-a %d raised to 1", minA))
		r.MinA = 1
	}
	if r.MinZ < 0 {
		warns = append(warns, fmt.Sprintf("--min-z %d raised to 0", minZ))
		r.MinZ = 0
	}
	if r.MaxZ > r.MaxA {
		r.MaxZ = -1
	}
	return r, warns
}
