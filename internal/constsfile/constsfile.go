// internal/constsfile/constsfile.go
// Coefficient files in YAML or JSON:
//
//	name: my-fit          # optional label
//	base: fit2            # optional preset to start from
//	a_v: 15.75
//	a_s: 17.8
//	a_c: 0.711
//	a_a: 23.7
//	a_p: 11.18
//	k_p: -0.5
//
// Without base all six coefficients are required.
package constsfile

import (
	"fmt"
	"os"
	"sort"
	"strings"

	"github.com/ghodss/yaml"

	"semf/core/binding"
	"semf/internal/output"
)

type file struct {
	Name string   `json:"name,omitempty"`
	Base string   `json:"base,omitempty"`
	AV   *float64 `json:"a_v,omitempty"`
	AS   *float64 `json:"a_s,omitempty"`
	AC   *float64 `json:"a_c,omitempty"`
	AA   *float64 `json:"a_a,omitempty"`
	AP   *float64 `json:"a_p,omitempty"`
	KP   *float64 `json:"k_p,omitempty"`
}

var knownKeys = map[string]bool{
	"name": true, "base": true,
	"a_v": true, "a_s": true, "a_c": true, "a_a": true, "a_p": true, "k_p": true,
}

// Set is a loaded coefficient set and its label.
type Set struct {
	Name   string
	Consts binding.Consts
}

// Load reads a constants file from disk.
func Load(path string) (Set, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Set{}, err
	}
	s, err := Parse(data)
	if err != nil {
		return Set{}, fmt.Errorf("%s: %w", path, err)
	}
	return s, nil
}

// Parse decodes YAML or JSON bytes.
func Parse(data []byte) (Set, error) {
	var raw map[string]interface{}
	if err := yaml.Unmarshal(data, &raw); err != nil {
		return Set{}, fmt.Errorf("decode constants: %w", err)
	}
	var unknown []string
	for k := range raw {
		if !knownKeys[k] {
			unknown = append(unknown, k)
		}
	}
	if len(unknown) > 0 {
		sort.Strings(unknown)
		return Set{}, fmt.Errorf("%w: unknown key(s) %s", binding.ErrInvalidConsts, strings.Join(unknown, ", "))
	}

	var f file
	if err := yaml.Unmarshal(data, &f); err != nil {
		return Set{}, fmt.Errorf("decode constants: %w", err)
	}

	var c binding.Consts
	if f.Base != "" {
		base, err := binding.Preset(f.Base)
		if err != nil {
			return Set{}, err
		}
		c = base
	}
	fields := []struct {
		key string
		src *float64
		dst *float64
	}{
		{"a_v", f.AV, &c.AV}, {"a_s", f.AS, &c.AS}, {"a_c", f.AC, &c.AC},
		{"a_a", f.AA, &c.AA}, {"a_p", f.AP, &c.AP}, {"k_p", f.KP, &c.KP},
	}
	var missing []string
	for _, fl := range fields {
		switch {
		case fl.src != nil:
			*fl.dst = *fl.src
		case f.Base == "":
			missing = append(missing, fl.key)
		}
	}
	if len(missing) > 0 {
		return Set{}, fmt.Errorf("%w: missing %s (or set base: fit1|fit2)", binding.ErrInvalidConsts, strings.Join(missing, ", "))
	}
	if err := c.Validate(); err != nil {
		return Set{}, err
	}

	name := f.Name
	if name == "" {
		name = "custom"
	}
	return Set{Name: name, Consts: c}, nil
}

// Marshal renders c as YAML in the shape Parse reads.
func Marshal(c binding.Consts, name string) ([]byte, error) {
	return yaml.Marshal(output.ToAPIConsts(c, name, ""))
}
