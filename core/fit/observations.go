package fit

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"

	"semf/core/nuclide"
)

// ReadObservations parses whitespace-separated rows of "A Z B" or "NUCLIDE B".
// Blank lines and lines starting with '#' are skipped. name labels errors.
func ReadObservations(r io.Reader, name string) ([]Observation, error) {
	var list []Observation
	sc := bufio.NewScanner(r)
	ln := 0
	for sc.Scan() {
		ln++
		line := strings.TrimSpace(sc.Text())
		if line == "" || line[0] == '#' {
			continue
		}
		fields := strings.Fields(line)
		var (
			n   nuclide.Nuclide
			raw string
			err error
		)
		switch len(fields) {
		case 2:
			n, err = nuclide.Parse(fields[0])
			raw = fields[1]
		case 3:
			n, err = nuclide.Parse(fields[0] + ":" + fields[1])
			raw = fields[2]
		default:
			return nil, fmt.Errorf("%s:%d: expected 2 or 3 columns (A Z B | nuclide B), got %d", name, ln, len(fields))
		}
		if err != nil {
			return nil, fmt.Errorf("%s:%d: %w", name, ln, err)
		}
		e, err := strconv.ParseFloat(raw, 64)
		if err != nil {
			return nil, fmt.Errorf("%s:%d: bad energy %q", name, ln, raw)
		}
		list = append(list, Observation{A: n.A, Z: n.Z, Energy: e})
	}
	if err := sc.Err(); err != nil {
		return nil, err
	}
	return list, nil
}
