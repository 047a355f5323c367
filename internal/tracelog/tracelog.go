// Package tracelog routes per-term diagnostics through logr.
package tracelog

import (
	"fmt"
	"io"
	"sync"

	"github.com/go-logr/logr"
	"github.com/go-logr/logr/funcr"

	"semf/core/binding"
	"semf/core/nuclide"
)

// TermLevel is the verbosity at which term records are emitted.
const TermLevel = 1

// New returns a funcr-backed logger writing one line per record to w.
// verbosity ≥ TermLevel enables term records. Safe for concurrent use.
func New(w io.Writer, name string, verbosity int) logr.Logger {
	var mu sync.Mutex
	return funcr.New(func(prefix, args string) {
		mu.Lock()
		defer mu.Unlock()
		if prefix != "" {
			_, _ = fmt.Fprintf(w, "%s: %s\n", prefix, args)
			return
		}
		_, _ = fmt.Fprintln(w, args)
	}, funcr.Options{Verbosity: verbosity}).WithName(name)
}

// Terms returns a binding.TraceFunc reporting each term of n, or nil when
// term records are disabled on log.
func Terms(log logr.Logger, n nuclide.Nuclide) binding.TraceFunc {
	v := log.V(TermLevel)
	if !v.Enabled() {
		return nil
	}
	l := v.WithValues("nuclide", n.String())
	return func(name string, mev float64) {
		l.Info("term", "term", name, "mev", mev)
	}
}

// Result records the final energy of n at the term level.
func Result(log logr.Logger, n nuclide.Nuclide, r binding.Result) {
	log.V(TermLevel).Info("binding", "nuclide", n.String(), "mev", r.Energy, "per_nucleon_mev", r.PerNucleon)
}
