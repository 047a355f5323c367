package cmdutil

import (
	"context"
	"iter"

	"semf/internal/pipeline"
)

// RunStream runs the shared pipeline over jobs, applies visit, and streams
// kept results via send. It returns the number of kept outputs and the first
// error encountered.
func RunStream[J, T any](
	ctx context.Context,
	cfg pipeline.Config,
	jobs iter.Seq[J],
	visit func(J) (bool, T, error),
	send func(T) error,
) (int, error) {
	total := 0
	err := pipeline.ForEach(ctx, cfg, jobs, visit, func(out T) error {
		if err := send(out); err != nil {
			return err
		}
		total++
		return nil
	})
	return total, err
}
