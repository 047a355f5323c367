// internal/writers/jsonl.go
package writers

import (
	"io"

	"semf/internal/common"
	"semf/internal/jsonlutil"
	"semf/internal/output"
)

// writeResultJSONL streams each row as one JSON line (v1). With Sort set the
// rows are buffered and ranked first.
func writeResultJSONL(out io.Writer, in <-chan output.Row, o ResultOptions) error {
	enc, done := jsonlutil.Start[output.Row](out, cap(in),
		func(r output.Row) any { return output.ToAPIBinding(r, o.Text.Cols) },
		IsBrokenPipe,
	)
	if o.Sort {
		buf := collect(in)
		common.SortRows(buf, o.Rank)
		for _, r := range buf {
			enc <- r
		}
	} else {
		for r := range in {
			enc <- r
		}
	}
	close(enc)
	return <-done
}

func writeResidualJSONL(out io.Writer, in <-chan output.Residual, _ bool) error {
	enc, done := jsonlutil.Start[output.Residual](out, cap(in),
		func(r output.Residual) any { return output.ToAPIResidual(r) },
		IsBrokenPipe,
	)
	for r := range in {
		enc <- r
	}
	close(enc)
	return <-done
}
