package writers

import (
	"io"

	"semf/internal/common"
	"semf/internal/output"
)

func init() {
	RegisterResult("text", writeResultText)
	RegisterResult("json", writeResultJSON)
	RegisterResult("jsonl", writeResultJSONL)
	RegisterResidual("text", writeResidualText)
	RegisterResidual("json", writeResidualJSON)
	RegisterResidual("jsonl", writeResidualJSONL)
}

func collect[T any](in <-chan T) []T {
	var buf []T
	for v := range in {
		buf = append(buf, v)
	}
	return buf
}

func writeResultText(out io.Writer, in <-chan output.Row, o ResultOptions) error {
	if !o.Sort {
		return output.StreamText(out, in, o.Text)
	}
	buf := collect(in)
	common.SortRows(buf, o.Rank)
	return output.WriteText(out, buf, o.Text)
}

func writeResultJSON(out io.Writer, in <-chan output.Row, o ResultOptions) error {
	buf := collect(in)
	if o.Sort {
		common.SortRows(buf, o.Rank)
	}
	return output.WriteJSON(out, buf, o.Text.Cols)
}

func writeResidualText(out io.Writer, in <-chan output.Residual, header bool) error {
	buf := collect(in)
	common.SortResiduals(buf)
	return output.WriteResidualsText(out, buf, header)
}

func writeResidualJSON(out io.Writer, in <-chan output.Residual, _ bool) error {
	buf := collect(in)
	common.SortResiduals(buf)
	return output.WriteResidualsJSON(out, buf)
}
