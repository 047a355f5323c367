// internal/output/text.go
package output

import (
	"fmt"
	"io"
)

// TextOptions control TSV rendering.
type TextOptions struct {
	Header bool
	Cols   Columns
	// Pretty, when non-nil, renders a block printed after each row.
	Pretty func(Row) string
}

func writeRow(w io.Writer, r Row, o TextOptions) error {
	if _, err := fmt.Fprintln(w, FormatRowTSV(r, o.Cols)); err != nil {
		return err
	}
	if o.Pretty != nil {
		if _, err := io.WriteString(w, o.Pretty(r)); err != nil {
			return err
		}
	}
	return nil
}

// WriteText prints an optional header then one line per row.
func WriteText(w io.Writer, list []Row, o TextOptions) error {
	if o.Header {
		if _, err := fmt.Fprintln(w, Header(o.Cols)); err != nil {
			return err
		}
	}
	for _, r := range list {
		if err := writeRow(w, r, o); err != nil {
			return err
		}
	}
	return nil
}

// StreamText is WriteText over a channel. It drains in on error.
func StreamText(w io.Writer, in <-chan Row, o TextOptions) error {
	var err error
	if o.Header {
		_, err = fmt.Fprintln(w, Header(o.Cols))
	}
	for r := range in {
		if err != nil {
			continue
		}
		err = writeRow(w, r, o)
	}
	return err
}

// WriteResidualsText prints fit residuals as TSV.
func WriteResidualsText(w io.Writer, list []Residual, header bool) error {
	if header {
		if _, err := fmt.Fprintln(w, ResidualHeader); err != nil {
			return err
		}
	}
	for _, r := range list {
		if _, err := fmt.Fprintln(w, FormatResidualTSV(r)); err != nil {
			return err
		}
	}
	return nil
}
