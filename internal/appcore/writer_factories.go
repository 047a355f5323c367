package appcore

import (
	"io"

	"semf/internal/output"
	"semf/internal/writers"
)

// ---------------- Result writer ----------------

type ResultWriterFactory struct {
	Format string
	Opts   writers.ResultOptions
}

func NewResultWriterFactory(format string, o writers.ResultOptions) ResultWriterFactory {
	return ResultWriterFactory{Format: format, Opts: o}
}

func (w ResultWriterFactory) Start(out io.Writer, bufSize int) (chan<- output.Row, <-chan error) {
	return writers.StartResultWriter(out, w.Format, w.Opts, bufSize)
}

// ---------------- Residual writer ----------------

type ResidualWriterFactory struct {
	Format string
	Header bool
}

func NewResidualWriterFactory(format string, header bool) ResidualWriterFactory {
	return ResidualWriterFactory{Format: format, Header: header}
}

func (w ResidualWriterFactory) Start(out io.Writer, bufSize int) (chan<- output.Residual, <-chan error) {
	return writers.StartResidualWriter(out, w.Format, w.Header, bufSize)
}
