package appcore

import (
	"io"

	"nmsa/internal/output"
	"nmsa/internal/writers"
)

// AlignmentWriterFactory starts the writer for one output format.
type AlignmentWriterFactory struct {
	Format string
	Layout writers.Options
}

func NewAlignmentWriterFactory(format string, layout writers.Options) AlignmentWriterFactory {
	return AlignmentWriterFactory{Format: format, Layout: layout}
}

func (w AlignmentWriterFactory) Start(out io.Writer, bufSize int) (chan<- output.Alignment, <-chan error) {
	return writers.StartAlignmentWriter(out, w.Format, w.Layout, bufSize)
}
