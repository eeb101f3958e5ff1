package writers

import (
	"errors"
	"io"
	"syscall"

	"nmsa/internal/output"
)

// StartAlignmentWriter spins up a writer goroutine for finished alignments.
// JSONL streams through the pooled encoder; other formats go through the
// registry.
func StartAlignmentWriter(out io.Writer, format string, o Options, bufSize int) (chan<- output.Alignment, <-chan error) {
	if format == output.FormatJSONL {
		return StartAlignmentJSONLWriter(out, bufSize)
	}
	if bufSize <= 0 {
		bufSize = 64
	}
	in := make(chan output.Alignment, bufSize)
	errCh := make(chan error, 1)
	go func() {
		errCh <- WriteAlignments(format, out, in, o)
	}()
	return in, errCh
}

// IsBrokenPipe reports whether err means the reader went away (`| head`).
func IsBrokenPipe(err error) bool {
	return err != nil && (errors.Is(err, syscall.EPIPE) || errors.Is(err, io.ErrClosedPipe))
}
