// internal/jsonlutil/jsonlutil.go
package jsonlutil

import (
	"bufio"
	"encoding/json"
	"io"
	"sync"
)

// Pooled 64 KiB writers shared by JSONL goroutines.
var bwPool = sync.Pool{
	New: func() any {
		return bufio.NewWriterSize(io.Discard, 64<<10)
	},
}

// Start spins up a JSONL encoder goroutine for values of type T. Each value
// is flushed as soon as it is encoded, since alignments arrive slowly and
// one at a time.
//   - encode: fn to encode one value (convert to wire type & enc.Encode)
//   - isBroken: recognizer for broken/closed pipe errors; once seen, the
//     rest of the input is drained and the writer reports success
func Start[T any](out io.Writer, bufSize int, encode func(*json.Encoder, T) error, isBroken func(error) bool) (chan<- T, <-chan error) {
	if bufSize <= 0 {
		bufSize = 64
	}
	in := make(chan T, bufSize)
	done := make(chan error, 1)

	go func() {
		bw := bwPool.Get().(*bufio.Writer)
		bw.Reset(out)
		defer func() {
			bw.Reset(io.Discard)
			bwPool.Put(bw)
		}()

		enc := json.NewEncoder(bw)
		enc.SetEscapeHTML(false)

		fail := func(err error) {
			for range in {
			}
			if isBroken(err) {
				err = nil
			}
			done <- err
		}
		for v := range in {
			if err := encode(enc, v); err != nil {
				fail(err)
				return
			}
			if err := bw.Flush(); err != nil {
				fail(err)
				return
			}
		}
		done <- nil
	}()

	return in, done
}
