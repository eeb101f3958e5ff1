// internal/writers/jsonl.go
package writers

import (
	"encoding/json"
	"io"

	"nmsa/internal/jsonlutil"
	"nmsa/internal/output"
)

// StartAlignmentJSONLWriter streams each alignment as one JSON line (v1).
func StartAlignmentJSONLWriter(out io.Writer, bufSize int) (chan<- output.Alignment, <-chan error) {
	return jsonlutil.Start[output.Alignment](out, bufSize,
		func(enc *json.Encoder, a output.Alignment) error {
			return enc.Encode(output.ToAPIAlignment(a))
		},
		IsBrokenPipe,
	)
}
