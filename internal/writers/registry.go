// internal/writers/registry.go
package writers

import (
	"fmt"
	"io"

	"nmsa/internal/output"
	"nmsa/internal/pretty"
)

// Options carry layout settings shared by all formats.
type Options struct {
	Gap    byte
	Filler byte
	Pretty pretty.Options
}

// StreamFunc consumes alignments until in is closed.
type StreamFunc func(w io.Writer, in <-chan output.Alignment, o Options) error

// AlignmentWriters maps format → handler. Register in init() blocks.
var AlignmentWriters = map[string]StreamFunc{}

// RegisterAlignment installs a handler (idempotent last-wins).
func RegisterAlignment(format string, fn StreamFunc) { AlignmentWriters[format] = fn }

// WriteAlignments dispatches to the registered handler for format. Input is
// drained whenever the handler stops early (unknown format, write error) so
// senders never block.
func WriteAlignments(format string, w io.Writer, in <-chan output.Alignment, o Options) error {
	fn, ok := AlignmentWriters[format]
	if !ok {
		for range in {
		}
		return fmt.Errorf("unknown alignment format %q (no writer registered)", format)
	}
	err := fn(w, in, o)
	for range in {
	}
	return err
}

func init() {
	RegisterAlignment(output.FormatText, func(w io.Writer, in <-chan output.Alignment, o Options) error {
		return output.StreamText(w, in, o.Pretty)
	})
	RegisterAlignment(output.FormatFASTA, func(w io.Writer, in <-chan output.Alignment, o Options) error {
		return output.StreamFASTA(w, in, o.Gap, o.Filler)
	})
	RegisterAlignment(output.FormatJSON, func(w io.Writer, in <-chan output.Alignment, _ Options) error {
		var buf []output.Alignment
		for a := range in {
			buf = append(buf, a)
		}
		return output.WriteJSON(w, buf)
	})
}
