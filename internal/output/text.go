// internal/output/text.go
package output

import (
	"fmt"
	"io"
	"strings"

	"nmsa-core/engine"
	"nmsa/internal/pretty"
)

// TextBlock renders one alignment as the human-readable report: comment
// lines with source, mode and score, then the labelled rows.
func TextBlock(a Alignment, popt pretty.Options) string {
	var sb strings.Builder
	if a.Source != "" {
		fmt.Fprintf(&sb, "# source: %s\n", a.Source)
	}
	fmt.Fprintf(&sb, "# mode: %s\n", a.Mode)
	fmt.Fprintf(&sb, "# score: %g\n", a.Score)
	local := a.Mode == engine.Local
	if local && a.Empty() {
		sb.WriteString("# no positive-scoring local alignment\n")
	}
	sb.WriteString(pretty.RenderWithOptions(pretty.Block{
		Labels:   a.IDs,
		Rows:     a.Aligned,
		Local:    local,
		LeftPad:  a.LeftPad,
		RightPad: a.RightPad,
	}, popt))
	return sb.String()
}

// StreamText writes alignments from a channel, separated by blank lines.
func StreamText(w io.Writer, in <-chan Alignment, popt pretty.Options) error {
	first := true
	for a := range in {
		if !first {
			if _, err := io.WriteString(w, "\n"); err != nil {
				return err
			}
		}
		first = false
		if _, err := io.WriteString(w, TextBlock(a, popt)); err != nil {
			return err
		}
	}
	return nil
}
