package output

import (
	"fmt"
	"io"
	"strings"

	"nmsa-core/engine"
)

// FASTARecords returns gapped FASTA text for one alignment. Local-mode
// filler outside the window is written as gap so every row stays a valid
// gapped sequence of equal length. Empty local alignments yield nothing.
func FASTARecords(a Alignment, gap byte, filler byte) string {
	if a.Mode == engine.Local && a.Empty() {
		return ""
	}
	ids := RowIDs(a)
	var sb strings.Builder
	for i, row := range a.Aligned {
		fmt.Fprintf(&sb, ">%s mode=%s score=%g", ids[i], a.Mode, a.Score)
		if a.Mode == engine.Local {
			from, to := a.Window()
			fmt.Fprintf(&sb, " window=%d-%d", from+1, to)
		}
		if a.Source != "" {
			fmt.Fprintf(&sb, " source_file=%s", a.Source)
		}
		sb.WriteByte('\n')
		if a.Mode == engine.Local && filler != gap {
			row = strings.ReplaceAll(row, string(filler), string(gap))
		}
		sb.WriteString(row)
		sb.WriteByte('\n')
	}
	return sb.String()
}

// StreamFASTA streams gapped FASTA records from a channel to the writer.
func StreamFASTA(w io.Writer, in <-chan Alignment, gap, filler byte) error {
	for a := range in {
		if _, err := io.WriteString(w, FASTARecords(a, gap, filler)); err != nil {
			return err
		}
	}
	return nil
}

// WriteFASTA writes a slice of alignments as gapped FASTA.
func WriteFASTA(w io.Writer, list []Alignment, gap, filler byte) error {
	for _, a := range list {
		if _, err := io.WriteString(w, FASTARecords(a, gap, filler)); err != nil {
			return err
		}
	}
	return nil
}
