// internal/output/json.go
package output

import (
	"io"
	"strconv"

	"nmsa-core/engine"
	"nmsa/internal/jsonutil"
	"nmsa/pkg/api"
)

// ToAPIAlignment converts a domain Alignment to the stable wire schema (v1).
func ToAPIAlignment(a Alignment) api.AlignmentV1 {
	v := api.AlignmentV1{
		Source: a.Source,
		Mode:   a.Mode.String(),
		Score:  a.Score,
		Cells:  a.Cells,
		Rows:   make([]api.RowV1, len(a.Aligned)),
	}
	if len(a.Aligned) > 0 {
		v.Length = len(a.Aligned[0])
	}
	if a.Mode == engine.Local {
		v.LeftPad, v.RightPad = a.LeftPad, a.RightPad
		v.Empty = a.Empty()
	}
	ids := RowIDs(a)
	for i, row := range a.Aligned {
		v.Rows[i] = api.RowV1{ID: ids[i], Aligned: row}
	}
	return v
}

func toAPIAlignments(list []Alignment) []api.AlignmentV1 {
	out := make([]api.AlignmentV1, 0, len(list))
	for _, a := range list {
		out = append(out, ToAPIAlignment(a))
	}
	return out
}

// WriteJSON writes a single JSON array of v1 alignments (pretty-indented).
func WriteJSON(w io.Writer, list []Alignment) error {
	return jsonutil.EncodePretty(w, toAPIAlignments(list))
}

// RowIDs returns one identifier per aligned row, s<i> where none is known.
func RowIDs(a Alignment) []string {
	out := make([]string, len(a.Aligned))
	for i := range out {
		if i < len(a.IDs) && a.IDs[i] != "" {
			out[i] = a.IDs[i]
			continue
		}
		out[i] = "s" + strconv.Itoa(i+1)
	}
	return out
}
