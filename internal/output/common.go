package output

import (
	"nmsa-core/engine"
)

// Output formats
const (
	FormatText  = "text"
	FormatJSON  = "json"
	FormatJSONL = "jsonl"
	FormatFASTA = "fasta"
)

// Alignment is one finished alignment with its row identities.
type Alignment struct {
	Source string   // input file(s)
	IDs    []string // one per row; may be empty
	engine.Result
}
