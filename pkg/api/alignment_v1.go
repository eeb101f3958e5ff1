// pkg/api/alignment_v1.go
package api

// AlignmentV1 is the stable JSON/JSONL schema for one alignment.
// Keep fields, names, and types stable. Add new fields only with ",omitempty".
type AlignmentV1 struct {
	Source   string  `json:"source,omitempty"`
	Mode     string  `json:"mode"` // "global" | "local"
	Score    float64 `json:"score"`
	Length   int     `json:"length"` // columns per row
	Cells    int     `json:"cells"`  // DP table size
	LeftPad  int     `json:"left_pad,omitempty"`
	RightPad int     `json:"right_pad,omitempty"`
	Empty    bool    `json:"empty,omitempty"` // local mode without a positive-scoring region
	Rows     []RowV1 `json:"rows"`
}

// RowV1 is one aligned input sequence.
type RowV1 struct {
	ID      string `json:"id"`
	Aligned string `json:"aligned"`
}
