// internal/pipeline/sim.go
package pipeline

import (
	"context"

	"nmsa-core/engine"
)

// Aligner is the minimal capability the pipeline needs.
// Any engine (including fakes in tests) can satisfy this.
type Aligner interface {
	AlignContext(ctx context.Context, seqs []string) (engine.Result, error)
}

// progressAligner is implemented by aligners that can report fill progress.
type progressAligner interface {
	WithProgress(p engine.Progress) *engine.Engine
}

var (
	_ Aligner         = (*engine.Engine)(nil)
	_ progressAligner = (*engine.Engine)(nil)
)
