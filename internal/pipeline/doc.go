// Package pipeline loads FASTA inputs into alignment jobs, runs them on a
// worker pool through an Aligner, and hands results to a visit callback in
// job order.
//
// The only contract to implement is Aligner (AlignContext).
// This keeps the pipeline swappable and testable.
package pipeline
