// Package engine contains the N-dimensional alignment core: the flattened
// score table, the direction set, the sum-of-pairs scorer, the fill loop and
// both tracebacks. It never imports app, writers, cli, or pipeline; keep it
// domain-only.
//
// External outputs must not depend on the internal shape here; the CLI
// converts results to its own stable wire types (JSON/JSONL v1).
package engine
