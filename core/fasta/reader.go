package fasta

import (
	"context"
	"fmt"
	"io"
)

// Record is one parsed FASTA entry.
type Record struct {
	ID   string
	Desc string
	Seq  []byte
}

// ReadAll collects every record from r.
func ReadAll(ctx context.Context, r io.Reader) ([]Record, error) {
	var out []Record
	err := StreamCtx(ctx, r, func(rec Record) error {
		out = append(out, rec)
		return nil
	})
	return out, err
}

// ReadFile opens path (plain, gzip, or "-" for stdin) and collects every
// record. Errors carry the path.
func ReadFile(ctx context.Context, path string) ([]Record, error) {
	rc, err := Open(path)
	if err != nil {
		return nil, err
	}
	defer func() { _ = rc.Close() }()

	recs, err := ReadAll(ctx, rc)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return recs, nil
}
