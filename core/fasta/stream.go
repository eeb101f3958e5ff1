package fasta

import (
	"bufio"
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
)

// ErrNoHeader is returned when sequence data appears before the first '>'.
var ErrNoHeader = errors.New("fasta: sequence data before first header")

// StreamCtx parses FASTA from r and calls emit once per record, after the
// whole (possibly multi-line) sequence has been read. Whitespace inside
// sequence lines is dropped; case is preserved.
//
// It returns promptly when ctx is Done.
func StreamCtx(ctx context.Context, r io.Reader, emit func(Record) error) error {
	sc := bufio.NewScanner(r)
	const maxLine = 64 * 1024 * 1024 // allow very long single-line sequences (64 MiB)
	sc.Buffer(make([]byte, 64*1024), maxLine)

	var (
		cur    Record
		inside bool
		seq    = make([]byte, 0, 1<<12)
	)
	flush := func() error {
		if !inside {
			return nil
		}
		cur.Seq = append([]byte(nil), seq...)
		return emit(cur)
	}

	for ln := 1; sc.Scan(); ln++ {
		select {
		case <-ctx.Done():
			return ctx.Err()
		default:
		}
		line := bytes.TrimSpace(sc.Bytes())
		if len(line) == 0 || line[0] == ';' {
			continue
		}
		if line[0] == '>' {
			if err := flush(); err != nil {
				return err
			}
			cur = parseHeader(line[1:])
			inside = true
			seq = seq[:0]
			continue
		}
		if !inside {
			return fmt.Errorf("line %d: %w", ln, ErrNoHeader)
		}
		for _, f := range bytes.Fields(line) {
			seq = append(seq, f...)
		}
	}
	if err := sc.Err(); err != nil {
		return fmt.Errorf("fasta scan: %w", err)
	}
	return flush()
}

func parseHeader(hdr []byte) Record {
	hdr = bytes.TrimSpace(hdr)
	if i := bytes.IndexAny(hdr, " \t"); i >= 0 {
		return Record{ID: string(hdr[:i]), Desc: string(bytes.TrimSpace(hdr[i+1:]))}
	}
	return Record{ID: string(hdr)}
}
