package engine

import (
	"context"
	"math"
)

// Best is the highest-scoring cell seen during a fill. Ties keep the first
// cell in row-major order.
type Best struct {
	Score float64
	At    Coord
}

// sentinel is prepended to every sequence so index 0 means "nothing consumed".
const sentinel byte = 0

// Sentinel returns the sequences as byte slices with the sentinel prepended.
func Sentinel(seqs []string) [][]byte {
	out := make([][]byte, len(seqs))
	for i, s := range seqs {
		b := make([]byte, 0, len(s)+1)
		b = append(b, sentinel)
		out[i] = append(b, s...)
	}
	return out
}

// Fill scores every cell of a table sized to the sentineled seqs. Cells are
// visited in row-major order, so every predecessor (current + direction) has
// a smaller offset and is already written. In Local mode a zero-score restart
// is offered after all real directions.
//
// ctx is polled once per row of the last dimension; p may be nil.
func Fill(ctx context.Context, seqs [][]byte, sc Scorer, mode Mode, p Progress) (*Table, Best, error) {
	n := len(seqs)
	if n < 1 || n > MaxSequences {
		return nil, Best{}, invalidf("need 1..%d sequences, got %d", MaxSequences, n)
	}
	dims := make([]int, n)
	for i, s := range seqs {
		dims[i] = len(s)
	}
	t, err := NewTable(dims)
	if err != nil {
		return nil, Best{}, err
	}

	dirs := Directions(n)
	// Offset of the predecessor along each direction, relative to the
	// current cell.
	back := make([]int, len(dirs))
	for k, d := range dirs {
		for i := 0; i < n; i++ {
			if d.Consumes(i) {
				back[k] += t.strides[i]
			}
		}
	}

	if p != nil {
		p.Start(t.Size())
		defer p.Done()
	}

	cur := make(Coord, n)
	t.setAt(0, Cell{Score: 0, Parent: Parent{Kind: Origin}})
	best := Best{Score: 0, At: cur.Clone()}
	pending := 1

	for off := 1; t.Next(cur); off++ {
		if cur[n-1] == 0 {
			if p != nil {
				p.Advance(pending)
			}
			pending = 0
			select {
			case <-ctx.Done():
				return nil, Best{}, ctx.Err()
			default:
			}
		}

		score := math.Inf(-1)
		var parent Parent
		for k, d := range dirs {
			if !d.feasible(cur) {
				continue
			}
			cand := sc.Candidate(t.cells[off-back[k]].Score, seqs, cur, d)
			if cand > score {
				score = cand
				parent = Parent{Kind: FromStep, Dir: d}
			}
		}
		if mode == Local && score < 0 {
			score = 0
			parent = Parent{Kind: Restart}
		}
		t.setAt(off, Cell{Score: score, Parent: parent})
		pending++

		if score > best.Score {
			best = Best{Score: score, At: cur.Clone()}
		}
	}
	if p != nil && pending > 0 {
		p.Advance(pending)
	}
	return t, best, nil
}
