package engine

import (
	"context"
	"fmt"
	"strings"
)

// Mode selects the alignment variant.
type Mode int

const (
	Global Mode = iota // end-to-end over every symbol
	Local              // best-scoring sub-region, restarts at zero
)

func (m Mode) String() string {
	if m == Local {
		return "local"
	}
	return "global"
}

// ParseMode accepts "global" or "local" (case-insensitive).
func ParseMode(s string) (Mode, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "global":
		return Global, nil
	case "local":
		return Local, nil
	}
	return Global, fmt.Errorf("unknown alignment mode %q", s)
}

// Progress receives fill progress in cells. Implementations must be cheap;
// Advance is called once per row of the last dimension.
type Progress interface {
	Start(total int)
	Advance(n int)
	Done()
}

// Config holds alignment parameters.
type Config struct {
	Indel  float64
	GapGap float64
	Sub    SubstitutionFunc // nil = MatchMismatch(1, -1)
	Mode   Mode

	Gap    byte // gap placeholder in aligned rows (0 = '-')
	Filler byte // local-mode padding outside the window (0 = ' ')

	MaxCells int      // reject larger tables before allocating (0 = unlimited)
	Progress Progress // optional
}

// Engine aligns sets of sequences with one Config.
type Engine struct {
	cfg Config
}

// New creates an Engine, filling Config defaults.
func New(c Config) *Engine {
	if c.Sub == nil {
		c.Sub = MatchMismatch(1, -1)
	}
	if c.Gap == 0 {
		c.Gap = '-'
	}
	if c.Filler == 0 {
		c.Filler = ' '
	}
	return &Engine{cfg: c}
}

// Config returns the effective configuration.
func (e *Engine) Config() Config { return e.cfg }

// WithProgress returns a copy of e reporting fill progress to p.
func (e *Engine) WithProgress(p Progress) *Engine {
	c := e.cfg
	c.Progress = p
	return &Engine{cfg: c}
}

// Result is one finished alignment.
type Result struct {
	Mode  Mode
	Score float64 // corner score (global) or best score (local)

	// Aligned has one row per input sequence, all of equal length.
	Aligned []string

	// Local mode: widest residue before and after the aligned window.
	LeftPad  int
	RightPad int

	Path  Path
	End   Coord // corner (global) or best cell (local)
	Cells int
}

// Empty reports a local alignment without any positive-scoring region.
func (r Result) Empty() bool { return len(r.Path) == 0 }

// Window returns the column range [from, to) of the aligned window.
func (r Result) Window() (from, to int) {
	if len(r.Aligned) == 0 {
		return 0, 0
	}
	return r.LeftPad, len(r.Aligned[0]) - r.RightPad
}

// Align runs the alignment to completion.
func (e *Engine) Align(seqs []string) (Result, error) {
	return e.AlignContext(context.Background(), seqs)
}

// AlignContext is Align with cancellation checked between table rows.
func (e *Engine) AlignContext(ctx context.Context, seqs []string) (Result, error) {
	if err := e.Validate(seqs); err != nil {
		return Result{}, err
	}
	prepared := Sentinel(seqs)
	sc := Scorer{Indel: e.cfg.Indel, GapGap: e.cfg.GapGap, Sub: e.cfg.Sub}

	t, best, err := Fill(ctx, prepared, sc, e.cfg.Mode, e.cfg.Progress)
	if err != nil {
		return Result{}, err
	}

	res := Result{Mode: e.cfg.Mode, Cells: t.Size()}
	switch e.cfg.Mode {
	case Local:
		path, err := LocalPath(t, best.At)
		if err != nil {
			return Result{}, err
		}
		res.Score = best.Score
		res.End = best.At
		res.Path = path
		res.Aligned, res.LeftPad, res.RightPad = BuildLocal(prepared, path, e.cfg.Gap, e.cfg.Filler)
	default:
		path, err := GlobalPath(t)
		if err != nil {
			return Result{}, err
		}
		corner := t.Corner()
		cell, _ := t.Get(corner)
		res.Score = cell.Score
		res.End = corner
		res.Path = path
		res.Aligned = BuildGlobal(prepared, path, e.cfg.Gap)
	}
	return res, nil
}

// Validate applies the input preconditions without allocating a table.
func (e *Engine) Validate(seqs []string) error {
	if len(seqs) == 0 {
		return invalidf("no sequences")
	}
	if len(seqs) > MaxSequences {
		return invalidf("%d sequences exceeds the maximum of %d", len(seqs), MaxSequences)
	}
	dims := make([]int, len(seqs))
	for i, s := range seqs {
		if s == "" {
			return invalidf("sequence %d is empty", i+1)
		}
		if j := strings.IndexByte(s, e.cfg.Gap); j >= 0 {
			return invalidf("sequence %d contains the gap character %q at %d", i+1, e.cfg.Gap, j+1)
		}
		dims[i] = len(s) + 1
	}
	total, err := CellCount(dims)
	if err != nil {
		return err
	}
	if e.cfg.MaxCells > 0 && total > e.cfg.MaxCells {
		return invalidf("table of %d cells exceeds the limit of %d", total, e.cfg.MaxCells)
	}
	return nil
}
