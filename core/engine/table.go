package engine

import (
	"fmt"
	"math"
	"strconv"
	"strings"
)

// Coord holds one index per sequence; Coord[i] is the number of symbols of
// sequence i consumed so far (0 = only the sentinel).
type Coord []int

// Clone returns an independent copy.
func (c Coord) Clone() Coord { return append(Coord(nil), c...) }

// Equal reports whether both coordinates have the same components.
func (c Coord) Equal(o Coord) bool {
	if len(c) != len(o) {
		return false
	}
	for i := range c {
		if c[i] != o[i] {
			return false
		}
	}
	return true
}

// IsOrigin reports whether every component is zero.
func (c Coord) IsOrigin() bool {
	for _, v := range c {
		if v != 0 {
			return false
		}
	}
	return true
}

// Add returns c + d, i.e. the predecessor reached by stepping back along d.
func (c Coord) Add(d Direction) Coord {
	out := c.Clone()
	for i := range out {
		out[i] += d.Component(i)
	}
	return out
}

func (c Coord) String() string {
	parts := make([]string, len(c))
	for i, v := range c {
		parts[i] = strconv.Itoa(v)
	}
	return "(" + strings.Join(parts, ",") + ")"
}

// ParentKind tags how a cell was reached.
type ParentKind uint8

const (
	unset   ParentKind = iota
	Origin             // the all-zero coordinate
	Restart            // local mode: score floored at zero, no predecessor
	FromStep           // reached from a predecessor along Parent.Dir
)

func (k ParentKind) String() string {
	switch k {
	case Origin:
		return "origin"
	case Restart:
		return "restart"
	case FromStep:
		return "step"
	}
	return "unset"
}

// Parent is either a real Direction (Kind == FromStep) or one of the Origin /
// Restart tags, in which case Dir is meaningless.
type Parent struct {
	Kind ParentKind
	Dir  Direction
}

// Cell is one entry of the score table.
type Cell struct {
	Score  float64
	Parent Parent
}

// Table is an N-dimensional grid flattened into one row-major slice: the last
// dimension varies fastest.
type Table struct {
	dims    []int
	strides []int
	cells   []Cell
}

// CellCount returns the number of cells a table with dims would hold, or an
// error if any dimension is < 1 or the product overflows int.
func CellCount(dims []int) (int, error) {
	if len(dims) == 0 {
		return 0, invalidf("no dimensions")
	}
	total := 1
	for i, d := range dims {
		if d < 1 {
			return 0, invalidf("dimension %d has size %d", i, d)
		}
		if total > math.MaxInt/d {
			return 0, invalidf("table of dimensions %v overflows", dims)
		}
		total *= d
	}
	return total, nil
}

// NewTable allocates an empty table. Every cell starts unset.
func NewTable(dims []int) (*Table, error) {
	total, err := CellCount(dims)
	if err != nil {
		return nil, err
	}
	t := &Table{
		dims:    append([]int(nil), dims...),
		strides: make([]int, len(dims)),
		cells:   make([]Cell, total),
	}
	stride := 1
	for i := len(dims) - 1; i >= 0; i-- {
		t.strides[i] = stride
		stride *= dims[i]
	}
	return t, nil
}

// Dims returns a copy of the table dimensions.
func (t *Table) Dims() []int { return append([]int(nil), t.dims...) }

// Size is the total number of cells.
func (t *Table) Size() int { return len(t.cells) }

// Corner is the coordinate with every sequence fully consumed.
func (t *Table) Corner() Coord {
	c := make(Coord, len(t.dims))
	for i, d := range t.dims {
		c[i] = d - 1
	}
	return c
}

// Offset maps c to its linear index: sum of c[i] * prod(dims[j>i]).
// ok is false for a coordinate of the wrong rank or with any component
// outside [0, dims[i]).
func (t *Table) Offset(c Coord) (off int, ok bool) {
	if len(c) != len(t.dims) {
		return 0, false
	}
	for i, v := range c {
		if v < 0 || v >= t.dims[i] {
			return 0, false
		}
		off += v * t.strides[i]
	}
	return off, true
}

// Coord is the inverse of Offset.
func (t *Table) Coord(off int) Coord {
	c := make(Coord, len(t.dims))
	for i, s := range t.strides {
		c[i] = off / s
		off %= s
	}
	return c
}

// Get returns the cell at c. ok is false when c is outside the table or the
// cell has not been written yet.
func (t *Table) Get(c Coord) (Cell, bool) {
	off, ok := t.Offset(c)
	if !ok {
		return Cell{}, false
	}
	cell := t.cells[off]
	return cell, cell.Parent.Kind != unset
}

// Set stores cell at c. Cells are write-once; a second write panics because
// it means the fill order is broken.
func (t *Table) Set(c Coord, cell Cell) {
	off, ok := t.Offset(c)
	if !ok {
		panic(fmt.Sprintf("engine: coordinate %v outside table %v", c, t.dims))
	}
	t.setAt(off, cell)
}

func (t *Table) setAt(off int, cell Cell) {
	if t.cells[off].Parent.Kind != unset {
		panic(fmt.Sprintf("engine: cell %v written twice", t.Coord(off)))
	}
	if cell.Parent.Kind == unset {
		panic("engine: storing a cell without a parent tag")
	}
	t.cells[off] = cell
}

// Next advances c in place to the following coordinate in row-major order
// (last dimension fastest, carrying into earlier ones). It returns false,
// leaving c at the origin, once c was the corner.
func (t *Table) Next(c Coord) bool {
	for i := len(c) - 1; i >= 0; i-- {
		c[i]++
		if c[i] < t.dims[i] {
			return true
		}
		c[i] = 0
	}
	return false
}
