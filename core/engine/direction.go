package engine

import (
	"math/bits"
	"strings"
)

// MaxSequences bounds N; the direction set holds 2^N-1 entries.
const MaxSequences = 16

// Direction is one edit step over N sequences. Bit i set means sequence i
// consumes a symbol (component -1); clear means it contributes a gap
// (component 0). The zero value is not a direction.
type Direction uint32

// Directions returns every non-zero direction over n sequences, ordered by
// ascending bitmask. Fill ties resolve to the earliest entry.
func Directions(n int) []Direction {
	if n < 1 || n > MaxSequences {
		return nil
	}
	out := make([]Direction, 0, 1<<n-1)
	for m := 1; m < 1<<n; m++ {
		out = append(out, Direction(m))
	}
	return out
}

// Consumes reports whether sequence i advances in this step.
func (d Direction) Consumes(i int) bool { return d&(1<<uint(i)) != 0 }

// Component is the step along axis i: -1 when consumed, 0 for a gap.
func (d Direction) Component(i int) int {
	if d.Consumes(i) {
		return -1
	}
	return 0
}

// Consumed counts the sequences advancing in this step.
func (d Direction) Consumed() int { return bits.OnesCount32(uint32(d)) }

// Vector expands d into its n components.
func (d Direction) Vector(n int) []int {
	v := make([]int, n)
	for i := range v {
		v[i] = d.Component(i)
	}
	return v
}

// Format renders d over n sequences, e.g. "(-1,0,-1)".
func (d Direction) Format(n int) string {
	var b strings.Builder
	b.WriteByte('(')
	for i := 0; i < n; i++ {
		if i > 0 {
			b.WriteByte(',')
		}
		if d.Consumes(i) {
			b.WriteString("-1")
		} else {
			b.WriteByte('0')
		}
	}
	b.WriteByte(')')
	return b.String()
}

// feasible reports whether stepping back along d from c stays inside the
// table, i.e. every consumed axis still has a symbol to give.
func (d Direction) feasible(c Coord) bool {
	for i, v := range c {
		if v == 0 && d.Consumes(i) {
			return false
		}
	}
	return true
}
