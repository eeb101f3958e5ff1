package engine

import "bytes"

// columns emits one row per sequence: the consumed symbol where the step
// advances that sequence, gap otherwise.
func columns(seqs [][]byte, path Path, gap byte) [][]byte {
	rows := make([][]byte, len(seqs))
	for i := range rows {
		rows[i] = make([]byte, 0, len(path))
	}
	for _, st := range path {
		for i := range seqs {
			if st.Dir.Consumes(i) {
				rows[i] = append(rows[i], seqs[i][st.At[i]])
			} else {
				rows[i] = append(rows[i], gap)
			}
		}
	}
	return rows
}

// BuildGlobal turns a global path into equal-length rows. Symbols after the
// last consumed one are appended verbatim, then every row is right-padded
// with gap to the longest.
func BuildGlobal(seqs [][]byte, path Path, gap byte) []string {
	rows := columns(seqs, path, gap)
	last := make([]int, len(seqs))
	for _, st := range path {
		for i := range seqs {
			if st.Dir.Consumes(i) {
				last[i] = st.At[i]
			}
		}
	}
	width := 0
	for i, s := range seqs {
		rows[i] = append(rows[i], s[last[i]+1:]...)
		if len(rows[i]) > width {
			width = len(rows[i])
		}
	}
	out := make([]string, len(rows))
	for i, r := range rows {
		if d := width - len(r); d > 0 {
			r = append(r, bytes.Repeat([]byte{gap}, d)...)
		}
		out[i] = string(r)
	}
	return out
}

// BuildLocal places the aligned window of a local path between each
// sequence's unaligned residue and pads with filler so every window starts
// at the same column. It returns the rows plus the widest left and right
// residue. An empty path has no window: each row is its whole sequence,
// left-aligned, and right equals the longest sequence.
func BuildLocal(seqs [][]byte, path Path, gap, filler byte) (rows []string, left, right int) {
	n := len(seqs)
	start := make([]int, n) // last symbol before the window
	end := make([]int, n)   // last symbol inside the window
	if len(path) > 0 {
		copy(start, path.Start())
		copy(end, path[len(path)-1].At)
	}

	win := columns(seqs, path, gap)
	lefts := make([][]byte, n)
	rights := make([][]byte, n)
	for i, s := range seqs {
		lefts[i] = s[1 : start[i]+1]
		rights[i] = s[end[i]+1:]
		if len(lefts[i]) > left {
			left = len(lefts[i])
		}
		if len(rights[i]) > right {
			right = len(rights[i])
		}
	}

	rows = make([]string, n)
	for i := range seqs {
		var b bytes.Buffer
		b.Grow(left + len(path) + right)
		b.Write(bytes.Repeat([]byte{filler}, left-len(lefts[i])))
		b.Write(lefts[i])
		b.Write(win[i])
		b.Write(rights[i])
		b.Write(bytes.Repeat([]byte{filler}, right-len(rights[i])))
		rows[i] = b.String()
	}
	return rows, left, right
}
