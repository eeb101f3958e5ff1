package engine

// Step is one traced move: Dir was taken to arrive at At.
type Step struct {
	Dir Direction
	At  Coord
}

// Path lists steps in forward alignment order.
type Path []Step

func (p Path) reverse() {
	for i, j := 0, len(p)-1; i < j; i, j = i+1, j-1 {
		p[i], p[j] = p[j], p[i]
	}
}

// Start is the coordinate the path leaves from (the origin for a global
// path, the restart cell for a local one). It is nil for an empty path.
func (p Path) Start() Coord {
	if len(p) == 0 {
		return nil
	}
	return p[0].At.Add(p[0].Dir)
}

// GlobalPath walks parents from the corner back to the origin. The origin is
// not part of the path.
func GlobalPath(t *Table) (Path, error) {
	var path Path
	cur := t.Corner()
	for !cur.IsOrigin() {
		cell, ok := t.Get(cur)
		if !ok {
			return nil, corruptf("global traceback reached unset cell %v", cur)
		}
		if cell.Parent.Kind != FromStep || cell.Parent.Dir == 0 {
			return nil, corruptf("global traceback found %s parent at %v", cell.Parent.Kind, cur)
		}
		path = append(path, Step{Dir: cell.Parent.Dir, At: cur})
		cur = cur.Add(cell.Parent.Dir)
	}
	path.reverse()
	return path, nil
}

// LocalPath walks parents from `from` until a zero-score cell, which is
// excluded. A zero-score start yields an empty path.
func LocalPath(t *Table, from Coord) (Path, error) {
	var path Path
	cur := from.Clone()
	for {
		cell, ok := t.Get(cur)
		if !ok {
			return nil, corruptf("local traceback reached unset cell %v", cur)
		}
		if cell.Score == 0 {
			break
		}
		if cell.Parent.Kind != FromStep || cell.Parent.Dir == 0 {
			return nil, corruptf("local traceback found %s parent at %v with score %g", cell.Parent.Kind, cur, cell.Score)
		}
		path = append(path, Step{Dir: cell.Parent.Dir, At: cur})
		cur = cur.Add(cell.Parent.Dir)
	}
	path.reverse()
	return path, nil
}
