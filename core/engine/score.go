package engine

// SubstitutionFunc scores aligning symbol a against symbol b.
type SubstitutionFunc func(a, b byte) float64

// MatchMismatch scores identical symbols as match and anything else as mismatch.
func MatchMismatch(match, mismatch float64) SubstitutionFunc {
	return func(a, b byte) float64 {
		if a == b {
			return match
		}
		return mismatch
	}
}

// Scorer holds the sum-of-pairs parameters.
type Scorer struct {
	Indel  float64 // exactly one of the pair is a gap
	GapGap float64 // both of the pair are gaps
	Sub    SubstitutionFunc
}

// Candidate returns neighbor plus the cost of stepping into cur along d,
// summed over every unordered pair (i, j) of sequences:
//
//	both consumed  -> Sub(seqs[i][cur[i]], seqs[j][cur[j]])
//	one consumed   -> Indel
//	none consumed  -> GapGap
//
// seqs are sentineled: seqs[i][0] is never read.
func (s Scorer) Candidate(neighbor float64, seqs [][]byte, cur Coord, d Direction) float64 {
	score := neighbor
	n := len(cur)
	for i := 0; i < n-1; i++ {
		ci := d.Consumes(i)
		for j := i + 1; j < n; j++ {
			cj := d.Consumes(j)
			switch {
			case ci && cj:
				score += s.Sub(seqs[i][cur[i]], seqs[j][cur[j]])
			case ci || cj:
				score += s.Indel
			default:
				score += s.GapGap
			}
		}
	}
	return score
}

// StepCost is the pairwise cost of one step on its own.
func (s Scorer) StepCost(seqs [][]byte, cur Coord, d Direction) float64 {
	return s.Candidate(0, seqs, cur, d)
}
