package alphabet

import "nmsa-core/engine"

/* -------------------------- IUPAC lookup table -------------------------- */

var iupacMask [256]byte // bit0=A bit1=C bit2=G bit3=T

func init() {
	set := func(c byte, bits byte) {
		iupacMask[c] = bits
		iupacMask[c+'a'-'A'] = bits
	}
	set('A', 1)       // 0001
	set('C', 2)       // 0010
	set('G', 4)       // 0100
	set('T', 8)       // 1000
	set('U', 8)       // RNA
	set('R', 1|4)     // A/G
	set('Y', 2|8)     // C/T
	set('S', 2|4)     // C/G
	set('W', 1|8)     // A/T
	set('K', 4|8)     // G/T
	set('M', 1|2)     // A/C
	set('B', 2|4|8)   // C/G/T
	set('D', 1|4|8)   // A/G/T
	set('H', 1|2|8)   // A/C/T
	set('V', 1|2|4)   // A/C/G
	set('N', 1|2|4|8) // any
}

// Compatible reports whether two nucleotide codes share at least one base.
// Non-nucleotide symbols are compatible only with themselves.
func Compatible(a, b byte) bool {
	if a == b {
		return true
	}
	return iupacMask[a]&iupacMask[b] != 0
}

// IUPAC scores compatible ambiguity codes as match, everything else as
// mismatch.
func IUPAC(match, mismatch float64) engine.SubstitutionFunc {
	return func(a, b byte) float64 {
		if Compatible(a, b) {
			return match
		}
		return mismatch
	}
}
