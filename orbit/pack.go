package orbit

import (
	"math/bits"

	"github.com/Chrisvossetje/smooth-polynomial-counter/field"
	"github.com/Chrisvossetje/smooth-polynomial-counter/monomial"
)

// MaxCodeBits bounds the packed coefficient-vector width for which the
// sweep allocates its 2^bits-entry visited bitset: 36 bits admits every
// degree up to 7 for q=2 and up to 4 for q=3. Beyond it (q=3, D>=5 per
// spec.md §9) an in-memory sweep is not attempted; the supported path
// is reading a precomputed orbit list via ioformat instead.
const MaxCodeBits = 36

func bitsPerCoeffQ(q int) int {
	if q == 2 {
		return 1
	}
	return 2
}

// packCoeffs packs an unpacked coefficient vector into the sweep's
// integer code: one bit per coefficient for q=2, two bits (a base-3
// lane) per coefficient for q=3 — the same packing spec.md §3
// describes for a Polynomial.
func packCoeffs(c monomial.Coeffs, q int) uint64 {
	bpc := bitsPerCoeffQ(q)
	var code uint64
	for j, v := range c {
		code |= uint64(v) << uint(j*bpc)
	}
	return code
}

// hasForbiddenLane reports whether code holds, in any of its first m
// coefficient lanes, the two-bit encoding 0b11 that spec.md §3 says a
// q=3 coefficient field never uses (q=3 packs 0, 1, 2 into two bits,
// leaving the fourth encoding unused). q=2 codes are single bits and
// can never hit this.
func hasForbiddenLane(code uint64, q, m int) bool {
	if q != 3 {
		return false
	}
	for j := 0; j < m; j++ {
		if (code>>uint(2*j))&0b11 == 0b11 {
			return true
		}
	}
	return false
}

// unpackCoeffs reverses packCoeffs for a vector of length m.
func unpackCoeffs(code uint64, q, m int) monomial.Coeffs {
	bpc := bitsPerCoeffQ(q)
	mask := uint64(1)<<uint(bpc) - 1
	out := make(monomial.Coeffs, m)
	for j := 0; j < m; j++ {
		out[j] = int((code >> uint(j*bpc)) & mask)
	}
	return out
}

// applyMatrixAction computes the code of apply(m, P) for polynomial
// code p, accumulating c_j * A[m][j] over basis indices j where p has
// a nonzero coefficient, per spec.md §4.3's algorithm.
func applyMatrixAction(p uint64, row []uint64, q int) uint64 {
	bpc := bitsPerCoeffQ(q)
	mask := uint64(1)<<uint(bpc) - 1
	var acc uint64
	for j, contribution := range row {
		coeff := (p >> uint(j*bpc)) & mask
		if coeff == 0 {
			continue
		}
		if q == 2 {
			acc ^= contribution
			continue
		}
		for k := uint64(0); k < coeff; k++ {
			acc = field.AddTernaryLanes(acc, contribution)
		}
	}
	return acc
}

// canonicallySmaller implements spec.md §4.3's tie-break: for q=2,
// fewer set bits then smaller integer value; for q=3, fewer nonzero
// coefficients then smaller integer value.
func canonicallySmaller(a, b uint64, q int) bool {
	wa, wb := weight(a, q), weight(b, q)
	if wa != wb {
		return wa < wb
	}
	return a < b
}

// weight counts the number of nonzero coefficient lanes in code.
func weight(code uint64, q int) int {
	if q == 2 {
		return bits.OnesCount64(code)
	}
	// a lane is nonzero iff either of its two bits is set
	lo := code & 0x5555555555555555
	hi := (code >> 1) & 0x5555555555555555
	nonzero := lo | hi
	return bits.OnesCount64(nonzero)
}
