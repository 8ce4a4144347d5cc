package field

import (
	"fmt"
	"sync"
)

// irredBinary is the pinned table of degree-n irreducibles over F_2,
// packed as the low-n coefficients (the degree-n leading coefficient
// is implicitly 1). Ported verbatim from field_extensions.rs's
// IRRED_PART; index 8 resolves spec.md's "differing irreducible for
// F_{2^8}" open question by pinning 0b11011.
var irredBinary = [11]uint64{
	0, 1, 0b11, 0b11, 0b11, 0b101, 0b11, 0b11, 0b11011, 0b11, 0b1001,
}

// irredTernary is the pinned table of low parts r, packed 2
// bits/coefficient, of degree-n irreducibles x^n - r over F_3, ported
// verbatim from field_extensions.rs's IRRED_POLY. It only covers n up to 6; this system needs F_{3^n} up to
// n=10 (D=7, N_max=10), so higher degrees are resolved by a Rabin
// irreducibility search, see searchIrreducible.
var irredTernary = [7]uint64{
	0b0000, 0b0001, 0b0010, 0b0110, 0b1001, 0b0110, 0b1001,
}

var (
	searchMu    sync.Mutex
	searchCache = map[[2]int]uint64{}
)

// irreducibleFor returns the packed low part r of a degree-n monic
// irreducible x^n - r over F_q (see Field).
func irreducibleFor(q, n int) (uint64, error) {
	switch q {
	case 2:
		if n < len(irredBinary) {
			return irredBinary[n], nil
		}
	case 3:
		if n < len(irredTernary) {
			return irredTernary[n], nil
		}
	default:
		return 0, fmt.Errorf("unsupported field order q=%d", q)
	}

	searchMu.Lock()
	defer searchMu.Unlock()
	key := [2]int{q, n}
	if v, ok := searchCache[key]; ok {
		return v, nil
	}
	low, err := searchIrreducible(q, n)
	if err != nil {
		return 0, err
	}
	searchCache[key] = low
	return low, nil
}

// searchIrreducible finds the packed low part r of a degree-n monic
// irreducible x^n - r over F_q by trying candidates r in increasing
// numeric order and testing each x^n - r with Rabin's irreducibility
// test. This resolves spec.md §9's "pin a single correct irreducible
// per n, verified..." design note constructively for the (q, n) pairs
// the pinned tables above don't cover.
func searchIrreducible(q, n int) (uint64, error) {
	bpc := bitsPerCoeff(q)
	limit := uint64(1) << uint(bpc*n)
	for low := uint64(0); low < limit; low++ {
		coeffs := unpackLowCoeffs(low, q, n)
		if !hasValidLanes(coeffs, q) {
			continue
		}
		// The candidate modulus is x^n - low, matching the x^n = irred
		// substitution mulBinary/mulTernary reduce with.
		full := make([]int, n+1)
		for i, c := range coeffs {
			full[i] = (q - c) % q
		}
		full[n] = 1 // monic: degree-n coefficient is 1
		if isIrreducible(full, q) {
			return low, nil
		}
	}
	return 0, fmt.Errorf("no irreducible polynomial of degree %d found over F_%d", n, q)
}

// unpackLowCoeffs splits the packed low-n coefficients of a candidate
// back into a coefficient slice, degree ascending.
func unpackLowCoeffs(low uint64, q, n int) []int {
	bpc := bitsPerCoeff(q)
	coeffs := make([]int, n)
	for i := 0; i < n; i++ {
		coeffs[i] = int((low >> uint(i*bpc)) & ((1 << uint(bpc)) - 1))
	}
	return coeffs
}

// hasValidLanes rejects the forbidden two-bit encoding 0b11 (value 3)
// that the q=3 packing never uses.
func hasValidLanes(coeffs []int, q int) bool {
	for _, c := range coeffs {
		if c >= q {
			return false
		}
	}
	return true
}
