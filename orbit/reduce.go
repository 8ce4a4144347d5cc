package orbit

import (
	"errors"
	"fmt"

	"github.com/bits-and-blooms/bitset"

	"github.com/Chrisvossetje/smooth-polynomial-counter/monomial"
)

// ErrInvariant is returned when an orbit's observed size cannot be
// reconciled with |PGL_3(F_q)|, a fatal algorithmic invariant violation
// per spec.md §4.3's failure semantics.
var ErrInvariant = errors.New("orbit: size does not divide |PGL_3(F_q)|")

// ErrTooLarge is returned when the coefficient-vector space exceeds
// MaxCodeBits and an in-memory sweep cannot be attempted; callers
// should fall back to ioformat.ReadOrbitList against a precomputed
// orbit list instead, per spec.md §9's packed-bitset design note.
var ErrTooLarge = errors.New("orbit: coefficient space too large for an in-memory sweep")

// Record is one emitted PGL_3(F_q) orbit: its canonical representative
// and the orbit's size.
type Record struct {
	Representative monomial.Coeffs
	Size           uint64
}

// Reduce sweeps the q^M - 1 nonzero coefficient vectors in basis order
// and emits one Record per PGL_3(F_q) orbit, per spec.md §4.3.
func Reduce(basis []monomial.Term, q int, table ActionTable) ([]Record, error) {
	m := len(basis)
	bpc := bitsPerCoeffQ(q)
	totalBits := m * bpc
	if totalBits > MaxCodeBits {
		return nil, fmt.Errorf("%w: M=%d q=%d needs %d bits (max %d)", ErrTooLarge, m, q, totalBits, MaxCodeBits)
	}

	size := uint64(1) << uint(totalBits)
	visited := bitset.New(uint(size))
	visited.Set(0)

	groupSize := uint64(len(table.Rows))

	var records []Record
	for p := uint64(1); p < size; p++ {
		if hasForbiddenLane(p, q, m) {
			continue
		}
		if visited.Test(uint(p)) {
			continue
		}
		visited.Set(uint(p))
		count := uint64(1)
		rep := p

		for _, row := range table.Rows {
			pp := applyMatrixAction(p, row, q)
			if visited.Test(uint(pp)) {
				continue
			}
			visited.Set(uint(pp))
			count++
			if canonicallySmaller(pp, rep, q) {
				rep = pp
			}
		}

		if groupSize > 0 && groupSize%count != 0 {
			return nil, fmt.Errorf("%w: orbit of size %d, |PGL_3(F_%d)|=%d", ErrInvariant, count, q, groupSize)
		}

		records = append(records, Record{
			Representative: unpackCoeffs(rep, q, m),
			Size:           count,
		})
	}
	return records, nil
}
