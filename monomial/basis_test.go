package monomial

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestBasisCardinalityAndOrder(t *testing.T) {
	for d := 0; d <= 7; d++ {
		basis := Basis(d)
		assert.Equal(t, Size(d), len(basis))
		for _, term := range basis {
			assert.Equal(t, d, term.A+term.B+term.C)
			assert.Equal(t, 1, term.K)
		}
		// lexicographic on (A, B), A outer
		for i := 1; i < len(basis); i++ {
			prev, cur := basis[i-1], basis[i]
			assert.True(t, prev.A < cur.A || (prev.A == cur.A && prev.B < cur.B))
		}
	}
}

func TestDerivativeIdentity(t *testing.T) {
	basis := Basis(4)
	dx, dy, dz := DerivativeBasis(basis, 2)
	for i, term := range basis {
		if term.A == 0 {
			assert.Equal(t, Zero, dx[i])
		} else {
			assert.Equal(t, term.A-1, dx[i].A)
			assert.Equal(t, (term.A)%2, dx[i].K)
		}
		if term.B == 0 {
			assert.Equal(t, Zero, dy[i])
		}
		if term.C == 0 {
			assert.Equal(t, Zero, dz[i])
		}
	}
}

func TestBinomialModQSmallValues(t *testing.T) {
	// (x+y)^2 = x^2 + 2xy + y^2
	assert.Equal(t, 1, BinomialModQ(2, 2, 0, 0, 3))
	assert.Equal(t, 2, BinomialModQ(2, 1, 1, 0, 3))
	assert.Equal(t, 1, BinomialModQ(2, 0, 2, 0, 3))
	// mod 2: the cross term vanishes
	assert.Equal(t, 0, BinomialModQ(2, 1, 1, 0, 2))
}

func TestTransformIdentityMatrixIsNoOp(t *testing.T) {
	basis := Basis(2)
	idx := Index(basis)
	identity := [3][3]int{{1, 0, 0}, {0, 1, 0}, {0, 0, 1}}
	for i, term := range basis {
		coeffs := Transform(term, identity, idx, 2)
		for j, c := range coeffs {
			if j == i {
				assert.Equal(t, 1, c)
			} else {
				assert.Equal(t, 0, c)
			}
		}
	}
}
