// Package monomial builds the ordered monomial basis B_D of degree-D
// homogeneous ternary forms, the three derivative bases, and the
// change-of-variables action of a 3x3 matrix on a basis element.
// Ported from original_source/src/polynomials.rs's Term/Polynomial
// helpers, generalized from the prototype's hardcoded DEGREE=5, q=2
// path to arbitrary degree D and field order q in {2, 3}.
package monomial

import "math/big"

// Term is k * x^A y^B z^C, k taken mod q. The zero term has every
// field at its zero value.
type Term struct {
	A, B, C int
	K       int
}

// Zero is the unique zero term.
var Zero = Term{}

// Basis returns the M = (D+2)(D+1)/2 monomials of total degree D, each
// with coefficient 1, in the fixed lexicographic order on (A, B) with
// A outer and B inner (C is determined as D-A-B).
func Basis(d int) []Term {
	basis := make([]Term, 0, Size(d))
	for a := 0; a <= d; a++ {
		for b := 0; b <= d-a; b++ {
			c := d - a - b
			basis = append(basis, Term{A: a, B: b, C: c, K: 1})
		}
	}
	return basis
}

// Size returns M = (D+2)(D+1)/2, the cardinality of Basis(d).
func Size(d int) int {
	return (d + 2) * (d + 1) / 2
}

// DerivativeBasis returns the three bases D_x, D_y, D_z: for entry j,
// Dx[j] is the formal x-derivative of basis[j], reduced mod q (zero
// term if the x-exponent is already zero), and analogously for y, z.
func DerivativeBasis(basis []Term, q int) (dx, dy, dz []Term) {
	dx = make([]Term, len(basis))
	dy = make([]Term, len(basis))
	dz = make([]Term, len(basis))
	for i, t := range basis {
		dx[i] = derivativeX(t, q)
		dy[i] = derivativeY(t, q)
		dz[i] = derivativeZ(t, q)
	}
	return dx, dy, dz
}

func derivativeX(t Term, q int) Term {
	if t.A == 0 {
		return Zero
	}
	return Term{A: t.A - 1, B: t.B, C: t.C, K: (t.K * t.A) % q}
}

func derivativeY(t Term, q int) Term {
	if t.B == 0 {
		return Zero
	}
	return Term{A: t.A, B: t.B - 1, C: t.C, K: (t.K * t.B) % q}
}

func derivativeZ(t Term, q int) Term {
	if t.C == 0 {
		return Zero
	}
	return Term{A: t.A, B: t.B, C: t.C - 1, K: (t.K * t.C) % q}
}

// BinomialModQ returns the multinomial coefficient m!/(k1! k2! k3!) mod
// q, computed with exact integer factorials via math/big since m can
// exceed what a machine word safely holds once k1!k2!k3! is taken as a
// product of factorials of up to m ~ 10.
func BinomialModQ(m, k1, k2, k3, q int) int {
	num := factorialBig(m)
	den := new(big.Int).Mul(factorialBig(k1), factorialBig(k2))
	den.Mul(den, factorialBig(k3))
	coeff := new(big.Int).Div(num, den)
	mod := new(big.Int).Mod(coeff, big.NewInt(int64(q)))
	return int(mod.Int64())
}

func factorialBig(n int) *big.Int {
	res := big.NewInt(1)
	for i := 2; i <= n; i++ {
		res.Mul(res, big.NewInt(int64(i)))
	}
	return res
}

// Index returns a lookup from (A, B, C) exponent triples to their
// position in basis, for use by Transform.
func Index(basis []Term) map[[3]int]int {
	idx := make(map[[3]int]int, len(basis))
	for i, t := range basis {
		idx[[3]int{t.A, t.B, t.C}] = i
	}
	return idx
}
