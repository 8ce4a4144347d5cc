// Package orbit enumerates PGL_3(F_q) and reduces the q^M - 1 nonzero
// degree-D coefficient vectors into isomorphism-class orbits, emitting
// one canonical representative and the orbit size per class. Ported
// from original_source/src/algebraic_types.rs's Matrix/
// generate_iso_polynomials, generalized from its q=2-only brute force
// to q in {2, 3}.
package orbit

import "github.com/Chrisvossetje/smooth-polynomial-counter/monomial"

// Matrix is a 3x3 matrix over F_q, entries in row-major order.
type Matrix struct {
	Rows [3][3]int
}

// Determinant returns det(m) mod q.
func (m Matrix) Determinant(q int) int {
	a, b, c := m.Rows[0][0], m.Rows[0][1], m.Rows[0][2]
	d, e, f := m.Rows[1][0], m.Rows[1][1], m.Rows[1][2]
	g, h, i := m.Rows[2][0], m.Rows[2][1], m.Rows[2][2]
	det := a*(e*i-f*h) - b*(d*i-f*g) + c*(d*h-e*g)
	det %= q
	if det < 0 {
		det += q
	}
	return det
}

// GeneratePGL3 enumerates every 3x3 matrix over F_q with nonzero
// determinant mod q: the representatives of PGL_3(F_q) (scalar
// matrices are not separately quotiented out here, matching
// generate_pgl3_f2's own brute force, which the orbit sweep tolerates
// since repeated group elements only cost redundant, idempotent work).
func GeneratePGL3(q int) []Matrix {
	total := 1
	for i := 0; i < 9; i++ {
		total *= q
	}
	matrices := make([]Matrix, 0, total)
	for i := 0; i < total; i++ {
		var m Matrix
		v := i
		for j := 0; j < 9; j++ {
			m.Rows[j/3][j%3] = v % q
			v /= q
		}
		if m.Determinant(q) != 0 {
			matrices = append(matrices, m)
		}
	}
	return matrices
}

// ActionTable is A[m][j]: the coefficient vector the j-th basis
// monomial maps to under matrix m, packed for the sweep's hot loop
// (see pack.go).
type ActionTable struct {
	Rows [][]uint64
	Q    int
	M    int
}

// BuildActionTable precomputes the per-matrix linear action on every
// basis monomial, per spec.md §4.2/§4.3.
func BuildActionTable(basis []monomial.Term, matrices []Matrix, q int) ActionTable {
	idx := monomial.Index(basis)
	rows := make([][]uint64, len(matrices))
	for mi, m := range matrices {
		row := make([]uint64, len(basis))
		for j, term := range basis {
			coeffs := monomial.Transform(term, m.Rows, idx, q)
			row[j] = packCoeffs(coeffs, q)
		}
		rows[mi] = row
	}
	return ActionTable{Rows: rows, Q: q, M: len(basis)}
}
