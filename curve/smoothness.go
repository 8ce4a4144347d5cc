package curve

import (
	"github.com/Chrisvossetje/smooth-polynomial-counter/field"
	"github.com/Chrisvossetje/smooth-polynomial-counter/monomial"
)

// reduceRow computes Σ_{j: c_j != 0} c_j * row[j] in F_{q^n}, per
// spec.md §4.5 step 1.
func reduceRow(coeffs monomial.Coeffs, row []field.Elem, f *field.Field) field.Elem {
	res := f.Zero()
	for j, c := range coeffs {
		if c == 0 {
			continue
		}
		v := row[j]
		for k := 0; k < c; k++ {
			res = f.Add(res, v)
		}
	}
	return res
}

// HasSingularity runs spec.md §4.5's per-(R, n) algorithm: walk every
// canonical projective point, count the zeros of F, and return
// (true, 0) as soon as a point makes F and all three partials vanish
// together. Returns (false, points) if the curve is nonsingular at
// this level, with points the F_{q^n}-rational point count.
func HasSingularity(tables Tables, coeffs monomial.Coeffs, f *field.Field) (singular bool, points uint64) {
	for p := range tables.Normal {
		v := reduceRow(coeffs, tables.Normal[p], f)
		if !f.IsZero(v) {
			continue
		}
		points++
		vx := reduceRow(coeffs, tables.PartX[p], f)
		if !f.IsZero(vx) {
			continue
		}
		vy := reduceRow(coeffs, tables.PartY[p], f)
		if !f.IsZero(vy) {
			continue
		}
		vz := reduceRow(coeffs, tables.PartZ[p], f)
		if f.IsZero(vz) {
			return true, 0
		}
	}
	return false, points
}
