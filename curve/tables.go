// Package curve builds the per-extension-level evaluation tables and
// runs the smoothness / point-count pass, grounded on
// original_source/src/polynomials.rs's Polynomial::evaluate and
// Polynomial::has_singularity, generalized to the canonical point
// enumeration spec.md §3 defines (field.IterPoints) rather than the
// prototype's redundant raw-address loop, and to arbitrary q in
// {2, 3} and N_max.
package curve

import (
	"github.com/Chrisvossetje/smooth-polynomial-counter/field"
	"github.com/Chrisvossetje/smooth-polynomial-counter/monomial"
)

// Tables holds, for one extension level n, the four evaluation tables
// T[S] for S in {basis, dx, dy, dz}, each a slice indexed by canonical
// projective-point order with one F_{q^n} value per basis index.
type Tables struct {
	N      int
	Normal [][]field.Elem
	PartX  [][]field.Elem
	PartY  [][]field.Elem
	PartZ  [][]field.Elem
}

// Build materializes Tables for field f, per spec.md §4.4: for each
// canonical projective point p and each basis index j, evaluates the
// j-th term of each term-list at p.
func Build(f *field.Field, basis, dx, dy, dz []monomial.Term) Tables {
	pointCount := int(f.PointCount())
	t := Tables{
		N:      f.N,
		Normal: make([][]field.Elem, 0, pointCount),
		PartX:  make([][]field.Elem, 0, pointCount),
		PartY:  make([][]field.Elem, 0, pointCount),
		PartZ:  make([][]field.Elem, 0, pointCount),
	}
	it := f.IterPoints()
	for {
		x, y, z, ok := it.Next()
		if !ok {
			break
		}
		t.Normal = append(t.Normal, evalRow(basis, x, y, z, f))
		t.PartX = append(t.PartX, evalRow(dx, x, y, z, f))
		t.PartY = append(t.PartY, evalRow(dy, x, y, z, f))
		t.PartZ = append(t.PartZ, evalRow(dz, x, y, z, f))
	}
	return t
}

func evalRow(terms []monomial.Term, x, y, z field.Elem, f *field.Field) []field.Elem {
	row := make([]field.Elem, len(terms))
	for j, term := range terms {
		row[j] = evalTerm(term, x, y, z, f)
	}
	return row
}

func evalTerm(term monomial.Term, x, y, z field.Elem, f *field.Field) field.Elem {
	if term.K == 0 {
		return f.Zero()
	}
	v := f.Pow(x, uint64(term.A))
	v = f.Mul(v, f.Pow(y, uint64(term.B)))
	v = f.Mul(v, f.Pow(z, uint64(term.C)))
	return f.Mul(v, scalar(term.K, f))
}

// scalar returns the field element obtained by adding One to itself
// k-1 times, embedding the small integer k (0 <= k < q) into F_{q^n}.
func scalar(k int, f *field.Field) field.Elem {
	e := f.Zero()
	one := f.One()
	for i := 0; i < k; i++ {
		e = f.Add(e, one)
	}
	return e
}
