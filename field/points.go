package field

// pointPhase tracks which of the three canonical charts the iterator
// is currently walking, mirroring ProjectivePointPhase in
// field_extensions.rs.
type pointPhase int

const (
	phaseStart pointPhase = iota
	phaseZNull
	phaseZOne
	phaseFinished
)

// PointIter walks every canonical representative of P^2(F_{q^n}) in
// the fixed order spec.md §3 requires: (1,0,0); then (α,1,0) for every
// α; then (α,β,1) for every α,β. It is a streaming iterator rather
// than a materialized slice because the point count
// (q^{2n}+q^n+1) can be large at this system's bigger configurations.
type PointIter struct {
	f     *Field
	phase pointPhase
	x, y  Elem
}

// IterPoints starts a fresh projective-point walk over f.
func (f *Field) IterPoints() *PointIter {
	return &PointIter{f: f, phase: phaseStart}
}

// Next returns the next point (x, y, z) and true, or three zero
// elements and false once every point has been produced.
func (it *PointIter) Next() (x, y, z Elem, ok bool) {
	f := it.f
	switch it.phase {
	case phaseStart:
		it.phase = phaseZNull
		return f.One(), f.Zero(), f.Zero(), true

	case phaseZNull:
		point := [3]Elem{it.x, f.One(), f.Zero()}
		if next, more := f.Next(it.x); more {
			it.x = next
		} else {
			it.phase = phaseZOne
			it.x = f.Zero()
		}
		return point[0], point[1], point[2], true

	case phaseZOne:
		point := [3]Elem{it.x, it.y, f.One()}
		if next, more := f.Next(it.x); more {
			it.x = next
		} else {
			it.x = f.Zero()
			if next, more := f.Next(it.y); more {
				it.y = next
			} else {
				it.phase = phaseFinished
			}
		}
		return point[0], point[1], point[2], true

	default:
		return 0, 0, 0, false
	}
}

// PointCount returns the total number of projective points over F_{q^n}:
// (q^{3n} - 1) / (q^n - 1) = q^{2n} + q^n + 1.
func (f *Field) PointCount() uint64 {
	qn := intPow(f.Q, f.N)
	return uint64(qn)*uint64(qn) + uint64(qn) + 1
}
