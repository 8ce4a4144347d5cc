package curve

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Chrisvossetje/smooth-polynomial-counter/field"
	"github.com/Chrisvossetje/smooth-polynomial-counter/monomial"
	"github.com/Chrisvossetje/smooth-polynomial-counter/orbit"
)

func runPipeline(t *testing.T, d, q, nMax int) ([]orbit.Record, *Aggregator) {
	t.Helper()
	basis := monomial.Basis(d)
	dx, dy, dz := monomial.DerivativeBasis(basis, q)
	matrices := orbit.GeneratePGL3(q)
	table := orbit.BuildActionTable(basis, matrices, q)
	records, err := orbit.Reduce(basis, q, table)
	require.NoError(t, err)

	levels := make([]Tables, nMax)
	fields := make([]*field.Field, nMax)
	for n := 1; n <= nMax; n++ {
		f, err := field.New(q, n)
		require.NoError(t, err)
		fields[n-1] = f
		levels[n-1] = Build(f, basis, dx, dy, dz)
	}

	agg := NewAggregator(nMax)
	for _, rec := range records {
		smooth, points, survived := Evaluate(levels, fields, rec.Representative)
		agg.Add(rec, smooth, points, survived)
	}
	return records, agg
}

func TestScenario1LinearFormsOverF2(t *testing.T) {
	_, agg := runPipeline(t, 1, 2, 1)
	results := agg.Results()
	require.Len(t, results, 1)
	assert.EqualValues(t, 7, results[0].OrbitSize)
	assert.Equal(t, []uint64{3}, results[0].Points)
}

func TestScenario2ConicsOverF2(t *testing.T) {
	_, agg := runPipeline(t, 2, 2, 1)
	results := agg.Results()
	require.Len(t, results, 1)
	assert.EqualValues(t, 28, results[0].OrbitSize)
	assert.Equal(t, []uint64{3}, results[0].Points)
}

func TestHasseWeilBoundForSmoothCurves(t *testing.T) {
	d := 2
	_, agg := runPipeline(t, d, 2, 1)
	for _, r := range agg.Results() {
		n := 1
		qn := uint64(1)
		for i := 0; i < n; i++ {
			qn *= 2
		}
		bound := uint64((d - 1) * (d - 2))
		pts := r.Points[n-1]
		var diff uint64
		if pts > qn+1 {
			diff = pts - (qn + 1)
		} else {
			diff = (qn + 1) - pts
		}
		assert.LessOrEqual(t, diff, bound)
	}
}
