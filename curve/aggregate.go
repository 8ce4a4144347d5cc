package curve

import (
	"sync"

	"github.com/Chrisvossetje/smooth-polynomial-counter/field"
	"github.com/Chrisvossetje/smooth-polynomial-counter/monomial"
	"github.com/Chrisvossetje/smooth-polynomial-counter/orbit"
)

// Result is one smooth orbit's output record: its representative, the
// isomorphism-class size, and the F_{q^n}-rational point count at
// every extension level.
type Result struct {
	Representative monomial.Coeffs
	OrbitSize      uint64
	Points         []uint64
}

// Evaluate runs spec.md §4.5's per-representative loop: walk n = 1 to
// len(levels), stopping at the first singular level. It returns
// whether the representative is smooth through every level, the
// accumulated point-count vector (nil if singular), and the number of
// levels it survived before stopping (len(levels) if fully smooth).
func Evaluate(levels []Tables, fields []*field.Field, coeffs monomial.Coeffs) (smooth bool, points []uint64, survived int) {
	points = make([]uint64, 0, len(levels))
	for n, tables := range levels {
		singular, count := HasSingularity(tables, coeffs, fields[n])
		if singular {
			return false, nil, n
		}
		points = append(points, count)
	}
	return true, points, len(levels)
}

// Aggregator accumulates the global smooth-count histogram and the
// list of smooth orbit results, per spec.md §4.5's global aggregation
// step. It is safe for concurrent use by workpool workers.
type Aggregator struct {
	mu        sync.Mutex
	histogram []uint64
	results   []Result
}

// NewAggregator returns an Aggregator sized for nMax extension levels.
func NewAggregator(nMax int) *Aggregator {
	return &Aggregator{histogram: make([]uint64, nMax)}
}

// Add folds one representative's outcome into the histogram and, if
// smooth, into the result list.
func (a *Aggregator) Add(rec orbit.Record, smooth bool, points []uint64, survived int) {
	a.mu.Lock()
	defer a.mu.Unlock()
	for i := 0; i < survived; i++ {
		a.histogram[i] += rec.Size
	}
	if smooth {
		a.results = append(a.results, Result{
			Representative: rec.Representative,
			OrbitSize:      rec.Size,
			Points:         points,
		})
	}
}

// Histogram returns a copy of the smooth-count histogram:
// Histogram()[n-1] is the total orbit size of representatives smooth
// through F_{q^n}.
func (a *Aggregator) Histogram() []uint64 {
	a.mu.Lock()
	defer a.mu.Unlock()
	out := make([]uint64, len(a.histogram))
	copy(out, a.histogram)
	return out
}

// Results returns the accumulated smooth orbit result records. Order
// is not contractual, per spec.md §5's ordering guarantees.
func (a *Aggregator) Results() []Result {
	a.mu.Lock()
	defer a.mu.Unlock()
	out := make([]Result, len(a.results))
	copy(out, a.results)
	return out
}
