package orbit

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Chrisvossetje/smooth-polynomial-counter/monomial"
)

func TestGeneratePGL3F2Size(t *testing.T) {
	matrices := GeneratePGL3(2)
	// |GL_3(F_2)| = |PGL_3(F_2)| = 168 (F_2 has no nontrivial scalars)
	assert.Equal(t, 168, len(matrices))
}

func TestGeneratePGL3F3Size(t *testing.T) {
	matrices := GeneratePGL3(3)
	// |GL_3(F_3)| = 11232, |PGL_3(F_3)| = 11232 / (3-1) = 5616
	assert.Equal(t, 11232, len(matrices))
}

func TestReduceOrbitSizesSumToFullSpace(t *testing.T) {
	for _, q := range []int{2, 3} {
		d := 1
		basis := monomial.Basis(d)
		matrices := GeneratePGL3(q)
		table := BuildActionTable(basis, matrices, q)

		records, err := Reduce(basis, q, table)
		require.NoError(t, err, "q=%d", q)

		m := len(basis)
		var total uint64
		for _, r := range records {
			total += r.Size
		}
		expected := uint64(1)
		for i := 0; i < m; i++ {
			expected *= uint64(q)
		}
		expected--
		assert.Equal(t, expected, total, "q=%d", q)
	}
}

func TestReduceSkipsForbiddenTernaryLanes(t *testing.T) {
	d := 1
	q := 3
	basis := monomial.Basis(d)
	matrices := GeneratePGL3(q)
	table := BuildActionTable(basis, matrices, q)

	records, err := Reduce(basis, q, table)
	require.NoError(t, err)

	for _, r := range records {
		for _, c := range r.Representative {
			assert.True(t, c == 0 || c == 1 || c == 2, "coefficient %d outside F_3", c)
		}
	}
}

func TestReduceTooLargeReturnsErrTooLarge(t *testing.T) {
	d := 7
	q := 3
	basis := monomial.Basis(d)
	_, err := Reduce(basis, q, ActionTable{Rows: nil, Q: q, M: len(basis)})
	require.ErrorIs(t, err, ErrTooLarge)
}
