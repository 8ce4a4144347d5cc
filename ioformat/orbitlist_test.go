package ioformat

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Chrisvossetje/smooth-polynomial-counter/monomial"
	"github.com/Chrisvossetje/smooth-polynomial-counter/orbit"
)

func TestRoundTripOrbitList(t *testing.T) {
	basis := monomial.Basis(2)
	q := 2
	matrices := orbit.GeneratePGL3(q)
	table := orbit.BuildActionTable(basis, matrices, q)
	records, err := orbit.Reduce(basis, q, table)
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, WriteOrbitList(&buf, basis, q, records))

	got, err := ReadOrbitList(&buf, basis, q)
	require.NoError(t, err)
	require.Len(t, got, len(records))
	for i := range records {
		assert.Equal(t, records[i].Size, got[i].Size)
		assert.Equal(t, records[i].Representative, got[i].Representative)
	}
}

func TestReadOrbitListRejectsConfigMismatch(t *testing.T) {
	basis := monomial.Basis(2)
	input := "# comment\n# Homogeneous Degree | Field Order\n3 | 2\n# legend\n"
	_, err := ReadOrbitList(bytes.NewBufferString(input), basis, 2)
	require.ErrorIs(t, err, ErrConfigMismatch)
}

func TestReadOrbitListRejectsMalformedLine(t *testing.T) {
	basis := monomial.Basis(1)
	input := "1 | 2\nnot-a-valid-record\n"
	_, err := ReadOrbitList(bytes.NewBufferString(input), basis, 2)
	require.ErrorIs(t, err, ErrMalformedLine)
}
