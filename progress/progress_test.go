package progress

import (
	"bytes"
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStageWritesStructuredLine(t *testing.T) {
	var buf bytes.Buffer
	l := New(&buf)
	l.Stage("orbit-reduction")

	var line map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &line))
	assert.Equal(t, "orbit-reduction", line["stage"])
	assert.Equal(t, "stage started", line["message"])
}

func TestOrbitsReducedIncludesHumanizedCount(t *testing.T) {
	var buf bytes.Buffer
	l := New(&buf)
	l.OrbitsReduced(5, 1234567, 10*time.Millisecond)

	var line map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &line))
	assert.Equal(t, "1,234,567", line["polynomials_covered"])
	assert.Equal(t, float64(5), line["orbits"])
}

func TestRunCompleteIncludesOutputPath(t *testing.T) {
	var buf bytes.Buffer
	l := New(&buf)
	l.RunComplete(3, 2*time.Second, "smooth_output.txt")

	var line map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &line))
	assert.Equal(t, "smooth_output.txt", line["output"])
	assert.Equal(t, float64(3), line["smooth_orbits"])
}
