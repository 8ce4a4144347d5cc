package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultConfigIsValid(t *testing.T) {
	cfg := Default()
	require.NoError(t, cfg.Validate())
}

func TestValidateRejectsBadFieldOrder(t *testing.T) {
	cfg := Default()
	cfg.Q = 5
	require.Error(t, cfg.Validate())
}

func TestValidateRejectsLowNMax(t *testing.T) {
	cfg := Default()
	cfg.D = 6
	cfg.NMax = 2
	require.Error(t, cfg.Validate())
}

func TestLoadOverrideMergesFields(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "override.yaml")
	require.NoError(t, os.WriteFile(path, []byte("degree: 4\nn_max: 3\n"), 0o644))

	merged, err := LoadOverride(path, Default())
	require.NoError(t, err)
	assert.Equal(t, 4, merged.D)
	assert.Equal(t, 3, merged.NMax)
	assert.Equal(t, Default().Q, merged.Q)
}

func TestLoadOverrideMissingFileIsNotError(t *testing.T) {
	merged, err := LoadOverride(filepath.Join(t.TempDir(), "missing.yaml"), Default())
	require.NoError(t, err)
	assert.Equal(t, Default(), merged)
}
