package prover

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "saturn.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()
	assert.Equal(t, 2, cfg.FunctionWeight)
	assert.Equal(t, 1, cfg.VariableWeight)
	assert.Equal(t, 0, cfg.MaxIterations)
	assert.NoError(t, cfg.Validate())
}

func TestLoadConfig(t *testing.T) {
	path := writeConfig(t, `
function_weight: 3
variable_weight: 2
max_iterations: 100
`)
	cfg, err := LoadConfig(path)
	require.NoError(t, err)
	assert.Equal(t, 3, cfg.FunctionWeight)
	assert.Equal(t, 2, cfg.VariableWeight)
	assert.Equal(t, 100, cfg.MaxIterations)
}

func TestLoadConfig_AbsentKeysKeepDefaults(t *testing.T) {
	path := writeConfig(t, "max_iterations: 7\n")

	cfg, err := LoadConfig(path)
	require.NoError(t, err)
	assert.Equal(t, 2, cfg.FunctionWeight)
	assert.Equal(t, 1, cfg.VariableWeight)
	assert.Equal(t, 7, cfg.MaxIterations)
}

func TestLoadConfig_MissingFile(t *testing.T) {
	_, err := LoadConfig(filepath.Join(t.TempDir(), "nope.yaml"))
	assert.Error(t, err)
}

func TestLoadConfig_InvalidYAML(t *testing.T) {
	path := writeConfig(t, "function_weight: [oops\n")
	_, err := LoadConfig(path)
	assert.Error(t, err)
}

func TestLoadConfig_RejectsBadWeights(t *testing.T) {
	path := writeConfig(t, "function_weight: 0\n")
	_, err := LoadConfig(path)
	assert.ErrorContains(t, err, "function_weight")

	path = writeConfig(t, "variable_weight: -1\n")
	_, err = LoadConfig(path)
	assert.ErrorContains(t, err, "variable_weight")

	path = writeConfig(t, "max_iterations: -5\n")
	_, err = LoadConfig(path)
	assert.ErrorContains(t, err, "max_iterations")
}
