package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_DefaultsAndRequiredInput(t *testing.T) {
	t.Setenv("INPUT_PATH", "commands.json")
	t.Setenv("OUTPUT_PATH", "")
	t.Setenv("LOG_LEVEL", "")

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, "commands.json", cfg.InputPath)
	assert.Equal(t, "output.json", cfg.OutputPath)
	assert.Equal(t, "info", cfg.LogLevel)
}

func TestLoad_MissingInputPathFails(t *testing.T) {
	t.Setenv("INPUT_PATH", "")

	_, err := Load()
	assert.Error(t, err)
}
