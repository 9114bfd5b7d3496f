package testutil

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewTestEnvironment(t *testing.T) {
	t.Setenv("HOOKS_OUTPUT_FORMAT", "json")

	env := NewTestEnvironment(t)

	assert.Equal(t, env.ConfigHome, os.Getenv("XDG_CONFIG_HOME"))
	assert.Equal(t, env.StateHome, os.Getenv("XDG_STATE_HOME"))
	_, set := os.LookupEnv("HOOKS_OUTPUT_FORMAT")
	assert.False(t, set)
}

func TestWriteConfig(t *testing.T) {
	env := NewTestEnvironment(t)

	path := env.WriteConfig("[output]\nformat = \"yaml\"\n")

	assert.Equal(t, filepath.Join(env.ConfigHome, "hooks", "config.toml"), path)
	content, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(content), "yaml")
}
