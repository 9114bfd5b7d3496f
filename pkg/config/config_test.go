package config

import (
	"path/filepath"
	"testing"

	"github.com/arthur-debert/hooks/pkg/errors"
	"github.com/arthur-debert/hooks/pkg/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func isolate(t *testing.T) *testutil.TestEnvironment {
	return testutil.NewTestEnvironment(t)
}

func writeConfig(t *testing.T, path, content string) {
	testutil.WriteFile(t, path, content)
}

func TestLoadDefaults(t *testing.T) {
	isolate(t)

	cfg, err := Load("")

	require.NoError(t, err)
	assert.Equal(t, "warn", cfg.Logging.Level)
	assert.Equal(t, "table", cfg.Output.Format)
	assert.Equal(t, "auto", cfg.Output.Color)
	assert.Equal(t, 0, cfg.Output.Width)
	assert.Equal(t, "world", cfg.Greeting.Name)
}

func TestDefaultPath(t *testing.T) {
	env := isolate(t)

	assert.Equal(t, filepath.Join(env.ConfigHome, "hooks", "config.toml"), DefaultPath())
}

func TestLoadUserFile(t *testing.T) {
	env := isolate(t)
	env.WriteConfig(`
[output]
format = "yaml"
width = 72
`)

	cfg, err := Load("")

	require.NoError(t, err)
	assert.Equal(t, "yaml", cfg.Output.Format)
	assert.Equal(t, 72, cfg.Output.Width)
	assert.Equal(t, "auto", cfg.Output.Color, "untouched keys keep their default")
}

func TestLoadExplicitPath(t *testing.T) {
	isolate(t)
	path := filepath.Join(t.TempDir(), "custom.toml")
	writeConfig(t, path, `
[logging]
level = "debug"
`)

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "debug", cfg.Logging.Level)

	_, err = Load(filepath.Join(t.TempDir(), "missing.toml"))
	assert.True(t, errors.IsErrorCode(err, errors.ErrConfigLoad))
}

func TestLoadEnvOverrides(t *testing.T) {
	env := isolate(t)
	env.WriteConfig(`
[output]
format = "yaml"
`)
	t.Setenv("HOOKS_OUTPUT_FORMAT", "json")
	t.Setenv("HOOKS_OUTPUT_WIDTH", "100")
	t.Setenv("HOOKS_GREETING_NAME", "Ada")

	cfg, err := Load("")

	require.NoError(t, err)
	assert.Equal(t, "json", cfg.Output.Format)
	assert.Equal(t, 100, cfg.Output.Width)
	assert.Equal(t, "Ada", cfg.Greeting.Name)
}

func TestLoadInvalid(t *testing.T) {
	tests := []struct {
		name    string
		content string
		key     string
	}{
		{
			name:    "unknown format",
			content: "[output]\nformat = \"xml\"\n",
			key:     "output.format",
		},
		{
			name:    "negative width",
			content: "[output]\nwidth = -1\n",
			key:     "output.width",
		},
		{
			name:    "unknown level",
			content: "[logging]\nlevel = \"loud\"\n",
			key:     "logging.level",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			isolate(t)
			path := filepath.Join(t.TempDir(), "config.toml")
			writeConfig(t, path, tt.content)

			_, err := Load(path)

			require.Error(t, err)
			assert.True(t, errors.IsErrorCode(err, errors.ErrConfigInvalid))
			assert.Equal(t, tt.key, errors.GetErrorDetails(err)["key"])
		})
	}
}

func TestLoadMalformedFile(t *testing.T) {
	isolate(t)
	path := filepath.Join(t.TempDir(), "config.toml")
	writeConfig(t, path, "[output\nformat = ")

	_, err := Load(path)

	assert.True(t, errors.IsErrorCode(err, errors.ErrConfigLoad))
}

func TestDefaultContent(t *testing.T) {
	assert.Contains(t, DefaultContent(), "[output]")
}
