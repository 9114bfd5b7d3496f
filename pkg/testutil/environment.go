package testutil

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

// TestEnvironment is an isolated set of XDG directories
type TestEnvironment struct {
	ConfigHome string
	StateHome  string

	t *testing.T
}

// NewTestEnvironment points XDG_CONFIG_HOME and XDG_STATE_HOME at fresh temp
// directories, clears HOOKS_* variables and disables color. Everything is
// restored when the test ends.
func NewTestEnvironment(t *testing.T) *TestEnvironment {
	t.Helper()

	tempDir := t.TempDir()
	env := &TestEnvironment{
		ConfigHome: filepath.Join(tempDir, "config"),
		StateHome:  filepath.Join(tempDir, "state"),
		t:          t,
	}

	t.Setenv("XDG_CONFIG_HOME", env.ConfigHome)
	t.Setenv("XDG_STATE_HOME", env.StateHome)
	t.Setenv("NO_COLOR", "1")
	for _, kv := range os.Environ() {
		if name, _, ok := strings.Cut(kv, "="); ok && strings.HasPrefix(name, "HOOKS_") {
			t.Setenv(name, "")
			_ = os.Unsetenv(name)
		}
	}

	return env
}

// ConfigPath returns the default config file location inside ConfigHome
func (env *TestEnvironment) ConfigPath() string {
	return filepath.Join(env.ConfigHome, "hooks", "config.toml")
}

// WriteConfig writes content to the default config file location
func (env *TestEnvironment) WriteConfig(content string) string {
	env.t.Helper()
	path := env.ConfigPath()
	WriteFile(env.t, path, content)
	return path
}

// WriteFile creates path and its parent directories
func WriteFile(t *testing.T, path, content string) {
	t.Helper()
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		t.Fatalf("Failed to create directory for %s: %v", path, err)
	}
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("Failed to write %s: %v", path, err)
	}
}
