package ui

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseFormat(t *testing.T) {
	tests := []struct {
		input    string
		expected Format
		wantErr  bool
	}{
		{"", FormatTable, false},
		{"table", FormatTable, false},
		{"YAML", FormatYAML, false},
		{"yml", FormatYAML, false},
		{"json", FormatJSON, false},
		{"toml", FormatTOML, false},
		{"xml", FormatTable, true},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := ParseFormat(tt.input)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.expected, got)
		})
	}
}

func TestParseColorMode(t *testing.T) {
	mode, err := ParseColorMode("Always")
	require.NoError(t, err)
	assert.Equal(t, ColorAlways, mode)

	mode, err = ParseColorMode("")
	require.NoError(t, err)
	assert.Equal(t, ColorAuto, mode)

	_, err = ParseColorMode("sometimes")
	assert.Error(t, err)
}

func TestUseColor(t *testing.T) {
	var buf bytes.Buffer

	assert.True(t, UseColor(ColorAlways, &buf))
	assert.False(t, UseColor(ColorNever, &buf))
	assert.False(t, UseColor(ColorAuto, &buf), "non-file writers are never a terminal")

	t.Setenv("NO_COLOR", "1")
	assert.True(t, UseColor(ColorAlways, &buf), "explicit always wins over NO_COLOR")
}
