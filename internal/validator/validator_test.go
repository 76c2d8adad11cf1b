package validator

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.toml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0644))
	return path
}

func TestValidate_Valid(t *testing.T) {
	path := writeConfig(t, `
advisor = true

[display]
unicode = "always"
color = "auto"
truecolor = true

[theme]
red_suit = "#ff0000"
hit = "#ffcc00"
`)

	results, err := NewValidator(path).Validate()
	require.NoError(t, err)
	assert.Empty(t, results.Errors)
	assert.Empty(t, results.Warnings)
}

func TestValidate_Errors(t *testing.T) {
	path := writeConfig(t, `
[display]
unicode = "sometimes"
color = "never"

[theme]
stand = "green"
`)

	results, err := NewValidator(path).Validate()
	require.NoError(t, err)
	assert.Equal(t, []string{
		`display.unicode must be one of auto, always, never (got "sometimes")`,
		`theme.stand is not a hex colour: "green"`,
	}, results.Errors)
	assert.Contains(t, results.Warnings, "theme is only used when display.truecolor is enabled")
}

func TestValidate_Warnings(t *testing.T) {
	path := writeConfig(t, `
seed = 42
bet = 10

[display]
color = "never"
truecolor = true
`)

	results, err := NewValidator(path).Validate()
	require.NoError(t, err)
	assert.Empty(t, results.Errors)
	assert.Equal(t, []string{
		"unknown key: bet",
		"display.truecolor has no effect when display.color is never",
		"seed is fixed; every session deals the same cards",
	}, results.Warnings)
}

func TestValidate_MissingFile(t *testing.T) {
	_, err := NewValidator(filepath.Join(t.TempDir(), "nope.toml")).Validate()
	assert.ErrorContains(t, err, "config file not found")
}

func TestValidate_ParseError(t *testing.T) {
	path := writeConfig(t, "[display\n")
	_, err := NewValidator(path).Validate()
	assert.ErrorContains(t, err, "error parsing")
}
