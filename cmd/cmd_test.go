package cmd

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func run(t *testing.T, stdin string, args ...string) (string, error) {
	t.Helper()
	var out bytes.Buffer
	RootCmd.SetOut(&out)
	RootCmd.SetErr(&out)
	RootCmd.SetIn(strings.NewReader(stdin))
	RootCmd.SetArgs(args)
	err := RootCmd.Execute()
	return out.String(), err
}

func tempConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.toml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0644))
	return path
}

func TestValidateCommand(t *testing.T) {
	path := tempConfig(t, "[display]\ncolor = \"never\"\n")
	out, err := run(t, "", "validate", path)
	require.NoError(t, err)
	assert.Contains(t, out, "is valid")

	path = tempConfig(t, "[display]\ncolor = \"loud\"\n")
	out, err = run(t, "", "validate", path)
	assert.Error(t, err)
	assert.Contains(t, out, "1 validation errors")
}

func TestDeckPrintCommand(t *testing.T) {
	path := tempConfig(t, "[display]\ncolor = \"never\"\nunicode = \"never\"\n")
	out, err := run(t, "", "deck", "print", "--config", path, "--seed", "7")
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(out, "  AS  2S"))
	assert.Contains(t, out, "Shuffled")

	again, err := run(t, "", "deck", "print", "--config", path, "--seed", "7")
	require.NoError(t, err)
	assert.Equal(t, out, again, "same seed shuffles the same way")
}

func TestConfigInitCreatesFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "config.toml")
	out, err := run(t, "", "config", "init", "--config", path)
	require.NoError(t, err)
	assert.Contains(t, out, path)
	assert.FileExists(t, path)
}

func TestPlayCommand_DeclineFirstHand(t *testing.T) {
	path := tempConfig(t, "[display]\ncolor = \"never\"\nunicode = \"never\"\n")
	out, err := run(t, "n\n", "play", "--config", path, "--seed", "1")
	require.NoError(t, err)
	assert.Contains(t, out, "BLACKJACK")
	assert.Contains(t, out, "Goodbye!")
}
