package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadFile_CreatesDefault(t *testing.T) {
	path := filepath.Join(t.TempDir(), "blackjack", "config.toml")

	cfg, err := LoadFile(path)
	require.NoError(t, err)
	assert.Equal(t, Default(), cfg)

	_, err = os.Stat(path)
	require.NoError(t, err)

	again, err := LoadFile(path)
	require.NoError(t, err)
	assert.Equal(t, cfg, again)
}

func TestLoadFile_DecodesAndKeepsDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	require.NoError(t, os.WriteFile(path, []byte(`
seed = 1234
show_deck = true

[display]
unicode = "never"
`), 0644))

	cfg, err := LoadFile(path)
	require.NoError(t, err)
	assert.Equal(t, uint64(1234), cfg.Seed)
	assert.True(t, cfg.ShowDeck)
	assert.True(t, cfg.Advisor)
	assert.Equal(t, ModeNever, cfg.Display.Unicode)
	assert.Equal(t, ModeAuto, cfg.Display.Color)
	assert.Equal(t, Default().Theme, cfg.Theme)
}

func TestLoadFile_EnvOverrides(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	require.NoError(t, os.WriteFile(path, []byte("seed = 5\n"), 0644))

	t.Setenv("BLACKJACK_SEED", "77")
	t.Setenv("BLACKJACK_ADVISOR", "false")
	t.Setenv("BLACKJACK_COLOR", "never")

	cfg, err := LoadFile(path)
	require.NoError(t, err)
	assert.Equal(t, uint64(77), cfg.Seed)
	assert.False(t, cfg.Advisor)
	assert.Equal(t, ModeNever, cfg.Display.Color)
}

func TestLoadFile_BadToml(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	require.NoError(t, os.WriteFile(path, []byte("seed = \"oops"), 0644))

	_, err := LoadFile(path)
	assert.ErrorContains(t, err, "error decoding config file")
}

func TestGetConfigFilePath_UsesXDG(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", "/tmp/xdg")
	assert.Equal(t, filepath.Join("/tmp/xdg", "blackjack", "config.toml"), GetConfigFilePath())
}
