package config

import (
	"flag"
	"io"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), DefaultConfigFileName)
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

func testFlags(t *testing.T, args ...string) *Flags {
	t.Helper()
	fs := flag.NewFlagSet("composer", flag.ContinueOnError)
	fs.SetOutput(io.Discard)
	f := NewFlags(fs)
	_, err := f.Parse(args)
	require.NoError(t, err)
	return f
}

func TestLoadDefaultsWhenFileMissing(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "nope.toml"), nil)
	require.NoError(t, err)
	assert.Equal(t, NewDefaultConfig(), cfg)
}

func TestLoadFromFile(t *testing.T) {
	path := writeConfig(t, `
[editor]
tab_width = 2
system_clipboard = false
max_history = 10

[logger]
log_level = "debug"
disabled_tags = ["intent"]
`)
	cfg, err := Load(path, nil)
	require.NoError(t, err)

	assert.Equal(t, 2, cfg.Editor.TabWidth)
	assert.False(t, cfg.Editor.SystemClipboard)
	assert.Equal(t, 10, cfg.Editor.MaxHistory)
	assert.Equal(t, DefaultScrollOff, cfg.Editor.ScrollOff, "absent keys keep defaults")
	assert.Equal(t, "debug", cfg.Logger.LogLevel)
	assert.Equal(t, []string{"intent"}, cfg.Logger.DisabledTags)
}

func TestLoadInvalidValuesReset(t *testing.T) {
	path := writeConfig(t, `
[editor]
tab_width = -1
max_history = 0
`)
	cfg, err := Load(path, nil)
	require.NoError(t, err)
	assert.Equal(t, DefaultTabWidth, cfg.Editor.TabWidth)
	assert.Equal(t, DefaultMaxHistory, cfg.Editor.MaxHistory)
}

func TestLoadParseError(t *testing.T) {
	path := writeConfig(t, "[editor\ntab_width = ")
	cfg, err := Load(path, nil)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to parse config file")
	assert.Equal(t, DefaultTabWidth, cfg.Editor.TabWidth)
}

func TestFlagOverrides(t *testing.T) {
	path := writeConfig(t, "[editor]\ntab_width = 8\n")
	flags := testFlags(t, "-tabwidth", "3", "-log-tags", "text, intent,", "-logfile", "-", "draft.txt")

	cfg, err := Load(path, flags)
	require.NoError(t, err)
	assert.Equal(t, 3, cfg.Editor.TabWidth)
	assert.Equal(t, []string{"text", "intent"}, cfg.Logger.EnabledTags)
	assert.Equal(t, "-", cfg.Logger.LogFilePath)
	assert.True(t, cfg.Editor.SystemClipboard, "unset flags leave config untouched")
}

func TestFlagOverridesIgnoreInvalid(t *testing.T) {
	flags := testFlags(t, "-tabwidth", "0", "-scrolloff", "-5")
	cfg, err := Load(filepath.Join(t.TempDir(), "none.toml"), flags)
	require.NoError(t, err)
	assert.Equal(t, DefaultTabWidth, cfg.Editor.TabWidth)
	assert.Equal(t, DefaultScrollOff, cfg.Editor.ScrollOff)
}

func TestSplitCommaList(t *testing.T) {
	assert.Nil(t, splitCommaList(""))
	assert.Nil(t, splitCommaList(" , "))
	assert.Equal(t, []string{"a", "b"}, splitCommaList("a, b"))
}
