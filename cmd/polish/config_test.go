package main

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/jpschroeder/polish"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseConfig(t *testing.T) {
	cfg, err := ParseConfig(strings.NewReader(`
prompt: "calc> "
history_file: /tmp/polish_history
color: false
cache_size: 16
variables:
  rate: 0.25
  base: 100
aliases:
  root: sqrt
  choose: if
`))
	require.NoError(t, err)
	assert.Equal(t, "calc> ", cfg.Prompt)
	assert.Equal(t, "/tmp/polish_history", cfg.HistoryFile)
	assert.False(t, *cfg.Color)
	assert.Equal(t, 16, *cfg.CacheSize)
	assert.Equal(t, map[string]float64{"rate": 0.25, "base": 100}, cfg.Variables)
	assert.Equal(t, map[string]string{"root": "sqrt", "choose": "if"}, cfg.Aliases)
}

func TestParseConfigDefaults(t *testing.T) {
	cfg, err := ParseConfig(strings.NewReader(""))
	require.NoError(t, err)
	assert.Equal(t, DefaultConfig(), cfg)

	cfg, err = ParseConfig(strings.NewReader("variables:\n  x: 1\n"))
	require.NoError(t, err)
	assert.Equal(t, defaultPrompt, cfg.Prompt)
	assert.True(t, *cfg.Color)
	assert.Equal(t, polish.DefaultCacheSize, *cfg.CacheSize)
}

func TestParseConfigErrors(t *testing.T) {
	for _, input := range []string{
		"unknown_field: 1\n",
		"variables:\n  x: abc\n",
		"variables:\n  2x: 1\n",
		"variables:\n  set: 1\n",
		"aliases:\n  root: cbrt\n",
		"aliases:\n  \"a b\": sqrt\n",
		"cache_size: -1\n",
		"prompt: [\n",
	} {
		_, err := ParseConfig(strings.NewReader(input))
		assert.Error(t, err, "Input: %q", input)
	}
}

func TestLoadConfig(t *testing.T) {
	cfg, err := LoadConfig("")
	require.NoError(t, err)
	assert.Equal(t, DefaultConfig(), cfg)

	path := filepath.Join(t.TempDir(), "polish.yaml")
	require.NoError(t, os.WriteFile(path, []byte("prompt: \">> \"\n"), 0o644))
	cfg, err = LoadConfig(path)
	require.NoError(t, err)
	assert.Equal(t, ">> ", cfg.Prompt)

	_, err = LoadConfig(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Error(t, err)
}

func TestConfigApply(t *testing.T) {
	cfg, err := ParseConfig(strings.NewReader("variables:\n  x: 9\naliases:\n  root: sqrt\n"))
	require.NoError(t, err)

	env := polish.NewEnvironment()
	cfg.Apply(env)
	val, err := polish.Run("(root x)", env)
	require.NoError(t, err)
	assert.Equal(t, 3.0, val)
}
