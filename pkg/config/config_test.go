package config

import (
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfig_Defaults(t *testing.T) {
	for _, key := range []string{
		"EMOJI_DICT_FILE", "EMOJI_INPUT_DIR", "EMOJI_OUTPUT_DIR", "EMOJI_DATA_DIR",
		"EMOJI_DB_FILE_NAME", "EMOJI_DEBOUNCE", "EMOJI_T2S",
	} {
		t.Setenv(key, "")
	}
	cfg, err := LoadConfig()
	require.NoError(t, err)
	assert.Equal(t, "", cfg.DictFile)
	assert.Equal(t, inputDir, cfg.InputDir)
	assert.Equal(t, outputDir, cfg.OutputDir)
	assert.Equal(t, filepath.Join(dataDir, dbFileName), cfg.DBPath)
	assert.Equal(t, debounce, cfg.Debounce)
	assert.False(t, cfg.T2S)
}

func TestLoadConfig_Env(t *testing.T) {
	dir := t.TempDir()
	t.Setenv("EMOJI_DICT_FILE", "dict.yaml")
	t.Setenv("EMOJI_INPUT_DIR", filepath.Join(dir, "in"))
	t.Setenv("EMOJI_OUTPUT_DIR", filepath.Join(dir, "out"))
	t.Setenv("EMOJI_DATA_DIR", filepath.Join(dir, "data"))
	t.Setenv("EMOJI_DB_FILE_NAME", "x.db")
	t.Setenv("EMOJI_DEBOUNCE", "150ms")
	t.Setenv("EMOJI_T2S", "true")

	cfg, err := LoadConfig()
	require.NoError(t, err)
	assert.Equal(t, "dict.yaml", cfg.DictFile)
	assert.Equal(t, filepath.Join(dir, "data", "x.db"), cfg.DBPath)
	assert.Equal(t, 150*time.Millisecond, cfg.Debounce)
	assert.True(t, cfg.T2S)

	require.NoError(t, cfg.EnsureDirs())
	assert.DirExists(t, cfg.InputDir)
	assert.DirExists(t, cfg.OutputDir)
	assert.DirExists(t, cfg.DataDir)
}

func TestParseOrDefault(t *testing.T) {
	assert.Equal(t, time.Second, parseDurationOrDefault("bogus", time.Second))
	assert.Equal(t, time.Minute, parseDurationOrDefault("1m", time.Second))
	assert.True(t, parseBoolOrDefault("bogus", true))
	assert.False(t, parseBoolOrDefault("0", true))
}
