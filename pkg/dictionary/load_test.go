package dictionary

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParse_YAMLKeepsOrder(t *testing.T) {
	entries, err := Parse([]byte("zebre: 🦓\nhello: 👋\nchat: 🐈\n"))
	require.NoError(t, err)
	assert.Equal(t, []Entry{{"zebre", "🦓"}, {"hello", "👋"}, {"chat", "🐈"}}, entries)
}

func TestParse_JSON(t *testing.T) {
	entries, err := Parse([]byte(`{"b": "2", "a": "1"}`))
	require.NoError(t, err)
	assert.Equal(t, []Entry{{"b", "2"}, {"a", "1"}}, entries)
}

func TestParse_Empty(t *testing.T) {
	entries, err := Parse(nil)
	require.NoError(t, err)
	assert.Empty(t, entries)
}

func TestParse_Invalid(t *testing.T) {
	for name, data := range map[string]string{
		"number symbol": "chat: 12\n",
		"null symbol":   "chat:\n",
		"nested":        "chat:\n  a: b\n",
		"syntax":        "chat: [\n",
	} {
		t.Run(name, func(t *testing.T) {
			_, err := Parse([]byte(data))
			require.Error(t, err)
			assert.True(t, errors.Is(err, ErrInvalidDictionary))
		})
	}
}

func TestLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "dict.yaml")
	require.NoError(t, os.WriteFile(path, []byte("\xEF\xBB\xBFhello: 👋\n"), 0644))

	entries, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, []Entry{{"hello", "👋"}}, entries)

	_, err = Load(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Error(t, err)
}
