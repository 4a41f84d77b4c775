package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/traceyt-cree8/gitterm-sub000/errors"
)

func TestDefault(t *testing.T) {
	cfg := Default()
	require.NoError(t, cfg.Validate())
	assert.True(t, cfg.DarkTheme())
	assert.Equal(t, 3*time.Second, cfg.PollInterval())
	assert.Equal(t, 5000, cfg.Limits.LargeTextPreviewLines)
}

func TestLoadFromBytes(t *testing.T) {
	t.Run("partial file keeps defaults", func(t *testing.T) {
		cfg, err := LoadFromBytes([]byte("theme: light\nlimits:\n  full_text_load_bytes: 2048\n"))
		require.NoError(t, err)
		assert.False(t, cfg.DarkTheme())
		assert.Equal(t, int64(2048), cfg.Limits.FullTextLoadBytes)
		// untouched fields come from Default
		assert.Equal(t, Default().Limits.InlineWebviewBytes, cfg.Limits.InlineWebviewBytes)
		assert.Equal(t, Default().PollIntervalSeconds, cfg.PollIntervalSeconds)
	})

	t.Run("invalid yaml", func(t *testing.T) {
		_, err := LoadFromBytes([]byte("theme: [unclosed"))
		require.Error(t, err)
		assert.True(t, errors.Is(err, errors.ErrCodeConfigInvalid))
	})

	t.Run("invalid theme", func(t *testing.T) {
		_, err := LoadFromBytes([]byte("theme: solarized\n"))
		require.Error(t, err)
		assert.True(t, errors.Is(err, errors.ErrCodeConfigInvalid))
	})
}

func TestFindConfigFile(t *testing.T) {
	root := t.TempDir()
	nested := filepath.Join(root, "a", "b", "c")
	require.NoError(t, os.MkdirAll(nested, 0755))
	configPath := filepath.Join(root, ConfigFileName)
	require.NoError(t, os.WriteFile(configPath, []byte("theme: dark\n"), 0644))

	found, err := FindConfigFile(nested)
	require.NoError(t, err)
	assert.Equal(t, configPath, found)
}

func TestLoadFrom(t *testing.T) {
	t.Run("missing file yields defaults", func(t *testing.T) {
		cfg, err := LoadFrom(t.TempDir())
		require.NoError(t, err)
		assert.Equal(t, Default().Theme, cfg.Theme)
	})

	t.Run("found file wins", func(t *testing.T) {
		dir := t.TempDir()
		require.NoError(t, os.WriteFile(filepath.Join(dir, ConfigFileName), []byte("show_hidden: true\n"), 0644))
		cfg, err := LoadFrom(dir)
		require.NoError(t, err)
		assert.True(t, cfg.ShowHidden)
	})
}
