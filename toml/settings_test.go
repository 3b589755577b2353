package toml_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/fwojciec/kittypal"
	"github.com/fwojciec/kittypal/toml"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoaderLoad(t *testing.T) {
	t.Parallel()

	t.Run("missing file yields zero settings", func(t *testing.T) {
		t.Parallel()

		loader := toml.NewLoader(filepath.Join(t.TempDir(), "settings.toml"))

		settings, err := loader.Load()

		require.NoError(t, err)
		assert.Equal(t, kittypal.Settings{}, settings)
	})

	t.Run("reads both keys", func(t *testing.T) {
		t.Parallel()

		path := writeSettings(t, "config_path = \"/home/u/.config/kitty/kitty.conf\"\nbackup_dir = \"/tmp/backups\"\n")

		settings, err := toml.NewLoader(path).Load()

		require.NoError(t, err)
		assert.Equal(t, "/home/u/.config/kitty/kitty.conf", settings.ConfigPath)
		assert.Equal(t, "/tmp/backups", settings.BackupDir)
	})

	t.Run("absent keys stay zero", func(t *testing.T) {
		t.Parallel()

		path := writeSettings(t, "backup_dir = \"/tmp/backups\"\n")

		settings, err := toml.NewLoader(path).Load()

		require.NoError(t, err)
		assert.Empty(t, settings.ConfigPath)
		assert.Equal(t, "/tmp/backups", settings.BackupDir)
	})

	t.Run("unknown key is a format error", func(t *testing.T) {
		t.Parallel()

		path := writeSettings(t, "config_file = \"/etc/kitty.conf\"\n")

		_, err := toml.NewLoader(path).Load()

		require.Error(t, err)
		assert.Equal(t, kittypal.KindFormat, kittypal.KindOf(err))
	})

	t.Run("unparsable file is a format error", func(t *testing.T) {
		t.Parallel()

		path := writeSettings(t, "config_path = [broken\n")

		_, err := toml.NewLoader(path).Load()

		require.Error(t, err)
		assert.Equal(t, kittypal.KindFormat, kittypal.KindOf(err))
	})
}

func writeSettings(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "settings.toml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}
