// Package fs implements filesystem access and default path discovery.
package fs

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/fwojciec/kittypal"
)

// Compile-time interface verification.
var _ kittypal.FileSystem = (*OS)(nil)

// OS reads and writes files through the os package.
type OS struct{}

// NewOS creates a new OS filesystem.
func NewOS() *OS {
	return &OS{}
}

// ReadFile returns the full content of the file at path.
func (o *OS) ReadFile(path string) ([]byte, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, &kittypal.Error{Kind: kittypal.KindIO, Op: "read file", Path: path, Err: err}
	}
	return data, nil
}

// WriteFile replaces the content of the file at path.
func (o *OS) WriteFile(path string, data []byte) error {
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return &kittypal.Error{Kind: kittypal.KindIO, Op: "write file", Path: path, Err: err}
	}
	return nil
}

// DefaultConfigPath locates the kitty config: $XDG_CONFIG_HOME/kitty/kitty.conf
// (falling back to ~/.config) if it exists, else ~/.kitty.conf if it exists.
// When neither exists the error names both candidates.
func DefaultConfigPath() (string, error) {
	primary := filepath.Join(configRoot(), "kitty", "kitty.conf")
	if fileExists(primary) {
		return primary, nil
	}

	fallback := filepath.Join(homeDir(), ".kitty.conf")
	if fileExists(fallback) {
		return fallback, nil
	}

	return "", &kittypal.Error{
		Kind: kittypal.KindIO,
		Op:   "locate kitty config",
		Err:  fmt.Errorf("neither %s nor %s exists", primary, fallback),
	}
}

// DefaultBackupDir returns the directory palette backups are saved under.
func DefaultBackupDir() string {
	return filepath.Join(configRoot(), "kittypal", "backups")
}

// DefaultSettingsPath returns the location of the tool's settings file.
func DefaultSettingsPath() string {
	return filepath.Join(configRoot(), "kittypal", "settings.toml")
}

// configRoot returns $XDG_CONFIG_HOME, or ~/.config when unset, or a temp
// location when no home directory is available.
func configRoot() string {
	if xdg := os.Getenv("XDG_CONFIG_HOME"); xdg != "" {
		return xdg
	}
	home := homeDir()
	if home == "" {
		return filepath.Join(os.TempDir(), ".config")
	}
	return filepath.Join(home, ".config")
}

func homeDir() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return home
}

func fileExists(path string) bool {
	info, err := os.Stat(path)
	return err == nil && !info.IsDir()
}
