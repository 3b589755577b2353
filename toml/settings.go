package toml

import (
	"bytes"
	"errors"
	"io/fs"
	"os"

	toml "github.com/pelletier/go-toml/v2"

	"github.com/fwojciec/kittypal"
)

// Loader reads tool settings from a TOML file.
type Loader struct {
	path string
}

// NewLoader creates a Loader reading from path.
func NewLoader(path string) *Loader {
	return &Loader{path: path}
}

// Load returns the settings at the loader's path, or zero settings when no
// file exists there. Unknown keys are rejected so typos surface instead of
// being silently ignored.
func (l *Loader) Load() (kittypal.Settings, error) {
	data, err := os.ReadFile(l.path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return kittypal.Settings{}, nil
		}
		return kittypal.Settings{}, &kittypal.Error{Kind: kittypal.KindIO, Op: "read settings", Path: l.path, Err: err}
	}

	var settings kittypal.Settings
	dec := toml.NewDecoder(bytes.NewReader(data))
	dec.DisallowUnknownFields()
	if err := dec.Decode(&settings); err != nil {
		return kittypal.Settings{}, &kittypal.Error{Kind: kittypal.KindFormat, Op: "parse settings", Path: l.path, Err: err}
	}
	return settings, nil
}
