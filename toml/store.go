// Package toml persists palette backups and tool settings as TOML files.
package toml

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"

	toml "github.com/pelletier/go-toml/v2"

	"github.com/fwojciec/kittypal"
)

// Compile-time interface verification.
var _ kittypal.BackupStore = (*Store)(nil)

// Store persists palette backups as one TOML record per name, one "#hex"
// value per slot in canonical order.
type Store struct {
	dir string
}

// NewStore creates a Store keeping its records under dir.
func NewStore(dir string) *Store {
	return &Store{dir: dir}
}

// record is the on-disk shape of a backup. Field order follows the
// canonical slot order so the saved file reads like the config it mirrors;
// a map would marshal alphabetically.
type record struct {
	Foreground string `toml:"foreground"`
	Background string `toml:"background"`
	Cursor     string `toml:"cursor"`
	Color0     string `toml:"color0"`
	Color1     string `toml:"color1"`
	Color2     string `toml:"color2"`
	Color3     string `toml:"color3"`
	Color4     string `toml:"color4"`
	Color5     string `toml:"color5"`
	Color6     string `toml:"color6"`
	Color7     string `toml:"color7"`
	Color8     string `toml:"color8"`
	Color9     string `toml:"color9"`
	Color10    string `toml:"color10"`
	Color11    string `toml:"color11"`
	Color12    string `toml:"color12"`
	Color13    string `toml:"color13"`
	Color14    string `toml:"color14"`
	Color15    string `toml:"color15"`
}

// newRecord fills a record from a complete palette. The field list mirrors
// kittypal.Slots().
func newRecord(p kittypal.Palette) record {
	var r record
	fields := []*string{
		&r.Foreground, &r.Background, &r.Cursor,
		&r.Color0, &r.Color1, &r.Color2, &r.Color3,
		&r.Color4, &r.Color5, &r.Color6, &r.Color7,
		&r.Color8, &r.Color9, &r.Color10, &r.Color11,
		&r.Color12, &r.Color13, &r.Color14, &r.Color15,
	}
	for i, slot := range kittypal.Slots() {
		*fields[i] = p[slot].String()
	}
	return r
}

// Save writes a complete palette under name, overwriting any existing
// record. The write goes through a temp file and rename so a crash never
// leaves a corrupt record behind.
func (s *Store) Save(name string, p kittypal.Palette) error {
	path := s.recordPath(name)
	if !p.Complete() {
		return &kittypal.Error{
			Kind: kittypal.KindFormat,
			Op:   "save backup",
			Path: path,
			Name: recordName(name),
			Err:  errors.New("palette is incomplete"),
		}
	}

	data, err := toml.Marshal(newRecord(p))
	if err != nil {
		return &kittypal.Error{Kind: kittypal.KindIO, Op: "save backup", Path: path, Name: recordName(name), Err: err}
	}

	if err := os.MkdirAll(s.dir, 0o755); err != nil {
		return &kittypal.Error{Kind: kittypal.KindIO, Op: "save backup", Path: path, Name: recordName(name), Err: err}
	}
	if err := writeFileAtomic(path, data, 0o644); err != nil {
		return &kittypal.Error{Kind: kittypal.KindIO, Op: "save backup", Path: path, Name: recordName(name), Err: err}
	}
	return nil
}

// Load reads the named record back into a complete palette.
func (s *Store) Load(name string) (kittypal.Palette, error) {
	path := s.recordPath(name)
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, &kittypal.Error{
				Kind: kittypal.KindNotFound,
				Op:   "load backup",
				Path: path,
				Name: recordName(name),
				Err:  errors.New("no such backup"),
			}
		}
		return nil, &kittypal.Error{Kind: kittypal.KindIO, Op: "load backup", Path: path, Name: recordName(name), Err: err}
	}

	var raw map[string]string
	if err := toml.Unmarshal(data, &raw); err != nil {
		return nil, &kittypal.Error{Kind: kittypal.KindFormat, Op: "load backup", Path: path, Name: recordName(name), Err: err}
	}

	palette := make(kittypal.Palette, len(raw))
	for key, value := range raw {
		slot := kittypal.Slot(key)
		if !slot.Valid() {
			return nil, &kittypal.Error{
				Kind: kittypal.KindFormat,
				Op:   "load backup",
				Path: path,
				Name: recordName(name),
				Err:  fmt.Errorf("unknown key %q", key),
			}
		}
		colour, err := kittypal.ParseColor(value)
		if err != nil {
			return nil, &kittypal.Error{
				Kind: kittypal.KindParse,
				Op:   "load backup",
				Path: path,
				Name: recordName(name),
				Err:  fmt.Errorf("key %q: %w", key, err),
			}
		}
		palette[slot] = colour
	}

	if missing := missingSlots(palette); len(missing) > 0 {
		return nil, &kittypal.Error{
			Kind: kittypal.KindFormat,
			Op:   "load backup",
			Path: path,
			Name: recordName(name),
			Err:  fmt.Errorf("missing keys: %s", strings.Join(missing, ", ")),
		}
	}
	return palette, nil
}

// List returns the saved records sorted by name. A missing backup directory
// yields an empty list.
func (s *Store) List() ([]kittypal.Backup, error) {
	entries, err := os.ReadDir(s.dir)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, nil
		}
		return nil, &kittypal.Error{Kind: kittypal.KindIO, Op: "list backups", Path: s.dir, Err: err}
	}

	var backups []kittypal.Backup
	for _, entry := range entries {
		if entry.IsDir() || !strings.HasSuffix(entry.Name(), ".toml") {
			continue
		}
		info, err := entry.Info()
		if err != nil {
			return nil, &kittypal.Error{Kind: kittypal.KindIO, Op: "list backups", Path: filepath.Join(s.dir, entry.Name()), Err: err}
		}
		backups = append(backups, kittypal.Backup{
			Name:    strings.TrimSuffix(entry.Name(), ".toml"),
			Path:    filepath.Join(s.dir, entry.Name()),
			ModTime: info.ModTime(),
		})
	}

	sort.Slice(backups, func(i, j int) bool { return backups[i].Name < backups[j].Name })
	return backups, nil
}

func (s *Store) recordPath(name string) string {
	return filepath.Join(s.dir, recordName(name)+".toml")
}

func recordName(name string) string {
	if name == "" {
		return kittypal.DefaultBackupName
	}
	return name
}

func missingSlots(p kittypal.Palette) []string {
	var missing []string
	for _, slot := range kittypal.Slots() {
		if _, ok := p[slot]; !ok {
			missing = append(missing, string(slot))
		}
	}
	return missing
}

// writeFileAtomic writes data to a temp file in the target directory and
// renames it over path, so readers never see a partial record.
func writeFileAtomic(path string, data []byte, perm fs.FileMode) error {
	dir := filepath.Dir(path)
	tmp, err := os.CreateTemp(dir, "."+filepath.Base(path)+".tmp-*")
	if err != nil {
		return err
	}
	tmpPath := tmp.Name()
	defer func() {
		_ = os.Remove(tmpPath)
	}()

	if _, err := tmp.Write(data); err != nil {
		_ = tmp.Close()
		return err
	}
	if err := tmp.Chmod(perm); err != nil {
		_ = tmp.Close()
		return err
	}
	if err := tmp.Close(); err != nil {
		return err
	}
	return os.Rename(tmpPath, path)
}
