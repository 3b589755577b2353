package kittypal

import "time"

// DefaultBackupName is the record name used when none is given.
const DefaultBackupName = "default"

// Backup describes one saved palette record.
type Backup struct {
	Name    string
	Path    string
	ModTime time.Time
}

// BackupStore persists named palette snapshots.
type BackupStore interface {
	// Save writes a complete palette under name, overwriting any existing
	// record. An empty name selects the default record.
	Save(name string, p Palette) error
	// Load reads the named record. A missing record fails with KindNotFound,
	// a structurally invalid one with KindFormat, and one holding malformed
	// colour text with KindParse.
	Load(name string) (Palette, error)
	// List returns the saved records sorted by name. A missing backup
	// directory yields an empty list.
	List() ([]Backup, error)
}
