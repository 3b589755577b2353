package mock

import "github.com/fwojciec/kittypal"

// Compile-time interface verification.
var _ kittypal.BackupStore = (*BackupStore)(nil)

// BackupStore is a mock implementation of kittypal.BackupStore.
type BackupStore struct {
	SaveFn func(name string, p kittypal.Palette) error
	LoadFn func(name string) (kittypal.Palette, error)
	ListFn func() ([]kittypal.Backup, error)
}

func (s *BackupStore) Save(name string, p kittypal.Palette) error {
	return s.SaveFn(name, p)
}

func (s *BackupStore) Load(name string) (kittypal.Palette, error) {
	return s.LoadFn(name)
}

func (s *BackupStore) List() ([]kittypal.Backup, error) {
	return s.ListFn()
}
