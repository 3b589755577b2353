// Package mock provides test doubles for kittypal interfaces.
package mock

import "github.com/fwojciec/kittypal"

// Compile-time interface verification.
var _ kittypal.FileSystem = (*FileSystem)(nil)

// FileSystem is a mock implementation of kittypal.FileSystem.
type FileSystem struct {
	ReadFileFn  func(path string) ([]byte, error)
	WriteFileFn func(path string, data []byte) error
}

func (f *FileSystem) ReadFile(path string) ([]byte, error) {
	return f.ReadFileFn(path)
}

func (f *FileSystem) WriteFile(path string, data []byte) error {
	return f.WriteFileFn(path, data)
}
