package kittypal

// FileSystem abstracts config file access so the core logic never touches
// the disk directly.
type FileSystem interface {
	// ReadFile returns the full content of the file at path.
	ReadFile(path string) ([]byte, error)
	// WriteFile replaces the content of the file at path.
	WriteFile(path string, data []byte) error
}
