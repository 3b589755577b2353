package kittypal

// Differ renders the difference between two versions of a file's content.
type Differ interface {
	// Unified returns a unified diff of old and new labelled with name, or
	// an empty string when the contents are equal.
	Unified(name, old, new string) string
}
