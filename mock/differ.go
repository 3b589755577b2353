package mock

import "github.com/fwojciec/kittypal"

// Compile-time interface verification.
var _ kittypal.Differ = (*Differ)(nil)

// Differ is a mock implementation of kittypal.Differ.
type Differ struct {
	UnifiedFn func(name, old, new string) string
}

func (d *Differ) Unified(name, old, new string) string {
	return d.UnifiedFn(name, old, new)
}
