// Package udiff renders unified diffs of config content.
package udiff

import (
	"strings"

	"github.com/aymanbagabas/go-udiff"

	"github.com/fwojciec/kittypal"
)

// Compile-time interface verification.
var _ kittypal.Differ = (*Differ)(nil)

// Differ renders unified diffs for dry-run previews.
type Differ struct{}

// NewDiffer creates a new Differ.
func NewDiffer() *Differ {
	return &Differ{}
}

// Unified returns a unified diff of old and new labelled with name, or an
// empty string when the contents are equal. Inputs are given a trailing
// newline first so the last line diffs cleanly.
func (d *Differ) Unified(name, old, new string) string {
	before := ensureTrailingNewline(old)
	after := ensureTrailingNewline(new)
	if before == after {
		return ""
	}
	return udiff.Unified(name+" (current)", name+" (new)", before, after)
}

func ensureTrailingNewline(s string) string {
	if s == "" || strings.HasSuffix(s, "\n") {
		return s
	}
	return s + "\n"
}
