package kittypal

import (
	"errors"
	"fmt"
	"strings"
)

// Kind classifies an error so callers can react without matching message text.
type Kind string

// Error kinds.
const (
	// KindParse marks malformed colour text where a valid value is mandatory,
	// such as inside a backup record.
	KindParse Kind = "parse"
	// KindIO marks a filesystem failure: unreadable file, missing config,
	// failed write.
	KindIO Kind = "io"
	// KindNotFound marks a load of a backup name that has no record.
	KindNotFound Kind = "not_found"
	// KindFormat marks a backup record that exists but is structurally invalid.
	KindFormat Kind = "format"
)

// Error is the error type returned by kittypal operations. Kind carries the
// failure class; Op, Path and Name carry whatever context the operation had.
type Error struct {
	Kind Kind
	Op   string
	Path string
	Name string
	Err  error
}

// Error implements the error interface.
func (e *Error) Error() string {
	var b strings.Builder
	b.WriteString(e.Op)
	if e.Name != "" {
		fmt.Fprintf(&b, " %q", e.Name)
	}
	if e.Path != "" {
		fmt.Fprintf(&b, " (%s)", e.Path)
	}
	if e.Err != nil {
		fmt.Fprintf(&b, ": %v", e.Err)
	} else {
		fmt.Fprintf(&b, ": %s error", e.Kind)
	}
	return b.String()
}

// Unwrap returns the underlying cause.
func (e *Error) Unwrap() error { return e.Err }

// KindOf returns the kind of err if it is or wraps an *Error, or "" otherwise.
func KindOf(err error) Kind {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind
	}
	return ""
}

// IsNotFound reports whether err marks a backup name with no record.
func IsNotFound(err error) bool {
	return KindOf(err) == KindNotFound
}
