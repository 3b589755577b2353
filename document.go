package kittypal

// LineKind tags a config line as a colour directive or opaque text.
type LineKind int

// Line kinds.
const (
	// LineOpaque marks a line the tool must preserve verbatim: comments,
	// blank lines, unrelated settings, malformed directives.
	LineOpaque LineKind = iota
	// LineDirective marks a well-formed colour directive for a recognized slot.
	LineDirective
)

// Line is a single config line. Text never includes the trailing newline.
// For directive lines, Slot names the colour slot and ValueStart/ValueEnd
// bound the hex digits of the value within Text, excluding the '#' marker.
type Line struct {
	Text       string
	Kind       LineKind
	Slot       Slot
	ValueStart int
	ValueEnd   int
}

// Document is the ordered line sequence of a parsed config file. Splitting
// keeps the empty tail element produced by a trailing newline so a rewrite
// can reproduce the input byte-for-byte.
type Document struct {
	Lines []Line
}

// Has reports whether the document contains a directive line for slot s.
func (d *Document) Has(s Slot) bool {
	for _, ln := range d.Lines {
		if ln.Kind == LineDirective && ln.Slot == s {
			return true
		}
	}
	return false
}

// Parser extracts the palette from raw config content while tagging lines
// for a later rewrite. Parsing never fails: unrecognized or malformed lines
// come back tagged opaque.
type Parser interface {
	Parse(content string) (*Document, Palette)
}

// Rewriter merges palette updates back into a parsed document and returns
// the complete new file content. Directive lines for updated slots get the
// new value spliced in place; updated slots with no directive line are
// appended as new lines; everything else passes through unchanged.
type Rewriter interface {
	Apply(doc *Document, updates Palette) string
}
