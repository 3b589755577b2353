package kittyconf

import (
	"strings"

	"github.com/fwojciec/kittypal"
)

// Rewriter merges palette updates into parsed kitty config content.
type Rewriter struct{}

// Compile-time interface verification.
var _ kittypal.Rewriter = (*Rewriter)(nil)

// NewRewriter creates a new Rewriter.
func NewRewriter() *Rewriter {
	return &Rewriter{}
}

// Apply splices updated values into their directive lines and appends
// canonical lines for updated slots the document never mentions. Every
// other byte passes through untouched: applying an empty update set
// reproduces the parsed content exactly.
func (r *Rewriter) Apply(doc *kittypal.Document, updates kittypal.Palette) string {
	out := make([]string, 0, len(doc.Lines))
	for _, ln := range doc.Lines {
		if ln.Kind == kittypal.LineDirective {
			if c, ok := updates[ln.Slot]; ok {
				out = append(out, ln.Text[:ln.ValueStart]+c.Hex()+ln.Text[ln.ValueEnd:])
				continue
			}
		}
		out = append(out, ln.Text)
	}

	missing := missingLines(doc, updates)
	if len(missing) > 0 {
		// Appended lines go before the empty tail element so a trailing
		// newline stays trailing.
		trailingNewline := len(out) > 0 && out[len(out)-1] == ""
		if trailingNewline {
			out = out[:len(out)-1]
		}
		out = append(out, missing...)
		if trailingNewline {
			out = append(out, "")
		}
	}

	return strings.Join(out, "\n")
}

// missingLines renders canonical directive lines for updated slots the
// document has no line for, in canonical slot order.
func missingLines(doc *kittypal.Document, updates kittypal.Palette) []string {
	var lines []string
	for _, slot := range updates.Slots() {
		if doc.Has(slot) {
			continue
		}
		lines = append(lines, string(slot)+" "+updates[slot].String())
	}
	return lines
}
