// Package kittyconf parses and rewrites kitty configuration files.
package kittyconf

import (
	"strings"

	"github.com/fwojciec/kittypal"
)

// Parser tags colour directive lines in kitty config content.
type Parser struct{}

// Compile-time interface verification.
var _ kittypal.Parser = (*Parser)(nil)

// NewParser creates a new Parser.
func NewParser() *Parser {
	return &Parser{}
}

// Parse splits content into lines and tags every well-formed colour
// directive for a recognized slot. It never fails: comments, blank lines,
// unrelated settings and malformed directives come back as opaque lines.
// When the same slot appears on several lines, the returned palette keeps
// the last value.
func (p *Parser) Parse(content string) (*kittypal.Document, kittypal.Palette) {
	raw := strings.Split(content, "\n")
	doc := &kittypal.Document{Lines: make([]kittypal.Line, 0, len(raw))}
	palette := kittypal.Palette{}

	for _, text := range raw {
		line, colour, ok := matchDirective(text)
		if !ok {
			doc.Lines = append(doc.Lines, kittypal.Line{Text: text, Kind: kittypal.LineOpaque})
			continue
		}
		palette[line.Slot] = colour
		doc.Lines = append(doc.Lines, line)
	}

	return doc, palette
}

// matchDirective reports whether text is a colour directive: optional
// leading whitespace, a canonical slot name, optional whitespace, a
// '#'-prefixed 6-hex-digit value, and nothing but whitespace after it.
// Matching the key as a full token keeps color1 from claiming a color10
// line.
func matchDirective(text string) (kittypal.Line, kittypal.Color, bool) {
	i := skipSpace(text, 0)

	// Comment lines are opaque even when a directive hides inside.
	if i < len(text) && text[i] == '#' {
		return kittypal.Line{}, kittypal.Color{}, false
	}

	keyStart := i
	for i < len(text) && text[i] != ' ' && text[i] != '\t' && text[i] != '#' {
		i++
	}
	slot := kittypal.Slot(text[keyStart:i])
	if !slot.Valid() {
		return kittypal.Line{}, kittypal.Color{}, false
	}

	i = skipSpace(text, i)
	if i >= len(text) || text[i] != '#' {
		return kittypal.Line{}, kittypal.Color{}, false
	}
	i++

	valueStart := i
	valueEnd := i + 6
	if valueEnd > len(text) {
		return kittypal.Line{}, kittypal.Color{}, false
	}
	colour, err := kittypal.ParseColor(text[valueStart:valueEnd])
	if err != nil {
		return kittypal.Line{}, kittypal.Color{}, false
	}

	// Anything after the value other than trailing whitespace disqualifies
	// the line. A '\r' left over from a CRLF ending counts as whitespace.
	for j := valueEnd; j < len(text); j++ {
		switch text[j] {
		case ' ', '\t', '\r':
		default:
			return kittypal.Line{}, kittypal.Color{}, false
		}
	}

	return kittypal.Line{
		Text:       text,
		Kind:       kittypal.LineDirective,
		Slot:       slot,
		ValueStart: valueStart,
		ValueEnd:   valueEnd,
	}, colour, true
}

func skipSpace(s string, i int) int {
	for i < len(s) && (s[i] == ' ' || s[i] == '\t') {
		i++
	}
	return i
}
