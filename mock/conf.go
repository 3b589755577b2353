package mock

import "github.com/fwojciec/kittypal"

// Compile-time interface verification.
var _ kittypal.Parser = (*Parser)(nil)

// Parser is a mock implementation of kittypal.Parser.
type Parser struct {
	ParseFn func(content string) (*kittypal.Document, kittypal.Palette)
}

func (p *Parser) Parse(content string) (*kittypal.Document, kittypal.Palette) {
	return p.ParseFn(content)
}

// Compile-time interface verification.
var _ kittypal.Rewriter = (*Rewriter)(nil)

// Rewriter is a mock implementation of kittypal.Rewriter.
type Rewriter struct {
	ApplyFn func(doc *kittypal.Document, updates kittypal.Palette) string
}

func (r *Rewriter) Apply(doc *kittypal.Document, updates kittypal.Palette) string {
	return r.ApplyFn(doc, updates)
}
