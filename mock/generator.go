package mock

import "github.com/fwojciec/kittypal"

// Compile-time interface verification.
var _ kittypal.Generator = (*Generator)(nil)

// Generator is a mock implementation of kittypal.Generator.
type Generator struct {
	RandomFn  func(slots []kittypal.Slot) kittypal.Palette
	ShuffleFn func(p kittypal.Palette) kittypal.Palette
}

func (g *Generator) Random(slots []kittypal.Slot) kittypal.Palette {
	return g.RandomFn(slots)
}

func (g *Generator) Shuffle(p kittypal.Palette) kittypal.Palette {
	return g.ShuffleFn(p)
}
