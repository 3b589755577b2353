// Package palgen generates colour palettes from a randomness source.
package palgen

import (
	"math/rand/v2"

	"github.com/fwojciec/kittypal"
)

// Generator produces palettes from an injected randomness source so tests
// can seed it deterministically.
type Generator struct {
	rand *rand.Rand
}

// Compile-time interface verification.
var _ kittypal.Generator = (*Generator)(nil)

// New creates a Generator drawing from src.
func New(src rand.Source) *Generator {
	return &Generator{rand: rand.New(src)}
}

// NewDefault creates a Generator seeded from system entropy.
func NewDefault() *Generator {
	return New(rand.NewPCG(rand.Uint64(), rand.Uint64()))
}

// Random assigns an independent uniformly random colour to each of the
// given slots.
func (g *Generator) Random(slots []kittypal.Slot) kittypal.Palette {
	p := make(kittypal.Palette, len(slots))
	for _, s := range slots {
		p[s] = kittypal.Color{
			R: uint8(g.rand.IntN(256)),
			G: uint8(g.rand.IntN(256)),
			B: uint8(g.rand.IntN(256)),
		}
	}
	return p
}

// Shuffle redistributes the values of p across its own slots under a random
// permutation and returns the result as a new palette. The multiset of
// values is preserved exactly. Visiting slots in canonical order keeps the
// result a pure function of p and the randomness source.
func (g *Generator) Shuffle(p kittypal.Palette) kittypal.Palette {
	slots := p.Slots()
	colours := make([]kittypal.Color, len(slots))
	for i, s := range slots {
		colours[i] = p[s]
	}

	g.rand.Shuffle(len(colours), func(i, j int) {
		colours[i], colours[j] = colours[j], colours[i]
	})

	out := make(kittypal.Palette, len(slots))
	for i, s := range slots {
		out[s] = colours[i]
	}
	return out
}
