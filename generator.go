package kittypal

// Generator produces new palettes from a randomness source.
type Generator interface {
	// Random assigns an independent uniformly random colour to each of the
	// given slots.
	Random(slots []Slot) Palette
	// Shuffle redistributes the colour values of p across its own slots
	// under a random permutation. The multiset of values is preserved
	// exactly; only the assignment changes.
	Shuffle(p Palette) Palette
}
