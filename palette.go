package kittypal

// Palette maps slots to colours. A palette may be partial: slots absent from
// the source simply have no entry.
type Palette map[Slot]Color

// Slots returns the slots present in p, in canonical order. Entries under
// unrecognized slots are skipped.
func (p Palette) Slots() []Slot {
	var present []Slot
	for _, s := range allSlots {
		if _, ok := p[s]; ok {
			present = append(present, s)
		}
	}
	return present
}

// Complete reports whether p has a colour for every recognized slot.
func (p Palette) Complete() bool {
	return len(p.Slots()) == len(allSlots)
}

// Clone returns an independent copy of p.
func (p Palette) Clone() Palette {
	out := make(Palette, len(p))
	for s, c := range p {
		out[s] = c
	}
	return out
}
