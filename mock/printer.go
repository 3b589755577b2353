package mock

import "github.com/fwojciec/kittypal"

// Compile-time interface verification.
var _ kittypal.PalettePrinter = (*PalettePrinter)(nil)

// PalettePrinter is a mock implementation of kittypal.PalettePrinter.
type PalettePrinter struct {
	PrintFn func(p kittypal.Palette) error
}

func (p *PalettePrinter) Print(palette kittypal.Palette) error {
	return p.PrintFn(palette)
}
