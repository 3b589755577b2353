package kittypal

// PalettePrinter renders a palette for humans.
type PalettePrinter interface {
	// Print renders every recognized slot in canonical order, marking the
	// slots absent from p.
	Print(p Palette) error
}
