// Package lipgloss renders palettes with the Lipgloss styling library.
package lipgloss

import (
	"fmt"
	"io"

	"github.com/charmbracelet/lipgloss"
	colorful "github.com/lucasb-eyer/go-colorful"
	"github.com/muesli/termenv"

	"github.com/fwojciec/kittypal"
)

// Compile-time interface verification.
var _ kittypal.PalettePrinter = (*Printer)(nil)

// Printer renders a palette as one swatch line per slot. The renderer is
// constructed over the output writer, so colour degrades with the
// terminal's capabilities down to plain text.
type Printer struct {
	out      io.Writer
	renderer *lipgloss.Renderer
}

// NewPrinter creates a Printer writing to out. Options let tests pin the
// colour profile.
func NewPrinter(out io.Writer, opts ...termenv.OutputOption) *Printer {
	renderer := lipgloss.NewRenderer(out, opts...)
	// The renderer re-detects the profile from the environment on first use
	// and ignores the one the output resolved; pin it so the options win.
	renderer.SetColorProfile(renderer.Output().Profile)
	return &Printer{
		out:      out,
		renderer: renderer,
	}
}

// Print renders every recognized slot in canonical order. Slots absent from
// the palette are marked instead of coloured.
func (p *Printer) Print(palette kittypal.Palette) error {
	notSet := p.renderer.NewStyle().Faint(true)

	for _, slot := range kittypal.Slots() {
		colour, ok := palette[slot]
		if !ok {
			if err := p.printLine(slot, notSet.Render("(not set)")); err != nil {
				return err
			}
			continue
		}

		swatch := p.renderer.NewStyle().
			Background(lipgloss.Color(colour.String())).
			Foreground(lipgloss.Color(labelColour(colour))).
			Padding(0, 1)
		if err := p.printLine(slot, swatch.Render(colour.String())); err != nil {
			return err
		}
	}
	return nil
}

func (p *Printer) printLine(slot kittypal.Slot, rendered string) error {
	if _, err := fmt.Fprintf(p.out, "%-12s %s\n", slot, rendered); err != nil {
		return &kittypal.Error{Kind: kittypal.KindIO, Op: "print palette", Err: err}
	}
	return nil
}

// labelColour picks black or white for the swatch label so it stays legible
// on the slot colour, judged by CIE-Lab lightness.
func labelColour(c kittypal.Color) string {
	l, _, _ := colorful.Color{
		R: float64(c.R) / 255,
		G: float64(c.G) / 255,
		B: float64(c.B) / 255,
	}.Lab()
	if l > 0.5 {
		return "#000000"
	}
	return "#ffffff"
}
