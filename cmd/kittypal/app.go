package main

import (
	"fmt"
	"io"

	"github.com/dustin/go-humanize"

	"github.com/fwojciec/kittypal"
)

// App encapsulates the application logic for testing. Every collaborator
// comes in through an interface so the flows can run against mocks.
type App struct {
	ConfigPath string
	FS         kittypal.FileSystem
	Parser     kittypal.Parser
	Rewriter   kittypal.Rewriter
	Generator  kittypal.Generator
	Store      kittypal.BackupStore
	Printer    kittypal.PalettePrinter
	Differ     kittypal.Differ
	Out        io.Writer
	Err        io.Writer
}

// Run validates the request and dispatches it.
func (a *App) Run(req kittypal.Request) error {
	if err := req.Validate(); err != nil {
		return err
	}

	switch req.Action {
	case kittypal.ActionRandom:
		return a.random(req)
	case kittypal.ActionShuffle:
		return a.shuffle(req)
	case kittypal.ActionBackup:
		return a.backup(req)
	case kittypal.ActionLoad:
		return a.load(req)
	case kittypal.ActionColours:
		return a.colours()
	case kittypal.ActionSet:
		return a.set(req)
	case kittypal.ActionList:
		return a.list()
	default:
		// Validate admits only the actions above.
		return fmt.Errorf("unknown action %q", req.Action)
	}
}

// random writes a fresh random colour into every targeted slot and shows
// the resulting palette.
func (a *App) random(req kittypal.Request) error {
	content, doc, current, err := a.readConfig()
	if err != nil {
		return err
	}

	updates := a.Generator.Random(targetSlots(req))
	if err := a.writeConfig(req, content, doc, updates); err != nil {
		return err
	}
	if req.DryRun {
		return nil
	}

	merged := current.Clone()
	for slot, colour := range updates {
		merged[slot] = colour
	}
	return a.Printer.Print(merged)
}

// shuffle redistributes the colours already present in the config across
// the targeted slots.
func (a *App) shuffle(req kittypal.Request) error {
	content, doc, current, err := a.readConfig()
	if err != nil {
		return err
	}

	// Only slots with a value in the file can trade colours.
	pool := kittypal.Palette{}
	for _, slot := range targetSlots(req) {
		colour, ok := current[slot]
		if !ok {
			fmt.Fprintf(a.Err, "warning: %s is not set in %s, skipping\n", slot, a.ConfigPath)
			continue
		}
		pool[slot] = colour
	}
	if len(pool) < 2 {
		fmt.Fprintln(a.Err, "warning: fewer than two colours to shuffle, nothing to do")
		return nil
	}

	return a.writeConfig(req, content, doc, a.Generator.Shuffle(pool))
}

// backup saves the config's palette as a named record, completing missing
// slots with black so records are always whole.
func (a *App) backup(req kittypal.Request) error {
	_, _, current, err := a.readConfig()
	if err != nil {
		return err
	}

	filled := current.Clone()
	for _, slot := range kittypal.Slots() {
		if _, ok := filled[slot]; ok {
			continue
		}
		fmt.Fprintf(a.Err, "warning: %s is not set in %s, backing up as #000000\n", slot, a.ConfigPath)
		filled[slot] = kittypal.Color{}
	}

	if err := a.Store.Save(req.Name, filled); err != nil {
		return err
	}
	fmt.Fprintf(a.Out, "saved backup %q\n", backupName(req.Name))
	return nil
}

// load restores a saved record into the config.
func (a *App) load(req kittypal.Request) error {
	stored, err := a.Store.Load(req.Name)
	if err != nil {
		return err
	}

	content, doc, _, err := a.readConfig()
	if err != nil {
		return err
	}

	return a.writeConfig(req, content, doc, stored)
}

// colours shows the palette currently in the config.
func (a *App) colours() error {
	_, _, current, err := a.readConfig()
	if err != nil {
		return err
	}
	return a.Printer.Print(current)
}

// set writes the given colours into the given slots.
func (a *App) set(req kittypal.Request) error {
	content, doc, _, err := a.readConfig()
	if err != nil {
		return err
	}

	updates := make(kittypal.Palette, len(req.Only))
	for i, slot := range req.Only {
		updates[slot] = req.SetColors[i]
	}
	return a.writeConfig(req, content, doc, updates)
}

// list shows the saved backups.
func (a *App) list() error {
	backups, err := a.Store.List()
	if err != nil {
		return err
	}
	if len(backups) == 0 {
		fmt.Fprintln(a.Out, "no backups")
		return nil
	}
	for _, b := range backups {
		fmt.Fprintf(a.Out, "%-20s %-16s %s\n", b.Name, humanize.Time(b.ModTime), b.Path)
	}
	return nil
}

func (a *App) readConfig() (string, *kittypal.Document, kittypal.Palette, error) {
	data, err := a.FS.ReadFile(a.ConfigPath)
	if err != nil {
		return "", nil, nil, err
	}
	content := string(data)
	doc, palette := a.Parser.Parse(content)
	return content, doc, palette, nil
}

// writeConfig rewrites the config with updates, or prints the would-be
// change as a diff under --dry-run. The new content is complete in memory
// before the write starts.
func (a *App) writeConfig(req kittypal.Request, content string, doc *kittypal.Document, updates kittypal.Palette) error {
	rewritten := a.Rewriter.Apply(doc, updates)
	if req.DryRun {
		diff := a.Differ.Unified(a.ConfigPath, content, rewritten)
		if diff == "" {
			fmt.Fprintln(a.Out, "no changes")
			return nil
		}
		fmt.Fprint(a.Out, diff)
		return nil
	}
	return a.FS.WriteFile(a.ConfigPath, []byte(rewritten))
}

// targetSlots applies the --force / --exception selection to the canonical
// slot list.
func targetSlots(req kittypal.Request) []kittypal.Slot {
	if len(req.Only) > 0 {
		return req.Only
	}
	if len(req.Except) == 0 {
		return kittypal.Slots()
	}

	excluded := make(map[kittypal.Slot]bool, len(req.Except))
	for _, slot := range req.Except {
		excluded[slot] = true
	}
	var out []kittypal.Slot
	for _, slot := range kittypal.Slots() {
		if !excluded[slot] {
			out = append(out, slot)
		}
	}
	return out
}

func backupName(name string) string {
	if name == "" {
		return kittypal.DefaultBackupName
	}
	return name
}
