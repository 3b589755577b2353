// Package kittypal provides domain types for managing kitty terminal colour schemes.
package kittypal

import (
	"strconv"
	"strings"
)

// Slot identifies one of the fixed colour roles kitty exposes in its config.
type Slot string

// The named slots. The 16 ANSI slots are "color0" through "color15".
const (
	SlotForeground Slot = "foreground"
	SlotBackground Slot = "background"
	SlotCursor     Slot = "cursor"
)

// allSlots is the canonical order of the 19 prominent colours the tool manages.
var allSlots = buildSlots()

// aliases maps the short keys accepted on the command line to canonical slots.
var aliases = buildAliases()

func buildSlots() []Slot {
	s := []Slot{SlotForeground, SlotBackground, SlotCursor}
	for i := 0; i < 16; i++ {
		s = append(s, Slot("color"+strconv.Itoa(i)))
	}
	return s
}

func buildAliases() map[string]Slot {
	m := map[string]Slot{
		"fg": SlotForeground,
		"bg": SlotBackground,
		"cs": SlotCursor,
	}
	for i := 0; i < 16; i++ {
		m["c"+strconv.Itoa(i)] = Slot("color" + strconv.Itoa(i))
	}
	return m
}

// Slots returns the canonical slot order: foreground, background, cursor,
// then color0 through color15.
func Slots() []Slot {
	out := make([]Slot, len(allSlots))
	copy(out, allSlots)
	return out
}

// Valid reports whether s is one of the recognized slots.
func (s Slot) Valid() bool {
	for _, known := range allSlots {
		if s == known {
			return true
		}
	}
	return false
}

// ResolveSlot resolves a user-supplied key to its slot. Keys may be
// canonical slot names or the short aliases fg, bg, cs and c0..c15.
// The second return is false for unknown keys.
func ResolveSlot(key string) (Slot, bool) {
	if s, ok := aliases[key]; ok {
		return s, true
	}
	if s := Slot(key); s.Valid() {
		return s, true
	}
	return "", false
}

// ParseSlotList parses the key-list syntax of the --exception and --force
// flags: comma-separated keys, optionally wrapped in parentheses, e.g. "bg",
// "fg,c0" or "(fg, c0, c7)". Unknown keys are returned separately so callers
// can warn without failing; duplicates are dropped.
func ParseSlotList(input string) ([]Slot, []string) {
	cleaned := strings.TrimSpace(input)
	cleaned = strings.TrimLeft(cleaned, "(")
	cleaned = strings.TrimRight(cleaned, ")")

	var list []Slot
	var unknown []string
	seen := make(map[Slot]bool)
	for _, part := range strings.Split(cleaned, ",") {
		key := strings.TrimSpace(part)
		if key == "" {
			continue
		}
		slot, ok := ResolveSlot(key)
		if !ok {
			unknown = append(unknown, key)
			continue
		}
		if seen[slot] {
			continue
		}
		seen[slot] = true
		list = append(list, slot)
	}
	return list, unknown
}
