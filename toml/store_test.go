package toml_test

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"testing"

	"github.com/fwojciec/kittypal"
	"github.com/fwojciec/kittypal/toml"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStoreSave(t *testing.T) {
	t.Parallel()

	t.Run("round-trips a complete palette", func(t *testing.T) {
		t.Parallel()

		store := toml.NewStore(t.TempDir())
		p := completePalette()

		require.NoError(t, store.Save("work", p))

		got, err := store.Load("work")
		require.NoError(t, err)
		assert.Equal(t, p, got)
	})

	t.Run("record lays out slots in canonical order", func(t *testing.T) {
		t.Parallel()

		dir := t.TempDir()
		store := toml.NewStore(dir)

		require.NoError(t, store.Save("work", completePalette()))

		data, err := os.ReadFile(filepath.Join(dir, "work.toml"))
		require.NoError(t, err)
		var keys []string
		for _, line := range strings.Split(strings.TrimSpace(string(data)), "\n") {
			key, _, found := strings.Cut(line, " = ")
			require.True(t, found, "line %q", line)
			keys = append(keys, key)
		}
		var want []string
		for _, s := range kittypal.Slots() {
			want = append(want, string(s))
		}
		assert.Equal(t, want, keys)
	})

	t.Run("empty name selects the default record", func(t *testing.T) {
		t.Parallel()

		dir := t.TempDir()
		store := toml.NewStore(dir)

		require.NoError(t, store.Save("", completePalette()))

		assert.FileExists(t, filepath.Join(dir, "default.toml"))
		got, err := store.Load("")
		require.NoError(t, err)
		assert.Equal(t, completePalette(), got)
	})

	t.Run("creates the backup directory on demand", func(t *testing.T) {
		t.Parallel()

		dir := filepath.Join(t.TempDir(), "kittypal", "backups")
		store := toml.NewStore(dir)

		require.NoError(t, store.Save("work", completePalette()))

		assert.FileExists(t, filepath.Join(dir, "work.toml"))
	})

	t.Run("overwrites an existing record", func(t *testing.T) {
		t.Parallel()

		store := toml.NewStore(t.TempDir())
		first := completePalette()
		require.NoError(t, store.Save("work", first))

		second := first.Clone()
		second[kittypal.SlotCursor] = kittypal.Color{R: 0xff, G: 0xff, B: 0xff}
		require.NoError(t, store.Save("work", second))

		got, err := store.Load("work")
		require.NoError(t, err)
		assert.Equal(t, second, got)
	})

	t.Run("leaves no temp files behind", func(t *testing.T) {
		t.Parallel()

		dir := t.TempDir()
		store := toml.NewStore(dir)

		require.NoError(t, store.Save("work", completePalette()))

		entries, err := os.ReadDir(dir)
		require.NoError(t, err)
		require.Len(t, entries, 1)
		assert.Equal(t, "work.toml", entries[0].Name())
	})

	t.Run("rejects an incomplete palette", func(t *testing.T) {
		t.Parallel()

		store := toml.NewStore(t.TempDir())
		p := completePalette()
		delete(p, kittypal.Slot("color7"))

		err := store.Save("work", p)

		require.Error(t, err)
		assert.Equal(t, kittypal.KindFormat, kittypal.KindOf(err))
	})

	// Concurrent invocations of the tool are unsynchronized; the rename-based
	// write still guarantees a racing reader never sees a half-written record.
	t.Run("racing saves leave a loadable record", func(t *testing.T) {
		t.Parallel()

		store := toml.NewStore(t.TempDir())
		palettes := make([]kittypal.Palette, 8)
		for i := range palettes {
			p := completePalette()
			p[kittypal.SlotCursor] = kittypal.Color{R: uint8(i)}
			palettes[i] = p
		}

		var wg sync.WaitGroup
		for i := range palettes {
			wg.Add(1)
			go func() {
				defer wg.Done()
				assert.NoError(t, store.Save("work", palettes[i]))
			}()
		}
		wg.Wait()

		got, err := store.Load("work")
		require.NoError(t, err)
		assert.Contains(t, palettes, got)
	})
}

func TestStoreLoad(t *testing.T) {
	t.Parallel()

	t.Run("missing record is not found", func(t *testing.T) {
		t.Parallel()

		store := toml.NewStore(t.TempDir())

		_, err := store.Load("nonexistent")

		require.Error(t, err)
		assert.True(t, kittypal.IsNotFound(err))
		assert.Contains(t, err.Error(), "nonexistent")
	})

	t.Run("missing directory is not found", func(t *testing.T) {
		t.Parallel()

		store := toml.NewStore(filepath.Join(t.TempDir(), "never-created"))

		_, err := store.Load("work")

		assert.True(t, kittypal.IsNotFound(err))
	})

	t.Run("unparsable record is a format error", func(t *testing.T) {
		t.Parallel()

		dir := t.TempDir()
		writeRecord(t, dir, "bad", "not [valid toml")

		_, err := toml.NewStore(dir).Load("bad")

		require.Error(t, err)
		assert.Equal(t, kittypal.KindFormat, kittypal.KindOf(err))
	})

	t.Run("unknown key is a format error", func(t *testing.T) {
		t.Parallel()

		dir := t.TempDir()
		writeRecord(t, dir, "bad", recordText(nil)+"border = \"#aabbcc\"\n")

		_, err := toml.NewStore(dir).Load("bad")

		require.Error(t, err)
		assert.Equal(t, kittypal.KindFormat, kittypal.KindOf(err))
		assert.Contains(t, err.Error(), "border")
	})

	t.Run("missing slot is a format error", func(t *testing.T) {
		t.Parallel()

		dir := t.TempDir()
		skip := kittypal.SlotCursor
		writeRecord(t, dir, "bad", recordText(&skip))

		_, err := toml.NewStore(dir).Load("bad")

		require.Error(t, err)
		assert.Equal(t, kittypal.KindFormat, kittypal.KindOf(err))
		assert.Contains(t, err.Error(), "cursor")
	})

	t.Run("non-string value is a format error", func(t *testing.T) {
		t.Parallel()

		dir := t.TempDir()
		writeRecord(t, dir, "bad", strings.Replace(recordText(nil), "foreground = \"#0a141e\"", "foreground = 10", 1))

		_, err := toml.NewStore(dir).Load("bad")

		require.Error(t, err)
		assert.Equal(t, kittypal.KindFormat, kittypal.KindOf(err))
	})

	t.Run("malformed hex is a parse error", func(t *testing.T) {
		t.Parallel()

		dir := t.TempDir()
		writeRecord(t, dir, "bad", strings.Replace(recordText(nil), "#0a141e", "#zzzzzz", 1))

		_, err := toml.NewStore(dir).Load("bad")

		require.Error(t, err)
		assert.Equal(t, kittypal.KindParse, kittypal.KindOf(err))
		assert.Contains(t, err.Error(), "foreground")
	})
}

func TestStoreList(t *testing.T) {
	t.Parallel()

	t.Run("missing directory yields an empty list", func(t *testing.T) {
		t.Parallel()

		store := toml.NewStore(filepath.Join(t.TempDir(), "never-created"))

		backups, err := store.List()

		require.NoError(t, err)
		assert.Empty(t, backups)
	})

	t.Run("returns records sorted by name", func(t *testing.T) {
		t.Parallel()

		dir := t.TempDir()
		store := toml.NewStore(dir)
		for _, name := range []string{"work", "default", "night"} {
			require.NoError(t, store.Save(name, completePalette()))
		}

		backups, err := store.List()

		require.NoError(t, err)
		require.Len(t, backups, 3)
		assert.Equal(t, "default", backups[0].Name)
		assert.Equal(t, "night", backups[1].Name)
		assert.Equal(t, "work", backups[2].Name)
		assert.Equal(t, filepath.Join(dir, "default.toml"), backups[0].Path)
		assert.False(t, backups[0].ModTime.IsZero())
	})

	t.Run("skips directories and unrelated files", func(t *testing.T) {
		t.Parallel()

		dir := t.TempDir()
		store := toml.NewStore(dir)
		require.NoError(t, store.Save("work", completePalette()))
		require.NoError(t, os.MkdirAll(filepath.Join(dir, "sub.toml"), 0o755))
		require.NoError(t, os.WriteFile(filepath.Join(dir, "notes.txt"), []byte("x"), 0o644))

		backups, err := store.List()

		require.NoError(t, err)
		require.Len(t, backups, 1)
		assert.Equal(t, "work", backups[0].Name)
	})
}

// completePalette builds a palette with a distinct colour in every slot.
func completePalette() kittypal.Palette {
	p := kittypal.Palette{}
	for i, s := range kittypal.Slots() {
		p[s] = kittypal.Color{R: uint8(10 + i), G: uint8(20 + i), B: uint8(30 + i)}
	}
	return p
}

// recordText renders the TOML record of completePalette, optionally leaving
// one slot out.
func recordText(skip *kittypal.Slot) string {
	p := completePalette()
	var b strings.Builder
	for _, s := range kittypal.Slots() {
		if skip != nil && s == *skip {
			continue
		}
		fmt.Fprintf(&b, "%s = \"%s\"\n", s, p[s])
	}
	return b.String()
}

func writeRecord(t *testing.T, dir, name, content string) {
	t.Helper()
	require.NoError(t, os.WriteFile(filepath.Join(dir, name+".toml"), []byte(content), 0o644))
}
