package storage

import (
	"io"
	"os"
	"path/filepath"
	"testing"

	"github.com/charmbracelet/log"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vovakirdan/glyphgrid/internal/deploy"
	"github.com/vovakirdan/glyphgrid/internal/editor"
	"github.com/vovakirdan/glyphgrid/internal/glyph"
	"github.com/vovakirdan/glyphgrid/internal/grid"
	"github.com/vovakirdan/glyphgrid/internal/palette"
	"github.com/vovakirdan/glyphgrid/internal/rng"
)

func openStore(t *testing.T) *Store {
	t.Helper()
	store, err := Open(filepath.Join(t.TempDir(), "test.db"))
	require.NoError(t, err)
	t.Cleanup(func() { store.Close() })
	return store
}

func TestStoreOpenClose(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "test.db")

	store, err := Open(dbPath)
	require.NoError(t, err)
	defer store.Close()

	_, err = os.Stat(dbPath)
	assert.NoError(t, err, "database file was not created")
}

func TestStoreNestedPath(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "subdir", "deep", "test.db")

	store, err := Open(dbPath)
	require.NoError(t, err)
	defer store.Close()

	_, err = os.Stat(dbPath)
	assert.NoError(t, err)
}

func TestStoreKV(t *testing.T) {
	store := openStore(t)

	_, ok, err := store.Get("a", "k")
	require.NoError(t, err)
	assert.False(t, ok)

	require.NoError(t, store.Put("a", "k", "1"))
	require.NoError(t, store.Put("a", "k", "2"))
	require.NoError(t, store.Put("b", "k", "3"))

	v, ok, err := store.Get("a", "k")
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, "2", v)

	require.NoError(t, store.DeleteNamespace("a"))
	all, err := store.All("a")
	require.NoError(t, err)
	assert.Empty(t, all)

	all, err = store.All("b")
	require.NoError(t, err)
	assert.Equal(t, map[string]string{"k": "3"}, all)
}

func sampleSnapshot() editor.Snapshot {
	var g grid.Grid
	for i := 0; i < grid.Cells; i++ {
		g.Set(i, grid.Cell{BgGlyph: grid.Some(glyph.BlockID), BgColor: grid.Some(3)})
	}
	g.Set(10, grid.Cell{BgGlyph: grid.Some(1), BgColor: grid.Some(3), FgGlyph: grid.Some(16), FgColor: grid.Some(7)})
	g.Set(11, grid.Cell{BgGlyph: grid.Some(1), BgColor: grid.Some(7), FgGlyph: grid.Some(0)})

	aux := grid.Aux{Complexity: 2, BaseVariation: grid.Some(4), TypoRow: grid.Some(3), TypoCol: grid.Some(2)}
	aux.TypoCols[1] = grid.Some(5)

	return editor.Snapshot{
		Selection:  []int{2, 6},
		Complexity: 2,
		Grid:       g,
		Aux:        aux,
	}
}

func TestSessionRoundTrip(t *testing.T) {
	store := openStore(t)
	session := store.Session("alice")

	_, ok, err := session.Load()
	require.NoError(t, err)
	assert.False(t, ok)

	want := sampleSnapshot()
	require.NoError(t, session.Save(want))

	got, ok, err := session.Load()
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, want, got)

	// other namespaces are untouched
	_, ok, err = store.Session("bob").Load()
	require.NoError(t, err)
	assert.False(t, ok)

	require.NoError(t, session.Clear())
	_, ok, err = session.Load()
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestSessionLoadRejectsBadValues(t *testing.T) {
	tests := []struct {
		name  string
		key   string
		value string
	}{
		{"malformed array", keyBgGlyphs, "[1,2"},
		{"short array", keyFgColors, "[1,2,3]"},
		{"bad aux", keyAux, `{"typoRow":"x"}`},
		{"bad complexity", keyComplexity, "lots"},
		{"bad flag", keyShouldGenerate, "maybe"},
		{"bad selection", keySelectedColors, `"red"`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			store := openStore(t)
			session := store.Session("s")
			require.NoError(t, session.Save(sampleSnapshot()))
			require.NoError(t, store.Put("s", tt.key, tt.value))

			_, _, err := session.Load()
			assert.ErrorIs(t, err, editor.ErrInvalidPersistedState)
		})
	}
}

func TestSessionBacksEditor(t *testing.T) {
	store := openStore(t)
	logger := log.New(io.Discard)

	ed := editor.New(editor.Config{Persister: store.Session("s"), Rand: rng.New(3), Logger: logger})
	ed.SetSelection(palette.NewSelection(0, 4, 8))
	require.NoError(t, ed.Generate())
	require.NoError(t, ed.SetComplexity(6))

	resumed := editor.New(editor.Config{Persister: store.Session("s"), Rand: rng.New(4), Logger: logger})
	require.NoError(t, resumed.Load())
	assert.Equal(t, ed.Grid(), resumed.Grid())
	assert.Equal(t, ed.Aux(), resumed.Aux())
	assert.Equal(t, 6, resumed.Complexity())
	assert.Equal(t, []int{0, 4, 8}, resumed.Selection().Indices())

	// corrupt state is discarded and the store cleared
	require.NoError(t, store.Put("s", keyBgColors, "[]"))
	broken := editor.New(editor.Config{Persister: store.Session("s"), Logger: logger})
	assert.ErrorIs(t, broken.Load(), editor.ErrInvalidPersistedState)
	assert.True(t, broken.Grid().Empty())

	all, err := store.All("s")
	require.NoError(t, err)
	assert.Empty(t, all)
}

func TestGlyphCache(t *testing.T) {
	store := openStore(t)

	cached, err := store.LoadGlyphs()
	require.NoError(t, err)
	assert.Nil(t, cached)

	want := []glyph.Glyph{{ID: 1, Bitmap: 1<<64 - 1}, {ID: 2, Bitmap: 0x8000000000000001}}
	require.NoError(t, store.SaveGlyphs(want))

	cached, err = store.LoadGlyphs()
	require.NoError(t, err)
	assert.Equal(t, want, cached)

	require.NoError(t, store.ClearGlyphs())
	cached, err = store.LoadGlyphs()
	require.NoError(t, err)
	assert.Nil(t, cached)
}

func TestExports(t *testing.T) {
	store := openStore(t)
	snap := sampleSnapshot()
	p, err := deploy.Build(&snap.Grid, palette.Default)
	require.NoError(t, err)

	first, err := store.SaveExport("alice", "first", p)
	require.NoError(t, err)
	second, err := store.SaveExport("alice", "second", p)
	require.NoError(t, err)
	_, err = store.SaveExport("bob", "other", p)
	require.NoError(t, err)

	assert.NotEqual(t, first.ID, second.ID)
	assert.Positive(t, first.Size)

	list, err := store.RecentExports("alice", 10)
	require.NoError(t, err)
	require.Len(t, list, 2)
	assert.Equal(t, "second", list[0].Name)
	assert.Equal(t, "first", list[1].Name)
	assert.Equal(t, p, list[1].Payload)
	assert.Equal(t, first.Size, list[1].Size)
	assert.False(t, list[0].CreatedAt.IsZero())

	limited, err := store.RecentExports("alice", 1)
	require.NoError(t, err)
	assert.Len(t, limited, 1)

	found, err := store.ExportByID(first.ID)
	require.NoError(t, err)
	require.NotNil(t, found)
	assert.Equal(t, "first", found.Name)

	missing, err := store.ExportByID("nope")
	require.NoError(t, err)
	assert.Nil(t, missing)
}
