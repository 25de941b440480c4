package app

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"testing"

	"github.com/charmbracelet/log"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vovakirdan/glyphgrid/internal/config"
	"github.com/vovakirdan/glyphgrid/internal/deploy"
	"github.com/vovakirdan/glyphgrid/internal/glyph"
	"github.com/vovakirdan/glyphgrid/internal/palette"
	"github.com/vovakirdan/glyphgrid/internal/storage"
)

func newEnv(t *testing.T, cfg config.Config) *Env {
	t.Helper()
	store, err := storage.Open(filepath.Join(t.TempDir(), "app.db"))
	require.NoError(t, err)
	t.Cleanup(func() { store.Close() })

	env, err := NewEnv(cfg, store, log.New(io.Discard))
	require.NoError(t, err)
	return env
}

func TestNewEnvRejectsBadConfig(t *testing.T) {
	cfg := config.Default()
	cfg.Editor.TapScope = "nowhere"
	_, err := NewEnv(cfg, nil, nil)
	assert.ErrorIs(t, err, config.ErrInvalid)
}

func TestLoadPoolFallback(t *testing.T) {
	env := newEnv(t, config.Default())
	pool := env.LoadPool(context.Background())
	assert.Equal(t, glyph.MaxID, pool.Len())
}

func TestLoadPoolRemoteIsCached(t *testing.T) {
	hits := 0
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		hits++
		io.WriteString(w, `[{"id":1,"bitmap":"18446744073709551615"},{"id":2,"bitmap":"255"},{"id":99,"bitmap":"1"}]`)
	}))
	defer srv.Close()

	cfg := config.Default()
	cfg.Glyphs.URL = srv.URL
	env := newEnv(t, cfg)

	pool := env.LoadPool(context.Background())
	assert.Equal(t, 2, pool.Len(), "ids above the range are clipped")
	pool = env.LoadPool(context.Background())
	assert.Equal(t, 2, pool.Len())
	assert.Equal(t, 1, hits, "second load is served from the cache")
}

func TestEditorResumesPerNamespace(t *testing.T) {
	cfg := config.Default()
	cfg.Generator.Complexity = 5
	env := newEnv(t, cfg)
	pool := glyph.Fallback()

	ed := env.NewEditor(pool, LocalNamespace, 7)
	assert.Equal(t, 5, ed.Complexity())

	ed.SetSelection(palette.NewSelection(0, 1, 2, 3))
	require.NoError(t, ed.Generate())

	again := env.NewEditor(pool, LocalNamespace, 8)
	assert.Equal(t, ed.Grid(), again.Grid())
	assert.Equal(t, 5, again.Complexity())

	other := env.NewEditor(pool, SSHNamespace("bob"), 9)
	assert.True(t, other.Grid().Empty())
}

func TestExport(t *testing.T) {
	env := newEnv(t, config.Default())
	ed := env.NewEditor(glyph.Fallback(), LocalNamespace, 1)

	_, err := env.Export(ed, LocalNamespace, "empty")
	assert.ErrorIs(t, err, deploy.ErrInvalidCanvas)

	ed.SetSelection(palette.NewSelection(4, 8))
	require.NoError(t, ed.Generate())

	rec, err := env.Export(ed, LocalNamespace, "first")
	require.NoError(t, err)
	assert.NotEmpty(t, rec.ID)
	assert.LessOrEqual(t, rec.Payload.K(), 2)

	list, err := env.Store.RecentExports(LocalNamespace, 5)
	require.NoError(t, err)
	require.Len(t, list, 1)
	assert.Equal(t, rec.ID, list[0].ID)
}

func TestExportWithoutStore(t *testing.T) {
	env, err := NewEnv(config.Default(), nil, log.New(io.Discard))
	require.NoError(t, err)

	ed := env.NewEditor(glyph.Fallback(), LocalNamespace, 1)
	ed.SetSelection(palette.NewSelection(0, 1))
	require.NoError(t, ed.Generate())

	rec, err := env.Export(ed, LocalNamespace, "mem")
	assert.ErrorIs(t, err, ErrNoStore)
	assert.Len(t, rec.Payload.BgGlyphs, 81)
}
