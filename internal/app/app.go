// Package app wires configuration, storage and the glyph pool into ready
// editors. Both the local commands and the SSH server build sessions here.
package app

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/glyphgrid/internal/config"
	"github.com/vovakirdan/glyphgrid/internal/deploy"
	"github.com/vovakirdan/glyphgrid/internal/editor"
	"github.com/vovakirdan/glyphgrid/internal/glyph"
	"github.com/vovakirdan/glyphgrid/internal/palette"
	"github.com/vovakirdan/glyphgrid/internal/rng"
	"github.com/vovakirdan/glyphgrid/internal/storage"
)

// LocalNamespace is the storage namespace of the local user.
const LocalNamespace = "local"

// ErrNoStore is returned by operations that need the database.
var ErrNoStore = errors.New("app: no store")

// SSHNamespace returns the storage namespace of an SSH user.
func SSHNamespace(user string) string {
	return "ssh:" + user
}

// Env holds everything a session needs besides its own editor.
type Env struct {
	Config     config.Config
	Palette    palette.Palette
	Typography *glyph.Typography
	Options    editor.Options
	Store      *storage.Store // nil keeps state in memory
	Logger     *log.Logger
}

// NewEnv resolves the derived values of cfg.
func NewEnv(cfg config.Config, store *storage.Store, logger *log.Logger) (*Env, error) {
	pal, err := cfg.PaletteValue()
	if err != nil {
		return nil, err
	}
	typo, err := cfg.TypographyValue()
	if err != nil {
		return nil, err
	}
	opts, err := cfg.EditorOptions()
	if err != nil {
		return nil, err
	}
	if logger == nil {
		logger = log.Default()
	}
	return &Env{
		Config:     cfg,
		Palette:    pal,
		Typography: typo,
		Options:    opts,
		Store:      store,
		Logger:     logger,
	}, nil
}

// Loader returns the glyph loader for the configured source.
func (e *Env) Loader() *glyph.Loader {
	var src glyph.Source
	if e.Config.Glyphs.URL != "" {
		src = &glyph.HTTPSource{
			URL:    e.Config.Glyphs.URL,
			Client: &http.Client{Timeout: e.Config.Glyphs.Timeout},
		}
	}
	var cache glyph.Cache
	if e.Store != nil {
		cache = e.Store
	}
	l := glyph.NewLoader(src, cache, e.Logger.WithPrefix("glyphs"))
	l.Retry = e.Config.Glyphs.Retry
	return l
}

// LoadPool resolves the glyph pool. It never fails.
func (e *Env) LoadPool(ctx context.Context) *glyph.Pool {
	pool, origin := e.Loader().Load(ctx)
	e.Logger.Debug("glyph pool ready", "origin", origin, "glyphs", pool.Len())
	return pool
}

// Persister returns the state store for namespace.
func (e *Env) Persister(namespace string) editor.Persister {
	if e.Store == nil {
		return editor.NewMemoryPersister()
	}
	return e.Store.Session(namespace)
}

// NewEditor builds an editor for namespace and restores its stored state.
// Unusable state is logged and discarded. Fresh sessions start at the
// configured complexity. A zero seed picks one from the clock.
func (e *Env) NewEditor(pool *glyph.Pool, namespace string, seed int64) *editor.Editor {
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	ed := editor.New(editor.Config{
		Pool:       pool,
		Typography: e.Typography,
		Persister:  e.Persister(namespace),
		Rand:       rng.New(uint64(seed)),
		Options:    e.Options,
		Logger:     e.Logger.WithPrefix("editor"),
	})
	if err := ed.Load(); err != nil {
		e.Logger.Warn("stored state discarded", "namespace", namespace, "error", err)
	}
	if !ed.Generated() && ed.Selection().Len() == 0 {
		if err := ed.SetComplexity(e.Config.Generator.Complexity); err != nil {
			e.Logger.Warn("bad default complexity", "error", err)
		}
	}
	return ed
}

// Export builds the deploy payload of ed and records it under namespace.
func (e *Env) Export(ed *editor.Editor, namespace, name string) (storage.Export, error) {
	g := ed.Grid()
	p, err := deploy.Build(&g, e.Palette)
	if err != nil {
		return storage.Export{}, err
	}
	if e.Store == nil {
		return storage.Export{Namespace: namespace, Name: name, Payload: p}, ErrNoStore
	}
	rec, err := e.Store.SaveExport(namespace, name, p)
	if err != nil {
		return storage.Export{}, fmt.Errorf("app: cannot record export: %w", err)
	}
	return rec, nil
}
