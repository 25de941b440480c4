// Package editor is the interactive state machine over a grid: glyph
// placement, colour cycling, shuffles and variations. Every transition runs
// to completion synchronously and writes the full state through a Persister.
package editor

import (
	"errors"
	"time"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/glyphgrid/internal/compose"
	"github.com/vovakirdan/glyphgrid/internal/glyph"
	"github.com/vovakirdan/glyphgrid/internal/grid"
	"github.com/vovakirdan/glyphgrid/internal/palette"
	"github.com/vovakirdan/glyphgrid/internal/rng"
)

// Modifiers carries the key modifiers held during a click.
type Modifiers struct {
	Shift bool
}

// Effect describes what a click did.
type Effect int

const (
	EffectNone Effect = iota
	EffectPlaced
	EffectBackground
	EffectForeground
	EffectSwapped
)

// String returns a short description.
func (e Effect) String() string {
	switch e {
	case EffectPlaced:
		return "placed"
	case EffectBackground:
		return "background"
	case EffectForeground:
		return "foreground"
	case EffectSwapped:
		return "swapped"
	default:
		return "none"
	}
}

// Config wires an editor to its collaborators.
type Config struct {
	Pool       *glyph.Pool
	Typography *glyph.Typography
	Persister  Persister
	Rand       rng.Source
	Options    Options
	Logger     *log.Logger
}

type tap struct {
	index int
	at    time.Time
	valid bool
}

// Editor owns one grid. It is not safe for concurrent use.
type Editor struct {
	pool    *glyph.Pool
	typo    *glyph.Typography
	persist Persister
	rand    rng.Source
	opts    Options
	logger  *log.Logger

	selection      palette.Selection
	complexity     int
	grid           grid.Grid
	aux            grid.Aux
	shouldGenerate bool

	armed   grid.Slot
	lastTap tap
}

// New creates an editor with an empty grid. Call Load to resume stored state.
func New(cfg Config) *Editor {
	e := &Editor{
		pool:       cfg.Pool,
		typo:       cfg.Typography,
		persist:    cfg.Persister,
		rand:       cfg.Rand,
		opts:       cfg.Options,
		logger:     cfg.Logger,
		complexity: compose.MinComplexity,
	}
	if e.pool == nil {
		e.pool = glyph.Fallback()
	}
	if e.typo == nil {
		e.typo = glyph.DefaultTypography()
	}
	if e.persist == nil {
		e.persist = NewMemoryPersister()
	}
	if e.rand == nil {
		e.rand = rng.New(uint64(time.Now().UnixNano()))
	}
	if e.opts.DoubleTapWindow <= 0 {
		e.opts.DoubleTapWindow = DefaultDoubleTapWindow
	}
	if e.opts.Graphic == (glyph.Range{}) {
		e.opts.Graphic = glyph.DefaultGraphicRange
	}
	if e.logger == nil {
		e.logger = log.Default()
	}
	return e
}

// Load restores stored state. Invalid state is discarded, the store is
// cleared and ErrInvalidPersistedState is returned with the editor left
// empty and usable.
func (e *Editor) Load() error {
	snap, ok, err := e.persist.Load()
	if err == nil && ok {
		err = snap.Validate()
	}
	if err != nil {
		e.logger.Warn("discarding stored state", "error", err)
		e.clearState()
		e.selection = palette.Selection{}
		if cerr := e.persist.Clear(); cerr != nil {
			e.logger.Error("cannot clear stored state", "error", cerr)
		}
		if !errors.Is(err, ErrInvalidPersistedState) {
			err = errors.Join(ErrInvalidPersistedState, err)
		}
		return err
	}
	if !ok {
		return nil
	}

	e.selection = palette.NewSelection(snap.Selection...)
	e.grid = snap.Grid
	e.aux = snap.Aux
	e.shouldGenerate = snap.ShouldGenerate
	e.complexity = compose.MinComplexity
	if snap.Complexity != 0 {
		e.complexity = snap.Complexity
	}
	return nil
}

// Grid returns a copy of the current grid.
func (e *Editor) Grid() grid.Grid { return e.grid }

// Aux returns the generation parameters of the current grid.
func (e *Editor) Aux() grid.Aux { return e.aux }

// Selection returns the selected colours.
func (e *Editor) Selection() palette.Selection { return e.selection }

// Complexity returns the complexity the next generation uses.
func (e *Editor) Complexity() int { return e.complexity }

// Pool returns the glyph pool in use.
func (e *Editor) Pool() *glyph.Pool { return e.pool }

// Typography returns the typographic lookup table.
func (e *Editor) Typography() *glyph.Typography { return e.typo }

// SetPool swaps in a newly loaded glyph pool.
func (e *Editor) SetPool(p *glyph.Pool) {
	if p != nil {
		e.pool = p
	}
}

// Generated reports whether the grid holds a generated mosaic.
func (e *Editor) Generated() bool { return !e.grid.Empty() }

// PendingGeneration reports whether colours were chosen but nothing has
// been generated from them yet.
func (e *Editor) PendingGeneration() bool { return e.shouldGenerate && e.selection.Ready() }

// SetSelection replaces the colour selection and returns to the
// pre-generation state. The next Generate places the short word.
func (e *Editor) SetSelection(sel palette.Selection) {
	e.selection = sel
	e.clearState()
	e.shouldGenerate = true
	e.save()
}

// Generate composes a fresh grid from the current selection and complexity.
func (e *Editor) Generate() error {
	res, err := compose.Generate(compose.Request{
		Selection:     e.selection,
		Complexity:    e.complexity,
		Pool:          e.pool,
		Typography:    e.typo,
		Graphic:       e.opts.Graphic,
		Initial:       e.shouldGenerate,
		ReserveGutter: e.opts.ReserveGutter,
	}, e.rand)
	if err != nil {
		return err
	}
	e.grid = res.Grid
	e.aux = res.Aux
	e.shouldGenerate = false
	e.armed = grid.None
	e.save()
	return nil
}

// SetComplexity changes the complexity and regenerates when a grid exists.
func (e *Editor) SetComplexity(c int) error {
	if c < compose.MinComplexity || c > compose.MaxComplexity {
		return compose.ErrInvalidComplexity
	}
	e.complexity = c
	if e.Generated() {
		return e.Generate()
	}
	e.save()
	return nil
}

// SelectGlyph arms id for the next click. Ids missing from the pool are
// ignored and reported as false. EraseID is always accepted.
func (e *Editor) SelectGlyph(id int) bool {
	if id != glyph.EraseID && !e.pool.Has(id) {
		return false
	}
	e.armed = grid.Some(id)
	return true
}

// Armed returns the armed glyph, if any.
func (e *Editor) Armed() (int, bool) { return e.armed.Get() }

// Disarm drops the armed glyph.
func (e *Editor) Disarm() { e.armed = grid.None }

// Reset clears the grid and its parameters, keeping the colour selection.
func (e *Editor) Reset() {
	e.clearState()
	e.shouldGenerate = e.selection.Ready()
	e.save()
}

// Restart forgets everything, including the colour selection, and clears
// the store.
func (e *Editor) Restart() error {
	e.clearState()
	e.selection = palette.Selection{}
	e.complexity = compose.MinComplexity
	e.shouldGenerate = false
	return e.persist.Clear()
}

// Snapshot returns the state as it would be persisted.
func (e *Editor) Snapshot() Snapshot {
	return Snapshot{
		Selection:      e.selection.Indices(),
		Complexity:     e.complexity,
		Grid:           e.grid,
		Aux:            e.aux,
		ShouldGenerate: e.shouldGenerate,
	}
}

func (e *Editor) clearState() {
	e.grid.Clear()
	e.aux = grid.Aux{}
	e.armed = grid.None
	e.lastTap = tap{}
	e.shouldGenerate = false
}

func (e *Editor) save() {
	if err := e.persist.Save(e.Snapshot()); err != nil {
		e.logger.Error("cannot persist editor state", "error", err)
	}
}
