// Package compose generates glyph mosaics. The number of selected colours
// picks a colour role scheme and the complexity picks a spatial pattern; the
// two are independent. All randomness comes from the injected rng.Source.
package compose

import (
	"errors"
	"fmt"

	"github.com/vovakirdan/glyphgrid/internal/glyph"
	"github.com/vovakirdan/glyphgrid/internal/grid"
	"github.com/vovakirdan/glyphgrid/internal/palette"
	"github.com/vovakirdan/glyphgrid/internal/rng"
)

const (
	MinComplexity = 1
	MaxComplexity = 10
)

var (
	// ErrInsufficientColors is returned when fewer than two colours are selected.
	ErrInsufficientColors = errors.New("compose: at least 2 colours must be selected")
	// ErrInvalidComplexity is returned for complexity outside 1..10.
	ErrInvalidComplexity = errors.New("compose: complexity out of range")
)

// Request describes one generation.
type Request struct {
	Selection  palette.Selection
	Complexity int
	Pool       *glyph.Pool
	Typography *glyph.Typography
	// Graphic is the id range graphic glyphs are drawn from.
	Graphic glyph.Range
	// Initial forces the single four-letter word placement regardless of
	// complexity. Set for the first generation after colours are picked.
	Initial bool
	// ReserveGutter paints column 2 of the interior with edge glyphs in the
	// frame colour instead of the pattern.
	ReserveGutter bool
}

// Result is a generated grid and the parameters behind it.
type Result struct {
	Grid grid.Grid
	Aux  grid.Aux
}

// Generate builds a grid for req.
func Generate(req Request, src rng.Source) (Result, error) {
	if req.Selection.Len() < palette.MinSelection {
		return Result{}, ErrInsufficientColors
	}
	if req.Complexity < MinComplexity || req.Complexity > MaxComplexity {
		return Result{}, fmt.Errorf("%w: %d", ErrInvalidComplexity, req.Complexity)
	}
	typo := req.Typography
	if typo == nil {
		typo = glyph.DefaultTypography()
	}
	graphicRange := req.Graphic
	if graphicRange == (glyph.Range{}) {
		graphicRange = glyph.DefaultGraphicRange
	}

	c := &Canvas{
		Rand:       src,
		Typography: typo,
		Graphic:    chooseGlyphs(req.Pool, graphicRange, req.Complexity, src),
	}
	c.Aux.Complexity = req.Complexity

	kind := PatternKind(req.Complexity)
	if req.Initial {
		kind = PatternBase
	}
	LayoutFor(kind).Lay(c)

	paintFrame(c, req.Complexity)
	if req.ReserveGutter {
		reserveGutter(c)
	}

	scheme := NewScheme(req.Selection.Refs(), src)

	var res Result
	for i := 0; i < grid.Cells; i++ {
		row, col := grid.RowCol(i)
		m := c.Cells[i]
		bg, fg := scheme.Colors(row, col, m.Role)
		res.Grid.Set(i, grid.Cell{
			BgGlyph: grid.Some(glyph.BlockID),
			BgColor: grid.Some(bg),
			FgGlyph: grid.Some(m.Glyph),
			FgColor: grid.Some(fg),
		})
	}
	res.Aux = c.Aux
	return res, nil
}

// GlyphCount returns how many distinct graphic glyphs a complexity uses.
func GlyphCount(complexity int) int {
	switch complexity {
	case 1:
		return 1
	case 2:
		return 2
	case 3:
		return 4
	default:
		return min(complexity, 10)
	}
}

// chooseGlyphs picks the graphic glyph set for one generation. The first
// entry becomes the frame corner glyph.
func chooseGlyphs(pool *glyph.Pool, r glyph.Range, complexity int, src rng.Source) []int {
	var ids []int
	if pool != nil {
		ids = pool.Graphic(r)
	} else {
		for id := r.Min; id <= r.Max; id++ {
			ids = append(ids, id)
		}
	}
	if len(ids) == 0 {
		return []int{glyph.BlockID}
	}
	ids = rng.Shuffled(src, ids)
	return ids[:min(GlyphCount(complexity), len(ids))]
}

// repeatLast returns n entries of ids, repeating the last one when ids is
// too short.
func repeatLast(ids []int, n int) []int {
	out := make([]int, n)
	for i := range out {
		out[i] = ids[min(i, len(ids)-1)]
	}
	return out
}
