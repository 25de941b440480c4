// Package grid is the 9x9 glyph mosaic: four parallel 81-cell arrays for
// background/foreground glyph and colour, plus the generation parameters
// that produced them.
package grid

import (
	"errors"
	"fmt"
	"sort"

	"github.com/vovakirdan/glyphgrid/internal/glyph"
	"github.com/vovakirdan/glyphgrid/internal/palette"
)

const (
	// Dim is the grid edge length in cells.
	Dim = 9
	// Cells is the number of cells.
	Cells = Dim * Dim
	// GutterCol is the column whose frame-row cells follow the frame rule.
	GutterCol = 2
)

// ErrInvalid is returned by Validate for grids breaking an occupancy rule.
var ErrInvalid = errors.New("grid: invalid")

// Cell is one cell's view across the four arrays.
type Cell struct {
	BgGlyph Slot
	FgGlyph Slot
	BgColor Slot
	FgColor Slot
}

// HasForeground reports whether the cell paints a visible foreground glyph.
func (c Cell) HasForeground() bool {
	id, ok := c.FgGlyph.Get()
	return ok && id != glyph.EraseID && c.FgColor.Valid()
}

// Grid holds the four parallel arrays, indexed row-major: i = row*9 + col.
type Grid struct {
	BgGlyph [Cells]Slot `json:"bgGlyphs"`
	FgGlyph [Cells]Slot `json:"fgGlyphs"`
	BgColor [Cells]Slot `json:"bgColors"`
	FgColor [Cells]Slot `json:"fgColors"`
}

// Index converts a row/column pair to a flat index.
func Index(row, col int) int {
	return row*Dim + col
}

// RowCol converts a flat index to row and column.
func RowCol(i int) (row, col int) {
	return i / Dim, i % Dim
}

// InBounds reports whether i addresses a cell.
func InBounds(i int) bool {
	return i >= 0 && i < Cells
}

// IsFrame reports whether (row, col) lies on the outer ring.
func IsFrame(row, col int) bool {
	return row == 0 || row == Dim-1 || col == 0 || col == Dim-1
}

// IsCorner reports whether (row, col) is one of the four corners.
func IsCorner(row, col int) bool {
	return (row == 0 || row == Dim-1) && (col == 0 || col == Dim-1)
}

// IsGutter reports whether (row, col) is the gutter column on a frame row.
func IsGutter(row, col int) bool {
	return col == GutterCol && (row == 0 || row == Dim-1)
}

// IsInterior reports whether (row, col) is inside the frame.
func IsInterior(row, col int) bool {
	return !IsFrame(row, col)
}

// At returns the cell at i.
func (g Grid) At(i int) Cell {
	return Cell{
		BgGlyph: g.BgGlyph[i],
		FgGlyph: g.FgGlyph[i],
		BgColor: g.BgColor[i],
		FgColor: g.FgColor[i],
	}
}

// Set writes the cell at i.
func (g *Grid) Set(i int, c Cell) {
	g.BgGlyph[i] = c.BgGlyph
	g.FgGlyph[i] = c.FgGlyph
	g.BgColor[i] = c.BgColor
	g.FgColor[i] = c.FgColor
}

// Occupied reports whether cell i has a background.
func (g Grid) Occupied(i int) bool {
	return g.BgGlyph[i].Valid()
}

// Complete reports whether every cell is occupied.
func (g Grid) Complete() bool {
	for i := range g.BgGlyph {
		if !g.BgGlyph[i].Valid() {
			return false
		}
	}
	return true
}

// Empty reports whether no cell is occupied.
func (g Grid) Empty() bool {
	for i := range g.BgGlyph {
		if g.BgGlyph[i].Valid() {
			return false
		}
	}
	return true
}

// Clear resets every cell to null.
func (g *Grid) Clear() {
	*g = Grid{}
}

// UsedColors returns the distinct colour refs across both colour arrays,
// ascending.
func (g Grid) UsedColors() []palette.Ref {
	seen := make(map[int]bool)
	var refs []palette.Ref
	for i := 0; i < Cells; i++ {
		for _, s := range [2]Slot{g.BgColor[i], g.FgColor[i]} {
			if v, ok := s.Get(); ok && !seen[v] {
				seen[v] = true
				refs = append(refs, v)
			}
		}
	}
	sort.Ints(refs)
	return refs
}

// Validate checks the occupancy invariants and colour ranges.
func (g Grid) Validate() error {
	for i := 0; i < Cells; i++ {
		c := g.At(i)
		row, col := RowCol(i)

		for _, s := range [2]Slot{c.BgColor, c.FgColor} {
			if v, ok := s.Get(); ok && (v < 1 || v > palette.Size) {
				return fmt.Errorf("%w: cell (%d,%d) colour %d out of range", ErrInvalid, row, col, v)
			}
		}
		if id, ok := c.BgGlyph.Get(); ok {
			if id < glyph.BlockID {
				return fmt.Errorf("%w: cell (%d,%d) background glyph %d", ErrInvalid, row, col, id)
			}
			if !c.BgColor.Valid() {
				return fmt.Errorf("%w: cell (%d,%d) background glyph without colour", ErrInvalid, row, col)
			}
		}
		if id, ok := c.FgGlyph.Get(); ok {
			if id < 0 {
				return fmt.Errorf("%w: cell (%d,%d) foreground glyph %d", ErrInvalid, row, col, id)
			}
			if !c.BgGlyph.Valid() {
				return fmt.Errorf("%w: cell (%d,%d) foreground without background", ErrInvalid, row, col)
			}
			if id != glyph.EraseID && !c.FgColor.Valid() {
				return fmt.Errorf("%w: cell (%d,%d) foreground glyph without colour", ErrInvalid, row, col)
			}
		}
	}
	return nil
}
