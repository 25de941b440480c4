package raster

import (
	"strconv"
	"strings"

	"github.com/vovakirdan/glyphgrid/internal/glyph"
	"github.com/vovakirdan/glyphgrid/internal/grid"
)

// RenderCompact returns one character per cell, one line per row:
// '.' empty, '#' background only, the letter for typographic glyphs and the
// base-36 id for anything else.
func RenderCompact(g *grid.Grid, typo *glyph.Typography) string {
	var sb strings.Builder
	for row := 0; row < grid.Dim; row++ {
		for col := 0; col < grid.Dim; col++ {
			sb.WriteByte(cellChar(g.At(grid.Index(row, col)), typo))
		}
		sb.WriteByte('\n')
	}
	return sb.String()
}

func cellChar(c grid.Cell, typo *glyph.Typography) byte {
	if !c.BgGlyph.Valid() {
		return '.'
	}
	id, ok := c.FgGlyph.Get()
	if !ok || id == glyph.EraseID {
		return '#'
	}
	if typo != nil {
		if l, ok := typo.Lookup(id); ok {
			return glyph.Word[l.Position]
		}
	}
	if s := strconv.FormatInt(int64(id), 36); len(s) == 1 {
		return s[0]
	}
	return '?'
}

// RenderColors returns the background and foreground colour refs of every
// cell as "bg/fg" pairs, '-' for null.
func RenderColors(g *grid.Grid) string {
	var sb strings.Builder
	for row := 0; row < grid.Dim; row++ {
		for col := 0; col < grid.Dim; col++ {
			if col > 0 {
				sb.WriteByte(' ')
			}
			i := grid.Index(row, col)
			sb.WriteString(slotChar(g.BgColor[i]))
			sb.WriteByte('/')
			sb.WriteString(slotChar(g.FgColor[i]))
		}
		sb.WriteByte('\n')
	}
	return sb.String()
}

func slotChar(s grid.Slot) string {
	if !s.Valid() {
		return "-"
	}
	return s.String()
}
