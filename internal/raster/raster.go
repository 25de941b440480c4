// Package raster turns a grid into pixels: an RGBA image, a PNG, an SVG
// document or a compact text dump.
package raster

import (
	"image"

	xdraw "golang.org/x/image/draw"

	"github.com/vovakirdan/glyphgrid/internal/glyph"
	"github.com/vovakirdan/glyphgrid/internal/grid"
	"github.com/vovakirdan/glyphgrid/internal/palette"
)

// DefaultCellSize is the on-screen cell size in pixels.
const DefaultCellSize = 64

// Render paints g into a new image of 9*cellSize pixels square.
//
// Each cell is filled with its background colour, or the backdrop when
// empty. Foreground glyphs are drawn as an 8x8 grid of cellSize/8 pixel
// squares centred in the cell, lit bits only. A foreground whose glyph is
// not in the pool, or whose colour is not in the palette, is skipped.
func Render(g *grid.Grid, pool *glyph.Pool, pal palette.Palette, cellSize int) *image.RGBA {
	if cellSize < 1 {
		cellSize = DefaultCellSize
	}
	size := grid.Dim * cellSize
	img := image.NewRGBA(image.Rect(0, 0, size, size))
	fill(img, img.Bounds(), palette.Backdrop)

	for i := 0; i < grid.Cells; i++ {
		forEachPixel(g, pool, pal, cellSize, i, func(r image.Rectangle, c palette.RGB) {
			fill(img, r, c)
		})
	}
	return img
}

// forEachPixel calls paint for the background square of cell i and then for
// every lit foreground sub-pixel.
func forEachPixel(g *grid.Grid, pool *glyph.Pool, pal palette.Palette, cellSize, i int, paint func(image.Rectangle, palette.RGB)) {
	row, col := grid.RowCol(i)
	x0, y0 := col*cellSize, row*cellSize
	cell := g.At(i)

	bg, ok := pal.Lookup(cell.BgColor.Value())
	if !cell.BgGlyph.Valid() || !ok {
		return
	}
	paint(image.Rect(x0, y0, x0+cellSize, y0+cellSize), bg)

	if !cell.HasForeground() {
		return
	}
	bitmap, ok := pool.Get(cell.FgGlyph.Value())
	if !ok {
		return
	}
	fg, ok := pal.Lookup(cell.FgColor.Value())
	if !ok {
		return
	}

	px := cellSize / glyph.Size
	if px == 0 {
		return
	}
	offset := (cellSize - px*glyph.Size) / 2
	for gy := 0; gy < glyph.Size; gy++ {
		for gx := 0; gx < glyph.Size; gx++ {
			if !bitmap.On(gx, gy) {
				continue
			}
			x := x0 + offset + gx*px
			y := y0 + offset + gy*px
			paint(image.Rect(x, y, x+px, y+px), fg)
		}
	}
}

func fill(img *image.RGBA, r image.Rectangle, c palette.RGB) {
	xdraw.Draw(img, r, image.NewUniform(c.Color()), image.Point{}, xdraw.Src)
}
