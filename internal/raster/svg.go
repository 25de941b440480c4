package raster

import (
	"fmt"
	"image"
	"io"

	svg "github.com/ajstarks/svgo"

	"github.com/vovakirdan/glyphgrid/internal/glyph"
	"github.com/vovakirdan/glyphgrid/internal/grid"
	"github.com/vovakirdan/glyphgrid/internal/palette"
)

// errWriter remembers the first write error.
type errWriter struct {
	w   io.Writer
	err error
}

func (e *errWriter) Write(p []byte) (int, error) {
	if e.err != nil {
		return 0, e.err
	}
	n, err := e.w.Write(p)
	e.err = err
	return n, err
}

// WriteSVG writes g as an SVG document with one rect per background and
// per lit glyph pixel. Geometry matches Render.
func WriteSVG(w io.Writer, g *grid.Grid, pool *glyph.Pool, pal palette.Palette, cellSize int) error {
	if cellSize < 1 {
		cellSize = DefaultCellSize
	}
	size := grid.Dim * cellSize
	ew := &errWriter{w: w}

	canvas := svg.New(ew)
	canvas.Start(size, size, `shape-rendering="crispEdges"`)
	rect(canvas, image.Rect(0, 0, size, size), palette.Backdrop)
	for i := 0; i < grid.Cells; i++ {
		forEachPixel(g, pool, pal, cellSize, i, func(r image.Rectangle, c palette.RGB) {
			rect(canvas, r, c)
		})
	}
	canvas.End()

	if ew.err != nil {
		return fmt.Errorf("raster: cannot write svg: %w", ew.err)
	}
	return nil
}

func rect(canvas *svg.SVG, r image.Rectangle, c palette.RGB) {
	canvas.Rect(r.Min.X, r.Min.Y, r.Dx(), r.Dy(), canvas.RGB(int(c.R), int(c.G), int(c.B)))
}
