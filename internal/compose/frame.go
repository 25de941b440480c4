package compose

import (
	"github.com/vovakirdan/glyphgrid/internal/grid"
)

// paintFrame writes the outer ring. Complexity 9 gives each side its own
// glyph; 5 and 8 split the ring into an upper and a lower half; everything
// else puts the corner glyph on the corners and random edge glyphs between.
func paintFrame(c *Canvas, complexity int) {
	corner := c.Graphic[0]
	edges := c.Graphic[1:]
	if len(edges) == 0 {
		edges = []int{corner}
	}

	last := grid.Dim - 1
	for i := 0; i < grid.Cells; i++ {
		row, col := grid.RowCol(i)
		if !grid.IsFrame(row, col) {
			continue
		}

		var id int
		switch complexity {
		case 9:
			sides := repeatLast(edges, 4)
			switch {
			case row == 0:
				id = sides[0]
			case col == last:
				id = sides[1]
			case row == last:
				id = sides[2]
			default:
				id = sides[3]
			}
		case 5, 8:
			halves := repeatLast(edges, 2)
			if row <= 3 {
				id = halves[0]
			} else {
				id = halves[1]
			}
		default:
			if grid.IsCorner(row, col) {
				id = corner
			} else {
				id = c.RandomGraphicFrom(edges)
			}
		}
		c.putFrame(row, col, id)
	}
}

// reserveGutter turns column 2 of the interior into frame cells.
func reserveGutter(c *Canvas) {
	edges := c.Graphic[1:]
	if len(edges) == 0 {
		edges = c.Graphic
	}
	for row := 1; row < grid.Dim-1; row++ {
		c.putFrame(row, grid.GutterCol, c.RandomGraphicFrom(edges))
	}
}
