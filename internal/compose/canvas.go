package compose

import (
	"github.com/vovakirdan/glyphgrid/internal/glyph"
	"github.com/vovakirdan/glyphgrid/internal/grid"
	"github.com/vovakirdan/glyphgrid/internal/rng"
)

// Role is the structural purpose of a cell's foreground.
type Role int

const (
	RoleGraphic Role = iota
	RoleTypographic
	RoleFrame
)

// Mark is the foreground a layout assigned to one cell.
type Mark struct {
	Glyph int
	Role  Role
}

// Canvas is the grid under construction. Layouts write the interior,
// the frame pass writes the outer ring.
type Canvas struct {
	Rand       rng.Source
	Typography *glyph.Typography
	// Graphic holds the graphic glyph ids chosen for this generation.
	Graphic []int
	Cells   [grid.Cells]Mark
	Aux     grid.Aux
}

// RandomGraphic returns one of the chosen graphic glyphs.
func (c *Canvas) RandomGraphic() int {
	return rng.Pick(c.Rand, c.Graphic)
}

// RandomVariation returns a typographic variation index.
func (c *Canvas) RandomVariation() int {
	return c.Rand.Intn(c.Typography.Variations())
}

// PutGraphic places a graphic glyph.
func (c *Canvas) PutGraphic(row, col, id int) {
	c.Cells[grid.Index(row, col)] = Mark{Glyph: id, Role: RoleGraphic}
}

// PutLetter places a typographic glyph.
func (c *Canvas) PutLetter(row, col, id int) {
	c.Cells[grid.Index(row, col)] = Mark{Glyph: id, Role: RoleTypographic}
}

// putFrame places a frame glyph.
func (c *Canvas) putFrame(row, col, id int) {
	c.Cells[grid.Index(row, col)] = Mark{Glyph: id, Role: RoleFrame}
}

// EachInterior calls fn for rows 1..7 and columns 1..7 in row-major order.
func (c *Canvas) EachInterior(fn func(row, col int)) {
	for row := 1; row < grid.Dim-1; row++ {
		for col := 1; col < grid.Dim-1; col++ {
			fn(row, col)
		}
	}
}

// cache hands out one random graphic glyph per key.
type cache struct {
	c    *Canvas
	byID map[int]int
}

func newCache(c *Canvas) *cache {
	return &cache{c: c, byID: make(map[int]int)}
}

func (k *cache) get(key int) int {
	if id, ok := k.byID[key]; ok {
		return id
	}
	id := k.c.RandomGraphic()
	k.byID[key] = id
	return id
}

// RandomGraphicFrom returns a random entry of ids.
func (c *Canvas) RandomGraphicFrom(ids []int) int {
	return rng.Pick(c.Rand, ids)
}
