// Package deploy builds the payload handed to on-chain storage: the four
// cell arrays with colours remapped to a dense 1..K range, plus the flat
// RGB list those indices point into.
package deploy

import (
	"errors"
	"fmt"

	"github.com/vovakirdan/glyphgrid/internal/grid"
	"github.com/vovakirdan/glyphgrid/internal/palette"
)

// ErrInvalidCanvas is returned when the grid is not a complete, valid
// mosaic.
var ErrInvalidCanvas = errors.New("deploy: invalid canvas")

// Payload is the deploy wire format. Null foreground glyphs and colours
// are encoded as 0.
type Payload struct {
	BgGlyphs []int `json:"bgGlyphs"`
	FgGlyphs []int `json:"fgGlyphs"`
	BgColors []int `json:"bgColors"`
	FgColors []int `json:"fgColors"`
	// Colors is the flat r,g,b list; dense index k covers entries 3(k-1)..3(k-1)+2.
	Colors []int `json:"colors"`
}

// K returns the number of distinct colours in the payload.
func (p Payload) K() int {
	return len(p.Colors) / 3
}

// Build validates g and produces its payload. Cell order is preserved.
func Build(g *grid.Grid, pal palette.Palette) (Payload, error) {
	if !g.Complete() {
		return Payload{}, fmt.Errorf("%w: grid is not generated", ErrInvalidCanvas)
	}
	if err := g.Validate(); err != nil {
		return Payload{}, fmt.Errorf("%w: %w", ErrInvalidCanvas, err)
	}

	used := g.UsedColors()
	dense := make(map[palette.Ref]int, len(used))
	p := Payload{
		BgGlyphs: make([]int, grid.Cells),
		FgGlyphs: make([]int, grid.Cells),
		BgColors: make([]int, grid.Cells),
		FgColors: make([]int, grid.Cells),
		Colors:   make([]int, 0, 3*len(used)),
	}
	for k, ref := range used {
		rgb, ok := pal.Lookup(ref)
		if !ok {
			return Payload{}, fmt.Errorf("%w: colour %d not in palette", ErrInvalidCanvas, ref)
		}
		dense[ref] = k + 1
		p.Colors = append(p.Colors, int(rgb.R), int(rgb.G), int(rgb.B))
	}

	for i := 0; i < grid.Cells; i++ {
		p.BgGlyphs[i] = g.BgGlyph[i].Value()
		p.FgGlyphs[i] = g.FgGlyph[i].Value()
		p.BgColors[i] = dense[g.BgColor[i].Value()]
		p.FgColors[i] = dense[g.FgColor[i].Value()]
	}
	return p, nil
}
