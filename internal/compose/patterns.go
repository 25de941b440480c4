package compose

import (
	"fmt"

	"github.com/vovakirdan/glyphgrid/internal/glyph"
	"github.com/vovakirdan/glyphgrid/internal/grid"
	"github.com/vovakirdan/glyphgrid/internal/rng"
)

// PatternKind selects the interior layout. Its value equals the complexity
// level that selects it.
type PatternKind int

const (
	PatternBase         PatternKind = iota + 1 // four-letter word, random orientation
	PatternRowWord                             // seven-letter word along one row
	PatternColumnWord                          // seven-letter word down one column
	PatternDiamond                             // word on an X, symmetric block fill
	PatternColumnBlocks                        // column word, 2x2 graphic blocks
	PatternBanded                              // alternating variations by row
	PatternRowBase                             // four-letter word, one glyph per row
	PatternTwoRows                             // two word rows among 2, 4, 6
	PatternColumns                             // word in columns 1, 3, 5, 7
	PatternScattered                           // one letter per row, 3x3 blocks
)

var patternNames = map[PatternKind]string{
	PatternBase:         "base",
	PatternRowWord:      "row-word",
	PatternColumnWord:   "column-word",
	PatternDiamond:      "diamond",
	PatternColumnBlocks: "column-blocks",
	PatternBanded:       "banded",
	PatternRowBase:      "row-base",
	PatternTwoRows:      "two-rows",
	PatternColumns:      "columns",
	PatternScattered:    "scattered",
}

// String returns the pattern name.
func (k PatternKind) String() string {
	if name, ok := patternNames[k]; ok {
		return name
	}
	return fmt.Sprintf("pattern(%d)", int(k))
}

// Layout fills the interior (rows and columns 1..7) of a canvas.
type Layout interface {
	Lay(c *Canvas)
}

// LayoutFunc adapts a function to Layout.
type LayoutFunc func(c *Canvas)

// Lay implements Layout.
func (f LayoutFunc) Lay(c *Canvas) { f(c) }

var layouts = map[PatternKind]Layout{
	PatternBase:         LayoutFunc(layBase),
	PatternRowWord:      LayoutFunc(layRowWord),
	PatternColumnWord:   LayoutFunc(layColumnWord),
	PatternDiamond:      LayoutFunc(layDiamond),
	PatternColumnBlocks: LayoutFunc(layColumnBlocks),
	PatternBanded:       LayoutFunc(layBanded),
	PatternRowBase:      LayoutFunc(layRowBase),
	PatternTwoRows:      LayoutFunc(layTwoRows),
	PatternColumns:      LayoutFunc(layColumns),
	PatternScattered:    LayoutFunc(layScattered),
}

// LayoutFor returns the layout for kind. Unknown kinds fall back to
// PatternBase.
func LayoutFor(kind PatternKind) Layout {
	if l, ok := layouts[kind]; ok {
		return l
	}
	return layouts[PatternBase]
}

func layBase(c *Canvas) {
	v := c.RandomVariation()
	c.Aux.BaseVariation = grid.Some(v)
	c.Aux.Vertical = c.Rand.Intn(2) == 0

	var row, col int
	if c.Aux.Vertical {
		col = rng.Between(c.Rand, 1, 7)
		row = rng.Between(c.Rand, 1, 3)
	} else {
		row = rng.Between(c.Rand, 1, 7)
		col = rng.Between(c.Rand, 1, 3)
	}
	c.Aux.TypoRow = grid.Some(row)
	c.Aux.TypoCol = grid.Some(col)

	c.EachInterior(func(r, k int) {
		c.PutGraphic(r, k, c.RandomGraphic())
	})
	for i, id := range c.Typography.BaseWord(v) {
		if c.Aux.Vertical {
			c.PutLetter(row+i, col, id)
		} else {
			c.PutLetter(row, col+i, id)
		}
	}
}

func layRowWord(c *Canvas) {
	v := c.RandomVariation()
	row := rng.Between(c.Rand, 1, 7)
	c.Aux.Variation1 = grid.Some(v)
	c.Aux.TypoRow = grid.Some(row)

	c.EachInterior(func(r, k int) {
		if r == row {
			c.PutLetter(r, k, c.Typography.Letter(v, k-1))
			return
		}
		c.PutGraphic(r, k, c.RandomGraphic())
	})
}

func layColumnWord(c *Canvas) {
	v := c.RandomVariation()
	col := rng.Between(c.Rand, 1, 7)
	c.Aux.Variation1 = grid.Some(v)
	c.Aux.TypoCol = grid.Some(col)
	c.Aux.Vertical = true

	c.EachInterior(func(r, k int) {
		if k == col {
			c.PutLetter(r, k, c.Typography.Letter(v, r-1))
			return
		}
		c.PutGraphic(r, k, c.RandomGraphic())
	})
}

// onDiamond reports whether (row, col) lies on the interior diagonals.
func onDiamond(row, col int) bool {
	return col == row || col == grid.Dim-1-row
}

func layDiamond(c *Canvas) {
	v := c.RandomVariation()
	c.Aux.Variation1 = grid.Some(v)

	shuffled := repeatLast(rng.Shuffled(c.Rand, c.Graphic), 4)
	fill := c.Rand.Intn(4)

	c.EachInterior(func(r, k int) {
		if onDiamond(r, k) {
			c.PutLetter(r, k, c.Typography.Letter(v, r-1))
			return
		}
		var id int
		switch fill {
		case 0:
			id = shuffled[0]
		case 1:
			switch {
			case r <= 3 && k <= 4:
				id = shuffled[0]
			case r >= 5 && k <= 4:
				id = shuffled[1]
			case k < 4:
				id = shuffled[2]
			default:
				id = shuffled[3]
			}
		case 2:
			if r == 4 {
				id = shuffled[1]
			} else {
				id = shuffled[0]
			}
		default:
			if k <= 4 {
				id = shuffled[0]
			} else {
				id = shuffled[1]
			}
		}
		c.PutGraphic(r, k, id)
	})
}

func layColumnBlocks(c *Canvas) {
	v := c.RandomVariation()
	col := rng.Between(c.Rand, 1, 7)
	c.Aux.Variation1 = grid.Some(v)
	c.Aux.TypoCol = grid.Some(col)
	c.Aux.Vertical = true

	blocks := newCache(c)
	c.EachInterior(func(r, k int) {
		if k == col {
			c.PutLetter(r, k, c.Typography.Letter(v, r-1))
			return
		}
		c.PutGraphic(r, k, blocks.get(grid.Index(blockStart(r, 2), blockStart(k, 2))))
	})
}

func layBanded(c *Canvas) {
	v1 := c.RandomVariation()
	v2 := c.RandomVariation()
	c.Aux.Variation1 = grid.Some(v1)
	c.Aux.Variation2 = grid.Some(v2)

	c.EachInterior(func(r, k int) {
		v := v1
		if r%2 == 0 {
			v = v2
		}
		c.PutLetter(r, k, c.Typography.Letter(v, r-1))
	})
}

func layRowBase(c *Canvas) {
	v := c.RandomVariation()
	row := rng.Between(c.Rand, 1, 7)
	c.Aux.BaseVariation = grid.Some(v)
	c.Aux.TypoRow = grid.Some(row)

	rows := newCache(c)
	c.EachInterior(func(r, k int) {
		if r == row && k <= len(glyph.BaseWord) {
			c.PutLetter(r, k, c.Typography.Base(v, k-1))
			return
		}
		c.PutGraphic(r, k, rows.get(r))
	})
}

func layTwoRows(c *Canvas) {
	base := c.RandomVariation()
	word := c.RandomVariation()
	picked := rng.Shuffled(c.Rand, []int{2, 4, 6})
	c.Aux.BaseVariation = grid.Some(base)
	c.Aux.Variation1 = grid.Some(word)
	c.Aux.TypoRow = grid.Some(picked[0])
	c.Aux.TypoRow2 = grid.Some(picked[1])

	rows := newCache(c)
	c.EachInterior(func(r, k int) {
		switch {
		case r == picked[0] && k <= len(glyph.BaseWord):
			c.PutLetter(r, k, c.Typography.Base(base, k-1))
		case r == picked[1]:
			c.PutLetter(r, k, c.Typography.Letter(word, k-1))
		default:
			c.PutGraphic(r, k, rows.get(r))
		}
	})
}

func layColumns(c *Canvas) {
	v := c.RandomVariation()
	c.Aux.Variation1 = grid.Some(v)

	cols := newCache(c)
	c.EachInterior(func(r, k int) {
		if k%2 == 1 {
			c.PutLetter(r, k, c.Typography.Letter(v, r-1))
			return
		}
		c.PutGraphic(r, k, cols.get(k))
	})
}

func layScattered(c *Canvas) {
	v := c.RandomVariation()
	c.Aux.Variation1 = grid.Some(v)
	for i := range c.Aux.TypoCols {
		c.Aux.TypoCols[i] = grid.Some(rng.Between(c.Rand, 1, 7))
	}

	blocks := newCache(c)
	c.EachInterior(func(r, k int) {
		if c.Aux.TypoCols[r-1].Is(k) {
			c.PutLetter(r, k, c.Typography.Letter(v, r-1))
			return
		}
		c.PutGraphic(r, k, blocks.get(grid.Index(blockStart(r, 3), blockStart(k, 3))))
	})
}

// blockStart returns the first interior index of the size-wide block
// containing i.
func blockStart(i, size int) int {
	return (i-1)/size*size + 1
}
