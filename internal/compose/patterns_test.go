package compose

import (
	"testing"

	"github.com/vovakirdan/glyphgrid/internal/glyph"
	"github.com/vovakirdan/glyphgrid/internal/grid"
	"github.com/vovakirdan/glyphgrid/internal/rng"
)

func newCanvas(seed uint64) *Canvas {
	return &Canvas{
		Rand:       rng.New(seed),
		Typography: glyph.DefaultTypography(),
		Graphic:    []int{3, 4, 5, 6, 7, 8, 9, 10, 11, 12},
	}
}

func lay(kind PatternKind, seed uint64) *Canvas {
	c := newCanvas(seed)
	LayoutFor(kind).Lay(c)
	return c
}

func letterAt(c *Canvas, row, col int) (glyph.Letter, bool) {
	m := c.Cells[grid.Index(row, col)]
	if m.Role != RoleTypographic {
		return glyph.Letter{}, false
	}
	return c.Typography.Lookup(m.Glyph)
}

func TestPatternKindString(t *testing.T) {
	if PatternDiamond.String() != "diamond" {
		t.Errorf("String() = %s, expected diamond", PatternDiamond.String())
	}
	if PatternKind(42).String() != "pattern(42)" {
		t.Errorf("unknown kind String() = %s", PatternKind(42).String())
	}
}

func TestLayoutsCoverInterior(t *testing.T) {
	for kind := PatternBase; kind <= PatternScattered; kind++ {
		c := lay(kind, 11)
		c.EachInterior(func(r, k int) {
			if c.Cells[grid.Index(r, k)].Glyph == 0 {
				t.Errorf("%s: interior (%d,%d) left empty", kind, r, k)
			}
		})
	}
}

func TestRowWordLayout(t *testing.T) {
	c := lay(PatternRowWord, 4)
	row := c.Aux.TypoRow.Value()
	v := c.Aux.Variation1.Value()
	for col := 1; col <= 7; col++ {
		l, ok := letterAt(c, row, col)
		if !ok || l.Variation != v || l.Position != col-1 {
			t.Errorf("(%d,%d) = %+v, expected position %d of variation %d", row, col, l, col-1, v)
		}
	}
}

func TestColumnWordLayout(t *testing.T) {
	c := lay(PatternColumnWord, 4)
	col := c.Aux.TypoCol.Value()
	for row := 1; row <= 7; row++ {
		l, ok := letterAt(c, row, col)
		if !ok || l.Position != row-1 {
			t.Errorf("(%d,%d) = %+v, expected position %d", row, col, l, row-1)
		}
	}
}

func TestDiamondLayout(t *testing.T) {
	c := lay(PatternDiamond, 8)
	letters := 0
	c.EachInterior(func(r, k int) {
		l, ok := letterAt(c, r, k)
		if onDiamond(r, k) != ok {
			t.Errorf("(%d,%d): letter=%v, on diamond=%v", r, k, ok, onDiamond(r, k))
		}
		if ok {
			letters++
			if l.Position != r-1 {
				t.Errorf("(%d,%d) position %d, expected %d", r, k, l.Position, r-1)
			}
		}
	})
	if letters != 13 {
		t.Errorf("diamond letters = %d, expected 13", letters)
	}
}

func TestColumnBlocksLayout(t *testing.T) {
	c := lay(PatternColumnBlocks, 21)
	col := c.Aux.TypoCol.Value()
	c.EachInterior(func(r, k int) {
		if k == col {
			return
		}
		sr, sk := blockStart(r, 2), blockStart(k, 2)
		if sk == col {
			return
		}
		if c.Cells[grid.Index(r, k)].Glyph != c.Cells[grid.Index(sr, sk)].Glyph {
			t.Errorf("(%d,%d) differs from block start (%d,%d)", r, k, sr, sk)
		}
	})
}

func TestBandedLayout(t *testing.T) {
	c := lay(PatternBanded, 3)
	v1, v2 := c.Aux.Variation1.Value(), c.Aux.Variation2.Value()
	for row := 1; row <= 7; row++ {
		want := v1
		if row%2 == 0 {
			want = v2
		}
		for col := 1; col <= 7; col++ {
			l, ok := letterAt(c, row, col)
			if !ok || l.Variation != want || l.Position != row-1 {
				t.Errorf("(%d,%d) = %+v, expected variation %d position %d", row, col, l, want, row-1)
			}
		}
	}
}

func TestRowBaseLayout(t *testing.T) {
	c := lay(PatternRowBase, 6)
	row := c.Aux.TypoRow.Value()
	v := c.Aux.BaseVariation.Value()
	for col := 1; col <= 4; col++ {
		if got := c.Cells[grid.Index(row, col)].Glyph; got != c.Typography.Base(v, col-1) {
			t.Errorf("(%d,%d) = %d, expected %d", row, col, got, c.Typography.Base(v, col-1))
		}
	}
	for r := 1; r <= 7; r++ {
		if r == row {
			continue
		}
		first := c.Cells[grid.Index(r, 1)].Glyph
		for col := 2; col <= 7; col++ {
			if c.Cells[grid.Index(r, col)].Glyph != first {
				t.Errorf("row %d not uniform", r)
			}
		}
	}
}

func TestTwoRowsLayout(t *testing.T) {
	for seed := uint64(1); seed <= 20; seed++ {
		c := lay(PatternTwoRows, seed)
		r1, r2 := c.Aux.TypoRow.Value(), c.Aux.TypoRow2.Value()
		if r1 == r2 || r1%2 != 0 || r2%2 != 0 || r1 < 2 || r2 > 6 || r2 < 2 || r1 > 6 {
			t.Fatalf("rows %d, %d not two distinct of {2,4,6}", r1, r2)
		}
		for col := 1; col <= 7; col++ {
			if _, ok := letterAt(c, r2, col); !ok {
				t.Errorf("seed %d: (%d,%d) should be a letter", seed, r2, col)
			}
		}
		if _, ok := letterAt(c, r1, 5); ok {
			t.Errorf("seed %d: short word row should end at column 4", seed)
		}
	}
}

func TestColumnsLayout(t *testing.T) {
	c := lay(PatternColumns, 9)
	c.EachInterior(func(r, k int) {
		_, ok := letterAt(c, r, k)
		if ok != (k%2 == 1) {
			t.Errorf("(%d,%d) letter=%v", r, k, ok)
		}
	})
	for _, k := range []int{2, 4, 6} {
		first := c.Cells[grid.Index(1, k)].Glyph
		for r := 2; r <= 7; r++ {
			if c.Cells[grid.Index(r, k)].Glyph != first {
				t.Errorf("column %d not uniform", k)
			}
		}
	}
}

func TestScatteredLayout(t *testing.T) {
	c := lay(PatternScattered, 13)
	for row := 1; row <= 7; row++ {
		col, ok := c.Aux.TypoCols[row-1].Get()
		if !ok || col < 1 || col > 7 {
			t.Fatalf("TypoCols[%d] = %v", row-1, c.Aux.TypoCols[row-1])
		}
		l, isLetter := letterAt(c, row, col)
		if !isLetter || l.Position != row-1 {
			t.Errorf("row %d col %d = %+v", row, col, l)
		}
	}
}

func TestBlockStart(t *testing.T) {
	tests := []struct{ i, size, want int }{
		{1, 2, 1}, {2, 2, 1}, {3, 2, 3}, {7, 2, 7},
		{1, 3, 1}, {3, 3, 1}, {4, 3, 4}, {7, 3, 7},
	}
	for _, tt := range tests {
		if got := blockStart(tt.i, tt.size); got != tt.want {
			t.Errorf("blockStart(%d, %d) = %d, expected %d", tt.i, tt.size, got, tt.want)
		}
	}
}
