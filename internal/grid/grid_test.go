package grid

import (
	"encoding/json"
	"errors"
	"testing"
)

func TestIndexRowCol(t *testing.T) {
	tests := []struct {
		row, col, idx int
	}{
		{0, 0, 0},
		{0, 8, 8},
		{1, 0, 9},
		{4, 4, 40},
		{8, 8, 80},
	}
	for _, tt := range tests {
		if got := Index(tt.row, tt.col); got != tt.idx {
			t.Errorf("Index(%d, %d) = %d, expected %d", tt.row, tt.col, got, tt.idx)
		}
		r, c := RowCol(tt.idx)
		if r != tt.row || c != tt.col {
			t.Errorf("RowCol(%d) = (%d, %d), expected (%d, %d)", tt.idx, r, c, tt.row, tt.col)
		}
	}
}

func TestRegions(t *testing.T) {
	frame := 0
	for i := 0; i < Cells; i++ {
		r, c := RowCol(i)
		if IsFrame(r, c) {
			frame++
		}
		if IsFrame(r, c) == IsInterior(r, c) {
			t.Errorf("(%d,%d) must be exactly one of frame/interior", r, c)
		}
	}
	if frame != 32 {
		t.Errorf("frame cells = %d, expected 32", frame)
	}
	if !IsCorner(8, 0) || IsCorner(0, 4) {
		t.Error("IsCorner wrong")
	}
	if !IsGutter(0, 2) || !IsGutter(8, 2) || IsGutter(4, 2) {
		t.Error("IsGutter wrong")
	}
}

func TestSlotJSON(t *testing.T) {
	in := []Slot{Some(3), None, Some(0)}
	data, err := json.Marshal(in)
	if err != nil {
		t.Fatalf("Marshal error: %v", err)
	}
	if string(data) != "[3,null,0]" {
		t.Errorf("Marshal = %s, expected [3,null,0]", data)
	}

	var out []Slot
	if err := json.Unmarshal(data, &out); err != nil {
		t.Fatalf("Unmarshal error: %v", err)
	}
	for i := range in {
		if out[i] != in[i] {
			t.Errorf("slot %d = %v, expected %v", i, out[i], in[i])
		}
	}
}

func occupied(bg, bgColor int) Cell {
	return Cell{BgGlyph: Some(bg), BgColor: Some(bgColor)}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name  string
		cell  Cell
		valid bool
	}{
		{"empty", Cell{}, true},
		{"background only", occupied(1, 3), true},
		{"erase foreground without colour", Cell{BgGlyph: Some(1), BgColor: Some(2), FgGlyph: Some(0)}, true},
		{"full", Cell{BgGlyph: Some(1), BgColor: Some(2), FgGlyph: Some(7), FgColor: Some(4)}, true},
		{"background glyph without colour", Cell{BgGlyph: Some(1)}, false},
		{"background glyph zero", occupied(0, 3), false},
		{"foreground without colour", Cell{BgGlyph: Some(1), BgColor: Some(2), FgGlyph: Some(5)}, false},
		{"foreground without background", Cell{FgGlyph: Some(5), FgColor: Some(2)}, false},
		{"colour out of range", occupied(1, 10), false},
		{"colour zero", occupied(1, 0), false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var g Grid
			g.Set(Index(3, 4), tt.cell)
			err := g.Validate()
			if tt.valid && err != nil {
				t.Errorf("Validate() = %v, expected nil", err)
			}
			if !tt.valid && !errors.Is(err, ErrInvalid) {
				t.Errorf("Validate() = %v, expected ErrInvalid", err)
			}
		})
	}
}

func TestUsedColorsAndOccupancy(t *testing.T) {
	var g Grid
	if !g.Empty() || g.Complete() {
		t.Fatal("zero grid should be empty and incomplete")
	}

	g.Set(0, Cell{BgGlyph: Some(1), BgColor: Some(7), FgGlyph: Some(3), FgColor: Some(2)})
	g.Set(5, occupied(1, 7))

	got := g.UsedColors()
	if len(got) != 2 || got[0] != 2 || got[1] != 7 {
		t.Errorf("UsedColors() = %v, expected [2 7]", got)
	}
	if !g.Occupied(5) || g.Occupied(6) {
		t.Error("Occupied wrong")
	}
	if !g.At(0).HasForeground() || g.At(5).HasForeground() {
		t.Error("HasForeground wrong")
	}

	g.Clear()
	if !g.Empty() {
		t.Error("Clear should empty the grid")
	}
}

func TestReadMethodsOnReturnedValue(t *testing.T) {
	var g Grid
	g.Set(4, occupied(1, 3))
	current := func() Grid { return g }

	if current().Empty() || current().Complete() {
		t.Error("one occupied cell: expected neither empty nor complete")
	}
	if !current().Occupied(4) || current().At(4).BgColor.Value() != 3 {
		t.Error("returned copy lost cell 4")
	}
	if got := current().UsedColors(); len(got) != 1 || got[0] != 3 {
		t.Errorf("UsedColors() = %v, expected [3]", got)
	}
	if err := current().Validate(); err != nil {
		t.Errorf("Validate() = %v", err)
	}
}
