package editor

import (
	"slices"
	"time"

	"github.com/vovakirdan/glyphgrid/internal/glyph"
	"github.com/vovakirdan/glyphgrid/internal/grid"
	"github.com/vovakirdan/glyphgrid/internal/palette"
	"github.com/vovakirdan/glyphgrid/internal/rng"
)

// Click handles a tap on cell i at time at.
//
// A shift-click or a second tap inside the double-tap window is a
// background click. An armed glyph is placed on any other click. Otherwise
// a cell with a coloured foreground cycles its foreground colour, or swaps
// foreground and background when exactly two colours are selected.
func (e *Editor) Click(i int, mods Modifiers, at time.Time) Effect {
	if !grid.InBounds(i) {
		return EffectNone
	}
	background := mods.Shift || e.isDoubleTap(i, at)
	e.lastTap = tap{index: i, at: at, valid: true}

	refs := e.selection.Refs()
	if len(refs) == 0 {
		return EffectNone
	}
	cell := e.grid.At(i)

	if id, armed := e.armed.Get(); armed && !background {
		if !cell.BgGlyph.Valid() {
			cell.BgGlyph = grid.Some(glyph.BlockID)
			cell.BgColor = grid.Some(rng.Pick(e.rand, refs))
		}
		cell.FgGlyph = grid.Some(id)
		if id != glyph.EraseID && !cell.FgColor.Valid() {
			cell.FgColor = grid.Some(e.colorExcept(refs, cell.BgColor.Value()))
		}
		e.grid.Set(i, cell)
		e.armed = grid.None
		e.save()
		return EffectPlaced
	}

	if background {
		bg, ok := cell.BgColor.Get()
		if !ok {
			return EffectNone
		}
		cell.BgColor = grid.Some(nextColor(refs, bg, cell.FgColor))
		e.grid.Set(i, cell)
		e.save()
		return EffectBackground
	}

	fg, ok := cell.FgColor.Get()
	if !cell.FgGlyph.Valid() || !ok {
		return EffectNone
	}
	if len(refs) == 2 {
		cell.BgColor, cell.FgColor = cell.FgColor, cell.BgColor
		e.grid.Set(i, cell)
		e.save()
		return EffectSwapped
	}
	cell.FgColor = grid.Some(nextColor(refs, fg, cell.BgColor))
	e.grid.Set(i, cell)
	e.save()
	return EffectForeground
}

func (e *Editor) isDoubleTap(i int, at time.Time) bool {
	last := e.lastTap
	if !last.valid {
		return false
	}
	if e.opts.TapScope == TapCell && last.index != i {
		return false
	}
	gap := at.Sub(last.at)
	return gap >= 0 && gap < e.opts.DoubleTapWindow
}

// colorExcept picks a random selected colour other than avoid.
func (e *Editor) colorExcept(refs []palette.Ref, avoid palette.Ref) palette.Ref {
	candidates := make([]palette.Ref, 0, len(refs))
	for _, r := range refs {
		if r != avoid {
			candidates = append(candidates, r)
		}
	}
	if len(candidates) == 0 {
		return rng.Pick(e.rand, refs)
	}
	return rng.Pick(e.rand, candidates)
}

// nextColor steps from current through refs, skipping avoid. It returns
// current when no other colour qualifies.
func nextColor(refs []palette.Ref, current palette.Ref, avoid grid.Slot) palette.Ref {
	start := slices.Index(refs, current)
	for step := 1; step <= len(refs); step++ {
		k := (start + step) % len(refs)
		if !avoid.Is(refs[k]) {
			return refs[k]
		}
	}
	return current
}

// distinctColors returns the distinct set values of slots in cell order.
func distinctColors(slots *[grid.Cells]grid.Slot) []palette.Ref {
	var out []palette.Ref
	for _, s := range slots {
		if v, ok := s.Get(); ok && !slices.Contains(out, v) {
			out = append(out, v)
		}
	}
	return out
}

// ShuffleColors permutes the distinct foreground colours and, separately,
// the distinct background colours, then repairs cells where the two
// collide by advancing the background through its cycle.
func (e *Editor) ShuffleColors() bool {
	if !e.Generated() {
		return false
	}
	fgPool := distinctColors(&e.grid.FgColor)
	bgPool := distinctColors(&e.grid.BgColor)
	fgMap := permutation(fgPool, rng.Shuffled(e.rand, fgPool))
	bgMap := permutation(bgPool, rng.Shuffled(e.rand, bgPool))

	for i := 0; i < grid.Cells; i++ {
		if v, ok := e.grid.FgColor[i].Get(); ok {
			e.grid.FgColor[i] = grid.Some(fgMap[v])
		}
		if v, ok := e.grid.BgColor[i].Get(); ok {
			e.grid.BgColor[i] = grid.Some(bgMap[v])
		}
	}

	for i := 0; i < grid.Cells; i++ {
		fg, fok := e.grid.FgColor[i].Get()
		bg, bok := e.grid.BgColor[i].Get()
		if !fok || !bok || fg != bg {
			continue
		}
		if next, ok := advance(bgPool, bg, fg); ok {
			e.grid.BgColor[i] = grid.Some(next)
		} else if next, ok := advance(fgPool, fg, bg); ok {
			e.grid.FgColor[i] = grid.Some(next)
		}
	}
	e.save()
	return true
}

func permutation(from, to []palette.Ref) map[palette.Ref]palette.Ref {
	m := make(map[palette.Ref]palette.Ref, len(from))
	for k, v := range from {
		m[v] = to[k]
	}
	return m
}

// advance walks the cycle from current until it finds a colour different
// from avoid, giving up after one full turn.
func advance(cycle []palette.Ref, current, avoid palette.Ref) (palette.Ref, bool) {
	k := slices.Index(cycle, current)
	for range cycle {
		k = (k + 1) % len(cycle)
		if cycle[k] != avoid {
			return cycle[k], true
		}
	}
	return current, false
}

// GenerateVariation swaps glyphs while keeping the layout: every distinct
// graphic glyph maps to a different random graphic glyph, and every letter
// moves to the same position in one freshly chosen variation.
func (e *Editor) GenerateVariation() bool {
	if !e.Generated() {
		return false
	}
	graphic := e.pool.Graphic(e.opts.Graphic)
	target := e.rand.Intn(e.typo.Variations())
	remap := make(map[int]int)

	for i := 0; i < grid.Cells; i++ {
		if !e.grid.Occupied(i) {
			continue
		}
		id, ok := e.grid.FgGlyph[i].Get()
		if !ok || id == glyph.EraseID {
			continue
		}
		if l, ok := e.typo.Lookup(id); ok {
			e.grid.FgGlyph[i] = grid.Some(e.typo.Letter(target, l.Position))
			continue
		}
		to, seen := remap[id]
		if !seen {
			to = id
			others := slices.DeleteFunc(slices.Clone(graphic), func(g int) bool { return g == id })
			if len(others) > 0 {
				to = rng.Pick(e.rand, others)
			}
			remap[id] = to
		}
		e.grid.FgGlyph[i] = grid.Some(to)
	}

	for _, v := range []*grid.Slot{&e.aux.Variation1, &e.aux.Variation2, &e.aux.BaseVariation} {
		if v.Valid() {
			*v = grid.Some(target)
		}
	}
	e.save()
	return true
}

// GenerateColorVariation recolours the grid. Used colours are replaced by
// colours that are neither in use nor selected, min(used, free) of them.
// Without free colours the used and selected colours are permuted among
// themselves. The selection follows the mapping and keeps its size.
func (e *Editor) GenerateColorVariation() bool {
	if !e.Generated() {
		return false
	}
	used := e.grid.UsedColors()
	if len(used) == 0 {
		return false
	}
	selected := e.selection.Refs()

	var free []palette.Ref
	for r := 1; r <= palette.Size; r++ {
		if !slices.Contains(used, r) && !slices.Contains(selected, r) {
			free = append(free, r)
		}
	}

	var mapping map[palette.Ref]palette.Ref
	if len(free) == 0 {
		taken := slices.Clone(used)
		for _, r := range selected {
			if !slices.Contains(taken, r) {
				taken = append(taken, r)
			}
		}
		slices.Sort(taken)
		mapping = permutation(taken, rng.Shuffled(e.rand, taken))
	} else {
		mapping = make(map[palette.Ref]palette.Ref, len(used))
		for _, r := range used {
			mapping[r] = r
		}
		k := min(len(used), len(free))
		fresh := rng.Shuffled(e.rand, free)[:k]
		replaced := rng.Shuffled(e.rand, used)[:k]
		for j := range replaced {
			mapping[replaced[j]] = fresh[j]
		}
	}

	for i := 0; i < grid.Cells; i++ {
		if v, ok := e.grid.BgColor[i].Get(); ok {
			e.grid.BgColor[i] = grid.Some(mapping[v])
		}
		if v, ok := e.grid.FgColor[i].Get(); ok {
			e.grid.FgColor[i] = grid.Some(mapping[v])
		}
	}

	var sel palette.Selection
	for _, r := range e.selection.Refs() {
		if to, ok := mapping[r]; ok {
			r = to
		}
		sel.Add(r - 1)
	}
	for _, r := range e.grid.UsedColors() {
		sel.Add(r - 1)
	}
	e.selection = sel
	e.save()
	return true
}
