package compose

import (
	"slices"

	"github.com/vovakirdan/glyphgrid/internal/palette"
	"github.com/vovakirdan/glyphgrid/internal/rng"
)

// Scheme assigns background and foreground colours to cells.
type Scheme interface {
	Colors(row, col int, role Role) (bg, fg palette.Ref)
}

// NewScheme picks the role scheme for the number of selected colours.
// refs must hold at least two distinct colours.
func NewScheme(refs []palette.Ref, src rng.Source) Scheme {
	s := newSampler(refs, src)
	switch n := len(refs); {
	case n >= 9:
		return newRowCycle(refs, src)
	case n == 8:
		structural := s.draw()
		return &chaos{
			structural: structural,
			rest:       without(refs, structural),
			src:        src,
		}
	case n == 7:
		b := &blocks{}
		for i := range b.pairs {
			b.pairs[i].bg = s.draw()
			b.pairs[i].fg = s.draw(b.pairs[i].bg)
		}
		b.typo = s.draw()
		assign := rng.Shuffled(src, []int{0, 0, 0, 1, 1, 1, 2, 2, 2})
		copy(b.assign[:], assign)
		return b
	case n == 6:
		p := &pairedBands{}
		for i := range p.pairs {
			p.pairs[i].bg = s.draw()
		}
		for i := range p.pairs {
			p.pairs[i].fg = s.draw(p.pairs[i].bg)
		}
		return p
	case n == 5:
		b := &bands{glyph: s.draw()}
		for i := range b.bands {
			b.bands[i] = s.draw(b.glyph)
		}
		return b
	case n == 4:
		h := &halves{bg: s.draw()}
		h.typo = s.draw(h.bg)
		h.top = s.draw(h.bg, h.typo)
		h.bottom = s.draw(h.bg, h.typo, h.top)
		return h
	default:
		p := &plain{bg: s.draw()}
		p.accent = s.draw(p.bg)
		p.frame = p.accent
		if n >= 3 {
			p.frame = s.draw(p.bg, p.accent)
		}
		return p
	}
}

// sampler draws colours preferring ones not yet used in this pass.
type sampler struct {
	src     rng.Source
	allowed []palette.Ref
	used    map[palette.Ref]bool
}

func newSampler(refs []palette.Ref, src rng.Source) *sampler {
	return &sampler{src: src, allowed: refs, used: make(map[palette.Ref]bool)}
}

func (s *sampler) draw(exclude ...palette.Ref) palette.Ref {
	var filtered, fresh []palette.Ref
	for _, r := range s.allowed {
		if slices.Contains(exclude, r) {
			continue
		}
		filtered = append(filtered, r)
		if !s.used[r] {
			fresh = append(fresh, r)
		}
	}

	pool := fresh
	if len(pool) == 0 {
		pool = filtered
	}
	if len(pool) == 0 {
		pool = s.allowed
	}
	r := rng.Pick(s.src, pool)
	s.used[r] = true
	return r
}

func without(refs []palette.Ref, drop palette.Ref) []palette.Ref {
	out := make([]palette.Ref, 0, len(refs))
	for _, r := range refs {
		if r != drop {
			out = append(out, r)
		}
	}
	return out
}

type pair struct {
	bg, fg palette.Ref
}

// plain: one background, an accent for the interior and a frame colour.
type plain struct {
	bg, accent, frame palette.Ref
}

func (p *plain) Colors(row, col int, role Role) (palette.Ref, palette.Ref) {
	if role == RoleFrame {
		return p.bg, p.frame
	}
	return p.bg, p.accent
}

// halves: typographic colour for letters, graphics split at row 4.
type halves struct {
	bg, typo, top, bottom palette.Ref
}

func (h *halves) Colors(row, col int, role Role) (palette.Ref, palette.Ref) {
	switch {
	case role == RoleTypographic:
		return h.bg, h.typo
	case row <= 4:
		return h.bg, h.top
	default:
		return h.bg, h.bottom
	}
}

// bands: four background bands under one glyph colour.
type bands struct {
	glyph palette.Ref
	bands [4]palette.Ref
}

func (b *bands) Colors(row, col int, role Role) (palette.Ref, palette.Ref) {
	band := min(row/2, 3)
	return b.bands[band], b.glyph
}

// pairedBands: three bands, each with its own colour pair.
type pairedBands struct {
	pairs [3]pair
}

func (p *pairedBands) Colors(row, col int, role Role) (palette.Ref, palette.Ref) {
	band := p.pairs[row/3]
	return band.bg, band.fg
}

// blocks: nine 3x3 blocks sharing three colour pairs, three blocks each.
type blocks struct {
	pairs  [3]pair
	assign [9]int
	typo   palette.Ref
}

func (b *blocks) Colors(row, col int, role Role) (palette.Ref, palette.Ref) {
	p := b.pairs[b.assign[(row/3)*3+col/3]]
	if role == RoleTypographic {
		return p.bg, b.typo
	}
	return p.bg, p.fg
}

// chaos: structure in one colour, everything else drawn per cell.
type chaos struct {
	structural palette.Ref
	rest       []palette.Ref
	src        rng.Source
}

func (c *chaos) Colors(row, col int, role Role) (palette.Ref, palette.Ref) {
	bg := rng.Pick(c.src, c.rest)
	if role != RoleGraphic {
		return bg, c.structural
	}
	return bg, rng.Pick(c.src, without(c.rest, bg))
}

// rowCycle: each row takes the next background from a shuffled cycle of
// every selected colour, with a foreground that differs from it.
type rowCycle struct {
	rows [9]pair
}

func newRowCycle(refs []palette.Ref, src rng.Source) *rowCycle {
	order := rng.Shuffled(src, refs)
	rc := &rowCycle{}
	for row := range rc.rows {
		bg := order[row%len(order)]
		rc.rows[row] = pair{bg: bg, fg: rng.Pick(src, without(refs, bg))}
	}
	return rc
}

func (rc *rowCycle) Colors(row, col int, role Role) (palette.Ref, palette.Ref) {
	return rc.rows[row].bg, rc.rows[row].fg
}
