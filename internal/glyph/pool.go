package glyph

import (
	"encoding/json"
	"fmt"
	"sort"
)

// Pool is an ordered glyph set with constant-time lookup by id.
type Pool struct {
	glyphs []Glyph
	index  map[int]int
}

// NewPool builds a pool. A repeated id replaces the earlier entry in place.
func NewPool(glyphs []Glyph) *Pool {
	p := &Pool{index: make(map[int]int, len(glyphs))}
	for _, g := range glyphs {
		if i, dup := p.index[g.ID]; dup {
			p.glyphs[i] = g
			continue
		}
		p.index[g.ID] = len(p.glyphs)
		p.glyphs = append(p.glyphs, g)
	}
	return p
}

// ParsePool decodes the wire shape `[{"id": 1, "bitmap": "..."}]`.
func ParsePool(data []byte) (*Pool, error) {
	var glyphs []Glyph
	if err := json.Unmarshal(data, &glyphs); err != nil {
		return nil, fmt.Errorf("glyph: cannot decode pool: %w", err)
	}
	return NewPool(glyphs), nil
}

// Len returns the number of glyphs.
func (p *Pool) Len() int {
	if p == nil {
		return 0
	}
	return len(p.glyphs)
}

// Get returns the bitmap for id.
func (p *Pool) Get(id int) (Bitmap, bool) {
	if p == nil {
		return 0, false
	}
	i, ok := p.index[id]
	if !ok {
		return 0, false
	}
	return p.glyphs[i].Bitmap, true
}

// Has reports whether id is in the pool.
func (p *Pool) Has(id int) bool {
	_, ok := p.Get(id)
	return ok
}

// Glyphs returns a copy of the pool contents in pool order.
func (p *Pool) Glyphs() []Glyph {
	if p == nil {
		return nil
	}
	out := make([]Glyph, len(p.glyphs))
	copy(out, p.glyphs)
	return out
}

// IDs returns the sorted ids in the pool.
func (p *Pool) IDs() []int {
	if p == nil {
		return nil
	}
	ids := make([]int, 0, len(p.glyphs))
	for _, g := range p.glyphs {
		ids = append(ids, g.ID)
	}
	sort.Ints(ids)
	return ids
}

// Graphic returns the ids inside r that exist in the pool, ascending.
func (p *Pool) Graphic(r Range) []int {
	var ids []int
	for _, id := range p.IDs() {
		if r.Contains(id) {
			ids = append(ids, id)
		}
	}
	return ids
}
