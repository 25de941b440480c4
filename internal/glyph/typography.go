package glyph

import (
	"errors"
	"fmt"
)

const (
	// Word is the letter sequence every typographic variation spells.
	Word = "BATCHES"
	// BaseWord is the short word derived from Word.
	BaseWord = "BASE"
)

// BasePositions are the Word letter positions that spell BaseWord.
var BasePositions = [len(BaseWord)]int{0, 1, 6, 5}

// ErrInvalidTypography is returned for malformed variation groupings.
var ErrInvalidTypography = errors.New("glyph: invalid typography")

// Letter locates a typographic glyph inside its variation.
type Letter struct {
	Variation int
	Position  int
}

// Typography maps typographic glyph ids to their variation and letter
// position. It is built from explicit groups, never from id arithmetic.
type Typography struct {
	groups [][]int
	lookup map[int]Letter
}

// DefaultGroups returns the canonical grouping: nine variations of seven
// consecutive ids starting at 16.
func DefaultGroups() [][]int {
	groups := make([][]int, 9)
	id := 16
	for v := range groups {
		groups[v] = make([]int, len(Word))
		for i := range groups[v] {
			groups[v][i] = id
			id++
		}
	}
	return groups
}

// NewTypography validates groups and builds the lookup table.
func NewTypography(groups [][]int) (*Typography, error) {
	if len(groups) == 0 {
		return nil, fmt.Errorf("%w: no variations", ErrInvalidTypography)
	}
	t := &Typography{lookup: make(map[int]Letter)}
	for v, g := range groups {
		if len(g) != len(Word) {
			return nil, fmt.Errorf("%w: variation %d has %d glyphs, want %d",
				ErrInvalidTypography, v, len(g), len(Word))
		}
		ids := make([]int, len(g))
		for pos, id := range g {
			if id <= BlockID {
				return nil, fmt.Errorf("%w: id %d is reserved", ErrInvalidTypography, id)
			}
			if _, dup := t.lookup[id]; dup {
				return nil, fmt.Errorf("%w: id %d appears twice", ErrInvalidTypography, id)
			}
			t.lookup[id] = Letter{Variation: v, Position: pos}
			ids[pos] = id
		}
		t.groups = append(t.groups, ids)
	}
	return t, nil
}

// DefaultTypography returns the table for DefaultGroups.
func DefaultTypography() *Typography {
	t, err := NewTypography(DefaultGroups())
	if err != nil {
		panic(err)
	}
	return t
}

// Variations returns the number of variations.
func (t *Typography) Variations() int {
	return len(t.groups)
}

// Lookup returns the variation and position of a typographic id.
func (t *Typography) Lookup(id int) (Letter, bool) {
	l, ok := t.lookup[id]
	return l, ok
}

// IsTypographic reports whether id belongs to any variation.
func (t *Typography) IsTypographic(id int) bool {
	_, ok := t.lookup[id]
	return ok
}

// Letter returns the glyph id for Word[pos] in variation v.
func (t *Typography) Letter(v, pos int) int {
	return t.groups[v][pos]
}

// Word returns the seven ids spelling Word in variation v.
func (t *Typography) Word(v int) []int {
	out := make([]int, len(t.groups[v]))
	copy(out, t.groups[v])
	return out
}

// Base returns the id for BaseWord[i] in variation v.
func (t *Typography) Base(v, i int) int {
	return t.groups[v][BasePositions[i]]
}

// BaseWord returns the four ids spelling BaseWord in variation v.
func (t *Typography) BaseWord(v int) []int {
	out := make([]int, len(BasePositions))
	for i := range BasePositions {
		out[i] = t.Base(v, i)
	}
	return out
}
