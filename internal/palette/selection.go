package palette

import "slices"

// MinSelection is the fewest colours generation accepts.
const MinSelection = 2

// Selection is an ordered set of palette indices (0-based) in pick order.
type Selection struct {
	indices []int
}

// NewSelection builds a selection from palette indices, dropping duplicates
// and out-of-range values.
func NewSelection(indices ...int) Selection {
	var s Selection
	for _, i := range indices {
		s.Add(i)
	}
	return s
}

// FromRefs builds a selection from 1-based refs.
func FromRefs(refs []Ref) Selection {
	var s Selection
	for _, r := range refs {
		s.Add(r - 1)
	}
	return s
}

// Add appends index i if it is valid and not yet selected.
func (s *Selection) Add(i int) bool {
	if i < 0 || i >= Size || s.Contains(i) {
		return false
	}
	s.indices = append(s.indices, i)
	return true
}

// Toggle adds or removes palette index i.
func (s *Selection) Toggle(i int) {
	if k := slices.Index(s.indices, i); k >= 0 {
		s.indices = slices.Delete(s.indices, k, k+1)
		return
	}
	s.Add(i)
}

// Contains reports whether palette index i is selected.
func (s Selection) Contains(i int) bool {
	return slices.Contains(s.indices, i)
}

// Len returns the number of selected colours.
func (s Selection) Len() int {
	return len(s.indices)
}

// Ready reports whether enough colours are selected to generate.
func (s Selection) Ready() bool {
	return len(s.indices) >= MinSelection
}

// Indices returns a copy of the 0-based indices in pick order.
func (s Selection) Indices() []int {
	return slices.Clone(s.indices)
}

// Refs returns the selection as 1-based refs in pick order.
func (s Selection) Refs() []Ref {
	refs := make([]Ref, len(s.indices))
	for k, i := range s.indices {
		refs[k] = i + 1
	}
	return refs
}

// ContainsRef reports whether the 1-based ref is selected.
func (s Selection) ContainsRef(ref Ref) bool {
	return s.Contains(ref - 1)
}
