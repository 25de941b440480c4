package editor

import (
	"errors"
	"fmt"

	"github.com/vovakirdan/glyphgrid/internal/compose"
	"github.com/vovakirdan/glyphgrid/internal/grid"
	"github.com/vovakirdan/glyphgrid/internal/palette"
)

// ErrInvalidPersistedState is returned when stored state cannot be used.
// The editor recovers by starting from an empty grid.
var ErrInvalidPersistedState = errors.New("editor: invalid persisted state")

// Snapshot is everything the editor writes through after each transition.
type Snapshot struct {
	// Selection holds 0-based palette indices in pick order.
	Selection      []int
	Complexity     int
	Grid           grid.Grid
	Aux            grid.Aux
	ShouldGenerate bool
}

// Validate checks a snapshot read back from storage.
func (s Snapshot) Validate() error {
	for _, i := range s.Selection {
		if i < 0 || i >= palette.Size {
			return fmt.Errorf("%w: colour index %d", ErrInvalidPersistedState, i)
		}
	}
	if s.Complexity != 0 && (s.Complexity < compose.MinComplexity || s.Complexity > compose.MaxComplexity) {
		return fmt.Errorf("%w: complexity %d", ErrInvalidPersistedState, s.Complexity)
	}
	if err := s.Grid.Validate(); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidPersistedState, err)
	}
	return nil
}

// Persister is the durable store behind the editor. Load reports false
// when nothing has been stored yet.
type Persister interface {
	Save(s Snapshot) error
	Load() (Snapshot, bool, error)
	Clear() error
}

// MemoryPersister keeps the snapshot in memory.
type MemoryPersister struct {
	snap  Snapshot
	saved bool
	Saves int
}

// NewMemoryPersister returns an empty in-memory persister.
func NewMemoryPersister() *MemoryPersister {
	return &MemoryPersister{}
}

// Save implements Persister.
func (m *MemoryPersister) Save(s Snapshot) error {
	s.Selection = append([]int(nil), s.Selection...)
	m.snap = s
	m.saved = true
	m.Saves++
	return nil
}

// Load implements Persister.
func (m *MemoryPersister) Load() (Snapshot, bool, error) {
	return m.snap, m.saved, nil
}

// Clear implements Persister.
func (m *MemoryPersister) Clear() error {
	m.snap = Snapshot{}
	m.saved = false
	return nil
}
