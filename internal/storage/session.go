package storage

import (
	"encoding/json"
	"fmt"
	"strconv"

	"github.com/vovakirdan/glyphgrid/internal/editor"
	"github.com/vovakirdan/glyphgrid/internal/grid"
)

// Keys of a persisted editor session.
const (
	keySelectedColors = "selectedColors"
	keyBgGlyphs       = "bgGlyphs"
	keyFgGlyphs       = "fgGlyphs"
	keyBgColors       = "bgColors"
	keyFgColors       = "fgColors"
	keyAux            = "aux"
	keyComplexity     = "complexity"
	keyShouldGenerate = "shouldGenerateArt"
)

// Session persists one editor's state under a namespace.
type Session struct {
	store     *Store
	namespace string
}

// Session returns the persister for namespace.
func (s *Store) Session(namespace string) *Session {
	return &Session{store: s, namespace: namespace}
}

// Namespace returns the session's namespace.
func (s *Session) Namespace() string { return s.namespace }

// Save implements editor.Persister. All keys are written in one transaction.
func (s *Session) Save(snap editor.Snapshot) error {
	values := make(map[string]string, 8)
	put := func(key string, v any) error {
		data, err := json.Marshal(v)
		if err != nil {
			return fmt.Errorf("storage: cannot encode %s: %w", key, err)
		}
		values[key] = string(data)
		return nil
	}

	selection := snap.Selection
	if selection == nil {
		selection = []int{}
	}
	fields := []struct {
		key string
		v   any
	}{
		{keySelectedColors, selection},
		{keyBgGlyphs, snap.Grid.BgGlyph},
		{keyFgGlyphs, snap.Grid.FgGlyph},
		{keyBgColors, snap.Grid.BgColor},
		{keyFgColors, snap.Grid.FgColor},
		{keyAux, snap.Aux},
	}
	for _, f := range fields {
		if err := put(f.key, f.v); err != nil {
			return err
		}
	}
	values[keyComplexity] = strconv.Itoa(snap.Complexity)
	values[keyShouldGenerate] = strconv.FormatBool(snap.ShouldGenerate)

	return s.store.PutAll(s.namespace, values)
}

// Load implements editor.Persister. Values that cannot be decoded are
// reported as editor.ErrInvalidPersistedState.
func (s *Session) Load() (editor.Snapshot, bool, error) {
	values, err := s.store.All(s.namespace)
	if err != nil {
		return editor.Snapshot{}, false, err
	}
	if len(values) == 0 {
		return editor.Snapshot{}, false, nil
	}

	var snap editor.Snapshot
	if raw, ok := values[keySelectedColors]; ok {
		if err := json.Unmarshal([]byte(raw), &snap.Selection); err != nil {
			return editor.Snapshot{}, false, invalid(keySelectedColors, err)
		}
	}

	arrays := []struct {
		key string
		dst *[grid.Cells]grid.Slot
	}{
		{keyBgGlyphs, &snap.Grid.BgGlyph},
		{keyFgGlyphs, &snap.Grid.FgGlyph},
		{keyBgColors, &snap.Grid.BgColor},
		{keyFgColors, &snap.Grid.FgColor},
	}
	for _, a := range arrays {
		raw, ok := values[a.key]
		if !ok {
			continue
		}
		var slots []grid.Slot
		if err := json.Unmarshal([]byte(raw), &slots); err != nil {
			return editor.Snapshot{}, false, invalid(a.key, err)
		}
		if len(slots) != grid.Cells {
			return editor.Snapshot{}, false, invalid(a.key, fmt.Errorf("length %d", len(slots)))
		}
		copy(a.dst[:], slots)
	}

	if raw, ok := values[keyAux]; ok {
		if err := json.Unmarshal([]byte(raw), &snap.Aux); err != nil {
			return editor.Snapshot{}, false, invalid(keyAux, err)
		}
	}
	if raw, ok := values[keyComplexity]; ok {
		n, err := strconv.Atoi(raw)
		if err != nil {
			return editor.Snapshot{}, false, invalid(keyComplexity, err)
		}
		snap.Complexity = n
	}
	if raw, ok := values[keyShouldGenerate]; ok {
		b, err := strconv.ParseBool(raw)
		if err != nil {
			return editor.Snapshot{}, false, invalid(keyShouldGenerate, err)
		}
		snap.ShouldGenerate = b
	}

	return snap, true, nil
}

// Clear implements editor.Persister.
func (s *Session) Clear() error {
	return s.store.DeleteNamespace(s.namespace)
}

func invalid(key string, err error) error {
	return fmt.Errorf("%w: %s: %w", editor.ErrInvalidPersistedState, key, err)
}

var _ editor.Persister = (*Session)(nil)
