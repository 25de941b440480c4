package storage

import (
	"encoding/json"
	"fmt"

	"github.com/vovakirdan/glyphgrid/internal/glyph"
)

const keyCachedGlyphs = "cachedGlyphs"

// LoadGlyphs implements glyph.Cache. A miss returns nil, nil.
func (s *Store) LoadGlyphs() ([]glyph.Glyph, error) {
	raw, ok, err := s.Get(sharedNamespace, keyCachedGlyphs)
	if err != nil || !ok {
		return nil, err
	}
	var glyphs []glyph.Glyph
	if err := json.Unmarshal([]byte(raw), &glyphs); err != nil {
		return nil, fmt.Errorf("storage: cannot decode glyph cache: %w", err)
	}
	return glyphs, nil
}

// SaveGlyphs implements glyph.Cache.
func (s *Store) SaveGlyphs(glyphs []glyph.Glyph) error {
	data, err := json.Marshal(glyphs)
	if err != nil {
		return fmt.Errorf("storage: cannot encode glyph cache: %w", err)
	}
	return s.Put(sharedNamespace, keyCachedGlyphs, string(data))
}

// ClearGlyphs drops the cached pool so the next load fetches again.
func (s *Store) ClearGlyphs() error {
	_, err := s.db.Exec("DELETE FROM kv WHERE namespace = ? AND key = ?", sharedNamespace, keyCachedGlyphs)
	if err != nil {
		return fmt.Errorf("storage: cannot clear glyph cache: %w", err)
	}
	return nil
}

var _ glyph.Cache = (*Store)(nil)
