// Package glyph holds the 8x8 one-bit glyphs a grid is painted with, the
// typographic lookup table, and the loader that fetches the pool with retry
// and falls back to the bundled set.
package glyph

import (
	"encoding/json"
	"errors"
	"fmt"
	"strconv"
	"strings"
)

const (
	// EraseID marks a cell foreground that paints nothing.
	EraseID = 0
	// BlockID is the solid glyph every occupied cell uses as background.
	BlockID = 1
	// Size is the glyph edge length in pixels.
	Size = 8
)

// ErrPoolUnavailable is returned when the remote pool could not be fetched
// after all retries.
var ErrPoolUnavailable = errors.New("glyph: pool unavailable")

// Bitmap is a 64-bit glyph mask. Pixel (x, y) is on when bit 63-(y*8+x) is set.
type Bitmap uint64

// On reports whether pixel (x, y) is lit.
func (b Bitmap) On(x, y int) bool {
	if x < 0 || x >= Size || y < 0 || y >= Size {
		return false
	}
	return uint64(b)&(1<<uint(63-(y*Size+x))) != 0
}

// Count returns the number of lit pixels.
func (b Bitmap) Count() int {
	n := 0
	for v := uint64(b); v != 0; v &= v - 1 {
		n++
	}
	return n
}

// MarshalJSON encodes the bitmap as a decimal string so it survives
// consumers limited to 53-bit numbers.
func (b Bitmap) MarshalJSON() ([]byte, error) {
	return json.Marshal(strconv.FormatUint(uint64(b), 10))
}

// UnmarshalJSON accepts a decimal string, a 0x-prefixed hex string or a
// plain JSON number.
func (b *Bitmap) UnmarshalJSON(data []byte) error {
	raw := strings.TrimSpace(string(data))
	if raw == "null" {
		*b = 0
		return nil
	}
	if strings.HasPrefix(raw, `"`) {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		raw = strings.TrimSpace(s)
	}
	v, err := ParseBitmap(raw)
	if err != nil {
		return err
	}
	*b = v
	return nil
}

// ParseBitmap parses a decimal or 0x-prefixed hexadecimal bitmap.
func ParseBitmap(s string) (Bitmap, error) {
	var (
		v   uint64
		err error
	)
	if strings.HasPrefix(s, "0x") || strings.HasPrefix(s, "0X") {
		v, err = strconv.ParseUint(s[2:], 16, 64)
	} else {
		v, err = strconv.ParseUint(s, 10, 64)
	}
	if err != nil {
		return 0, fmt.Errorf("glyph: invalid bitmap %q: %w", s, err)
	}
	return Bitmap(v), nil
}

// Glyph is one entry of the pool.
type Glyph struct {
	ID     int    `json:"id"`
	Bitmap Bitmap `json:"bitmap"`
}

// Range is an inclusive id range.
type Range struct {
	Min int `yaml:"min"`
	Max int `yaml:"max"`
}

// DefaultGraphicRange is the id range the generator draws graphic glyphs from.
var DefaultGraphicRange = Range{Min: 1, Max: 15}

// Contains reports whether id lies in the range.
func (r Range) Contains(id int) bool {
	return id >= r.Min && id <= r.Max
}
