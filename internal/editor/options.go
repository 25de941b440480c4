package editor

import (
	"fmt"
	"time"

	"github.com/vovakirdan/glyphgrid/internal/glyph"
)

// DefaultDoubleTapWindow is the longest gap between two taps that still
// counts as a double tap.
const DefaultDoubleTapWindow = 300 * time.Millisecond

// TapScope controls which earlier tap a tap is compared against.
type TapScope int

const (
	// TapCell requires both taps on the same cell.
	TapCell TapScope = iota
	// TapGlobal accepts any earlier tap within the window.
	TapGlobal
)

// String returns the scope name used in configuration.
func (s TapScope) String() string {
	if s == TapGlobal {
		return "global"
	}
	return "cell"
}

// ParseTapScope parses "cell" or "global".
func ParseTapScope(s string) (TapScope, error) {
	switch s {
	case "", "cell":
		return TapCell, nil
	case "global":
		return TapGlobal, nil
	}
	return TapCell, fmt.Errorf("editor: unknown tap scope %q", s)
}

// Options tunes editor behaviour.
type Options struct {
	DoubleTapWindow time.Duration
	TapScope        TapScope
	Graphic         glyph.Range
	ReserveGutter   bool
}

// DefaultOptions returns the stock editor behaviour.
func DefaultOptions() Options {
	return Options{
		DoubleTapWindow: DefaultDoubleTapWindow,
		TapScope:        TapCell,
		Graphic:         glyph.DefaultGraphicRange,
	}
}
