// Package config provides YAML-based configuration for glyphgrid.
package config

import (
	"errors"
	"fmt"
	"time"

	"github.com/vovakirdan/glyphgrid/internal/compose"
	"github.com/vovakirdan/glyphgrid/internal/editor"
	"github.com/vovakirdan/glyphgrid/internal/glyph"
	"github.com/vovakirdan/glyphgrid/internal/palette"
)

// ErrInvalid is returned by Validate.
var ErrInvalid = errors.New("config: invalid")

// Config contains all glyphgrid settings.
type Config struct {
	Palette   []ColorConfig   `yaml:"palette"`
	Glyphs    GlyphsConfig    `yaml:"glyphs"`
	Generator GeneratorConfig `yaml:"generator"`
	Editor    EditorConfig    `yaml:"editor"`
	Render    RenderConfig    `yaml:"render"`
	Server    ServerConfig    `yaml:"server"`
	Storage   StorageConfig   `yaml:"storage"`
}

// ColorConfig is one palette entry, written as "#rrggbb".
type ColorConfig struct {
	Name string `yaml:"name"`
	Hex  string `yaml:"hex"`
}

// GlyphsConfig describes where glyphs come from and how they are grouped.
type GlyphsConfig struct {
	URL     string            `yaml:"url"` // empty = bundled set only
	Timeout time.Duration     `yaml:"timeout"`
	Retry   glyph.RetryPolicy `yaml:"retry"`
	Graphic glyph.Range       `yaml:"graphic"`
	// Typography lists the glyph ids of each variation, one row of seven
	// per variation, in letter order.
	Typography [][]int `yaml:"typography"`
}

// GeneratorConfig defines generation defaults.
type GeneratorConfig struct {
	Complexity    int  `yaml:"complexity"`
	ReserveGutter bool `yaml:"reserve_gutter"`
}

// EditorConfig defines click handling.
type EditorConfig struct {
	DoubleTapWindow time.Duration `yaml:"double_tap_window"`
	TapScope        string        `yaml:"tap_scope"` // "cell" or "global"
}

// RenderConfig defines raster output.
type RenderConfig struct {
	CellSize int `yaml:"cell_size"`
	Scale    int `yaml:"scale"`
}

// ServerConfig defines the SSH server.
type ServerConfig struct {
	Address     string        `yaml:"address"`
	HostKeyPath string        `yaml:"host_key_path"`
	IdleTimeout time.Duration `yaml:"idle_timeout"`
}

// StorageConfig defines the local database.
type StorageConfig struct {
	Path string `yaml:"path"`
}

// PaletteValue decodes the configured palette.
func (c Config) PaletteValue() (palette.Palette, error) {
	if len(c.Palette) != palette.Size {
		return nil, fmt.Errorf("%w: palette needs %d colours, got %d", ErrInvalid, palette.Size, len(c.Palette))
	}
	pal := make(palette.Palette, len(c.Palette))
	for i, entry := range c.Palette {
		rgb, err := palette.ParseHex(entry.Hex)
		if err != nil {
			return nil, fmt.Errorf("%w: palette %q: %w", ErrInvalid, entry.Name, err)
		}
		pal[i] = palette.Entry{Name: entry.Name, RGB: rgb}
	}
	return pal, nil
}

// TypographyValue builds the typographic lookup table.
func (c Config) TypographyValue() (*glyph.Typography, error) {
	if len(c.Glyphs.Typography) == 0 {
		return glyph.DefaultTypography(), nil
	}
	typo, err := glyph.NewTypography(c.Glyphs.Typography)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalid, err)
	}
	return typo, nil
}

// EditorOptions converts the editor and generator sections.
func (c Config) EditorOptions() (editor.Options, error) {
	scope, err := editor.ParseTapScope(c.Editor.TapScope)
	if err != nil {
		return editor.Options{}, fmt.Errorf("%w: %w", ErrInvalid, err)
	}
	return editor.Options{
		DoubleTapWindow: c.Editor.DoubleTapWindow,
		TapScope:        scope,
		Graphic:         c.Glyphs.Graphic,
		ReserveGutter:   c.Generator.ReserveGutter,
	}, nil
}

// Validate checks every section.
func (c Config) Validate() error {
	if _, err := c.PaletteValue(); err != nil {
		return err
	}
	if _, err := c.TypographyValue(); err != nil {
		return err
	}
	if _, err := c.EditorOptions(); err != nil {
		return err
	}
	g := c.Glyphs.Graphic
	if g.Min < glyph.BlockID || g.Max < g.Min {
		return fmt.Errorf("%w: graphic range %d..%d", ErrInvalid, g.Min, g.Max)
	}
	if c.Glyphs.Retry.Attempts < 1 {
		return fmt.Errorf("%w: retry attempts %d", ErrInvalid, c.Glyphs.Retry.Attempts)
	}
	if n := c.Generator.Complexity; n < compose.MinComplexity || n > compose.MaxComplexity {
		return fmt.Errorf("%w: complexity %d", ErrInvalid, n)
	}
	if c.Editor.DoubleTapWindow <= 0 {
		return fmt.Errorf("%w: double tap window %s", ErrInvalid, c.Editor.DoubleTapWindow)
	}
	if c.Render.CellSize < 1 || c.Render.Scale < 1 {
		return fmt.Errorf("%w: render cell size %d scale %d", ErrInvalid, c.Render.CellSize, c.Render.Scale)
	}
	return nil
}
