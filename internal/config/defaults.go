package config

import (
	_ "embed"
	"time"

	"github.com/vovakirdan/glyphgrid/internal/compose"
	"github.com/vovakirdan/glyphgrid/internal/editor"
	"github.com/vovakirdan/glyphgrid/internal/glyph"
	"github.com/vovakirdan/glyphgrid/internal/palette"
	"github.com/vovakirdan/glyphgrid/internal/raster"
)

//go:embed defaults/glyphgrid.yaml
var defaultYAML []byte

// Default returns the hardcoded configuration.
func Default() Config {
	colors := make([]ColorConfig, len(palette.Default))
	for i, e := range palette.Default {
		colors[i] = ColorConfig{Name: e.Name, Hex: e.RGB.Hex()}
	}
	return Config{
		Palette: colors,
		Glyphs: GlyphsConfig{
			Timeout:    10 * time.Second,
			Retry:      glyph.DefaultRetryPolicy(),
			Graphic:    glyph.DefaultGraphicRange,
			Typography: glyph.DefaultGroups(),
		},
		Generator: GeneratorConfig{
			Complexity: compose.MinComplexity,
		},
		Editor: EditorConfig{
			DoubleTapWindow: editor.DefaultDoubleTapWindow,
			TapScope:        editor.TapCell.String(),
		},
		Render: RenderConfig{
			CellSize: raster.DefaultCellSize,
			Scale:    1,
		},
		Server: ServerConfig{
			Address:     ":23235",
			IdleTimeout: 30 * time.Minute,
		},
		Storage: StorageConfig{
			Path: "~/.glyphgrid/glyphgrid.db",
		},
	}
}
