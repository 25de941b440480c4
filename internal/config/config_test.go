package config

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/vovakirdan/glyphgrid/internal/editor"
	"github.com/vovakirdan/glyphgrid/internal/glyph"
	"github.com/vovakirdan/glyphgrid/internal/palette"
)

func TestDefaultIsValid(t *testing.T) {
	if err := Default().Validate(); err != nil {
		t.Fatalf("Default().Validate() = %v", err)
	}
}

func TestEmbeddedMatchesDefault(t *testing.T) {
	cfg, err := parse(defaultYAML)
	if err != nil {
		t.Fatalf("parse(embedded) failed: %v", err)
	}

	pal, err := cfg.PaletteValue()
	if err != nil {
		t.Fatalf("PaletteValue() failed: %v", err)
	}
	for i := range palette.Default {
		if pal[i] != palette.Default[i] {
			t.Errorf("palette[%d] = %v, expected %v", i, pal[i], palette.Default[i])
		}
	}

	typo, err := cfg.TypographyValue()
	if err != nil {
		t.Fatalf("TypographyValue() failed: %v", err)
	}
	def := glyph.DefaultTypography()
	for id := 0; id <= glyph.MaxID; id++ {
		got, gotOK := typo.Lookup(id)
		want, wantOK := def.Lookup(id)
		if got != want || gotOK != wantOK {
			t.Errorf("Lookup(%d) = %v %v, expected %v %v", id, got, gotOK, want, wantOK)
		}
	}

	if cfg.Editor.DoubleTapWindow != 300*time.Millisecond {
		t.Errorf("DoubleTapWindow = %v, expected 300ms", cfg.Editor.DoubleTapWindow)
	}
	if cfg.Glyphs.Retry != glyph.DefaultRetryPolicy() {
		t.Errorf("Retry = %+v, expected %+v", cfg.Glyphs.Retry, glyph.DefaultRetryPolicy())
	}
	if cfg.Server.IdleTimeout != 30*time.Minute {
		t.Errorf("IdleTimeout = %v, expected 30m", cfg.Server.IdleTimeout)
	}
}

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "custom.yaml")
	if err := os.WriteFile(path, []byte(body), 0o644); err != nil {
		t.Fatalf("WriteFile failed: %v", err)
	}
	return path
}

func TestLoadCustomPartial(t *testing.T) {
	path := writeConfig(t, `
generator:
  complexity: 7
  reserve_gutter: true
editor:
  tap_scope: global
  double_tap_window: 450ms
`)

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load() failed: %v", err)
	}
	if cfg.Generator.Complexity != 7 {
		t.Errorf("Complexity = %d, expected 7", cfg.Generator.Complexity)
	}
	// untouched sections keep their defaults
	if cfg.Render.CellSize != 64 {
		t.Errorf("CellSize = %d, expected 64", cfg.Render.CellSize)
	}

	opts, err := cfg.EditorOptions()
	if err != nil {
		t.Fatalf("EditorOptions() failed: %v", err)
	}
	want := editor.Options{
		DoubleTapWindow: 450 * time.Millisecond,
		TapScope:        editor.TapGlobal,
		Graphic:         glyph.DefaultGraphicRange,
		ReserveGutter:   true,
	}
	if opts != want {
		t.Errorf("EditorOptions() = %+v, expected %+v", opts, want)
	}
}

func TestLoadCustomErrors(t *testing.T) {
	tests := []struct {
		name string
		body string
	}{
		{"malformed", "generator: [1, 2"},
		{"complexity", "generator:\n  complexity: 11\n"},
		{"scope", "editor:\n  tap_scope: everywhere\n"},
		{"short palette", "palette:\n  - { name: red, hex: \"#ff0000\" }\n"},
		{"bad hex", "palette:\n" + strings.Repeat("  - { name: x, hex: \"#zz0000\" }\n", 9)},
		{"typography", "glyphs:\n  typography:\n    - [16, 17]\n"},
		{"graphic", "glyphs:\n  graphic: { min: 0, max: 15 }\n"},
		{"retry", "glyphs:\n  retry: { attempts: 0 }\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := Load(writeConfig(t, tt.body)); err == nil {
				t.Errorf("Load() = nil error, expected failure")
			}
		})
	}
}

func TestLoadMissingCustom(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "missing.yaml"))
	if err == nil || !errors.Is(err, os.ErrNotExist) {
		t.Errorf("Load(missing) = %v, expected not-exist error", err)
	}
}

func TestValidateReportsErrInvalid(t *testing.T) {
	cfg := Default()
	cfg.Render.Scale = 0
	if err := cfg.Validate(); !errors.Is(err, ErrInvalid) {
		t.Errorf("Validate() = %v, expected ErrInvalid", err)
	}
}
