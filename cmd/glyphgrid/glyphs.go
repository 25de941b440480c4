package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/glyphgrid/internal/glyph"
)

var (
	flagRefresh bool
	flagShow    int
)

var glyphsCmd = &cobra.Command{
	Use:   "glyphs",
	Short: "Fetch and list the glyph pool",
	Long: `Resolve the glyph pool (cache, then the configured URL, then the
bundled set) and list it.

Examples:
  glyphgrid glyphs
  glyphgrid glyphs --refresh
  glyphgrid glyphs --show 12`,
	Run: runGlyphs,
}

func init() {
	glyphsCmd.Flags().BoolVar(&flagRefresh, "refresh", false, "Drop the cache and fetch again")
	glyphsCmd.Flags().IntVar(&flagShow, "show", 0, "Print the bitmap of one glyph")
}

func runGlyphs(cmd *cobra.Command, _ []string) {
	env, closeStore := setup()
	defer closeStore()

	if flagRefresh {
		if err := env.Store.ClearGlyphs(); err != nil {
			fatalf("%v", err)
		}
	}

	pool, origin := env.Loader().Load(cmd.Context())

	if flagShow != 0 {
		bitmap, ok := pool.Get(flagShow)
		if !ok {
			fatalf("glyph %d is not in the pool", flagShow)
		}
		fmt.Printf("Glyph %d (%d pixels)\n\n", flagShow, bitmap.Count())
		for y := 0; y < glyph.Size; y++ {
			var row strings.Builder
			for x := 0; x < glyph.Size; x++ {
				if bitmap.On(x, y) {
					row.WriteString("██")
				} else {
					row.WriteString("··")
				}
			}
			fmt.Println("  " + row.String())
		}
		return
	}

	graphic := pool.Graphic(env.Config.Glyphs.Graphic)
	fmt.Printf("Glyph pool: %d glyphs (source: %s)\n\n", pool.Len(), origin)
	fmt.Printf("  %-12s  %v\n", "Graphic", graphic)

	for v := 0; v < env.Typography.Variations(); v++ {
		fmt.Printf("  %-12s  %s %v\n", fmt.Sprintf("Letters %d", v+1), glyph.Word, env.Typography.Word(v))
	}
	fmt.Println()
	fmt.Println("Run 'glyphgrid glyphs --show <id>' to print a glyph.")
}
