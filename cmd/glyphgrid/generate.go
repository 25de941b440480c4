package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/glyphgrid/internal/app"
	"github.com/vovakirdan/glyphgrid/internal/raster"
)

var (
	flagColors     []string
	flagComplexity int
	flagShuffle    bool
	flagVariation  bool
	flagRecolor    bool
	flagShowColors bool
)

var generateCmd = &cobra.Command{
	Use:   "generate",
	Short: "Generate a mosaic without the TUI",
	Long: `Generate a mosaic and store it as the current one, then print it.

With --colors the colour selection is replaced and the first mosaic always
spells the short word. Without --colors the stored selection is reused and
the pattern follows the complexity.

Examples:
  glyphgrid generate --colors black,gelb,red
  glyphgrid generate --complexity 7
  glyphgrid generate --colors 1,3,5,7 --seed 42 --show-colors
  glyphgrid generate --variation --recolor`,
	Run: runGenerate,
}

func init() {
	generateCmd.Flags().StringSliceVar(&flagColors, "colors", nil, "Colours by name or number 1-9")
	generateCmd.Flags().IntVar(&flagComplexity, "complexity", 0, "Complexity 1-10 (0 = keep current)")
	generateCmd.Flags().BoolVar(&flagShuffle, "shuffle", false, "Shuffle colours after generating")
	generateCmd.Flags().BoolVar(&flagVariation, "variation", false, "Switch letters to another variation")
	generateCmd.Flags().BoolVar(&flagRecolor, "recolor", false, "Apply a colour variation")
	generateCmd.Flags().BoolVar(&flagShowColors, "show-colors", false, "Also print the bg/fg colour of every cell")
}

func runGenerate(cmd *cobra.Command, _ []string) {
	env, closeStore := setup()
	defer closeStore()

	pool := env.LoadPool(cmd.Context())
	ed := env.NewEditor(pool, app.LocalNamespace, flagSeed)

	if len(flagColors) > 0 {
		sel, err := parseColors(env.Palette, flagColors)
		if err != nil {
			fatalf("%v", err)
		}
		ed.SetSelection(sel)
	}
	if !ed.Selection().Ready() {
		fatalf("no colours selected; pass --colors")
	}

	// SetComplexity regenerates an existing mosaic by itself.
	regenerated := false
	if flagComplexity != 0 && flagComplexity != ed.Complexity() {
		regenerated = ed.Generated()
		if err := ed.SetComplexity(flagComplexity); err != nil {
			fatalf("%v", err)
		}
	}
	if !regenerated {
		if err := ed.Generate(); err != nil {
			fatalf("%v", err)
		}
	}

	if flagShuffle {
		ed.ShuffleColors()
	}
	if flagVariation {
		ed.GenerateVariation()
	}
	if flagRecolor {
		ed.GenerateColorVariation()
	}

	g := ed.Grid()
	aux := ed.Aux()
	fmt.Printf("complexity %d, colours %v\n\n", aux.Complexity, ed.Selection().Refs())
	fmt.Println(raster.RenderCompact(&g, ed.Typography()))
	if flagShowColors {
		fmt.Println()
		fmt.Println(raster.RenderColors(&g))
	}
}
