package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/glyphgrid/internal/app"
)

var flagKeepColors bool

var resetCmd = &cobra.Command{
	Use:   "reset",
	Short: "Forget the current mosaic",
	Long: `Clear the stored mosaic and colour selection so the next session
starts from the colour picker. With --keep-colors only the grid is cleared.

Examples:
  glyphgrid reset
  glyphgrid reset --keep-colors`,
	Run: runReset,
}

func init() {
	resetCmd.Flags().BoolVar(&flagKeepColors, "keep-colors", false, "Keep the colour selection")
}

func runReset(cmd *cobra.Command, _ []string) {
	env, closeStore := setup()
	defer closeStore()

	ed := env.NewEditor(env.LoadPool(cmd.Context()), app.LocalNamespace, flagSeed)
	if flagKeepColors {
		ed.Reset()
		fmt.Println("Grid cleared.")
		return
	}
	if err := ed.Restart(); err != nil {
		fatalf("%v", err)
	}
	fmt.Println("Mosaic and colours cleared.")
}
