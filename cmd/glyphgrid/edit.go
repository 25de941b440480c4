package main

import (
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/glyphgrid/internal/app"
	"github.com/vovakirdan/glyphgrid/internal/platform/tui"
)

var editCmd = &cobra.Command{
	Use:   "edit",
	Short: "Open the interactive editor",
	Long: `Open the mosaic editor. Without a stored colour selection the editor
starts in the colour picker; pick at least two colours and press enter.

Controls:
  arrows/hjkl   - Move the cursor
  0-9           - Arm glyph 1-10 (0 arms glyph 10)
  del           - Arm the eraser
  enter/space   - Paint; a quick second tap cycles the background
  b             - Cycle the background colour
  g             - Generate
  [ ]           - Less / more complex (regenerates)
  s / v / c     - Shuffle colours / letter variation / colour variation
  x             - Clear the grid
  n             - New mosaic (pick colours again)
  e / tab       - Export / list exports
  p             - Save a PNG to ~/.glyphgrid/renders
  q/Ctrl+C      - Quit

Mouse: left click paints, right or shift click cycles the background.`,
	Run: runEdit,
}

func runEdit(cmd *cobra.Command, _ []string) {
	fd := int(os.Stdout.Fd())
	if !term.IsTerminal(fd) {
		fatalf("edit needs a terminal; use 'glyphgrid generate' instead")
	}
	width, height := 80, 24
	if w, h, err := term.GetSize(fd); err == nil {
		width, height = w, h
	}

	env, closeStore := setup()
	defer closeStore()

	pool := env.LoadPool(cmd.Context())
	ed := env.NewEditor(pool, app.LocalNamespace, flagSeed)

	model := tui.NewModel(ed, tui.Options{
		Env:        env,
		Namespace:  app.LocalNamespace,
		Width:      width,
		Height:     height,
		AllowFiles: true,
	})
	if err := tui.Run(model); err != nil {
		fatalf("%v", err)
	}
}
