package main

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/glyphgrid/internal/app"
	"github.com/vovakirdan/glyphgrid/internal/raster"
)

var (
	flagOut      string
	flagFormat   string
	flagScale    int
	flagCellSize int
)

var renderCmd = &cobra.Command{
	Use:   "render",
	Short: "Rasterize the current mosaic to PNG or SVG",
	Long: `Render the current mosaic. The format follows the output extension
unless --format is given; without --out the image goes to stdout.

Examples:
  glyphgrid render -o mosaic.png
  glyphgrid render -o mosaic.png --cell-size 8 --scale 8
  glyphgrid render --format svg > mosaic.svg`,
	Run: runRender,
}

func init() {
	renderCmd.Flags().StringVarP(&flagOut, "out", "o", "", "Output file (default stdout)")
	renderCmd.Flags().StringVar(&flagFormat, "format", "", "png or svg (default from extension, else png)")
	renderCmd.Flags().IntVar(&flagScale, "scale", 0, "PNG nearest-neighbour upscale factor (0 = config)")
	renderCmd.Flags().IntVar(&flagCellSize, "cell-size", 0, "Pixels per cell (0 = config)")
}

func runRender(cmd *cobra.Command, _ []string) {
	env, closeStore := setup()
	defer closeStore()

	format := strings.ToLower(flagFormat)
	if format == "" {
		format = strings.TrimPrefix(strings.ToLower(filepath.Ext(flagOut)), ".")
	}
	if format == "" {
		format = "png"
	}
	if format != "png" && format != "svg" {
		fatalf("unknown format %q", format)
	}

	cellSize := env.Config.Render.CellSize
	if flagCellSize > 0 {
		cellSize = flagCellSize
	}
	scale := env.Config.Render.Scale
	if flagScale > 0 {
		scale = flagScale
	}

	pool := env.LoadPool(cmd.Context())
	ed := env.NewEditor(pool, app.LocalNamespace, flagSeed)
	if !ed.Generated() {
		fatalf("nothing generated yet; run 'glyphgrid generate' or 'glyphgrid edit'")
	}
	g := ed.Grid()

	var w io.Writer = os.Stdout
	if flagOut != "" {
		f, err := os.Create(flagOut)
		if err != nil {
			fatalf("%v", err)
		}
		defer f.Close()
		w = f
	}

	var err error
	switch format {
	case "svg":
		err = raster.WriteSVG(w, &g, pool, env.Palette, cellSize)
	default:
		err = raster.WritePNG(w, raster.Render(&g, pool, env.Palette, cellSize), scale)
	}
	if err != nil {
		fatalf("rendering: %v", err)
	}
	if flagOut != "" {
		fmt.Fprintf(os.Stderr, "Wrote %s\n", flagOut)
	}
}
