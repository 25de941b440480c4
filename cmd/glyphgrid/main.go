// glyphgrid generates and edits 9x9 glyph mosaics in the terminal.
//
// Usage:
//
//	glyphgrid edit                     - Interactive editor
//	glyphgrid generate --colors a,b    - Generate a mosaic without the TUI
//	glyphgrid render -o art.png        - Rasterize the current mosaic
//	glyphgrid export                   - Print and record the deploy payload
//	glyphgrid exports                  - List recorded exports
//	glyphgrid glyphs                   - Fetch and list the glyph pool
//	glyphgrid reset                    - Forget the current mosaic
//	glyphgrid serve                    - Start SSH server for remote editing
//
// Global flags:
//
//	--seed <value>       - Set RNG seed for reproducible generation
//	--db <path>          - Set database path (default: from config)
//	--config <path>      - Use a custom config YAML
//	--log-level <level>  - debug, info, warn or error
package main

import (
	"fmt"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/glyphgrid/internal/app"
	"github.com/vovakirdan/glyphgrid/internal/config"
	"github.com/vovakirdan/glyphgrid/internal/storage"
)

var (
	// Global flags
	flagSeed     int64
	flagDBPath   string
	flagConfig   string
	flagLogLevel string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "glyphgrid",
	Short: "glyphgrid - Generate and edit 9x9 glyph mosaics",
	Long: `glyphgrid composes 9x9 mosaics of 8x8 glyphs from a handful of palette
colours, lets you edit them cell by cell, and builds the payload used to
store them on-chain.

Available commands:
  edit      - Interactive editor
  generate  - Generate a mosaic without the TUI
  render    - Rasterize the current mosaic to PNG or SVG
  export    - Build and record the deploy payload
  exports   - List recorded exports
  glyphs    - Fetch and list the glyph pool
  reset     - Forget the current mosaic and colour selection
  serve     - Start SSH server for remote editing

Examples:
  glyphgrid edit
  glyphgrid generate --colors black,gelb,red --complexity 4
  glyphgrid render -o mosaic.png --scale 4
  glyphgrid serve --ssh :2222`,
}

func init() {
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "", "Path to database (default from config: ~/.glyphgrid/glyphgrid.db)")
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to custom config YAML")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "warn", "Log level: debug, info, warn, error")

	rootCmd.AddCommand(editCmd)
	rootCmd.AddCommand(generateCmd)
	rootCmd.AddCommand(renderCmd)
	rootCmd.AddCommand(exportCmd)
	rootCmd.AddCommand(exportsCmd)
	rootCmd.AddCommand(glyphsCmd)
	rootCmd.AddCommand(resetCmd)
	rootCmd.AddCommand(serveCmd)
}

func newLogger() *log.Logger {
	logger := log.NewWithOptions(os.Stderr, log.Options{
		ReportTimestamp: true,
		Prefix:          "glyphgrid",
	})
	level, err := log.ParseLevel(flagLogLevel)
	if err != nil {
		logger.Warn("unknown log level, using warn", "level", flagLogLevel)
		level = log.WarnLevel
	}
	logger.SetLevel(level)
	return logger
}

// setup loads the configuration and opens the database. The returned
// function closes the database.
func setup() (*app.Env, func()) {
	logger := newLogger()

	cfg, err := config.Load(flagConfig)
	if err != nil {
		fatalf("%v", err)
	}

	dbPath := cfg.Storage.Path
	if flagDBPath != "" {
		dbPath = flagDBPath
	}
	store, err := storage.Open(dbPath)
	if err != nil {
		fatalf("opening database: %v", err)
	}

	env, err := app.NewEnv(cfg, store, logger)
	if err != nil {
		store.Close()
		fatalf("%v", err)
	}
	return env, func() { store.Close() }
}

func fatalf(format string, args ...any) {
	fmt.Fprintf(os.Stderr, "Error: "+format+"\n", args...)
	os.Exit(1)
}
