package main

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/dustin/go-humanize"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/glyphgrid/internal/app"
)

var (
	flagExportOut string
	flagLimit     int
)

var exportCmd = &cobra.Command{
	Use:   "export [name]",
	Short: "Build and record the deploy payload",
	Long: `Build the deploy payload of the current mosaic: the four cell arrays
with colours renumbered 1..K and the flat list of the K used colours.
The payload is printed as JSON and recorded in the export log.

Examples:
  glyphgrid export
  glyphgrid export sunrise -o sunrise.json`,
	Args: cobra.MaximumNArgs(1),
	Run:  runExport,
}

var exportsCmd = &cobra.Command{
	Use:   "exports",
	Short: "List recorded exports",
	Long: `Display the most recent exports, newest first.

Examples:
  glyphgrid exports
  glyphgrid exports --limit 50`,
	Run: runExports,
}

func init() {
	exportCmd.Flags().StringVarP(&flagExportOut, "out", "o", "", "Write the payload to a file instead of stdout")
	exportsCmd.Flags().IntVar(&flagLimit, "limit", 20, "Number of exports to show")
}

func runExport(cmd *cobra.Command, args []string) {
	env, closeStore := setup()
	defer closeStore()

	name := "glyph-" + time.Now().Format("20060102-150405")
	if len(args) == 1 {
		name = args[0]
	}

	pool := env.LoadPool(cmd.Context())
	ed := env.NewEditor(pool, app.LocalNamespace, flagSeed)
	rec, err := env.Export(ed, app.LocalNamespace, name)
	if err != nil && !errors.Is(err, app.ErrNoStore) {
		fatalf("%v", err)
	}

	data, err := json.MarshalIndent(rec.Payload, "", "  ")
	if err != nil {
		fatalf("encoding payload: %v", err)
	}
	data = append(data, '\n')

	if flagExportOut == "" {
		os.Stdout.Write(data)
	} else if err := os.WriteFile(flagExportOut, data, 0o644); err != nil {
		fatalf("%v", err)
	}
	fmt.Fprintf(os.Stderr, "Exported %q (%s, %d colours, %s)\n", name, rec.ID, rec.Payload.K(), humanize.Bytes(uint64(len(data))))
}

func runExports(_ *cobra.Command, _ []string) {
	env, closeStore := setup()
	defer closeStore()

	exports, err := env.Store.RecentExports(app.LocalNamespace, flagLimit)
	if err != nil {
		fatalf("retrieving exports: %v", err)
	}

	fmt.Println("Exports")
	fmt.Println()

	if len(exports) == 0 {
		fmt.Println("Nothing exported yet.")
		fmt.Println()
		fmt.Println("Run 'glyphgrid export' to record the current mosaic.")
		return
	}

	maxName := 4 // "Name" header
	for _, e := range exports {
		if len(e.Name) > maxName {
			maxName = len(e.Name)
		}
	}

	fmt.Printf("  %-*s  %-36s  %-7s  %-8s  %s\n", maxName, "Name", "ID", "Colours", "Size", "Exported")
	fmt.Printf("  %-*s  %-36s  %-7s  %-8s  %s\n", maxName, "----", "--", "-------", "----", "--------")
	for _, e := range exports {
		fmt.Printf("  %-*s  %-36s  %-7d  %-8s  %s\n",
			maxName, e.Name, e.ID, e.Payload.K(),
			humanize.Bytes(uint64(e.Size)), humanize.Time(e.CreatedAt))
	}
}
