package main

import (
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/glyphgrid/internal/platform/tui"
)

var (
	flagSSHAddr     string
	flagHostKey     string
	flagIdleTimeout time.Duration
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the glyphgrid SSH server",
	Long: `Start an SSH server that allows users to connect and edit mosaics.

Each SSH user gets their own mosaic and export log, kept across
connections. All users share the glyph pool.

Host key handling:
  - If --host-key is provided, uses that key file
  - Otherwise, auto-generates a key at ~/.glyphgrid/host_key

Examples:
  glyphgrid serve                           # Listen on the configured address
  glyphgrid serve --ssh :2222               # Listen on port 2222
  glyphgrid serve --host-key ./my_host_key  # Use specific host key
  glyphgrid serve --db ./glyphgrid.db       # Use specific database

Users can connect with:
  ssh localhost -p 23235`,
	Run: runServe,
}

func init() {
	serveCmd.Flags().StringVar(&flagSSHAddr, "ssh", "", "SSH server address (default from config: :23235)")
	serveCmd.Flags().StringVar(&flagHostKey, "host-key", "", "Path to host key file (auto-generated if not specified)")
	serveCmd.Flags().DurationVar(&flagIdleTimeout, "idle-timeout", 0, "Idle timeout before disconnecting (default from config: 30m)")
}

func runServe(cmd *cobra.Command, _ []string) {
	env, closeStore := setup()
	defer closeStore()

	cfg := tui.SSHServerConfig{
		Address:     env.Config.Server.Address,
		HostKeyPath: env.Config.Server.HostKeyPath,
		IdleTimeout: env.Config.Server.IdleTimeout,
	}
	if flagSSHAddr != "" {
		cfg.Address = flagSSHAddr
	}
	if flagHostKey != "" {
		cfg.HostKeyPath = flagHostKey
	}
	if flagIdleTimeout > 0 {
		cfg.IdleTimeout = flagIdleTimeout
	}

	server, err := tui.NewSSHServer(cfg, env, env.LoadPool(cmd.Context()))
	if err != nil {
		fatalf("creating server: %v", err)
	}

	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	fmt.Printf("Starting glyphgrid SSH server on %s\n", server.Addr())
	fmt.Println("Press Ctrl+C to stop")

	if err := server.Serve(ctx); err != nil {
		fatalf("server: %v", err)
	}
}
