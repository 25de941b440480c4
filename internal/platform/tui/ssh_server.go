package tui

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"
	"github.com/charmbracelet/ssh"
	"github.com/charmbracelet/wish"
	"github.com/charmbracelet/wish/bubbletea"

	"github.com/vovakirdan/glyphgrid/internal/app"
	"github.com/vovakirdan/glyphgrid/internal/glyph"
)

const shutdownGrace = 10 * time.Second

// SSHServerConfig holds configuration for the SSH server.
type SSHServerConfig struct {
	// Address is the host:port to listen on (e.g., ":23235").
	Address string

	// HostKeyPath is the path to the host key file.
	// If empty, a key will be auto-generated at ~/.glyphgrid/host_key.
	HostKeyPath string

	// IdleTimeout is how long to wait before closing idle connections.
	IdleTimeout time.Duration
}

// SSHServer serves one editor per SSH user. Users keep their own mosaic and
// export log, keyed by user name.
type SSHServer struct {
	config SSHServerConfig
	server *ssh.Server
	env    *app.Env
	pool   *glyph.Pool
	logger *log.Logger
}

// NewSSHServer creates a new SSH server with the given configuration.
func NewSSHServer(cfg SSHServerConfig, env *app.Env, pool *glyph.Pool) (*SSHServer, error) {
	srv := &SSHServer{
		config: cfg,
		env:    env,
		pool:   pool,
		logger: env.Logger.WithPrefix("ssh"),
	}

	hostKeyPath := cfg.HostKeyPath
	if hostKeyPath == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil, fmt.Errorf("cannot get home directory: %w", err)
		}
		hostKeyPath = filepath.Join(home, ".glyphgrid", "host_key")
	}

	if err := os.MkdirAll(filepath.Dir(hostKeyPath), 0o700); err != nil {
		return nil, fmt.Errorf("cannot create host key directory: %w", err)
	}

	server, err := wish.NewServer(
		wish.WithAddress(cfg.Address),
		wish.WithHostKeyPath(hostKeyPath),
		wish.WithIdleTimeout(cfg.IdleTimeout),
		wish.WithMiddleware(
			bubbletea.Middleware(srv.teaHandler),
			srv.loggingMiddleware,
		),
	)
	if err != nil {
		return nil, fmt.Errorf("cannot create SSH server: %w", err)
	}

	srv.server = server
	return srv, nil
}

// teaHandler creates an editor session for each SSH connection.
func (s *SSHServer) teaHandler(sess ssh.Session) (tea.Model, []tea.ProgramOption) {
	pty, _, ok := sess.Pty()
	if !ok {
		s.logger.Warn("no PTY requested", "user", sess.User())
		return nil, nil
	}

	namespace := app.SSHNamespace(sess.User())
	ed := s.env.NewEditor(s.pool, namespace, 0)
	model := NewModel(ed, Options{
		Env:       s.env,
		Namespace: namespace,
		Renderer:  bubbletea.MakeRenderer(sess),
		Width:     pty.Window.Width,
		Height:    pty.Window.Height,
	})

	return model, []tea.ProgramOption{
		tea.WithAltScreen(),
		tea.WithMouseCellMotion(),
	}
}

// loggingMiddleware records who edited which namespace and for how long.
func (s *SSHServer) loggingMiddleware(next ssh.Handler) ssh.Handler {
	return func(sess ssh.Session) {
		opened := time.Now()
		l := s.logger.With("user", sess.User(), "namespace", app.SSHNamespace(sess.User()))
		l.Info("editor connected", "remote", sess.RemoteAddr().String())
		next(sess)
		l.Info("editor disconnected", "after", time.Since(opened).Round(time.Second))
	}
}

// Serve accepts connections until ctx is done, then drains open sessions
// for at most shutdownGrace.
func (s *SSHServer) Serve(ctx context.Context) error {
	s.logger.Info("listening", "address", s.config.Address)

	errc := make(chan error, 1)
	go func() {
		errc <- s.server.ListenAndServe()
	}()

	select {
	case err := <-errc:
		if errors.Is(err, ssh.ErrServerClosed) {
			return nil
		}
		return err
	case <-ctx.Done():
	}

	s.logger.Info("shutting down")
	drain, cancel := context.WithTimeout(context.Background(), shutdownGrace)
	defer cancel()
	return s.server.Shutdown(drain)
}

// Addr returns the configured listen address.
func (s *SSHServer) Addr() string {
	return s.config.Address
}
