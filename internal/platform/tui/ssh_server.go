package tui

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"
	"github.com/charmbracelet/ssh"
	"github.com/charmbracelet/wish"
	"github.com/charmbracelet/wish/bubbletea"
	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"

	"github.com/vovakirdan/skillshot/internal/config"
	"github.com/vovakirdan/skillshot/internal/core"
	"github.com/vovakirdan/skillshot/internal/games/skillshot"
	"github.com/vovakirdan/skillshot/internal/registry"
)

// shutdownTimeout bounds how long Shutdown waits for open sessions.
const shutdownTimeout = 10 * time.Second

// sessionIDKey stores the per-connection id in the SSH context.
type sessionIDKey struct{}

// SSHServerConfig holds configuration for the SSH server.
type SSHServerConfig struct {
	// Address is the host:port to listen on (e.g., ":23234").
	Address string

	// HostKeyPath is the path to the host key file.
	// If empty, a key will be auto-generated at ~/.skillshot/host_key.
	HostKeyPath string

	// IdleTimeout is how long to wait before closing idle connections.
	IdleTimeout time.Duration

	// Drill is the registry id every connection plays.
	Drill string

	// Trainer holds the constants of every session.
	Trainer config.TrainerConfig

	// Logger receives server and session logs. Nil logs to stderr.
	Logger *log.Logger
}

// DefaultSSHServerConfig returns a config with sensible defaults.
func DefaultSSHServerConfig() SSHServerConfig {
	return SSHServerConfig{
		Address:     ":23234",
		IdleTimeout: 30 * time.Minute,
		Drill:       skillshot.DrillStandard,
		Trainer:     config.DefaultTrainerConfig(),
	}
}

// SSHServer serves an independent training session to every SSH connection.
type SSHServer struct {
	config SSHServerConfig
	server *ssh.Server
	logger *log.Logger
}

// NewSSHServer creates a new SSH server with the given configuration.
func NewSSHServer(cfg SSHServerConfig) (*SSHServer, error) {
	if !registry.Exists(cfg.Drill) {
		return nil, fmt.Errorf("tui: %w %q", registry.ErrUnknownDrill, cfg.Drill)
	}

	logger := cfg.Logger
	if logger == nil {
		logger = log.NewWithOptions(os.Stderr, log.Options{
			ReportTimestamp: true,
			Prefix:          "skillshot-ssh",
		})
	}

	srv := &SSHServer{
		config: cfg,
		logger: logger,
	}

	hostKeyPath := cfg.HostKeyPath
	if hostKeyPath == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil, fmt.Errorf("tui: cannot get home directory: %w", err)
		}
		hostKeyPath = filepath.Join(home, ".skillshot", "host_key")
	}
	if err := os.MkdirAll(filepath.Dir(hostKeyPath), 0o700); err != nil {
		return nil, fmt.Errorf("tui: cannot create host key directory: %w", err)
	}

	// Middlewares run last to first: sessions are tagged before the program starts
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
		return nil, fmt.Errorf("tui: cannot create SSH server: %w", err)
	}

	srv.server = server
	return srv, nil
}

// sessionLogger returns the server logger tagged with the connection's id.
func (s *SSHServer) sessionLogger(sess ssh.Session) *log.Logger {
	if id, ok := sess.Context().Value(sessionIDKey{}).(string); ok {
		return s.logger.With("session", id)
	}
	return s.logger
}

// teaHandler creates a fresh drill and model for each SSH session.
func (s *SSHServer) teaHandler(sess ssh.Session) (tea.Model, []tea.ProgramOption) {
	logger := s.sessionLogger(sess)

	pty, _, ok := sess.Pty()
	if !ok {
		logger.Warn("no PTY requested", "user", sess.User())
		return nil, nil
	}

	rc := core.RuntimeConfig{
		ScreenW:  pty.Window.Width,
		ScreenH:  pty.Window.Height,
		TickRate: s.config.Trainer.Simulation.TickRate,
	}
	opts := []tea.ProgramOption{
		tea.WithAltScreen(),
		tea.WithMouseAllMotion(),
	}

	game, err := registry.Create(s.config.Drill)
	if err != nil {
		logger.Error("cannot create drill", "error", err)
		return nil, nil
	}
	game.Configure(s.config.Trainer)

	rc.Seed = time.Now().UnixNano()
	return NewModel(game, Options{Runtime: rc, Logger: logger}), opts
}

// loggingMiddleware assigns each connection an id and logs its lifetime.
func (s *SSHServer) loggingMiddleware(next ssh.Handler) ssh.Handler {
	return func(sess ssh.Session) {
		sess.Context().SetValue(sessionIDKey{}, uuid.NewString())
		logger := s.sessionLogger(sess)

		start := time.Now()
		logger.Info("connection opened",
			"user", sess.User(),
			"remote", sess.RemoteAddr().String(),
		)
		next(sess)
		logger.Info("connection closed",
			"user", sess.User(),
			"duration", time.Since(start).Round(time.Millisecond),
		)
	}
}

// ListenAndServe serves until ctx is cancelled or the process receives
// SIGINT/SIGTERM, then shuts down gracefully.
func (s *SSHServer) ListenAndServe(ctx context.Context) error {
	ctx, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM)
	defer stop()

	s.logger.Info("starting SSH server", "address", s.config.Address, "drill", s.config.Drill)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		if err := s.server.ListenAndServe(); err != nil && !errors.Is(err, ssh.ErrServerClosed) {
			return fmt.Errorf("tui: ssh server: %w", err)
		}
		return nil
	})
	g.Go(func() error {
		<-gctx.Done()
		s.logger.Info("shutting down...")
		return s.Shutdown()
	})

	return g.Wait()
}

// Shutdown gracefully stops the server.
func (s *SSHServer) Shutdown() error {
	ctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	if err := s.server.Shutdown(ctx); err != nil && !errors.Is(err, ssh.ErrServerClosed) {
		return fmt.Errorf("tui: shutdown: %w", err)
	}
	return nil
}

// Addr returns the server's listen address string.
func (s *SSHServer) Addr() string {
	return s.config.Address
}
