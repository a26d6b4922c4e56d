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

	"github.com/vovakirdan/parabola/internal/config"
	"github.com/vovakirdan/parabola/internal/core"
)

// SSHServerConfig holds configuration for the SSH server.
type SSHServerConfig struct {
	// Address is the host:port to listen on (e.g., ":23234").
	Address string

	// HostKeyPath is the path to the host key file.
	// If empty, a key will be auto-generated at ~/.parabola/host_key.
	HostKeyPath string

	// IdleTimeout is how long to wait before closing idle connections.
	IdleTimeout time.Duration

	// App is the configuration every session starts from.
	App config.Config
}

// NewSSHServerConfig builds the server settings from the loaded configuration.
func NewSSHServerConfig(cfg config.Config) SSHServerConfig {
	return SSHServerConfig{
		Address:     cfg.Server.SSHAddr,
		HostKeyPath: cfg.Server.HostKey,
		IdleTimeout: cfg.Server.IdleTimeout(),
		App:         cfg,
	}
}

// SSHServer serves the lab to remote terminals over Wish.
type SSHServer struct {
	config SSHServerConfig
	server *ssh.Server
	store  ShotStore
	logger *log.Logger
}

// NewSSHServer creates a new SSH server. store may be nil, in which case
// sessions cannot save shots. The caller owns the store.
func NewSSHServer(cfg SSHServerConfig, store ShotStore, logger *log.Logger) (*SSHServer, error) {
	if logger == nil {
		logger = log.NewWithOptions(os.Stderr, log.Options{
			ReportTimestamp: true,
			Prefix:          "parabola-ssh",
		})
	}

	srv := &SSHServer{
		config: cfg,
		store:  store,
		logger: logger,
	}

	// Resolve host key path
	hostKeyPath := cfg.HostKeyPath
	if hostKeyPath == "" {
		hostKeyPath = config.UserPath("host_key")
		if hostKeyPath == "" {
			return nil, errors.New("cannot get home directory for host key")
		}
	}

	// Ensure host key directory exists
	if err := os.MkdirAll(filepath.Dir(hostKeyPath), 0o700); err != nil {
		return nil, fmt.Errorf("cannot create host key directory: %w", err)
	}

	opts := []ssh.Option{
		wish.WithAddress(cfg.Address),
		wish.WithHostKeyPath(hostKeyPath),
		wish.WithIdleTimeout(cfg.IdleTimeout),
		wish.WithMiddleware(
			bubbletea.Middleware(srv.teaHandler),
			srv.loggingMiddleware,
		),
	}

	server, err := wish.NewServer(opts...)
	if err != nil {
		return nil, fmt.Errorf("cannot create SSH server: %w", err)
	}

	srv.server = server
	return srv, nil
}

// teaHandler creates a Bubble Tea program for each SSH session.
func (s *SSHServer) teaHandler(sshSession ssh.Session) (tea.Model, []tea.ProgramOption) {
	pty, _, ok := sshSession.Pty()
	if !ok {
		s.logger.Warn("no PTY requested", "user", sshSession.User())
		return nil, nil
	}

	rc := s.config.App.Lab.Runtime().WithSize(pty.Window.Width, pty.Window.Height)
	model := NewSessionModel(s.config.App, s.store, rc, sshSession.User())

	return model, []tea.ProgramOption{
		tea.WithAltScreen(),
		tea.WithMouseCellMotion(),
	}
}

// loggingMiddleware logs SSH session events.
func (s *SSHServer) loggingMiddleware(next ssh.Handler) ssh.Handler {
	return func(sshSession ssh.Session) {
		s.logger.Info("session started",
			"user", sshSession.User(),
			"remote", sshSession.RemoteAddr().String(),
		)
		next(sshSession)
		s.logger.Info("session ended",
			"user", sshSession.User(),
			"remote", sshSession.RemoteAddr().String(),
		)
	}
}

// ListenAndServe starts the SSH server and blocks until ctx is cancelled or
// the listener fails.
func (s *SSHServer) ListenAndServe(ctx context.Context) error {
	s.logger.Info("starting SSH server", "address", s.config.Address)

	errCh := make(chan error, 1)
	go func() {
		errCh <- s.server.ListenAndServe()
	}()

	select {
	case <-ctx.Done():
		s.logger.Info("shutting down...")
		return s.Shutdown()
	case err := <-errCh:
		if errors.Is(err, ssh.ErrServerClosed) {
			return nil
		}
		return fmt.Errorf("ssh server: %w", err)
	}
}

// Shutdown gracefully stops the server.
func (s *SSHServer) Shutdown() error {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	return s.server.Shutdown(ctx)
}

// Addr returns the server's listen address string.
func (s *SSHServer) Addr() string {
	return s.config.Address
}

// sessionMode is the screen a session is on.
type sessionMode int

const (
	modeMenu sessionMode = iota
	modeLab
	modeHistory
)

// SessionModel manages the full session flow: menu -> lab or history -> menu.
// This is the top-level model used for SSH sessions.
type SessionModel struct {
	cfg      config.Config
	store    ShotStore
	runtime  core.RuntimeConfig
	username string
	mode     sessionMode
	menu     MenuModel
	lab      LabModel
	history  HistoryModel
	status   string
	quitting bool
}

// NewSessionModel creates a new session model.
func NewSessionModel(cfg config.Config, store ShotStore, rc core.RuntimeConfig, username string) SessionModel {
	return SessionModel{
		cfg:      cfg,
		store:    store,
		runtime:  rc,
		username: username,
		menu:     NewMenuModel(cfg, rc),
	}
}

// Init initializes the session.
func (m SessionModel) Init() tea.Cmd {
	return m.menu.Init()
}

// Update handles messages for the session.
func (m SessionModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	// Handle window resize globally
	if wsm, ok := msg.(tea.WindowSizeMsg); ok {
		m.runtime = m.runtime.WithSize(wsm.Width, wsm.Height)
	}

	switch m.mode {
	case modeLab:
		return m.updateLab(msg)
	case modeHistory:
		return m.updateHistory(msg)
	}
	return m.updateMenu(msg)
}

// updateMenu handles updates when in menu mode.
func (m SessionModel) updateMenu(msg tea.Msg) (tea.Model, tea.Cmd) {
	newMenu, cmd := m.menu.Update(msg)
	if menuModel, ok := newMenu.(MenuModel); ok {
		m.menu = menuModel
	}

	switch {
	case m.menu.IsQuitting():
		m.quitting = true
		return m, tea.Quit

	case m.menu.WantsHistory():
		m.history = NewHistoryModel(m.store, m.runtime.ScreenW, m.runtime.ScreenH)
		m.mode = modeHistory
		return m, m.history.Init()

	case m.menu.Selected() != nil:
		lab, err := m.newLab(m.menu.Selected().Preset)
		if err != nil {
			m.status = err.Error()
			m.menu = NewMenuModel(m.cfg, m.runtime)
			return m, nil
		}
		m.lab = lab
		m.mode = modeLab
		return m, m.lab.Init()
	}

	return m, cmd
}

// updateLab handles updates when in the lab.
func (m SessionModel) updateLab(msg tea.Msg) (tea.Model, tea.Cmd) {
	newModel, cmd := m.lab.Update(msg)
	if labModel, ok := newModel.(LabModel); ok {
		m.lab = labModel
	}

	if m.lab.BackToMenu() {
		return m.backToMenu()
	}

	if m.lab.IsQuitting() {
		m.quitting = true
		return m, tea.Quit
	}

	return m, cmd
}

// updateHistory handles updates when in the shot history.
func (m SessionModel) updateHistory(msg tea.Msg) (tea.Model, tea.Cmd) {
	newModel, cmd := m.history.Update(msg)
	if historyModel, ok := newModel.(HistoryModel); ok {
		m.history = historyModel
	}

	switch {
	case m.history.IsQuitting():
		m.quitting = true
		return m, tea.Quit

	case m.history.IsGoingBack():
		return m.backToMenu()

	case m.history.Opened() != nil:
		shot := m.history.Opened()
		m.lab = NewLabModel(m.cfg, m.store, m.runtime).
			WithLaunch(config.FromLaunch(shot.Launch)).
			WithLabel(shot.Label)
		m.mode = modeLab
		return m, m.lab.Init()
	}

	return m, cmd
}

func (m SessionModel) backToMenu() (tea.Model, tea.Cmd) {
	m.mode = modeMenu
	m.menu = NewMenuModel(m.cfg, m.runtime)
	return m, m.menu.Init()
}

// newLab opens the lab on the named preset; an empty name keeps the
// configured launch.
func (m SessionModel) newLab(preset string) (LabModel, error) {
	cfg := m.cfg
	label := "lab"
	if preset != "" {
		if err := config.ApplyPreset(&cfg, preset); err != nil {
			return LabModel{}, err
		}
		label = preset
	}
	return NewLabModel(cfg, m.store, m.runtime).WithLabel(label), nil
}

// View renders the current view.
func (m SessionModel) View() string {
	if m.quitting {
		return ""
	}

	switch m.mode {
	case modeLab:
		return m.lab.View()
	case modeHistory:
		return m.history.View()
	}

	if m.status != "" {
		return m.menu.View() + "\n" + labErrorStyle.Render(m.status)
	}
	return m.menu.View()
}
