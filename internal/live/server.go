// Package live serves trajectory recomputation over WebSocket so browser and
// remote clients can drive the engine interactively.
package live

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
	"os"
	"time"

	"github.com/charmbracelet/log"
	"github.com/coder/websocket"
	"github.com/coder/websocket/wsjson"

	"github.com/vovakirdan/parabola/internal/config"
)

// Server is the live HTTP server: /healthz and the /ws endpoint.
type Server struct {
	cfg    config.Config
	addr   string
	logger *log.Logger
}

// NewServer creates a live server listening on cfg.Server.HTTPAddr.
func NewServer(cfg config.Config, logger *log.Logger) *Server {
	if logger == nil {
		logger = log.NewWithOptions(os.Stderr, log.Options{
			ReportTimestamp: true,
			Prefix:          "parabola-live",
		})
	}
	return &Server{
		cfg:    cfg,
		addr:   cfg.Server.HTTPAddr,
		logger: logger,
	}
}

// Handler returns the HTTP routes.
func (s *Server) Handler() http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("GET /healthz", s.handleHealth)
	mux.HandleFunc("GET /ws", s.handleWS)
	return mux
}

// Addr returns the server's listen address string.
func (s *Server) Addr() string {
	return s.addr
}

// ListenAndServe serves until ctx is cancelled or the listener fails.
// Open sockets are closed when ctx ends.
func (s *Server) ListenAndServe(ctx context.Context) error {
	srv := &http.Server{
		Addr:              s.addr,
		Handler:           s.Handler(),
		ReadHeaderTimeout: 10 * time.Second,
		BaseContext:       func(net.Listener) context.Context { return ctx },
	}

	s.logger.Info("starting live server", "address", s.addr)

	errCh := make(chan error, 1)
	go func() {
		errCh <- srv.ListenAndServe()
	}()

	select {
	case <-ctx.Done():
		s.logger.Info("shutting down...")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		return srv.Shutdown(shutdownCtx)
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return fmt.Errorf("live server: %w", err)
	}
}

func (s *Server) handleHealth(w http.ResponseWriter, _ *http.Request) {
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	_, _ = w.Write([]byte("ok\n"))
}

// handleWS runs one session per connection until the client goes away.
func (s *Server) handleWS(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	conn, err := websocket.Accept(w, r, &websocket.AcceptOptions{
		InsecureSkipVerify: true, // clients are served from any origin
	})
	if err != nil {
		s.logger.Error("failed to accept", "remote", r.RemoteAddr, "error", err)
		return
	}
	defer conn.CloseNow()

	sess := newSession(s.cfg)
	s.logger.Info("session started", "session", sess.id, "remote", r.RemoteAddr)
	defer s.logger.Info("session ended", "session", sess.id, "remote", r.RemoteAddr)

	for {
		var req Request
		if err := wsjson.Read(ctx, conn, &req); err != nil {
			if !isClosed(err) {
				s.logger.Warn("read failed", "session", sess.id, "error", err)
			}
			return
		}

		resp := sess.handle(req)
		if resp.Type == TypeError {
			s.logger.Debug("bad request", "session", sess.id, "error", resp.Error)
		}
		if err := wsjson.Write(ctx, conn, resp); err != nil {
			s.logger.Warn("write failed", "session", sess.id, "error", err)
			return
		}
	}
}

// isClosed reports whether err is an orderly end of the connection.
func isClosed(err error) bool {
	switch websocket.CloseStatus(err) {
	case websocket.StatusNormalClosure, websocket.StatusGoingAway:
		return true
	}
	return errors.Is(err, context.Canceled)
}
