package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"github.com/vovakirdan/parabola/internal/live"
	"github.com/vovakirdan/parabola/internal/platform/tui"
	"github.com/vovakirdan/parabola/internal/storage"
)

var (
	flagSSHAddr     string
	flagHTTPAddr    string
	flagHostKey     string
	flagIdleTimeout int
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serve the lab over SSH and the live WebSocket API",
	Long: `Start an SSH server that runs the lab for every connection, and an HTTP
server with a WebSocket endpoint (/ws) that recomputes trajectories on request.

Both listen by default, on the addresses from the configuration. Pass an empty
address to turn one off. Saved shots go to the shared shot database.

Host key handling:
  - If --host-key is provided, uses that key file
  - Otherwise, auto-generates a key at ~/.parabola/host_key

Examples:
  parabola serve                     # SSH on :23234, HTTP on :8080
  parabola serve --ssh :2222         # SSH on port 2222
  parabola serve --http ""           # SSH only
  parabola serve --db ./shots.db     # Use specific database

Users can connect with:
  ssh localhost -p 23234`,
	Args: cobra.NoArgs,
	Run:  runServe,
}

func init() {
	serveCmd.Flags().StringVar(&flagSSHAddr, "ssh", "", "SSH server address (host:port, default from config)")
	serveCmd.Flags().StringVar(&flagHTTPAddr, "http", "", "Live HTTP server address (host:port, default from config)")
	serveCmd.Flags().StringVar(&flagHostKey, "host-key", "", "Path to host key file (auto-generated if not specified)")
	serveCmd.Flags().IntVar(&flagIdleTimeout, "idle-timeout", 0, "Idle timeout in minutes before disconnecting (default from config)")
}

func runServe(cmd *cobra.Command, _ []string) {
	cfg := loadConfig(cmd)
	flags := cmd.Flags()

	if flags.Changed("ssh") {
		cfg.Server.SSHAddr = flagSSHAddr
	}
	if flags.Changed("http") {
		cfg.Server.HTTPAddr = flagHTTPAddr
	}
	if flags.Changed("host-key") {
		cfg.Server.HostKey = flagHostKey
	}
	if flagIdleTimeout > 0 {
		cfg.Server.IdleTimeoutMinutes = flagIdleTimeout
	}
	if cfg.Server.SSHAddr == "" && cfg.Server.HTTPAddr == "" {
		exitf("nothing to serve: both --ssh and --http are empty")
	}

	level := logger.GetLevel()
	if !flags.Changed("log-level") {
		level = log.InfoLevel
	}
	newLogger := func(prefix string) *log.Logger {
		return log.NewWithOptions(os.Stderr, log.Options{
			ReportTimestamp: true,
			TimeFormat:      time.DateTime,
			Prefix:          prefix,
			Level:           level,
		})
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	g, ctx := errgroup.WithContext(ctx)

	if cfg.Server.SSHAddr != "" {
		var shots tui.ShotStore
		store, err := storage.Open(flagDBPath)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Warning: could not open shot database: %v\n", err)
		} else {
			defer store.Close()
			shots = store
		}

		server, err := tui.NewSSHServer(tui.NewSSHServerConfig(cfg), shots, newLogger("parabola-ssh"))
		if err != nil {
			exitf("creating SSH server: %v", err)
		}
		fmt.Printf("SSH server on %s (connect with: ssh localhost -p <port>)\n", server.Addr())
		g.Go(func() error { return server.ListenAndServe(ctx) })
	}

	if cfg.Server.HTTPAddr != "" {
		server := live.NewServer(cfg, newLogger("parabola-live"))
		fmt.Printf("Live server on %s (WebSocket at /ws)\n", server.Addr())
		g.Go(func() error { return server.ListenAndServe(ctx) })
	}

	fmt.Println("Press Ctrl+C to stop")

	if err := g.Wait(); err != nil {
		stop()
		exitf("%v", err)
	}
}
