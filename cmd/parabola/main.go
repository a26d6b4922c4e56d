// parabola computes and explores 2D projectile trajectories in the terminal.
//
// Usage:
//
//	parabola solve             - Print range, apex and time of flight
//	parabola point --x 10      - Complete a point on the trajectory
//	parabola sample            - Sample the flight path
//	parabola plot              - Draw the trajectory as text
//	parabola lab               - Interactive cannon lab
//	parabola presets           - List gravity presets
//	parabola shots             - Manage saved shots
//	parabola formats           - List output formats
//	parabola serve             - Serve the lab over SSH and WebSocket
//
// Global flags:
//
//	--config <path>   - Custom configuration YAML
//	--preset <name>   - Apply a gravity preset (earth, moon, ...)
//	--db <path>       - Shot database (default: ~/.parabola/shots.db)
//	--x0 --y0 --v0 --deg --g  - Override the launch
package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/parabola/internal/config"
	// Import exporters to register them
	_ "github.com/vovakirdan/parabola/internal/formats"
	"github.com/vovakirdan/parabola/internal/storage"
)

var (
	// Global flags
	flagConfig   string
	flagDBPath   string
	flagPreset   string
	flagLogLevel string
	flagRaw      bool

	// Launch overrides, applied only when set
	flagX0  float64
	flagY0  float64
	flagV0  float64
	flagDeg float64
	flagG   float64
)

var logger = log.NewWithOptions(os.Stderr, log.Options{
	Prefix: "parabola",
})

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "parabola",
	Short: "Parabola - projectile motion in your terminal",
	Long: `Parabola computes closed-form 2D projectile trajectories: range, apex,
time of flight and any point along the path.

Available commands:
  solve    - Trajectory summary
  point    - Find a point on the trajectory from x, y or t
  sample   - Sample the flight path
  plot     - Draw the trajectory as text
  lab      - Interactive cannon lab
  presets  - List gravity presets
  shots    - Saved shots
  formats  - Output formats
  serve    - SSH and WebSocket servers

Examples:
  parabola solve --v0 30 --deg 60
  parabola point --x 25 --preset moon
  parabola sample --points 20 --format csv
  parabola lab --pick
  parabola serve --ssh :2222 --http :8080`,
	PersistentPreRun: func(_ *cobra.Command, _ []string) {
		level, err := log.ParseLevel(flagLogLevel)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: invalid --log-level %q\n", flagLogLevel)
			os.Exit(1)
		}
		logger.SetLevel(level)
	},
}

func init() {
	pf := rootCmd.PersistentFlags()
	pf.StringVar(&flagConfig, "config", "", "Path to custom configuration YAML")
	pf.StringVar(&flagDBPath, "db", storage.DefaultPath, "Path to shot database")
	pf.StringVar(&flagPreset, "preset", "", "Gravity preset: "+strings.Join(config.DefaultConfig().PresetNames(), ", "))
	pf.StringVar(&flagLogLevel, "log-level", "warn", "Log level: debug, info, warn, error")
	pf.BoolVar(&flagRaw, "raw", false, "Use the launch as given, without clamping it to valid ranges")

	pf.Float64Var(&flagX0, "x0", 0, "Initial x (m)")
	pf.Float64Var(&flagY0, "y0", 0, "Initial height (m)")
	pf.Float64Var(&flagV0, "v0", 0, "Initial speed (m/s)")
	pf.Float64Var(&flagDeg, "deg", 0, "Launch angle (degrees from horizontal)")
	pf.Float64Var(&flagG, "g", 0, "Gravity (m/s², positive downward)")

	// Add subcommands
	rootCmd.AddCommand(solveCmd)
	rootCmd.AddCommand(pointCmd)
	rootCmd.AddCommand(sampleCmd)
	rootCmd.AddCommand(plotCmd)
	rootCmd.AddCommand(labCmd)
	rootCmd.AddCommand(presetsCmd)
	rootCmd.AddCommand(shotsCmd)
	rootCmd.AddCommand(formatsCmd)
	rootCmd.AddCommand(serveCmd)
}

// exitf prints an error and exits with status 1.
func exitf(format string, args ...any) {
	fmt.Fprintf(os.Stderr, "Error: "+format+"\n", args...)
	os.Exit(1)
}

// loadConfig loads the configuration, applies --preset and the launch flags,
// and exits on any error.
func loadConfig(cmd *cobra.Command) config.Config {
	cfg, err := config.Load(flagConfig)
	if err != nil {
		exitf("%v", err)
	}

	if flagPreset != "" {
		if err := config.ApplyPreset(&cfg, flagPreset); err != nil {
			exitf("%v (available: %s)", err, strings.Join(cfg.PresetNames(), ", "))
		}
	}

	cfg.Launch = launchOverrides(cmd, cfg.Launch)
	if !flagRaw {
		cfg.Launch = cfg.Launch.Sanitize()
	}

	logger.Debug("launch",
		"x0", cfg.Launch.X0, "y0", cfg.Launch.Y0, "v0", cfg.Launch.V0,
		"deg", cfg.Launch.Deg, "g", cfg.Launch.G, "preset", flagPreset)
	return cfg
}

// launchOverrides replaces the fields of l whose flags were given.
func launchOverrides(cmd *cobra.Command, l config.LaunchConfig) config.LaunchConfig {
	flags := cmd.Flags()
	if flags.Changed("x0") {
		l.X0 = flagX0
	}
	if flags.Changed("y0") {
		l.Y0 = flagY0
	}
	if flags.Changed("v0") {
		l.V0 = flagV0
	}
	if flags.Changed("deg") {
		l.Deg = flagDeg
	}
	if flags.Changed("g") {
		l.G = flagG
	}
	return l
}

// openStore opens the shot database or exits.
func openStore() *storage.Store {
	store, err := storage.Open(flagDBPath)
	if err != nil {
		exitf("opening shot database: %v", err)
	}
	logger.Debug("opened shot database", "path", flagDBPath)
	return store
}
