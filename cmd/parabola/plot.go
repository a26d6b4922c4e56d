package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/parabola/internal/plot"
	"github.com/vovakirdan/parabola/internal/platform/tui"
	"github.com/vovakirdan/parabola/internal/projectile"
)

var (
	flagWidth   int
	flagHeight  int
	flagBallAt  float64
	flagColor   string
	flagNoLabel bool
)

var plotCmd = &cobra.Command{
	Use:   "plot",
	Short: "Draw the trajectory as text",
	Long: `Draw the trajectory, apex, landing point and cannon to stdout.

The plot fills the terminal unless --width and --height are given.
Colour is used only when stdout is a terminal, unless --color says otherwise.

Examples:
  parabola plot
  parabola plot --width 100 --height 30 --color never > shot.txt
  parabola plot --ball 1.2 --preset mars`,
	Args: cobra.NoArgs,
	Run:  runPlot,
}

func init() {
	plotCmd.Flags().IntVar(&flagWidth, "width", 0, "Plot width in columns (default: terminal width)")
	plotCmd.Flags().IntVar(&flagHeight, "height", 0, "Plot height in rows (default: terminal height)")
	plotCmd.Flags().Float64Var(&flagBallAt, "ball", 0, "Draw the ball at this time (s)")
	plotCmd.Flags().StringVar(&flagColor, "color", "auto", "Colour output: auto, always, never")
	plotCmd.Flags().BoolVar(&flagNoLabel, "no-labels", false, "Leave out the apex and landing captions")
}

func runPlot(cmd *cobra.Command, _ []string) {
	cfg := loadConfig(cmd)

	width, height := terminalSize()
	height-- // Room for the shell prompt
	if flagWidth > 0 {
		width = flagWidth
	}
	if flagHeight > 0 {
		height = flagHeight
	}

	tr := projectile.Compute(cfg.Launch.Launch())
	opts := cfg.Plot.Options()
	opts.Labels = !flagNoLabel
	if cmd.Flags().Changed("ball") {
		ball := tr.PositionAt(flagBallAt)
		opts.Ball = &ball
	}

	screen := plot.Render(tr, width, height, cfg.Plot.Layout(), opts)

	var colour bool
	switch flagColor {
	case "always":
		colour = true
	case "never":
		colour = false
	case "auto":
		colour = term.IsTerminal(int(os.Stdout.Fd()))
	default:
		exitf("invalid --color %q (want auto, always or never)", flagColor)
	}

	if colour {
		fmt.Println(tui.RenderScreen(screen))
	} else {
		fmt.Println(screen.String())
	}
}

// terminalSize returns the size of stdout, or 80x24 when it is not a terminal.
func terminalSize() (int, int) {
	width, height := 80, 24
	if w, h, err := term.GetSize(int(os.Stdout.Fd())); err == nil {
		width = w
		height = h
	}
	return width, height
}
