package main

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/parabola/internal/export"
	"github.com/vovakirdan/parabola/internal/projectile"
)

var (
	flagPointX float64
	flagPointY float64
	flagPointT float64
)

var pointCmd = &cobra.Command{
	Use:   "point",
	Short: "Find a point on the trajectory",
	Long: `Complete a point on the trajectory from any of x, y and t.

One coordinate is solved for the other two. A height uses the first time the
projectile reaches it. Two or three coordinates are checked against the
trajectory instead.

Exits with status 1 when the point is not on the trajectory.

Examples:
  parabola point --x 25
  parabola point --t 1.5 --format json
  parabola point --x 10 --y 9.55`,
	Args: cobra.NoArgs,
	Run:  runPoint,
}

func init() {
	pointCmd.Flags().Float64Var(&flagPointX, "x", 0, "Horizontal position (m)")
	pointCmd.Flags().Float64Var(&flagPointY, "y", 0, "Height (m)")
	pointCmd.Flags().Float64Var(&flagPointT, "t", 0, "Time since launch (s)")
	pointCmd.Flags().StringVarP(&flagFormat, "format", "f", "table", "Output format (see 'parabola formats')")
}

func runPoint(cmd *cobra.Command, _ []string) {
	cfg := loadConfig(cmd)

	q := pointQuery(cmd)
	if q.Empty() {
		exitf("give at least one of --x, --y, --t")
	}

	tr := projectile.Compute(cfg.Launch.Launch())
	r := export.NewReport(tr, 0).WithQuery(tr, q, cfg.Query.Tolerance)
	writeReport(r, flagFormat)

	if r.Miss() {
		logger.Info("point not on trajectory")
		os.Exit(1)
	}
}

// pointQuery builds a query from the coordinate flags that were set.
func pointQuery(cmd *cobra.Command) projectile.Query {
	var q projectile.Query
	flags := cmd.Flags()
	if flags.Changed("x") {
		q.X = &flagPointX
	}
	if flags.Changed("y") {
		q.Y = &flagPointY
	}
	if flags.Changed("t") {
		q.T = &flagPointT
	}
	return q
}
