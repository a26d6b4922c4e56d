package main

import (
	"github.com/spf13/cobra"

	"github.com/vovakirdan/parabola/internal/export"
	"github.com/vovakirdan/parabola/internal/projectile"
)

var flagPoints int

var sampleCmd = &cobra.Command{
	Use:   "sample",
	Short: "Sample the flight path",
	Long: `Sample the trajectory at evenly spaced times from launch to impact.
Produces points+1 samples. A projectile that never lands is sampled over an
estimated window instead.

Examples:
  parabola sample
  parabola sample --points 20 --format csv > path.csv
  parabola sample --preset jupiter --format yaml`,
	Args: cobra.NoArgs,
	Run:  runSample,
}

func init() {
	sampleCmd.Flags().IntVarP(&flagPoints, "points", "n", 0, "Number of intervals (default from config)")
	sampleCmd.Flags().StringVarP(&flagFormat, "format", "f", "table", "Output format (see 'parabola formats')")
	sampleCmd.Flags().StringVar(&flagLabel, "label", "", "Label shown in the report")
}

func runSample(cmd *cobra.Command, _ []string) {
	cfg := loadConfig(cmd)

	n := cfg.Sampling.Points
	if flagPoints > 0 {
		n = flagPoints
	}

	tr := projectile.Compute(cfg.Launch.Launch())
	r := export.NewReport(tr, n)
	r.Label = flagLabel
	writeReport(r, flagFormat)
}
