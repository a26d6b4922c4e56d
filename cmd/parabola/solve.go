package main

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/parabola/internal/export"
	"github.com/vovakirdan/parabola/internal/projectile"
	"github.com/vovakirdan/parabola/internal/registry"
)

var (
	flagFormat string
	flagLabel  string
)

var solveCmd = &cobra.Command{
	Use:   "solve",
	Short: "Print the trajectory summary",
	Long: `Compute range, time of flight, maximum height and the apex position
for the launch. Range and time of flight show "–" when the projectile never
lands.

Examples:
  parabola solve
  parabola solve --v0 30 --deg 60 --y0 10
  parabola solve --preset moon --format json`,
	Args: cobra.NoArgs,
	Run:  runSolve,
}

func init() {
	solveCmd.Flags().StringVarP(&flagFormat, "format", "f", "table", "Output format (see 'parabola formats')")
	solveCmd.Flags().StringVar(&flagLabel, "label", "", "Label shown in the report")
}

func runSolve(cmd *cobra.Command, _ []string) {
	cfg := loadConfig(cmd)
	tr := projectile.Compute(cfg.Launch.Launch())

	r := export.NewReport(tr, 0)
	r.Label = flagLabel
	writeReport(r, flagFormat)
}

// writeReport writes r to stdout in the named format, or exits.
func writeReport(r export.Report, format string) {
	exp, err := registry.Create(format)
	if err != nil {
		exitf("%v (run 'parabola formats' for the list)", err)
	}
	if err := exp.Write(os.Stdout, r); err != nil {
		exitf("writing %s: %v", format, err)
	}
}
