package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/parabola/internal/config"
	"github.com/vovakirdan/parabola/internal/export"
	"github.com/vovakirdan/parabola/internal/platform/tui"
	"github.com/vovakirdan/parabola/internal/storage"
)

var (
	flagLongest bool
	flagTUI     bool
	flagClear   bool
	flagLimit   int
)

var shotsCmd = &cobra.Command{
	Use:   "shots",
	Short: "List and manage saved shots",
	Long: `Display saved shots, most recent first, or by range with --longest.

Examples:
  parabola shots
  parabola shots --longest --limit 5
  parabola shots --tui
  parabola shots save "first try" --v0 25
  parabola shots show 1a2b3c4d --format json
  parabola shots rm 1a2b3c4d
  parabola shots --clear`,
	Args: cobra.NoArgs,
	Run:  runShots,
}

var shotsSaveCmd = &cobra.Command{
	Use:   "save [label]",
	Short: "Save the current launch",
	Args:  cobra.MaximumNArgs(1),
	Run:   runShotsSave,
}

var shotsShowCmd = &cobra.Command{
	Use:   "show <id>",
	Short: "Show a saved shot",
	Long:  `Print the full report of a saved shot. The ID may be abbreviated.`,
	Args:  cobra.ExactArgs(1),
	Run:   runShotsShow,
}

var shotsRmCmd = &cobra.Command{
	Use:   "rm <id>",
	Short: "Delete a saved shot",
	Args:  cobra.ExactArgs(1),
	Run:   runShotsRm,
}

func init() {
	shotsCmd.Flags().BoolVar(&flagLongest, "longest", false, "Order by range instead of date")
	shotsCmd.Flags().BoolVar(&flagTUI, "tui", false, "Browse shots interactively")
	shotsCmd.Flags().BoolVar(&flagClear, "clear", false, "Delete all saved shots")
	shotsCmd.Flags().IntVar(&flagLimit, "limit", 10, "Number of shots to list")

	shotsShowCmd.Flags().StringVarP(&flagFormat, "format", "f", "table", "Output format (see 'parabola formats')")
	shotsShowCmd.Flags().IntVarP(&flagPoints, "points", "n", 0, "Include this many sample intervals")

	shotsCmd.AddCommand(shotsSaveCmd)
	shotsCmd.AddCommand(shotsShowCmd)
	shotsCmd.AddCommand(shotsRmCmd)
}

func runShots(cmd *cobra.Command, _ []string) {
	store := openStore()
	defer store.Close()

	switch {
	case flagClear:
		n, err := store.ClearShots()
		if err != nil {
			store.Close()
			exitf("%v", err)
		}
		fmt.Printf("Deleted %d shots.\n", n)
		return

	case flagTUI:
		runShotsTUI(cmd, store)
		return
	}

	var (
		shots []storage.Shot
		err   error
	)
	title := "Recent shots"
	if flagLongest {
		title = "Longest shots"
		shots, err = store.LongestShots(flagLimit)
	} else {
		shots, err = store.RecentShots(flagLimit)
	}
	if err != nil {
		store.Close()
		exitf("retrieving shots: %v", err)
	}

	fmt.Println(title)
	fmt.Println()

	if len(shots) == 0 {
		fmt.Println("No shots saved yet.")
		fmt.Println()
		fmt.Println("Run 'parabola shots save' or press s in the lab to save one.")
		return
	}

	fmt.Printf("  %-8s  %-12s  %7s  %6s  %6s  %9s  %s\n", "ID", "Label", "v0", "Angle", "g", "Range", "Saved")
	fmt.Printf("  %-8s  %-12s  %7s  %6s  %6s  %9s  %s\n", "--", "-----", "--", "-----", "-", "-----", "-----")

	for _, s := range shots {
		rangeStr := export.Unavailable
		if s.Lands {
			rangeStr = fmt.Sprintf("%.2f", s.Range)
		}
		fmt.Printf("  %-8s  %-12s  %7.2f  %6.1f  %6.2f  %9s  %s\n",
			s.ShortID(), truncate(s.Label, 12), s.Launch.V0, s.Launch.Deg, s.Launch.G,
			rangeStr, s.CreatedAt.Local().Format("2006-01-02 15:04"))
	}

	if stats, err := store.Stats(); err == nil {
		fmt.Println()
		fmt.Printf("Total: %d  Landed: %d  Longest: %.2f m  Highest: %.2f m\n",
			stats.Total, stats.Landed, stats.LongestRange, stats.HighestApex)
	}
}

// runShotsTUI opens the history browser and the lab for an opened shot.
func runShotsTUI(cmd *cobra.Command, store *storage.Store) {
	cfg := loadConfig(cmd)
	width, height := terminalSize()
	rc := cfg.Lab.Runtime().WithSize(width, height)

	for {
		opened, _, err := tui.RunHistory(store, rc.ScreenW, rc.ScreenH)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			return
		}
		if opened == nil {
			return
		}

		m := tui.NewLabModel(cfg, store, rc).
			WithLaunch(config.FromLaunch(opened.Launch)).
			WithLabel(opened.Label)
		if !runLabScreen(m) {
			return
		}
	}
}

func runShotsSave(cmd *cobra.Command, args []string) {
	cfg := loadConfig(cmd)
	label := labLabel(flagPreset)
	if len(args) == 1 {
		label = args[0]
	}

	store := openStore()
	defer store.Close()

	shot, err := store.SaveShot(label, cfg.Launch.Launch())
	if err != nil {
		store.Close()
		exitf("%v", err)
	}

	logger.Info("shot saved", "id", shot.ID, "label", shot.Label)
	fmt.Printf("Saved shot %s (%s)\n", shot.ShortID(), shot.Label)
}

func runShotsShow(_ *cobra.Command, args []string) {
	store := openStore()
	defer store.Close()

	shot, err := store.Shot(args[0])
	if err != nil {
		store.Close()
		exitf("%v", shotError(args[0], err))
	}

	r := export.NewReport(shot.Trajectory(), flagPoints)
	r.Label = shot.Label
	writeReport(r, flagFormat)
}

func runShotsRm(_ *cobra.Command, args []string) {
	store := openStore()
	defer store.Close()

	shot, err := store.DeleteShot(args[0])
	if err != nil {
		store.Close()
		exitf("%v", shotError(args[0], err))
	}
	fmt.Printf("Deleted shot %s (%s)\n", shot.ShortID(), shot.Label)
}

// shotError adds a hint to lookup errors.
func shotError(id string, err error) error {
	switch {
	case errors.Is(err, storage.ErrShotNotFound):
		return fmt.Errorf("no shot with id %q (run 'parabola shots' to list them)", id)
	case errors.Is(err, storage.ErrAmbiguousID):
		return fmt.Errorf("id %q matches several shots, give more characters", id)
	}
	return err
}

// truncate shortens s to n runes.
func truncate(s string, n int) string {
	r := []rune(s)
	if len(r) <= n {
		return s
	}
	return string(r[:n-1]) + "…"
}
