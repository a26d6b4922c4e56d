package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/parabola/internal/config"
	"github.com/vovakirdan/parabola/internal/core"
	"github.com/vovakirdan/parabola/internal/platform/tui"
	"github.com/vovakirdan/parabola/internal/storage"
)

var flagPick bool

var labCmd = &cobra.Command{
	Use:   "lab",
	Short: "Start the interactive cannon lab",
	Long: `Start the interactive lab: adjust the launch, watch the trajectory,
fire the cannon and look up points along the path.

Controls:
  Up/Down/Tab   - Select parameter
  Left/Right    - Adjust parameter
  Mouse drag    - Drag the cannon to set the launch height
  Space/F       - Fire
  /             - Point query (x, y or t)
  S             - Save shot
  Ctrl+S        - Save a text screenshot
  R             - Reset
  Esc/B         - Back to the preset menu
  Q             - Quit

Examples:
  parabola lab
  parabola lab --preset moon
  parabola lab --pick
  parabola lab --label "test shot" --v0 35`,
	Args: cobra.NoArgs,
	Run:  runLab,
}

func init() {
	labCmd.Flags().BoolVar(&flagPick, "pick", false, "Start with the preset picker menu")
	labCmd.Flags().StringVar(&flagLabel, "label", "", "Label for saved shots (default: preset name or \"lab\")")
}

func runLab(cmd *cobra.Command, _ []string) {
	cfg := loadConfig(cmd)

	var shots tui.ShotStore
	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: could not open shot database: %v\n", err)
	} else {
		defer store.Close()
		shots = store
	}

	width, height := terminalSize()
	rc := cfg.Lab.Runtime().WithSize(width, height)

	if !flagPick {
		m := tui.NewLabModel(cfg, shots, rc).WithLabel(labLabel(flagPreset))
		if _, err := tui.RunLab(m); err != nil {
			fmt.Fprintf(os.Stderr, "Error running lab: %v\n", err)
		}
		return
	}

	runPicker(cfg, shots, rc)
}

// runPicker loops between the preset menu, the lab and the shot history.
func runPicker(cfg config.Config, shots tui.ShotStore, rc core.RuntimeConfig) {
	for {
		menuResult, err := tui.RunMenu(cfg, rc)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			return
		}

		// Update config with any size changes
		rc = menuResult.Config

		if menuResult.Quit {
			return
		}

		if menuResult.WantsHistory {
			opened, goBack, err := tui.RunHistory(shots, rc.ScreenW, rc.ScreenH)
			if err != nil {
				fmt.Fprintf(os.Stderr, "Error: %v\n", err)
				return
			}
			if opened != nil {
				m := tui.NewLabModel(cfg, shots, rc).
					WithLaunch(config.FromLaunch(opened.Launch)).
					WithLabel(opened.Label)
				if !runLabScreen(m) {
					return
				}
				continue
			}
			if goBack {
				continue
			}
			return
		}

		labCfg := cfg
		if menuResult.Preset != "" {
			if err := config.ApplyPreset(&labCfg, menuResult.Preset); err != nil {
				fmt.Fprintf(os.Stderr, "Error: %v\n", err)
				continue
			}
		}
		if !runLabScreen(tui.NewLabModel(labCfg, shots, rc).WithLabel(labLabel(menuResult.Preset))) {
			return
		}
	}
}

// runLabScreen runs the lab and reports whether to return to the menu.
func runLabScreen(m tui.LabModel) bool {
	back, err := tui.RunLab(m)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error running lab: %v\n", err)
		return false
	}
	return back
}

// labLabel picks the label saved shots are stored under.
func labLabel(preset string) string {
	switch {
	case flagLabel != "":
		return flagLabel
	case preset != "":
		return preset
	}
	return "lab"
}
