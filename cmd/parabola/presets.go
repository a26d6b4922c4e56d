package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/parabola/internal/config"
)

var presetsCmd = &cobra.Command{
	Use:   "presets",
	Short: "List gravity presets",
	Long: `Shows the gravity presets from the configuration.
Presets may also override the launch height, speed or angle.`,
	Args: cobra.NoArgs,
	Run:  runPresets,
}

func runPresets(_ *cobra.Command, _ []string) {
	cfg, err := config.Load(flagConfig)
	if err != nil {
		exitf("%v", err)
	}

	if len(cfg.Presets) == 0 {
		fmt.Println("No presets configured.")
		return
	}

	fmt.Println("Gravity presets:")
	fmt.Println()

	// Calculate column widths
	maxNameLen := 4 // "Name" header
	for _, p := range cfg.Presets {
		maxNameLen = max(maxNameLen, len(p.Name))
	}

	fmt.Printf("  %-*s  %8s  %s\n", maxNameLen, "Name", "g (m/s²)", "Description")
	fmt.Printf("  %-*s  %8s  %s\n", maxNameLen, "----", "--------", "-----------")

	for _, p := range cfg.Presets {
		desc := p.Description
		if o := presetOverrides(p); o != "" {
			desc += " (" + o + ")"
		}
		fmt.Printf("  %-*s  %8.2f  %s\n", maxNameLen, p.Name, p.G, desc)
	}

	fmt.Println()
	fmt.Println("Run 'parabola solve --preset <name>' to use one.")
}

// presetOverrides describes the launch fields a preset sets.
func presetOverrides(p config.Preset) string {
	var parts []string
	add := func(name string, v *float64) {
		if v != nil {
			parts = append(parts, fmt.Sprintf("%s=%g", name, *v))
		}
	}
	add("x0", p.X0)
	add("y0", p.Y0)
	add("v0", p.V0)
	add("deg", p.Deg)
	return strings.Join(parts, " ")
}
