package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/parabola/internal/registry"
)

var formatsCmd = &cobra.Command{
	Use:   "formats",
	Short: "List output formats",
	Long:  `Shows the output formats accepted by --format.`,
	Args:  cobra.NoArgs,
	Run:   runFormats,
}

func runFormats(_ *cobra.Command, _ []string) {
	formats := registry.List()

	if len(formats) == 0 {
		fmt.Println("No formats available.")
		return
	}

	fmt.Println("Available formats:")
	fmt.Println()

	// Calculate column widths
	maxIDLen := 2 // "ID" header
	for _, f := range formats {
		maxIDLen = max(maxIDLen, len(f.ID))
	}

	fmt.Printf("  %-*s  %s\n", maxIDLen, "ID", "Title")
	fmt.Printf("  %-*s  %s\n", maxIDLen, "--", "-----")

	for _, f := range formats {
		fmt.Printf("  %-*s  %s\n", maxIDLen, f.ID, f.Title)
	}

	fmt.Println()
	fmt.Println("Use 'parabola sample --format <id>' to pick one.")
}
