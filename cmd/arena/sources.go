package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/hazard-arena/internal/source"
)

var sourcesCmd = &cobra.Command{
	Use:   "sources",
	Short: "List all frame sources",
	Long:  `Shows the frame sources that can stand in for the camera feed.`,
	Run:   runSources,
}

func runSources(cmd *cobra.Command, args []string) {
	sources := source.List()

	if len(sources) == 0 {
		fmt.Println("No sources available.")
		return
	}

	fmt.Println("Available sources:")
	fmt.Println()

	// Calculate column widths
	maxIDLen := 2 // "ID" header
	for _, s := range sources {
		if len(s.ID) > maxIDLen {
			maxIDLen = len(s.ID)
		}
	}

	// Print header
	fmt.Printf("  %-*s  %s\n", maxIDLen, "ID", "Title")
	fmt.Printf("  %-*s  %s\n", maxIDLen, "--", "-----")

	for _, s := range sources {
		fmt.Printf("  %-*s  %s\n", maxIDLen, s.ID, s.Title)
	}

	fmt.Println()
	fmt.Println("Run 'arena play --source <id>' to use a source.")
}
