package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-miner/internal/registry"
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List all world presets",
	Long:  `Shows every world preset that can be played.`,
	Run:   runList,
}

func runList(_ *cobra.Command, _ []string) {
	games := registry.List()

	if len(games) == 0 {
		fmt.Println("No worlds available.")
		return
	}

	fmt.Println("Available worlds:")
	fmt.Println()

	maxIDLen := 2 // "ID" header
	for _, g := range games {
		if len(g.ID) > maxIDLen {
			maxIDLen = len(g.ID)
		}
	}

	fmt.Printf("  %-*s  %-9s  %s\n", maxIDLen, "ID", "Size", "Title")
	fmt.Printf("  %-*s  %-9s  %s\n", maxIDLen, "--", "----", "-----")

	for _, g := range games {
		size := "config"
		if p, ok := findPreset(g.ID); ok && p.Width > 0 {
			size = fmt.Sprintf("%dx%d", p.Width, p.Height)
		}
		fmt.Printf("  %-*s  %-9s  %s\n", maxIDLen, g.ID, size, g.Title)
	}

	fmt.Println()
	fmt.Println("Run 'miner play <id>' to play a world.")
}
