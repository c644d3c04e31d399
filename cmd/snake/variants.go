package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-snake/internal/games/snake"
	"github.com/vovakirdan/tui-snake/internal/registry"
)

var variantsCmd = &cobra.Command{
	Use:   "variants",
	Short: "List all rule variants",
	Long:  `Shows the registered rule variants with their growth and self-collision rules.`,
	Args:  cobra.NoArgs,
	Run:   runVariants,
}

func runVariants(cmd *cobra.Command, args []string) {
	variants := registry.List()

	if len(variants) == 0 {
		fmt.Println("No variants available.")
		return
	}

	fmt.Println("Available variants:")
	fmt.Println()

	// Calculate column widths
	maxIDLen := 2 // "ID" header
	maxTitleLen := 5
	for _, v := range variants {
		maxIDLen = max(maxIDLen, len(v.ID))
		maxTitleLen = max(maxTitleLen, len(v.Title))
	}

	fmt.Printf("  %-*s  %-*s  %s\n", maxIDLen, "ID", maxTitleLen, "Title", "Rules")
	fmt.Printf("  %-*s  %-*s  %s\n", maxIDLen, "--", maxTitleLen, "-----", "-----")

	for _, v := range variants {
		rules := ""
		if g, err := registry.Create(v.ID); err == nil {
			if sg, ok := g.(*snake.Game); ok {
				rules = sg.Rules().String()
			}
		}
		fmt.Printf("  %-*s  %-*s  %s\n", maxIDLen, v.ID, maxTitleLen, v.Title, rules)
	}

	fmt.Println()
	fmt.Println("Run 'snake play <id>' to play a variant.")
}
