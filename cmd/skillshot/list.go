package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/skillshot/internal/registry"
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List all available drills",
	Long:  `Shows every drill registered with the trainer.`,
	Run:   runList,
}

func runList(_ *cobra.Command, _ []string) {
	drills := registry.List()

	if len(drills) == 0 {
		fmt.Println("No drills available.")
		return
	}

	fmt.Println("Available drills:")
	fmt.Println()

	width := len("ID")
	for _, d := range drills {
		width = max(width, len(d.ID))
	}

	fmt.Printf("  %-*s  %s\n", width, "ID", "Title")
	fmt.Printf("  %-*s  %s\n", width, "--", "-----")
	for _, d := range drills {
		fmt.Printf("  %-*s  %s\n", width, d.ID, d.Title)
	}

	fmt.Println()
	fmt.Println("Run 'skillshot play <id>' to start a drill.")
}
