package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/arena-planner/internal/registry"
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List games and saved layouts",
	Long:  `Shows every registered game engine and every layout saved in the database.`,
	Run:   runList,
}

func runList(_ *cobra.Command, _ []string) {
	games := registry.List()

	fmt.Println("Games:")
	fmt.Println()

	maxIDLen := 2 // "ID" header
	for _, g := range games {
		maxIDLen = max(maxIDLen, len(g.ID))
	}

	fmt.Printf("  %-*s  %s\n", maxIDLen, "ID", "Title")
	fmt.Printf("  %-*s  %s\n", maxIDLen, "--", "-----")
	for _, g := range games {
		fmt.Printf("  %-*s  %s\n", maxIDLen, g.ID, g.Title)
	}

	store, err := openStore()
	if err != nil {
		logger.Warn("could not open database, skipping saved layouts", "error", err)
		return
	}
	defer store.Close()

	layouts, err := store.ListLayouts()
	if err != nil {
		logger.Warn("could not list layouts", "error", err)
		return
	}

	fmt.Println()
	fmt.Println("Saved layouts:")
	fmt.Println()
	if len(layouts) == 0 {
		fmt.Println("  (none) - save one with 'planner layout save <file>'")
		return
	}
	for _, l := range layouts {
		fmt.Printf("  %-24s  %-10s  %s\n", l.Name, l.GameID, l.UpdatedAt.Format("2006-01-02 15:04"))
	}
}
