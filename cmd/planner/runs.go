package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/arena-planner/internal/platform/tui"
	"github.com/vovakirdan/arena-planner/internal/registry"
)

var (
	flagRunsLimit int
	flagRunsClear bool
	flagRunsTable bool
)

var runsCmd = &cobra.Command{
	Use:   "runs [game]",
	Short: "Show best stored runs",
	Long: `Display the best runs saved with 'planner simulate --save'.

Examples:
  planner runs
  planner runs chargedup --limit 20
  planner runs --table
  planner runs chargedup --clear`,
	Args: cobra.MaximumNArgs(1),
	Run:  runRuns,
}

func init() {
	runsCmd.Flags().IntVar(&flagRunsLimit, "limit", 10, "Number of runs to show")
	runsCmd.Flags().BoolVar(&flagRunsClear, "clear", false, "Delete all stored runs of the game")
	runsCmd.Flags().BoolVarP(&flagRunsTable, "table", "t", false, "Browse runs in an interactive table")
}

func runRuns(_ *cobra.Command, args []string) {
	gameID := plannerCfg.Simulation.DefaultGame
	if len(args) == 1 {
		gameID = args[0]
	}

	if !registry.Exists(gameID) {
		fmt.Fprintf(os.Stderr, "Error: unknown game %q\n", gameID)
		fmt.Fprintln(os.Stderr, "Run 'planner list' to see available games.")
		os.Exit(1)
	}

	store, err := openStore()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening database: %v\n", err)
		os.Exit(1)
	}
	defer store.Close()

	if flagRunsClear {
		if err := store.ClearRuns(gameID); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			return
		}
		logger.Info("runs cleared", "game", gameID)
		return
	}

	if flagRunsTable {
		width, height := 80, 24
		if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
			width, height = w, h
		}
		if err := tui.RunRuns(store, gameID, width, height); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		}
		return
	}

	runs, err := store.TopRuns(gameID, flagRunsLimit)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error retrieving runs: %v\n", err)
		return
	}

	engine, err := registry.Create(gameID)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return
	}
	fmt.Printf("Best Runs - %s\n", engine.Title())
	fmt.Println()

	if len(runs) == 0 {
		fmt.Println("No runs recorded yet.")
		fmt.Println()
		fmt.Println("Run 'planner simulate <layout> --save' to store one.")
		return
	}

	fmt.Printf("  %-4s  %-8s  %-8s  %-20s  %s\n", "Rank", "Score", "Time", "Layout", "Date")
	fmt.Printf("  %-4s  %-8s  %-8s  %-20s  %s\n", "----", "-----", "----", "------", "----")
	for i, r := range runs {
		fmt.Printf("  %-4d  %-8.1f  %-8s  %-20s  %s\n",
			i+1, r.Score, fmt.Sprintf("%.1fs", r.ElapsedSecs), r.Layout, r.CreatedAt.Format("2006-01-02 15:04"))
	}
}
