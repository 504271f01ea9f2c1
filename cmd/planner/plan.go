package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/arena-planner/internal/planner"
)

var flagPlanVelocity float64

var planCmd = &cobra.Command{
	Use:   "plan <layout>",
	Short: "Show per-instruction timings",
	Long: `Resolve every instruction of a layout's script and print where the robot
ends up and how long each instruction takes.

Examples:
  planner plan ./auto.yaml
  planner plan auto --velocity 250`,
	Args: cobra.ExactArgs(1),
	Run:  runPlan,
}

func init() {
	planCmd.Flags().Float64Var(&flagPlanVelocity, "velocity", 0, "Robot velocity in real-world units per second (default from config)")
}

func runPlan(_ *cobra.Command, args []string) {
	layout, err := resolveLayout(args[0])
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	cal := layout.Calibration(velocityOr(flagPlanVelocity))
	if !cal.Ready() {
		fmt.Fprintf(os.Stderr, "Error: layout %q is not calibrated\n", layout.Name)
		os.Exit(1)
	}

	moves, err := planner.ComputePath(layout.Instrs, layout.Locations, cal)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("Plan - %s (velocity %.1f)\n", layout.Name, cal.Velocity)
	fmt.Println()
	fmt.Printf("  %-3s  %-28s  %-16s  %14s  %8s  %8s\n", "#", "Instruction", "Ends at", "Position", "Seconds", "Clock")
	fmt.Printf("  %-3s  %-28s  %-16s  %14s  %8s  %8s\n", "-", "-----------", "-------", "--------", "-------", "-----")

	times := planner.RunTimes(moves)
	var clock float64
	for i, m := range moves {
		clock += times[i]
		fmt.Printf("  %-3d  %-28s  %-16s  %6.0f,%-7.0f  %8.2f  %8.2f\n",
			i+1, m.Runnable.String(), m.EndLoc.LocID, m.EndPosition.X, m.EndPosition.Y, times[i], clock)
	}

	fmt.Println()
	fmt.Printf("Total: %.2fs\n", clock)
}
