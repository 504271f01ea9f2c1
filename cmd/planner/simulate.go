package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/arena-planner/internal/storage"
)

var (
	flagSimGame     string
	flagSimVelocity float64
	flagSimRate     float64
	flagSimSave     bool
	flagSimSteps    bool
)

var simulateCmd = &cobra.Command{
	Use:   "simulate <layout>",
	Short: "Simulate and score a run",
	Long: `Plan a layout's script, sample the trajectory at the animation rate and
score it with the game engine.

The engine is taken from --game, then from the layout's game_id, then from
the planner config's default game.

Examples:
  planner simulate ./auto.yaml
  planner simulate auto --rate 60 --save
  planner simulate auto --steps`,
	Args: cobra.ExactArgs(1),
	Run:  runSimulate,
}

func init() {
	simulateCmd.Flags().StringVar(&flagSimGame, "game", "", "Game engine id (default from layout or config)")
	simulateCmd.Flags().Float64Var(&flagSimVelocity, "velocity", 0, "Robot velocity (default from config)")
	simulateCmd.Flags().Float64Var(&flagSimRate, "rate", 0, "Animation rate in frames per second (default from config)")
	simulateCmd.Flags().BoolVar(&flagSimSave, "save", false, "Store the scored run in the database")
	simulateCmd.Flags().BoolVar(&flagSimSteps, "steps", false, "Print every frame")
}

func runSimulate(_ *cobra.Command, args []string) {
	layout, err := resolveLayout(args[0])
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	engine, err := engineFor(flagSimGame, &layout)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	cal := layout.Calibration(velocityOr(flagSimVelocity))
	rate := rateOr(flagSimRate)
	if !cal.Ready() {
		logger.Warn("layout is not calibrated, nothing to simulate", "layout", layout.Name)
	}

	res, err := engine.Simulate(layout.Instrs, layout.Locations, cal, rate)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	logger.Info("run simulated",
		"game", engine.ID(),
		"layout", layout.Name,
		"frames", len(res.Steps),
		"score", res.Score,
	)

	if flagSimSteps {
		fmt.Printf("  %-6s  %9s  %9s  %7s\n", "Frame", "X", "Y", "Award")
		for i, s := range res.Steps {
			fmt.Printf("  %-6d  %9.2f  %9.2f  %7.1f\n", i, s.Position.X, s.Position.Y, s.Award)
		}
		fmt.Println()
	}

	fmt.Printf("%s - %s\n", engine.Title(), layout.Name)
	fmt.Println()
	fmt.Printf("  Instructions: %d\n", len(res.Moves))
	fmt.Printf("  Frames:       %d at %.0f fps\n", len(res.Steps), rate)
	fmt.Printf("  Elapsed:      %.2fs\n", res.ElapsedSeconds)
	fmt.Printf("  Score:        %.1f\n", res.Score)

	if !flagSimSave {
		return
	}

	store, err := openStore()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening database: %v\n", err)
		os.Exit(1)
	}
	defer store.Close()

	id, err := store.SaveRun(storage.RunEntry{
		GameID:      engine.ID(),
		Layout:      layout.Name,
		Score:       res.Score,
		ElapsedSecs: res.ElapsedSeconds,
		Frames:      len(res.Steps),
	})
	if err != nil {
		logger.Error("could not save run", "error", err)
		return
	}
	logger.Info("run saved", "id", id)

	if best, err := store.BestScore(engine.ID()); err == nil {
		fmt.Printf("  Best:         %.1f\n", best)
	}
}
