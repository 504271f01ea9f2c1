package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/arena-planner/internal/platform/tui"
)

var (
	flagPlayGame     string
	flagPlayVelocity float64
	flagPlayRate     float64
	flagPlaySpeed    float64
)

var playCmd = &cobra.Command{
	Use:   "play <layout>",
	Short: "Replay a run in the terminal",
	Long: `Simulate a layout and replay the robot's trajectory frame by frame.

Controls:
  Space/P   - Pause
  R         - Restart
  +/-       - Faster/slower
  Q/Esc     - Quit

Examples:
  planner play ./auto.yaml
  planner play auto --speed 2`,
	Args: cobra.ExactArgs(1),
	Run:  runPlay,
}

func init() {
	playCmd.Flags().StringVar(&flagPlayGame, "game", "", "Game engine id (default from layout or config)")
	playCmd.Flags().Float64Var(&flagPlayVelocity, "velocity", 0, "Robot velocity (default from config)")
	playCmd.Flags().Float64Var(&flagPlayRate, "rate", 0, "Animation rate in frames per second (default from config)")
	playCmd.Flags().Float64Var(&flagPlaySpeed, "speed", 0, "Playback speed multiplier (default from config)")
}

func runPlay(_ *cobra.Command, args []string) {
	layout, err := resolveLayout(args[0])
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	engine, err := engineFor(flagPlayGame, &layout)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	pb, err := tui.BuildPlayback(engine, layout, velocityOr(flagPlayVelocity), rateOr(flagPlayRate))
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	width, height := 80, 24 // Defaults
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		width = w
		height = h
	}

	opts := tui.PlaybackOptions{
		FPS:   plannerCfg.Playback.FPS,
		Speed: plannerCfg.Playback.Speed,
	}
	if flagPlaySpeed > 0 {
		opts.Speed = flagPlaySpeed
	}

	if err := tui.Run(pb, opts, width, height); err != nil {
		fmt.Fprintf(os.Stderr, "Error running playback: %v\n", err)
		os.Exit(1)
	}
}
