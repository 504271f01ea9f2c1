// planner plans robot runs across a measured arena and scores them with a
// game engine.
//
// Usage:
//
//	planner list                  - List games and saved layouts
//	planner plan <layout>         - Show per-instruction timings
//	planner simulate <layout>     - Simulate and score a run
//	planner play <layout>         - Replay a run in the terminal
//	planner runs [game]           - Show best stored runs
//	planner layout ...            - Manage saved layouts
//	planner serve [layout]        - Serve playback over SSH
//
// A <layout> is either a .yaml/.yml/.json file or the name of a saved layout.
//
// Global flags:
//
//	--config <path>       - Planner config YAML
//	--game-config <path>  - Game engine config YAML
//	--db <path>           - Database path (default from config)
//	--log-level <level>   - debug, info, warn, error
package main

import (
	"fmt"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/arena-planner/internal/config"
	"github.com/vovakirdan/arena-planner/internal/games/chargedup" // registers the engine
)

var (
	// Global flags
	flagConfig     string
	flagGameConfig string
	flagDBPath     string
	flagLogLevel   string

	plannerCfg = config.DefaultPlannerConfig()
	logger     = log.NewWithOptions(os.Stderr, log.Options{Prefix: "planner"})
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "planner",
	Short: "Arena planner - plan and score robot runs",
	Long: `Arena planner turns a script of start/move/act instructions on a
measured arena into a timed trajectory and scores it with a game engine.

Available commands:
  list      - Show games and saved layouts
  plan      - Show per-instruction timings
  simulate  - Simulate and score a run
  play      - Replay a run in the terminal
  runs      - Show best stored runs
  layout    - Save, show, delete or create layouts
  serve     - Serve playback over SSH

Examples:
  planner layout new ./auto.yaml
  planner plan ./auto.yaml
  planner simulate ./auto.yaml --save
  planner play auto
  planner runs chargedup`,
	SilenceUsage:      true,
	PersistentPreRunE: setup,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to planner config YAML")
	rootCmd.PersistentFlags().StringVar(&flagGameConfig, "game-config", "", "Path to game engine config YAML")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "", "Path to database (default from config)")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "info", "Log level: debug, info, warn, error")

	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(planCmd)
	rootCmd.AddCommand(simulateCmd)
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(runsCmd)
	rootCmd.AddCommand(layoutCmd)
	rootCmd.AddCommand(serveCmd)
}

// setup builds the logger and loads configuration before any command runs.
func setup(_ *cobra.Command, _ []string) error {
	level, err := log.ParseLevel(flagLogLevel)
	if err != nil {
		return fmt.Errorf("invalid --log-level %q: %w", flagLogLevel, err)
	}
	logger = log.NewWithOptions(os.Stderr, log.Options{
		ReportTimestamp: true,
		Prefix:          "planner",
		Level:           level,
	})

	plannerCfg, err = config.LoadPlanner(flagConfig)
	if err != nil {
		return err
	}
	logger.Debug("config loaded",
		"velocity", plannerCfg.Robot.Velocity,
		"animation_rate", plannerCfg.Simulation.AnimationRate,
		"default_game", plannerCfg.Simulation.DefaultGame,
	)

	if flagDBPath == "" {
		flagDBPath = plannerCfg.Storage.DBPath
	}

	if err := checkGameConfig(flagGameConfig); err != nil {
		return err
	}
	if flagGameConfig != "" {
		chargedup.SetConfigPath(flagGameConfig)
	}
	return nil
}

// checkGameConfig loads the engine config the same way the engine will, so a
// user config that fails validation stops the command instead of being
// replaced by the defaults.
func checkGameConfig(path string) error {
	cfg, err := config.LoadChargedUp(path)
	if err != nil {
		return fmt.Errorf("game config: %w", err)
	}
	logger.Debug("game config loaded",
		"alliance", cfg.Alliance,
		"station", cfg.StationLocID,
		"legacy_row_links", cfg.LegacyRowLinks,
		"preload", len(cfg.Preload),
	)
	return nil
}
