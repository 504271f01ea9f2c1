package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/arena-planner/internal/arena"
	"github.com/vovakirdan/arena-planner/internal/config"
	"github.com/vovakirdan/arena-planner/internal/games/chargedup"
)

var (
	flagLayoutName   string
	flagLayoutFormat string
)

var layoutCmd = &cobra.Command{
	Use:   "layout",
	Short: "Save, show, delete or create layouts",
	Long: `Manage layouts stored in the database.

Examples:
  planner layout new ./auto.yaml
  planner layout save ./auto.yaml --name auto
  planner layout show auto --format json
  planner layout rm auto`,
}

var layoutSaveCmd = &cobra.Command{
	Use:   "save <file>",
	Short: "Store a layout file in the database",
	Args:  cobra.ExactArgs(1),
	Run:   runLayoutSave,
}

var layoutShowCmd = &cobra.Command{
	Use:   "show <layout>",
	Short: "Print a layout as YAML or JSON",
	Args:  cobra.ExactArgs(1),
	Run:   runLayoutShow,
}

var layoutRmCmd = &cobra.Command{
	Use:   "rm <name>",
	Short: "Delete a saved layout",
	Args:  cobra.ExactArgs(1),
	Run:   runLayoutRm,
}

var layoutNewCmd = &cobra.Command{
	Use:   "new <file>",
	Short: "Write a starter Charged Up layout",
	Long: `Write a small calibrated Charged Up layout with a loading zone, two grid
columns and the charge station, plus a script that runs them.`,
	Args: cobra.ExactArgs(1),
	Run:  runLayoutNew,
}

func init() {
	layoutSaveCmd.Flags().StringVar(&flagLayoutName, "name", "", "Name to save under (default from file)")
	layoutShowCmd.Flags().StringVar(&flagLayoutFormat, "format", "yaml", "Output format: yaml or json")

	layoutCmd.AddCommand(layoutSaveCmd)
	layoutCmd.AddCommand(layoutShowCmd)
	layoutCmd.AddCommand(layoutRmCmd)
	layoutCmd.AddCommand(layoutNewCmd)
}

func runLayoutSave(_ *cobra.Command, args []string) {
	l, err := arena.LoadFile(args[0])
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	if err := l.Validate(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: layout %s: %v\n", l.Name, err)
		os.Exit(1)
	}
	if flagLayoutName != "" {
		l.Name = flagLayoutName
	}

	store, err := openStore()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening database: %v\n", err)
		os.Exit(1)
	}
	defer store.Close()

	if err := store.SaveLayout(&l); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return
	}
	logger.Info("layout saved", "name", l.Name, "locations", len(l.Locations), "instructions", len(l.Instrs))
}

func runLayoutShow(_ *cobra.Command, args []string) {
	l, err := resolveLayout(args[0])
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	var out []byte
	switch flagLayoutFormat {
	case "yaml", "yml":
		out, err = l.EncodeYAML()
	case "json":
		out, err = l.EncodeJSON()
	default:
		err = fmt.Errorf("unknown format %q (expected yaml or json)", flagLayoutFormat)
	}
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	fmt.Println(string(out))
}

func runLayoutRm(_ *cobra.Command, args []string) {
	store, err := openStore()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening database: %v\n", err)
		os.Exit(1)
	}
	defer store.Close()

	if err := store.DeleteLayout(args[0]); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return
	}
	logger.Info("layout deleted", "name", args[0])
}

func runLayoutNew(_ *cobra.Command, args []string) {
	l := starterLayout()
	if err := arena.SaveFile(args[0], &l); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	logger.Info("starter layout written", "path", args[0])
}

// starterLayout is the Charged Up starter ending on the configured station.
func starterLayout() arena.Layout {
	station := config.DefaultChargedUpConfig().StationLocID
	if cfg, err := config.LoadChargedUp(flagGameConfig); err == nil {
		station = cfg.StationLocID
	}
	return chargedup.StarterLayout(station)
}
