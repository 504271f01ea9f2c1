package main

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/arena-planner/internal/platform/tui"
)

var (
	flagSSHAddr     string
	flagHostKey     string
	flagIdleTimeout int
	flagServeGame   string
)

var serveCmd = &cobra.Command{
	Use:   "serve [layout]",
	Short: "Serve run playback over SSH",
	Long: `Start an SSH server that replays runs to connecting terminals.

Sessions without a command watch the layout given here (or the built-in
starter layout). A session command names a saved layout to watch instead.

Host key handling:
  - If --host-key is provided, uses that key file
  - Otherwise, auto-generates a key at ~/.planner/host_key

Examples:
  planner serve                      # Listen on :23235, starter layout
  planner serve auto --ssh :2222     # Serve the saved layout "auto"

Users can connect with:
  ssh localhost -p 23235
  ssh localhost -p 23235 auto`,
	Args: cobra.MaximumNArgs(1),
	Run:  runServe,
}

func init() {
	serveCmd.Flags().StringVar(&flagSSHAddr, "ssh", ":23235", "SSH server address (host:port)")
	serveCmd.Flags().StringVar(&flagHostKey, "host-key", "", "Path to host key file (auto-generated if not specified)")
	serveCmd.Flags().IntVar(&flagIdleTimeout, "idle-timeout", 30, "Idle timeout in minutes before disconnecting")
	serveCmd.Flags().StringVar(&flagServeGame, "game", "", "Game engine id (default from layout or config)")
}

func runServe(_ *cobra.Command, args []string) {
	fallback, err := starterPlayback(args)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	cfg := tui.DefaultSSHServerConfig()
	cfg.Address = flagSSHAddr
	cfg.HostKeyPath = flagHostKey
	cfg.IdleTimeout = time.Duration(flagIdleTimeout) * time.Minute
	cfg.Playback = tui.PlaybackOptions{
		FPS:   plannerCfg.Playback.FPS,
		Speed: plannerCfg.Playback.Speed,
	}

	server, err := tui.NewSSHServer(cfg, logger.WithPrefix("planner-ssh"), fallback, loadPlayback)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error creating server: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("Serving playback of %q on %s\n", fallback.Layout.Name, cfg.Address)
	fmt.Println("Press Ctrl+C to stop")

	if err := server.ListenAndServe(); err != nil {
		fmt.Fprintf(os.Stderr, "Server error: %v\n", err)
		os.Exit(1)
	}
}

// starterPlayback builds the default session playback.
func starterPlayback(args []string) (tui.Playback, error) {
	if len(args) == 1 {
		return loadPlayback(args[0])
	}
	return loadPlayback("")
}

// loadPlayback resolves name (a file or saved layout; empty for the starter
// layout) and simulates it.
func loadPlayback(name string) (tui.Playback, error) {
	var err error
	layout := starterLayout()
	if name != "" {
		layout, err = resolveLayout(name)
		if err != nil {
			return tui.Playback{}, err
		}
	}

	engine, err := engineFor(flagServeGame, &layout)
	if err != nil {
		return tui.Playback{}, err
	}
	return tui.BuildPlayback(engine, layout, velocityOr(0), rateOr(0))
}
