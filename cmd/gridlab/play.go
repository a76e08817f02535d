package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/gridkit/internal/core"
	"github.com/vovakirdan/gridkit/internal/platform/tui"
	"github.com/vovakirdan/gridkit/internal/registry"
)

var (
	flagScenario string
	flagWatch    bool
)

var playCmd = &cobra.Command{
	Use:   "play <mode>",
	Short: "Run a lab mode",
	Long: `Start the specified lab mode.

Controls:
  WASD/Arrows - Move cursor or viewer
  Space       - Paint wall
  X           - Erase wall
  M           - Place marker (start/goal/light)
  T           - Cycle (topology, algorithm, or spawn agent)
  P           - Pause
  R           - Restart
  Ctrl+S      - Save a text snapshot
  Q/Ctrl+C    - Quit

Examples:
  gridlab play path
  gridlab play fov --scenario hexfort
  gridlab play flow --scenario ./maps/siege.yaml --watch`,
	Args: cobra.ExactArgs(1),
	Run:  runPlay,
}

func init() {
	playCmd.Flags().StringVar(&flagScenario, "scenario", "", "Scenario name or path to load")
	playCmd.Flags().BoolVar(&flagWatch, "watch", false, "Reload the scenario when its file changes")
}

func runPlay(cmd *cobra.Command, args []string) {
	modeID := args[0]

	if !registry.Exists(modeID) {
		fmt.Fprintf(os.Stderr, "Error: unknown mode %q\n", modeID)
		fmt.Fprintln(os.Stderr, "Run 'gridlab menu' to see available modes.")
		os.Exit(1)
	}

	mode, err := registry.Create(modeID)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error creating mode: %v\n", err)
		os.Exit(1)
	}

	// Get terminal size
	width, height := 80, 24 // Defaults
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		width = w
		height = h
	}

	cfg := core.RuntimeConfig{
		ScreenW:  width,
		ScreenH:  height,
		TickRate: flagFPS,
		Seed:     flagSeed,
	}

	opts := tui.Options{
		Scenario: flagScenario,
		Watch:    flagWatch,
	}

	if err := tui.Run(mode, cfg, opts); err != nil {
		fmt.Fprintf(os.Stderr, "Error running mode: %v\n", err)
		os.Exit(1)
	}
}
