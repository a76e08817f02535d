// gridlab is a TUI workbench for the gridkit spatial algorithms.
//
// Usage:
//
//	gridlab play <mode>      - Run a lab mode
//	gridlab menu             - Start menu to pick modes interactively
//	gridlab serve            - Start SSH server for remote sessions
//	gridlab bench            - Run the benchmark suite
//	gridlab scenarios        - List available scenarios
//	gridlab history          - Show recorded benchmark runs
//
// Global flags:
//
//	--fps <rate>    - Set tick rate (default: 30)
//	--seed <value>  - Set RNG seed for reproducible worlds
//	--db <path>     - Set database path (default: ~/.gridlab/runs.db)
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	// Import modes to register them
	_ "github.com/vovakirdan/gridkit/internal/lab/flowmode"
	_ "github.com/vovakirdan/gridkit/internal/lab/fovmode"
	_ "github.com/vovakirdan/gridkit/internal/lab/pathmode"
	_ "github.com/vovakirdan/gridkit/internal/lab/quadmode"
)

var (
	// Global flags
	flagFPS    int
	flagSeed   int64
	flagDBPath string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "gridlab",
	Short: "Gridlab - Explore grid algorithms in your terminal",
	Long: `Gridlab is a terminal workbench for the gridkit library: pathfinding,
flow fields, field of view, and spatial indexing, all rendered live.

Available commands:
  play       - Run a specific lab mode directly
  menu       - Interactive mode picker menu
  serve      - Start SSH server for remote sessions
  bench      - Run the benchmark suite
  scenarios  - List available scenarios
  history    - Show recorded benchmark runs

Examples:
  gridlab play path
  gridlab play flow --scenario crossing
  gridlab menu
  gridlab bench --sizes 33,65 --save
  gridlab serve --ssh :2222`,
}

func init() {
	// Global persistent flags
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 30, "Tick rate (frames per second)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "~/.gridlab/runs.db", "Path to bench runs database")

	// Add subcommands
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(menuCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(benchCmd)
	rootCmd.AddCommand(scenariosCmd)
	rootCmd.AddCommand(historyCmd)
}
