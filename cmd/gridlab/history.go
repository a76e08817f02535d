package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/gridkit/internal/storage"
)

var flagHistoryCase string

var historyCmd = &cobra.Command{
	Use:   "history",
	Short: "Show recorded benchmark runs",
	Long: `Display recent benchmark runs from the runs database.

With --case, shows the best runs for one case ranked by per-operation
time instead of the recent cross-case list.

Examples:
  gridlab history
  gridlab history --case astar/maze-65
  gridlab history --db ./runs.db`,
	Run: runHistory,
}

func init() {
	historyCmd.Flags().StringVar(&flagHistoryCase, "case", "", "Show best runs for one case")
}

func runHistory(_ *cobra.Command, _ []string) {
	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening runs database: %v\n", err)
		os.Exit(1)
	}
	defer store.Close()

	var runs []storage.Run
	if flagHistoryCase != "" {
		runs, err = store.BestRuns(flagHistoryCase, 20)
	} else {
		runs, err = store.RecentRuns(20)
	}
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error retrieving runs: %v\n", err)
		os.Exit(1)
	}

	if flagHistoryCase != "" {
		fmt.Printf("Best runs - %s\n", flagHistoryCase)
	} else {
		fmt.Println("Recent runs")
	}
	fmt.Println()

	if len(runs) == 0 {
		fmt.Println("No runs recorded yet.")
		fmt.Println()
		fmt.Println("Run 'gridlab bench --save' to record some.")
		return
	}

	fmt.Printf("  %-24s  %6s  %8s  %12s  %s\n", "Case", "Grid", "Ops", "Per Op", "Date")
	fmt.Printf("  %-24s  %6s  %8s  %12s  %s\n", "----", "----", "---", "------", "----")

	for _, r := range runs {
		fmt.Printf("  %-24s  %6d  %8d  %12s  %s\n",
			r.CaseName, r.GridSize, r.Ops, r.PerOp(), r.CreatedAt.Format("2006-01-02 15:04"))
	}
}
