package main

import (
	"fmt"
	"os"
	"runtime"
	"time"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/gridkit/internal/bench"
	"github.com/vovakirdan/gridkit/internal/storage"
)

var (
	flagSizes   []int
	flagJobs    int
	flagSave    bool
	flagVerbose bool
)

var benchCmd = &cobra.Command{
	Use:   "bench",
	Short: "Run the benchmark suite",
	Long: `Run the standard benchmark cases: A* over generated mazes and room
maps, flow-field builds, field-of-view sweeps, and quadtree churn.

Results print as a table. With --save they are also recorded in the
runs database, where 'gridlab history' and the menu's bench history
view can compare them over time.

Examples:
  gridlab bench
  gridlab bench --sizes 33,65,129
  gridlab bench --jobs 4 --save
  gridlab bench --seed 7 --save --db ./runs.db`,
	Run: runBench,
}

func init() {
	benchCmd.Flags().IntSliceVar(&flagSizes, "sizes", []int{33, 65}, "Grid sizes to benchmark")
	benchCmd.Flags().IntVar(&flagJobs, "jobs", runtime.NumCPU(), "Number of cases to run in parallel")
	benchCmd.Flags().BoolVar(&flagSave, "save", false, "Record results in the runs database")
	benchCmd.Flags().BoolVar(&flagVerbose, "verbose", false, "Log each case as it runs")
}

func runBench(_ *cobra.Command, _ []string) {
	logger := log.NewWithOptions(os.Stderr, log.Options{
		ReportTimestamp: false,
		Prefix:          "bench",
	})
	if flagVerbose {
		logger.SetLevel(log.DebugLevel)
	}

	seed := flagSeed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}

	cases := bench.DefaultCases(flagSizes, seed)
	runner := bench.NewRunner(flagJobs, logger)

	start := time.Now()
	results := runner.Run(cases)
	total := time.Since(start)

	// Print the results table
	fmt.Println()
	fmt.Printf("  %-24s  %6s  %8s  %12s  %12s\n", "Case", "Grid", "Ops", "Per Op", "Total")
	fmt.Printf("  %-24s  %6s  %8s  %12s  %12s\n", "----", "----", "---", "------", "-----")

	failed := 0
	for _, r := range results {
		if r.Err != nil {
			fmt.Printf("  %-24s  %6d  %8d  FAILED: %v\n", r.Case.Name, r.Case.GridSize, r.Case.Ops, r.Err)
			failed++
			continue
		}
		fmt.Printf("  %-24s  %6d  %8d  %12s  %12s\n",
			r.Case.Name, r.Case.GridSize, r.Case.Ops, r.PerOp(), r.Duration)
	}
	fmt.Println()
	fmt.Printf("%d cases in %s (seed %d)\n", len(results), total.Round(time.Millisecond), seed)

	if flagSave {
		saveResults(logger, results)
	}

	if failed > 0 {
		os.Exit(1)
	}
}

// saveResults records successful results in the runs database.
func saveResults(logger *log.Logger, results []bench.Result) {
	store, err := storage.Open(flagDBPath)
	if err != nil {
		logger.Error("cannot open runs database", "error", err)
		return
	}
	defer store.Close()

	saved := 0
	for _, r := range results {
		if r.Err != nil {
			continue
		}
		_, err := store.SaveRun(storage.Run{
			CaseName: r.Case.Name,
			GridSize: r.Case.GridSize,
			Ops:      r.Case.Ops,
			Duration: r.Duration,
		})
		if err != nil {
			logger.Error("cannot save run", "case", r.Case.Name, "error", err)
			continue
		}
		saved++
	}
	logger.Info("results recorded", "saved", saved, "db", flagDBPath)
}
