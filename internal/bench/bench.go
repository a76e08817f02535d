// Package bench runs timed benchmark cases over the engine packages.
// A coordinator fans cases out to worker goroutines and collects timing
// events over channels; each case is single-threaded internally, so the
// concurrency lives entirely in this layer.
package bench

import (
	"sort"
	"sync"
	"time"

	"github.com/charmbracelet/log"
)

// Case is one benchmark: Run executes Ops operations on a map of
// GridSize cells. Setup cost (map generation) is paid at case
// construction, not inside Run.
type Case struct {
	Name     string
	GridSize int
	Ops      int
	Run      func() error
}

// Result is a completed case with its wall-clock duration.
type Result struct {
	Case     Case
	Duration time.Duration
	Err      error
}

// PerOp returns the average time per operation.
func (r Result) PerOp() time.Duration {
	if r.Case.Ops <= 0 {
		return r.Duration
	}
	return r.Duration / time.Duration(r.Case.Ops)
}

// Event is a progress notification from the runner.
type Event interface {
	benchEvent()
}

// CaseStarted is emitted when a worker picks up a case.
type CaseStarted struct {
	Name string
}

func (CaseStarted) benchEvent() {}

// CaseFinished is emitted when a case completes.
type CaseFinished struct {
	Result Result
}

func (CaseFinished) benchEvent() {}

// Runner executes cases across a fixed pool of workers.
type Runner struct {
	jobs   int
	logger *log.Logger
}

// NewRunner creates a runner with the given parallelism. A nil logger
// silences progress reporting.
func NewRunner(jobs int, logger *log.Logger) *Runner {
	if jobs <= 0 {
		jobs = 1
	}
	return &Runner{jobs: jobs, logger: logger}
}

// Run executes every case and returns the results sorted by case name.
// Cases run concurrently across the worker pool; results are complete
// even when individual cases fail.
func (r *Runner) Run(cases []Case) []Result {
	tasks := make(chan Case)
	events := make(chan Event, r.jobs)

	var wg sync.WaitGroup
	for i := 0; i < r.jobs; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for c := range tasks {
				events <- CaseStarted{Name: c.Name}
				start := time.Now()
				err := c.Run()
				events <- CaseFinished{Result: Result{
					Case:     c,
					Duration: time.Since(start),
					Err:      err,
				}}
			}
		}()
	}

	go func() {
		for _, c := range cases {
			tasks <- c
		}
		close(tasks)
		wg.Wait()
		close(events)
	}()

	results := make([]Result, 0, len(cases))
	for ev := range events {
		switch e := ev.(type) {
		case CaseStarted:
			if r.logger != nil {
				r.logger.Debug("case started", "case", e.Name)
			}
		case CaseFinished:
			res := e.Result
			if r.logger != nil {
				if res.Err != nil {
					r.logger.Error("case failed", "case", res.Case.Name, "err", res.Err)
				} else {
					r.logger.Info("case finished",
						"case", res.Case.Name,
						"duration", res.Duration,
						"per_op", res.PerOp())
				}
			}
			results = append(results, res)
		}
	}

	sort.Slice(results, func(i, j int) bool {
		return results[i].Case.Name < results[j].Case.Name
	})
	return results
}
