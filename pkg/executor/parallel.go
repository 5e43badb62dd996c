package executor

import (
	"context"
	"fmt"
	"sync"
	"sync/atomic"
	"time"

	"github.com/devicelab-dev/robot-runner/pkg/core"
	"github.com/devicelab-dev/robot-runner/pkg/logger"
	"github.com/devicelab-dev/robot-runner/pkg/scenario"
)

// workItem represents a case and its index in the original case list.
type workItem struct {
	c     scenario.Case
	index int
}

// ParallelRunner runs scenarios on several workers. Every scenario still gets
// its own driver session and its actions run one at a time; only separate
// sessions overlap. Progress callbacks are serialized.
type ParallelRunner struct {
	workers int
	runner  *Runner
}

// NewParallelRunner creates a runner with the given number of workers.
func NewParallelRunner(workers int, newDriver DriverFactory, cfg RunnerConfig) (*ParallelRunner, error) {
	if workers < 1 {
		return nil, core.ErrInvalidConfig.WithMessage(fmt.Sprintf("parallel workers must be at least 1, got %d", workers))
	}

	var mu sync.Mutex
	cfg.OnScenarioStart = serialize3(&mu, cfg.OnScenarioStart)
	cfg.OnStepComplete = serialize1(&mu, cfg.OnStepComplete)
	cfg.OnScenarioEnd = serialize1(&mu, cfg.OnScenarioEnd)

	return &ParallelRunner{
		workers: workers,
		runner:  New(newDriver, cfg),
	}, nil
}

// Run executes cases using a work queue. All workers pull from the same
// queue until it is drained. Results keep the order of cases.
func (pr *ParallelRunner) Run(ctx context.Context, cases []scenario.Case) *core.SuiteResult {
	start := time.Now()
	suite := &core.SuiteResult{
		Name:      pr.runner.config.Name,
		RunID:     start.Format("20060102-150405"),
		StartTime: start,
		Scenarios: make([]core.ScenarioResult, len(cases)),
	}

	logger.Info("=== Run %s started: %d scenario(s) on %d worker(s) ===", suite.RunID, len(cases), pr.workers)

	workQueue := make(chan workItem, len(cases))
	for i, c := range cases {
		workQueue <- workItem{c: c, index: i}
	}
	close(workQueue)

	var stopped atomic.Bool
	var wg sync.WaitGroup
	total := len(cases)

	for w := 0; w < pr.workers; w++ {
		wg.Add(1)
		go func(id int) {
			defer wg.Done()
			for item := range workQueue {
				switch {
				case ctx.Err() != nil:
					suite.Scenarios[item.index] = skipped(item.c, "run cancelled")
					continue
				case stopped.Load():
					suite.Scenarios[item.index] = skipped(item.c, "run stopped after failure")
					continue
				}

				logger.Debug("Worker %d: %s", id, item.c.Name)
				result := pr.runner.executeScenario(ctx, item.c, item.index, total)
				suite.Scenarios[item.index] = result

				if pr.runner.config.StopOnFail && !result.Status.IsSuccess() {
					stopped.Store(true)
				}
			}
		}(w + 1)
	}

	wg.Wait()

	// Wall clock time, not the sum of scenario durations
	suite.Duration = time.Since(start)
	suite.ComputeSummary()

	logger.Info("=== Run %s finished: %d passed, %d failed, %d skipped ===",
		suite.RunID, suite.PassedScenarios, suite.FailedScenarios, suite.SkippedScenarios)
	return suite
}

func serialize1[T any](mu *sync.Mutex, fn func(T)) func(T) {
	if fn == nil {
		return nil
	}
	return func(v T) {
		mu.Lock()
		defer mu.Unlock()
		fn(v)
	}
}

func serialize3(mu *sync.Mutex, fn func(int, int, string)) func(int, int, string) {
	if fn == nil {
		return nil
	}
	return func(idx, total int, name string) {
		mu.Lock()
		defer mu.Unlock()
		fn(idx, total, name)
	}
}
