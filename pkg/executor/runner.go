// Package executor runs scenarios against driver sessions and collects results.
package executor

import (
	"context"
	"io"
	"time"

	"github.com/devicelab-dev/robot-runner/pkg/action"
	"github.com/devicelab-dev/robot-runner/pkg/core"
	"github.com/devicelab-dev/robot-runner/pkg/element"
	"github.com/devicelab-dev/robot-runner/pkg/logger"
	"github.com/devicelab-dev/robot-runner/pkg/scenario"
)

// DriverFactory opens a fresh driver session for one scenario. If the
// returned driver implements io.Closer it is closed when the scenario ends.
type DriverFactory func(ctx context.Context) (action.Driver, error)

// RunnerConfig configures the scenario runner.
type RunnerConfig struct {
	Name          string            // Suite name for reports
	Registry      *element.Registry // nil = element.Default()
	Fixtures      scenario.Fixtures
	ActionTimeout time.Duration // Per-action driver timeout (0 = none)
	StopOnFail    bool          // Skip remaining scenarios after the first failure
	DriverName    string

	// Live progress callbacks
	OnScenarioStart func(idx, total int, name string)
	OnStepComplete  func(step core.StepResult)
	OnScenarioEnd   func(result core.ScenarioResult)
}

// Runner executes scenarios one after another.
type Runner struct {
	config    RunnerConfig
	newDriver DriverFactory
}

// New creates a new Runner.
func New(newDriver DriverFactory, cfg RunnerConfig) *Runner {
	if cfg.Registry == nil {
		cfg.Registry = element.Default()
	}
	return &Runner{
		config:    cfg,
		newDriver: newDriver,
	}
}

// Run executes cases in order and returns the suite result.
func (r *Runner) Run(ctx context.Context, cases []scenario.Case) *core.SuiteResult {
	start := time.Now()
	suite := &core.SuiteResult{
		Name:      r.config.Name,
		RunID:     start.Format("20060102-150405"),
		StartTime: start,
		Scenarios: make([]core.ScenarioResult, len(cases)),
	}

	logger.Info("=== Run %s started: %d scenario(s) ===", suite.RunID, len(cases))

	stopped := false
	for i, c := range cases {
		switch {
		case ctx.Err() != nil:
			suite.Scenarios[i] = skipped(c, "run cancelled")
			continue
		case stopped:
			suite.Scenarios[i] = skipped(c, "run stopped after failure")
			continue
		}

		result := r.executeScenario(ctx, c, i, len(cases))
		suite.Scenarios[i] = result

		if r.config.StopOnFail && !result.Status.IsSuccess() {
			stopped = true
		}
	}

	suite.Duration = time.Since(start)
	suite.ComputeSummary()

	logger.Info("=== Run %s finished: %d passed, %d failed, %d skipped ===",
		suite.RunID, suite.PassedScenarios, suite.FailedScenarios, suite.SkippedScenarios)
	return suite
}

// executeScenario runs a single case on its own driver session.
func (r *Runner) executeScenario(ctx context.Context, c scenario.Case, idx, total int) core.ScenarioResult {
	if r.config.OnScenarioStart != nil {
		r.config.OnScenarioStart(idx, total, c.Name)
	}
	logger.Info("Scenario [%d/%d] %s", idx+1, total, c.Name)

	result := core.ScenarioResult{
		Name:        c.Name,
		Description: c.Description,
		Driver:      r.config.DriverName,
		StartTime:   time.Now(),
	}

	driver, err := r.newDriver(ctx)
	if err != nil {
		logger.Error("Scenario %s: driver session failed: %v", c.Name, err)
		result.Error = err.Error()
		result.Category = core.CategoryOf(err)
		return r.finish(result)
	}
	if closer, ok := driver.(io.Closer); ok {
		defer func() {
			if err := closer.Close(); err != nil {
				logger.Warn("Scenario %s: closing driver: %v", c.Name, err)
			}
		}()
	}

	actions := action.New(ctx, r.config.Registry, driver, action.Options{
		Timeout: r.config.ActionTimeout,
		OnStep:  r.config.OnStepComplete,
	})
	s := scenario.New(actions, r.config.Fixtures)
	c.Run(s)

	result.Steps = actions.Steps()
	if err := s.Err(); err != nil {
		result.Error = err.Error()
		result.Category = core.CategoryOf(err)
	}
	return r.finish(result)
}

func (r *Runner) finish(result core.ScenarioResult) core.ScenarioResult {
	result.Duration = time.Since(result.StartTime)
	result.ComputeSummary()
	result.Status = result.AggregateStatus()

	if r.config.OnScenarioEnd != nil {
		r.config.OnScenarioEnd(result)
	}
	return result
}

func skipped(c scenario.Case, reason string) core.ScenarioResult {
	return core.ScenarioResult{
		Name:        c.Name,
		Description: c.Description,
		Status:      core.StatusSkipped,
		Error:       reason,
	}
}
