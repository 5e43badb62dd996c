package core

import (
	"time"
)

// Commands recorded in StepResult.Command
const (
	CommandTypeText = "typeText"
	CommandActivate = "activate"
)

// StepResult captures the outcome of a single action primitive
type StepResult struct {
	// Identity
	Index   int    `json:"index"`   // 0-based position in scenario
	Command string `json:"command"` // typeText or activate
	Element string `json:"element"` // Logical element name
	Key     string `json:"key,omitempty"`
	Value   string `json:"value,omitempty"` // Text typed (typeText only)

	// Status
	Status   StepStatus    `json:"status"`
	Category ErrorCategory `json:"errorCategory,omitempty"`

	// Timing
	StartTime time.Time     `json:"startTime"`
	Duration  time.Duration `json:"duration"`

	// Error Details
	Error string `json:"error,omitempty"`
}

// Describe returns a human-readable description of the step.
func (s StepResult) Describe() string {
	if s.Command == CommandTypeText {
		return s.Command + ": \"" + s.Value + "\" -> " + s.Element
	}
	return s.Command + ": " + s.Element
}

// ScenarioResult captures the complete outcome of executing a scenario
type ScenarioResult struct {
	// Identity
	Name        string `json:"name"`
	Description string `json:"description,omitempty"`
	Driver      string `json:"driver,omitempty"`

	// Status (aggregated from steps)
	Status StepStatus `json:"status"`

	// Timing
	StartTime time.Time     `json:"startTime"`
	Duration  time.Duration `json:"duration"`

	// Results
	Steps []StepResult `json:"steps"`

	// Summary (computed)
	TotalSteps   int `json:"totalSteps"`
	PassedSteps  int `json:"passedSteps"`
	FailedSteps  int `json:"failedSteps"`
	SkippedSteps int `json:"skippedSteps"`

	// Error info (if scenario failed)
	Error    string        `json:"error,omitempty"`
	Category ErrorCategory `json:"errorCategory,omitempty"`
}

// ComputeSummary calculates step counts from the Steps slice
func (r *ScenarioResult) ComputeSummary() {
	r.TotalSteps = len(r.Steps)
	r.PassedSteps = 0
	r.FailedSteps = 0
	r.SkippedSteps = 0

	for _, step := range r.Steps {
		switch step.Status {
		case StatusPassed:
			r.PassedSteps++
		case StatusFailed, StatusErrored:
			r.FailedSteps++
		case StatusSkipped:
			r.SkippedSteps++
		}
	}
}

// AggregateStatus determines the scenario status from step results.
// Any failed/errored step fails the scenario; there is no partial success.
func (r *ScenarioResult) AggregateStatus() StepStatus {
	for _, step := range r.Steps {
		if step.Status == StatusFailed || step.Status == StatusErrored {
			return StatusFailed
		}
	}
	if r.Error != "" {
		return StatusFailed
	}
	return StatusPassed
}

// SuiteResult captures the complete outcome of executing multiple scenarios
type SuiteResult struct {
	// Identity
	Name  string `json:"name"`
	RunID string `json:"runId"`

	// Timing
	StartTime time.Time     `json:"startTime"`
	Duration  time.Duration `json:"duration"`

	// Results
	Scenarios []ScenarioResult `json:"scenarios"`

	// Summary
	TotalScenarios   int `json:"totalScenarios"`
	PassedScenarios  int `json:"passedScenarios"`
	FailedScenarios  int `json:"failedScenarios"`
	SkippedScenarios int `json:"skippedScenarios"`
}

// ComputeSummary calculates scenario counts from the Scenarios slice
func (s *SuiteResult) ComputeSummary() {
	s.TotalScenarios = len(s.Scenarios)
	s.PassedScenarios = 0
	s.FailedScenarios = 0
	s.SkippedScenarios = 0

	for _, sc := range s.Scenarios {
		switch sc.Status {
		case StatusPassed:
			s.PassedScenarios++
		case StatusFailed, StatusErrored:
			s.FailedScenarios++
		case StatusSkipped:
			s.SkippedScenarios++
		}
	}
}

// Success returns true if all scenarios passed
func (s *SuiteResult) Success() bool {
	for _, sc := range s.Scenarios {
		if !sc.Status.IsSuccess() {
			return false
		}
	}
	return len(s.Scenarios) > 0
}
