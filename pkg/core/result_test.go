package core

import "testing"

func TestScenarioResult_ComputeSummary(t *testing.T) {
	r := &ScenarioResult{
		Name: "first-test",
		Steps: []StepResult{
			{Index: 0, Status: StatusPassed},
			{Index: 1, Status: StatusPassed},
			{Index: 2, Status: StatusFailed},
			{Index: 3, Status: StatusSkipped},
			{Index: 4, Status: StatusErrored},
		},
	}

	r.ComputeSummary()

	if r.TotalSteps != 5 {
		t.Errorf("TotalSteps = %d, want 5", r.TotalSteps)
	}
	if r.PassedSteps != 2 {
		t.Errorf("PassedSteps = %d, want 2", r.PassedSteps)
	}
	if r.FailedSteps != 2 { // Failed + Errored
		t.Errorf("FailedSteps = %d, want 2", r.FailedSteps)
	}
	if r.SkippedSteps != 1 {
		t.Errorf("SkippedSteps = %d, want 1", r.SkippedSteps)
	}
}

func TestScenarioResult_AggregateStatus(t *testing.T) {
	tests := []struct {
		name   string
		result ScenarioResult
		want   StepStatus
	}{
		{"all passed", ScenarioResult{Steps: []StepResult{{Status: StatusPassed}, {Status: StatusPassed}}}, StatusPassed},
		{"one failed", ScenarioResult{Steps: []StepResult{{Status: StatusPassed}, {Status: StatusFailed}, {Status: StatusSkipped}}}, StatusFailed},
		{"errored", ScenarioResult{Steps: []StepResult{{Status: StatusErrored}}}, StatusFailed},
		{"error without steps", ScenarioResult{Error: "driver unavailable"}, StatusFailed},
		{"empty", ScenarioResult{}, StatusPassed},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.result.AggregateStatus(); got != tt.want {
				t.Errorf("AggregateStatus() = %s, want %s", got, tt.want)
			}
		})
	}
}

func TestStepResult_Describe(t *testing.T) {
	typeStep := StepResult{Command: CommandTypeText, Element: "userNameTextField", Value: "user1"}
	if got := typeStep.Describe(); got != `typeText: "user1" -> userNameTextField` {
		t.Errorf("Describe() = %q", got)
	}
	tapStep := StepResult{Command: CommandActivate, Element: "loginButton"}
	if got := tapStep.Describe(); got != "activate: loginButton" {
		t.Errorf("Describe() = %q", got)
	}
}

func TestSuiteResult_ComputeSummary(t *testing.T) {
	s := &SuiteResult{
		Scenarios: []ScenarioResult{
			{Status: StatusPassed},
			{Status: StatusFailed},
			{Status: StatusSkipped},
			{Status: StatusPassed},
		},
	}
	s.ComputeSummary()

	if s.TotalScenarios != 4 || s.PassedScenarios != 2 || s.FailedScenarios != 1 || s.SkippedScenarios != 1 {
		t.Errorf("summary = %d/%d/%d/%d, want 4/2/1/1",
			s.TotalScenarios, s.PassedScenarios, s.FailedScenarios, s.SkippedScenarios)
	}
}

func TestSuiteResult_Success(t *testing.T) {
	if (&SuiteResult{}).Success() {
		t.Error("empty suite should not be a success")
	}
	ok := &SuiteResult{Scenarios: []ScenarioResult{{Status: StatusPassed}}}
	if !ok.Success() {
		t.Error("all passed suite should be a success")
	}
	bad := &SuiteResult{Scenarios: []ScenarioResult{{Status: StatusPassed}, {Status: StatusSkipped}}}
	if bad.Success() {
		t.Error("suite with skipped scenario should not be a success")
	}
}
