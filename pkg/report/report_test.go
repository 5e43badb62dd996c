package report

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/devicelab-dev/robot-runner/pkg/core"
)

func sampleSuite() *core.SuiteResult {
	suite := &core.SuiteResult{
		Name:      "robot-runner",
		RunID:     "20261017-101500",
		StartTime: time.Date(2026, 10, 17, 10, 15, 0, 0, time.UTC),
		Duration:  1500 * time.Millisecond,
		Scenarios: []core.ScenarioResult{
			{
				Name:   "first-test",
				Status: core.StatusFailed,
				Steps: []core.StepResult{
					{Index: 0, Command: core.CommandActivate, Element: "loginButton", Status: core.StatusPassed},
					{Index: 1, Command: core.CommandActivate, Element: "userIcon", Status: core.StatusFailed,
						Category: core.ErrCategoryDriver, Error: "driver action failed: boom"},
				},
				Error:    "driver action failed: boom",
				Category: core.ErrCategoryDriver,
			},
		},
	}
	suite.Scenarios[0].ComputeSummary()
	suite.ComputeSummary()
	return suite
}

func TestWriteJSON_ReadJSON(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "nested", "out")

	path, err := WriteJSON(dir, sampleSuite())
	if err != nil {
		t.Fatalf("WriteJSON() error = %v", err)
	}
	if filepath.Base(path) != FileName {
		t.Errorf("path = %s, want %s", path, FileName)
	}

	got, err := ReadJSON(path)
	if err != nil {
		t.Fatalf("ReadJSON() error = %v", err)
	}
	if got.FailedScenarios != 1 || len(got.Scenarios) != 1 {
		t.Fatalf("suite = %+v", got)
	}
	sc := got.Scenarios[0]
	if sc.Status != core.StatusFailed || sc.Category != core.ErrCategoryDriver {
		t.Errorf("scenario status/category = %s/%s", sc.Status, sc.Category)
	}
	if sc.Steps[1].Element != "userIcon" {
		t.Errorf("steps[1].Element = %q", sc.Steps[1].Element)
	}
}

func TestWriteJSON_StatusesAreNamed(t *testing.T) {
	dir := t.TempDir()
	path, err := WriteJSON(dir, sampleSuite())
	if err != nil {
		t.Fatal(err)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	for _, want := range []string{`"status": "failed"`, `"errorCategory": "driver"`} {
		if !strings.Contains(string(data), want) {
			t.Errorf("report missing %s", want)
		}
	}

	entries, _ := os.ReadDir(dir)
	if len(entries) != 1 {
		t.Errorf("output dir has %d entries, want only %s", len(entries), FileName)
	}
}

func TestReadJSON_Errors(t *testing.T) {
	dir := t.TempDir()
	if _, err := ReadJSON(filepath.Join(dir, "missing.json")); err == nil {
		t.Error("ReadJSON() should fail for a missing file")
	}

	bad := filepath.Join(dir, "bad.json")
	if err := os.WriteFile(bad, []byte("{"), 0o644); err != nil {
		t.Fatal(err)
	}
	if _, err := ReadJSON(bad); err == nil {
		t.Error("ReadJSON() should fail for invalid JSON")
	}
}
