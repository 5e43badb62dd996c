package report

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/devicelab-dev/robot-runner/pkg/core"
)

func TestWriteHTML(t *testing.T) {
	dir := t.TempDir()
	path, err := WriteHTML(dir, sampleSuite(), HTMLConfig{})
	if err != nil {
		t.Fatalf("WriteHTML() error = %v", err)
	}
	if path != filepath.Join(dir, HTMLFileName) {
		t.Errorf("path = %q, want default report.html", path)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	html := string(data)
	for _, want := range []string{
		"<title>Robot Report</title>",
		"20261017-101500",
		"first-test",
		"activate: userIcon",
		"driver action failed: boom",
		`<details class="scenario" open>`,
	} {
		if !strings.Contains(html, want) {
			t.Errorf("html missing %q", want)
		}
	}
}

func TestWriteHTML_CustomPathAndTitle(t *testing.T) {
	out := filepath.Join(t.TempDir(), "html", "custom.html")
	path, err := WriteHTML("", sampleSuite(), HTMLConfig{OutputPath: out, Title: "Nightly <run>"})
	if err != nil {
		t.Fatalf("WriteHTML() error = %v", err)
	}
	if path != out {
		t.Errorf("path = %q, want %q", path, out)
	}

	data, err := os.ReadFile(out)
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(string(data), "Nightly &lt;run&gt;") {
		t.Error("title should be HTML-escaped")
	}
}

func TestBuildHTMLData(t *testing.T) {
	suite := &core.SuiteResult{
		Scenarios: []core.ScenarioResult{
			{Name: "a", Status: core.StatusPassed, Duration: 2 * time.Second},
			{Name: "b", Status: core.StatusSkipped, Duration: time.Second},
		},
	}
	suite.ComputeSummary()

	data := buildHTMLData(suite, HTMLConfig{})

	if data.PassRate != 50 {
		t.Errorf("PassRate = %v, want 50", data.PassRate)
	}
	if data.Scenarios[0].DurationPct != 100 || data.Scenarios[1].DurationPct != 50 {
		t.Errorf("DurationPct = %v/%v, want 100/50", data.Scenarios[0].DurationPct, data.Scenarios[1].DurationPct)
	}
	if data.Scenarios[1].StatusClass != "skipped" {
		t.Errorf("StatusClass = %q, want skipped", data.Scenarios[1].StatusClass)
	}
}

func TestStatusClass(t *testing.T) {
	tests := map[core.StepStatus]string{
		core.StatusPassed:  "passed",
		core.StatusFailed:  "failed",
		core.StatusErrored: "failed",
		core.StatusSkipped: "skipped",
		core.StatusPending: "pending",
	}
	for status, want := range tests {
		if got := statusClass(status); got != want {
			t.Errorf("statusClass(%v) = %q, want %q", status, got, want)
		}
	}
}

func TestFormatDuration(t *testing.T) {
	tests := []struct {
		d    time.Duration
		want string
	}{
		{250 * time.Millisecond, "250ms"},
		{2500 * time.Millisecond, "2.5s"},
		{125 * time.Second, "2m 5s"},
	}
	for _, tt := range tests {
		if got := formatDuration(tt.d); got != tt.want {
			t.Errorf("formatDuration(%v) = %q, want %q", tt.d, got, tt.want)
		}
	}
}
