package report

import (
	"bytes"
	"fmt"
	"html/template"
	"os"
	"path/filepath"
	"time"

	"github.com/devicelab-dev/robot-runner/pkg/core"
)

// HTMLFileName is the HTML report written next to report.json.
const HTMLFileName = "report.html"

// HTMLConfig contains configuration for HTML report generation.
type HTMLConfig struct {
	OutputPath string // Path to write the HTML file (default: <dir>/report.html)
	Title      string // Report title (default: "Robot Report")
}

// HTMLData contains all data needed for the HTML template.
type HTMLData struct {
	Title         string
	GeneratedAt   string
	Suite         *core.SuiteResult
	Scenarios     []ScenarioHTMLData
	TotalDuration string
	PassRate      float64
}

// ScenarioHTMLData contains scenario data formatted for HTML.
type ScenarioHTMLData struct {
	core.ScenarioResult
	StatusClass string
	DurationStr string
	DurationPct float64
	Actions     []ActionHTMLData
}

// ActionHTMLData contains one action formatted for HTML.
type ActionHTMLData struct {
	core.StepResult
	StatusClass string
	DurationStr string
}

// WriteHTML renders suite to an HTML file and returns its path.
func WriteHTML(outputDir string, suite *core.SuiteResult, cfg HTMLConfig) (string, error) {
	if cfg.Title == "" {
		cfg.Title = "Robot Report"
	}
	if cfg.OutputPath == "" {
		cfg.OutputPath = filepath.Join(outputDir, HTMLFileName)
	}
	if err := ensureDir(filepath.Dir(cfg.OutputPath)); err != nil {
		return "", fmt.Errorf("create output dir: %w", err)
	}

	html, err := renderHTML(buildHTMLData(suite, cfg))
	if err != nil {
		return "", fmt.Errorf("render html: %w", err)
	}

	if err := os.WriteFile(cfg.OutputPath, []byte(html), 0o644); err != nil {
		return "", fmt.Errorf("write html: %w", err)
	}
	return cfg.OutputPath, nil
}

func statusClass(s core.StepStatus) string {
	switch s {
	case core.StatusPassed:
		return "passed"
	case core.StatusFailed, core.StatusErrored:
		return "failed"
	case core.StatusSkipped:
		return "skipped"
	default:
		return "pending"
	}
}

func buildHTMLData(suite *core.SuiteResult, cfg HTMLConfig) HTMLData {
	// Longest scenario sets the width of the duration bars
	var maxDuration time.Duration
	for _, sc := range suite.Scenarios {
		if sc.Duration > maxDuration {
			maxDuration = sc.Duration
		}
	}

	scenarios := make([]ScenarioHTMLData, len(suite.Scenarios))
	for i, sc := range suite.Scenarios {
		actions := make([]ActionHTMLData, len(sc.Steps))
		for j, step := range sc.Steps {
			actions[j] = ActionHTMLData{
				StepResult:  step,
				StatusClass: statusClass(step.Status),
				DurationStr: formatDuration(step.Duration),
			}
		}

		var pct float64
		if maxDuration > 0 {
			pct = float64(sc.Duration) / float64(maxDuration) * 100
		}

		scenarios[i] = ScenarioHTMLData{
			ScenarioResult: sc,
			StatusClass:    statusClass(sc.Status),
			DurationStr:    formatDuration(sc.Duration),
			DurationPct:    pct,
			Actions:        actions,
		}
	}

	var passRate float64
	if suite.TotalScenarios > 0 {
		passRate = float64(suite.PassedScenarios) / float64(suite.TotalScenarios) * 100
	}

	return HTMLData{
		Title:         cfg.Title,
		GeneratedAt:   time.Now().Format("2006-01-02 15:04:05"),
		Suite:         suite,
		Scenarios:     scenarios,
		TotalDuration: formatDuration(suite.Duration),
		PassRate:      passRate,
	}
}

func formatDuration(d time.Duration) string {
	if d < time.Second {
		return fmt.Sprintf("%dms", d.Milliseconds())
	}
	if d < time.Minute {
		return fmt.Sprintf("%.1fs", d.Seconds())
	}
	return fmt.Sprintf("%dm %ds", int(d.Minutes()), int(d.Seconds())%60)
}

func renderHTML(data HTMLData) (string, error) {
	tmpl, err := template.New("report").Parse(htmlTemplate)
	if err != nil {
		return "", err
	}

	var buf bytes.Buffer
	if err := tmpl.Execute(&buf, data); err != nil {
		return "", err
	}
	return buf.String(), nil
}

const htmlTemplate = `<!DOCTYPE html>
<html lang="en">
<head>
    <meta charset="UTF-8">
    <meta name="viewport" content="width=device-width, initial-scale=1.0">
    <title>{{.Title}}</title>
    <style>
        :root {
            --bg-primary: #ffffff;
            --bg-secondary: #f9fafb;
            --text-primary: #000000;
            --text-muted: rgb(107, 114, 128);
            --border-color: #e5e7eb;
            --passed: #22c55e;
            --failed: #ef4444;
            --skipped: #eab308;
            --pending: #6b7280;
        }
        * { box-sizing: border-box; margin: 0; padding: 0; }
        body { font-family: -apple-system, BlinkMacSystemFont, "Segoe UI", sans-serif; background: var(--bg-secondary); color: var(--text-primary); padding: 24px; }
        h1 { font-size: 20px; margin-bottom: 4px; }
        .meta { color: var(--text-muted); font-size: 13px; margin-bottom: 16px; }
        .summary { display: flex; gap: 16px; margin-bottom: 24px; }
        .card { background: var(--bg-primary); border: 1px solid var(--border-color); border-radius: 8px; padding: 12px 16px; }
        .scenario { background: var(--bg-primary); border: 1px solid var(--border-color); border-radius: 8px; margin-bottom: 12px; }
        .scenario summary { padding: 12px 16px; cursor: pointer; display: flex; gap: 12px; align-items: center; }
        .bar { height: 4px; background: var(--border-color); }
        .bar span { display: block; height: 100%; background: var(--pending); }
        .passed { color: var(--passed); }
        .failed { color: var(--failed); }
        .skipped { color: var(--skipped); }
        .pending { color: var(--pending); }
        table { width: 100%; border-collapse: collapse; font-size: 13px; }
        td { padding: 6px 16px; border-top: 1px solid var(--border-color); }
        .error { color: var(--failed); font-family: monospace; padding: 8px 16px; }
    </style>
</head>
<body>
    <h1>{{.Title}}</h1>
    <div class="meta">Run {{.Suite.RunID}} &middot; generated {{.GeneratedAt}} &middot; {{.TotalDuration}}</div>
    <div class="summary">
        <div class="card">{{.Suite.TotalScenarios}} scenarios</div>
        <div class="card passed">{{.Suite.PassedScenarios}} passed</div>
        <div class="card failed">{{.Suite.FailedScenarios}} failed</div>
        <div class="card skipped">{{.Suite.SkippedScenarios}} skipped</div>
        <div class="card">{{printf "%.0f" .PassRate}}% pass rate</div>
    </div>
    {{range .Scenarios}}
    <details class="scenario"{{if eq .StatusClass "failed"}} open{{end}}>
        <summary>
            <span class="{{.StatusClass}}">{{.Status}}</span>
            <strong>{{.Name}}</strong>
            <span class="meta">{{.Description}}</span>
            <span class="meta">{{.DurationStr}}</span>
        </summary>
        <div class="bar"><span style="width: {{printf "%.1f" .DurationPct}}%"></span></div>
        {{if .Error}}<div class="error">{{.Error}}</div>{{end}}
        <table>
            {{range .Actions}}
            <tr>
                <td class="{{.StatusClass}}">{{.Status}}</td>
                <td>{{.Describe}}</td>
                <td>{{.Key}}</td>
                <td>{{.DurationStr}}</td>
                <td class="failed">{{.Error}}</td>
            </tr>
            {{end}}
        </table>
    </details>
    {{end}}
</body>
</html>
`
