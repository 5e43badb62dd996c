package cli

import (
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/devicelab-dev/robot-runner/pkg/core"
)

// ANSI color codes
const (
	colorReset  = "\033[0m"
	colorBold   = "\033[1m"
	colorGreen  = "\033[32m"
	colorRed    = "\033[31m"
	colorYellow = "\033[33m"
	colorCyan   = "\033[36m"
	colorGray   = "\033[90m"
)

// Slow step threshold
const slowThreshold = 5 * time.Second

// colorsEnabled determines if ANSI colors should be used
var colorsEnabled = true

func init() {
	// Respect NO_COLOR environment variable
	if os.Getenv("NO_COLOR") != "" {
		colorsEnabled = false
		return
	}
	// Check if stdout is a terminal
	if fileInfo, err := os.Stdout.Stat(); err == nil {
		if (fileInfo.Mode() & os.ModeCharDevice) == 0 {
			colorsEnabled = false
		}
	}
}

// printer renders live progress and the final summary.
type printer struct {
	w      io.Writer
	colors bool
}

func newPrinter(w io.Writer, colors bool) *printer {
	return &printer{w: w, colors: colors}
}

// color returns the color code if colors are enabled, empty string otherwise
func (p *printer) color(c string) string {
	if p.colors {
		return c
	}
	return ""
}

func (p *printer) onScenarioStart(idx, total int, name string) {
	fmt.Fprintf(p.w, "\n  %s[%d/%d]%s %s%s%s\n",
		p.color(colorCyan), idx+1, total, p.color(colorReset),
		p.color(colorBold), name, p.color(colorReset))
	fmt.Fprintln(p.w, strings.Repeat("─", 60))
}

func (p *printer) onStepComplete(step core.StepResult) {
	desc := step.Describe()
	durStr := formatDuration(step.Duration)

	switch step.Status {
	case core.StatusPassed:
		symbol, symbolColor, durColor := "✓", p.color(colorGreen), ""
		if step.Duration >= slowThreshold {
			symbol, symbolColor, durColor = "⚠", p.color(colorYellow), p.color(colorYellow)
		}
		fmt.Fprintf(p.w, "    %s%s%s %s %s(%s)%s\n",
			symbolColor, symbol, p.color(colorReset), desc, durColor, durStr, p.color(colorReset))
	case core.StatusSkipped:
		fmt.Fprintf(p.w, "    %s-%s %s %s(skipped)%s\n",
			p.color(colorCyan), p.color(colorReset), desc, p.color(colorGray), p.color(colorReset))
	default:
		fmt.Fprintf(p.w, "    %s✗%s %s (%s)\n", p.color(colorRed), p.color(colorReset), desc, durStr)
		if step.Error != "" {
			fmt.Fprintf(p.w, "      %s╰─%s %s\n", p.color(colorGray), p.color(colorReset), step.Error)
		}
	}
}

func (p *printer) onScenarioEnd(result core.ScenarioResult) {
	if result.Status.IsSuccess() {
		fmt.Fprintf(p.w, "%s✓ %s%s %s%s%s\n",
			p.color(colorGreen), p.color(colorReset), result.Name,
			p.color(colorGray), formatDuration(result.Duration), p.color(colorReset))
		return
	}
	fmt.Fprintf(p.w, "%s✗ %s%s %s%s%s\n",
		p.color(colorRed), p.color(colorReset), result.Name,
		p.color(colorGray), formatDuration(result.Duration), p.color(colorReset))
	if result.TotalSteps == 0 && result.Error != "" {
		fmt.Fprintf(p.w, "  %s╰─%s %s\n", p.color(colorGray), p.color(colorReset), result.Error)
	}
}

func (p *printer) printSummary(suite *core.SuiteResult) {
	totalSteps, passedSteps, failedSteps, skippedSteps := 0, 0, 0, 0
	for _, sc := range suite.Scenarios {
		totalSteps += sc.TotalSteps
		passedSteps += sc.PassedSteps
		failedSteps += sc.FailedSteps
		skippedSteps += sc.SkippedSteps
	}

	fmt.Fprintln(p.w)
	if passedSteps > 0 {
		fmt.Fprintf(p.w, "  %s%d actions passing%s (%s)\n", p.color(colorGreen), passedSteps, p.color(colorReset), formatDuration(suite.Duration))
	}
	if failedSteps > 0 {
		fmt.Fprintf(p.w, "  %s%d actions failing%s\n", p.color(colorRed), failedSteps, p.color(colorReset))
	}
	if skippedSteps > 0 {
		fmt.Fprintf(p.w, "  %s%d actions skipped%s\n", p.color(colorCyan), skippedSteps, p.color(colorReset))
	}
	fmt.Fprintln(p.w)

	tableWidth := 82
	fmt.Fprintln(p.w, strings.Repeat("═", tableWidth))
	fmt.Fprintf(p.w, "  %-32s %6s %7s %6s %6s %6s %10s\n", "Scenario", "Status", "Actions", "Pass", "Fail", "Skip", "Duration")
	fmt.Fprintln(p.w, strings.Repeat("─", tableWidth))

	for _, sc := range suite.Scenarios {
		var status, statusColor string
		switch {
		case sc.Status == core.StatusSkipped:
			status, statusColor = "- SKIP", p.color(colorCyan)
		case sc.Status.IsSuccess():
			status, statusColor = "✓ PASS", p.color(colorGreen)
		default:
			status, statusColor = "✗ FAIL", p.color(colorRed)
		}

		name := sc.Name
		if len(name) > 32 {
			name = name[:29] + "..."
		}

		fmt.Fprintf(p.w, "  %-32s %s%6s%s %7d %6d %6d %6d %10s\n",
			name, statusColor, status, p.color(colorReset),
			sc.TotalSteps, sc.PassedSteps, sc.FailedSteps, sc.SkippedSteps,
			formatDuration(sc.Duration))
	}

	fmt.Fprintln(p.w, strings.Repeat("─", tableWidth))
	statusStr := fmt.Sprintf("%d/%d", suite.PassedScenarios, suite.TotalScenarios)
	statusColor := p.color(colorGreen)
	if suite.FailedScenarios > 0 {
		statusColor = p.color(colorRed)
	}
	fmt.Fprintf(p.w, "  %s%-32s%s %s%6s%s %7d %6d %6d %6d %10s\n",
		p.color(colorBold), "TOTAL", p.color(colorReset),
		statusColor, statusStr, p.color(colorReset),
		totalSteps, passedSteps, failedSteps, skippedSteps,
		formatDuration(suite.Duration))
	fmt.Fprintln(p.w, strings.Repeat("═", tableWidth))
}

// formatDuration formats a duration for display.
// Shows milliseconds for values < 1s, seconds otherwise.
func formatDuration(d time.Duration) string {
	ms := d.Milliseconds()
	if ms < 1000 {
		return fmt.Sprintf("%dms", ms)
	}
	if ms < 60000 {
		return fmt.Sprintf("%.1fs", float64(ms)/1000)
	}
	mins := ms / 60000
	secs := (ms % 60000) / 1000
	return fmt.Sprintf("%dm %ds", mins, secs)
}
