package cli

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"path/filepath"
	"sync"
	"syscall"

	"github.com/urfave/cli/v2"

	"github.com/devicelab-dev/robot-runner/pkg/action"
	"github.com/devicelab-dev/robot-runner/pkg/core"
	"github.com/devicelab-dev/robot-runner/pkg/driver/appium"
	"github.com/devicelab-dev/robot-runner/pkg/driver/browser"
	"github.com/devicelab-dev/robot-runner/pkg/driver/console"
	"github.com/devicelab-dev/robot-runner/pkg/driver/mock"
	"github.com/devicelab-dev/robot-runner/pkg/executor"
	"github.com/devicelab-dev/robot-runner/pkg/logger"
	"github.com/devicelab-dev/robot-runner/pkg/report"
	"github.com/devicelab-dev/robot-runner/pkg/robot"
	"github.com/devicelab-dev/robot-runner/pkg/scenario"
)

var runCommand = &cli.Command{
	Name:      "run",
	Usage:     "Run scenarios",
	ArgsUsage: "[scenario...]",
	Description: `Run one or more scenarios by name (default: all).

report.json, report.html and robot-runner.log are written to the output directory:
  - Default: <home>/reports/<timestamp>/
  - With --output: <output>/

Examples:
  robot-runner run
  robot-runner run first-test
  robot-runner --driver mock run --parallel 2
  robot-runner --driver mock run --mock-fail-on 3
  robot-runner --driver browser run --url http://localhost:3000 --headless=false
  robot-runner --driver appium run --appium-url http://127.0.0.1:4723
  ROBOT_USERNAME=qa ROBOT_PASSWORD=secret robot-runner run login`,
	Flags: []cli.Flag{
		&cli.StringFlag{
			Name:  "output",
			Usage: "Output directory for report and log",
		},
		&cli.BoolFlag{
			Name:  "stop-on-fail",
			Usage: "Skip remaining scenarios after the first failure",
		},
		&cli.IntFlag{
			Name:  "parallel",
			Usage: "Number of scenarios to run at once, each on its own driver session",
			Value: 1,
		},

		// Fixtures
		&cli.StringFlag{
			Name:  "user",
			Usage: "Login user name (overrides config and ROBOT_USERNAME)",
		},
		&cli.StringFlag{
			Name:  "password",
			Usage: "Login password (overrides config and ROBOT_PASSWORD)",
		},

		// Browser driver
		&cli.StringFlag{
			Name:    "url",
			Usage:   "Page to open (browser driver)",
			EnvVars: []string{"ROBOT_URL"},
		},
		&cli.BoolFlag{
			Name:  "headless",
			Usage: "Run the browser headless (browser driver)",
			Value: true,
		},
		&cli.StringFlag{
			Name:  "attribute",
			Usage: "Element attribute holding lookup keys (browser driver)",
			Value: browser.DefaultAttribute,
		},
		&cli.StringFlag{
			Name:  "control-url",
			Usage: "DevTools URL of an already running browser (browser driver)",
		},

		// Appium driver
		&cli.StringFlag{
			Name:    "appium-url",
			Usage:   "Appium server URL (appium driver)",
			EnvVars: []string{"ROBOT_APPIUM_URL"},
		},
		&cli.StringFlag{
			Name:  "strategy",
			Usage: "Locator strategy for element ids (appium driver, default: accessibility id)",
		},

		// Mock driver
		&cli.IntFlag{
			Name:  "mock-fail-on",
			Usage: "Make driver call N fail in each scenario (mock driver)",
		},
	},
	Action: runScenarios,
}

func runScenarios(c *cli.Context) error {
	s, err := loadSettings(c)
	if err != nil {
		return err
	}
	applyRunFlags(c, s)

	cases, err := scenario.Select(selectedNames(c, s))
	if err != nil {
		return err
	}

	outputDir := s.outputDir
	if outputDir == "" {
		outputDir = defaultOutputDir()
	}
	if err := os.MkdirAll(outputDir, 0o755); err != nil {
		return fmt.Errorf("failed to create output dir: %w", err)
	}

	if err := logger.Init(filepath.Join(outputDir, "robot-runner.log")); err != nil {
		return err
	}
	defer logger.Close()
	logger.SetDebug(s.verbose)
	logger.Info("Driver: %s, registry: %s, timeout: %v", s.driver, registryLabel(s), s.timeout)

	// Console sessions and the printer share the writer across workers.
	out := &syncWriter{w: c.App.Writer}
	p := newPrinter(out, !s.noANSI && colorsEnabled)

	factory, err := driverFactory(s, out)
	if err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(c.Context, os.Interrupt, syscall.SIGTERM)
	defer stop()

	runCfg := executor.RunnerConfig{
		Name:            "robot-runner",
		Registry:        s.registry,
		Fixtures:        scenario.Fixtures{Credentials: s.credentials},
		ActionTimeout:   s.timeout,
		StopOnFail:      s.stopOnFail,
		DriverName:      s.driver,
		OnScenarioStart: p.onScenarioStart,
		OnStepComplete:  p.onStepComplete,
		OnScenarioEnd:   p.onScenarioEnd,
	}

	var suite *core.SuiteResult
	if workers := c.Int("parallel"); workers != 1 {
		pr, err := executor.NewParallelRunner(workers, factory, runCfg)
		if err != nil {
			return err
		}
		suite = pr.Run(ctx, cases)
	} else {
		suite = executor.New(factory, runCfg).Run(ctx, cases)
	}

	p.printSummary(suite)

	path, err := report.WriteJSON(outputDir, suite)
	if err != nil {
		return err
	}
	fmt.Fprintf(out, "\n  Report: %s\n", path)

	htmlPath, err := report.WriteHTML(outputDir, suite, report.HTMLConfig{})
	if err != nil {
		logger.Warn("HTML report: %v", err)
	} else {
		fmt.Fprintf(out, "  HTML:   %s\n", htmlPath)
	}

	if !suite.Success() {
		return cli.Exit(fmt.Sprintf("%d of %d scenario(s) did not pass",
			suite.TotalScenarios-suite.PassedScenarios, suite.TotalScenarios), 1)
	}
	return nil
}

// applyRunFlags layers run flags over loaded settings.
func applyRunFlags(c *cli.Context, s *settings) {
	if c.IsSet("output") {
		s.outputDir = c.String("output")
	}
	if c.IsSet("stop-on-fail") {
		s.stopOnFail = c.Bool("stop-on-fail")
	}
	if c.IsSet("user") {
		s.credentials.UserName = c.String("user")
	}
	if c.IsSet("password") {
		s.credentials.Password = c.String("password")
	}
	if c.IsSet("url") {
		s.browser.URL = c.String("url")
	}
	if c.IsSet("headless") {
		s.browser.Headless = c.Bool("headless")
	}
	if c.IsSet("attribute") || s.browser.Attribute == "" {
		s.browser.Attribute = c.String("attribute")
	}
	if c.IsSet("control-url") {
		s.browser.ControlURL = c.String("control-url")
	}
	if c.IsSet("appium-url") {
		s.appium.ServerURL = c.String("appium-url")
	}
	if c.IsSet("strategy") {
		s.appium.Strategy = c.String("strategy")
	}
	s.mockFailOn = c.Int("mock-fail-on")

	if s.credentials == (robot.Credentials{}) {
		s.credentials = scenario.DefaultFixtures().Credentials
	}
}

func selectedNames(c *cli.Context, s *settings) []string {
	if c.NArg() > 0 {
		return c.Args().Slice()
	}
	return s.scenarios
}

// driverFactory returns a factory opening one session per scenario.
func driverFactory(s *settings, out io.Writer) (executor.DriverFactory, error) {
	switch s.driver {
	case "console":
		return func(ctx context.Context) (action.Driver, error) {
			return console.New(out), nil
		}, nil
	case "mock":
		failOn := s.mockFailOn
		return func(ctx context.Context) (action.Driver, error) {
			return mock.New(mock.Config{FailOnCall: failOn}), nil
		}, nil
	case "browser":
		if s.browser.URL == "" {
			return nil, core.ErrMissingRequired.WithMessage("browser driver requires --url or browser.url in config")
		}
		cfg := s.browser
		return func(ctx context.Context) (action.Driver, error) {
			d, err := browser.New(ctx, cfg)
			if err != nil {
				return nil, err
			}
			return d, nil
		}, nil
	case "appium":
		if s.appium.ServerURL == "" {
			return nil, core.ErrMissingRequired.WithMessage("appium driver requires --appium-url or appium.server in config")
		}
		cfg := s.appium
		return func(ctx context.Context) (action.Driver, error) {
			d, err := appium.New(ctx, cfg)
			if err != nil {
				return nil, err
			}
			return d, nil
		}, nil
	default:
		return nil, core.ErrInvalidConfig.WithMessage(
			fmt.Sprintf("unknown driver %q (use console, mock, browser or appium)", s.driver))
	}
}

type syncWriter struct {
	mu sync.Mutex
	w  io.Writer
}

func (s *syncWriter) Write(p []byte) (int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.w.Write(p)
}

func registryLabel(s *settings) string {
	if s.registrySrc == "" {
		return "built-in"
	}
	return s.registrySrc
}
