// Package cli provides the command-line interface for robot-runner.
package cli

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/urfave/cli/v2"
)

// Version is set at build time.
var Version = "dev"

// GlobalFlags are available to all commands.
var GlobalFlags = []cli.Flag{
	&cli.StringFlag{
		Name:  "config",
		Usage: "Path to workspace config.yaml (default: ./config.yaml if present)",
	},
	&cli.StringFlag{
		Name:    "driver",
		Aliases: []string{"d"},
		Usage:   "Driver to use (console, mock, browser, appium)",
		Value:   "console",
		EnvVars: []string{"ROBOT_DRIVER"},
	},
	&cli.StringFlag{
		Name:    "registry",
		Usage:   "Element registry YAML (default: built-in elements)",
		EnvVars: []string{"ROBOT_REGISTRY"},
	},
	&cli.IntFlag{
		Name:    "timeout",
		Usage:   "Per-action timeout in ms (0 = no timeout)",
		EnvVars: []string{"ROBOT_TIMEOUT"},
	},
	&cli.StringFlag{
		Name:  "env-file",
		Usage: "Load environment variables from this file (default: ./.env if present)",
	},
	&cli.BoolFlag{
		Name:    "verbose",
		Usage:   "Enable debug logging",
		EnvVars: []string{"ROBOT_VERBOSE"},
	},
	&cli.BoolFlag{
		Name:  "no-ansi",
		Usage: "Disable ANSI colors",
	},
}

// newApp builds the application. Output goes to w.
func newApp(w io.Writer) *cli.App {
	return &cli.App{
		Name:    "robot-runner",
		Usage:   "Run robot-pattern UI scenarios",
		Version: Version,
		Description: `robot-runner executes UI scenarios written with screen robots.
Each scenario gets a fresh driver session; the first failing action
aborts the rest of that scenario.

Examples:
  robot-runner run
  robot-runner --driver mock run first-test
  robot-runner --driver browser run --url http://localhost:3000
  robot-runner elements --registry elements.yaml`,
		Flags: GlobalFlags,
		Commands: []*cli.Command{
			runCommand,
			scenariosCommand,
			elementsCommand,
		},
		Writer:    w,
		ErrWriter: w,
		// Exit codes are handled by Execute so tests can call Run.
		ExitErrHandler: func(*cli.Context, error) {},
	}
}

// Execute runs the CLI.
func Execute() {
	app := newApp(os.Stdout)

	if err := app.Run(os.Args); err != nil {
		var exitErr cli.ExitCoder
		if errors.As(err, &exitErr) {
			if msg := exitErr.Error(); msg != "" {
				fmt.Fprintf(os.Stderr, "Error: %s\n", msg)
			}
			os.Exit(exitErr.ExitCode())
		}
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
