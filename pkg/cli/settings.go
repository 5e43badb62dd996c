package cli

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/urfave/cli/v2"

	"github.com/devicelab-dev/robot-runner/pkg/config"
	"github.com/devicelab-dev/robot-runner/pkg/driver/appium"
	"github.com/devicelab-dev/robot-runner/pkg/driver/browser"
	"github.com/devicelab-dev/robot-runner/pkg/element"
	"github.com/devicelab-dev/robot-runner/pkg/robot"
)

// settings is the merged view of config.yaml, environment and flags.
// Flags win over config.yaml, config.yaml wins over environment defaults.
type settings struct {
	driver      string
	registry    *element.Registry
	registrySrc string
	timeout     time.Duration
	scenarios   []string
	stopOnFail  bool
	outputDir   string
	credentials robot.Credentials
	browser     browser.Config
	appium      appium.Config
	mockFailOn  int
	verbose     bool
	noANSI      bool
}

// loadSettings resolves settings for the current command.
func loadSettings(c *cli.Context) (*settings, error) {
	if err := config.LoadEnv(envFiles(c)...); err != nil {
		return nil, fmt.Errorf("failed to load env file: %w", err)
	}

	cfg, err := loadConfig(c.String("config"))
	if err != nil {
		return nil, err
	}
	cfg.ApplyEnv()

	s := &settings{
		driver:      cfg.Driver,
		registrySrc: cfg.Registry,
		timeout:     time.Duration(cfg.TimeoutMs) * time.Millisecond,
		scenarios:   cfg.Scenarios,
		stopOnFail:  cfg.StopOnFail,
		outputDir:   cfg.Output,
		credentials: robot.Credentials{
			UserName: cfg.Credentials.UserName,
			Password: cfg.Credentials.Password,
		},
		browser: browser.Config{
			URL:        cfg.Browser.URL,
			Headless:   true,
			Attribute:  cfg.Browser.Attribute,
			ControlURL: cfg.Browser.ControlURL,
		},
		appium: appium.Config{
			ServerURL:    cfg.Appium.Server,
			Capabilities: cfg.Appium.Capabilities,
			Strategy:     cfg.Appium.Strategy,
		},
		verbose: c.Bool("verbose"),
		noANSI:  c.Bool("no-ansi"),
	}
	if cfg.Browser.Headless != nil {
		s.browser.Headless = *cfg.Browser.Headless
	}

	if c.IsSet("driver") || s.driver == "" {
		s.driver = c.String("driver")
	}
	if c.IsSet("registry") {
		s.registrySrc = c.String("registry")
	}
	if c.IsSet("timeout") {
		s.timeout = time.Duration(c.Int("timeout")) * time.Millisecond
	}

	if s.registrySrc != "" {
		reg, err := element.LoadRegistry(s.registrySrc)
		if err != nil {
			return nil, err
		}
		s.registry = reg
	} else {
		s.registry = element.Default()
	}

	return s, nil
}

func loadConfig(path string) (*config.Config, error) {
	if path != "" {
		cfg, err := config.Load(path)
		if err != nil {
			return nil, fmt.Errorf("failed to load config %s: %w", path, err)
		}
		return cfg, nil
	}
	cwd, err := os.Getwd()
	if err != nil {
		return &config.Config{}, nil
	}
	return config.LoadFromDir(cwd)
}

func envFiles(c *cli.Context) []string {
	if f := c.String("env-file"); f != "" {
		return []string{f}
	}
	return nil
}

// defaultOutputDir returns <home>/reports/<timestamp>.
func defaultOutputDir() string {
	return filepath.Join(config.GetReportsDir(), time.Now().Format("2006-01-02_15-04-05"))
}
