// Package config handles workspace configuration for robot-runner.
package config

import (
	"errors"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

// Environment variables read by ApplyEnv.
const (
	EnvUserName = "ROBOT_USERNAME"
	EnvPassword = "ROBOT_PASSWORD"
)

// Config represents the workspace configuration (config.yaml).
type Config struct {
	// Scenario selection
	Scenarios []string `yaml:"scenarios"` // Scenario names; empty = all

	// Execution settings
	Driver     string `yaml:"driver"`     // console, mock, browser, appium
	Registry   string `yaml:"registry"`   // Element registry YAML
	TimeoutMs  int    `yaml:"timeout"`    // Per-action timeout in ms
	StopOnFail bool   `yaml:"stopOnFail"` // Skip remaining scenarios after a failure
	Output     string `yaml:"output"`     // Report directory

	// Fixtures
	Credentials Credentials `yaml:"credentials"`

	// Browser driver settings
	Browser Browser `yaml:"browser"`

	// Appium driver settings
	Appium Appium `yaml:"appium"`
}

// Credentials are the login fixture.
type Credentials struct {
	UserName string `yaml:"userName"`
	Password string `yaml:"password"`
}

// Browser configures the browser driver.
type Browser struct {
	URL        string `yaml:"url"`
	Headless   *bool  `yaml:"headless"`
	Attribute  string `yaml:"attribute"`
	ControlURL string `yaml:"controlUrl"`
}

// Appium configures the appium driver.
type Appium struct {
	Server       string                 `yaml:"server"`       // Appium server URL
	Capabilities map[string]interface{} `yaml:"capabilities"` // W3C capabilities
	Strategy     string                 `yaml:"strategy"`     // Locator strategy (default: accessibility id)
}

// Load loads configuration from a file. Relative registry and output
// paths are resolved against the file's directory.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path) //#nosec G304 -- user-provided config file
	if err != nil {
		return nil, err
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, err
	}

	dir := filepath.Dir(path)
	cfg.Registry = resolve(dir, cfg.Registry)
	cfg.Output = resolve(dir, cfg.Output)

	return &cfg, nil
}

// LoadFromDir looks for config.yaml or config.yml in the directory.
func LoadFromDir(dir string) (*Config, error) {
	// Try config.yaml first
	configPath := filepath.Join(dir, "config.yaml")
	if _, err := os.Stat(configPath); err == nil {
		return Load(configPath)
	}

	// Try config.yml
	configPath = filepath.Join(dir, "config.yml")
	if _, err := os.Stat(configPath); err == nil {
		return Load(configPath)
	}

	// No config file found, return empty config
	return &Config{}, nil
}

// LoadEnv loads KEY=VALUE files into the process environment without
// overriding variables that are already set. With no paths it reads .env
// in the working directory; a missing default file is not an error.
func LoadEnv(paths ...string) error {
	if len(paths) == 0 {
		err := godotenv.Load()
		if errors.Is(err, fs.ErrNotExist) {
			return nil
		}
		return err
	}
	return godotenv.Load(paths...)
}

// ApplyEnv fills empty credentials from ROBOT_USERNAME / ROBOT_PASSWORD.
func (c *Config) ApplyEnv() {
	if c.Credentials.UserName == "" {
		c.Credentials.UserName = os.Getenv(EnvUserName)
	}
	if c.Credentials.Password == "" {
		c.Credentials.Password = os.Getenv(EnvPassword)
	}
}

func resolve(dir, p string) string {
	if p == "" || filepath.IsAbs(p) {
		return p
	}
	return filepath.Join(dir, p)
}
