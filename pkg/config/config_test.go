package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoad_ValidConfig(t *testing.T) {
	dir := t.TempDir()
	configPath := filepath.Join(dir, "config.yaml")

	content := `
scenarios:
  - first-test
driver: browser
registry: elements.yaml
timeout: 5000
stopOnFail: true
output: /abs/reports
credentials:
  userName: user1
  password: abcd123
browser:
  url: http://localhost:3000
  headless: false
  attribute: data-test
`
	if err := os.WriteFile(configPath, []byte(content), 0644); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(configPath)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if len(cfg.Scenarios) != 1 || cfg.Scenarios[0] != "first-test" {
		t.Errorf("expected scenarios [first-test], got %v", cfg.Scenarios)
	}
	if cfg.Driver != "browser" {
		t.Errorf("expected driver browser, got %s", cfg.Driver)
	}
	if cfg.Registry != filepath.Join(dir, "elements.yaml") {
		t.Errorf("registry not resolved against config dir: %s", cfg.Registry)
	}
	if cfg.Output != "/abs/reports" {
		t.Errorf("absolute output changed: %s", cfg.Output)
	}
	if cfg.TimeoutMs != 5000 || !cfg.StopOnFail {
		t.Errorf("timeout/stopOnFail = %d/%v", cfg.TimeoutMs, cfg.StopOnFail)
	}
	if cfg.Credentials.UserName != "user1" || cfg.Credentials.Password != "abcd123" {
		t.Errorf("credentials = %+v", cfg.Credentials)
	}
	if cfg.Browser.URL != "http://localhost:3000" || cfg.Browser.Attribute != "data-test" {
		t.Errorf("browser = %+v", cfg.Browser)
	}
	if cfg.Browser.Headless == nil || *cfg.Browser.Headless {
		t.Error("expected headless: false to be set")
	}
}

func TestLoad_NonExistentFile(t *testing.T) {
	if _, err := Load("/nonexistent/config.yaml"); err == nil {
		t.Error("expected error for nonexistent file")
	}
}

func TestLoad_InvalidYAML(t *testing.T) {
	dir := t.TempDir()
	configPath := filepath.Join(dir, "config.yaml")

	if err := os.WriteFile(configPath, []byte(`scenarios: [invalid yaml`), 0644); err != nil {
		t.Fatal(err)
	}

	if _, err := Load(configPath); err == nil {
		t.Error("expected error for invalid YAML")
	}
}

func TestLoadFromDir(t *testing.T) {
	t.Run("yaml", func(t *testing.T) {
		dir := t.TempDir()
		os.WriteFile(filepath.Join(dir, "config.yaml"), []byte("driver: mock\n"), 0644)
		cfg, err := LoadFromDir(dir)
		if err != nil || cfg.Driver != "mock" {
			t.Errorf("LoadFromDir() = %+v, %v", cfg, err)
		}
	})

	t.Run("yml", func(t *testing.T) {
		dir := t.TempDir()
		os.WriteFile(filepath.Join(dir, "config.yml"), []byte("driver: console\n"), 0644)
		cfg, err := LoadFromDir(dir)
		if err != nil || cfg.Driver != "console" {
			t.Errorf("LoadFromDir() = %+v, %v", cfg, err)
		}
	})

	t.Run("none", func(t *testing.T) {
		cfg, err := LoadFromDir(t.TempDir())
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if cfg.Driver != "" || len(cfg.Scenarios) != 0 {
			t.Errorf("expected empty config, got %+v", cfg)
		}
	})
}

func TestLoadEnv_File(t *testing.T) {
	dir := t.TempDir()
	envPath := filepath.Join(dir, "test.env")
	if err := os.WriteFile(envPath, []byte("ROBOT_USERNAME=envuser\nROBOT_PASSWORD=envpass\n"), 0644); err != nil {
		t.Fatal(err)
	}
	t.Setenv(EnvUserName, "")
	os.Unsetenv(EnvUserName)
	t.Setenv(EnvPassword, "preset")

	if err := LoadEnv(envPath); err != nil {
		t.Fatalf("LoadEnv() error = %v", err)
	}

	cfg := &Config{}
	cfg.ApplyEnv()
	if cfg.Credentials.UserName != "envuser" {
		t.Errorf("UserName = %q, want envuser", cfg.Credentials.UserName)
	}
	if cfg.Credentials.Password != "preset" {
		t.Errorf("Password = %q, existing env var should win", cfg.Credentials.Password)
	}
}

func TestLoadEnv_MissingExplicitFile(t *testing.T) {
	if err := LoadEnv(filepath.Join(t.TempDir(), "nope.env")); err == nil {
		t.Error("LoadEnv() should fail for a missing explicit file")
	}
}

func TestApplyEnv_KeepsConfigured(t *testing.T) {
	t.Setenv(EnvUserName, "fromenv")
	t.Setenv(EnvPassword, "fromenv")

	cfg := &Config{Credentials: Credentials{UserName: "cfg", Password: "cfgpass"}}
	cfg.ApplyEnv()

	if cfg.Credentials.UserName != "cfg" || cfg.Credentials.Password != "cfgpass" {
		t.Errorf("ApplyEnv() overrode configured credentials: %+v", cfg.Credentials)
	}
}

func TestLoad_AppiumSection(t *testing.T) {
	dir := t.TempDir()
	configPath := filepath.Join(dir, "config.yaml")

	content := `
driver: appium
appium:
  server: http://127.0.0.1:4723
  strategy: id
  capabilities:
    platformName: iOS
    appium:automationName: XCUITest
    appium:noReset: true
`
	if err := os.WriteFile(configPath, []byte(content), 0644); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(configPath)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if cfg.Appium.Server != "http://127.0.0.1:4723" || cfg.Appium.Strategy != "id" {
		t.Errorf("unexpected appium settings: %+v", cfg.Appium)
	}
	if cfg.Appium.Capabilities["platformName"] != "iOS" {
		t.Errorf("expected platformName iOS, got %v", cfg.Appium.Capabilities["platformName"])
	}
	if cfg.Appium.Capabilities["appium:noReset"] != true {
		t.Errorf("expected appium:noReset true, got %v", cfg.Appium.Capabilities["appium:noReset"])
	}
}
