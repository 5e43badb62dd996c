package logger

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestSetOutput_Levels(t *testing.T) {
	var buf bytes.Buffer
	SetOutput(&buf)
	defer Close()

	Info("hello %s", "world")
	Warn("careful")
	Error("broken: %d", 42)
	Debug("hidden")

	out := buf.String()
	for _, want := range []string{"[INFO] hello world", "[WARN] careful", "[ERROR] broken: 42"} {
		if !strings.Contains(out, want) {
			t.Errorf("output %q missing %q", out, want)
		}
	}
	if strings.Contains(out, "hidden") {
		t.Error("Debug should be dropped when debug is disabled")
	}

	SetDebug(true)
	defer SetDebug(false)
	Debug("visible")
	if !strings.Contains(buf.String(), "[DEBUG] visible") {
		t.Error("Debug should be written when debug is enabled")
	}
}

func TestInit_WritesFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "run.log")
	if err := Init(path); err != nil {
		t.Fatalf("Init() error = %v", err)
	}
	Info("to file")
	Close()
	Info("after close")

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(string(data), "[INFO] to file") {
		t.Errorf("log file = %q, want info line", data)
	}
	if strings.Contains(string(data), "after close") {
		t.Errorf("log file = %q, should not contain lines logged after Close", data)
	}
}

func TestInit_BadPath(t *testing.T) {
	if err := Init(filepath.Join(t.TempDir(), "missing", "run.log")); err == nil {
		t.Error("Init() should fail when the directory does not exist")
	}
}

func TestClose_DisablesLogging(t *testing.T) {
	var buf bytes.Buffer
	SetOutput(&buf)
	Close()

	Info("after close")
	if buf.Len() != 0 {
		t.Errorf("output after Close = %q, want empty", buf.String())
	}

	SetOutput(nil)
	Warn("disabled")
	if buf.Len() != 0 {
		t.Errorf("output after SetOutput(nil) = %q, want empty", buf.String())
	}
}
