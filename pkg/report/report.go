// Package report writes suite results to disk.
package report

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/devicelab-dev/robot-runner/pkg/core"
)

// FileName is the report written into the output directory.
const FileName = "report.json"

// WriteJSON writes suite to <outputDir>/report.json and returns the path.
func WriteJSON(outputDir string, suite *core.SuiteResult) (string, error) {
	if err := ensureDir(outputDir); err != nil {
		return "", fmt.Errorf("create output dir: %w", err)
	}
	path := filepath.Join(outputDir, FileName)
	if err := atomicWriteJSON(path, suite); err != nil {
		return "", fmt.Errorf("write report: %w", err)
	}
	return path, nil
}

// ReadJSON loads a report written by WriteJSON.
func ReadJSON(path string) (*core.SuiteResult, error) {
	data, err := os.ReadFile(path) //#nosec G304 -- report path chosen by the user
	if err != nil {
		return nil, err
	}

	var suite core.SuiteResult
	if err := json.Unmarshal(data, &suite); err != nil {
		return nil, fmt.Errorf("parse report: %w", err)
	}
	return &suite, nil
}

// atomicWriteJSON writes v to a temp file next to path, then renames it so
// readers never see a partial report.
func atomicWriteJSON(path string, v interface{}) error {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return err
	}

	tmp, err := os.CreateTemp(filepath.Dir(path), ".report-*.json")
	if err != nil {
		return err
	}
	tmpName := tmp.Name()

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		os.Remove(tmpName)
		return err
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpName)
		return err
	}
	if err := os.Rename(tmpName, path); err != nil {
		os.Remove(tmpName)
		return err
	}
	return nil
}

func ensureDir(dir string) error {
	return os.MkdirAll(dir, 0o755)
}
