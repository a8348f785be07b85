// Package testutil provides test helpers for CLI tests.
package testutil

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/nishantbasu/generator-lit-sass-rollup-openwc-starter/internal/output"
)

// CaptureLogs routes the global logger into a buffer without timestamps
// for the duration of the test.
func CaptureLogs(t *testing.T) *bytes.Buffer {
	t.Helper()
	var buf bytes.Buffer
	output.SetupLogging(output.LogConfig{Writer: &buf, Timestamps: output.BoolPtr(false)})
	t.Cleanup(func() { output.SetupLogging(output.LogConfig{}) })
	return &buf
}

// Isolate points HOME and LITGEN_CONFIG at a fresh temp directory so the
// user's own configuration never leaks into a test. It returns the config
// file path, which does not exist yet.
func Isolate(t *testing.T) string {
	t.Helper()
	home := t.TempDir()
	t.Setenv("HOME", home)
	configFile := filepath.Join(home, ".litgen", "config.yaml")
	t.Setenv("LITGEN_CONFIG", configFile)
	t.Cleanup(func() { output.SetupLogging(output.LogConfig{}) })
	return configFile
}

// WriteFile creates a file with the given content in the specified directory.
func WriteFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatalf("failed to create parent dirs for %s: %v", path, err)
	}
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("failed to write file %s: %v", path, err)
	}
	return path
}

// ReadFile returns the content of path, failing the test if it cannot be read.
func ReadFile(t *testing.T, path string) string {
	t.Helper()
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("failed to read file %s: %v", path, err)
	}
	return string(data)
}
