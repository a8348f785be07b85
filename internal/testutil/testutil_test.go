package testutil

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/nishantbasu/generator-lit-sass-rollup-openwc-starter/internal/output"
)

func TestCaptureLogs(t *testing.T) {
	buf := CaptureLogs(t)
	output.Info("hello from test")
	assert.Contains(t, buf.String(), "hello from test")
}

func TestIsolate(t *testing.T) {
	configFile := Isolate(t)

	assert.Equal(t, configFile, os.Getenv("LITGEN_CONFIG"))
	assert.Equal(t, filepath.Join(os.Getenv("HOME"), ".litgen", "config.yaml"), configFile)
	assert.NoFileExists(t, configFile)
}

func TestWriteAndReadFile(t *testing.T) {
	dir := t.TempDir()
	path := WriteFile(t, dir, "a/b/c.txt", "content")

	assert.Equal(t, filepath.Join(dir, "a/b/c.txt"), path)
	assert.Equal(t, "content", ReadFile(t, path))
}
