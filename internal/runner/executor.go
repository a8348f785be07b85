// Package runner runs the generated project's install, build and serve
// commands as a cascade of external processes.
package runner

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/exec"
	"runtime"
)

// Executor runs one shell command to completion.
type Executor interface {
	Run(ctx context.Context, command string) error
}

// ShellExecutor runs commands through the platform shell with the given
// standard streams attached directly to the child.
type ShellExecutor struct {
	// Dir is the working directory of the child.
	Dir string

	// Stdin, Stdout and Stderr default to the process's own streams.
	Stdin  io.Reader
	Stdout io.Writer
	Stderr io.Writer
}

// Run starts command and waits for it. A non-zero exit or a spawn failure
// is returned as an error.
func (e *ShellExecutor) Run(ctx context.Context, command string) error {
	name, args := shellCommand(command)

	cmd := exec.CommandContext(ctx, name, args...)
	cmd.Dir = e.Dir
	cmd.Stdin = e.Stdin
	cmd.Stdout = e.Stdout
	cmd.Stderr = e.Stderr
	if cmd.Stdin == nil {
		cmd.Stdin = os.Stdin
	}
	if cmd.Stdout == nil {
		cmd.Stdout = os.Stdout
	}
	if cmd.Stderr == nil {
		cmd.Stderr = os.Stderr
	}

	if err := cmd.Run(); err != nil {
		return fmt.Errorf("command failed: %s: %w", command, err)
	}
	return nil
}

func shellCommand(command string) (string, []string) {
	if runtime.GOOS == "windows" {
		return "cmd", []string{"/C", command}
	}
	return "sh", []string{"-c", command}
}
