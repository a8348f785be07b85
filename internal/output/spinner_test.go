package output

import (
	"context"
	"errors"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestRunWithSpinner_NonTTYRunsActionDirectly(t *testing.T) {
	called := false
	err := RunWithSpinner(context.Background(), func() error {
		called = true
		return nil
	}, WithTitle("Copying template files..."))

	assert.NoError(t, err)
	assert.True(t, called)
}

func TestRunWithSpinner_PropagatesActionError(t *testing.T) {
	boom := errors.New("boom")
	err := RunWithSpinner(context.Background(), func() error { return boom })
	assert.ErrorIs(t, err, boom)
}

func TestSpin_WaitsForActionWhenSpinnerFails(t *testing.T) {
	orig := runSpinner
	t.Cleanup(func() { runSpinner = orig })
	runSpinner = func(context.Context, string, func()) error {
		return errors.New("no tty")
	}

	var finished atomic.Bool
	err := spin(context.Background(), "Copying template files...", func() error {
		time.Sleep(50 * time.Millisecond)
		finished.Store(true)
		return nil
	})

	assert.ErrorContains(t, err, "spinner error: no tty")
	assert.True(t, finished.Load(), "action still running after return")
}

func TestSpin_ReturnsActionError(t *testing.T) {
	orig := runSpinner
	t.Cleanup(func() { runSpinner = orig })
	runSpinner = func(_ context.Context, _ string, wait func()) error {
		wait()
		return nil
	}

	boom := errors.New("boom")
	err := spin(context.Background(), "Working...", func() error { return boom })
	assert.ErrorIs(t, err, boom)
}

func TestIsTerminal_NonFile(t *testing.T) {
	assert.False(t, IsTerminal(&errWriter{}))
	assert.False(t, IsTerminal(nil))
}

type errWriter struct{}

func (errWriter) Write(p []byte) (int, error) { return len(p), nil }
