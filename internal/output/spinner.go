package output

import (
	"context"
	"fmt"

	"github.com/charmbracelet/huh/spinner"
)

// SpinnerOption configures a spinner.
type SpinnerOption func(*spinnerConfig)

type spinnerConfig struct {
	title string
}

// WithTitle sets the spinner title.
func WithTitle(title string) SpinnerOption {
	return func(c *spinnerConfig) {
		c.title = title
	}
}

// runSpinner shows a spinner until wait returns or the spinner fails.
var runSpinner = func(ctx context.Context, title string, wait func()) error {
	return spinner.New().
		Title(title).
		Context(ctx).
		Action(wait).
		Run()
}

// RunWithSpinner executes action while a spinner is shown.
// On a non-terminal stdout the action runs directly. The action always
// finishes before RunWithSpinner returns, even when the spinner fails.
func RunWithSpinner(ctx context.Context, action func() error, opts ...SpinnerOption) error {
	cfg := &spinnerConfig{title: "Working..."}
	for _, opt := range opts {
		opt(cfg)
	}

	if !IsTTY() {
		return action()
	}
	return spin(ctx, cfg.title, action)
}

func spin(ctx context.Context, title string, action func() error) error {
	var actionErr error
	done := make(chan struct{})
	go func() {
		defer close(done)
		actionErr = action()
	}()

	spinnerErr := runSpinner(ctx, title, func() { <-done })
	<-done
	if spinnerErr != nil {
		return fmt.Errorf("spinner error: %w", spinnerErr)
	}
	return actionErr
}
