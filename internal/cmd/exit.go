package cmd

import (
	"errors"
	"fmt"

	oerrors "github.com/nishantbasu/generator-lit-sass-rollup-openwc-starter/internal/errors"
	"github.com/nishantbasu/generator-lit-sass-rollup-openwc-starter/internal/output"
)

// reportError logs err under msg and wraps it with its exit code so that
// main does not print it a second time. An aborted session is logged as a
// warning.
func reportError(msg string, err error) error {
	if errors.Is(err, oerrors.ErrAborted) {
		output.Warn("generation aborted")
	} else {
		output.Error(fmt.Sprintf("%s: %v", msg, err))
	}
	return &oerrors.ExitError{Code: oerrors.ExitCodeFromError(err), Err: err, Printed: true}
}
