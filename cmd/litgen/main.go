// Package main is the entry point for the litgen CLI.
package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"

	"github.com/nishantbasu/generator-lit-sass-rollup-openwc-starter/internal/cmd"
	oerrors "github.com/nishantbasu/generator-lit-sass-rollup-openwc-starter/internal/errors"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	go func() {
		// Restore default handling so a second interrupt kills the process.
		<-ctx.Done()
		stop()
	}()

	code := run(ctx)
	stop()
	os.Exit(code)
}

func run(ctx context.Context) int {
	rootCmd := cmd.NewRootCmd()

	err := rootCmd.ExecuteContext(ctx)
	if err == nil {
		return oerrors.ExitSuccess
	}

	var exitErr *oerrors.ExitError
	if errors.As(err, &exitErr) {
		// Only print if the command layer hasn't already printed it
		if !exitErr.Printed {
			fmt.Fprintln(os.Stderr, err)
		}
		return exitErr.Code
	}

	fmt.Fprintln(os.Stderr, "Error:", err)
	return oerrors.ExitCodeFromError(err)
}
