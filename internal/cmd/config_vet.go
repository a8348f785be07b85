package cmd

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/nishantbasu/generator-lit-sass-rollup-openwc-starter/internal/cmdtypes"
	"github.com/nishantbasu/generator-lit-sass-rollup-openwc-starter/internal/config"
	"github.com/nishantbasu/generator-lit-sass-rollup-openwc-starter/internal/output"
	"github.com/nishantbasu/generator-lit-sass-rollup-openwc-starter/internal/templates"
)

// NewConfigVetCmd creates the config vet command.
func NewConfigVetCmd(cfg *cmdtypes.GlobalConfig) *cobra.Command {
	return &cobra.Command{
		Use:   "vet",
		Short: "Validate the configuration",
		Long: `Validate the litgen configuration after environment overrides.

Checks that the default template exists, that every cascade command is
set and that every requirement is a valid semver constraint.`,
		RunE: func(c *cobra.Command, _ []string) error {
			return runConfigVet(c, cfg)
		},
	}
}

func runConfigVet(c *cobra.Command, cfg *cmdtypes.GlobalConfig) error {
	if cfg.LoadErr != nil {
		return reportError("loading config", cfg.LoadErr)
	}

	if err := config.Validate(cfg.Config.WithDefaults(), templates.Names()); err != nil {
		var verrs config.ValidationErrors
		if errors.As(err, &verrs) {
			for _, v := range verrs {
				fmt.Fprintln(c.OutOrStdout(), output.FormatCross(v.Field+": "+v.Message))
			}
		}
		return &cmdtypes.ExitError{Code: cmdtypes.ExitValidationError, Err: err, Printed: true}
	}

	fmt.Fprintln(c.OutOrStdout(), output.FormatCheckmark("Configuration is valid"))
	return nil
}
