package cmd

import (
	"github.com/spf13/cobra"

	"github.com/nishantbasu/generator-lit-sass-rollup-openwc-starter/internal/cmdtypes"
	"github.com/nishantbasu/generator-lit-sass-rollup-openwc-starter/internal/runner"
)

// NewDoctorCmd creates the doctor command.
func NewDoctorCmd(cfg *cmdtypes.GlobalConfig) *cobra.Command {
	return newDoctorCmd(cfg, nil)
}

func newDoctorCmd(cfg *cmdtypes.GlobalConfig, probe runner.VersionProbe) *cobra.Command {
	return &cobra.Command{
		Use:   "doctor",
		Short: "Check the tools the generated project needs",
		Long: `Check that every tool listed under 'requirements' in the config is
installed and satisfies its version constraint.

Defaults:
  node  >= 18.0.0
  npm   >= 9.0.0`,
		Args: cobra.NoArgs,
		RunE: func(c *cobra.Command, _ []string) error {
			conf, err := cfg.Resolved()
			if err != nil {
				return err
			}

			d := runner.NewDoctor(conf.Requirements, probe)
			if err := d.Report(c.OutOrStdout(), d.Check(c.Context())); err != nil {
				return &cmdtypes.ExitError{Code: cmdtypes.ExitGeneralError, Err: err}
			}
			return nil
		},
	}
}
