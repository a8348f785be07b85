// Package cmd provides CLI command implementations.
package cmd

import (
	"github.com/spf13/cobra"

	"github.com/nishantbasu/generator-lit-sass-rollup-openwc-starter/internal/cmdtypes"
	"github.com/nishantbasu/generator-lit-sass-rollup-openwc-starter/internal/config"
	"github.com/nishantbasu/generator-lit-sass-rollup-openwc-starter/internal/output"
	"github.com/nishantbasu/generator-lit-sass-rollup-openwc-starter/internal/version"
)

// rootFlags holds the persistent flag values.
type rootFlags struct {
	config     string
	verbose    bool
	timestamps bool
}

// NewRootCmd creates the root command for the litgen CLI.
func NewRootCmd() *cobra.Command {
	flags := &rootFlags{}
	cfg := &cmdtypes.GlobalConfig{}

	rootCmd := &cobra.Command{
		Use:   "litgen",
		Short: "Lit Element Sass Rollup project generator",
		Long: `litgen scaffolds a Lit web component project built with TypeScript,
Sass, Rollup and the Open Web Components tooling.

It asks for a component name, copies the starter files, then optionally
installs dependencies, builds the project and starts the dev server.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return initializeGlobals(cmd, flags, cfg)
		},
	}

	rootCmd.PersistentFlags().StringVar(&flags.config, "config", "", "Path to config file (env: LITGEN_CONFIG)")
	rootCmd.PersistentFlags().BoolVarP(&flags.verbose, "verbose", "v", false, "Enable verbose output")
	rootCmd.PersistentFlags().BoolVar(&flags.timestamps, "timestamps", true, "Show timestamps in log output")

	rootCmd.AddCommand(NewInitCmd(cfg))
	rootCmd.AddCommand(NewConfigCmd(cfg))
	rootCmd.AddCommand(NewDoctorCmd(cfg))
	rootCmd.AddCommand(NewVersionCmd(cfg))

	return rootCmd
}

// initializeGlobals loads configuration and sets up logging.
func initializeGlobals(cmd *cobra.Command, flags *rootFlags, cfg *cmdtypes.GlobalConfig) error {
	cfg.ConfigPath = flags.config
	cfg.Verbose = flags.verbose

	// A broken config must not block `config init --force`; commands that
	// need it report LoadErr through GlobalConfig.Resolved.
	loaded, err := config.NewLoader().Load(flags.config)
	cfg.Config = loaded
	cfg.LoadErr = err

	// Timestamps: flag (if explicitly set) > config > default (nil = true)
	logCfg := output.LogConfig{
		Verbose: flags.verbose,
		Writer:  cmd.ErrOrStderr(),
	}
	if cmd.Flags().Changed("timestamps") {
		logCfg.Timestamps = output.BoolPtr(flags.timestamps)
	} else if loaded != nil && loaded.Log.Timestamps != nil {
		logCfg.Timestamps = loaded.Log.Timestamps
	}

	output.SetupLogging(logCfg)

	if err != nil {
		output.Debug("config load error", "error", err)
	}

	if flags.verbose {
		info := version.Get()
		output.Debug("initializing CLI",
			"version", info.Version,
			"config", flags.config,
			"template", templateOf(loaded),
		)
	}

	return nil
}

func templateOf(cfg *config.Config) string {
	if cfg == nil {
		return ""
	}
	return cfg.Template
}
