// Package config provides configuration loading and management.
package config

// CommandsConfig holds the shell commands run by the install/build/serve cascade.
type CommandsConfig struct {
	// Install installs the generated project's dependencies.
	// Env: LITGEN_COMMANDS_INSTALL, Default: "npm i"
	Install string `mapstructure:"install" yaml:"install"`

	// Build builds the generated project.
	// Env: LITGEN_COMMANDS_BUILD, Default: "npm run build"
	Build string `mapstructure:"build" yaml:"build"`

	// Serve starts the generated project's dev server.
	// Env: LITGEN_COMMANDS_SERVE, Default: "npm run serve"
	Serve string `mapstructure:"serve" yaml:"serve"`
}

// LogConfig contains logging-related settings.
type LogConfig struct {
	// Timestamps controls whether timestamps are shown in log output.
	// Default: true. Override with --timestamps flag.
	Timestamps *bool `mapstructure:"timestamps" yaml:"timestamps,omitempty"`
}

// Config represents the litgen configuration.
// Loaded from ~/.litgen/config.yaml, overridden by LITGEN_* environment variables.
type Config struct {
	// Template is the template used when --template is not given.
	// Env: LITGEN_TEMPLATE, Default: "component"
	Template string `mapstructure:"template" yaml:"template"`

	// Commands contains the cascade commands.
	Commands CommandsConfig `mapstructure:"commands" yaml:"commands"`

	// Requirements maps a tool name to a semver constraint checked by `litgen doctor`.
	Requirements map[string]string `mapstructure:"requirements" yaml:"requirements"`

	// Log contains logging-related settings.
	Log LogConfig `mapstructure:"log" yaml:"log,omitempty"`
}

// DefaultTemplate is the template used when neither flag nor config sets one.
const DefaultTemplate = "component"

// DefaultConfig returns a Config with all default values populated.
// Used by `litgen config init` to generate the initial config file.
func DefaultConfig() *Config {
	return &Config{
		Template: DefaultTemplate,
		Commands: CommandsConfig{
			Install: "npm i",
			Build:   "npm run build",
			Serve:   "npm run serve",
		},
		Requirements: map[string]string{
			"node": ">= 18.0.0",
			"npm":  ">= 9.0.0",
		},
	}
}

// WithDefaults returns a copy of c with empty fields filled from DefaultConfig.
func (c *Config) WithDefaults() *Config {
	d := DefaultConfig()
	if c == nil {
		return d
	}

	out := *c
	if out.Template == "" {
		out.Template = d.Template
	}
	if out.Commands.Install == "" {
		out.Commands.Install = d.Commands.Install
	}
	if out.Commands.Build == "" {
		out.Commands.Build = d.Commands.Build
	}
	if out.Commands.Serve == "" {
		out.Commands.Serve = d.Commands.Serve
	}
	if len(out.Requirements) == 0 {
		out.Requirements = d.Requirements
	}
	return &out
}
