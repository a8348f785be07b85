// Package cmdtypes provides shared types for the cmd package and the
// binary entry point.
package cmdtypes

import (
	"github.com/nishantbasu/generator-lit-sass-rollup-openwc-starter/internal/config"
	oerrors "github.com/nishantbasu/generator-lit-sass-rollup-openwc-starter/internal/errors"
	"github.com/nishantbasu/generator-lit-sass-rollup-openwc-starter/internal/templates"
)

// GlobalConfig holds CLI-wide configuration resolved during PersistentPreRunE.
// It is populated once at startup and passed explicitly into every
// sub-command constructor.
type GlobalConfig struct {
	// Config is the loaded configuration. Nil when loading failed.
	Config *config.Config

	// ConfigPath is the raw --config flag value.
	ConfigPath string

	// LoadErr is the error from loading the config file, if any.
	LoadErr error

	Verbose bool
}

// Resolved returns the loaded configuration after validating it. Commands
// that depend on configuration call this instead of reading Config
// directly so that a broken config file is reported once, clearly.
func (g *GlobalConfig) Resolved() (*config.Config, error) {
	if g.LoadErr != nil {
		return nil, &oerrors.DetailError{
			Type:     "configuration error",
			Message:  g.LoadErr.Error(),
			Location: g.ConfigPath,
			Hint:     "Fix the file or regenerate it with 'litgen config init --force'.",
			Cause:    oerrors.ErrValidation,
		}
	}

	cfg := g.Config.WithDefaults()
	if err := config.Validate(cfg, templates.Names()); err != nil {
		return nil, &oerrors.DetailError{
			Type:     "configuration error",
			Message:  err.Error(),
			Location: g.ConfigPath,
			Hint:     "Run 'litgen config vet' for details.",
			Cause:    oerrors.ErrValidation,
		}
	}
	return cfg, nil
}

// Exit codes, aliased from internal/errors.
const (
	ExitSuccess         = oerrors.ExitSuccess
	ExitGeneralError    = oerrors.ExitGeneralError
	ExitValidationError = oerrors.ExitValidationError
	ExitNotFound        = oerrors.ExitNotFound
	ExitAborted         = oerrors.ExitAborted
)

// ExitError is a type alias to internal/errors.ExitError.
type ExitError = oerrors.ExitError
