package config

import (
	"fmt"
	"slices"
	"strings"

	"github.com/Masterminds/semver/v3"
)

// ValidationError represents a single configuration validation error.
type ValidationError struct {
	Field   string
	Message string
}

// Error implements the error interface.
func (e *ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

// ValidationErrors is a collection of validation errors.
type ValidationErrors []ValidationError

// Error implements the error interface.
func (e ValidationErrors) Error() string {
	if len(e) == 0 {
		return "no validation errors"
	}

	var sb strings.Builder
	sb.WriteString("config validation failed:\n")
	for _, err := range e {
		sb.WriteString(fmt.Sprintf("  %s: %s\n", err.Field, err.Message))
	}
	return sb.String()
}

// Validate checks a loaded configuration. templates lists the known
// template names. It returns nil or a ValidationErrors.
func Validate(cfg *Config, templates []string) error {
	var errs ValidationErrors

	if cfg.Template != "" && !slices.Contains(templates, cfg.Template) {
		errs = append(errs, ValidationError{
			Field:   "template",
			Message: fmt.Sprintf("unknown template %q; valid templates: %s", cfg.Template, strings.Join(templates, ", ")),
		})
	}

	for field, value := range map[string]string{
		"commands.install": cfg.Commands.Install,
		"commands.build":   cfg.Commands.Build,
		"commands.serve":   cfg.Commands.Serve,
	} {
		if strings.TrimSpace(value) == "" {
			errs = append(errs, ValidationError{Field: field, Message: "must not be empty"})
		}
	}

	tools := make([]string, 0, len(cfg.Requirements))
	for tool := range cfg.Requirements {
		tools = append(tools, tool)
	}
	slices.Sort(tools)
	for _, tool := range tools {
		if _, err := semver.NewConstraint(cfg.Requirements[tool]); err != nil {
			errs = append(errs, ValidationError{
				Field:   "requirements." + tool,
				Message: fmt.Sprintf("invalid version constraint %q: %v", cfg.Requirements[tool], err),
			})
		}
	}

	if len(errs) > 0 {
		slices.SortFunc(errs, func(a, b ValidationError) int { return strings.Compare(a.Field, b.Field) })
		return errs
	}
	return nil
}
