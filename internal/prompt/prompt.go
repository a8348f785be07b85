// Package prompt asks the generator's questions and collects the answers.
package prompt

import (
	"context"
	"errors"
	"regexp"
	"strings"
)

// Question is a single free-text question.
type Question struct {
	// Key identifies the answer (componentName, install, build, serve).
	Key string

	// Message is shown to the user.
	Message string

	// Default is used when the user submits an empty answer.
	Default string

	// Validate returns an error whose message is shown before re-asking.
	// Nil accepts any answer.
	Validate func(string) error
}

// Prompter asks one question and blocks until a valid answer is given.
// Implementations return errors.ErrAborted when the session is cancelled.
type Prompter interface {
	Ask(ctx context.Context, q Question) (string, error)
}

// Validation messages shown when an answer is rejected.
const (
	ComponentNameMessage = "Component name should have at least two words separated by a hyphen."
	YesNoMessage         = "Please enter y or n"
)

var (
	yesNoPattern       = regexp.MustCompile(`(?i)^(y|yes|n|no)$`)
	affirmativePattern = regexp.MustCompile(`(?i)^(y|yes)$`)
)

// ValidateComponentName accepts names with at least two non-empty
// hyphen-separated words, as required for custom element tag names.
func ValidateComponentName(input string) error {
	words := strings.Split(input, "-")
	if len(words) < 2 {
		return errors.New(ComponentNameMessage)
	}
	for _, w := range words {
		if w == "" {
			return errors.New(ComponentNameMessage)
		}
	}
	return nil
}

// ValidateYesNo accepts y, yes, n and no in any case.
func ValidateYesNo(input string) error {
	if !yesNoPattern.MatchString(input) {
		return errors.New(YesNoMessage)
	}
	return nil
}

// IsAffirmative reports whether answer is y or yes in any case.
// An unasked (empty) answer is not affirmative.
func IsAffirmative(answer string) bool {
	return affirmativePattern.MatchString(answer)
}
