package prompt

import (
	"context"
	"strings"

	"github.com/nishantbasu/generator-lit-sass-rollup-openwc-starter/internal/output"
)

// Question keys.
const (
	KeyComponentName = "componentName"
	KeyInstall       = "install"
	KeyBuild         = "build"
	KeyServe         = "serve"
)

// Answers is the record produced by the prompt flow. An empty field means
// the question was not asked: Build is only set when Install is
// affirmative, Serve only when Build is affirmative.
type Answers struct {
	ComponentName string
	Install       string
	Build         string
	Serve         string
}

// WantsInstall reports whether dependencies should be installed.
func (a Answers) WantsInstall() bool { return IsAffirmative(a.Install) }

// WantsBuild reports whether the project should be built.
func (a Answers) WantsBuild() bool { return IsAffirmative(a.Build) }

// WantsServe reports whether the app should be started.
func (a Answers) WantsServe() bool { return IsAffirmative(a.Serve) }

// Flow asks the generator questions in order, each y/n question gated on
// the previous one being affirmative.
type Flow struct {
	prompter         Prompter
	askComponentName bool
}

// NewFlow creates a flow. askComponentName enables the first question.
func NewFlow(p Prompter, askComponentName bool) *Flow {
	return &Flow{prompter: p, askComponentName: askComponentName}
}

// Questions returned by the flow, in order.
var (
	ComponentNameQuestion = Question{
		Key:      KeyComponentName,
		Message:  "Enter your main component name (e.g., my-component):",
		Validate: ValidateComponentName,
	}
	InstallQuestion = Question{
		Key:      KeyInstall,
		Message:  "Would you like to install dependencies? (y/n)",
		Default:  "y",
		Validate: ValidateYesNo,
	}
	BuildQuestion = Question{
		Key:      KeyBuild,
		Message:  "Would you like to build the project? (y/n)",
		Default:  "y",
		Validate: ValidateYesNo,
	}
	ServeQuestion = Question{
		Key:      KeyServe,
		Message:  "Would you like to start the app? (y/n)",
		Default:  "y",
		Validate: ValidateYesNo,
	}
)

// Run asks the questions and returns the answers. A cancelled session is
// returned as an error and no partial answers are kept.
func (f *Flow) Run(ctx context.Context) (Answers, error) {
	var a Answers
	done := func() (Answers, error) {
		output.Debug("answers collected",
			"componentName", a.ComponentName,
			"install", a.Install,
			"build", a.Build,
			"serve", a.Serve)
		return a, nil
	}

	if f.askComponentName {
		name, err := f.prompter.Ask(ctx, ComponentNameQuestion)
		if err != nil {
			return Answers{}, err
		}
		a.ComponentName = name
	}

	install, err := f.askYesNo(ctx, InstallQuestion)
	if err != nil {
		return Answers{}, err
	}
	a.Install = install
	if !a.WantsInstall() {
		return done()
	}

	build, err := f.askYesNo(ctx, BuildQuestion)
	if err != nil {
		return Answers{}, err
	}
	a.Build = build
	if !a.WantsBuild() {
		return done()
	}

	serve, err := f.askYesNo(ctx, ServeQuestion)
	if err != nil {
		return Answers{}, err
	}
	a.Serve = serve

	return done()
}

func (f *Flow) askYesNo(ctx context.Context, q Question) (string, error) {
	answer, err := f.prompter.Ask(ctx, q)
	if err != nil {
		return "", err
	}
	return strings.ToLower(answer), nil
}
