// Package generator runs a scaffolding session: announce, prompt,
// materialize, run the process cascade and report completion.
package generator

import (
	"context"
	"fmt"
	"io"
	"io/fs"
	"path/filepath"

	"github.com/nishantbasu/generator-lit-sass-rollup-openwc-starter/internal/output"
	"github.com/nishantbasu/generator-lit-sass-rollup-openwc-starter/internal/prompt"
	"github.com/nishantbasu/generator-lit-sass-rollup-openwc-starter/internal/runner"
	"github.com/nishantbasu/generator-lit-sass-rollup-openwc-starter/internal/templates"
)

// Banners logged at the start and end of a session.
const (
	WelcomeBanner  = "Welcome to the Lit Element Sass Rollup Generator!!"
	FinishedBanner = "Finished generating!"
)

// Options holds the inputs of a generator session.
type Options struct {
	// TargetDir is the project root. It is created if missing.
	TargetDir string

	// Template is the variant to generate.
	Template templates.Template

	// Force allows overwriting existing files.
	Force bool

	// Commands are the cascade's shell commands.
	Commands runner.Commands

	// Prompter asks the session questions.
	Prompter prompt.Prompter

	// Executor runs the cascade commands.
	Executor runner.Executor

	// Out receives the file tree and stage summary. Nil discards them.
	Out io.Writer

	// Assets replaces the embedded template bundle when set.
	Assets fs.FS
}

// Result is the outcome of a completed session.
type Result struct {
	Answers prompt.Answers
	Files   *templates.Result
	Stages  runner.Report
}

// Generator runs the session phases strictly in order.
type Generator struct {
	opts Options
}

// New creates a generator.
func New(opts Options) *Generator {
	if opts.Out == nil {
		opts.Out = io.Discard
	}
	return &Generator{opts: opts}
}

// Run executes the session. Prompt and materialize failures abort the run
// before the completion banner; cascade failures are logged by the runner
// and never returned.
func (g *Generator) Run(ctx context.Context) (*Result, error) {
	g.announce()

	answers, err := g.prompt(ctx)
	if err != nil {
		return nil, err
	}

	files, err := g.materialize(ctx, answers)
	if err != nil {
		return nil, err
	}

	stages := g.runProcesses(ctx, answers)

	g.finish()

	return &Result{Answers: answers, Files: files, Stages: stages}, nil
}

func (g *Generator) announce() {
	output.Info(output.FormatBanner(WelcomeBanner))
	output.Debug("generator session",
		"template", g.opts.Template.Name,
		"dir", g.opts.TargetDir,
		"force", g.opts.Force)
}

func (g *Generator) prompt(ctx context.Context) (prompt.Answers, error) {
	return prompt.NewFlow(g.opts.Prompter, g.opts.Template.AskComponentName).Run(ctx)
}

func (g *Generator) materialize(ctx context.Context, answers prompt.Answers) (*templates.Result, error) {
	opts := []templates.MaterializerOption{templates.WithForce(g.opts.Force)}
	if g.opts.Assets != nil {
		opts = append(opts, templates.WithAssets(g.opts.Assets))
	}
	m := templates.NewMaterializer(g.opts.Template, opts...)

	output.Info("Copying template files...")

	var res *templates.Result
	err := output.RunWithSpinner(ctx, func() error {
		var err error
		res, err = m.Materialize(g.opts.TargetDir, answers.ComponentName)
		return err
	}, output.WithTitle("Copying template files..."))
	if err != nil {
		return nil, err
	}

	output.Info("Files copied successfully.")

	rootName := g.opts.TargetDir
	if abs, err := filepath.Abs(g.opts.TargetDir); err == nil {
		rootName = filepath.Base(abs)
	}
	fmt.Fprint(g.opts.Out, output.RenderFileTree(rootName, res.Files, templates.Describe))

	return res, nil
}

func (g *Generator) runProcesses(ctx context.Context, answers prompt.Answers) runner.Report {
	gates := runner.Gates{
		Install: answers.WantsInstall(),
		Build:   answers.WantsBuild(),
		Serve:   answers.WantsServe(),
	}
	report := runner.NewCascade(g.opts.Commands, g.opts.Executor).Run(ctx, gates)

	if gates.Install {
		fmt.Fprintln(g.opts.Out)
		for _, res := range report {
			state := output.StatusStyle(string(res.State)).Render(string(res.State))
			fmt.Fprintf(g.opts.Out, "  %-8s %s\n", res.Stage, state)
		}
	}
	return report
}

func (g *Generator) finish() {
	output.Info(output.FormatBanner(FinishedBanner))
}
