package cmd

import (
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"

	"github.com/nishantbasu/generator-lit-sass-rollup-openwc-starter/internal/cmdtypes"
	oerrors "github.com/nishantbasu/generator-lit-sass-rollup-openwc-starter/internal/errors"
	"github.com/nishantbasu/generator-lit-sass-rollup-openwc-starter/internal/generator"
	"github.com/nishantbasu/generator-lit-sass-rollup-openwc-starter/internal/output"
	"github.com/nishantbasu/generator-lit-sass-rollup-openwc-starter/internal/prompt"
	"github.com/nishantbasu/generator-lit-sass-rollup-openwc-starter/internal/runner"
	"github.com/nishantbasu/generator-lit-sass-rollup-openwc-starter/internal/templates"
)

// NewInitCmd creates the init command.
func NewInitCmd(cfg *cmdtypes.GlobalConfig) *cobra.Command {
	var (
		templateFlag string
		forceFlag    bool
	)

	c := &cobra.Command{
		Use:   "init [dir]",
		Short: "Generate a new Lit component project",
		Long: `Generate a new Lit component project in dir (default: current directory).

Templates:
` + templates.Usage() + `

After the files are written, init offers to install dependencies, build
the project and start the dev server. Each step runs only if the previous
one succeeded.

Examples:
  # Generate into the current directory
  litgen init

  # Generate into a new directory
  litgen init ./my-widget

  # Copy the starter as-is, overwriting existing files
  litgen init --template starter --force`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(c *cobra.Command, args []string) error {
			return runInit(c, args, cfg, templateFlag, forceFlag)
		},
	}

	c.Flags().StringVarP(&templateFlag, "template", "t", "",
		fmt.Sprintf("Template to use (%s; default from config)", strings.Join(templates.Names(), ", ")))
	c.Flags().BoolVarP(&forceFlag, "force", "f", false, "Overwrite existing files")

	return c
}

func runInit(c *cobra.Command, args []string, cfg *cmdtypes.GlobalConfig, templateFlag string, force bool) error {
	conf, err := cfg.Resolved()
	if err != nil {
		return err
	}

	name := templateFlag
	if name == "" {
		name = conf.Template
	}
	tmpl, err := templates.Get(name)
	if err != nil {
		return &oerrors.DetailError{
			Type:    "validation failed",
			Message: fmt.Sprintf("unknown template: %s", name),
			Hint:    "Valid templates:\n" + templates.Usage(),
			Cause:   oerrors.ErrValidation,
		}
	}

	targetDir := "."
	if len(args) == 1 {
		targetDir = args[0]
	}

	prompter, stdin := newPrompter(c)
	g := generator.New(generator.Options{
		TargetDir: targetDir,
		Template:  tmpl,
		Force:     force,
		Commands: runner.Commands{
			Install: conf.Commands.Install,
			Build:   conf.Commands.Build,
			Serve:   conf.Commands.Serve,
		},
		Prompter: prompter,
		Executor: &runner.ShellExecutor{
			Dir:    targetDir,
			Stdin:  stdin,
			Stdout: c.OutOrStdout(),
			Stderr: c.ErrOrStderr(),
		},
		Out: c.OutOrStdout(),
	})

	if _, err := g.Run(c.Context()); err != nil {
		return reportError("generation failed", err)
	}
	return nil
}

// newPrompter uses interactive forms on a terminal and plain line input
// otherwise. The returned reader is what child processes get as stdin:
// for line input it includes whatever was buffered past the last answer.
func newPrompter(c *cobra.Command) (prompt.Prompter, io.Reader) {
	if output.IsTerminal(c.InOrStdin()) && output.IsTerminal(c.OutOrStdout()) {
		return prompt.NewFormPrompter(c.InOrStdin(), c.OutOrStdout()), c.InOrStdin()
	}
	lp := prompt.NewLinePrompter(c.InOrStdin(), c.OutOrStdout())
	return lp, lp
}
