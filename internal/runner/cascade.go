package runner

import (
	"context"

	"github.com/nishantbasu/generator-lit-sass-rollup-openwc-starter/internal/output"
)

// Stage is one step of the cascade.
type Stage string

// Cascade stages, in execution order.
const (
	StageInstall Stage = "install"
	StageBuild   Stage = "build"
	StageServe   Stage = "serve"
)

// State is the outcome of a stage.
type State string

// Stage states. Every stage starts pending and ends in exactly one of the
// other three.
const (
	StatePending   State = output.StatusPending
	StateSkipped   State = output.StatusSkipped
	StateSucceeded State = output.StatusSucceeded
	StateFailed    State = output.StatusFailed
)

// Commands holds the shell command for each stage.
type Commands struct {
	Install string
	Build   string
	Serve   string
}

// Gates holds the user's decision for each stage.
type Gates struct {
	Install bool
	Build   bool
	Serve   bool
}

// StageResult records what happened to a stage.
type StageResult struct {
	Stage Stage
	State State
	Err   error
}

// Report is the outcome of a cascade run, in stage order.
type Report []StageResult

// State returns the state of stage s.
func (r Report) State(s Stage) State {
	for _, res := range r {
		if res.Stage == s {
			return res.State
		}
	}
	return StatePending
}

// stageSpec is the command and log messages of one stage.
type stageSpec struct {
	stage   Stage
	command string
	gate    bool
	start   string
	success string
	failure string
}

// Cascade runs install, build and serve in order. A stage runs only when
// its gate is set and the previous stage succeeded; a failing stage is
// logged and stops the cascade without failing the caller.
type Cascade struct {
	commands Commands
	executor Executor
}

// NewCascade creates a cascade running commands through executor.
func NewCascade(commands Commands, executor Executor) *Cascade {
	return &Cascade{commands: commands, executor: executor}
}

// Run executes the cascade. It never returns an error: failures are
// recorded in the report.
func (c *Cascade) Run(ctx context.Context, gates Gates) Report {
	stages := []stageSpec{
		{
			stage:   StageInstall,
			command: c.commands.Install,
			gate:    gates.Install,
			start:   "Installing dependencies...",
			success: "Dependencies installed successfully.",
			failure: "Error installing dependencies",
		},
		{
			stage:   StageBuild,
			command: c.commands.Build,
			gate:    gates.Build,
			start:   "Building the project...",
			success: "Project built successfully.",
			failure: "Error building the project",
		},
		{
			stage:   StageServe,
			command: c.commands.Serve,
			gate:    gates.Serve,
			start:   "Starting the app...",
			success: "App started successfully.",
			failure: "Error starting the app",
		},
	}

	report := make(Report, len(stages))
	for i, s := range stages {
		report[i] = StageResult{Stage: s.stage, State: StatePending}
	}

	if !gates.Install {
		output.Info("Skipping dependency installation.")
	}

	for i, s := range stages {
		if !s.gate {
			report[i].State = StateSkipped
			continue
		}
		if i > 0 && report[i-1].State != StateSucceeded {
			report[i].State = StateSkipped
			continue
		}

		output.Info(s.start)
		output.Debug("running command", "stage", s.stage, "command", s.command)

		if err := c.executor.Run(ctx, s.command); err != nil {
			output.Error(s.failure + ": " + err.Error())
			report[i].State = StateFailed
			report[i].Err = err
			continue
		}

		output.Info(s.success)
		report[i].State = StateSucceeded
	}

	return report
}
