package runner

import (
	"context"
	"fmt"
	"io"
	"os/exec"
	"regexp"
	"slices"
	"strings"

	"github.com/Masterminds/semver/v3"

	oerrors "github.com/nishantbasu/generator-lit-sass-rollup-openwc-starter/internal/errors"
	"github.com/nishantbasu/generator-lit-sass-rollup-openwc-starter/internal/output"
)

// VersionProbe returns the raw `--version` output of tool.
type VersionProbe func(ctx context.Context, tool string) (string, error)

// ExecVersionProbe looks tool up on PATH and runs `<tool> --version`.
func ExecVersionProbe(ctx context.Context, tool string) (string, error) {
	path, err := exec.LookPath(tool)
	if err != nil {
		return "", fmt.Errorf("%s not found on PATH", tool)
	}
	out, err := exec.CommandContext(ctx, path, "--version").Output()
	if err != nil {
		return "", fmt.Errorf("running %s --version: %w", tool, err)
	}
	return string(out), nil
}

var versionPattern = regexp.MustCompile(`v?\d+(\.\d+){0,2}(-[0-9A-Za-z.-]+)?`)

// ParseToolVersion extracts the first semantic version found in raw.
func ParseToolVersion(raw string) (*semver.Version, error) {
	match := versionPattern.FindString(strings.TrimSpace(raw))
	if match == "" {
		return nil, fmt.Errorf("no version found in %q", strings.TrimSpace(raw))
	}
	return semver.NewVersion(match)
}

// CheckResult is the outcome of one requirement check.
type CheckResult struct {
	Tool       string
	Constraint string
	Version    string
	Err        error
}

// OK reports whether the requirement is satisfied.
func (r CheckResult) OK() bool {
	return r.Err == nil
}

// Doctor checks that the tools the cascade relies on are installed at a
// supported version.
type Doctor struct {
	requirements map[string]string
	probe        VersionProbe
}

// NewDoctor creates a doctor for requirements (tool -> constraint). A nil
// probe uses ExecVersionProbe.
func NewDoctor(requirements map[string]string, probe VersionProbe) *Doctor {
	if probe == nil {
		probe = ExecVersionProbe
	}
	return &Doctor{requirements: requirements, probe: probe}
}

// Check probes every requirement in tool name order.
func (d *Doctor) Check(ctx context.Context) []CheckResult {
	tools := make([]string, 0, len(d.requirements))
	for tool := range d.requirements {
		tools = append(tools, tool)
	}
	slices.Sort(tools)

	results := make([]CheckResult, 0, len(tools))
	for _, tool := range tools {
		results = append(results, d.check(ctx, tool, d.requirements[tool]))
	}
	return results
}

func (d *Doctor) check(ctx context.Context, tool, constraint string) CheckResult {
	res := CheckResult{Tool: tool, Constraint: constraint}

	c, err := semver.NewConstraint(constraint)
	if err != nil {
		res.Err = fmt.Errorf("invalid constraint %q: %w", constraint, err)
		return res
	}

	raw, err := d.probe(ctx, tool)
	if err != nil {
		res.Err = err
		return res
	}

	v, err := ParseToolVersion(raw)
	if err != nil {
		res.Err = err
		return res
	}
	res.Version = v.String()

	if ok, errs := c.Validate(v); !ok {
		msgs := make([]string, 0, len(errs))
		for _, e := range errs {
			msgs = append(msgs, e.Error())
		}
		res.Err = fmt.Errorf("%s", strings.Join(msgs, "; "))
	}
	return res
}

// Report writes one line per result to w and returns an error when any
// requirement failed.
func (d *Doctor) Report(w io.Writer, results []CheckResult) error {
	failed := 0
	for _, r := range results {
		if r.OK() {
			fmt.Fprintln(w, output.FormatCheckmark(fmt.Sprintf("%s %s (%s)", r.Tool, r.Version, r.Constraint)))
			continue
		}
		failed++
		fmt.Fprintln(w, output.FormatCross(fmt.Sprintf("%s: %v", r.Tool, r.Err)))
	}

	if failed > 0 {
		return &oerrors.DetailError{
			Type:    "toolchain check failed",
			Message: fmt.Sprintf("%d of %d requirements not met", failed, len(results)),
			Hint:    "Install the missing tools or adjust 'requirements' in the config file.",
		}
	}
	return nil
}
