package templates

import (
	"fmt"
	"io/fs"
	"os"
	"path"
	"path/filepath"
	"strings"

	oerrors "github.com/nishantbasu/generator-lit-sass-rollup-openwc-starter/internal/errors"
	"github.com/nishantbasu/generator-lit-sass-rollup-openwc-starter/internal/output"
)

// Materializer copies a template's manifest from the asset bundle into a
// project directory.
type Materializer struct {
	tmpl  Template
	fsys  fs.FS
	force bool
}

// MaterializerOption configures a Materializer.
type MaterializerOption func(*Materializer)

// WithForce allows overwriting files that already exist at the destination.
func WithForce(force bool) MaterializerOption {
	return func(m *Materializer) {
		m.force = force
	}
}

// WithAssets replaces the embedded asset bundle.
func WithAssets(fsys fs.FS) MaterializerOption {
	return func(m *Materializer) {
		m.fsys = fsys
	}
}

// NewMaterializer creates a materializer for tmpl backed by the embedded bundle.
func NewMaterializer(tmpl Template, opts ...MaterializerOption) *Materializer {
	m := &Materializer{tmpl: tmpl, fsys: Assets()}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// copyPlan is one file to copy: bundle source path and destination relative path.
type copyPlan struct {
	src string
	dst string
}

// Materialize copies every manifest entry into targetDir, applies the
// placeholder substitution when the template asks for it and writes the
// generated files. A failure aborts immediately; files already written
// are left in place.
func (m *Materializer) Materialize(targetDir, componentName string) (*Result, error) {
	if m.tmpl.Substitute && componentName == "" {
		return nil, oerrors.NewValidationError(
			fmt.Sprintf("template %q requires a component name", m.tmpl.Name), "", "")
	}

	plan, err := m.plan()
	if err != nil {
		return nil, err
	}

	if err := m.checkConflicts(targetDir, plan); err != nil {
		return nil, err
	}

	if err := os.MkdirAll(targetDir, 0o755); err != nil {
		return nil, fmt.Errorf("creating directory %s: %w", targetDir, err)
	}

	result := &Result{TemplateName: m.tmpl.Name, TargetDir: targetDir}

	for _, p := range plan {
		content, err := fs.ReadFile(m.fsys, p.src)
		if err != nil {
			return nil, fmt.Errorf("reading asset %s: %w", p.src, err)
		}
		if err := writeFile(targetDir, p.dst, content); err != nil {
			return nil, err
		}
		output.Debug("copied file", "src", p.src, "dst", p.dst)
		result.Files = append(result.Files, p.dst)
	}

	if m.tmpl.Substitute {
		for _, target := range SubstitutionTargets {
			if err := substitute(targetDir, target, componentName); err != nil {
				return nil, err
			}
		}
	}

	for _, g := range m.tmpl.Generated {
		if err := writeFile(targetDir, g.Path, []byte(g.Content)); err != nil {
			return nil, err
		}
		output.Debug("generated file", "path", g.Path)
		result.Files = append(result.Files, g.Path)
	}

	return result, nil
}

// plan expands the manifest into individual file copies, preserving
// manifest order and walking directory entries recursively.
func (m *Materializer) plan() ([]copyPlan, error) {
	var plan []copyPlan

	for _, entry := range m.tmpl.Manifest {
		src := SourceName(entry)

		info, err := fs.Stat(m.fsys, src)
		if err != nil {
			return nil, oerrors.NewNotFoundError(
				fmt.Sprintf("template asset %s is missing from the bundle", src), entry, "")
		}

		if !info.IsDir() {
			plan = append(plan, copyPlan{src: src, dst: entry})
			continue
		}

		err = fs.WalkDir(m.fsys, src, func(p string, d fs.DirEntry, err error) error {
			if err != nil {
				return err
			}
			if d.IsDir() {
				return nil
			}
			rel := strings.TrimPrefix(p, src+"/")
			plan = append(plan, copyPlan{src: p, dst: path.Join(entry, rel)})
			return nil
		})
		if err != nil {
			return nil, fmt.Errorf("walking asset %s: %w", src, err)
		}
	}

	return plan, nil
}

// checkConflicts fails when a file that would be written already exists
// and force is not set.
func (m *Materializer) checkConflicts(targetDir string, plan []copyPlan) error {
	if m.force {
		return nil
	}

	dsts := make([]string, 0, len(plan)+len(m.tmpl.Generated))
	for _, p := range plan {
		dsts = append(dsts, p.dst)
	}
	for _, g := range m.tmpl.Generated {
		dsts = append(dsts, g.Path)
	}

	for _, dst := range dsts {
		full := filepath.Join(targetDir, filepath.FromSlash(dst))
		if _, err := os.Stat(full); err == nil {
			return &oerrors.DetailError{
				Type:     "validation failed",
				Message:  fmt.Sprintf("file %s already exists", dst),
				Location: full,
				Hint:     "Use --force to overwrite existing files.",
				Cause:    oerrors.ErrValidation,
			}
		}
	}
	return nil
}

// substitute replaces every literal occurrence of Placeholder in the file
// with value. The replace is raw and case-sensitive.
func substitute(targetDir, rel, value string) error {
	full := filepath.Join(targetDir, filepath.FromSlash(rel))

	content, err := os.ReadFile(full)
	if err != nil {
		return fmt.Errorf("reading %s for substitution: %w", rel, err)
	}

	replaced := strings.ReplaceAll(string(content), Placeholder, value)
	output.Debug("substituted placeholder", "file", rel,
		"occurrences", strings.Count(string(content), Placeholder))

	return writeFile(targetDir, rel, []byte(replaced))
}

// writeFile writes content to targetDir/rel through a temp file and rename,
// so a single file is either fully written or untouched.
func writeFile(targetDir, rel string, content []byte) error {
	full := filepath.Join(targetDir, filepath.FromSlash(rel))
	dir := filepath.Dir(full)

	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("creating directory %s: %w", dir, err)
	}

	tmp, err := os.CreateTemp(dir, ".litgen-*")
	if err != nil {
		return fmt.Errorf("writing %s: %w", rel, err)
	}
	tmpName := tmp.Name()

	if _, err := tmp.Write(content); err != nil {
		tmp.Close()
		os.Remove(tmpName)
		return fmt.Errorf("writing %s: %w", rel, err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("writing %s: %w", rel, err)
	}
	if err := os.Chmod(tmpName, 0o644); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("writing %s: %w", rel, err)
	}
	if err := os.Rename(tmpName, full); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("writing %s: %w", rel, err)
	}

	return nil
}

// Describe returns a short description of a generated file for the file tree.
func Describe(file string) string {
	descriptions := map[string]string{
		"package.json":               "npm manifest",
		"package-lock.json":          "npm lockfile",
		"rollup.config.mjs":          "Production bundle",
		"tsconfig.json":              "TypeScript compiler options",
		"web-dev-server.config.mjs":  "Dev server",
		"web-test-runner.config.mjs": "Test runner",
		"postcss.config.mjs":         "PostCSS plugins",
		"eslint.config.mjs":          "Lint rules",
		".prettierrc":                "Formatting rules",
		".gitignore":                 "Git ignore rules",
		"README.md":                  "Project readme",
		"README.template.md":         "Component docs",
	}

	if desc, ok := descriptions[file]; ok {
		return desc
	}
	if strings.HasPrefix(file, "src/styles/") {
		return "Sass styles"
	}
	if strings.HasPrefix(file, "src/test/") {
		return "Component test"
	}
	return ""
}
