package templates

import (
	"fmt"
	"strings"
)

// baseManifest is shared by every variant.
var baseManifest = []string{
	"tsconfig.json",
	"web-test-runner.config.mjs",
	"web-dev-server.config.mjs",
	"rollup.config.mjs",
	"postcss.config.mjs",
	"package.json",
	"eslint.config.mjs",
	".prettierrc",
	".gitignore",
	"web-dev-server",
	"demo",
	"src",
}

// sourceNames maps a destination entry to a differently named bundle asset.
var sourceNames = map[string]string{
	".gitignore": "_gitignore",
}

// SourceName returns the bundle path that materializes as entry.
func SourceName(entry string) string {
	if src, ok := sourceNames[entry]; ok {
		return src
	}
	return entry
}

func manifest(extra ...string) []string {
	out := make([]string, 0, len(baseManifest)+len(extra))
	out = append(out, baseManifest...)
	return append(out, extra...)
}

// templates is the internal registry of available templates.
var templates = map[string]Template{
	"component": {
		Name:             "component",
		Description:      "Named web component: asks for a tag name and renames the starter",
		Manifest:         manifest(),
		AskComponentName: true,
		Substitute:       true,
		Generated: []GeneratedFile{
			{Path: "README.template.md", Content: "## Web Component Documentation\n"},
		},
		Default: true,
	},
	"starter": {
		Name:        "starter",
		Description: "Verbatim starter: copies the starter with its README and lockfile",
		Manifest:    manifest("README.template.md", "README.md", "package-lock.json"),
	},
}

// Get returns a template by name.
func Get(name string) (Template, error) {
	t, ok := templates[name]
	if !ok {
		return Template{}, fmt.Errorf("unknown template %q; valid templates: %s", name, strings.Join(Names(), ", "))
	}
	return t, nil
}

// List returns all available templates in display order.
func List() []Template {
	return []Template{templates["component"], templates["starter"]}
}

// Names returns all template names in display order.
func Names() []string {
	list := List()
	names := make([]string, 0, len(list))
	for _, t := range list {
		names = append(names, t.Name)
	}
	return names
}

// Usage renders one aligned line per template, marking the default, for
// help text and error hints.
func Usage() string {
	lines := make([]string, 0, len(templates))
	for _, t := range List() {
		line := fmt.Sprintf("  %-10s %s", t.Name, t.Description)
		if t.Default {
			line += " (default)"
		}
		lines = append(lines, line)
	}
	return strings.Join(lines, "\n")
}
