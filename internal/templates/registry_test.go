package templates

import (
	"io/fs"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNames(t *testing.T) {
	names := Names()
	assert.Equal(t, []string{"component", "starter"}, names)
}

func TestGet(t *testing.T) {
	tmpl, err := Get("component")
	require.NoError(t, err)
	assert.True(t, tmpl.AskComponentName)
	assert.True(t, tmpl.Substitute)
	require.Len(t, tmpl.Generated, 1)
	assert.Equal(t, "README.template.md", tmpl.Generated[0].Path)
	assert.Equal(t, "## Web Component Documentation\n", tmpl.Generated[0].Content)

	tmpl, err = Get("starter")
	require.NoError(t, err)
	assert.False(t, tmpl.AskComponentName)
	assert.False(t, tmpl.Substitute)
	assert.Empty(t, tmpl.Generated)
	assert.Contains(t, tmpl.Manifest, "README.md")
	assert.Contains(t, tmpl.Manifest, "package-lock.json")

	_, err = Get("fancy")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "valid templates: component, starter")
}

func TestList_SingleDefault(t *testing.T) {
	var defaults []string
	for _, tmpl := range List() {
		assert.NotEmpty(t, tmpl.Description, tmpl.Name)
		if tmpl.Default {
			defaults = append(defaults, tmpl.Name)
		}
	}
	assert.Equal(t, []string{"component"}, defaults)
}

func TestUsage(t *testing.T) {
	lines := strings.Split(Usage(), "\n")
	require.Len(t, lines, 2)

	assert.True(t, strings.HasPrefix(lines[0], "  component  Named web component"))
	assert.True(t, strings.HasSuffix(lines[0], "(default)"))
	assert.True(t, strings.HasPrefix(lines[1], "  starter    Verbatim starter"))
	assert.NotContains(t, lines[1], "(default)")
}

func TestManifestOrder(t *testing.T) {
	component, _ := Get("component")
	assert.Equal(t, []string{
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
	}, component.Manifest)
}

func TestSourceName(t *testing.T) {
	assert.Equal(t, "_gitignore", SourceName(".gitignore"))
	assert.Equal(t, "package.json", SourceName("package.json"))
}

func TestAssets_EveryManifestEntryExists(t *testing.T) {
	assets := Assets()

	for _, tmpl := range List() {
		for _, entry := range tmpl.Manifest {
			_, err := fs.Stat(assets, SourceName(entry))
			assert.NoError(t, err, "template %s: missing asset for %s", tmpl.Name, entry)
		}
	}
}

func TestAssets_NoLiteralGitignore(t *testing.T) {
	_, err := fs.Stat(Assets(), ".gitignore")
	assert.Error(t, err, "the bundle stores the ignore file as _gitignore")
}

func TestAssets_PlaceholderPresentInSubstitutionTargets(t *testing.T) {
	for _, target := range SubstitutionTargets {
		content, err := fs.ReadFile(Assets(), target)
		require.NoError(t, err)
		assert.Contains(t, string(content), Placeholder, "%s should reference the starter name", target)
	}
}
