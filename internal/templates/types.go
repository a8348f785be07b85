package templates

// Placeholder is the starter project's own package name. It is replaced with
// the component name in SubstitutionTargets.
const Placeholder = "lit-ts-sass-rollup-openwc-starter"

// SubstitutionTargets are the files whose contents receive the placeholder
// replacement, relative to the project root.
var SubstitutionTargets = []string{"rollup.config.mjs", "package.json"}

// GeneratedFile is a file synthesized at the destination instead of being
// copied from the asset bundle.
type GeneratedFile struct {
	// Path is relative to the project root.
	Path string

	// Content is written verbatim.
	Content string
}

// Template describes one generator variant.
type Template struct {
	// Name is the template identifier (component, starter).
	Name string

	// Description explains the template's purpose.
	Description string

	// Manifest is the ordered list of bundle entries (files or directories)
	// copied to the destination.
	Manifest []string

	// AskComponentName enables the component name question.
	AskComponentName bool

	// Substitute enables the placeholder replacement in SubstitutionTargets.
	Substitute bool

	// Generated lists files written after the manifest copy.
	Generated []GeneratedFile

	// Default indicates this is the template used when --template is omitted.
	Default bool
}

// Result contains the outcome of materializing a template.
type Result struct {
	// Files lists the created files relative to TargetDir, slash-separated,
	// in creation order.
	Files []string

	// TemplateName is the template that was used.
	TemplateName string

	// TargetDir is the project root.
	TargetDir string
}
