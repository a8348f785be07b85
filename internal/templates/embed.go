// Package templates provides the embedded project asset bundle, the template
// registry and the materializer that copies a template into a project.
package templates

import (
	"embed"
	"io/fs"
)

// The all: prefix is required: the bundle contains dot-files (.prettierrc)
// and underscore-prefixed sources (_gitignore) that embed skips otherwise.
//
//go:embed all:assets
var assetsFS embed.FS

const assetRoot = "assets"

// Assets returns the embedded asset bundle rooted at its top directory.
func Assets() fs.FS {
	sub, err := fs.Sub(assetsFS, assetRoot)
	if err != nil {
		// assetRoot is a compile-time constant that always exists.
		panic(err)
	}
	return sub
}
