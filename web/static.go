// Package web carries the embeddable chat widget assets served under /widget/.
package web

import (
	"embed"
	"io/fs"
)

//go:embed index.html widget.js
var assets embed.FS

// Assets returns the widget filesystem rooted at the asset files.
func Assets() fs.FS {
	return assets
}
