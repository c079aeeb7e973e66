// Package locales embeds the site's localization resources.
//
// Each top-level directory is one locale. Directory names are the locale
// tags used in URLs, so they are case-sensitive.
package locales

import (
	"embed"
	"io/fs"
)

//go:embed en-US fr de
var files embed.FS

// FS returns the embedded resource tree.
func FS() fs.FS {
	return files
}
