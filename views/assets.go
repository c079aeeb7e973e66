package views

import (
	"embed"
	"io/fs"
)

// StylesheetPath is where the site stylesheet is served.
const StylesheetPath = AssetsPrefix + "site.css"

// AssetsPrefix is the URL prefix the static assets are mounted under.
const AssetsPrefix = "/static/"

//go:embed static
var assets embed.FS

// Assets returns the embedded static files, rooted at "static".
func Assets() fs.FS {
	return assets
}
