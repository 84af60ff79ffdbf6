// Package assets embeds the game's level files.
package assets

import (
	"embed"
	"io/fs"
)

//go:embed all:levels
var assetFS embed.FS

// Levels returns the embedded filesystem holding the levels directory.
func Levels() fs.FS {
	return assetFS
}
