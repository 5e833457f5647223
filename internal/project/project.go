// Package project detects the project a command was run inside
package project

import (
	"os"
	"path/filepath"
)

// markers are directory entries that identify a project root.
var markers = []string{
	".git", ".svn", ".hg",
	"package.json", "Cargo.toml", "pyproject.toml", "setup.py",
	"pom.xml", "Gemfile", "go.mod",
}

// Detect determines the project name for a working directory by walking
// upward until a directory containing a known project marker is found.
// Falls back to the directory's own name, or "terminal" when there is none.
func Detect(cwd string) string {
	dir := filepath.Clean(cwd)

	for {
		if hasMarker(dir) {
			return filepath.Base(dir)
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			break
		}
		dir = parent
	}

	if name := filepath.Base(filepath.Clean(cwd)); name != "." && name != string(filepath.Separator) {
		return name
	}
	return "terminal"
}

func hasMarker(dir string) bool {
	for _, marker := range markers {
		if _, err := os.Stat(filepath.Join(dir, marker)); err == nil {
			return true
		}
	}
	return false
}
