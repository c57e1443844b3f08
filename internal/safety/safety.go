// Package safety runs advisory pre-flight checks before sorting a directory.
package safety

import (
	"os"
	"path/filepath"
	"strings"
)

var projectManifests = []string{
	"go.mod", "package.json", "Cargo.toml", "pyproject.toml", "setup.py",
	"pom.xml", "Makefile",
}

var devFolders = map[string]bool{
	".git": true, ".svn": true, ".hg": true,
	"node_modules": true, ".venv": true, "venv": true,
	"__pycache__": true, ".pytest_cache": true,
	"dist": true, "build": true, "target": true, ".tox": true,
}

// Check returns human-readable warnings when path looks like a development
// tree. Warnings are advisory only; the caller decides whether to proceed.
func Check(path string) []string {
	var warnings []string

	for _, manifest := range projectManifests {
		if _, err := os.Stat(filepath.Join(path, manifest)); err == nil {
			warnings = append(warnings, "directory contains "+manifest+" - looks like a project root")
			break
		}
	}

	if _, err := os.Stat(filepath.Join(path, ".git")); err == nil {
		warnings = append(warnings, "directory is a Git repository - sorting may affect version control")
	}

	var found []string
	entries, err := os.ReadDir(path)
	if err == nil {
		for _, e := range entries {
			if e.IsDir() && devFolders[e.Name()] && e.Name() != ".git" {
				found = append(found, e.Name())
			}
		}
	}
	if len(found) > 0 {
		warnings = append(warnings, "directory contains development folders: "+strings.Join(found, ", "))
	}

	return warnings
}
