package main

import (
	"os"
	"path/filepath"

	"github.com/velocity-kit/velocity-cli/internal/project"
)

var getwd = os.Getwd

// resolveProjectRoot walks up from the working directory to the nearest
// directory containing velocity.config.json. When none is found, the working
// directory itself is returned and the engine reports the unrecognized
// project.
func resolveProjectRoot() (string, error) {
	cwd, err := getwd()
	if err != nil {
		return "", err
	}
	dir := cwd
	for {
		if _, err := os.Stat(filepath.Join(dir, project.ConfigFileName)); err == nil {
			return dir, nil
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			return cwd, nil
		}
		dir = parent
	}
}
