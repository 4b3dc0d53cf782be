// Package config provides configuration management for propverify.
// This file contains path validation utilities for property files.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// PathValidationError represents a path validation error with details.
type PathValidationError struct {
	Path    string
	Reason  string
	Wrapped error
}

func (e *PathValidationError) Error() string {
	if e.Wrapped != nil {
		return fmt.Sprintf("invalid path %q: %s: %v", e.Path, e.Reason, e.Wrapped)
	}
	return fmt.Sprintf("invalid path %q: %s", e.Path, e.Reason)
}

func (e *PathValidationError) Unwrap() error {
	return e.Wrapped
}

// ValidateAndResolvePath validates that a property file or directory exists
// and is readable, then returns its absolute path.
func ValidateAndResolvePath(path string) (string, error) {
	if err := validatePathNotEmpty(path); err != nil {
		return "", err
	}

	path = expandHomeDirectory(path)

	absPath, err := resolveAbsolutePath(path)
	if err != nil {
		return "", err
	}

	info, err := statPath(absPath)
	if err != nil {
		return "", err
	}

	if info.IsDir() {
		return checkDirReadable(absPath)
	}
	if err := checkPropertyExtension(absPath); err != nil {
		return "", err
	}
	return checkFileReadable(absPath)
}

// ResolvePaths validates every path and returns the absolute paths.
func ResolvePaths(paths []string) ([]string, error) {
	out := make([]string, 0, len(paths))
	for _, p := range paths {
		resolved, err := ValidateAndResolvePath(p)
		if err != nil {
			return nil, err
		}
		out = append(out, resolved)
	}
	return out, nil
}

// IsValidPath checks if a path is valid without returning detailed error.
func IsValidPath(path string) bool {
	_, err := ValidateAndResolvePath(path)
	return err == nil
}

func validatePathNotEmpty(path string) error {
	if path == "" {
		return &PathValidationError{Path: path, Reason: "path cannot be empty"}
	}
	return nil
}

// expandHomeDirectory expands ~ in the path to the user's home directory.
func expandHomeDirectory(path string) string {
	if strings.HasPrefix(path, "~/") {
		home, _ := os.UserHomeDir()
		path = filepath.Join(home, path[2:])
	}
	return path
}

func resolveAbsolutePath(path string) (string, error) {
	absPath, err := filepath.Abs(path)
	if err != nil {
		return "", &PathValidationError{Path: path, Reason: "failed to resolve absolute path", Wrapped: err}
	}
	return absPath, nil
}

func statPath(absPath string) (os.FileInfo, error) {
	info, err := os.Stat(absPath)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, &PathValidationError{Path: absPath, Reason: "file does not exist"}
		}
		return nil, &PathValidationError{Path: absPath, Reason: "failed to stat file", Wrapped: err}
	}
	return info, nil
}

func checkPropertyExtension(absPath string) error {
	switch filepath.Ext(absPath) {
	case ".yaml", ".yml":
		return nil
	}
	return &PathValidationError{Path: absPath, Reason: "property files must end in .yaml or .yml"}
}

func checkFileReadable(absPath string) (string, error) {
	file, err := os.Open(absPath)
	if err != nil {
		return "", &PathValidationError{Path: absPath, Reason: "file is not readable", Wrapped: err}
	}
	_ = file.Close()
	return absPath, nil
}

func checkDirReadable(absPath string) (string, error) {
	if _, err := os.ReadDir(absPath); err != nil {
		return "", &PathValidationError{Path: absPath, Reason: "directory is not readable", Wrapped: err}
	}
	return absPath, nil
}
