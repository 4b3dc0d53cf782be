package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeFile(t *testing.T, dir, name string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, []byte("properties: []\n"), 0644))
	return path
}

func TestPathValidationError(t *testing.T) {
	t.Run("error with wrapped error", func(t *testing.T) {
		wrapped := os.ErrNotExist
		err := &PathValidationError{
			Path:    "/some/path",
			Reason:  "file not found",
			Wrapped: wrapped,
		}

		assert.Contains(t, err.Error(), "/some/path")
		assert.Contains(t, err.Error(), "file not found")
		assert.Equal(t, wrapped, err.Unwrap())
	})

	t.Run("error without wrapped error", func(t *testing.T) {
		err := &PathValidationError{
			Path:   "/some/path",
			Reason: "is a directory",
		}

		assert.Contains(t, err.Error(), "/some/path")
		assert.Contains(t, err.Error(), "is a directory")
		assert.Nil(t, err.Unwrap())
	})
}

func TestValidateAndResolvePath(t *testing.T) {
	dir := t.TempDir()
	yamlFile := writeFile(t, dir, "props.yaml")
	ymlFile := writeFile(t, dir, "props.yml")
	txtFile := writeFile(t, dir, "notes.txt")

	tests := []struct {
		name   string
		path   string
		want   string
		reason string
	}{
		{name: "yaml file", path: yamlFile, want: yamlFile},
		{name: "yml file", path: ymlFile, want: ymlFile},
		{name: "directory", path: dir, want: dir},
		{name: "empty", path: "", reason: "path cannot be empty"},
		{name: "missing", path: filepath.Join(dir, "missing.yaml"), reason: "file does not exist"},
		{name: "wrong extension", path: txtFile, reason: "must end in .yaml or .yml"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ValidateAndResolvePath(tt.path)
			if tt.reason != "" {
				require.Error(t, err)
				var pathErr *PathValidationError
				require.ErrorAs(t, err, &pathErr)
				assert.Contains(t, pathErr.Reason, tt.reason)
				assert.False(t, IsValidPath(tt.path))
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
			assert.True(t, IsValidPath(tt.path))
		})
	}
}

func TestValidateAndResolvePathRelative(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "props.yaml")
	t.Chdir(dir)

	got, err := ValidateAndResolvePath("props.yaml")
	require.NoError(t, err)
	assert.True(t, filepath.IsAbs(got))
	assert.True(t, strings.HasSuffix(got, "props.yaml"))
}

func TestResolvePaths(t *testing.T) {
	dir := t.TempDir()
	a := writeFile(t, dir, "a.yaml")

	got, err := ResolvePaths([]string{a, dir})
	require.NoError(t, err)
	assert.Equal(t, []string{a, dir}, got)

	_, err = ResolvePaths([]string{a, filepath.Join(dir, "nope.yaml")})
	assert.Error(t, err)
}

func TestExpandHomeDirectory(t *testing.T) {
	home, err := os.UserHomeDir()
	require.NoError(t, err)

	assert.Equal(t, filepath.Join(home, "props.yaml"), expandHomeDirectory("~/props.yaml"))
	assert.Equal(t, "/abs/props.yaml", expandHomeDirectory("/abs/props.yaml"))
}
