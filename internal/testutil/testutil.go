// Package testutil provides testing utilities for propverify.
package testutil

import (
	"os"
	"path/filepath"
	"testing"
)

// TempPropertyFile writes content to a property file in a fresh temporary
// directory and returns its path.
func TempPropertyFile(t *testing.T, content string) string {
	t.Helper()
	return WriteFile(t, t.TempDir(), "properties.yaml", content)
}

// WriteFile writes content to dir/name and returns the path.
func WriteFile(t *testing.T, dir, name, content string) string {
	t.Helper()

	path := filepath.Join(dir, name)
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		t.Fatalf("failed to create directory: %v", err)
	}
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("failed to write temp file: %v", err)
	}
	return path
}

// SampleProperties declares one property of each expected outcome.
const SampleProperties = `
properties:
  - name: vec_in_range
    expect: verified
    bind:
      - name: v
        strategy:
          vec: {size: 2, element: {range: {type: u8, start: 0, end: 10}}}
    assert:
      - "Len(v) == 2"
      - "Max(v) < 10"

  - name: vec_below_five
    expect: failed
    bind:
      - name: v
        strategy:
          vec: {size: 2, element: {range: {type: u8, start: 0, end: 10}}}
    assert:
      - "Max(v) < 5"

  - name: add_overflows
    expect: overflow
    bind:
      - name: a
        strategy: i8
      - name: b
        strategy: i8
    assert:
      - "Add(a, b) == Add(b, a)"
`

// BrokenProperties fails to compile: the assertion names an unbound value.
const BrokenProperties = `
properties:
  - name: broken
    bind:
      - name: x
        strategy: u8
    assert:
      - "y > 0"
`
