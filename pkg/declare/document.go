// Package declare loads properties described as data. A YAML document binds
// names to strategy trees and states assumptions and assertions as predicate
// expressions over those names. Each property compiles to a prop.Property
// that the explorer and the replay engine run like any other.
package declare

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"regexp"
	"sort"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/nomagicln/propverify/pkg/explore"
	"github.com/nomagicln/propverify/pkg/prop"
)

// Document is the top level of a property file.
type Document struct {
	Properties []PropertyDef `yaml:"properties"`
}

// PropertyDef describes one property.
type PropertyDef struct {
	Name   string    `yaml:"name"`
	Expect Expect    `yaml:"expect,omitempty"`
	Bind   []Binding `yaml:"bind"`
	Assume []string  `yaml:"assume,omitempty"`
	Assert []string  `yaml:"assert,omitempty"`
}

// Binding names the value of a strategy.
type Binding struct {
	Name     string `yaml:"name"`
	Strategy *Node  `yaml:"strategy"`
}

// Expect is the outcome a property is declared to have.
type Expect string

const (
	ExpectVerified Expect = "verified" // No path fails.
	ExpectFailed   Expect = "failed"   // Some path fails.
	ExpectOverflow Expect = "overflow" // Some path fails on arithmetic overflow.
)

// Valid reports whether e is a known expectation. The empty value means verified.
func (e Expect) Valid() bool {
	switch e {
	case "", ExpectVerified, ExpectFailed, ExpectOverflow:
		return true
	}
	return false
}

// Met reports whether rep shows the expected outcome.
func (e Expect) Met(rep *explore.Report) bool {
	switch e {
	case ExpectFailed:
		return rep.Failed > 0
	case ExpectOverflow:
		for _, f := range rep.Failures {
			if strings.Contains(f.Message, "overflow") {
				return true
			}
		}
		return false
	default:
		return rep.Failed == 0 && !rep.Vacuous()
	}
}

func (e Expect) String() string {
	if e == "" {
		return string(ExpectVerified)
	}
	return string(e)
}

// DeclarationError reports a problem in a property file.
type DeclarationError struct {
	Source   string
	Property string
	Err      error
}

func (e *DeclarationError) Error() string {
	var parts []string
	if e.Source != "" {
		parts = append(parts, e.Source)
	}
	if e.Property != "" {
		parts = append(parts, fmt.Sprintf("property %s", e.Property))
	}
	parts = append(parts, e.Err.Error())
	return strings.Join(parts, ": ")
}

func (e *DeclarationError) Unwrap() error { return e.Err }

// Declared is a compiled property together with its declared outcome.
type Declared struct {
	*prop.Property
	Expect Expect
	Source string
}

var identifier = regexp.MustCompile(`^[A-Za-z_][A-Za-z0-9_]*$`)

// Parse decodes a property document. source names the document in errors.
func Parse(data []byte, source string) (*Document, error) {
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)

	var doc Document
	if err := dec.Decode(&doc); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, &DeclarationError{Source: source, Err: errors.New("document is empty")}
		}
		return nil, &DeclarationError{Source: source, Err: err}
	}
	return &doc, nil
}

// Compile turns every property of doc into a runnable property.
func Compile(doc *Document, source string) ([]*Declared, error) {
	seen := make(map[string]bool)
	out := make([]*Declared, 0, len(doc.Properties))
	for i := range doc.Properties {
		def := &doc.Properties[i]
		if def.Name == "" {
			return nil, &DeclarationError{Source: source, Err: fmt.Errorf("property %d has no name", i+1)}
		}
		if seen[def.Name] {
			return nil, &DeclarationError{Source: source, Property: def.Name, Err: errors.New("defined twice")}
		}
		seen[def.Name] = true

		d, err := compileProperty(def)
		if err != nil {
			return nil, &DeclarationError{Source: source, Property: def.Name, Err: err}
		}
		d.Source = source
		out = append(out, d)
	}
	return out, nil
}

// Load parses and compiles the property file at path.
func Load(path string) ([]*Declared, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read property file: %w", err)
	}
	doc, err := Parse(data, path)
	if err != nil {
		return nil, err
	}
	return Compile(doc, path)
}

// LoadPaths loads every file in paths. Directories contribute their *.yaml
// and *.yml files. Property names must be unique across all files.
func LoadPaths(paths ...string) ([]*Declared, error) {
	files, err := Expand(paths...)
	if err != nil {
		return nil, err
	}

	var all []*Declared
	where := make(map[string]string)
	for _, f := range files {
		ds, err := Load(f)
		if err != nil {
			return nil, err
		}
		for _, d := range ds {
			if prev, ok := where[d.Name()]; ok {
				return nil, &DeclarationError{Source: f, Property: d.Name(), Err: fmt.Errorf("already defined in %s", prev)}
			}
			where[d.Name()] = f
			all = append(all, d)
		}
	}
	return all, nil
}

// Expand resolves directories in paths to the property files they contain.
func Expand(paths ...string) ([]string, error) {
	var files []string
	for _, p := range paths {
		info, err := os.Stat(p)
		if err != nil {
			return nil, fmt.Errorf("failed to stat %s: %w", p, err)
		}
		if !info.IsDir() {
			files = append(files, p)
			continue
		}
		entries, err := os.ReadDir(p)
		if err != nil {
			return nil, fmt.Errorf("failed to read directory %s: %w", p, err)
		}
		var found []string
		for _, e := range entries {
			ext := filepath.Ext(e.Name())
			if !e.IsDir() && (ext == ".yaml" || ext == ".yml") {
				found = append(found, filepath.Join(p, e.Name()))
			}
		}
		sort.Strings(found)
		files = append(files, found...)
	}
	return files, nil
}
