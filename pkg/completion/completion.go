// Package completion provides shell completion support for propverify.
package completion

import (
	"context"
	"sort"
	"strings"
	"sync"

	"github.com/nomagicln/propverify/pkg/casestore"
	"github.com/nomagicln/propverify/pkg/declare"
	"github.com/nomagicln/propverify/pkg/testcase"
)

// Provider provides completion suggestions for commands and arguments.
type Provider struct {
	store *casestore.Store

	mu    sync.Mutex
	names map[string][]string // property names by path
}

// NewProvider creates a new completion provider. store may be nil, in which
// case no case IDs are completed.
func NewProvider(store *casestore.Store) *Provider {
	return &Provider{
		store: store,
		names: make(map[string][]string),
	}
}

// CompletePropertyNames returns the names of the properties declared in paths.
// Paths that fail to load contribute nothing.
func (p *Provider) CompletePropertyNames(paths []string, prefix string) []string {
	names := make(map[string]bool)
	for _, path := range paths {
		for _, name := range p.loadNames(path) {
			if matchesPrefix(name, prefix) {
				names[name] = true
			}
		}
	}
	return sortedKeys(names)
}

// loadNames loads and caches the property names declared at path.
func (p *Provider) loadNames(path string) []string {
	p.mu.Lock()
	defer p.mu.Unlock()

	if names, ok := p.names[path]; ok {
		return names
	}
	props, err := declare.LoadPaths(path)
	if err != nil {
		return nil
	}
	names := make([]string, len(props))
	for i, prop := range props {
		names[i] = prop.Name()
	}
	p.names[path] = names
	return names
}

// CompleteCaseIDs returns the IDs of recorded cases.
func (p *Provider) CompleteCaseIDs(ctx context.Context, prefix string) []string {
	if p.store == nil {
		return nil
	}
	ids, err := p.store.IDs(ctx)
	if err != nil {
		return nil
	}

	var matches []string
	for _, id := range ids {
		if matchesPrefix(id, prefix) {
			matches = append(matches, id)
		}
	}
	sort.Strings(matches)
	return matches
}

// CompleteRecordedProperties returns the properties that have recorded cases.
func (p *Provider) CompleteRecordedProperties(ctx context.Context, prefix string) []string {
	if p.store == nil {
		return nil
	}
	cases, err := p.store.List(ctx, casestore.Filter{})
	if err != nil {
		return nil
	}

	names := make(map[string]bool)
	for _, c := range cases {
		if matchesPrefix(c.Property, prefix) {
			names[c.Property] = true
		}
	}
	return sortedKeys(names)
}

// CompleteFlagValues returns possible values for a flag.
func (p *Provider) CompleteFlagValues(flagName, prefix string) []string {
	var values []string
	switch cleanFlagName(flagName) {
	case "output", "o":
		values = []string{"table", "json", "yaml"}
	case "log-level":
		values = []string{"debug", "info", "warn", "error"}
	case "outcome":
		values = []string{string(testcase.OutcomeFailed), string(testcase.OutcomePassed), string(testcase.OutcomePruned)}
	default:
		return nil
	}

	var matches []string
	for _, v := range values {
		if matchesPrefix(v, prefix) {
			matches = append(matches, v)
		}
	}
	return matches
}

// cleanFlagName removes -- or - prefix from flag names.
func cleanFlagName(flagName string) string {
	flagName = strings.TrimPrefix(flagName, "--")
	flagName = strings.TrimPrefix(flagName, "-")
	return flagName
}

// matchesPrefix checks if a string matches the given prefix.
func matchesPrefix(s, prefix string) bool {
	return prefix == "" || strings.HasPrefix(s, prefix)
}

// sortedKeys converts a map's keys to a sorted slice.
func sortedKeys(m map[string]bool) []string {
	keys := make([]string, 0, len(m))
	for key := range m {
		keys = append(keys, key)
	}
	sort.Strings(keys)
	return keys
}
