package pattern

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"gopkg.in/yaml.v3"
)

// Registry holds validated patterns by name. It is populated once at
// startup and read-only afterwards, so lookups need no locking.
type Registry struct {
	patterns map[string]*Pattern
}

// NewRegistry creates a registry from pre-built patterns (used by tests).
// Every pattern is validated; the first failure aborts.
func NewRegistry(patterns ...*Pattern) (*Registry, error) {
	r := &Registry{patterns: make(map[string]*Pattern, len(patterns))}
	for _, p := range patterns {
		if err := Validate(p); err != nil {
			return nil, err
		}
		if _, dup := r.patterns[p.Name]; dup {
			return nil, fmt.Errorf("duplicate pattern name %q", p.Name)
		}
		r.patterns[p.Name] = p
	}
	return r, nil
}

// LoadDir loads every *.yaml / *.yml file in dir as a pattern, validates
// it, and returns the immutable registry. A missing directory yields an
// empty registry — running without patterns is legal, executing one is not.
func LoadDir(dir string) (*Registry, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		if os.IsNotExist(err) {
			slog.Warn("Pattern directory does not exist, starting with empty registry", "dir", dir)
			return &Registry{patterns: map[string]*Pattern{}}, nil
		}
		return nil, fmt.Errorf("failed to read pattern directory %q: %w", dir, err)
	}

	r := &Registry{patterns: make(map[string]*Pattern)}
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		ext := strings.ToLower(filepath.Ext(entry.Name()))
		if ext != ".yaml" && ext != ".yml" {
			continue
		}

		path := filepath.Join(dir, entry.Name())
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("failed to read pattern file %q: %w", path, err)
		}

		var p Pattern
		if err := yaml.Unmarshal(data, &p); err != nil {
			return nil, fmt.Errorf("failed to parse pattern file %q: %w", path, err)
		}
		if err := Validate(&p); err != nil {
			return nil, fmt.Errorf("pattern file %q: %w", path, err)
		}
		if _, dup := r.patterns[p.Name]; dup {
			return nil, fmt.Errorf("pattern file %q: duplicate pattern name %q", path, p.Name)
		}
		r.patterns[p.Name] = &p
		slog.Info("Loaded pattern", "name", p.Name, "version", p.Version,
			"roles", len(p.Structure.Roles), "steps", len(p.Workflow.Steps))
	}
	return r, nil
}

// Get returns the pattern with the given name, or nil.
func (r *Registry) Get(name string) *Pattern {
	return r.patterns[name]
}

// Names returns all registered pattern names, sorted.
func (r *Registry) Names() []string {
	names := make([]string, 0, len(r.patterns))
	for name := range r.patterns {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Len returns the number of registered patterns.
func (r *Registry) Len() int {
	return len(r.patterns)
}
