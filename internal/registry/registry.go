// Package registry assembles classified guards into an ordered, name-unique set.
package registry

import (
	"guardgen/internal/classify"
	"guardgen/internal/guarderr"
	"guardgen/pkg/guardast"
)

// Registry maps guard names to records, iterating in declaration order.
type Registry struct {
	records []guardast.GeneratedTypeGuard
	index   map[string]int
}

// New creates an empty registry.
func New() *Registry {
	return &Registry{index: make(map[string]int)}
}

// Build creates a registry from classifier output, keeping guards only. Every
// function name must be unique across the module, whether or not it is a guard.
func Build(results []classify.Result) (*Registry, error) {
	r := New()
	declared := make(map[string]bool, len(results))
	for _, res := range results {
		if res.Verdict == classify.Skipped || res.Name == "" {
			continue
		}
		if declared[res.Name] {
			return nil, &guarderr.DuplicateNameError{Name: res.Name}
		}
		declared[res.Name] = true
		if res.Verdict != classify.Guard {
			continue
		}
		rec := guardast.GeneratedTypeGuard{Name: res.Name, AST: res.Decl, Kind: res.Kind}
		if err := r.Add(rec); err != nil {
			return nil, err
		}
	}
	return r, nil
}

// Add appends rec. A name that is already registered is rejected.
func (r *Registry) Add(rec guardast.GeneratedTypeGuard) error {
	if _, ok := r.index[rec.Name]; ok {
		return &guarderr.DuplicateNameError{Name: rec.Name}
	}
	r.index[rec.Name] = len(r.records)
	r.records = append(r.records, rec)
	return nil
}

// Get returns the record registered under name.
func (r *Registry) Get(name string) (guardast.GeneratedTypeGuard, bool) {
	i, ok := r.index[name]
	if !ok {
		return guardast.GeneratedTypeGuard{}, false
	}
	return r.records[i], true
}

// Records returns a copy of all records in declaration order.
func (r *Registry) Records() []guardast.GeneratedTypeGuard {
	return append([]guardast.GeneratedTypeGuard(nil), r.records...)
}

// Names returns guard names in declaration order.
func (r *Registry) Names() []string {
	names := make([]string, len(r.records))
	for i, rec := range r.records {
		names[i] = rec.Name
	}
	return names
}

func (r *Registry) Len() int { return len(r.records) }
