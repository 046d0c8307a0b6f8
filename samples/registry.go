package samples

import (
	"errors"
	"fmt"
	"slices"
)

var ErrUnknownKey = errors.New("unknown dataset key")

// Registry is a read-only set of sample datasets. It is never modified after
// NewRegistry returns, so it can be shared between goroutines without locking.
type Registry struct {
	keys  []string
	store map[string][]BenchmarkResult
}

// NewRegistry copies keys and store. Every listed key must have a non-empty
// dataset; store entries that are not listed stay reachable through Dataset.
func NewRegistry(keys []string, store map[string][]BenchmarkResult) (*Registry, error) {
	registry := &Registry{
		keys:  make([]string, 0, len(keys)),
		store: make(map[string][]BenchmarkResult, len(store)),
	}
	seen := make(map[string]bool, len(keys))
	for _, key := range keys {
		if seen[key] {
			return nil, fmt.Errorf("duplicate dataset key %q", key)
		}
		seen[key] = true
		if len(store[key]) == 0 {
			return nil, fmt.Errorf("dataset key %q has no results", key)
		}
		registry.keys = append(registry.keys, key)
	}
	for key, results := range store {
		registry.store[key] = cloneResults(results)
	}
	return registry, nil
}

// Keys returns the listed dataset keys in declaration order.
func (r *Registry) Keys() []string { return slices.Clone(r.keys) }

func (r *Registry) Len() int { return len(r.keys) }

// Dataset returns a copy of the results stored under key; ok is false for unknown keys.
func (r *Registry) Dataset(key string) ([]BenchmarkResult, bool) {
	results, ok := r.store[key]
	if !ok {
		return nil, false
	}
	return cloneResults(results), true
}

// Lookup is Dataset for callers that treat a missing key as an error.
func (r *Registry) Lookup(key string) ([]BenchmarkResult, error) {
	results, ok := r.Dataset(key)
	if !ok {
		return nil, fmt.Errorf("%w: %v", ErrUnknownKey, key)
	}
	return results, nil
}
