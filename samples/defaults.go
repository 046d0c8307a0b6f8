package samples

import (
	_ "embed"
	"encoding/json"
	"fmt"
	"slices"
)

//go:embed data/list_creation.json
var listCreationJson []byte

var defaultKeys = []string{"desktop_jdk8", "desktop_jdk9", "notebook_jdk8", "notebook_jdk9"}

// DefaultKeys lists the built-in datasets in display order.
func DefaultKeys() []string { return slices.Clone(defaultKeys) }

// every built-in environment ships the same ListCreationBenchmark run
var defaultPayloads = map[string][]byte{
	"desktop_jdk8":  listCreationJson,
	"desktop_jdk9":  listCreationJson,
	"notebook_jdk8": listCreationJson,
	"notebook_jdk9": listCreationJson,
}

// Parse decodes a JMH JSON result array.
func Parse(data []byte) ([]BenchmarkResult, error) {
	var results []BenchmarkResult
	if err := json.Unmarshal(data, &results); err != nil {
		return nil, fmt.Errorf("failed to decode benchmark results: %w", err)
	}
	return results, nil
}

func defaultStore() (map[string][]BenchmarkResult, error) {
	store := make(map[string][]BenchmarkResult, len(defaultPayloads))
	for key, payload := range defaultPayloads {
		results, err := Parse(payload)
		if err != nil {
			return nil, fmt.Errorf("dataset %v: %w", key, err)
		}
		store[key] = results
	}
	return store, nil
}

// Default builds a registry listing DefaultKeys.
func Default() (*Registry, error) {
	return DefaultWithKeys(DefaultKeys())
}

// DefaultWithKeys builds a registry from the built-in data listing only keys,
// in the given order. An empty list gives a registry with nothing listed.
func DefaultWithKeys(keys []string) (*Registry, error) {
	store, err := defaultStore()
	if err != nil {
		return nil, err
	}
	for _, key := range keys {
		if _, ok := store[key]; !ok {
			return nil, fmt.Errorf("%w: %v", ErrUnknownKey, key)
		}
	}
	return NewRegistry(keys, store)
}
