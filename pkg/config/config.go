// Package config loads declarative store definitions: slice names with
// their initial values, from YAML or JSON. Reducers stay in code; the
// definition only shapes the tree, which is enough for tooling (replay,
// inspection) and for keeping initial state out of source.
package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/aretw0/arbor"
	"github.com/aretw0/arbor/pkg/domain"
)

// SliceConfig declares one slice of the tree.
type SliceConfig struct {
	Name    string `yaml:"name" json:"name"`
	Initial any    `yaml:"initial" json:"initial"`
}

// StoreConfig represents the structure of a store definition file.
type StoreConfig struct {
	Name   string        `yaml:"name" json:"name"`
	Slices []SliceConfig `yaml:"slices" json:"slices"`
}

// Load reads a store definition (YAML or JSON, by extension).
func Load(path string) (*StoreConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read store config: %w", err)
	}

	var cfg StoreConfig
	if strings.ToLower(filepath.Ext(path)) == ".json" {
		if err := json.Unmarshal(data, &cfg); err != nil {
			return nil, fmt.Errorf("failed to parse store config: %w", err)
		}
	} else {
		// Default to YAML
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return nil, fmt.Errorf("failed to parse store config: %w", err)
		}
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Validate checks the definition for empty or duplicate slice names.
func (c *StoreConfig) Validate() error {
	seen := make(map[string]struct{}, len(c.Slices))
	for i, slice := range c.Slices {
		if slice.Name == "" {
			return fmt.Errorf("%w: slice %d has no name", domain.ErrInvalidSlice, i)
		}
		if _, dup := seen[slice.Name]; dup {
			return fmt.Errorf("%w: %q", domain.ErrDuplicateSlice, slice.Name)
		}
		seen[slice.Name] = struct{}{}
	}
	return nil
}

// Apply registers every declared slice on the store, attaching reducers from
// the given table (keyed by slice name). Slices without reducers are still
// registered; they hold readable state that only snapshots can seed.
func (c *StoreConfig) Apply(st *arbor.Store, reducers map[string]map[string]domain.Reducer) error {
	for _, slice := range c.Slices {
		if err := st.RegisterSlice(slice.Name, slice.Initial, reducers[slice.Name]); err != nil {
			return fmt.Errorf("failed to register slice %q: %w", slice.Name, err)
		}
	}
	return nil
}
