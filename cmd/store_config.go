package cmd

import (
	"bytes"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/linolastella/checkout-sim/sim"
)

// loadStoreConfig parses a store configuration file into a sim.StoreConfig.
// YAML and JSON files are both accepted. Uses strict field checking, so a
// misspelled key is an error rather than a silently zero line count.
func loadStoreConfig(path string) (sim.StoreConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return sim.StoreConfig{}, fmt.Errorf("reading store config: %w", err)
	}
	var cfg sim.StoreConfig
	decoder := yaml.NewDecoder(bytes.NewReader(data))
	decoder.KnownFields(true)
	if err := decoder.Decode(&cfg); err != nil {
		return sim.StoreConfig{}, fmt.Errorf("parsing store config %s: %w", path, err)
	}
	if err := cfg.Validate(); err != nil {
		return sim.StoreConfig{}, fmt.Errorf("invalid store config %s: %w", path, err)
	}
	return cfg, nil
}
