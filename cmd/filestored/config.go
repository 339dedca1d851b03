package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/tailored-agentic-units/filestore/store"
)

const defaultAddr = ":8640"

// Config holds daemon initialization parameters.
type Config struct {
	Addr  string       `json:"addr,omitempty"` // Listen address for the Connect service.
	Store store.Config `json:"store"`
}

// DefaultConfig returns a Config with sensible defaults.
func DefaultConfig() Config {
	return Config{
		Addr:  defaultAddr,
		Store: store.DefaultConfig(),
	}
}

// Merge applies non-zero values from source into c.
func (c *Config) Merge(source *Config) {
	if source.Addr != "" {
		c.Addr = source.Addr
	}
	c.Store.Merge(&source.Store)
}

// LoadConfig reads a JSON config file, merges it with defaults, and returns
// the resulting Config.
func LoadConfig(filename string) (*Config, error) {
	cfg := DefaultConfig()

	data, err := os.ReadFile(filename)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	var loaded Config
	if err := json.Unmarshal(data, &loaded); err != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", err)
	}

	cfg.Merge(&loaded)
	return &cfg, nil
}
