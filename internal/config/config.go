// Package config holds server configuration supplied through LSP
// initializationOptions, layered over defaults.
package config

import (
	"encoding/json"
	"fmt"
	"io"
)

type Config struct {
	// DataDir points at a directory of JSON definition files. Empty
	// means the embedded dataset.
	DataDir string `json:"data_dir"`

	// Database points at a sqlite reference store; takes precedence
	// over DataDir when set.
	Database string `json:"database"`
}

var defaultConfig = Config{}

// Load overlays initializationOptions onto the defaults. Only fields
// present in the source overwrite.
func Load(v any) (Config, error) {
	cfg := defaultConfig

	data, err := json.Marshal(v)
	if err != nil {
		return Config{}, fmt.Errorf("failed to marshal source: %w", err)
	}

	if err := json.Unmarshal(data, &cfg); err != nil {
		return Config{}, fmt.Errorf("failed to unmarshal into Config: %w", err)
	}

	return cfg, nil
}

// LoadFromJSON reads JSON from r into a Config.
func LoadFromJSON(r io.Reader) (Config, error) {
	cfg := defaultConfig

	decoder := json.NewDecoder(r)
	if err := decoder.Decode(&cfg); err != nil {
		return Config{}, err
	}

	return cfg, nil
}
