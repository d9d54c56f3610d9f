// Package config loads the bindgen.json project configuration.
package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
)

// Config represents the bindgen.json configuration file.
type Config struct {
	Name      string       `json:"name"`
	Version   string       `json:"version"`
	Generator string       `json:"generator"`
	Manifest  string       `json:"manifest"`
	Output    OutputConfig `json:"output"`
	Watch     WatchConfig  `json:"watch"`
}

// OutputConfig controls where and how outputs are written.
type OutputConfig struct {
	// Dir is the directory generated files are written into.
	Dir string `json:"dir"`

	// SingleFile requests one aggregated output per module, for backends
	// that support it.
	SingleFile bool `json:"singleFile"`
}

// WatchConfig controls which files trigger regeneration in watch mode.
type WatchConfig struct {
	Patterns []string `json:"patterns"`
	Exclude  []string `json:"exclude"`
}

// LoadConfig loads bindgen.json from the current directory or a parent
// directory, returning the config and the project root it was found in.
func LoadConfig() (*Config, string, error) {
	dir, err := os.Getwd()
	if err != nil {
		return nil, "", fmt.Errorf("failed to get current directory: %w", err)
	}

	return loadConfigFromDir(dir)
}

// LoadConfigFromPath loads bindgen.json from a specific path.
func LoadConfigFromPath(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	var config Config
	if err := json.Unmarshal(data, &config); err != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", err)
	}

	// Set defaults
	if config.Generator == "" {
		config.Generator = "csharp"
	}
	if config.Manifest == "" {
		config.Manifest = "./ast.json"
	}
	if config.Output.Dir == "" {
		config.Output.Dir = "./generated"
	}
	if len(config.Watch.Patterns) == 0 {
		config.Watch.Patterns = []string{"*.json", "*.h", "**/*.h", "*.hpp", "**/*.hpp"}
	}
	if len(config.Watch.Exclude) == 0 {
		config.Watch.Exclude = []string{"generated/", ".git/"}
	}

	return &config, nil
}

// loadConfigFromDir searches for bindgen.json in the given directory and its
// parents.
func loadConfigFromDir(startDir string) (*Config, string, error) {
	dir := startDir
	for {
		configPath := filepath.Join(dir, "bindgen.json")
		if _, err := os.Stat(configPath); err == nil {
			config, err := LoadConfigFromPath(configPath)
			if err != nil {
				return nil, "", err
			}
			return config, dir, nil
		}

		parent := filepath.Dir(dir)
		if parent == dir {
			// Reached root directory
			break
		}
		dir = parent
	}

	return nil, "", fmt.Errorf("no bindgen.json found in %s or any parent directory", startDir)
}
