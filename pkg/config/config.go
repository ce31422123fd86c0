package config

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/knadh/koanf/parsers/json"
	"github.com/knadh/koanf/parsers/toml"
	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
)

// Config holds all configuration options for vantage.
type Config struct {
	// Default argument values applied when a tool call omits them
	Defaults DefaultsConfig `koanf:"defaults"`

	// Thresholds for gap classification and fuzzy matching
	Thresholds ThresholdConfig `koanf:"thresholds"`

	// Plan generation settings
	Plans PlansConfig `koanf:"plans"`

	// Custom market data overlay
	Data DataConfig `koanf:"data"`

	// Output settings
	Output OutputConfig `koanf:"output"`
}

// DefaultsConfig supplies fallback values for tool arguments.
type DefaultsConfig struct {
	Category       string `koanf:"category"`
	Budget         string `koanf:"budget"`
	Focus          string `koanf:"focus"`
	MaxSuggestions int    `koanf:"max_suggestions"`
}

// ThresholdConfig defines analysis thresholds.
type ThresholdConfig struct {
	PriorityThreshold float64 `koanf:"priority_threshold"` // adoption % for critical gaps
	Similarity        float64 `koanf:"similarity"`         // fuzzy-match cutoff %
}

// PlansConfig controls development-plan output.
type PlansConfig struct {
	Dir       string `koanf:"dir"`
	WriteFile bool   `koanf:"write_file"`
}

// DataConfig points at an optional user-supplied market data file.
type DataConfig struct {
	LeadersFile string `koanf:"leaders_file"`
}

// OutputConfig controls output formatting.
type OutputConfig struct {
	Format  string `koanf:"format"` // text, json, markdown, toon
	Color   bool   `koanf:"color"`
	Verbose bool   `koanf:"verbose"`
}

// DefaultConfig returns a config with sensible defaults.
func DefaultConfig() *Config {
	return &Config{
		Defaults: DefaultsConfig{
			Category:       "saas",
			Budget:         "medium",
			Focus:          "all",
			MaxSuggestions: 5,
		},
		Thresholds: ThresholdConfig{
			PriorityThreshold: 70,
			Similarity:        80,
		},
		Plans: PlansConfig{
			Dir:       "plans",
			WriteFile: true,
		},
		Data: DataConfig{},
		Output: OutputConfig{
			Format:  "text",
			Color:   true,
			Verbose: false,
		},
	}
}

// Load loads configuration from a file.
func Load(path string) (*Config, error) {
	k := koanf.New(".")
	cfg := DefaultConfig()

	var parser koanf.Parser
	switch strings.ToLower(filepath.Ext(path)) {
	case ".toml":
		parser = toml.Parser()
	case ".yaml", ".yml":
		parser = yaml.Parser()
	case ".json":
		parser = json.Parser()
	default:
		parser = toml.Parser()
	}

	if err := k.Load(file.Provider(path), parser); err != nil {
		return nil, err
	}

	if err := k.Unmarshal("", cfg); err != nil {
		return nil, err
	}

	return cfg, nil
}

// LoadOrDefault tries to load config from standard locations or returns defaults.
func LoadOrDefault() *Config {
	configNames := []string{
		"vantage.toml",
		"vantage.yaml",
		"vantage.yml",
		"vantage.json",
		".vantage.toml",
		".vantage.yaml",
		".vantage.yml",
		".vantage.json",
	}

	searchDirs := []string{".", ".vantage"}

	for _, dir := range searchDirs {
		for _, name := range configNames {
			path := filepath.Join(dir, name)
			if _, err := os.Stat(path); err == nil {
				cfg, err := Load(path)
				if err == nil {
					return cfg
				}
			}
		}
	}

	return DefaultConfig()
}
