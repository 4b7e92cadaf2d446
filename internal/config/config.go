package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Config represents the top-level statline.yaml configuration.
type Config struct {
	Business BusinessConfig `yaml:"business"`
	Data     DataConfig     `yaml:"data"`
	Report   ReportConfig   `yaml:"report"`
}

// BusinessConfig identifies the business entity.
type BusinessConfig struct {
	Name string `yaml:"name"`
}

// DataConfig locates the GL data files and controls the loader cache.
type DataConfig struct {
	Dir             string `yaml:"dir"`
	CacheTTLSeconds int    `yaml:"cache_ttl_seconds"`
}

// ReportConfig holds rendering defaults for the statement CLI.
type ReportConfig struct {
	DetailLevel             string `yaml:"detail_level"`
	Comparison              string `yaml:"comparison"`
	MarkCurrentMonthPartial bool   `yaml:"mark_current_month_partial"`
}

// Load reads a statline.yaml file from disk.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading config: %w", err)
	}
	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("parsing config: %w", err)
	}
	return &cfg, nil
}

// Save writes a Config to a YAML file.
func Save(path string, cfg *Config) error {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("marshaling config: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("writing config: %w", err)
	}
	return nil
}

// Default returns a Config with sensible defaults for a new project.
func Default(businessName string) *Config {
	return &Config{
		Business: BusinessConfig{
			Name: businessName,
		},
		Data: DataConfig{
			Dir:             "data",
			CacheTTLSeconds: 300,
		},
		Report: ReportConfig{
			DetailLevel:             "account",
			Comparison:              "none",
			MarkCurrentMonthPartial: true,
		},
	}
}
