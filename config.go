package weirdness

import (
	"os"

	"gopkg.in/yaml.v3"
)

// Config carries user-supplied additions to the built-in pattern sets.
type Config struct {
	ExtraMojibake []string `yaml:"extra_mojibake"`
	ExtraSymbols  []string `yaml:"extra_symbols"`
}

// DefaultConfig is used by New when options don't specify extra patterns.
var DefaultConfig Config

// NewConfig reads config from file
func NewConfig(filePath string) (*Config, error) {
	bin, err := os.ReadFile(filePath)
	if err != nil {
		return nil, err
	}
	var cfg Config
	if err = yaml.Unmarshal(bin, &cfg); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// GenerateSample creates a sample yaml file with example values
func GenerateSample(filePath string) error {
	cfg := Config{
		// the UTF-8 byte order mark read through Windows-1252
		ExtraMojibake: []string{"ï»¿"},
		ExtraSymbols:  []string{"€"},
	}
	bin, err := yaml.Marshal(cfg)
	if err != nil {
		return err
	}
	return os.WriteFile(filePath, bin, 0644)
}
