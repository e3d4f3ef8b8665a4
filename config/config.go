package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/iamNilotpal/checksum/internal/adapters/digest"
	"github.com/iamNilotpal/checksum/internal/core/domain"
)

type Config struct {
	Checksum ChecksumConfig `yaml:"checksum"`
}

// Holds checksum-specific configuration.
type ChecksumConfig struct {
	DefaultAlgorithm string `yaml:"default_algorithm"` // Algorithm used when none is given on the command line
	Lowercase        bool   `yaml:"lowercase"`         // Render digests with the lowercase alphabet
}

// Returns a Config struct with reasonable default values.
func DefaultConfig() *Config {
	return &Config{
		Checksum: ChecksumConfig{
			DefaultAlgorithm: string(digest.SHA1),
			Lowercase:        false,
		},
	}
}

// Loads configuration from a YAML file.
func LoadConfig(filename string) (*Config, error) {
	// Read the config file
	data, err := os.ReadFile(filename)
	if err != nil {
		return nil, fmt.Errorf("error reading config file: %w", err)
	}

	// Initialize a new Config struct
	var config Config

	if err := yaml.Unmarshal(data, &config); err != nil {
		return nil, fmt.Errorf("error parsing config file: %w", err)
	}

	if config.Checksum.DefaultAlgorithm == "" {
		config.Checksum.DefaultAlgorithm = string(digest.SHA1)
	}

	if err := validateConfig(&config); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return &config, nil
}

func validateConfig(config *Config) error {
	if _, err := digest.Resolve(domain.ChecksumAlgorithm(config.Checksum.DefaultAlgorithm)); err != nil {
		return fmt.Errorf("default_algorithm: %w", err)
	}
	return nil
}
