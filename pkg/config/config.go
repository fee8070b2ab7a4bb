package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

var global *Config

// Config represents the overall application configuration, which includes
// logging, the server settings shared by every managed service, and
// observability settings.
type Config struct {
	// Logger holds the configuration for the logging system, including log level and environment.
	Logger Logger `yaml:"logger"`

	// Server holds the host/port settings handed to every service instance.
	Server Server `yaml:"server"`

	// Observability holds all configurations related to metrics and tracing.
	Observability Observability `yaml:"observability"`
}

// Validate checks the integrity of the loaded configuration.
//
// Example usage:
//
//	if err := config.Validate(); err != nil {
//	    log.Fatalf("Invalid configuration: %v", err)
//	}
func (c Config) Validate() error {
	return c.Server.Validate()
}

// LoadConfig loads the configuration from a YAML file into the Config struct.
// This function reads the specified YAML configuration file and unmarshals it
// into a Config struct, enabling structured access to configuration settings.
//
// Example usage:
//
//	config, err := LoadConfig("/path/to/config.yaml")
//	if err != nil {
//	    log.Fatalf("Failed to load config: %v", err)
//	}
func LoadConfig(filename string) (*Config, error) {
	// Read the configuration file
	data, err := os.ReadFile(filename)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	// Unmarshal the YAML data into the Config struct
	var rawConfig Config
	err = yaml.Unmarshal(data, &rawConfig)
	if err != nil {
		return nil, fmt.Errorf("failed to unmarshal yaml: %w", err)
	}

	if err = rawConfig.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return &rawConfig, nil
}

func G() *Config {
	return global
}

func InitializeGlobalConfig(filename string) (*Config, error) {
	rawConfig, err := LoadConfig(filename)
	if err != nil {
		return nil, err
	}
	global = rawConfig
	return rawConfig, nil
}
