package config

import (
	"os"
	"strconv"
	"strings"

	"districtmap/internal/errors"
)

const (
	DefaultInputFile  = "Indiana House Districts by County.xlsx"
	DefaultOutputFile = "district_data.json"
)

// Config represents the complete application configuration
type Config struct {
	Paths  PathConfig
	Output OutputConfig
	Server ServerConfig
}

// PathConfig holds file system paths
type PathConfig struct {
	InputFile  string
	OutputFile string
	SheetName  string // empty selects the first sheet
}

// OutputConfig controls JSON rendering
type OutputConfig struct {
	Indent string
}

// ServerConfig holds preview server settings
type ServerConfig struct {
	Port    int
	GinMode string
}

// Load reads configuration from environment variables and validates it
func Load() (*Config, error) {
	config := &Config{
		Paths:  *loadPathConfig(),
		Output: *loadOutputConfig(),
		Server: *loadServerConfig(),
	}

	if err := config.Validate(); err != nil {
		return nil, errors.Wrap(err, "configuration validation failed")
	}

	return config, nil
}

// WithArgs applies positional [input] [output] arguments over the loaded paths
func (c *Config) WithArgs(args []string) *Config {
	if len(args) > 0 && args[0] != "" {
		c.Paths.InputFile = args[0]
	}
	if len(args) > 1 && args[1] != "" {
		c.Paths.OutputFile = args[1]
	}
	return c
}

// Validate checks required fields
func (c *Config) Validate() error {
	if c.Paths.InputFile == "" {
		return errors.ConfigInvalid("input file path is required")
	}
	if c.Paths.OutputFile == "" {
		return errors.ConfigInvalid("output file path is required")
	}
	return nil
}

// Validate checks the preview server settings. Only the serve command needs them.
func (s ServerConfig) Validate() error {
	if s.Port <= 0 || s.Port > 65535 {
		return errors.ConfigInvalid("server port must be between 1 and 65535")
	}
	return nil
}

func loadPathConfig() *PathConfig {
	return &PathConfig{
		InputFile:  getEnvOrDefault("DISTRICTMAP_INPUT", DefaultInputFile),
		OutputFile: getEnvOrDefault("DISTRICTMAP_OUTPUT", DefaultOutputFile),
		SheetName:  getEnvOrDefault("DISTRICTMAP_SHEET", ""),
	}
}

func loadOutputConfig() *OutputConfig {
	indent := "  "
	if n := getEnvIntOrDefault("DISTRICTMAP_INDENT", -1); n >= 0 {
		indent = strings.Repeat(" ", n)
	}
	return &OutputConfig{Indent: indent}
}

func loadServerConfig() *ServerConfig {
	return &ServerConfig{
		Port:    getEnvIntOrDefault("DISTRICTMAP_SERVE_PORT", 8080),
		GinMode: getEnvOrDefault("GIN_MODE", "release"),
	}
}

// Helper functions for environment variable parsing
func getEnvOrDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvIntOrDefault(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if intValue, err := strconv.Atoi(value); err == nil {
			return intValue
		}
	}
	return defaultValue
}
