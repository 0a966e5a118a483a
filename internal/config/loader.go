package config

import (
	"errors"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// DefaultConfigFile is the default configuration file name.
const DefaultConfigFile = ".snykdup"

// ErrConfigNotFound is returned when the configuration file does not exist.
var ErrConfigNotFound = errors.New("configuration file not found")

// File represents the structure of the .snykdup configuration file.
// It carries API connection overrides so users of regional Snyk endpoints
// do not have to repeat flags on every invocation. Flag values always win
// over file values; file values win over built-in defaults.
type File struct {
	// Endpoint overrides the REST API base URL.
	Endpoint string `yaml:"endpoint,omitempty"`

	// APIVersion overrides the REST API version date.
	APIVersion string `yaml:"api_version,omitempty"`

	// Limit overrides the page size for the projects collection.
	Limit int `yaml:"limit,omitempty"`
}

// LoadConfigFile loads API connection overrides from a YAML file.
// If the file does not exist, it returns ErrConfigNotFound.
// Callers should handle this error appropriately based on whether
// the config file path was explicitly specified by the user.
func LoadConfigFile(path string) (*File, error) {
	data, err := os.ReadFile(path) //nolint:gosec // User-provided config path is intentional
	if err != nil {
		if os.IsNotExist(err) {
			return nil, ErrConfigNotFound
		}
		return nil, err
	}

	var cf File
	if err := yaml.Unmarshal(data, &cf); err != nil {
		return nil, err
	}
	return &cf, nil
}

// FindConfigFile searches for the configuration file in the following order:
// 1. If configPath is specified, use it directly
// 2. Look for .snykdup in the current directory
// 3. Look for .snykdup in the user's home directory
// 4. Look for .snykdup in the XDG config directory
//
// Returns the path to the configuration file if found, or empty string if not found.
func FindConfigFile(configPath string) string {
	// If explicit path is provided, use it
	if configPath != "" {
		if _, err := os.Stat(configPath); err == nil {
			return configPath
		}
		return ""
	}

	// Check current directory
	cwd, err := os.Getwd()
	if err == nil {
		cwdConfig := filepath.Join(cwd, DefaultConfigFile)
		if _, err := os.Stat(cwdConfig); err == nil {
			return cwdConfig
		}
	}

	// Check home directory
	home, err := os.UserHomeDir()
	if err == nil {
		homeConfig := filepath.Join(home, DefaultConfigFile)
		if _, err := os.Stat(homeConfig); err == nil {
			return homeConfig
		}
	}

	// Check XDG config directory
	xdgConfig := filepath.Join(XDGConfigDir(), DefaultConfigFile)
	if _, err := os.Stat(xdgConfig); err == nil {
		return xdgConfig
	}

	return ""
}

// Apply copies the file's non-zero overrides onto the configuration.
// Flag-level overrides must be applied after this call to keep the
// flags > file > defaults precedence.
func (cf *File) Apply(cfg *Config) {
	if cf.Endpoint != "" {
		cfg.Endpoint = cf.Endpoint
	}
	if cf.APIVersion != "" {
		cfg.APIVersion = cf.APIVersion
	}
	if cf.Limit != 0 {
		cfg.PageLimit = cf.Limit
	}
}
