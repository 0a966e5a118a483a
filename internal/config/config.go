package config

import (
	"net/url"
	"os"
	"path/filepath"

	"github.com/adrg/xdg"
)

// Default configuration values.
// These match the Snyk REST API contract for the projects collection.
const (
	// DefaultEndpoint is the Snyk REST API base URL. The EU region is the
	// default; other regions can be selected via the --endpoint flag or the
	// configuration file.
	DefaultEndpoint = "https://api.eu.snyk.io/rest"

	// DefaultAPIVersion is the REST API version date sent with every request.
	DefaultAPIVersion = "2025-11-05"

	// DefaultPageLimit is the page size for the projects collection.
	// 100 is the maximum the API accepts; the value must be a multiple of 10
	// and at least 10.
	DefaultPageLimit = 100

	// EnvAPIToken is the environment variable consulted for the API token
	// when the --api-token flag is not given.
	EnvAPIToken = "SNYK_TOKEN"

	// AppName is the application name used for XDG directory paths.
	AppName = "snykdup"
)

// Config holds all configuration options for snykdup.
// This struct is populated from CLI flags and the optional configuration
// file, then passed through the application via dependency injection rather
// than global state.
//
// Design decision: We use a single flat struct instead of nested structs
// because the number of options is small. If the configuration grows
// significantly, consider refactoring into sub-structs.
type Config struct {
	// OrgID is the Snyk organization to scan for duplicate projects.
	OrgID string

	// APIToken is the Snyk API token used as the bearer credential.
	// Resolved from the --api-token flag, falling back to EnvAPIToken.
	APIToken string

	// Endpoint is the REST API base URL (scheme, host, and base path).
	Endpoint string

	// APIVersion is the REST API version date (e.g. "2025-11-05").
	APIVersion string

	// PageLimit is the page size used when fetching the projects collection.
	// Must be a multiple of 10 and at least 10.
	PageLimit int

	// Markdown enables Markdown report output instead of the default JSON.
	Markdown bool

	// OutputFile is the output file path for the report.
	// When empty, the report is written to stdout.
	OutputFile string

	// ConfigFilePath is the path to the configuration file.
	// If empty, the tool searches for .snykdup in the current directory,
	// then the home directory, then the XDG config directory.
	ConfigFilePath string

	// Verbose enables detailed log output using slog.LevelDebug.
	// When false, progress and warnings are still logged at Info level
	// so that pagination progress remains visible on stderr.
	Verbose bool
}

// NewConfig creates a new Config with default values.
// Users can override specific values after creation.
func NewConfig() *Config {
	return &Config{
		Endpoint:   DefaultEndpoint,
		APIVersion: DefaultAPIVersion,
		PageLimit:  DefaultPageLimit,
	}
}

// ResolveToken returns the API token to use: the explicitly provided flag
// value if non-empty, otherwise the EnvAPIToken environment variable.
func ResolveToken(flagValue string) string {
	if flagValue != "" {
		return flagValue
	}
	return os.Getenv(EnvAPIToken)
}

// Validate checks if the configuration is valid.
// It returns the first problem found as one of the package sentinel errors.
func (c *Config) Validate() error {
	if c.OrgID == "" {
		return ErrNoOrgID
	}
	if c.APIToken == "" {
		return ErrNoAPIToken
	}
	if c.PageLimit < 10 || c.PageLimit%10 != 0 {
		return ErrInvalidPageLimit
	}
	u, err := url.Parse(c.Endpoint)
	if err != nil || u.Host == "" || (u.Scheme != "http" && u.Scheme != "https") {
		return ErrInvalidEndpoint
	}
	return nil
}

// XDGConfigDir returns the XDG config directory for snykdup.
// This follows the XDG Base Directory Specification.
// On Linux: ~/.config/snykdup
// On macOS: ~/Library/Application Support/snykdup
// On Windows: %APPDATA%\snykdup
func XDGConfigDir() string {
	return filepath.Join(xdg.ConfigHome, AppName)
}
