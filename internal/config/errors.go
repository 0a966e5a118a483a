package config

import "errors"

// Configuration validation errors.
// These errors are returned by Config.Validate() and provide specific
// information about what is wrong with the configuration.
//
// Design decision: We use package-level sentinel errors rather than
// creating new error instances in Validate(). This allows callers to use
// errors.Is() for programmatic error handling while still providing
// human-readable messages.
var (
	// ErrNoOrgID is returned when no organization ID is specified.
	ErrNoOrgID = errors.New("no organization ID specified")

	// ErrNoAPIToken is returned when no API token is available.
	// The token comes from the --api-token flag or the SNYK_TOKEN
	// environment variable; this error means both were empty.
	ErrNoAPIToken = errors.New("Snyk API token is required: provide via --api-token or the SNYK_TOKEN environment variable")

	// ErrInvalidPageLimit is returned when the page limit violates the API
	// contract: it must be a multiple of 10 and at least 10.
	ErrInvalidPageLimit = errors.New("invalid page limit: must be a multiple of 10 and at least 10")

	// ErrInvalidEndpoint is returned when the API endpoint is not an
	// absolute http(s) URL.
	ErrInvalidEndpoint = errors.New("invalid endpoint: must be an absolute http(s) URL")
)
