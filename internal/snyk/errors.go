package snyk

import "errors"

// Client errors.
var (
	// ErrNoToken is returned when a client is constructed without an API token.
	ErrNoToken = errors.New("snyk: API token must not be empty")

	// ErrInvalidBaseURL is returned when the base URL cannot be parsed into
	// an absolute http(s) URL.
	ErrInvalidBaseURL = errors.New("snyk: invalid base URL")

	// ErrUnexpectedStatus is returned when the API responds with a
	// non-success HTTP status. The wrapping error carries the status code
	// and a snippet of the response body.
	ErrUnexpectedStatus = errors.New("snyk: unexpected HTTP status")
)
