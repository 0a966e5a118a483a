// Package log provides secure logging functionality with automatic
// sanitization of credentials, built on top of the standard slog package.
//
// snykdup handles a Snyk API token on every request. The SecureHandler
// guarantees the token (and anything that looks like one) never reaches the
// diagnostic stream, even in verbose mode:
//   - Attribute keys that name credentials (token, authorization, api_key)
//     have their values masked
//   - String values matching token patterns are masked regardless of key
//
// The handler wraps any underlying slog.Handler, so it composes with the
// text handler used for stderr diagnostics.
package log
