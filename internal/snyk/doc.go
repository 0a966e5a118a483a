// Package snyk provides a client for the Snyk REST API.
//
// The client covers the single surface this tool needs: enumerating all
// projects of an organization with ?expand=target, following the server's
// link-driven pagination until exhausted, and collecting the target records
// embedded in each response.
//
// Error handling follows a deliberate asymmetry: transport-level failures
// (connection errors, non-2xx statuses) are returned as errors and abort the
// run, while an "errors" array inside an otherwise successful response body
// is a soft stop — pagination halts, the payload is logged, and everything
// accumulated so far is still returned for analysis.
package snyk
