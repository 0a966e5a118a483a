// Package main provides the entry point for the snykdup CLI.
//
// snykdup finds duplicate Snyk projects in an organization: projects that
// share the same name under the same scanned target (repository), a signal
// of accidental duplicate onboarding.
//
// Usage:
//
//	snykdup scan <org-id>
//	snykdup scan --markdown -o report.md <org-id>
//
// See --help for all available options.
package main

// main is the entry point for snykdup.
func main() {
	Execute()
}
