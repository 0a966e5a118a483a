// Package model defines the core data structures used throughout snykdup.
//
// This package contains the following main types:
//   - Project, Target: raw JSON:API records as returned by the Snyk REST API
//   - ProjectsPage: one page of the paginated projects collection
//   - ProjectInfo: the flattened project view used for grouping and reporting
//   - Report: the final duplicate report emitted to the user
//
// Design decision: We separate models into their own package to avoid circular
// dependencies. Multiple packages (snyk, analyzer, report) need to use these
// types, so centralizing them prevents import cycles.
//
// The models are designed to be serializable to JSON for report output.
package model
