// Package analyzer groups fetched projects and detects duplicates.
//
// A duplicate is two or more projects under the same target sharing an
// identical project name — a signal of accidental double onboarding of the
// same repository. The analyzer flattens raw API records into ProjectInfo,
// buckets them by target, sub-groups each bucket by project name, and keeps
// only the groups with at least two members.
//
// Grouping is a pure function of input order and content: both grouping
// levels preserve fetch order, so the same input always yields byte-identical
// report output.
package analyzer
