package model

// UnknownProjectName is the placeholder name for projects whose API record
// carries no name attribute.
const UnknownProjectName = "Unknown"

// UnknownTargetKey is the grouping key for projects whose target has neither
// a resolvable display name nor an identifier.
const UnknownTargetKey = "unknown"

// ProjectInfo is the flattened view of a project combined with its resolved
// target. It is the unit the analyzer groups and the report lists.
//
// Missing source fields degrade to defaults rather than errors: the project
// name falls back to UnknownProjectName, everything else to the empty string.
type ProjectInfo struct {
	// ProjectID is the project identifier.
	ProjectID string `json:"project_id"`

	// ProjectName is the project's display name.
	ProjectName string `json:"project_name"`

	// TargetID is the identifier of the project's target.
	// Empty when the project carries no target reference.
	TargetID string `json:"target_id"`

	// TargetName is the display name of the resolved target.
	// Empty when the target could not be resolved or has no display name.
	TargetName string `json:"target_name"`

	// ProjectType is the project classification.
	ProjectType string `json:"project_type"`

	// Origin is the integration source of the project.
	Origin string `json:"origin"`
}

// TargetKey returns the grouping key for the target bucket this project
// belongs to: the target display name, else the target identifier, else
// UnknownTargetKey.
func (p ProjectInfo) TargetKey() string {
	if p.TargetName != "" {
		return p.TargetName
	}
	if p.TargetID != "" {
		return p.TargetID
	}
	return UnknownTargetKey
}

// Report is the final duplicate report for one organization.
//
// The two count fields use omitempty so that the degenerate no-duplicates
// report serializes exactly as {org_id, duplicates_by_target: []}. They can
// only be zero in the degenerate case: whenever any duplicate group exists,
// both counts are at least one.
type Report struct {
	// OrgID is the organization identifier, verbatim as given.
	OrgID string `json:"org_id"`

	// TotalTargetsWithDuplicates is the number of targets with at least one
	// duplicate-name group.
	TotalTargetsWithDuplicates int `json:"total_targets_with_duplicates,omitempty"`

	// DuplicatesByTarget lists per-target duplicate summaries in grouping
	// order. Always non-nil so it serializes as [] when empty.
	DuplicatesByTarget []TargetDuplicates `json:"duplicates_by_target"`

	// TotalDuplicateProjects is the total number of individual project
	// records participating in some duplicate group (the sum of all group
	// sizes, not the number of groups).
	TotalDuplicateProjects int `json:"total_duplicate_projects,omitempty"`
}

// TargetDuplicates summarizes the duplicate-name groups of one target.
type TargetDuplicates struct {
	// TargetName is the grouping key of this target bucket (display name,
	// identifier, or "unknown").
	TargetName string `json:"target_name"`

	// DuplicateProjectNames lists the duplicated names within this target.
	DuplicateProjectNames []DuplicateEntry `json:"duplicate_project_names"`
}

// DuplicateEntry is one duplicated project name and its members.
// Invariant: DuplicateCount == len(Projects) and is always >= 2.
type DuplicateEntry struct {
	// ProjectName is the shared project name.
	ProjectName string `json:"project_name"`

	// DuplicateCount is the number of projects sharing the name.
	DuplicateCount int `json:"duplicate_count"`

	// Projects lists every project sharing the name, in fetch order.
	Projects []ProjectInfo `json:"projects"`
}

// HasDuplicates reports whether the report contains any duplicate group.
func (r *Report) HasDuplicates() bool {
	return len(r.DuplicatesByTarget) > 0
}
