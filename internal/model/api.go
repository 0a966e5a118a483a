package model

// TargetResourceType is the JSON:API type tag of target records in the
// "included" section of a projects response.
const TargetResourceType = "target"

// ProjectsPage is one page of the paginated projects collection as returned
// by GET /orgs/{org_id}/projects.
//
// The Snyk REST API follows the JSON:API convention: the projects themselves
// are in Data, related resources requested via ?expand= are in Included, and
// pagination is driven by Links.Next. A response may carry an Errors array
// even when the transport-level status is successful; callers must check it.
type ProjectsPage struct {
	// Data holds the project records on this page.
	Data []Project `json:"data"`

	// Included holds related resources embedded in the response.
	// With ?expand=target this contains the target records the projects
	// on this page reference.
	Included []Target `json:"included,omitempty"`

	// Links holds pagination links. Links.Next is empty on the last page.
	Links PageLinks `json:"links,omitempty"`

	// Errors holds API-level error objects. A non-empty Errors array on an
	// otherwise successful response means the server could not fully satisfy
	// the request.
	Errors []APIError `json:"errors,omitempty"`
}

// PageLinks holds the pagination links of a collection response.
type PageLinks struct {
	// Next is the URL of the next page. It may be relative (starting with
	// "/") or absolute, and already encodes all query parameters.
	// Empty when there are no more pages.
	Next string `json:"next,omitempty"`
}

// APIError is a single JSON:API error object.
type APIError struct {
	// Status is the HTTP status code as a string (e.g. "400").
	Status string `json:"status,omitempty"`

	// Code is a machine-readable error code.
	Code string `json:"code,omitempty"`

	// Title is a short, human-readable summary of the problem.
	Title string `json:"title,omitempty"`

	// Detail is a human-readable explanation specific to this occurrence.
	Detail string `json:"detail,omitempty"`
}

// Project is a raw project record as returned by the API.
// Projects are immutable once fetched; all derived views are built from
// ProjectInfo, never by mutating these records.
type Project struct {
	// ID is the project identifier.
	ID string `json:"id"`

	// Attributes holds the project's descriptive attributes.
	Attributes ProjectAttributes `json:"attributes"`

	// Relationships holds references to related resources.
	Relationships ProjectRelationships `json:"relationships"`
}

// ProjectAttributes holds the descriptive attributes of a project.
type ProjectAttributes struct {
	// Name is the project's display name.
	Name string `json:"name"`

	// Type is the project classification (e.g. "npm", "dockerfile").
	Type string `json:"type"`

	// Origin is the integration source (e.g. "github", "cli").
	Origin string `json:"origin"`
}

// ProjectRelationships holds a project's references to related resources.
type ProjectRelationships struct {
	// Target references the scanned repository this project monitors.
	Target TargetRelationship `json:"target"`
}

// TargetRelationship is the relationship wrapper around a target reference.
type TargetRelationship struct {
	// Data identifies the related target.
	Data RelationshipData `json:"data"`
}

// RelationshipData identifies a related resource by ID.
type RelationshipData struct {
	// ID is the identifier of the related resource.
	ID string `json:"id"`
}

// Target is a raw target record from the "included" section of a response.
// A target represents the scanned repository/codebase; many projects may
// reference the same target.
type Target struct {
	// ID is the target identifier.
	ID string `json:"id"`

	// Type is the JSON:API resource type ("target" for target records).
	Type string `json:"type"`

	// Attributes holds the target's descriptive attributes.
	Attributes TargetAttributes `json:"attributes"`
}

// TargetAttributes holds the descriptive attributes of a target.
type TargetAttributes struct {
	// DisplayName is the human-readable name of the target,
	// typically "owner/repository".
	DisplayName string `json:"display_name"`
}

// TargetID returns the identifier of the project's target, or the empty
// string when the project carries no target reference.
func (p Project) TargetID() string {
	return p.Relationships.Target.Data.ID
}
