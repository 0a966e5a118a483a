package analyzer

import "github.com/nao1215/snykdup/internal/model"

// ExtractProjectInfo flattens a raw project record and its resolved target
// into a ProjectInfo.
//
// Missing data degrades to defaults instead of failing: an absent name
// becomes model.UnknownProjectName, an unresolved target yields an empty
// target name, and absent type/origin attributes become empty strings.
// Each fallback is a deliberate contract so that grouping always succeeds.
func ExtractProjectInfo(project model.Project, targets map[string]model.Target) model.ProjectInfo {
	name := project.Attributes.Name
	if name == "" {
		name = model.UnknownProjectName
	}

	targetID := project.TargetID()

	targetName := ""
	if targetID != "" {
		if target, ok := targets[targetID]; ok {
			targetName = target.Attributes.DisplayName
		}
	}

	return model.ProjectInfo{
		ProjectID:   project.ID,
		ProjectName: name,
		TargetID:    targetID,
		TargetName:  targetName,
		ProjectType: project.Attributes.Type,
		Origin:      project.Attributes.Origin,
	}
}

// FindDuplicates groups projects by target, then by project name within each
// target, and returns only the groups with two or more members.
//
// Target buckets are keyed by ProjectInfo.TargetKey (display name, falling
// back to target ID, then "unknown"). Both grouping levels preserve fetch
// order, making the result deterministic for identical input.
func FindDuplicates(projects []model.Project, targets map[string]model.Target) *Duplicates {
	dups := newDuplicates()

	for _, project := range projects {
		info := ExtractProjectInfo(project, targets)
		dups.add(info.TargetKey(), info.ProjectName, info)
	}

	dups.prune()
	return dups
}
