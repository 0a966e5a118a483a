package report

import (
	"github.com/nao1215/snykdup/internal/analyzer"
	"github.com/nao1215/snykdup/internal/model"
)

// NewReport builds the final report from the duplicate mapping.
//
// Entries follow the mapping's iteration order, i.e. fetch order. The grand
// total counts individual project records participating in some duplicate
// group (the sum of all group sizes), not the number of groups.
//
// When the mapping is empty, the report degenerates to the org ID plus an
// empty duplicates_by_target list; the two count fields are omitted from the
// serialized form and readers must treat their absence as zero.
func NewReport(orgID string, dups *analyzer.Duplicates) *model.Report {
	report := &model.Report{
		OrgID:              orgID,
		DuplicatesByTarget: []model.TargetDuplicates{},
	}
	if dups.Empty() {
		return report
	}

	report.TotalTargetsWithDuplicates = dups.TargetCount()

	for _, targetKey := range dups.Targets() {
		targetGroup := model.TargetDuplicates{
			TargetName:            targetKey,
			DuplicateProjectNames: []model.DuplicateEntry{},
		}

		for _, name := range dups.ProjectNames(targetKey) {
			projects := dups.Projects(targetKey, name)
			report.TotalDuplicateProjects += len(projects)

			targetGroup.DuplicateProjectNames = append(targetGroup.DuplicateProjectNames, model.DuplicateEntry{
				ProjectName:    name,
				DuplicateCount: len(projects),
				Projects:       projects,
			})
		}

		report.DuplicatesByTarget = append(report.DuplicatesByTarget, targetGroup)
	}

	return report
}
