package analyzer

import "github.com/nao1215/snykdup/internal/model"

// Duplicates is the two-level duplicate mapping: target key to project name
// to the projects sharing that name. Both levels preserve insertion order so
// iteration is deterministic.
//
// Design decision: Go maps have randomized iteration order, so we keep
// explicit key-order slices next to the maps. The spec-level requirement is
// "stable relative to fetch order", which this structure guarantees.
type Duplicates struct {
	// targetOrder holds target keys in first-seen order.
	targetOrder []string

	// byTarget maps target key to that target's name groups.
	byTarget map[string]*nameGroups
}

// nameGroups is the per-target grouping of projects by name.
type nameGroups struct {
	// nameOrder holds project names in first-seen order.
	nameOrder []string

	// byName maps project name to the projects sharing it, in fetch order.
	byName map[string][]model.ProjectInfo
}

// newDuplicates creates an empty Duplicates mapping.
func newDuplicates() *Duplicates {
	return &Duplicates{byTarget: make(map[string]*nameGroups)}
}

// add appends a project under (targetKey, projectName), creating the bucket
// and sub-group on first use.
func (d *Duplicates) add(targetKey, projectName string, info model.ProjectInfo) {
	groups, ok := d.byTarget[targetKey]
	if !ok {
		groups = &nameGroups{byName: make(map[string][]model.ProjectInfo)}
		d.byTarget[targetKey] = groups
		d.targetOrder = append(d.targetOrder, targetKey)
	}

	if _, ok := groups.byName[projectName]; !ok {
		groups.nameOrder = append(groups.nameOrder, projectName)
	}
	groups.byName[projectName] = append(groups.byName[projectName], info)
}

// prune removes sub-groups with fewer than two members, then target buckets
// left without any sub-group.
func (d *Duplicates) prune() {
	prunedTargets := d.targetOrder[:0]
	for _, targetKey := range d.targetOrder {
		groups := d.byTarget[targetKey]

		prunedNames := groups.nameOrder[:0]
		for _, name := range groups.nameOrder {
			if len(groups.byName[name]) >= 2 {
				prunedNames = append(prunedNames, name)
				continue
			}
			delete(groups.byName, name)
		}
		groups.nameOrder = prunedNames

		if len(groups.nameOrder) == 0 {
			delete(d.byTarget, targetKey)
			continue
		}
		prunedTargets = append(prunedTargets, targetKey)
	}
	d.targetOrder = prunedTargets
}

// Empty reports whether no duplicate group survived.
func (d *Duplicates) Empty() bool {
	return len(d.targetOrder) == 0
}

// TargetCount returns the number of targets with at least one duplicate group.
func (d *Duplicates) TargetCount() int {
	return len(d.targetOrder)
}

// Targets returns the target keys in first-seen order.
func (d *Duplicates) Targets() []string {
	return append([]string(nil), d.targetOrder...)
}

// ProjectNames returns the duplicated names of a target in first-seen order.
// It returns nil for an unknown target key.
func (d *Duplicates) ProjectNames(targetKey string) []string {
	groups, ok := d.byTarget[targetKey]
	if !ok {
		return nil
	}
	return append([]string(nil), groups.nameOrder...)
}

// Projects returns the projects sharing the given name under the given
// target, in fetch order. It returns nil for unknown keys.
func (d *Duplicates) Projects(targetKey, projectName string) []model.ProjectInfo {
	groups, ok := d.byTarget[targetKey]
	if !ok {
		return nil
	}
	return append([]model.ProjectInfo(nil), groups.byName[projectName]...)
}
