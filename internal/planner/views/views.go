// Package views holds the read-only projections of a roadmap: quadrant
// classification, status lanes, time-axis layout and capacity accounting.
// Everything here is a pure derivation over the document; nothing mutates.
package views

import (
	"sort"

	"github.com/MarioCasanovacf/chambometro/internal/planner/entity"
)

// PlacedFeature is a feature annotated with the version that holds it, so a
// flattened projection can still route interactions back to the store.
type PlacedFeature struct {
	entity.Feature
	VersionIndex int    `json:"version_index"`
	VersionName  string `json:"version_name"`
}

// Flatten lists every feature of the roadmap in version order.
func Flatten(r entity.Roadmap) []PlacedFeature {
	out := make([]PlacedFeature, 0, r.FeatureCount())
	for vi, v := range r {
		for _, f := range v.Features {
			out = append(out, PlacedFeature{Feature: f, VersionIndex: vi, VersionName: v.Name})
		}
	}
	return out
}

// Assignees lists the distinct assignees of the roadmap, sorted, with the
// wildcard entry first. Feeds the Eisenhower filter dropdown.
func Assignees(r entity.Roadmap) []string {
	seen := map[string]bool{}
	var names []string
	for _, v := range r {
		for _, f := range v.Features {
			if f.Assignee != "" && !seen[f.Assignee] {
				seen[f.Assignee] = true
				names = append(names, f.Assignee)
			}
		}
	}
	sort.Strings(names)
	return append([]string{entity.AssigneeAll}, names...)
}
