package views

import "github.com/MarioCasanovacf/chambometro/internal/planner/entity"

// VersionLoad is the capacity account of one roadmap bucket. UsedEffort is
// the minimum-effort sum the executive matrix tracks; the min/max totals feed
// the operational roadmap's range bar. This is a read-side alert only, it
// never blocks a mutation.
type VersionLoad struct {
	VersionIndex   int    `json:"version_index"`
	VersionID      string `json:"version_id"`
	Name           string `json:"name"`
	Color          string `json:"color"`
	Limit          int    `json:"limit"`
	UsedEffort     int    `json:"used_effort"`
	EffortMinTotal int    `json:"effort_min_total"`
	EffortMaxTotal int    `json:"effort_max_total"`
	Overloaded     bool   `json:"overloaded"`
	OverloadAmount int    `json:"overload_amount"`
	FeatureCount   int    `json:"feature_count"`
}

// Capacity reports the effort load of every version against its limit.
// A version is overloaded when the minimum-effort sum strictly exceeds the
// limit; a load exactly at the limit is fine.
func Capacity(r entity.Roadmap) []VersionLoad {
	loads := make([]VersionLoad, 0, len(r))
	for vi, v := range r {
		load := VersionLoad{
			VersionIndex: vi,
			VersionID:    v.ID,
			Name:         v.Name,
			Color:        v.Color,
			Limit:        v.Limit,
			FeatureCount: len(v.Features),
		}
		for _, f := range v.Features {
			load.UsedEffort += f.EffortMin
			load.EffortMinTotal += f.EffortMin
			load.EffortMaxTotal += f.EffortMax
		}
		if load.UsedEffort > v.Limit {
			load.Overloaded = true
			load.OverloadAmount = load.UsedEffort - v.Limit
		}
		loads = append(loads, load)
	}
	return loads
}
