package views

import "github.com/MarioCasanovacf/chambometro/internal/planner/entity"

// EisenhowerBoard partitions the flattened feature set into the four priority
// quadrants plus the unclassified pool.
type EisenhowerBoard struct {
	Quadrants    map[int][]PlacedFeature `json:"quadrants"`
	Unclassified []PlacedFeature         `json:"unclassified"`
	Assignee     string                  `json:"assignee"`
}

// Eisenhower buckets features by their quadrant field. The assignee filter is
// applied before bucketing; entity.AssigneeAll (or empty) means no filter.
// Bucket membership is a pure function of Feature.Eisenhower, so moving a card
// between quadrants must go through the store's quadrant update, never a local
// re-render.
func Eisenhower(r entity.Roadmap, assignee string) EisenhowerBoard {
	board := EisenhowerBoard{
		Quadrants: map[int][]PlacedFeature{
			entity.QuadrantDoNow:    {},
			entity.QuadrantPlan:     {},
			entity.QuadrantDelegate: {},
			entity.QuadrantDrop:     {},
		},
		Unclassified: []PlacedFeature{},
		Assignee:     assignee,
	}
	if assignee == "" {
		board.Assignee = entity.AssigneeAll
	}
	for _, f := range Flatten(r) {
		if assignee != "" && assignee != entity.AssigneeAll && f.Assignee != assignee {
			continue
		}
		if f.Eisenhower == nil {
			board.Unclassified = append(board.Unclassified, f)
			continue
		}
		q := *f.Eisenhower
		if q < entity.QuadrantDoNow || q > entity.QuadrantDrop {
			board.Unclassified = append(board.Unclassified, f)
			continue
		}
		board.Quadrants[q] = append(board.Quadrants[q], f)
	}
	return board
}
