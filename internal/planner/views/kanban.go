package views

import "github.com/MarioCasanovacf/chambometro/internal/planner/entity"

// KanbanLane is one status column with its cards in roadmap order.
type KanbanLane struct {
	Status   string          `json:"status"`
	Features []PlacedFeature `json:"features"`
}

// Kanban groups the flattened feature set into the fixed status lanes, in
// lane order. A feature whose status is outside the known vocabulary simply
// does not appear in any lane.
func Kanban(r entity.Roadmap) []KanbanLane {
	byStatus := map[string][]PlacedFeature{}
	for _, f := range Flatten(r) {
		byStatus[f.DevStatus] = append(byStatus[f.DevStatus], f)
	}
	lanes := make([]KanbanLane, 0, len(entity.KanbanLanes))
	for _, status := range entity.KanbanLanes {
		features := byStatus[status]
		if features == nil {
			features = []PlacedFeature{}
		}
		lanes = append(lanes, KanbanLane{Status: status, Features: features})
	}
	return lanes
}
