package service

import (
	"context"
	"time"

	"go.uber.org/zap"

	"github.com/MarioCasanovacf/chambometro/internal/planner/entity"
	"github.com/MarioCasanovacf/chambometro/internal/planner/repository"
	"github.com/MarioCasanovacf/chambometro/internal/planner/sse"
)

// Form defaults applied when the intake leaves a numeric field empty.
const (
	defaultEffortMin  = 10
	defaultEffortMax  = 20
	defaultImpact     = 5
	defaultComplexity = 5
)

// RoadmapService applies structural mutations to a project's roadmap: load
// the document, derive the next roadmap value, replace the document under the
// revision guard, announce the change.
type RoadmapService struct {
	projects *repository.ProjectRepository
	hub      *sse.Hub
	logger   *zap.Logger
}

func NewRoadmapService(projects *repository.ProjectRepository, hub *sse.Hub, logger *zap.Logger) *RoadmapService {
	return &RoadmapService{projects: projects, hub: hub, logger: logger}
}

// mutate runs one read-derive-replace cycle. revision 0 means "against
// whatever is current"; any other value must match the stored revision or the
// write is rejected.
func (s *RoadmapService) mutate(
	ctx context.Context,
	projectID string,
	revision int64,
	action string,
	derive func(entity.Roadmap) (entity.Roadmap, error),
) (*entity.Project, error) {
	project, err := s.projects.FindByID(ctx, projectID)
	if err != nil {
		return nil, err
	}
	readRevision := project.Revision
	if revision != 0 && revision != readRevision {
		return nil, repository.ErrRevisionConflict
	}

	next, err := derive(entity.Roadmap(project.Roadmap))
	if err != nil {
		return nil, err
	}
	project.Roadmap = entity.RoadmapDoc(next)

	if err := s.projects.Replace(ctx, project, readRevision); err != nil {
		return nil, err
	}
	s.logger.Info("roadmap mutated",
		zap.String("project_id", projectID),
		zap.String("action", action),
		zap.Int64("revision", project.Revision))
	s.hub.PublishProjectChange(projectID, action)
	return project, nil
}

// MoveFeature transfers a feature between versions (append semantics).
func (s *RoadmapService) MoveFeature(ctx context.Context, actor Actor, projectID string, revision int64, fromIdx int, featureID string, toIdx int) (*entity.Project, error) {
	return s.mutate(ctx, projectID, revision, "move_feature", func(r entity.Roadmap) (entity.Roadmap, error) {
		return r.MoveFeature(fromIdx, featureID, toIdx)
	})
}

// AddIdea creates a feature in the last version from the intake form fields,
// substituting the documented defaults for missing numbers.
func (s *RoadmapService) AddIdea(ctx context.Context, actor Actor, projectID string, revision int64, in entity.IdeaInput) (*entity.Project, error) {
	in = normalizeIdea(in)
	return s.mutate(ctx, projectID, revision, "add_idea", func(r entity.Roadmap) (entity.Roadmap, error) {
		return r.AddIdea(in, time.Now())
	})
}

// UpdateFeatureStatus sets a feature's development status within one version.
func (s *RoadmapService) UpdateFeatureStatus(ctx context.Context, actor Actor, projectID string, revision int64, versionIdx int, featureID, status string) (*entity.Project, error) {
	return s.mutate(ctx, projectID, revision, "update_status", func(r entity.Roadmap) (entity.Roadmap, error) {
		return r.UpdateFeatureStatus(versionIdx, featureID, status)
	})
}

// UpdateFeatureEisenhower classifies a feature into a quadrant or, with a nil
// quadrant, unclassifies it.
func (s *RoadmapService) UpdateFeatureEisenhower(ctx context.Context, actor Actor, projectID string, revision int64, featureID string, quadrant *int) (*entity.Project, error) {
	return s.mutate(ctx, projectID, revision, "update_eisenhower", func(r entity.Roadmap) (entity.Roadmap, error) {
		return r.UpdateFeatureEisenhower(featureID, quadrant)
	})
}

// UpdateFeatureDates sets both dates of a feature together.
func (s *RoadmapService) UpdateFeatureDates(ctx context.Context, actor Actor, projectID string, revision int64, versionIdx int, featureID, startDate, endDate string) (*entity.Project, error) {
	return s.mutate(ctx, projectID, revision, "update_dates", func(r entity.Roadmap) (entity.Roadmap, error) {
		return r.UpdateFeatureDates(versionIdx, featureID, startDate, endDate)
	})
}

// DeleteFeature removes a feature. Admin only.
func (s *RoadmapService) DeleteFeature(ctx context.Context, actor Actor, projectID string, revision int64, versionIdx int, featureID string) (*entity.Project, error) {
	if !actor.Admin {
		return nil, ErrForbidden
	}
	return s.mutate(ctx, projectID, revision, "delete_feature", func(r entity.Roadmap) (entity.Roadmap, error) {
		return r.DeleteFeature(versionIdx, featureID)
	})
}

// AddVersion appends a new bucket. Admin only.
func (s *RoadmapService) AddVersion(ctx context.Context, actor Actor, projectID string, revision int64, name, color string, limit int) (*entity.Project, error) {
	if !actor.Admin {
		return nil, ErrForbidden
	}
	return s.mutate(ctx, projectID, revision, "add_version", func(r entity.Roadmap) (entity.Roadmap, error) {
		return r.AddVersion(name, color, limit)
	})
}

// EditVersion patches a bucket's name/color/limit. Admin only.
func (s *RoadmapService) EditVersion(ctx context.Context, actor Actor, projectID string, revision int64, versionIdx int, patch entity.VersionPatch) (*entity.Project, error) {
	if !actor.Admin {
		return nil, ErrForbidden
	}
	return s.mutate(ctx, projectID, revision, "edit_version", func(r entity.Roadmap) (entity.Roadmap, error) {
		return r.EditVersion(versionIdx, patch)
	})
}

// DeleteVersion removes a bucket and all its features. Admin only; deleting
// the last remaining version is rejected by the core.
func (s *RoadmapService) DeleteVersion(ctx context.Context, actor Actor, projectID string, revision int64, versionIdx int) (*entity.Project, error) {
	if !actor.Admin {
		return nil, ErrForbidden
	}
	return s.mutate(ctx, projectID, revision, "delete_version", func(r entity.Roadmap) (entity.Roadmap, error) {
		return r.DeleteVersion(versionIdx)
	})
}

func normalizeIdea(in entity.IdeaInput) entity.IdeaInput {
	if in.EffortMin <= 0 {
		in.EffortMin = defaultEffortMin
	}
	if in.EffortMax <= 0 {
		in.EffortMax = defaultEffortMax
	}
	if in.EffortMax < in.EffortMin {
		in.EffortMax = in.EffortMin
	}
	if in.Impact <= 0 {
		in.Impact = defaultImpact
	}
	if in.Complexity <= 0 {
		in.Complexity = defaultComplexity
	}
	return in
}
