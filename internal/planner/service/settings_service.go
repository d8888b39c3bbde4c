package service

import (
	"context"

	"go.uber.org/zap"

	"github.com/MarioCasanovacf/chambometro/internal/planner/entity"
	"github.com/MarioCasanovacf/chambometro/internal/planner/repository"
	"github.com/MarioCasanovacf/chambometro/internal/planner/sse"
)

// SettingsService edits a project's financial configuration. Every operation
// replaces the settings document so the roadmap store's change detection by
// revision keeps working. All mutations are admin only.
type SettingsService struct {
	projects *repository.ProjectRepository
	hub      *sse.Hub
	logger   *zap.Logger
}

func NewSettingsService(projects *repository.ProjectRepository, hub *sse.Hub, logger *zap.Logger) *SettingsService {
	return &SettingsService{projects: projects, hub: hub, logger: logger}
}

// ComputedSettings is the settings document plus its derived totals, the
// shape the settings screen renders.
type ComputedSettings struct {
	entity.Settings
	CostPerDay float64 `json:"costPerDay"`
	BaseCogs   float64 `json:"baseCogs"`
}

// Get returns the settings with derived totals recomputed on this read.
func (s *SettingsService) Get(ctx context.Context, projectID string) (*ComputedSettings, error) {
	project, err := s.projects.FindByID(ctx, projectID)
	if err != nil {
		return nil, err
	}
	settings := entity.Settings(project.Settings)
	return &ComputedSettings{
		Settings:   settings,
		CostPerDay: entity.TotalOpex(settings),
		BaseCogs:   entity.TotalBaseCogs(settings),
	}, nil
}

func (s *SettingsService) mutate(
	ctx context.Context,
	actor Actor,
	projectID string,
	revision int64,
	action string,
	derive func(entity.Settings) (entity.Settings, error),
) (*entity.Project, error) {
	if !actor.Admin {
		return nil, ErrForbidden
	}
	project, err := s.projects.FindByID(ctx, projectID)
	if err != nil {
		return nil, err
	}
	readRevision := project.Revision
	if revision != 0 && revision != readRevision {
		return nil, repository.ErrRevisionConflict
	}

	next, err := derive(entity.Settings(project.Settings))
	if err != nil {
		return nil, err
	}
	project.Settings = entity.SettingsDoc(next)

	if err := s.projects.Replace(ctx, project, readRevision); err != nil {
		return nil, err
	}
	s.logger.Info("settings mutated",
		zap.String("project_id", projectID),
		zap.String("action", action))
	s.hub.PublishProjectChange(projectID, action)
	return project, nil
}

// AddCategory appends a cost line item to the opex or cogs pool.
func (s *SettingsService) AddCategory(ctx context.Context, actor Actor, projectID string, revision int64, kind, name string, amount float64) (*entity.Project, error) {
	return s.mutate(ctx, actor, projectID, revision, "add_category", func(st entity.Settings) (entity.Settings, error) {
		return st.AddCategory(kind, name, amount)
	})
}

// UpdateCategory renames or reprices a cost line item.
func (s *SettingsService) UpdateCategory(ctx context.Context, actor Actor, projectID string, revision int64, kind, id string, patch entity.CategoryPatch) (*entity.Project, error) {
	return s.mutate(ctx, actor, projectID, revision, "update_category", func(st entity.Settings) (entity.Settings, error) {
		return st.UpdateCategory(kind, id, patch)
	})
}

// RemoveCategory drops a cost line item.
func (s *SettingsService) RemoveCategory(ctx context.Context, actor Actor, projectID string, revision int64, kind, id string) (*entity.Project, error) {
	return s.mutate(ctx, actor, projectID, revision, "remove_category", func(st entity.Settings) (entity.Settings, error) {
		return st.RemoveCategory(kind, id)
	})
}

// SetCogsMultiplier replaces the complexity multiplier.
func (s *SettingsService) SetCogsMultiplier(ctx context.Context, actor Actor, projectID string, revision int64, value float64) (*entity.Project, error) {
	return s.mutate(ctx, actor, projectID, revision, "set_multiplier", func(st entity.Settings) (entity.Settings, error) {
		return st.SetCogsMultiplier(value), nil
	})
}
