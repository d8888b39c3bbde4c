package service

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"github.com/MarioCasanovacf/chambometro/internal/config"
	"github.com/MarioCasanovacf/chambometro/internal/planner/entity"
	"github.com/MarioCasanovacf/chambometro/internal/planner/repository"
	"github.com/MarioCasanovacf/chambometro/internal/planner/sse"
)

// ProjectService is the portfolio registry: project CRUD plus per-user
// active-project selection. New projects clone the configured default
// settings and start with the canonical three-bucket roadmap.
type ProjectService struct {
	projects   *repository.ProjectRepository
	selections *repository.SelectionRepository
	hub        *sse.Hub
	defaults   config.DefaultsConfig
	logger     *zap.Logger
}

func NewProjectService(
	projects *repository.ProjectRepository,
	selections *repository.SelectionRepository,
	hub *sse.Hub,
	cfg *config.Config,
	logger *zap.Logger,
) *ProjectService {
	return &ProjectService{
		projects:   projects,
		selections: selections,
		hub:        hub,
		defaults:   cfg.Defaults,
		logger:     logger,
	}
}

// List returns the whole portfolio.
func (s *ProjectService) List(ctx context.Context) ([]entity.Project, error) {
	projects, err := s.projects.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list projects: %w", err)
	}
	return projects, nil
}

// Get loads one project document.
func (s *ProjectService) Get(ctx context.Context, id string) (*entity.Project, error) {
	return s.projects.FindByID(ctx, id)
}

// Create registers a new project with cloned default settings and the
// baseline roadmap. Admin only.
func (s *ProjectService) Create(ctx context.Context, actor Actor, name string) (*entity.Project, error) {
	if !actor.Admin {
		return nil, ErrForbidden
	}
	if name == "" {
		return nil, entity.ErrBlankTitle
	}
	project := &entity.Project{
		ID:   entity.NewID(),
		Name: name,
		Settings: entity.SettingsDoc(entity.DefaultSettings(
			s.defaults.CostPerDay, s.defaults.BaseCogs, s.defaults.CogsMultiplier)),
		Roadmap:   entity.RoadmapDoc(entity.DefaultRoadmap()),
		Revision:  1,
		CreatedBy: actor.UserID,
	}
	if err := s.projects.Create(ctx, project); err != nil {
		return nil, fmt.Errorf("create project: %w", err)
	}
	s.logger.Info("project created",
		zap.String("project_id", project.ID),
		zap.String("name", name),
		zap.String("user_id", actor.UserID))
	s.hub.PublishPortfolioChange(project.ID, "created")
	return project, nil
}

// Delete removes a project and clears every active selection pointing at it.
// Admin only.
func (s *ProjectService) Delete(ctx context.Context, actor Actor, id string) error {
	if !actor.Admin {
		return ErrForbidden
	}
	if err := s.projects.Delete(ctx, id); err != nil {
		return err
	}
	if err := s.selections.ClearProject(ctx, id); err != nil {
		s.logger.Warn("clearing selections after delete failed",
			zap.String("project_id", id), zap.Error(err))
	}
	s.logger.Info("project deleted",
		zap.String("project_id", id),
		zap.String("user_id", actor.UserID))
	s.hub.PublishPortfolioChange(id, "deleted")
	return nil
}

// SelectActive records the caller's active project after checking it exists.
func (s *ProjectService) SelectActive(ctx context.Context, actor Actor, projectID string) error {
	if _, err := s.projects.FindByID(ctx, projectID); err != nil {
		return err
	}
	return s.selections.Set(ctx, actor.UserID, projectID)
}

// ActiveProject resolves the caller's active project. A stale selection
// (deleted project) is cleared and reported as not found.
func (s *ProjectService) ActiveProject(ctx context.Context, actor Actor) (*entity.Project, error) {
	id, err := s.selections.Get(ctx, actor.UserID)
	if err != nil {
		return nil, err
	}
	project, err := s.projects.FindByID(ctx, id)
	if err != nil {
		if err == repository.ErrNotFound {
			s.selections.Clear(ctx, actor.UserID)
		}
		return nil, err
	}
	return project, nil
}

// SeedDemo inserts the sample portfolio when the registry is empty, so a
// fresh install boots with data to look at.
func (s *ProjectService) SeedDemo(ctx context.Context) error {
	n, err := s.projects.Count(ctx)
	if err != nil {
		return err
	}
	if n > 0 {
		return nil
	}
	demo := entity.DemoProject(entity.DefaultSettings(
		s.defaults.CostPerDay, s.defaults.BaseCogs, s.defaults.CogsMultiplier))
	if err := s.projects.Create(ctx, demo); err != nil {
		return fmt.Errorf("seed demo project: %w", err)
	}
	s.logger.Info("seeded demo project", zap.String("project_id", demo.ID))
	return nil
}
