package repository

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"

	"github.com/MarioCasanovacf/chambometro/internal/planner/entity"
)

const projectCacheTTL = 5 * time.Minute

// ProjectRepository stores whole project documents. Reads go through a Redis
// read-through cache; every write replaces the document wholesale and drops
// the cache entry.
type ProjectRepository struct {
	db  *gorm.DB
	rdb *redis.Client
}

func NewProjectRepository(db *gorm.DB, rdb *redis.Client) *ProjectRepository {
	return &ProjectRepository{db: db, rdb: rdb}
}

func cacheKey(id string) string {
	return "chambometro:project:" + id
}

// FindByID loads one project document.
func (r *ProjectRepository) FindByID(ctx context.Context, id string) (*entity.Project, error) {
	if r.rdb != nil {
		if raw, err := r.rdb.Get(ctx, cacheKey(id)).Bytes(); err == nil {
			var cached entity.Project
			if json.Unmarshal(raw, &cached) == nil {
				return &cached, nil
			}
		}
	}

	var project entity.Project
	err := r.db.WithContext(ctx).
		Where("id = ? AND deleted_at IS NULL", id).
		First(&project).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}

	r.cache(ctx, &project)
	return &project, nil
}

// List returns the portfolio, newest first.
func (r *ProjectRepository) List(ctx context.Context) ([]entity.Project, error) {
	var projects []entity.Project
	err := r.db.WithContext(ctx).
		Where("deleted_at IS NULL").
		Order("created_at ASC").
		Find(&projects).Error
	return projects, err
}

// Count reports how many live projects exist. Used by the boot seed.
func (r *ProjectRepository) Count(ctx context.Context) (int64, error) {
	var n int64
	err := r.db.WithContext(ctx).
		Model(&entity.Project{}).
		Where("deleted_at IS NULL").
		Count(&n).Error
	return n, err
}

// Create inserts a new project document.
func (r *ProjectRepository) Create(ctx context.Context, project *entity.Project) error {
	if err := r.db.WithContext(ctx).Create(project).Error; err != nil {
		return err
	}
	r.cache(ctx, project)
	return nil
}

// Replace writes the document back with last-writer-wins semantics guarded by
// the revision counter: the update only lands if the stored revision still
// matches the one the caller read, and the new revision is one higher.
func (r *ProjectRepository) Replace(ctx context.Context, project *entity.Project, readRevision int64) error {
	project.Revision = readRevision + 1
	res := r.db.WithContext(ctx).
		Model(&entity.Project{}).
		Where("id = ? AND revision = ? AND deleted_at IS NULL", project.ID, readRevision).
		Updates(map[string]interface{}{
			"name":       project.Name,
			"settings":   project.Settings,
			"roadmap":    project.Roadmap,
			"revision":   project.Revision,
			"updated_at": time.Now(),
		})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return ErrRevisionConflict
	}
	r.invalidate(ctx, project.ID)
	return nil
}

// Delete soft-deletes a project document.
func (r *ProjectRepository) Delete(ctx context.Context, id string) error {
	res := r.db.WithContext(ctx).
		Model(&entity.Project{}).
		Where("id = ? AND deleted_at IS NULL", id).
		Update("deleted_at", time.Now())
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return ErrNotFound
	}
	r.invalidate(ctx, id)
	return nil
}

func (r *ProjectRepository) cache(ctx context.Context, project *entity.Project) {
	if r.rdb == nil {
		return
	}
	if raw, err := json.Marshal(project); err == nil {
		r.rdb.Set(ctx, cacheKey(project.ID), raw, projectCacheTTL)
	}
}

func (r *ProjectRepository) invalidate(ctx context.Context, id string) {
	if r.rdb != nil {
		r.rdb.Del(ctx, cacheKey(id))
	}
}
