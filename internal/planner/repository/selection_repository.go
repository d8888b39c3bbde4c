package repository

import (
	"context"
	"errors"

	"github.com/redis/go-redis/v9"
)

// SelectionRepository keeps each user's active-project selection in Redis.
// The selection is pure UI state: losing it is harmless, so no relational
// backing.
type SelectionRepository struct {
	rdb *redis.Client
}

func NewSelectionRepository(rdb *redis.Client) *SelectionRepository {
	return &SelectionRepository{rdb: rdb}
}

func selectionKey(userID string) string {
	return "chambometro:active:" + userID
}

// Set records the user's active project.
func (r *SelectionRepository) Set(ctx context.Context, userID, projectID string) error {
	if r.rdb == nil {
		return nil
	}
	return r.rdb.Set(ctx, selectionKey(userID), projectID, 0).Err()
}

// Get returns the user's active project id, or ErrNotFound when no selection
// exists.
func (r *SelectionRepository) Get(ctx context.Context, userID string) (string, error) {
	if r.rdb == nil {
		return "", ErrNotFound
	}
	id, err := r.rdb.Get(ctx, selectionKey(userID)).Result()
	if errors.Is(err, redis.Nil) {
		return "", ErrNotFound
	}
	return id, err
}

// Clear drops the user's selection.
func (r *SelectionRepository) Clear(ctx context.Context, userID string) error {
	if r.rdb == nil {
		return nil
	}
	return r.rdb.Del(ctx, selectionKey(userID)).Err()
}

// ClearProject drops every selection pointing at the given project. Called on
// project deletion so nobody keeps a dangling active pointer.
func (r *SelectionRepository) ClearProject(ctx context.Context, projectID string) error {
	if r.rdb == nil {
		return nil
	}
	iter := r.rdb.Scan(ctx, 0, "chambometro:active:*", 100).Iterator()
	for iter.Next(ctx) {
		key := iter.Val()
		if id, err := r.rdb.Get(ctx, key).Result(); err == nil && id == projectID {
			r.rdb.Del(ctx, key)
		}
	}
	return iter.Err()
}
