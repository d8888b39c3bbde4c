package repository

import (
	"errors"

	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"
)

var (
	ErrNotFound         = errors.New("record not found")
	ErrRevisionConflict = errors.New("project document was modified concurrently")
)

// Repositories bundles the data-access layer.
type Repositories struct {
	Project   *ProjectRepository
	Selection *SelectionRepository
}

// NewRepositories wires every repository onto the shared connections.
func NewRepositories(db *gorm.DB, rdb *redis.Client) *Repositories {
	return &Repositories{
		Project:   NewProjectRepository(db, rdb),
		Selection: NewSelectionRepository(rdb),
	}
}
