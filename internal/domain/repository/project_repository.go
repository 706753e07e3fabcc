package repository

import (
	"context"
	"errors"

	"portfolio/internal/domain/entity"
)

// ErrProjectNotFound is returned when a project does not exist.
var ErrProjectNotFound = errors.New("project not found")

// ProjectFilter narrows a project listing.
type ProjectFilter struct {
	UserID       uint // Zero means any owner.
	FeaturedOnly bool
	Limit        int // Zero means no limit.
}

// ProjectRepository defines persistence operations for portfolio projects.
type ProjectRepository interface {
	// List returns projects ordered featured first, then newest first.
	List(ctx context.Context, filter ProjectFilter) ([]*entity.Project, error)

	// FindByID retrieves a single project with its owner names.
	FindByID(ctx context.Context, id uint) (*entity.Project, error)

	// Create persists a new project.
	Create(ctx context.Context, project *entity.Project) error

	// CountByUser returns how many projects the user owns.
	CountByUser(ctx context.Context, userID uint) (int64, error)
}
