package repository

import (
	"context"

	"portfolio/internal/domain/entity"
)

// ExperienceRepository defines persistence operations for work experience.
type ExperienceRepository interface {
	// List returns positions newest first. A zero userID lists every position.
	List(ctx context.Context, userID uint) ([]*entity.Experience, error)

	Create(ctx context.Context, experience *entity.Experience) error
}
