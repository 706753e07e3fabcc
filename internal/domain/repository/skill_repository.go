package repository

import (
	"context"

	"portfolio/internal/domain/entity"
)

// SkillRepository defines persistence operations for skills.
type SkillRepository interface {
	// List returns skills of the user ordered by category, then strongest first, then name.
	// A zero userID lists every skill.
	List(ctx context.Context, userID uint) ([]*entity.Skill, error)

	Create(ctx context.Context, skill *entity.Skill) error

	CountByUser(ctx context.Context, userID uint) (int64, error)
}
