package repository

import (
	"context"

	"portfolio/internal/domain/entity"
)

// EducationRepository reads education history.
type EducationRepository interface {
	// ListByUser returns the user's education newest first.
	ListByUser(ctx context.Context, userID uint) ([]*entity.Education, error)
}
