package postgres

import (
	"context"

	"portfolio/internal/domain/entity"
	"portfolio/internal/domain/repository"
	"portfolio/internal/errors"
	"portfolio/internal/infra/persistence/postgres/query"

	"gorm.io/gorm"
)

type educationRepository struct {
	q *query.Query
}

// NewEducationRepository is the constructor for educationRepository.
func NewEducationRepository(db *gorm.DB) repository.EducationRepository {
	return &educationRepository{
		q: query.Use(db),
	}
}

func (repo *educationRepository) ListByUser(ctx context.Context, userID uint) ([]*entity.Education, error) {
	e := repo.q.EducationModel
	educationMs, err := e.WithContext(ctx).
		Where(e.UserID.Eq(userID)).
		Order(e.StartDate.Desc()).
		Find()
	if err != nil {
		return nil, errors.Wrap(err, "failed to list educations")
	}

	educations := make([]*entity.Education, 0, len(educationMs))
	for _, educationM := range educationMs {
		educations = append(educations, &entity.Education{
			ID:           educationM.ID,
			UserID:       educationM.UserID,
			Institution:  educationM.Institution,
			Degree:       educationM.Degree,
			Field:        educationM.Field,
			GPA:          educationM.GPA,
			StartDate:    educationM.StartDate,
			EndDate:      educationM.EndDate,
			Current:      educationM.Current,
			Description:  educationM.Description,
			Achievements: []string(educationM.Achievements),
			Location:     educationM.Location,
			CreatedAt:    educationM.CreatedAt,
			UpdatedAt:    educationM.UpdatedAt,
		})
	}

	return educations, nil
}
