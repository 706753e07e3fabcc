package postgres

import (
	"context"

	"portfolio/internal/domain/entity"
	"portfolio/internal/domain/repository"
	"portfolio/internal/errors"
	"portfolio/internal/infra/persistence/model"
	"portfolio/internal/infra/persistence/postgres/query"

	"gorm.io/gorm"
)

type experienceRepository struct {
	q *query.Query
}

// NewExperienceRepository is the constructor for experienceRepository.
func NewExperienceRepository(db *gorm.DB) repository.ExperienceRepository {
	return &experienceRepository{
		q: query.Use(db),
	}
}

func (repo *experienceRepository) List(ctx context.Context, userID uint) ([]*entity.Experience, error) {
	e := repo.q.ExperienceModel
	do := e.WithContext(ctx).Order(e.StartDate.Desc())
	if userID != 0 {
		do = do.Where(e.UserID.Eq(userID))
	}

	experienceMs, err := do.Find()
	if err != nil {
		return nil, errors.Wrap(err, "failed to list experiences")
	}

	experiences := make([]*entity.Experience, 0, len(experienceMs))
	for _, experienceM := range experienceMs {
		experiences = append(experiences, toExperienceDomain(experienceM))
	}

	return experiences, nil
}

func (repo *experienceRepository) Create(ctx context.Context, experience *entity.Experience) error {
	experienceM := fromExperienceDomain(experience)
	if err := repo.q.ExperienceModel.WithContext(ctx).Create(experienceM); err != nil {
		return translateWriteError(err, "failed to create experience")
	}

	experience.ID = experienceM.ID
	experience.CreatedAt = experienceM.CreatedAt
	experience.UpdatedAt = experienceM.UpdatedAt

	return nil
}

func toExperienceDomain(data *model.ExperienceModel) *entity.Experience {
	return &entity.Experience{
		ID:           data.ID,
		UserID:       data.UserID,
		Company:      data.Company,
		Position:     data.Position,
		Description:  data.Description,
		Location:     data.Location,
		StartDate:    data.StartDate,
		EndDate:      data.EndDate,
		Current:      data.Current,
		Achievements: []string(data.Achievements),
		Technologies: []string(data.Technologies),
		CompanyURL:   data.CompanyURL,
		CompanyLogo:  data.CompanyLogo,
		CreatedAt:    data.CreatedAt,
		UpdatedAt:    data.UpdatedAt,
	}
}

func fromExperienceDomain(data *entity.Experience) *model.ExperienceModel {
	return &model.ExperienceModel{
		ID:           data.ID,
		UserID:       data.UserID,
		Company:      data.Company,
		Position:     data.Position,
		Description:  data.Description,
		Location:     data.Location,
		StartDate:    data.StartDate,
		EndDate:      data.EndDate,
		Current:      data.Current,
		Achievements: data.Achievements,
		Technologies: data.Technologies,
		CompanyURL:   data.CompanyURL,
		CompanyLogo:  data.CompanyLogo,
	}
}
