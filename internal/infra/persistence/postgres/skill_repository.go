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

type skillRepository struct {
	q *query.Query
}

// NewSkillRepository is the constructor for skillRepository.
func NewSkillRepository(db *gorm.DB) repository.SkillRepository {
	return &skillRepository{
		q: query.Use(db),
	}
}

func (repo *skillRepository) List(ctx context.Context, userID uint) ([]*entity.Skill, error) {
	s := repo.q.SkillModel
	do := s.WithContext(ctx).
		Order(s.Category, s.Proficiency.Desc(), s.Name)
	if userID != 0 {
		do = do.Where(s.UserID.Eq(userID))
	}

	skillMs, err := do.Find()
	if err != nil {
		return nil, errors.Wrap(err, "failed to list skills")
	}

	skills := make([]*entity.Skill, 0, len(skillMs))
	for _, skillM := range skillMs {
		skills = append(skills, toSkillDomain(skillM))
	}

	return skills, nil
}

func (repo *skillRepository) Create(ctx context.Context, skill *entity.Skill) error {
	skillM := fromSkillDomain(skill)
	if err := repo.q.SkillModel.WithContext(ctx).Create(skillM); err != nil {
		return translateWriteError(err, "failed to create skill")
	}

	skill.ID = skillM.ID
	skill.CreatedAt = skillM.CreatedAt
	skill.UpdatedAt = skillM.UpdatedAt

	return nil
}

func (repo *skillRepository) CountByUser(ctx context.Context, userID uint) (int64, error) {
	count, err := repo.q.SkillModel.WithContext(ctx).
		Where(repo.q.SkillModel.UserID.Eq(userID)).
		Count()
	if err != nil {
		return 0, errors.Wrap(err, "failed to count skills")
	}

	return count, nil
}

func toSkillDomain(data *model.SkillModel) *entity.Skill {
	return &entity.Skill{
		ID:              data.ID,
		UserID:          data.UserID,
		Name:            data.Name,
		Category:        data.Category,
		Proficiency:     data.Proficiency,
		YearsExperience: data.YearsExperience,
		Verified:        data.Verified,
		Icon:            data.Icon,
		Color:           data.Color,
		Description:     data.Description,
		CreatedAt:       data.CreatedAt,
		UpdatedAt:       data.UpdatedAt,
	}
}

func fromSkillDomain(data *entity.Skill) *model.SkillModel {
	return &model.SkillModel{
		ID:              data.ID,
		UserID:          data.UserID,
		Name:            data.Name,
		Category:        data.GroupKey(),
		Proficiency:     data.Proficiency,
		YearsExperience: data.YearsExperience,
		Verified:        data.Verified,
		Icon:            data.Icon,
		Color:           data.Color,
		Description:     data.Description,
	}
}
