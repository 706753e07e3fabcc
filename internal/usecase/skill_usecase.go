package usecase

import (
	"context"

	"portfolio/internal/domain/entity"
)

// SkillCatalog lists skills both flat and grouped by category.
type SkillCatalog struct {
	Skills  []*entity.Skill
	Grouped map[string][]*entity.Skill
}

// CreateSkillInput defines the data required to add a skill.
type CreateSkillInput struct {
	Name            string
	Category        string
	Proficiency     int
	YearsExperience int
	Verified        bool
	Icon            string
	Color           string
	Description     string
}

// SkillUsecase defines the skill operations.
type SkillUsecase interface {
	ListSkills(ctx context.Context) (*SkillCatalog, error)
	CreateSkill(ctx context.Context, ownerID uint, input *CreateSkillInput) (*entity.Skill, error)
}
