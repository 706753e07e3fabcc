package impl

import (
	"context"
	"testing"

	"portfolio/internal/domain/entity"
	mockRepo "portfolio/internal/mocks/repository"
	"portfolio/internal/usecase"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func createTestSkillService(t *testing.T) (usecase.SkillUsecase, *mockRepo.MockSkillRepository) {
	skillRepo := mockRepo.NewMockSkillRepository(t)

	return NewSkillService(SkillServiceParams{
		SkillRepo: skillRepo,
		Logger:    newDiscardLogger(),
	}), skillRepo
}

func TestSkillService_ListSkills_GroupsByCategory(t *testing.T) {
	service, skillRepo := createTestSkillService(t)
	goSkill := &entity.Skill{ID: 1, Name: "Go", Category: "backend", Proficiency: 95}
	sqlSkill := &entity.Skill{ID: 2, Name: "SQL", Category: "backend", Proficiency: 80}
	reactSkill := &entity.Skill{ID: 3, Name: "React", Category: "frontend", Proficiency: 70}
	legacy := &entity.Skill{ID: 4, Name: "Juggling"}
	skillRepo.EXPECT().List(mock.Anything, uint(0)).
		Return([]*entity.Skill{goSkill, sqlSkill, reactSkill, legacy}, nil)

	catalog, err := service.ListSkills(context.Background())
	require.NoError(t, err)

	assert.Len(t, catalog.Skills, 4)
	assert.Equal(t, []*entity.Skill{goSkill, sqlSkill}, catalog.Grouped["backend"])
	assert.Equal(t, []*entity.Skill{reactSkill}, catalog.Grouped["frontend"])
	assert.Equal(t, []*entity.Skill{legacy}, catalog.Grouped[entity.DefaultSkillCategory])
}

func TestSkillService_ListSkills_Error(t *testing.T) {
	service, skillRepo := createTestSkillService(t)
	skillRepo.EXPECT().List(mock.Anything, uint(0)).Return(nil, errors.New("db error"))

	_, err := service.ListSkills(context.Background())

	assert.ErrorContains(t, err, "failed to list skills")
}

func TestSkillService_CreateSkill(t *testing.T) {
	service, skillRepo := createTestSkillService(t)
	skillRepo.EXPECT().Create(mock.Anything, mock.AnythingOfType("*entity.Skill")).
		Run(func(_ context.Context, skill *entity.Skill) {
			skill.ID = 9
		}).
		Return(nil)

	skill, err := service.CreateSkill(context.Background(), 1, &usecase.CreateSkillInput{
		Name:            "Go",
		Category:        "backend",
		Proficiency:     90,
		YearsExperience: 6,
	})
	require.NoError(t, err)

	assert.Equal(t, uint(9), skill.ID)
	assert.Equal(t, uint(1), skill.UserID)
	assert.Equal(t, "backend", skill.Category)
	assert.Equal(t, 6, skill.YearsExperience)
}

func TestSkillService_CreateSkill_DefaultsCategory(t *testing.T) {
	service, skillRepo := createTestSkillService(t)
	skillRepo.EXPECT().Create(mock.Anything, mock.MatchedBy(func(skill *entity.Skill) bool {
		return skill.Category == entity.DefaultSkillCategory
	})).Return(nil)

	skill, err := service.CreateSkill(context.Background(), 1, &usecase.CreateSkillInput{Name: "Juggling", Proficiency: 10})
	require.NoError(t, err)

	assert.Equal(t, entity.DefaultSkillCategory, skill.Category)
}
