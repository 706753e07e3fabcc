package impl

import (
	"context"
	"testing"
	"time"

	"portfolio/internal/domain/entity"
	domainerrors "portfolio/internal/domain/errors"
	"portfolio/internal/domain/repository"
	mockRepo "portfolio/internal/mocks/repository"
	"portfolio/internal/usecase"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type profileServiceFixtures struct {
	service        usecase.ProfileUsecase
	userRepo       *mockRepo.MockUserRepository
	projectRepo    *mockRepo.MockProjectRepository
	skillRepo      *mockRepo.MockSkillRepository
	experienceRepo *mockRepo.MockExperienceRepository
	educationRepo  *mockRepo.MockEducationRepository
}

func createTestProfileService(t *testing.T) profileServiceFixtures {
	userRepo := mockRepo.NewMockUserRepository(t)
	projectRepo := mockRepo.NewMockProjectRepository(t)
	skillRepo := mockRepo.NewMockSkillRepository(t)
	experienceRepo := mockRepo.NewMockExperienceRepository(t)
	educationRepo := mockRepo.NewMockEducationRepository(t)

	return profileServiceFixtures{
		service: NewProfileService(ProfileServiceParams{
			UserRepo:       userRepo,
			ProjectRepo:    projectRepo,
			SkillRepo:      skillRepo,
			ExperienceRepo: experienceRepo,
			EducationRepo:  educationRepo,
			Logger:         newDiscardLogger(),
		}),
		userRepo:       userRepo,
		projectRepo:    projectRepo,
		skillRepo:      skillRepo,
		experienceRepo: experienceRepo,
		educationRepo:  educationRepo,
	}
}

func newOwner() *entity.User {
	return &entity.User{
		ID:           1,
		Email:        "owner@example.com",
		Phone:        "+1 555 0100",
		PasswordHash: "hashed",
		FirstName:    "Ada",
		LastName:     "Lovelace",
		IsActive:     true,
	}
}

func TestProfileService_GetPublicProfile(t *testing.T) {
	featured := []*entity.Project{{ID: 10, UserID: 1, Title: "Engine", Featured: true}}
	skills := []*entity.Skill{{ID: 3, UserID: 1, Name: "Go", Category: "backend", Proficiency: 90}}
	experiences := []*entity.Experience{{ID: 4, UserID: 1, Company: "Babbage & Co", Current: true}}
	educations := []*entity.Education{{ID: 5, UserID: 1, Institution: "Home", Degree: "Mathematics"}}
	wantFilter := repository.ProjectFilter{UserID: 1, FeaturedOnly: true, Limit: usecase.FeaturedProjectLimit}

	tests := []struct {
		name      string
		viewer    *entity.Identity
		wantOwner bool
	}{
		{name: "anonymous", viewer: nil},
		{name: "other user", viewer: &entity.Identity{ID: 2, IsActive: true}},
		{name: "owner", viewer: &entity.Identity{ID: 1, IsActive: true}, wantOwner: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fx := createTestProfileService(t)
			owner := newOwner()
			fx.userRepo.EXPECT().FindFirst(mock.Anything).Return(owner, nil)
			fx.projectRepo.EXPECT().List(mock.Anything, wantFilter).Return(featured, nil)
			fx.skillRepo.EXPECT().List(mock.Anything, uint(1)).Return(skills, nil)
			fx.experienceRepo.EXPECT().List(mock.Anything, uint(1)).Return(experiences, nil)
			fx.educationRepo.EXPECT().ListByUser(mock.Anything, uint(1)).Return(educations, nil)

			profile, err := fx.service.GetPublicProfile(context.Background(), tt.viewer)
			require.NoError(t, err)

			assert.Equal(t, tt.wantOwner, profile.IsOwner)
			assert.Equal(t, featured, profile.FeaturedProjects)
			assert.Equal(t, skills, profile.Skills)
			assert.Equal(t, experiences, profile.Experiences)
			assert.Equal(t, educations, profile.Educations)
			assert.Empty(t, profile.User.PasswordHash)
			assert.Equal(t, "Ada", profile.User.FirstName)
			if tt.wantOwner {
				assert.Equal(t, "owner@example.com", profile.User.Email)
				assert.Equal(t, "+1 555 0100", profile.User.Phone)
			} else {
				assert.Empty(t, profile.User.Email)
				assert.Empty(t, profile.User.Phone)
			}

			assert.Equal(t, "owner@example.com", owner.Email, "repository entity must not be mutated")
		})
	}
}

func TestProfileService_GetPublicProfile_NoOwner(t *testing.T) {
	fx := createTestProfileService(t)
	fx.userRepo.EXPECT().FindFirst(mock.Anything).Return(nil, repository.ErrUserNotFound)

	_, err := fx.service.GetPublicProfile(context.Background(), nil)

	assert.True(t, errors.Is(err, domainerrors.ErrProfileNotFound))
	assert.Equal(t, domainerrors.KindNotFound, domainerrors.KindOf(err))
}

func TestProfileService_GetPublicProfile_ProjectsError(t *testing.T) {
	fx := createTestProfileService(t)
	fx.userRepo.EXPECT().FindFirst(mock.Anything).Return(newOwner(), nil)
	fx.projectRepo.EXPECT().List(mock.Anything, mock.Anything).Return(nil, errors.New("db error"))

	_, err := fx.service.GetPublicProfile(context.Background(), nil)

	assert.Error(t, err)
	assert.Contains(t, err.Error(), "failed to load featured projects")
}

func TestProfileService_GetPublicProfile_SkillsError(t *testing.T) {
	fx := createTestProfileService(t)
	fx.userRepo.EXPECT().FindFirst(mock.Anything).Return(newOwner(), nil)
	fx.projectRepo.EXPECT().List(mock.Anything, mock.Anything).Return(nil, nil)
	fx.skillRepo.EXPECT().List(mock.Anything, uint(1)).Return(nil, errors.New("db error"))

	_, err := fx.service.GetPublicProfile(context.Background(), nil)

	assert.Error(t, err)
	assert.Contains(t, err.Error(), "failed to load skills")
}

func TestProfileService_GetStats(t *testing.T) {
	now := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)
	year := 365 * 24 * time.Hour
	ended := now.Add(-year)

	fx := createTestProfileService(t)
	fx.service.(*profileService).now = func() time.Time { return now }

	fx.userRepo.EXPECT().FindFirst(mock.Anything).Return(newOwner(), nil)
	fx.projectRepo.EXPECT().CountByUser(mock.Anything, uint(1)).Return(int64(4), nil)
	fx.skillRepo.EXPECT().CountByUser(mock.Anything, uint(1)).Return(int64(12), nil)
	fx.experienceRepo.EXPECT().List(mock.Anything, uint(1)).Return([]*entity.Experience{
		// Ongoing for eighteen months.
		{ID: 1, StartDate: now.Add(-year - year/2), Current: true},
		// Two years, finished a year ago.
		{ID: 2, StartDate: ended.Add(-2 * year), EndDate: &ended},
		// No end date recorded counts up to now.
		{ID: 3, StartDate: now.Add(-year / 4)},
	}, nil)

	stats, err := fx.service.GetStats(context.Background())
	require.NoError(t, err)

	assert.Equal(t, int64(4), stats.Projects)
	assert.Equal(t, int64(12), stats.Skills)
	assert.InDelta(t, 3.8, stats.Experience, 1e-9)
	assert.Equal(t, 3, stats.Achievements)
}

func TestProfileService_GetStats_NoOwner(t *testing.T) {
	fx := createTestProfileService(t)
	fx.userRepo.EXPECT().FindFirst(mock.Anything).Return(nil, repository.ErrUserNotFound)

	_, err := fx.service.GetStats(context.Background())

	assert.True(t, errors.Is(err, domainerrors.ErrUserNotFound))
	assert.Equal(t, domainerrors.KindNotFound, domainerrors.KindOf(err))
}
