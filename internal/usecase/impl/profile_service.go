package impl

import (
	"context"
	"log/slog"
	"math"
	"time"

	deliverycontext "portfolio/internal/delivery/context"
	"portfolio/internal/domain/entity"
	domainerrors "portfolio/internal/domain/errors"
	"portfolio/internal/domain/repository"
	"portfolio/internal/usecase"

	"github.com/pkg/errors"
	"go.uber.org/fx"
)

const yearOfDays = 365 * 24 * time.Hour

type profileService struct {
	userRepo       repository.UserRepository
	projectRepo    repository.ProjectRepository
	skillRepo      repository.SkillRepository
	experienceRepo repository.ExperienceRepository
	educationRepo  repository.EducationRepository
	logger         *slog.Logger
	now            func() time.Time
}

// ProfileServiceParams holds dependencies for ProfileService, injected by Fx.
type ProfileServiceParams struct {
	fx.In

	UserRepo       repository.UserRepository
	ProjectRepo    repository.ProjectRepository
	SkillRepo      repository.SkillRepository
	ExperienceRepo repository.ExperienceRepository
	EducationRepo  repository.EducationRepository
	Logger         *slog.Logger
}

// NewProfileService is the constructor for profileService.
func NewProfileService(params ProfileServiceParams) usecase.ProfileUsecase {
	return &profileService{
		userRepo:       params.UserRepo,
		projectRepo:    params.ProjectRepo,
		skillRepo:      params.SkillRepo,
		experienceRepo: params.ExperienceRepo,
		educationRepo:  params.EducationRepo,
		logger:         params.Logger,
		now:            time.Now,
	}
}

func (srv *profileService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// GetPublicProfile loads the portfolio owner (the first registered user) with
// their featured projects, skills, experience and education. viewer may be nil.
func (srv *profileService) GetPublicProfile(ctx context.Context, viewer *entity.Identity) (*usecase.PublicProfile, error) {
	owner, err := srv.userRepo.FindFirst(ctx)
	if errors.Is(err, repository.ErrUserNotFound) {
		return nil, errors.WithStack(domainerrors.ErrProfileNotFound)
	}
	if err != nil {
		return nil, errors.Wrap(err, "failed to load profile owner")
	}

	projects, err := srv.projectRepo.List(ctx, repository.ProjectFilter{
		UserID:       owner.ID,
		FeaturedOnly: true,
		Limit:        usecase.FeaturedProjectLimit,
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to load featured projects")
	}

	skills, err := srv.skillRepo.List(ctx, owner.ID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to load skills")
	}

	experiences, err := srv.experienceRepo.List(ctx, owner.ID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to load experiences")
	}

	educations, err := srv.educationRepo.ListByUser(ctx, owner.ID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to load educations")
	}

	isOwner := viewer != nil && viewer.ID == owner.ID
	profile := *owner
	profile.PasswordHash = ""
	if !isOwner {
		profile.Email = ""
		profile.Phone = ""
	}

	srv.log(ctx).Debug("Profile served", slog.Bool("owner", isOwner), slog.Int("projects", len(projects)))

	return &usecase.PublicProfile{
		User:             &profile,
		FeaturedProjects: projects,
		Skills:           skills,
		Experiences:      experiences,
		Educations:       educations,
		IsOwner:          isOwner,
	}, nil
}

// GetStats counts the owner's projects and skills and sums the years spent
// across positions. A position without an end date counts up to now.
func (srv *profileService) GetStats(ctx context.Context) (*usecase.PortfolioStats, error) {
	owner, err := srv.userRepo.FindFirst(ctx)
	if errors.Is(err, repository.ErrUserNotFound) {
		return nil, errors.WithStack(domainerrors.ErrUserNotFound)
	}
	if err != nil {
		return nil, errors.Wrap(err, "failed to load profile owner")
	}

	projects, err := srv.projectRepo.CountByUser(ctx, owner.ID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to count projects")
	}

	skills, err := srv.skillRepo.CountByUser(ctx, owner.ID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to count skills")
	}

	experiences, err := srv.experienceRepo.List(ctx, owner.ID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to load experiences")
	}

	now := srv.now()
	var total time.Duration
	for _, experience := range experiences {
		total += experience.Tenure(now)
	}

	return &usecase.PortfolioStats{
		Projects:     projects,
		Skills:       skills,
		Experience:   math.Round(float64(total)/float64(yearOfDays)*10) / 10,
		Achievements: len(experiences),
	}, nil
}
