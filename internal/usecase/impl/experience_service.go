package impl

import (
	"context"
	"log/slog"

	deliverycontext "portfolio/internal/delivery/context"
	"portfolio/internal/domain/entity"
	"portfolio/internal/domain/repository"
	"portfolio/internal/usecase"

	"github.com/pkg/errors"
	"go.uber.org/fx"
)

type experienceService struct {
	experienceRepo repository.ExperienceRepository
	logger         *slog.Logger
}

// ExperienceServiceParams holds dependencies for ExperienceService, injected by Fx.
type ExperienceServiceParams struct {
	fx.In

	ExperienceRepo repository.ExperienceRepository
	Logger         *slog.Logger
}

// NewExperienceService is the constructor for experienceService.
func NewExperienceService(params ExperienceServiceParams) usecase.ExperienceUsecase {
	return &experienceService{
		experienceRepo: params.ExperienceRepo,
		logger:         params.Logger,
	}
}

func (srv *experienceService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

func (srv *experienceService) ListExperiences(ctx context.Context) ([]*entity.Experience, error) {
	experiences, err := srv.experienceRepo.List(ctx, 0)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list experiences")
	}

	return experiences, nil
}

// CreateExperience stores a position held by ownerID. A current position has no end date.
func (srv *experienceService) CreateExperience(ctx context.Context, ownerID uint, input *usecase.CreateExperienceInput) (*entity.Experience, error) {
	experience := &entity.Experience{
		UserID:       ownerID,
		Company:      input.Company,
		Position:     input.Position,
		Description:  input.Description,
		Location:     input.Location,
		StartDate:    input.StartDate,
		EndDate:      input.EndDate,
		Current:      input.Current,
		Achievements: input.Achievements,
		Technologies: input.Technologies,
		CompanyURL:   input.CompanyURL,
		CompanyLogo:  input.CompanyLogo,
	}
	if experience.Current {
		experience.EndDate = nil
	}

	if err := srv.experienceRepo.Create(ctx, experience); err != nil {
		return nil, errors.Wrap(err, "failed to create experience")
	}

	srv.log(ctx).Info("Experience created", slog.Any("experienceID", experience.ID), slog.Any("ownerID", ownerID))

	return experience, nil
}
