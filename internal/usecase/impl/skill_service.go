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

type skillService struct {
	skillRepo repository.SkillRepository
	logger    *slog.Logger
}

// SkillServiceParams holds dependencies for SkillService, injected by Fx.
type SkillServiceParams struct {
	fx.In

	SkillRepo repository.SkillRepository
	Logger    *slog.Logger
}

// NewSkillService is the constructor for skillService.
func NewSkillService(params SkillServiceParams) usecase.SkillUsecase {
	return &skillService{
		skillRepo: params.SkillRepo,
		logger:    params.Logger,
	}
}

func (srv *skillService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// ListSkills returns every skill, grouped under its category. Skills saved
// without a category are grouped under entity.DefaultSkillCategory.
func (srv *skillService) ListSkills(ctx context.Context) (*usecase.SkillCatalog, error) {
	skills, err := srv.skillRepo.List(ctx, 0)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list skills")
	}

	grouped := make(map[string][]*entity.Skill)
	for _, skill := range skills {
		key := skill.GroupKey()
		grouped[key] = append(grouped[key], skill)
	}

	return &usecase.SkillCatalog{
		Skills:  skills,
		Grouped: grouped,
	}, nil
}

func (srv *skillService) CreateSkill(ctx context.Context, ownerID uint, input *usecase.CreateSkillInput) (*entity.Skill, error) {
	skill := &entity.Skill{
		UserID:          ownerID,
		Name:            input.Name,
		Category:        input.Category,
		Proficiency:     input.Proficiency,
		YearsExperience: input.YearsExperience,
		Verified:        input.Verified,
		Icon:            input.Icon,
		Color:           input.Color,
		Description:     input.Description,
	}
	skill.Category = skill.GroupKey()

	if err := srv.skillRepo.Create(ctx, skill); err != nil {
		return nil, errors.Wrap(err, "failed to create skill")
	}

	srv.log(ctx).Info("Skill created", slog.Any("skillID", skill.ID), slog.Any("ownerID", ownerID))

	return skill, nil
}
