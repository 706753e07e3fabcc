package impl

import (
	"context"
	"log/slog"

	deliverycontext "portfolio/internal/delivery/context"
	"portfolio/internal/domain/entity"
	domainerrors "portfolio/internal/domain/errors"
	"portfolio/internal/domain/repository"
	"portfolio/internal/usecase"

	"github.com/pkg/errors"
	"go.uber.org/fx"
)

type projectService struct {
	projectRepo repository.ProjectRepository
	logger      *slog.Logger
}

// ProjectServiceParams holds dependencies for ProjectService, injected by Fx.
type ProjectServiceParams struct {
	fx.In

	ProjectRepo repository.ProjectRepository
	Logger      *slog.Logger
}

// NewProjectService is the constructor for projectService.
func NewProjectService(params ProjectServiceParams) usecase.ProjectUsecase {
	return &projectService{
		projectRepo: params.ProjectRepo,
		logger:      params.Logger,
	}
}

func (srv *projectService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

func (srv *projectService) ListProjects(ctx context.Context) ([]*entity.Project, error) {
	projects, err := srv.projectRepo.List(ctx, repository.ProjectFilter{})
	if err != nil {
		return nil, errors.Wrap(err, "failed to list projects")
	}

	return projects, nil
}

func (srv *projectService) GetProject(ctx context.Context, id uint) (*entity.Project, error) {
	project, err := srv.projectRepo.FindByID(ctx, id)
	if errors.Is(err, repository.ErrProjectNotFound) {
		return nil, errors.WithStack(domainerrors.ErrProjectNotFound)
	}
	if err != nil {
		return nil, errors.Wrap(err, "failed to find project")
	}

	return project, nil
}

// CreateProject stores a project owned by ownerID.
func (srv *projectService) CreateProject(ctx context.Context, ownerID uint, input *usecase.CreateProjectInput) (*entity.Project, error) {
	status := input.Status
	if status == "" {
		status = entity.ProjectStatusCompleted
	}

	project := &entity.Project{
		UserID:      ownerID,
		Title:       input.Title,
		Description: input.Description,
		TechStack:   input.TechStack,
		GithubURL:   input.GithubURL,
		LiveURL:     input.LiveURL,
		ImageURLs:   input.ImageURLs,
		Featured:    input.Featured,
		StartDate:   input.StartDate,
		EndDate:     input.EndDate,
		Status:      status,
		Category:    input.Category,
	}

	if err := srv.projectRepo.Create(ctx, project); err != nil {
		return nil, errors.Wrap(err, "failed to create project")
	}

	srv.log(ctx).Info("Project created", slog.Any("projectID", project.ID), slog.Any("ownerID", ownerID))

	return project, nil
}
