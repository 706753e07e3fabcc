package usecase

import (
	"context"
	"time"

	"portfolio/internal/domain/entity"
)

// CreateProjectInput defines the data required to create a project.
type CreateProjectInput struct {
	Title       string
	Description string
	TechStack   []string
	GithubURL   string
	LiveURL     string
	ImageURLs   []string
	Featured    bool
	StartDate   *time.Time
	EndDate     *time.Time
	Status      entity.ProjectStatus
	Category    string
}

// ProjectUsecase defines the portfolio project operations.
type ProjectUsecase interface {
	ListProjects(ctx context.Context) ([]*entity.Project, error)
	GetProject(ctx context.Context, id uint) (*entity.Project, error)
	CreateProject(ctx context.Context, ownerID uint, input *CreateProjectInput) (*entity.Project, error)
}
