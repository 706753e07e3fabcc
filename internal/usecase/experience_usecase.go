package usecase

import (
	"context"
	"time"

	"portfolio/internal/domain/entity"
)

// CreateExperienceInput defines the data required to add a position.
type CreateExperienceInput struct {
	Company      string
	Position     string
	Description  string
	Location     string
	StartDate    time.Time
	EndDate      *time.Time
	Current      bool
	Achievements []string
	Technologies []string
	CompanyURL   string
	CompanyLogo  string
}

// ExperienceUsecase defines the work experience operations.
type ExperienceUsecase interface {
	ListExperiences(ctx context.Context) ([]*entity.Experience, error)
	CreateExperience(ctx context.Context, ownerID uint, input *CreateExperienceInput) (*entity.Experience, error)
}
