package usecase

import (
	"context"

	"portfolio/internal/domain/entity"
)

// FeaturedProjectLimit caps the projects shown on the public profile.
const FeaturedProjectLimit = 6

// PublicProfile is the portfolio owner's profile as seen by one viewer.
type PublicProfile struct {
	User             *entity.User
	FeaturedProjects []*entity.Project
	Skills           []*entity.Skill
	Experiences      []*entity.Experience
	Educations       []*entity.Education
	// IsOwner is true when the viewer is the profile owner. Contact fields are
	// cleared otherwise.
	IsOwner bool
}

// PortfolioStats summarises the owner's portfolio.
type PortfolioStats struct {
	Projects     int64
	Skills       int64
	Experience   float64 // Years across all positions, one decimal.
	Achievements int     // Number of positions held.
}

// ProfileUsecase serves the public portfolio profile.
type ProfileUsecase interface {
	GetPublicProfile(ctx context.Context, viewer *entity.Identity) (*PublicProfile, error)
	GetStats(ctx context.Context) (*PortfolioStats, error)
}
