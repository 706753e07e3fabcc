package handler

import (
	"net/http"

	deliverycontext "portfolio/internal/delivery/context"
	"portfolio/internal/delivery/http/response"
	"portfolio/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

type profileResponse struct {
	*userResponse
	Projects    []*projectResponse    `json:"projects"`
	Skills      []*skillResponse      `json:"skills"`
	Experiences []*experienceResponse `json:"experiences"`
	Educations  []*educationResponse  `json:"educations"`
	IsOwner     bool                  `json:"isOwner"`
}

type statsResponse struct {
	Projects     int64   `json:"projects"`
	Skills       int64   `json:"skills"`
	Experience   float64 `json:"experience"`
	Achievements int     `json:"achievements"`
}

// ProfileHandler serves the public portfolio profile.
type ProfileHandler struct {
	uc usecase.ProfileUsecase
}

// NewProfileHandler is the constructor for ProfileHandler, injected by Fx.
func NewProfileHandler(uc usecase.ProfileUsecase) *ProfileHandler {
	return &ProfileHandler{uc: uc}
}

// Get returns the owner's profile. Runs behind OptionalAuthenticate so the
// owner also sees their contact fields.
func (h *ProfileHandler) Get(c echo.Context) error {
	ctx := c.Request().Context()

	profile, err := h.uc.GetPublicProfile(ctx, deliverycontext.IdentityFrom(ctx))
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, profileResponse{
		userResponse: toUserResponse(profile.User),
		Projects:     toProjectResponses(profile.FeaturedProjects),
		Skills:       toSkillResponses(profile.Skills),
		Experiences:  toExperienceResponses(profile.Experiences),
		Educations:   toEducationResponses(profile.Educations),
		IsOwner:      profile.IsOwner,
	}, "")
}

// Stats returns portfolio counters for the owner.
func (h *ProfileHandler) Stats(c echo.Context) error {
	stats, err := h.uc.GetStats(c.Request().Context())
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, statsResponse{
		Projects:     stats.Projects,
		Skills:       stats.Skills,
		Experience:   stats.Experience,
		Achievements: stats.Achievements,
	}, "")
}
