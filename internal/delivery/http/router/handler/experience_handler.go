package handler

import (
	"net/http"
	"time"

	deliverycontext "portfolio/internal/delivery/context"
	"portfolio/internal/delivery/http/response"
	domainerrors "portfolio/internal/domain/errors"
	"portfolio/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

type createExperienceRequest struct {
	Company      string     `json:"company" validate:"required,max=150"`
	Position     string     `json:"position" validate:"required,max=150"`
	Description  string     `json:"description"`
	Location     string     `json:"location" validate:"max=150"`
	StartDate    *time.Time `json:"startDate" validate:"required"`
	EndDate      *time.Time `json:"endDate"`
	Current      bool       `json:"current"`
	Achievements []string   `json:"achievements"`
	Technologies []string   `json:"technologies"`
	CompanyURL   string     `json:"companyUrl" validate:"omitempty,url"`
	CompanyLogo  string     `json:"companyLogo" validate:"omitempty,url"`
}

// ExperienceHandler serves work experience.
type ExperienceHandler struct {
	uc usecase.ExperienceUsecase
}

// NewExperienceHandler is the constructor for ExperienceHandler, injected by Fx.
func NewExperienceHandler(uc usecase.ExperienceUsecase) *ExperienceHandler {
	return &ExperienceHandler{uc: uc}
}

// List returns every position, newest first.
func (h *ExperienceHandler) List(c echo.Context) error {
	experiences, err := h.uc.ListExperiences(c.Request().Context())
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, toExperienceResponses(experiences), "")
}

// Create adds a position for the authenticated user. Requires Authenticate.
func (h *ExperienceHandler) Create(c echo.Context) error {
	identity := deliverycontext.IdentityFrom(c.Request().Context())
	if identity == nil {
		return errors.WithStack(domainerrors.ErrNoCredential)
	}

	var req createExperienceRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	experience, err := h.uc.CreateExperience(c.Request().Context(), identity.ID, &usecase.CreateExperienceInput{
		Company:      req.Company,
		Position:     req.Position,
		Description:  req.Description,
		Location:     req.Location,
		StartDate:    *req.StartDate,
		EndDate:      req.EndDate,
		Current:      req.Current,
		Achievements: req.Achievements,
		Technologies: req.Technologies,
		CompanyURL:   req.CompanyURL,
		CompanyLogo:  req.CompanyLogo,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, toExperienceResponse(experience), "Experience created successfully")
}
