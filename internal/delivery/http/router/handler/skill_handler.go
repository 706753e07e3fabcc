package handler

import (
	"net/http"

	deliverycontext "portfolio/internal/delivery/context"
	"portfolio/internal/delivery/http/response"
	domainerrors "portfolio/internal/domain/errors"
	"portfolio/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

type createSkillRequest struct {
	Name            string `json:"name" validate:"required,max=100"`
	Category        string `json:"category" validate:"max=50"`
	Proficiency     int    `json:"proficiency" validate:"required,min=1,max=100"`
	YearsExperience int    `json:"yearsExperience" validate:"min=0"`
	Verified        bool   `json:"verified"`
	Icon            string `json:"icon" validate:"max=100"`
	Color           string `json:"color" validate:"max=20"`
	Description     string `json:"description"`
}

type skillCatalogResponse struct {
	Skills  []*skillResponse            `json:"skills"`
	Grouped map[string][]*skillResponse `json:"grouped"`
}

// SkillHandler serves the skill catalog.
type SkillHandler struct {
	uc usecase.SkillUsecase
}

// NewSkillHandler is the constructor for SkillHandler, injected by Fx.
func NewSkillHandler(uc usecase.SkillUsecase) *SkillHandler {
	return &SkillHandler{uc: uc}
}

// List returns every skill, flat and grouped by category.
func (h *SkillHandler) List(c echo.Context) error {
	catalog, err := h.uc.ListSkills(c.Request().Context())
	if err != nil {
		return errors.WithStack(err)
	}

	grouped := make(map[string][]*skillResponse, len(catalog.Grouped))
	for category, skills := range catalog.Grouped {
		grouped[category] = toSkillResponses(skills)
	}

	return response.Success(c, http.StatusOK, skillCatalogResponse{
		Skills:  toSkillResponses(catalog.Skills),
		Grouped: grouped,
	}, "")
}

// Create adds a skill for the authenticated user. Requires Authenticate.
func (h *SkillHandler) Create(c echo.Context) error {
	identity := deliverycontext.IdentityFrom(c.Request().Context())
	if identity == nil {
		return errors.WithStack(domainerrors.ErrNoCredential)
	}

	var req createSkillRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	skill, err := h.uc.CreateSkill(c.Request().Context(), identity.ID, &usecase.CreateSkillInput{
		Name:            req.Name,
		Category:        req.Category,
		Proficiency:     req.Proficiency,
		YearsExperience: req.YearsExperience,
		Verified:        req.Verified,
		Icon:            req.Icon,
		Color:           req.Color,
		Description:     req.Description,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, toSkillResponse(skill), "Skill created successfully")
}
