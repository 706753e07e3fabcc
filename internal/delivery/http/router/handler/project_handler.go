package handler

import (
	"net/http"
	"strconv"
	"time"

	deliverycontext "portfolio/internal/delivery/context"
	"portfolio/internal/delivery/http/response"
	"portfolio/internal/domain/entity"
	domainerrors "portfolio/internal/domain/errors"
	"portfolio/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

type createProjectRequest struct {
	Title       string     `json:"title" validate:"required,max=200"`
	Description string     `json:"description" validate:"required"`
	TechStack   []string   `json:"techStack"`
	GithubURL   string     `json:"githubUrl" validate:"omitempty,url"`
	LiveURL     string     `json:"liveUrl" validate:"omitempty,url"`
	ImageURLs   []string   `json:"imageUrls" validate:"omitempty,dive,url"`
	Featured    bool       `json:"featured"`
	StartDate   *time.Time `json:"startDate"`
	EndDate     *time.Time `json:"endDate"`
	Status      string     `json:"status" validate:"omitempty,oneof=completed in-progress archived"`
	Category    string     `json:"category" validate:"max=50"`
}

// ProjectHandler serves portfolio projects.
type ProjectHandler struct {
	uc usecase.ProjectUsecase
}

// NewProjectHandler is the constructor for ProjectHandler, injected by Fx.
func NewProjectHandler(uc usecase.ProjectUsecase) *ProjectHandler {
	return &ProjectHandler{uc: uc}
}

// List returns every project, featured first and then newest first.
func (h *ProjectHandler) List(c echo.Context) error {
	projects, err := h.uc.ListProjects(c.Request().Context())
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, toProjectResponses(projects), "")
}

// Get returns a single project by id.
func (h *ProjectHandler) Get(c echo.Context) error {
	id, err := parseID(c.Param("id"))
	if err != nil {
		return err
	}

	project, err := h.uc.GetProject(c.Request().Context(), id)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, toProjectResponse(project), "")
}

// Create stores a project owned by the authenticated user. Requires Authenticate.
func (h *ProjectHandler) Create(c echo.Context) error {
	identity := deliverycontext.IdentityFrom(c.Request().Context())
	if identity == nil {
		return errors.WithStack(domainerrors.ErrNoCredential)
	}

	var req createProjectRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	project, err := h.uc.CreateProject(c.Request().Context(), identity.ID, &usecase.CreateProjectInput{
		Title:       req.Title,
		Description: req.Description,
		TechStack:   req.TechStack,
		GithubURL:   req.GithubURL,
		LiveURL:     req.LiveURL,
		ImageURLs:   req.ImageURLs,
		Featured:    req.Featured,
		StartDate:   req.StartDate,
		EndDate:     req.EndDate,
		Status:      entity.ProjectStatus(req.Status),
		Category:    req.Category,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, toProjectResponse(project), "Project created successfully")
}

// parseID accepts positive decimal ids only.
func parseID(raw string) (uint, error) {
	id, err := strconv.ParseUint(raw, 10, 32)
	if err != nil || id == 0 {
		return 0, errors.WithStack(domainerrors.ErrInvalidID)
	}

	return uint(id), nil
}
