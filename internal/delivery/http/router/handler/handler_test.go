package handler

import (
	"context"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"portfolio/config"
	deliverycontext "portfolio/internal/delivery/context"
	"portfolio/internal/delivery/http/middleware"
	"portfolio/internal/delivery/http/validator"
	"portfolio/internal/domain/entity"
	domainerrors "portfolio/internal/domain/errors"
	mockUsecase "portfolio/internal/mocks/usecase"
	"portfolio/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func newDiscardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func newTestEcho() *echo.Echo {
	cfg := &config.Config{}
	cfg.Env.Env = "production"

	e := echo.New()
	e.Validator = validator.New()
	e.HTTPErrorHandler = middleware.NewErrorMiddleware(newDiscardLogger(), cfg).HandleHTTPError

	return e
}

// withIdentity stands in for the auth middleware.
func withIdentity(identity *entity.Identity) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			req := c.Request()
			c.SetRequest(req.WithContext(deliverycontext.WithIdentity(req.Context(), identity)))

			return next(c)
		}
	}
}

func doJSON(e *echo.Echo, method, path, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	return rec
}

func TestAuthHandler_Register(t *testing.T) {
	uc := mockUsecase.NewMockAuthUsecase(t)
	h := NewAuthHandler(uc, newDiscardLogger())
	e := newTestEcho()
	e.POST("/api/auth/register", h.Register)

	created := time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC)
	uc.EXPECT().Register(mock.Anything, &usecase.RegisterInput{
		Email:     "ada@example.com",
		Password:  "secret1",
		FirstName: "Ada",
		LastName:  "Lovelace",
	}).Return(&usecase.AuthOutput{
		User:  &entity.User{ID: 1, Email: "ada@example.com", PasswordHash: "hashed", FirstName: "Ada", LastName: "Lovelace", IsActive: true, CreatedAt: created},
		Token: "signed",
	}, nil)

	rec := doJSON(e, http.MethodPost, "/api/auth/register",
		`{"email":"ada@example.com","password":"secret1","firstName":"Ada","lastName":"Lovelace"}`)

	assert.Equal(t, http.StatusCreated, rec.Code)
	assert.JSONEq(t, `{
		"success": true,
		"message": "User registered successfully",
		"data": {
			"token": "signed",
			"user": {"id":1,"email":"ada@example.com","firstName":"Ada","lastName":"Lovelace","isActive":true,"createdAt":"2026-01-02T03:04:05Z"}
		}
	}`, rec.Body.String())
	assert.NotContains(t, rec.Body.String(), "hashed")
}

func TestAuthHandler_Register_Validation(t *testing.T) {
	uc := mockUsecase.NewMockAuthUsecase(t)
	h := NewAuthHandler(uc, newDiscardLogger())
	e := newTestEcho()
	e.POST("/api/auth/register", h.Register)

	rec := doJSON(e, http.MethodPost, "/api/auth/register", `{"email":"ada@example.com","password":"123"}`)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.JSONEq(t, `{"success":false,"error":"Validation Error"}`, rec.Body.String())
}

func TestAuthHandler_Login_InvalidCredentials(t *testing.T) {
	uc := mockUsecase.NewMockAuthUsecase(t)
	h := NewAuthHandler(uc, newDiscardLogger())
	e := newTestEcho()
	e.POST("/api/auth/login", h.Login)

	uc.EXPECT().Login(mock.Anything, &usecase.LoginInput{Email: "ada@example.com", Password: "wrong"}).
		Return(nil, errors.WithStack(domainerrors.ErrInvalidCredentials))

	rec := doJSON(e, http.MethodPost, "/api/auth/login", `{"email":"ada@example.com","password":"wrong"}`)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.JSONEq(t, `{"success":false,"error":"Invalid credentials"}`, rec.Body.String())
}

func TestAuthHandler_Me(t *testing.T) {
	uc := mockUsecase.NewMockAuthUsecase(t)
	h := NewAuthHandler(uc, newDiscardLogger())
	e := newTestEcho()
	e.GET("/api/auth/me", h.Me, withIdentity(&entity.Identity{ID: 4, IsActive: true}))

	uc.EXPECT().Me(mock.Anything, uint(4)).Return(&entity.User{ID: 4, Email: "me@example.com", FirstName: "Me"}, nil)

	rec := doJSON(e, http.MethodGet, "/api/auth/me", "")

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"email":"me@example.com"`)
}

func TestAuthHandler_Logout(t *testing.T) {
	h := NewAuthHandler(mockUsecase.NewMockAuthUsecase(t), newDiscardLogger())
	e := newTestEcho()
	e.POST("/api/auth/logout", h.Logout)

	rec := doJSON(e, http.MethodPost, "/api/auth/logout", "")

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"success":true,"message":"Logged out successfully"}`, rec.Body.String())
}

func TestProjectHandler_Get(t *testing.T) {
	tests := []struct {
		name       string
		path       string
		setup      func(uc *mockUsecase.MockProjectUsecase)
		wantStatus int
		wantBody   string
	}{
		{
			name:       "malformed id",
			path:       "/api/projects/abc",
			setup:      func(*mockUsecase.MockProjectUsecase) {},
			wantStatus: http.StatusBadRequest,
			wantBody:   `{"success":false,"error":"Invalid ID"}`,
		},
		{
			name:       "zero id",
			path:       "/api/projects/0",
			setup:      func(*mockUsecase.MockProjectUsecase) {},
			wantStatus: http.StatusBadRequest,
			wantBody:   `{"success":false,"error":"Invalid ID"}`,
		},
		{
			name: "missing project",
			path: "/api/projects/9",
			setup: func(uc *mockUsecase.MockProjectUsecase) {
				uc.EXPECT().GetProject(mock.Anything, uint(9)).Return(nil, errors.WithStack(domainerrors.ErrProjectNotFound))
			},
			wantStatus: http.StatusNotFound,
			wantBody:   `{"success":false,"error":"Project not found"}`,
		},
		{
			name: "found",
			path: "/api/projects/3",
			setup: func(uc *mockUsecase.MockProjectUsecase) {
				uc.EXPECT().GetProject(mock.Anything, uint(3)).Return(&entity.Project{
					ID:        3,
					Title:     "Engine",
					Status:    entity.ProjectStatusCompleted,
					Owner:     &entity.ProjectOwner{FirstName: "Ada", LastName: "Lovelace"},
					CreatedAt: time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC),
				}, nil)
			},
			wantStatus: http.StatusOK,
			wantBody: `{"success":true,"data":{"id":3,"title":"Engine","description":"","techStack":[],"imageUrls":[],
				"featured":false,"status":"completed","createdAt":"2026-01-01T00:00:00Z","user":{"firstName":"Ada","lastName":"Lovelace"}}}`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			uc := mockUsecase.NewMockProjectUsecase(t)
			tt.setup(uc)
			e := newTestEcho()
			e.GET("/api/projects/:id", NewProjectHandler(uc).Get)

			rec := doJSON(e, http.MethodGet, tt.path, "")

			assert.Equal(t, tt.wantStatus, rec.Code)
			assert.JSONEq(t, tt.wantBody, rec.Body.String())
		})
	}
}

func TestProjectHandler_Create(t *testing.T) {
	uc := mockUsecase.NewMockProjectUsecase(t)
	e := newTestEcho()
	e.POST("/api/projects", NewProjectHandler(uc).Create, withIdentity(&entity.Identity{ID: 1, IsActive: true}))

	uc.EXPECT().CreateProject(mock.Anything, uint(1), mock.AnythingOfType("*usecase.CreateProjectInput")).
		RunAndReturn(func(_ context.Context, ownerID uint, input *usecase.CreateProjectInput) (*entity.Project, error) {
			return &entity.Project{ID: 12, UserID: ownerID, Title: input.Title, TechStack: input.TechStack, Status: entity.ProjectStatusInProgress}, nil
		})

	rec := doJSON(e, http.MethodPost, "/api/projects",
		`{"title":"Engine","description":"Analytical","techStack":["Go"],"status":"in-progress"}`)

	require.Equal(t, http.StatusCreated, rec.Code)
	assert.Contains(t, rec.Body.String(), `"id":12`)
	assert.Contains(t, rec.Body.String(), `"techStack":["Go"]`)
}

func TestProjectHandler_Create_InvalidStatus(t *testing.T) {
	uc := mockUsecase.NewMockProjectUsecase(t)
	e := newTestEcho()
	e.POST("/api/projects", NewProjectHandler(uc).Create, withIdentity(&entity.Identity{ID: 1, IsActive: true}))

	rec := doJSON(e, http.MethodPost, "/api/projects", `{"title":"Engine","description":"x","status":"abandoned"}`)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestProfileHandler_Get(t *testing.T) {
	uc := mockUsecase.NewMockProfileUsecase(t)
	e := newTestEcho()
	e.GET("/api/user/profile", NewProfileHandler(uc).Get)

	uc.EXPECT().GetPublicProfile(mock.Anything, (*entity.Identity)(nil)).Return(&usecase.PublicProfile{
		User:             &entity.User{ID: 1, FirstName: "Ada", LastName: "Lovelace"},
		FeaturedProjects: []*entity.Project{{ID: 2, Title: "Engine", Featured: true}},
	}, nil)

	rec := doJSON(e, http.MethodGet, "/api/user/profile", "")

	assert.Equal(t, http.StatusOK, rec.Code)
	body := rec.Body.String()
	assert.Contains(t, body, `"firstName":"Ada"`)
	assert.Contains(t, body, `"isOwner":false`)
	assert.NotContains(t, body, `"email"`)
	assert.Contains(t, body, `"title":"Engine"`)
	assert.Contains(t, body, `"skills":[]`)
	assert.Contains(t, body, `"experiences":[]`)
	assert.Contains(t, body, `"educations":[]`)
}

func TestProfileHandler_Get_WithHistory(t *testing.T) {
	uc := mockUsecase.NewMockProfileUsecase(t)
	e := newTestEcho()
	e.GET("/api/user/profile", NewProfileHandler(uc).Get)

	start := time.Date(2020, 1, 1, 0, 0, 0, 0, time.UTC)
	gpa := 3.9
	uc.EXPECT().GetPublicProfile(mock.Anything, (*entity.Identity)(nil)).Return(&usecase.PublicProfile{
		User:        &entity.User{ID: 1, FirstName: "Ada"},
		Skills:      []*entity.Skill{{ID: 3, Name: "Go", Category: "backend", Proficiency: 90}},
		Experiences: []*entity.Experience{{ID: 4, Company: "Acme", Position: "Engineer", StartDate: start, Current: true}},
		Educations:  []*entity.Education{{ID: 5, Institution: "MIT", Degree: "BSc", GPA: &gpa, StartDate: start}},
	}, nil)

	rec := doJSON(e, http.MethodGet, "/api/user/profile", "")

	assert.Equal(t, http.StatusOK, rec.Code)
	body := rec.Body.String()
	assert.Contains(t, body, `"name":"Go"`)
	assert.Contains(t, body, `"company":"Acme"`)
	assert.Contains(t, body, `"achievements":[]`)
	assert.Contains(t, body, `"gpa":3.9`)
	assert.Contains(t, body, `"projects":[]`)
}

func TestProfileHandler_Stats(t *testing.T) {
	uc := mockUsecase.NewMockProfileUsecase(t)
	e := newTestEcho()
	e.GET("/api/user/stats", NewProfileHandler(uc).Stats)

	uc.EXPECT().GetStats(mock.Anything).Return(&usecase.PortfolioStats{
		Projects:     4,
		Skills:       12,
		Experience:   3.8,
		Achievements: 3,
	}, nil)

	rec := doJSON(e, http.MethodGet, "/api/user/stats", "")

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"success":true,"data":{"projects":4,"skills":12,"experience":3.8,"achievements":3}}`, rec.Body.String())
}

func TestProfileHandler_Stats_NoOwner(t *testing.T) {
	uc := mockUsecase.NewMockProfileUsecase(t)
	e := newTestEcho()
	e.GET("/api/user/stats", NewProfileHandler(uc).Stats)

	uc.EXPECT().GetStats(mock.Anything).Return(nil, errors.WithStack(domainerrors.ErrUserNotFound))

	rec := doJSON(e, http.MethodGet, "/api/user/stats", "")

	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.JSONEq(t, `{"success":false,"error":"User not found"}`, rec.Body.String())
}

func TestSkillHandler_List(t *testing.T) {
	uc := mockUsecase.NewMockSkillUsecase(t)
	e := newTestEcho()
	e.GET("/api/skills", NewSkillHandler(uc).List)

	created := time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC)
	goSkill := &entity.Skill{ID: 1, Name: "Go", Category: "backend", Proficiency: 90, YearsExperience: 5, CreatedAt: created}
	figma := &entity.Skill{ID: 2, Name: "Figma", Category: "other", Proficiency: 40, CreatedAt: created}
	uc.EXPECT().ListSkills(mock.Anything).Return(&usecase.SkillCatalog{
		Skills: []*entity.Skill{goSkill, figma},
		Grouped: map[string][]*entity.Skill{
			"backend": {goSkill},
			"other":   {figma},
		},
	}, nil)

	rec := doJSON(e, http.MethodGet, "/api/skills", "")

	goJSON := `{"id":1,"name":"Go","category":"backend","proficiency":90,"yearsExperience":5,"verified":false,"createdAt":"2026-01-02T03:04:05Z"}`
	figmaJSON := `{"id":2,"name":"Figma","category":"other","proficiency":40,"yearsExperience":0,"verified":false,"createdAt":"2026-01-02T03:04:05Z"}`
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"success":true,"data":{
		"skills":[`+goJSON+`,`+figmaJSON+`],
		"grouped":{"backend":[`+goJSON+`],"other":[`+figmaJSON+`]}
	}}`, rec.Body.String())
}

func TestSkillHandler_Create(t *testing.T) {
	uc := mockUsecase.NewMockSkillUsecase(t)
	e := newTestEcho()
	e.POST("/api/skills", NewSkillHandler(uc).Create, withIdentity(&entity.Identity{ID: 7, IsActive: true}))

	uc.EXPECT().CreateSkill(mock.Anything, uint(7), &usecase.CreateSkillInput{
		Name:            "Go",
		Category:        "backend",
		Proficiency:     90,
		YearsExperience: 5,
	}).Return(&entity.Skill{ID: 11, UserID: 7, Name: "Go", Category: "backend", Proficiency: 90, YearsExperience: 5}, nil)

	rec := doJSON(e, http.MethodPost, "/api/skills", `{"name":"Go","category":"backend","proficiency":90,"yearsExperience":5}`)

	assert.Equal(t, http.StatusCreated, rec.Code)
	assert.Contains(t, rec.Body.String(), `"message":"Skill created successfully"`)
	assert.Contains(t, rec.Body.String(), `"id":11`)
}

func TestSkillHandler_Create_Validation(t *testing.T) {
	tests := []struct {
		name string
		body string
	}{
		{name: "missing name", body: `{"category":"backend","proficiency":50}`},
		{name: "proficiency too high", body: `{"name":"Go","category":"backend","proficiency":101}`},
		{name: "proficiency missing", body: `{"name":"Go","category":"backend"}`},
		{name: "negative years", body: `{"name":"Go","category":"backend","proficiency":50,"yearsExperience":-1}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			uc := mockUsecase.NewMockSkillUsecase(t)
			e := newTestEcho()
			e.POST("/api/skills", NewSkillHandler(uc).Create, withIdentity(&entity.Identity{ID: 7, IsActive: true}))

			rec := doJSON(e, http.MethodPost, "/api/skills", tt.body)

			assert.Equal(t, http.StatusBadRequest, rec.Code)
		})
	}
}

func TestSkillHandler_Create_RequiresIdentity(t *testing.T) {
	uc := mockUsecase.NewMockSkillUsecase(t)
	e := newTestEcho()
	e.POST("/api/skills", NewSkillHandler(uc).Create)

	rec := doJSON(e, http.MethodPost, "/api/skills", `{"name":"Go","category":"backend","proficiency":90}`)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestExperienceHandler_List(t *testing.T) {
	uc := mockUsecase.NewMockExperienceUsecase(t)
	e := newTestEcho()
	e.GET("/api/experiences", NewExperienceHandler(uc).List)

	start := time.Date(2021, 3, 1, 0, 0, 0, 0, time.UTC)
	end := time.Date(2023, 6, 1, 0, 0, 0, 0, time.UTC)
	uc.EXPECT().ListExperiences(mock.Anything).Return([]*entity.Experience{
		{ID: 2, Company: "Acme", Position: "Lead", StartDate: end, Current: true, Technologies: []string{"Go"}},
		{ID: 1, Company: "Initech", Position: "Engineer", StartDate: start, EndDate: &end},
	}, nil)

	rec := doJSON(e, http.MethodGet, "/api/experiences", "")

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"success":true,"data":[
		{"id":2,"company":"Acme","position":"Lead","startDate":"2023-06-01T00:00:00Z","current":true,"achievements":[],"technologies":["Go"]},
		{"id":1,"company":"Initech","position":"Engineer","startDate":"2021-03-01T00:00:00Z","endDate":"2023-06-01T00:00:00Z","current":false,"achievements":[],"technologies":[]}
	]}`, rec.Body.String())
}

func TestExperienceHandler_Create(t *testing.T) {
	uc := mockUsecase.NewMockExperienceUsecase(t)
	e := newTestEcho()
	e.POST("/api/experiences", NewExperienceHandler(uc).Create, withIdentity(&entity.Identity{ID: 7, IsActive: true}))

	start := time.Date(2024, 2, 1, 0, 0, 0, 0, time.UTC)
	uc.EXPECT().CreateExperience(mock.Anything, uint(7), &usecase.CreateExperienceInput{
		Company:      "Acme",
		Position:     "Lead",
		StartDate:    start,
		Current:      true,
		Technologies: []string{"Go", "Postgres"},
		CompanyURL:   "https://acme.example.com",
	}).Return(&entity.Experience{ID: 9, UserID: 7, Company: "Acme", Position: "Lead", StartDate: start, Current: true}, nil)

	rec := doJSON(e, http.MethodPost, "/api/experiences",
		`{"company":"Acme","position":"Lead","startDate":"2024-02-01T00:00:00Z","current":true,"technologies":["Go","Postgres"],"companyUrl":"https://acme.example.com"}`)

	assert.Equal(t, http.StatusCreated, rec.Code)
	assert.Contains(t, rec.Body.String(), `"message":"Experience created successfully"`)
}

func TestExperienceHandler_Create_Validation(t *testing.T) {
	tests := []struct {
		name string
		body string
	}{
		{name: "missing start date", body: `{"company":"Acme","position":"Lead"}`},
		{name: "missing company", body: `{"position":"Lead","startDate":"2024-02-01T00:00:00Z"}`},
		{name: "bad company url", body: `{"company":"Acme","position":"Lead","startDate":"2024-02-01T00:00:00Z","companyUrl":"not a url"}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			uc := mockUsecase.NewMockExperienceUsecase(t)
			e := newTestEcho()
			e.POST("/api/experiences", NewExperienceHandler(uc).Create, withIdentity(&entity.Identity{ID: 7, IsActive: true}))

			rec := doJSON(e, http.MethodPost, "/api/experiences", tt.body)

			assert.Equal(t, http.StatusBadRequest, rec.Code)
		})
	}
}

func TestContactHandler_Submit(t *testing.T) {
	uc := mockUsecase.NewMockContactUsecase(t)
	e := newTestEcho()
	e.POST("/api/contact", NewContactHandler(uc).Submit)

	received := time.Date(2026, 4, 5, 6, 7, 8, 0, time.UTC)
	uc.EXPECT().Submit(mock.Anything, &usecase.ContactMessage{
		Name:    "Grace",
		Email:   "grace@example.com",
		Message: "Hello",
	}).Return(&usecase.ContactReceipt{Name: "Grace", ReceivedAt: received}, nil)

	rec := doJSON(e, http.MethodPost, "/api/contact", `{"name":"Grace","email":"grace@example.com","message":"Hello"}`)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{
		"success": true,
		"message": "Thank you for your message! I'll get back to you soon.",
		"data": {"name":"Grace","timestamp":"2026-04-05T06:07:08Z"}
	}`, rec.Body.String())
}

func TestContactHandler_Submit_InvalidEmail(t *testing.T) {
	uc := mockUsecase.NewMockContactUsecase(t)
	e := newTestEcho()
	e.POST("/api/contact", NewContactHandler(uc).Submit)

	rec := doJSON(e, http.MethodPost, "/api/contact", `{"name":"Grace","email":"not-an-email","message":"Hello"}`)

	require.Equal(t, http.StatusBadRequest, rec.Code)
	assert.JSONEq(t, `{"success":false,"error":"Validation Error"}`, rec.Body.String())
}

func TestHealthHandler_Check(t *testing.T) {
	cfg := &config.Config{}
	cfg.Env.Env = "test"
	h := NewHealthHandler(cfg)
	h.now = func() time.Time { return time.Date(2026, 5, 6, 7, 8, 9, 10_000_000, time.UTC) }

	e := newTestEcho()
	e.GET("/health", h.Check)

	rec := doJSON(e, http.MethodGet, "/health", "")

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"status":"success","message":"Server is running","timestamp":"2026-05-06T07:08:09.010Z","environment":"test"}`, rec.Body.String())
}
