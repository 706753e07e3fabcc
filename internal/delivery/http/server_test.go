package http

import (
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"portfolio/config"
	httpmiddleware "portfolio/internal/delivery/http/middleware"
	"portfolio/internal/delivery/http/router"
	"portfolio/internal/delivery/http/router/handler"
	requestid "portfolio/internal/delivery/middleware"
	domainerrors "portfolio/internal/domain/errors"
	"portfolio/internal/infra/ratelimit"
	mockUsecase "portfolio/internal/mocks/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func newTestServer(t *testing.T, capacity int) *echo.Echo {
	t.Helper()

	cfg := &config.Config{}
	cfg.Env.Env = "test"
	cfg.HTTP.CORSOrigin = "http://localhost:3000"
	cfg.HTTP.MaxRequestBodySize = "1K"

	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	identity := mockUsecase.NewMockIdentityUsecase(t)
	identity.EXPECT().ResolveMandatory(mock.Anything, "").
		Return(nil, errors.WithStack(domainerrors.ErrNoCredential)).Maybe()

	return newEcho(HTTPParams{
		Config: cfg,
		Logger: logger,
		RouterParams: router.RouterParams{
			AuthHandler:       handler.NewAuthHandler(mockUsecase.NewMockAuthUsecase(t), logger),
			ProjectHandler:    handler.NewProjectHandler(mockUsecase.NewMockProjectUsecase(t)),
			ProfileHandler:    handler.NewProfileHandler(mockUsecase.NewMockProfileUsecase(t)),
			SkillHandler:      handler.NewSkillHandler(mockUsecase.NewMockSkillUsecase(t)),
			ExperienceHandler: handler.NewExperienceHandler(mockUsecase.NewMockExperienceUsecase(t)),
			ContactHandler:    handler.NewContactHandler(mockUsecase.NewMockContactUsecase(t)),
			HealthHandler:     handler.NewHealthHandler(cfg),
			AuthMiddleware:    httpmiddleware.NewAuthMiddleware(identity),
		},
		ErrorMiddleware: httpmiddleware.NewErrorMiddleware(logger, cfg),
		RateLimit:       httpmiddleware.NewRateLimitMiddleware(ratelimit.NewMemoryLimiter(time.Minute, capacity), logger),
		RequestID:       requestid.NewRequestIDMiddleware(logger),
	})
}

func TestServer_HealthCarriesPipelineHeaders(t *testing.T) {
	e := newTestServer(t, 10)

	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	req.Header.Set(echo.HeaderOrigin, "http://localhost:3000")
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "10", rec.Header().Get(httpmiddleware.HeaderRateLimitLimit))
	assert.Equal(t, "9", rec.Header().Get(httpmiddleware.HeaderRateLimitRemaining))
	assert.Equal(t, "http://localhost:3000", rec.Header().Get(echo.HeaderAccessControlAllowOrigin))
	assert.Equal(t, "true", rec.Header().Get(echo.HeaderAccessControlAllowCredentials))
	assert.Equal(t, "nosniff", rec.Header().Get(echo.HeaderXContentTypeOptions))
	assert.NotEmpty(t, rec.Header().Get(echo.HeaderXRequestID))
}

func TestServer_ProtectedRouteWithoutCredential(t *testing.T) {
	e := newTestServer(t, 10)

	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/auth/me", nil))

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.JSONEq(t, `{"success":false,"error":"Access denied. No token provided."}`, rec.Body.String())
}

func TestServer_UnknownRouteIsGoverned(t *testing.T) {
	e := newTestServer(t, 1)

	first := httptest.NewRecorder()
	e.ServeHTTP(first, httptest.NewRequest(http.MethodGet, "/nope", nil))
	assert.Equal(t, http.StatusNotFound, first.Code)
	assert.Equal(t, "0", first.Header().Get(httpmiddleware.HeaderRateLimitRemaining))

	second := httptest.NewRecorder()
	e.ServeHTTP(second, httptest.NewRequest(http.MethodGet, "/health", nil))
	assert.Equal(t, http.StatusTooManyRequests, second.Code)
	assert.Contains(t, second.Body.String(), `"retryAfter":60`)
}

func TestServer_BodyLimit(t *testing.T) {
	e := newTestServer(t, 10)

	body := `{"email":"a@b.co","password":"` + strings.Repeat("x", 2048) + `"}`
	req := httptest.NewRequest(http.MethodPost, "/api/auth/login", strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusRequestEntityTooLarge, rec.Code)
}

func TestServer_ShortCircuitedRequestsAreGoverned(t *testing.T) {
	e := newTestServer(t, 2)

	oversized := func() *httptest.ResponseRecorder {
		body := `{"email":"a@b.co","password":"` + strings.Repeat("x", 2048) + `"}`
		req := httptest.NewRequest(http.MethodPost, "/api/auth/login", strings.NewReader(body))
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
		req.RemoteAddr = "10.0.0.1:40000"
		rec := httptest.NewRecorder()
		e.ServeHTTP(rec, req)

		return rec
	}
	preflight := func() *httptest.ResponseRecorder {
		req := httptest.NewRequest(http.MethodOptions, "/api/projects", nil)
		req.Header.Set(echo.HeaderOrigin, "http://localhost:3000")
		req.Header.Set(echo.HeaderAccessControlRequestMethod, http.MethodPost)
		req.RemoteAddr = "10.0.0.2:40000"
		rec := httptest.NewRecorder()
		e.ServeHTTP(rec, req)

		return rec
	}

	for name, send := range map[string]func() *httptest.ResponseRecorder{
		"oversized body": oversized,
		"cors preflight": preflight,
	} {
		t.Run(name, func(t *testing.T) {
			first := send()
			assert.NotEqual(t, http.StatusTooManyRequests, first.Code)
			assert.Equal(t, "1", first.Header().Get(httpmiddleware.HeaderRateLimitRemaining))

			second := send()
			assert.NotEqual(t, http.StatusTooManyRequests, second.Code)
			assert.Equal(t, "0", second.Header().Get(httpmiddleware.HeaderRateLimitRemaining))

			third := send()
			assert.Equal(t, http.StatusTooManyRequests, third.Code)
			assert.Equal(t, "0", third.Header().Get(httpmiddleware.HeaderRateLimitRemaining))
		})
	}
}
