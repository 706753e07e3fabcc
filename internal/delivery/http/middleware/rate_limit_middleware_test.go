package middleware

import (
	"net/http"
	"net/http/httptest"
	"strconv"
	"testing"
	"time"

	"portfolio/internal/domain/service"
	mockSvc "portfolio/internal/mocks/service"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func serveLimited(e *echo.Echo, remoteAddr string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, "/ping", nil)
	req.RemoteAddr = remoteAddr
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	return rec
}

func newLimitedEcho(limiter service.RateLimiter) *echo.Echo {
	e := newTestEcho("production")
	e.IPExtractor = echo.ExtractIPDirect()
	e.Use(NewRateLimitMiddleware(limiter, newDiscardLogger()).Limit)
	e.GET("/ping", func(c echo.Context) error { return c.String(http.StatusOK, "pong") })

	return e
}

func TestRateLimitMiddleware_Headers(t *testing.T) {
	limiter := mockSvc.NewMockRateLimiter(t)
	resetAt := time.Date(2026, 3, 1, 9, 15, 0, 250_000_000, time.FixedZone("CET", 3600))

	limiter.EXPECT().Allow(mock.Anything, "198.51.100.4").Return(service.RateDecision{
		Allowed:   true,
		Limit:     100,
		Remaining: 42,
		ResetAt:   resetAt,
	}, nil)

	rec := serveLimited(newLimitedEcho(limiter), "198.51.100.4:5555")

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "100", rec.Header().Get(HeaderRateLimitLimit))
	assert.Equal(t, "42", rec.Header().Get(HeaderRateLimitRemaining))
	assert.Equal(t, "2026-03-01T08:15:00.250Z", rec.Header().Get(HeaderRateLimitReset))
}

func TestRateLimitMiddleware_Rejection(t *testing.T) {
	limiter := mockSvc.NewMockRateLimiter(t)
	limiter.EXPECT().Allow(mock.Anything, "198.51.100.4").Return(service.RateDecision{
		Allowed:    false,
		Limit:      100,
		Remaining:  0,
		ResetAt:    time.Now().Add(90 * time.Second),
		RetryAfter: 90 * time.Second,
	}, nil)

	rec := serveLimited(newLimitedEcho(limiter), "198.51.100.4:5555")

	assert.Equal(t, http.StatusTooManyRequests, rec.Code)
	assert.Equal(t, "0", rec.Header().Get(HeaderRateLimitRemaining))
	assert.JSONEq(t, `{"success":false,"error":"Too many requests, please try again later.","retryAfter":90}`, rec.Body.String())
}

func TestRateLimitMiddleware_UnknownClient(t *testing.T) {
	limiter := mockSvc.NewMockRateLimiter(t)
	limiter.EXPECT().Allow(mock.Anything, "unknown").Return(service.RateDecision{Allowed: true, Limit: 1}, nil)

	rec := serveLimited(newLimitedEcho(limiter), "")

	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestRateLimitMiddleware_FailsOpen(t *testing.T) {
	limiter := mockSvc.NewMockRateLimiter(t)
	limiter.EXPECT().Allow(mock.Anything, mock.Anything).Return(service.RateDecision{}, errors.New("redis: connection refused"))

	rec := serveLimited(newLimitedEcho(limiter), "198.51.100.4:5555")

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Empty(t, rec.Header().Get(HeaderRateLimitLimit))
}

func TestRateLimitMiddleware_UnknownRoutesAreCounted(t *testing.T) {
	limiter := mockSvc.NewMockRateLimiter(t)
	limiter.EXPECT().Allow(mock.Anything, "198.51.100.4").Return(service.RateDecision{Allowed: true, Limit: 5, Remaining: 4}, nil).Once()

	e := newLimitedEcho(limiter)
	req := httptest.NewRequest(http.MethodGet, "/nowhere", nil)
	req.RemoteAddr = "198.51.100.4:5555"
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Equal(t, strconv.Itoa(4), rec.Header().Get(HeaderRateLimitRemaining))
}
