package middleware

import (
	"bytes"
	"encoding/json"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"portfolio/config"
	deliverycontext "portfolio/internal/delivery/context"
	domainerrors "portfolio/internal/domain/errors"

	"github.com/go-playground/validator/v10"
	"github.com/golang-jwt/jwt/v5"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

type errorBody struct {
	Success    bool   `json:"success"`
	Error      string `json:"error"`
	RetryAfter *int   `json:"retryAfter"`
	Stack      string `json:"stack"`
}

func serveError(t *testing.T, env string, err error) (*httptest.ResponseRecorder, errorBody) {
	t.Helper()

	e := newTestEcho(env)
	e.GET("/fail", func(echo.Context) error { return err })

	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/fail", nil))

	var body errorBody
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))

	return rec, body
}

func validationError(t *testing.T) error {
	t.Helper()

	type input struct {
		Email string `validate:"required,email"`
	}
	err := validator.New().Struct(input{})
	require.Error(t, err)

	return err
}

func TestErrorMiddleware_Classification(t *testing.T) {
	tests := []struct {
		name        string
		err         error
		wantStatus  int
		wantMessage string
	}{
		{"duplicate key from driver", errors.Wrap(gorm.ErrDuplicatedKey, "failed to create user"), 400, "Duplicate field value entered"},
		{"duplicate from repository", errors.WithStack(domainerrors.ErrDuplicate), 400, "Duplicate field value entered"},
		{"foreign key violation", errors.Wrap(gorm.ErrForeignKeyViolated, "insert"), 400, "Invalid input data"},
		{"invalid id", errors.WithStack(domainerrors.ErrInvalidID), 400, "Invalid ID"},
		{"codec rejection", errors.WithStack(domainerrors.ErrInvalidCredential), 401, "Invalid token"},
		{"raw jwt signature error", errors.WithStack(jwt.ErrTokenSignatureInvalid), 401, "Invalid token"},
		{"raw jwt malformed", jwt.ErrTokenMalformed, 401, "Invalid token"},
		{"raw jwt expiry", errors.Wrap(jwt.ErrTokenExpired, "parse"), 401, "Token expired"},
		{"validator errors", validationError(t), 400, "Validation Error"},
		{"domain validation", errors.WithStack(domainerrors.ErrValidationFailed), 400, "Validation Error"},
		{"no credential", errors.WithStack(domainerrors.ErrNoCredential), 401, "Access denied. No token provided."},
		{"credential rejected", errors.WithStack(domainerrors.ErrCredentialRejected), 401, "Invalid token."},
		{"subject unavailable", errors.WithStack(domainerrors.ErrSubjectUnavailable), 401, "User not found or inactive."},
		{"not found", errors.WithStack(domainerrors.ErrProjectNotFound), 404, "Project not found"},
		{"echo http error", echo.NewHTTPError(http.StatusMethodNotAllowed, "Method Not Allowed"), 405, "Method Not Allowed"},
		{"unclassified", errors.New("boom"), 500, "Internal Server Error"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec, body := serveError(t, "production", tt.err)

			assert.Equal(t, tt.wantStatus, rec.Code)
			assert.False(t, body.Success)
			assert.Equal(t, tt.wantMessage, body.Error)
			assert.Nil(t, body.RetryAfter)
			assert.Empty(t, body.Stack)
		})
	}
}

func TestErrorMiddleware_RateLimitBody(t *testing.T) {
	err := errors.WithStack(domainerrors.NewRateLimitError(899600 * time.Millisecond))

	rec, _ := serveError(t, "production", err)

	assert.Equal(t, http.StatusTooManyRequests, rec.Code)
	assert.JSONEq(t, `{"success":false,"error":"Too many requests, please try again later.","retryAfter":900}`, rec.Body.String())
}

func TestErrorMiddleware_StackOnlyInDevelopment(t *testing.T) {
	_, devBody := serveError(t, config.EnvDevelopment, errors.New("boom"))
	assert.Equal(t, "Internal Server Error", devBody.Error)
	assert.Contains(t, devBody.Stack, "boom")
	assert.Contains(t, devBody.Stack, "error_middleware_test.go")

	_, prodBody := serveError(t, "production", errors.New("boom"))
	assert.Empty(t, prodBody.Stack)
}

func TestErrorMiddleware_UnknownRoute(t *testing.T) {
	e := newTestEcho("production")
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/missing", nil))

	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.JSONEq(t, `{"success":false,"error":"Not Found"}`, rec.Body.String())
}

func TestErrorMiddleware_CommittedResponseIsLeftAlone(t *testing.T) {
	e := newTestEcho("production")
	e.GET("/partial", func(c echo.Context) error {
		if err := c.String(http.StatusOK, "partial"); err != nil {
			return err
		}

		return errors.New("late failure")
	})

	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/partial", nil))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "partial", rec.Body.String())
}

func TestErrorMiddleware_LogCarriesRequestID(t *testing.T) {
	var buf bytes.Buffer
	logger := slog.New(slog.NewJSONHandler(&buf, nil))

	e := echo.New()
	e.HTTPErrorHandler = NewErrorMiddleware(logger, newTestConfig("production")).HandleHTTPError
	e.GET("/fail", func(echo.Context) error { return errors.WithStack(domainerrors.ErrProjectNotFound) })

	req := httptest.NewRequest(http.MethodGet, "/fail", nil)
	req = req.WithContext(deliverycontext.WithRequestID(req.Context(), "req-42"))
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	require.Equal(t, http.StatusNotFound, rec.Code)

	var line map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &line))
	assert.Equal(t, "Request failed", line["msg"])
	assert.Equal(t, "req-42", line["request_id"])
	assert.EqualValues(t, http.StatusNotFound, line["status"])
}
