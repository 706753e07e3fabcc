package middleware

import (
	"fmt"
	"log/slog"
	"math"
	"net/http"

	"portfolio/config"
	deliverycontext "portfolio/internal/delivery/context"
	"portfolio/internal/delivery/http/response"
	domainerrors "portfolio/internal/domain/errors"

	"github.com/go-playground/validator/v10"
	"github.com/golang-jwt/jwt/v5"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"gorm.io/gorm"
)

const internalErrorMessage = "Internal Server Error"

// ErrorMiddleware turns any error returned by a handler or middleware into the
// API's error envelope.
type ErrorMiddleware struct {
	logger *slog.Logger
	dev    bool
}

// NewErrorMiddleware creates a new error handling middleware
func NewErrorMiddleware(logger *slog.Logger, cfg *config.Config) *ErrorMiddleware {
	return &ErrorMiddleware{
		logger: logger,
		dev:    cfg.IsDevelopment(),
	}
}

// normalized is the client-facing shape of a failure.
type normalized struct {
	status     int
	message    string
	retryAfter *int
}

// HandleHTTPError handles errors as Echo's HTTPErrorHandler
func (m *ErrorMiddleware) HandleHTTPError(err error, c echo.Context) {
	req := c.Request()
	log := m.logger.With(slog.String("request_id", deliverycontext.RequestIDFrom(req.Context())))

	if c.Response().Committed {
		log.Warn("Error after response was committed", slog.Any("error", err))

		return
	}

	out := classify(err)

	level := slog.LevelWarn
	if out.status >= http.StatusInternalServerError {
		level = slog.LevelError
	}
	log.LogAttrs(req.Context(), level, "Request failed",
		slog.Int("status", out.status),
		slog.String("method", req.Method),
		slog.String("path", req.URL.Path),
		slog.Any("error", err),
	)

	if req.Method == http.MethodHead {
		err = c.NoContent(out.status)
	} else {
		body := response.ErrorResponse{
			Error:      out.message,
			RetryAfter: out.retryAfter,
		}
		if m.dev {
			body.Stack = fmt.Sprintf("%+v", err)
		}
		err = response.Failure(c, out.status, body)
	}
	if err != nil {
		log.Error("Failed to write error response", slog.Any("error", err))
	}
}

// classify maps err to a status and message. The first matching rule wins.
func classify(err error) normalized {
	switch {
	case errors.Is(err, gorm.ErrDuplicatedKey):
		return fromAppError(domainerrors.ErrDuplicate)
	case errors.Is(err, gorm.ErrForeignKeyViolated):
		return fromAppError(domainerrors.ErrInvalidRelation)
	case errors.Is(err, jwt.ErrTokenExpired):
		return fromAppError(domainerrors.ErrTokenExpired)
	case isTokenError(err):
		return fromAppError(domainerrors.ErrInvalidCredential)
	}

	var validationErrs validator.ValidationErrors
	if errors.As(err, &validationErrs) {
		return fromAppError(domainerrors.ErrValidationFailed)
	}

	var appErr domainerrors.AppError
	if errors.As(err, &appErr) {
		return fromAppError(appErr)
	}

	var httpErr *echo.HTTPError
	if errors.As(err, &httpErr) {
		message, ok := httpErr.Message.(string)
		if !ok {
			message = fmt.Sprintf("%v", httpErr.Message)
		}

		return normalized{status: httpErr.Code, message: message}
	}

	return normalized{status: http.StatusInternalServerError, message: internalErrorMessage}
}

func fromAppError(appErr domainerrors.AppError) normalized {
	switch appErr.Kind() {
	case domainerrors.KindRateLimited:
		out := normalized{status: appErr.HTTPCode(), message: appErr.Message()}
		var rateErr *domainerrors.RateLimitError
		if errors.As(appErr, &rateErr) {
			seconds := int(math.Round(rateErr.RetryAfter.Seconds()))
			out.retryAfter = &seconds
		}

		return out
	case domainerrors.KindInvalidCredential,
		domainerrors.KindTokenExpired,
		domainerrors.KindUnauthenticated,
		domainerrors.KindDuplicate,
		domainerrors.KindInvalidRelation,
		domainerrors.KindInvalidID,
		domainerrors.KindValidation,
		domainerrors.KindNotFound:
		return normalized{status: appErr.HTTPCode(), message: appErr.Message()}
	case domainerrors.KindUnclassified:
		return normalized{status: http.StatusInternalServerError, message: internalErrorMessage}
	default:
		return normalized{status: http.StatusInternalServerError, message: internalErrorMessage}
	}
}

// isTokenError reports whether err came straight from the jwt library.
func isTokenError(err error) bool {
	for _, target := range []error{
		jwt.ErrTokenMalformed,
		jwt.ErrTokenUnverifiable,
		jwt.ErrTokenSignatureInvalid,
		jwt.ErrSignatureInvalid,
		jwt.ErrTokenInvalidClaims,
		jwt.ErrTokenNotValidYet,
		jwt.ErrTokenUsedBeforeIssued,
		jwt.ErrTokenRequiredClaimMissing,
	} {
		if errors.Is(err, target) {
			return true
		}
	}

	return false
}
