package middleware

import (
	"log/slog"
	"strconv"

	deliverycontext "portfolio/internal/delivery/context"
	domainerrors "portfolio/internal/domain/errors"
	"portfolio/internal/domain/service"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

const (
	HeaderRateLimitLimit     = "X-RateLimit-Limit"
	HeaderRateLimitRemaining = "X-RateLimit-Remaining"
	HeaderRateLimitReset     = "X-RateLimit-Reset"

	// unknownClientKey groups requests whose client address cannot be determined.
	unknownClientKey = "unknown"

	resetTimeLayout = "2006-01-02T15:04:05.000Z"
)

// RateLimitMiddleware applies the fixed-window governor to every request.
type RateLimitMiddleware struct {
	limiter service.RateLimiter
	logger  *slog.Logger
}

// NewRateLimitMiddleware is the constructor for RateLimitMiddleware.
func NewRateLimitMiddleware(limiter service.RateLimiter, logger *slog.Logger) *RateLimitMiddleware {
	return &RateLimitMiddleware{limiter: limiter, logger: logger}
}

// Limit counts the request against its client's window, publishes the quota
// headers and rejects the request once the window is exhausted.
func (m *RateLimitMiddleware) Limit(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		key := c.RealIP()
		if key == "" {
			key = unknownClientKey
		}

		ctx := c.Request().Context()
		decision, err := m.limiter.Allow(ctx, key)
		if err != nil {
			deliverycontext.GetLoggerOrDefault(ctx, m.logger).Warn("Rate limiter unavailable, admitting request",
				slog.String("client", key),
				slog.Any("error", err),
			)

			return next(c)
		}

		header := c.Response().Header()
		header.Set(HeaderRateLimitLimit, strconv.Itoa(decision.Limit))
		header.Set(HeaderRateLimitRemaining, strconv.Itoa(decision.Remaining))
		header.Set(HeaderRateLimitReset, decision.ResetAt.UTC().Format(resetTimeLayout))

		if !decision.Allowed {
			return errors.WithStack(domainerrors.NewRateLimitError(decision.RetryAfter))
		}

		return next(c)
	}
}
