package middleware

import (
	"io"
	"log/slog"

	"portfolio/config"

	"github.com/labstack/echo/v4"
)

func newDiscardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func newTestConfig(env string) *config.Config {
	cfg := &config.Config{}
	cfg.Env.Env = env

	return cfg
}

// newTestEcho returns an echo instance using the API error handler.
func newTestEcho(env string) *echo.Echo {
	e := echo.New()
	e.HTTPErrorHandler = NewErrorMiddleware(newDiscardLogger(), newTestConfig(env)).HandleHTTPError

	return e
}
