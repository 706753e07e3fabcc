package handler

import (
	"net/http"
	"time"

	"portfolio/config"

	"github.com/labstack/echo/v4"
)

type healthResponse struct {
	Status      string `json:"status"`
	Message     string `json:"message"`
	Timestamp   string `json:"timestamp"`
	Environment string `json:"environment"`
}

// HealthHandler reports liveness.
type HealthHandler struct {
	env string
	now func() time.Time
}

// NewHealthHandler is the constructor for HealthHandler.
func NewHealthHandler(cfg *config.Config) *HealthHandler {
	return &HealthHandler{env: cfg.Env.Env, now: time.Now}
}

func (h *HealthHandler) Check(c echo.Context) error {
	return c.JSON(http.StatusOK, healthResponse{
		Status:      "success",
		Message:     "Server is running",
		Timestamp:   h.now().UTC().Format("2006-01-02T15:04:05.000Z"),
		Environment: h.env,
	})
}
