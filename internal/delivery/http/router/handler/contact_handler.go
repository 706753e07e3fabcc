package handler

import (
	"net/http"
	"time"

	"portfolio/internal/delivery/http/response"
	"portfolio/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

type contactRequest struct {
	Name    string `json:"name" validate:"required,max=100"`
	Email   string `json:"email" validate:"required,email"`
	Message string `json:"message" validate:"required,max=5000"`
}

type contactResponse struct {
	Name      string    `json:"name"`
	Timestamp time.Time `json:"timestamp"`
}

// ContactHandler accepts contact form submissions.
type ContactHandler struct {
	uc usecase.ContactUsecase
}

// NewContactHandler is the constructor for ContactHandler, injected by Fx.
func NewContactHandler(uc usecase.ContactUsecase) *ContactHandler {
	return &ContactHandler{uc: uc}
}

func (h *ContactHandler) Submit(c echo.Context) error {
	var req contactRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	receipt, err := h.uc.Submit(c.Request().Context(), &usecase.ContactMessage{
		Name:    req.Name,
		Email:   req.Email,
		Message: req.Message,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, contactResponse{
		Name:      receipt.Name,
		Timestamp: receipt.ReceivedAt,
	}, "Thank you for your message! I'll get back to you soon.")
}
