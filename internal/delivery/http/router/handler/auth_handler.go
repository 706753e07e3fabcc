// Package handler contains the HTTP handlers for the application.
package handler

import (
	"log/slog"
	"net/http"

	deliverycontext "portfolio/internal/delivery/context"
	"portfolio/internal/delivery/http/response"
	domainerrors "portfolio/internal/domain/errors"
	"portfolio/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

type registerRequest struct {
	Email     string `json:"email" validate:"required,email"`
	Password  string `json:"password" validate:"required,min=6"`
	FirstName string `json:"firstName" validate:"required,max=100"`
	LastName  string `json:"lastName" validate:"required,max=100"`
	Title     string `json:"title" validate:"max=150"`
	Bio       string `json:"bio"`
}

type loginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

type authResponse struct {
	User  *userResponse `json:"user"`
	Token string        `json:"token"`
}

// AuthHandler holds dependencies for account handlers.
type AuthHandler struct {
	uc     usecase.AuthUsecase
	logger *slog.Logger
}

// NewAuthHandler is the constructor for AuthHandler, injected by Fx.
func NewAuthHandler(uc usecase.AuthUsecase, logger *slog.Logger) *AuthHandler {
	return &AuthHandler{
		uc:     uc,
		logger: logger,
	}
}

// Register handles the account registration request.
func (h *AuthHandler) Register(c echo.Context) error {
	var req registerRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	output, err := h.uc.Register(c.Request().Context(), &usecase.RegisterInput{
		Email:     req.Email,
		Password:  req.Password,
		FirstName: req.FirstName,
		LastName:  req.LastName,
		Title:     req.Title,
		Bio:       req.Bio,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, authResponse{
		User:  toUserResponse(output.User),
		Token: output.Token,
	}, "User registered successfully")
}

// Login handles the login request.
func (h *AuthHandler) Login(c echo.Context) error {
	var req loginRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	output, err := h.uc.Login(c.Request().Context(), &usecase.LoginInput{
		Email:    req.Email,
		Password: req.Password,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, authResponse{
		User:  toUserResponse(output.User),
		Token: output.Token,
	}, "Login successful")
}

// Me returns the authenticated user's full record. Requires Authenticate.
func (h *AuthHandler) Me(c echo.Context) error {
	identity := deliverycontext.IdentityFrom(c.Request().Context())
	if identity == nil {
		return errors.WithStack(domainerrors.ErrNoCredential)
	}

	user, err := h.uc.Me(c.Request().Context(), identity.ID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, map[string]any{"user": toUserResponse(user)}, "")
}

// Logout acknowledges a logout. Credentials are stateless, so the client
// discards its token.
func (h *AuthHandler) Logout(c echo.Context) error {
	return response.Message(c, http.StatusOK, "Logged out successfully")
}

// bindAndValidate binds the body into req and runs the echo validator.
func bindAndValidate(c echo.Context, req any) error {
	if err := c.Bind(req); err != nil {
		return errors.WithStack(err)
	}
	if err := c.Validate(req); err != nil {
		return err
	}

	return nil
}
