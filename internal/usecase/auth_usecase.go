package usecase

import (
	"context"

	"portfolio/internal/domain/entity"
)

// --- Input DTOs ---

// RegisterInput defines the data required to register a new account.
type RegisterInput struct {
	Email     string
	Password  string
	FirstName string
	LastName  string
	Title     string
	Bio       string
}

// LoginInput defines the data required for a user to log in.
type LoginInput struct {
	Email    string
	Password string
}

// --- Output DTOs ---

// AuthOutput carries the account and a freshly issued credential.
type AuthOutput struct {
	User  *entity.User
	Token string
}

// AuthUsecase defines account registration, login and self lookup.
type AuthUsecase interface {
	Register(ctx context.Context, input *RegisterInput) (*AuthOutput, error)
	Login(ctx context.Context, input *LoginInput) (*AuthOutput, error)
	Me(ctx context.Context, userID uint) (*entity.User, error)
}
