package service

import "time"

// TokenClaims is the identity claim carried by a validated credential.
type TokenClaims struct {
	UserID    uint
	Email     string
	IssuedAt  time.Time
	ExpiresAt time.Time
}

// TokenService issues and validates the signed, time-bounded credentials handed to clients.
// Validation is stateless: there is no revocation list, expiry is the only invalidation.
type TokenService interface {
	// Issue creates a credential for the given subject expiring after the configured lifetime.
	Issue(userID uint, email string) (string, error)

	// Validate checks signature and expiry. Every failure returns domainerrors.ErrInvalidCredential.
	Validate(token string) (*TokenClaims, error)

	// Lifetime returns the configured credential lifetime.
	Lifetime() time.Duration
}
