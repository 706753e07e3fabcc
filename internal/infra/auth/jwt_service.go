// Package auth provides concrete implementations for authentication-related domain services.
package auth

import (
	"strconv"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"portfolio/config"
	domainerrors "portfolio/internal/domain/errors"
	"portfolio/internal/domain/service"
	"portfolio/internal/errors"
)

// credentialClaims is the payload signed into every credential.
type credentialClaims struct {
	UserID uint   `json:"userId"`
	Email  string `json:"email"`
	jwt.RegisteredClaims
}

// jwtService is a concrete implementation of the TokenService interface using HS256 JWTs.
type jwtService struct {
	secret   []byte
	lifetime time.Duration
	now      func() time.Time
	parser   *jwt.Parser
}

// Option customizes the token service.
type Option func(*jwtService)

// WithClock replaces the wall clock used for issuing and expiry checks.
func WithClock(now func() time.Time) Option {
	return func(s *jwtService) { s.now = now }
}

// NewJWTService is the constructor for jwtService.
// A missing signing secret is a startup misconfiguration and aborts construction.
func NewJWTService(cfg *config.Config) (service.TokenService, error) {
	svc, err := newJWTService(cfg.JWT.Secret, cfg.JWT.Lifetime)
	if err != nil {
		return nil, err
	}

	return svc, nil
}

func newJWTService(secret string, lifetime time.Duration, opts ...Option) (*jwtService, error) {
	if secret == "" {
		return nil, errors.New("jwt secret must be provided")
	}
	if lifetime <= 0 {
		return nil, errors.Errorf("invalid token lifetime %s", lifetime)
	}

	s := &jwtService{
		secret:   []byte(secret),
		lifetime: lifetime,
		now:      time.Now,
	}
	for _, opt := range opts {
		opt(s)
	}

	s.parser = jwt.NewParser(
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithExpirationRequired(),
		jwt.WithIssuedAt(),
		jwt.WithTimeFunc(s.now),
	)

	return s, nil
}

// Issue creates a signed credential for the subject.
func (s *jwtService) Issue(userID uint, email string) (string, error) {
	issuedAt := s.now()
	claims := credentialClaims{
		UserID: userID,
		Email:  email,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   strconv.FormatUint(uint64(userID), 10),
			IssuedAt:  jwt.NewNumericDate(issuedAt),
			ExpiresAt: jwt.NewNumericDate(issuedAt.Add(s.lifetime)),
		},
	}

	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(s.secret)
	if err != nil {
		return "", errors.Wrap(err, "failed to sign token")
	}

	return token, nil
}

// Validate verifies signature and expiry. The jwt cause is deliberately not
// wrapped so callers cannot tell a tampered token from an expired one.
func (s *jwtService) Validate(tokenString string) (*service.TokenClaims, error) {
	claims := &credentialClaims{}
	token, err := s.parser.ParseWithClaims(tokenString, claims, func(*jwt.Token) (any, error) {
		return s.secret, nil
	})
	if err != nil || !token.Valid {
		return nil, errors.WithStack(domainerrors.ErrInvalidCredential)
	}
	if claims.UserID == 0 || claims.Subject != strconv.FormatUint(uint64(claims.UserID), 10) {
		return nil, errors.WithStack(domainerrors.ErrInvalidCredential)
	}

	return &service.TokenClaims{
		UserID:    claims.UserID,
		Email:     claims.Email,
		IssuedAt:  claims.IssuedAt.Time,
		ExpiresAt: claims.ExpiresAt.Time,
	}, nil
}

// Lifetime returns the configured credential lifetime.
func (s *jwtService) Lifetime() time.Duration {
	return s.lifetime
}
