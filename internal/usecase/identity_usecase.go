// Package usecase contains the application-specific business rules.
// It orchestrates the domain layer to perform tasks.
package usecase

import (
	"context"

	"portfolio/internal/domain/entity"
)

// IdentityUsecase turns a presented credential into the caller's identity.
type IdentityUsecase interface {
	// ResolveMandatory fails with an Unauthenticated error when the caller cannot
	// be identified. Persistence failures are returned unchanged.
	ResolveMandatory(ctx context.Context, credential string) (*entity.Identity, error)

	// ResolveOptional returns nil whenever ResolveMandatory would fail.
	ResolveOptional(ctx context.Context, credential string) *entity.Identity
}
