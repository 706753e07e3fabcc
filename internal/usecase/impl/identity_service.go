// Package impl contains the implementation of the application's business logic.
package impl

import (
	"context"
	"log/slog"

	deliverycontext "portfolio/internal/delivery/context"
	"portfolio/internal/domain/entity"
	domainerrors "portfolio/internal/domain/errors"
	"portfolio/internal/domain/repository"
	"portfolio/internal/domain/service"
	"portfolio/internal/usecase"

	"github.com/pkg/errors"
	"go.uber.org/fx"
)

type identityService struct {
	userRepo     repository.UserRepository
	tokenService service.TokenService
	logger       *slog.Logger
}

// IdentityServiceParams holds dependencies for the identity resolver, injected by Fx.
type IdentityServiceParams struct {
	fx.In

	UserRepo     repository.UserRepository
	TokenService service.TokenService
	Logger       *slog.Logger
}

// NewIdentityService is the constructor for identityService.
func NewIdentityService(params IdentityServiceParams) usecase.IdentityUsecase {
	return &identityService{
		userRepo:     params.UserRepo,
		tokenService: params.TokenService,
		logger:       params.Logger,
	}
}

func (srv *identityService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

func (srv *identityService) ResolveMandatory(ctx context.Context, credential string) (*entity.Identity, error) {
	return srv.resolve(ctx, credential)
}

func (srv *identityService) ResolveOptional(ctx context.Context, credential string) *entity.Identity {
	identity, err := srv.resolve(ctx, credential)
	if err != nil {
		if domainerrors.KindOf(err) == domainerrors.KindUnclassified {
			srv.log(ctx).Warn("Optional identity lookup failed", slog.Any("error", err))
		}

		return nil
	}

	return identity
}

// resolve is shared by both variants; the subject is reloaded on every call so
// deactivation takes effect immediately.
func (srv *identityService) resolve(ctx context.Context, credential string) (*entity.Identity, error) {
	if credential == "" {
		return nil, errors.WithStack(domainerrors.ErrNoCredential)
	}

	claims, err := srv.tokenService.Validate(credential)
	if err != nil {
		srv.log(ctx).Debug("Credential rejected", slog.Any("error", err))

		return nil, errors.WithStack(domainerrors.ErrCredentialRejected)
	}

	user, err := srv.userRepo.FindByID(ctx, claims.UserID)
	if errors.Is(err, repository.ErrUserNotFound) {
		srv.log(ctx).Debug("Credential subject not found", slog.Any("userID", claims.UserID))

		return nil, errors.WithStack(domainerrors.ErrSubjectUnavailable)
	}
	if err != nil {
		return nil, errors.Wrap(err, "failed to load credential subject")
	}

	if !user.IsActive {
		srv.log(ctx).Debug("Credential subject inactive", slog.Any("userID", claims.UserID))

		return nil, errors.WithStack(domainerrors.ErrSubjectUnavailable)
	}

	return user.Identity(), nil
}
