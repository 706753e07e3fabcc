package impl

import (
	"context"
	"testing"
	"time"

	"portfolio/internal/domain/entity"
	domainerrors "portfolio/internal/domain/errors"
	"portfolio/internal/domain/repository"
	"portfolio/internal/domain/service"
	mockRepo "portfolio/internal/mocks/repository"
	mockSvc "portfolio/internal/mocks/service"
	"portfolio/internal/usecase"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type identityServiceFixtures struct {
	service      usecase.IdentityUsecase
	userRepo     *mockRepo.MockUserRepository
	tokenService *mockSvc.MockTokenService
}

func createTestIdentityService(t *testing.T) identityServiceFixtures {
	userRepo := mockRepo.NewMockUserRepository(t)
	tokenService := mockSvc.NewMockTokenService(t)

	return identityServiceFixtures{
		service: NewIdentityService(IdentityServiceParams{
			UserRepo:     userRepo,
			TokenService: tokenService,
			Logger:       newDiscardLogger(),
		}),
		userRepo:     userRepo,
		tokenService: tokenService,
	}
}

func validClaims(userID uint) *service.TokenClaims {
	now := time.Now()

	return &service.TokenClaims{
		UserID:    userID,
		Email:     "owner@example.com",
		IssuedAt:  now,
		ExpiresAt: now.Add(time.Hour),
	}
}

func TestIdentityService_ResolutionMatrix(t *testing.T) {
	activeUser := &entity.User{ID: 7, Email: "owner@example.com", FirstName: "Ada", LastName: "Lovelace", IsActive: true}
	inactiveUser := &entity.User{ID: 8, Email: "gone@example.com", IsActive: false}

	tests := []struct {
		name       string
		credential string
		setup      func(fx identityServiceFixtures)
		wantErr    error
		wantID     uint
	}{
		{
			name:       "no credential",
			credential: "",
			setup:      func(identityServiceFixtures) {},
			wantErr:    domainerrors.ErrNoCredential,
		},
		{
			name:       "invalid credential",
			credential: "tampered",
			setup: func(fx identityServiceFixtures) {
				fx.tokenService.EXPECT().Validate("tampered").
					Return(nil, errors.WithStack(domainerrors.ErrInvalidCredential))
			},
			wantErr: domainerrors.ErrCredentialRejected,
		},
		{
			name:       "unknown subject",
			credential: "orphan",
			setup: func(fx identityServiceFixtures) {
				fx.tokenService.EXPECT().Validate("orphan").Return(validClaims(99), nil)
				fx.userRepo.EXPECT().FindByID(context.Background(), uint(99)).Return(nil, repository.ErrUserNotFound)
			},
			wantErr: domainerrors.ErrSubjectUnavailable,
		},
		{
			name:       "inactive subject",
			credential: "inactive",
			setup: func(fx identityServiceFixtures) {
				fx.tokenService.EXPECT().Validate("inactive").Return(validClaims(8), nil)
				fx.userRepo.EXPECT().FindByID(context.Background(), uint(8)).Return(inactiveUser, nil)
			},
			wantErr: domainerrors.ErrSubjectUnavailable,
		},
		{
			name:       "active subject",
			credential: "good",
			setup: func(fx identityServiceFixtures) {
				fx.tokenService.EXPECT().Validate("good").Return(validClaims(7), nil)
				fx.userRepo.EXPECT().FindByID(context.Background(), uint(7)).Return(activeUser, nil)
			},
			wantID: 7,
		},
	}

	for _, tt := range tests {
		t.Run("mandatory/"+tt.name, func(t *testing.T) {
			fx := createTestIdentityService(t)
			tt.setup(fx)

			identity, err := fx.service.ResolveMandatory(context.Background(), tt.credential)
			if tt.wantErr != nil {
				require.Error(t, err)
				assert.Nil(t, identity)
				assert.True(t, errors.Is(err, tt.wantErr))
				assert.Equal(t, domainerrors.KindUnauthenticated, domainerrors.KindOf(err))

				return
			}

			require.NoError(t, err)
			require.NotNil(t, identity)
			assert.Equal(t, tt.wantID, identity.ID)
			assert.Equal(t, "Ada", identity.FirstName)
			assert.True(t, identity.IsActive)
		})

		t.Run("optional/"+tt.name, func(t *testing.T) {
			fx := createTestIdentityService(t)
			tt.setup(fx)

			identity := fx.service.ResolveOptional(context.Background(), tt.credential)
			if tt.wantErr != nil {
				assert.Nil(t, identity)

				return
			}

			require.NotNil(t, identity)
			assert.Equal(t, tt.wantID, identity.ID)
		})
	}
}

func TestIdentityService_ReasonMessages(t *testing.T) {
	fx := createTestIdentityService(t)

	_, err := fx.service.ResolveMandatory(context.Background(), "")
	require.Error(t, err)

	var appErr domainerrors.AppError
	require.True(t, errors.As(err, &appErr))
	assert.Equal(t, "Access denied. No token provided.", appErr.Message())
	assert.Equal(t, 401, appErr.HTTPCode())

	fx.tokenService.EXPECT().Validate("bad").Return(nil, errors.WithStack(domainerrors.ErrInvalidCredential))
	_, err = fx.service.ResolveMandatory(context.Background(), "bad")
	require.True(t, errors.As(err, &appErr))
	assert.Equal(t, "Invalid token.", appErr.Message())
}

func TestIdentityService_PersistenceOutage(t *testing.T) {
	outage := errors.New("connection refused")

	t.Run("mandatory propagates", func(t *testing.T) {
		fx := createTestIdentityService(t)
		fx.tokenService.EXPECT().Validate("good").Return(validClaims(7), nil)
		fx.userRepo.EXPECT().FindByID(context.Background(), uint(7)).Return(nil, outage)

		identity, err := fx.service.ResolveMandatory(context.Background(), "good")
		assert.Nil(t, identity)
		assert.True(t, errors.Is(err, outage))
		assert.Equal(t, domainerrors.KindUnclassified, domainerrors.KindOf(err))
	})

	t.Run("optional degrades to anonymous", func(t *testing.T) {
		fx := createTestIdentityService(t)
		fx.tokenService.EXPECT().Validate("good").Return(validClaims(7), nil)
		fx.userRepo.EXPECT().FindByID(context.Background(), uint(7)).Return(nil, outage)

		assert.Nil(t, fx.service.ResolveOptional(context.Background(), "good"))
	})
}

func TestIdentityService_ReloadsSubjectEveryCall(t *testing.T) {
	fx := createTestIdentityService(t)
	user := &entity.User{ID: 7, Email: "owner@example.com", IsActive: true}

	fx.tokenService.EXPECT().Validate("good").Return(validClaims(7), nil).Times(2)
	fx.userRepo.EXPECT().FindByID(context.Background(), uint(7)).Return(user, nil).Once()

	_, err := fx.service.ResolveMandatory(context.Background(), "good")
	require.NoError(t, err)

	deactivated := *user
	deactivated.IsActive = false
	fx.userRepo.EXPECT().FindByID(context.Background(), uint(7)).Return(&deactivated, nil).Once()

	_, err = fx.service.ResolveMandatory(context.Background(), "good")
	assert.True(t, errors.Is(err, domainerrors.ErrSubjectUnavailable))
}
