package impl

import (
	"context"
	"log/slog"
	"testing"

	"storefront/internal/domain/entity"
	domainerrors "storefront/internal/domain/errors"
	"storefront/internal/domain/service"
	mockRepo "storefront/internal/mocks/repository"
	mockService "storefront/internal/mocks/service"
	mockUsecase "storefront/internal/mocks/usecase"
	"storefront/internal/usecase"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// sessionServiceFixtures holds all test dependencies for session service tests.
type sessionServiceFixtures struct {
	service     usecase.SessionUsecase
	credentials *mockRepo.MockCredentialRepository
	inspector   *mockService.MockCredentialInspector
	observer    *mockUsecase.MockSessionObserver
	cart        *mockUsecase.MockCartUsecase
}

func createTestSessionService(t *testing.T) sessionServiceFixtures {
	credentials := mockRepo.NewMockCredentialRepository(t)
	inspector := mockService.NewMockCredentialInspector(t)
	observer := mockUsecase.NewMockSessionObserver(t)
	cart := mockUsecase.NewMockCartUsecase(t)

	return sessionServiceFixtures{
		service:     NewSessionService(credentials, inspector, observer, cart, slog.New(slog.DiscardHandler)),
		credentials: credentials,
		inspector:   inspector,
		observer:    observer,
		cart:        cart,
	}
}

func TestSessionService_Login_Success(t *testing.T) {
	fx := createTestSessionService(t)
	ctx := context.Background()
	profile := &entity.UserProfile{ID: "u-1", Email: "a@example.com"}
	session := entity.AuthSession{Authenticated: true, Fingerprint: "fp", Profile: profile}

	fx.inspector.EXPECT().Inspect("tok").Return(&service.CredentialInfo{Subject: "u-1"}, nil).Once()
	fx.credentials.EXPECT().
		Save(ctx, &entity.Credential{AccessToken: "tok", Profile: profile}).
		Return(nil).Once()
	fx.observer.EXPECT().Check(mock.Anything).Return(session, nil).Once()
	fx.cart.EXPECT().State().Return(usecase.CartState{Mode: entity.ModeAuthenticated}).Once()

	view, err := fx.service.Login(ctx, &usecase.LoginInput{AccessToken: "tok", Profile: profile})
	require.NoError(t, err)
	assert.Equal(t, session, view.Session)
	assert.Equal(t, entity.ModeAuthenticated, view.Cart.Mode)
}

func TestSessionService_Login_Errors(t *testing.T) {
	t.Run("empty token", func(t *testing.T) {
		fx := createTestSessionService(t)

		view, err := fx.service.Login(context.Background(), &usecase.LoginInput{AccessToken: "  "})
		assert.Nil(t, view)
		assert.ErrorIs(t, err, domainerrors.ErrValidationFailed)
	})

	t.Run("expired token", func(t *testing.T) {
		fx := createTestSessionService(t)
		fx.inspector.EXPECT().Inspect("tok").Return(nil, service.ErrCredentialExpired).Once()

		view, err := fx.service.Login(context.Background(), &usecase.LoginInput{AccessToken: "tok"})
		assert.Nil(t, view)
		assert.ErrorIs(t, err, domainerrors.ErrInvalidCredential)
		assert.ErrorIs(t, err, service.ErrCredentialExpired)
	})

	t.Run("storage failure", func(t *testing.T) {
		fx := createTestSessionService(t)
		fx.inspector.EXPECT().Inspect("tok").Return(&service.CredentialInfo{Opaque: true}, nil).Once()
		fx.credentials.EXPECT().Save(mock.Anything, mock.Anything).Return(errors.New("disk full")).Once()

		view, err := fx.service.Login(context.Background(), &usecase.LoginInput{AccessToken: "tok"})
		assert.Nil(t, view)
		assert.ErrorIs(t, err, domainerrors.ErrStorageFailed)
	})

	t.Run("sync failure keeps the login", func(t *testing.T) {
		fx := createTestSessionService(t)
		session := entity.AuthSession{Authenticated: true, Fingerprint: "fp"}
		fx.inspector.EXPECT().Inspect("tok").Return(&service.CredentialInfo{Opaque: true}, nil).Once()
		fx.credentials.EXPECT().Save(mock.Anything, mock.Anything).Return(nil).Once()
		fx.observer.EXPECT().Check(mock.Anything).
			Return(session, domainerrors.ErrCartServiceUnavailable.WithDetails("sync")).Once()
		fx.cart.EXPECT().State().Return(usecase.CartState{Mode: entity.ModeGuest}).Once()

		view, err := fx.service.Login(context.Background(), &usecase.LoginInput{AccessToken: "tok"})
		assert.ErrorIs(t, err, domainerrors.ErrCartServiceUnavailable)
		require.NotNil(t, view)
		assert.True(t, view.Session.Authenticated)
		assert.Equal(t, entity.ModeGuest, view.Cart.Mode)
	})
}

func TestSessionService_Login_SyncOutlivesCaller(t *testing.T) {
	fx := createTestSessionService(t)
	ctx, cancel := context.WithCancel(context.Background())

	fx.inspector.EXPECT().Inspect("tok").Return(&service.CredentialInfo{Opaque: true}, nil).Once()
	fx.credentials.EXPECT().Save(mock.Anything, mock.Anything).Return(nil).Once()
	fx.observer.EXPECT().Check(mock.Anything).
		RunAndReturn(func(checkCtx context.Context) (entity.AuthSession, error) {
			cancel()

			return entity.AuthSession{Authenticated: true}, checkCtx.Err()
		}).Once()
	fx.cart.EXPECT().State().Return(usecase.CartState{}).Once()

	_, err := fx.service.Login(ctx, &usecase.LoginInput{AccessToken: "tok"})
	require.NoError(t, err)
}

func TestSessionService_Logout(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		fx := createTestSessionService(t)
		ctx := context.Background()
		fx.credentials.EXPECT().Remove(ctx).Return(nil).Once()
		fx.observer.EXPECT().Check(ctx).Return(entity.AuthSession{}, nil).Once()
		fx.cart.EXPECT().State().Return(usecase.CartState{Mode: entity.ModeGuest}).Once()

		view, err := fx.service.Logout(ctx)
		require.NoError(t, err)
		assert.False(t, view.Session.Authenticated)
		assert.Equal(t, entity.ModeGuest, view.Cart.Mode)
	})

	t.Run("storage failure", func(t *testing.T) {
		fx := createTestSessionService(t)
		fx.credentials.EXPECT().Remove(mock.Anything).Return(errors.New("locked")).Once()

		view, err := fx.service.Logout(context.Background())
		assert.Nil(t, view)
		assert.ErrorIs(t, err, domainerrors.ErrStorageFailed)
	})
}

func TestSessionService_Current(t *testing.T) {
	fx := createTestSessionService(t)
	fx.observer.EXPECT().Current().Return(entity.AuthSession{Authenticated: true}).Once()
	fx.cart.EXPECT().State().Return(usecase.CartState{Mode: entity.ModeAuthenticated}).Once()

	view := fx.service.Current(context.Background())
	assert.True(t, view.Session.Authenticated)
	assert.Equal(t, entity.ModeAuthenticated, view.Cart.Mode)
}

func TestSessionService_Current_RejectedCredentialIsSignedOut(t *testing.T) {
	fx := createTestSessionService(t)
	profile := &entity.UserProfile{ID: "u-1"}
	fx.observer.EXPECT().Current().Return(entity.AuthSession{Authenticated: true, Profile: profile}).Once()
	fx.cart.EXPECT().State().Return(usecase.CartState{Mode: entity.ModeGuest, Rejected: true}).Once()

	view := fx.service.Current(context.Background())
	assert.False(t, view.Session.Authenticated)
	assert.Equal(t, profile, view.Session.Profile)
	assert.Equal(t, entity.ModeGuest, view.Cart.Mode)
	assert.True(t, view.Cart.Rejected)
}
