package impl

import (
	"context"
	"log/slog"
	"strings"

	deliverycontext "storefront/internal/delivery/context"
	"storefront/internal/domain/entity"
	domainerrors "storefront/internal/domain/errors"
	"storefront/internal/domain/repository"
	"storefront/internal/domain/service"
	"storefront/internal/usecase"
)

// sessionService implements the SessionUsecase interface. It is the login and
// logout call site: it changes the stored credential and then asks the observer
// to look at it right away instead of waiting for the next poll.
type sessionService struct {
	credentials repository.CredentialRepository
	inspector   service.CredentialInspector
	observer    usecase.SessionObserver
	cart        usecase.CartUsecase
	logger      *slog.Logger
}

// NewSessionService is the constructor for sessionService.
func NewSessionService(
	credentials repository.CredentialRepository,
	inspector service.CredentialInspector,
	observer usecase.SessionObserver,
	cart usecase.CartUsecase,
	logger *slog.Logger,
) usecase.SessionUsecase {
	return &sessionService{
		credentials: credentials,
		inspector:   inspector,
		observer:    observer,
		cart:        cart,
		logger:      logger,
	}
}

// log returns a request-scoped logger if available, otherwise falls back to the service's logger.
func (srv *sessionService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// Login stores the credential handed over by the authentication provider and
// triggers the guest cart sync.
func (srv *sessionService) Login(ctx context.Context, input *usecase.LoginInput) (*usecase.SessionView, error) {
	if input == nil || strings.TrimSpace(input.AccessToken) == "" {
		return nil, domainerrors.ErrValidationFailed.WithDetails("access token is required")
	}

	if _, err := srv.inspector.Inspect(input.AccessToken); err != nil {
		srv.log(ctx).Warn("Rejected login with unusable credential", slog.Any("error", err))

		return nil, domainerrors.ErrInvalidCredential.WithCause(err)
	}

	credential := &entity.Credential{
		AccessToken: input.AccessToken,
		Profile:     input.Profile,
	}
	if err := srv.credentials.Save(ctx, credential); err != nil {
		srv.log(ctx).Error("Failed to store credential", slog.Any("error", err))

		return nil, domainerrors.ErrStorageFailed.WithCause(err)
	}

	// The sync must not be abandoned because the caller went away.
	session, err := srv.observer.Check(deliverycontext.Detach(ctx))
	view := srv.view(session)
	if err != nil {
		// The login itself stands; the cart can retry the sync later.
		srv.log(ctx).Warn("Login stored but guest cart sync failed", slog.Any("error", err))

		return view, err
	}

	srv.log(ctx).Info("Login completed", slog.String("mode", view.Cart.Mode.String()))

	return view, nil
}

// Logout removes the credential; the cart falls back to guest mode.
func (srv *sessionService) Logout(ctx context.Context) (*usecase.SessionView, error) {
	if err := srv.credentials.Remove(ctx); err != nil {
		srv.log(ctx).Error("Failed to remove credential", slog.Any("error", err))

		return nil, domainerrors.ErrStorageFailed.WithCause(err)
	}

	session, err := srv.observer.Check(ctx)
	if err != nil {
		return nil, err
	}

	srv.log(ctx).Info("Logout completed")

	return srv.view(session), nil
}

// Current returns the observed session and cart state.
func (srv *sessionService) Current(_ context.Context) *usecase.SessionView {
	return srv.view(srv.observer.Current())
}

// view pairs the session with the cart state. A credential the cart service
// refused is still stored, but it no longer counts as signed in.
func (srv *sessionService) view(session entity.AuthSession) *usecase.SessionView {
	state := srv.cart.State()
	if state.Rejected {
		session.Authenticated = false
	}

	return &usecase.SessionView{Session: session, Cart: state}
}
