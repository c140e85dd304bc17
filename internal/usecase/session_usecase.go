// Package usecase contains the application-specific business rules.
package usecase

import (
	"context"

	"storefront/internal/domain/entity"
)

// LoginInput is what the authentication provider hands over after a successful sign-in.
type LoginInput struct {
	AccessToken string
	Profile     *entity.UserProfile
}

// SessionView is the session state together with the cart state it produced.
type SessionView struct {
	Session entity.AuthSession `json:"session"`
	Cart    CartState          `json:"cart"`
}

// SessionUsecase defines the login and logout call sites. Both store or remove the
// credential and then fire the explicit local event into the session observer.
type SessionUsecase interface {
	// Login stores the credential and triggers the guest cart sync.
	// A sync failure is returned together with the resulting view.
	Login(ctx context.Context, input *LoginInput) (*SessionView, error)

	// Logout removes the credential; the cart falls back to guest mode.
	Logout(ctx context.Context) (*SessionView, error)

	// Current returns the observed session and cart state.
	Current(ctx context.Context) *SessionView
}

// SessionObserver detects authentication transitions and dispatches them to a SessionListener.
type SessionObserver interface {
	// Check re-reads the stored credential and dispatches a transition if the state changed.
	// The returned error is the listener's error for a login transition.
	Check(ctx context.Context) (entity.AuthSession, error)

	// Current returns the last observed session without touching storage.
	Current() entity.AuthSession
}
