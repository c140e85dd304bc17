package handler

import (
	"log/slog"
	"net/http"

	"storefront/internal/delivery/api/response"
	deliverycontext "storefront/internal/delivery/context"
	"storefront/internal/domain/entity"
	domainerrors "storefront/internal/domain/errors"
	"storefront/internal/errors"
	"storefront/internal/usecase"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// SessionHandlerParams holds dependencies for SessionHandler, injected by Fx.
type SessionHandlerParams struct {
	fx.In

	SessionUC usecase.SessionUsecase
	Logger    *slog.Logger
}

// SessionHandler exposes the login and logout call sites.
type SessionHandler struct {
	sessionUC usecase.SessionUsecase
	logger    *slog.Logger
}

// NewSessionHandler is the constructor for SessionHandler
func NewSessionHandler(params SessionHandlerParams) *SessionHandler {
	return &SessionHandler{
		sessionUC: params.SessionUC,
		logger:    params.Logger,
	}
}

// ProfileRequest is the profile record handed over with the access token.
type ProfileRequest struct {
	ID    entity.ID `json:"id" validate:"required"`
	Email string    `json:"email" validate:"omitempty,email"`
	Name  string    `json:"name" validate:"max=256"`
	Roles []string  `json:"roles"`
}

// LoginRequest represents the request body of the login call site
type LoginRequest struct {
	AccessToken string          `json:"access_token" validate:"required"`
	Profile     *ProfileRequest `json:"profile"`
}

// LoginResponse is the session view plus the sync failure, if any. The login
// stands even when the sync failed; POST /api/v1/cart/sync retries it.
type LoginResponse struct {
	*usecase.SessionView
	SyncError *response.ErrorInfo `json:"sync_error,omitempty"`
}

// GetSession returns the observed session and cart state
func (h *SessionHandler) GetSession(c echo.Context) error {
	return response.Success(c, http.StatusOK, h.sessionUC.Current(c.Request().Context()))
}

// Login stores the credential and triggers the guest cart sync
func (h *SessionHandler) Login(c echo.Context) error {
	var req LoginRequest
	if err := c.Bind(&req); err != nil {
		return response.ValidationError(c, "invalid login input")
	}

	if err := c.Validate(&req); err != nil {
		return err
	}

	input := &usecase.LoginInput{AccessToken: req.AccessToken}
	if req.Profile != nil {
		input.Profile = &entity.UserProfile{
			ID:    req.Profile.ID,
			Email: req.Profile.Email,
			Name:  req.Profile.Name,
			Roles: req.Profile.Roles,
		}
	}

	view, err := h.sessionUC.Login(c.Request().Context(), input)
	if err != nil && view == nil {
		return response.HandleAppError(c, err)
	}

	resp := LoginResponse{SessionView: view}
	if err != nil {
		var appErr domainerrors.AppError
		if !errors.As(err, &appErr) {
			appErr = domainerrors.ErrInternalError
		}
		deliverycontext.GetLoggerOrDefault(c.Request().Context(), h.logger).
			Warn("Login succeeded with a failed cart sync", slog.String("code", appErr.ErrorCode()))
		resp.SyncError = &response.ErrorInfo{Code: appErr.ErrorCode(), Message: appErr.Message()}
	}

	return response.Success(c, http.StatusOK, resp)
}

// Logout removes the credential; the cart falls back to guest mode
func (h *SessionHandler) Logout(c echo.Context) error {
	view, err := h.sessionUC.Logout(c.Request().Context())
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, view)
}
