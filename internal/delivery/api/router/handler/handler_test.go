package handler

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	apimiddleware "storefront/internal/delivery/api/middleware"
	"storefront/internal/delivery/api/validator"
	"storefront/internal/domain/entity"
	domainerrors "storefront/internal/domain/errors"
	"storefront/internal/domain/service"
	mockUsecase "storefront/internal/mocks/usecase"
	"storefront/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type envelope struct {
	Data  json.RawMessage `json:"data"`
	Error *struct {
		Code    string `json:"code"`
		Message string `json:"message"`
		Details any    `json:"details"`
	} `json:"error"`
}

type fakeSubscriber struct {
	ch chan *service.CartEvent
}

func (f *fakeSubscriber) Subscribe() (<-chan *service.CartEvent, func()) {
	return f.ch, func() {}
}

func newTestEcho() *echo.Echo {
	e := echo.New()
	e.Validator = validator.New()
	e.HTTPErrorHandler = apimiddleware.NewErrorMiddleware(slog.New(slog.DiscardHandler)).HandleHTTPError

	return e
}

func serve(t *testing.T, e *echo.Echo, method, path, body string) (*httptest.ResponseRecorder, envelope) {
	t.Helper()

	req := httptest.NewRequest(method, path, strings.NewReader(body))
	if body != "" {
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	}
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	var env envelope
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &env), rec.Body.String())

	return rec, env
}

func guestState(items int, total string) usecase.CartState {
	return usecase.CartState{
		Mode:       entity.ModeGuest,
		Cart:       entity.NewEmptyCart(),
		TotalItems: items,
		TotalPrice: decimal.RequireFromString(total),
	}
}

func setupCart(t *testing.T) (*echo.Echo, *mockUsecase.MockCartUsecase) {
	cartUC := mockUsecase.NewMockCartUsecase(t)
	h := NewCartHandler(CartHandlerParams{
		CartUC: cartUC,
		Events: &fakeSubscriber{ch: make(chan *service.CartEvent)},
		Logger: slog.New(slog.DiscardHandler),
	})

	e := newTestEcho()
	e.GET("/cart", h.GetCart)
	e.GET("/cart/summary", h.GetSummary)
	e.POST("/cart/items", h.AddItem)
	e.PUT("/cart/items/:id", h.UpdateItem)
	e.DELETE("/cart/items/:id", h.RemoveItem)
	e.DELETE("/cart", h.ClearCart)
	e.POST("/cart/refresh", h.RefreshCart)
	e.POST("/cart/sync", h.SyncCart)

	return e, cartUC
}

func TestHealthCheck(t *testing.T) {
	e := newTestEcho()
	e.GET("/health", HealthCheck)

	rec, env := serve(t, e, http.MethodGet, "/health", "")

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"status":"ok"}`, string(env.Data))
}

func TestCartHandler_GetSummary(t *testing.T) {
	e, cartUC := setupCart(t)
	cartUC.EXPECT().State().Return(guestState(3, "31.5"))

	rec, env := serve(t, e, http.MethodGet, "/cart/summary", "")

	assert.Equal(t, http.StatusOK, rec.Code)
	var summary CartSummary
	require.NoError(t, json.Unmarshal(env.Data, &summary))
	assert.Equal(t, entity.ModeGuest, summary.Mode)
	assert.Equal(t, 3, summary.TotalItems)
	assert.True(t, decimal.RequireFromString("31.5").Equal(summary.TotalPrice))
}

func TestCartHandler_AddItem(t *testing.T) {
	t.Run("quantity defaults to one", func(t *testing.T) {
		e, cartUC := setupCart(t)
		cartUC.EXPECT().
			AddToCart(mock.Anything, mock.MatchedBy(func(p entity.Product) bool {
				return p.ID == "42" && p.Name == "Mug" && p.Price.Equal(decimal.RequireFromString("9.99"))
			}), 1).
			Return(nil).Once()
		cartUC.EXPECT().State().Return(guestState(1, "9.99"))

		rec, env := serve(t, e, http.MethodPost, "/cart/items",
			`{"product":{"id":42,"name":"Mug","price":"9.99"}}`)

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Nil(t, env.Error)
	})

	t.Run("explicit quantity", func(t *testing.T) {
		e, cartUC := setupCart(t)
		cartUC.EXPECT().AddToCart(mock.Anything, mock.Anything, 4).Return(nil).Once()
		cartUC.EXPECT().State().Return(guestState(4, "40"))

		rec, _ := serve(t, e, http.MethodPost, "/cart/items",
			`{"product":{"id":"p-1","price":10},"quantity":4}`)

		assert.Equal(t, http.StatusOK, rec.Code)
	})

	t.Run("missing product id", func(t *testing.T) {
		e, _ := setupCart(t)

		rec, env := serve(t, e, http.MethodPost, "/cart/items", `{"product":{"name":"Mug"}}`)

		assert.Equal(t, http.StatusBadRequest, rec.Code)
		require.NotNil(t, env.Error)
		assert.Equal(t, "VALIDATION_FAILED", env.Error.Code)
	})

	t.Run("negative price", func(t *testing.T) {
		e, _ := setupCart(t)

		rec, env := serve(t, e, http.MethodPost, "/cart/items", `{"product":{"id":"1","price":"-1"}}`)

		assert.Equal(t, http.StatusBadRequest, rec.Code)
		require.NotNil(t, env.Error)
		assert.Equal(t, "VALIDATION_FAILED", env.Error.Code)
	})

	t.Run("malformed body", func(t *testing.T) {
		e, _ := setupCart(t)

		rec, env := serve(t, e, http.MethodPost, "/cart/items", `{"product":`)

		assert.Equal(t, http.StatusBadRequest, rec.Code)
		require.NotNil(t, env.Error)
		assert.Equal(t, "VALIDATION_FAILED", env.Error.Code)
	})

	t.Run("sync in progress", func(t *testing.T) {
		e, cartUC := setupCart(t)
		cartUC.EXPECT().AddToCart(mock.Anything, mock.Anything, 1).Return(domainerrors.ErrSyncInProgress).Once()

		rec, env := serve(t, e, http.MethodPost, "/cart/items", `{"product":{"id":"1","price":"1"}}`)

		assert.Equal(t, http.StatusConflict, rec.Code)
		require.NotNil(t, env.Error)
		assert.Equal(t, "CART_SYNC_IN_PROGRESS", env.Error.Code)
	})
}

func TestCartHandler_UpdateItem(t *testing.T) {
	t.Run("updates quantity", func(t *testing.T) {
		e, cartUC := setupCart(t)
		cartUC.EXPECT().UpdateQuantity(mock.Anything, entity.ID("line-7"), 3).Return(nil).Once()
		cartUC.EXPECT().State().Return(guestState(3, "3"))

		rec, _ := serve(t, e, http.MethodPut, "/cart/items/line-7", `{"quantity":3}`)

		assert.Equal(t, http.StatusOK, rec.Code)
	})

	t.Run("missing quantity", func(t *testing.T) {
		e, _ := setupCart(t)

		rec, env := serve(t, e, http.MethodPut, "/cart/items/line-7", `{}`)

		assert.Equal(t, http.StatusBadRequest, rec.Code)
		require.NotNil(t, env.Error)
		assert.Equal(t, "VALIDATION_FAILED", env.Error.Code)
	})

	t.Run("session expired hides details", func(t *testing.T) {
		e, cartUC := setupCart(t)
		cartUC.EXPECT().UpdateQuantity(mock.Anything, entity.ID("line-7"), 2).
			Return(domainerrors.ErrSessionExpired.WithDetails("update_quantity")).Once()

		rec, env := serve(t, e, http.MethodPut, "/cart/items/line-7", `{"quantity":2}`)

		assert.Equal(t, http.StatusUnauthorized, rec.Code)
		require.NotNil(t, env.Error)
		assert.Equal(t, "SESSION_EXPIRED", env.Error.Code)
		assert.Nil(t, env.Error.Details)
	})
}

func TestCartHandler_RemoveAndClear(t *testing.T) {
	e, cartUC := setupCart(t)
	cartUC.EXPECT().RemoveFromCart(mock.Anything, entity.ID("42")).Return(nil).Once()
	cartUC.EXPECT().ClearCart(mock.Anything).Return(nil).Once()
	cartUC.EXPECT().State().Return(guestState(0, "0"))

	rec, _ := serve(t, e, http.MethodDelete, "/cart/items/42", "")
	assert.Equal(t, http.StatusOK, rec.Code)

	rec, _ = serve(t, e, http.MethodDelete, "/cart", "")
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestCartHandler_RefreshAndSync(t *testing.T) {
	e, cartUC := setupCart(t)
	cartUC.EXPECT().FetchCart(mock.Anything).
		Return(domainerrors.ErrCartServiceUnavailable.WithDetails("fetch")).Once()
	cartUC.EXPECT().SyncGuestCart(mock.Anything).Return(nil).Once()
	cartUC.EXPECT().State().Return(guestState(0, "0"))

	rec, env := serve(t, e, http.MethodPost, "/cart/refresh", "")
	assert.Equal(t, http.StatusBadGateway, rec.Code)
	require.NotNil(t, env.Error)
	assert.Equal(t, "CART_SERVICE_UNAVAILABLE", env.Error.Code)
	assert.Nil(t, env.Error.Details)

	rec, _ = serve(t, e, http.MethodPost, "/cart/sync", "")
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestCartHandler_StreamEvents(t *testing.T) {
	cartUC := mockUsecase.NewMockCartUsecase(t)
	cartUC.EXPECT().State().Return(guestState(0, "0")).Once()

	events := make(chan *service.CartEvent, 1)
	h := NewCartHandler(CartHandlerParams{
		CartUC: cartUC,
		Events: &fakeSubscriber{ch: events},
		Logger: slog.New(slog.DiscardHandler),
	})

	e := echo.New()
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	req := httptest.NewRequest(http.MethodGet, "/cart/events", nil).WithContext(ctx)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	events <- &service.CartEvent{Type: service.CartEventSynced, Mode: entity.ModeAuthenticated, TotalItems: 2}
	close(events)

	require.NoError(t, h.StreamEvents(c))

	body := rec.Body.String()
	assert.Equal(t, "text/event-stream", rec.Header().Get(echo.HeaderContentType))
	assert.Contains(t, body, "event: cart.state\n")
	assert.Contains(t, body, "event: cart.synced\n")
	assert.Contains(t, body, `"total_items":2`)
	assert.Less(t, strings.Index(body, "cart.state"), strings.Index(body, "cart.synced"))
}

func setupSession(t *testing.T) (*echo.Echo, *mockUsecase.MockSessionUsecase) {
	sessionUC := mockUsecase.NewMockSessionUsecase(t)
	h := NewSessionHandler(SessionHandlerParams{
		SessionUC: sessionUC,
		Logger:    slog.New(slog.DiscardHandler),
	})

	e := newTestEcho()
	e.GET("/session", h.GetSession)
	e.POST("/session", h.Login)
	e.DELETE("/session", h.Logout)

	return e, sessionUC
}

func TestSessionHandler_Login(t *testing.T) {
	authView := &usecase.SessionView{
		Session: entity.AuthSession{Authenticated: true},
		Cart:    usecase.CartState{Mode: entity.ModeAuthenticated, Cart: entity.NewEmptyCart()},
	}

	t.Run("success", func(t *testing.T) {
		e, sessionUC := setupSession(t)
		sessionUC.EXPECT().
			Login(mock.Anything, mock.MatchedBy(func(in *usecase.LoginInput) bool {
				return in.AccessToken == "tok" && in.Profile != nil && in.Profile.ID == "u-1"
			})).
			Return(authView, nil).Once()

		rec, env := serve(t, e, http.MethodPost, "/session",
			`{"access_token":"tok","profile":{"id":"u-1","email":"a@example.com"}}`)

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.NotContains(t, string(env.Data), "sync_error")
		assert.Contains(t, string(env.Data), `"authenticated":true`)
	})

	t.Run("missing token", func(t *testing.T) {
		e, _ := setupSession(t)

		rec, env := serve(t, e, http.MethodPost, "/session", `{}`)

		assert.Equal(t, http.StatusBadRequest, rec.Code)
		require.NotNil(t, env.Error)
		assert.Equal(t, "VALIDATION_FAILED", env.Error.Code)
	})

	t.Run("invalid email in profile", func(t *testing.T) {
		e, _ := setupSession(t)

		rec, env := serve(t, e, http.MethodPost, "/session",
			`{"access_token":"tok","profile":{"id":"u-1","email":"nope"}}`)

		assert.Equal(t, http.StatusBadRequest, rec.Code)
		require.NotNil(t, env.Error)
		assert.Equal(t, "VALIDATION_FAILED", env.Error.Code)
	})

	t.Run("rejected credential", func(t *testing.T) {
		e, sessionUC := setupSession(t)
		sessionUC.EXPECT().Login(mock.Anything, mock.Anything).
			Return(nil, domainerrors.ErrInvalidCredential).Once()

		rec, env := serve(t, e, http.MethodPost, "/session", `{"access_token":"tok"}`)

		assert.Equal(t, http.StatusBadRequest, rec.Code)
		require.NotNil(t, env.Error)
		assert.Equal(t, "INVALID_CREDENTIAL", env.Error.Code)
	})

	t.Run("sync failure keeps the login", func(t *testing.T) {
		e, sessionUC := setupSession(t)
		sessionUC.EXPECT().Login(mock.Anything, mock.Anything).
			Return(authView, domainerrors.ErrCartServiceUnavailable.WithDetails("sync")).Once()

		rec, env := serve(t, e, http.MethodPost, "/session", `{"access_token":"tok"}`)

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Nil(t, env.Error)
		assert.Contains(t, string(env.Data), `"sync_error":{"code":"CART_SERVICE_UNAVAILABLE"`)
	})
}

func TestSessionHandler_GetAndLogout(t *testing.T) {
	e, sessionUC := setupSession(t)
	guestView := &usecase.SessionView{Cart: guestState(0, "0")}
	sessionUC.EXPECT().Current(mock.Anything).Return(guestView).Once()
	sessionUC.EXPECT().Logout(mock.Anything).Return(guestView, nil).Once()

	rec, env := serve(t, e, http.MethodGet, "/session", "")
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, string(env.Data), `"authenticated":false`)

	rec, _ = serve(t, e, http.MethodDelete, "/session", "")
	assert.Equal(t, http.StatusOK, rec.Code)
}
