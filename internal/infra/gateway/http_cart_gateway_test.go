package gateway

import (
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"storefront/config"
	deliverycontext "storefront/internal/delivery/context"
	"storefront/internal/domain/entity"
	"storefront/internal/domain/service"
	"storefront/internal/errors"
	mockRepo "storefront/internal/mocks/repository"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

const serverCartJSON = `{
	"id": 31,
	"items": [
		{"id": 501, "product": {"id": 7, "name": "Oyster grow kit", "price": "24.50"}, "quantity": 2, "price": "24.50"},
		{"id": 502, "product": {"id": 9, "name": "Humidity sensor", "price": 40}, "quantity": 1, "price": 40}
	],
	"total_amount": "89.00"
}`

type gatewayFixture struct {
	gateway     service.CartGateway
	credentials *mockRepo.MockCredentialRepository
	server      *httptest.Server
}

func newGatewayFixture(t *testing.T, handler http.HandlerFunc) *gatewayFixture {
	t.Helper()

	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)

	credentials := mockRepo.NewMockCredentialRepository(t)
	cfg := &config.Config{CartAPI: &config.CartAPIConfig{BaseURL: server.URL + "/api/", Timeout: 2 * time.Second}}
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	return &gatewayFixture{
		gateway:     NewHTTPCartGateway(cfg, credentials, logger),
		credentials: credentials,
		server:      server,
	}
}

func (fx *gatewayFixture) withToken(token string) {
	fx.credentials.EXPECT().Load(mock.Anything).Return(&entity.Credential{AccessToken: token}, nil)
}

func TestHTTPCartGateway_Fetch(t *testing.T) {
	fx := newGatewayFixture(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodGet, r.Method)
		assert.Equal(t, "/api/cart/", r.URL.Path)
		assert.Equal(t, "Bearer token-1", r.Header.Get("Authorization"))
		assert.Equal(t, "req-1", r.Header.Get(deliverycontext.HeaderXRequestID))

		w.Header().Set("Content-Type", "application/json")
		_, _ = io.WriteString(w, serverCartJSON)
	})
	fx.withToken("token-1")

	ctx := deliverycontext.WithRequestID(context.Background(), "req-1")
	cart, err := fx.gateway.Fetch(ctx)

	require.NoError(t, err)
	require.NotNil(t, cart.ID)
	assert.Equal(t, entity.ID("31"), *cart.ID)
	require.Len(t, cart.Items, 2)
	assert.Equal(t, entity.ID("501"), cart.Items[0].ID)
	assert.Equal(t, entity.ID("7"), cart.Items[0].Product.ID)
	assert.Equal(t, 3, cart.TotalItems())
	assert.True(t, decimal.RequireFromString("89").Equal(cart.TotalAmount))
}

func TestHTTPCartGateway_FetchRecomputesMissingTotal(t *testing.T) {
	fx := newGatewayFixture(t, func(w http.ResponseWriter, _ *http.Request) {
		_, _ = io.WriteString(w, `{"id": "c-1", "items": [
			{"id": "l-1", "product": {"id": "p-1", "name": "Enoki", "price": "5.25"}, "quantity": 4, "price": null}
		]}`)
	})
	fx.withToken("token-1")

	cart, err := fx.gateway.Fetch(context.Background())

	require.NoError(t, err)
	assert.True(t, decimal.RequireFromString("21").Equal(cart.TotalAmount))
}

func TestHTTPCartGateway_Add(t *testing.T) {
	fx := newGatewayFixture(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/api/cart/add/", r.URL.Path)
		assert.Equal(t, "application/json", r.Header.Get("Content-Type"))

		var body map[string]any
		assert.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		assert.Equal(t, "7", body["product_id"])
		assert.InDelta(t, 2, body["quantity"], 0)

		_, _ = io.WriteString(w, serverCartJSON)
	})
	fx.withToken("token-1")

	cart, err := fx.gateway.Add(context.Background(), "7", 2)

	require.NoError(t, err)
	assert.Len(t, cart.Items, 2)
}

func TestHTTPCartGateway_LineOperations(t *testing.T) {
	var (
		mu    sync.Mutex
		calls []string
	)
	fx := newGatewayFixture(t, func(w http.ResponseWriter, r *http.Request) {
		mu.Lock()
		calls = append(calls, r.Method+" "+r.URL.Path)
		mu.Unlock()
		if r.URL.Path == "/api/cart/items/501/quantity/" {
			var body map[string]int
			assert.NoError(t, json.NewDecoder(r.Body).Decode(&body))
			assert.Equal(t, 5, body["quantity"])
		}
		w.WriteHeader(http.StatusNoContent)
	})
	fx.withToken("token-1")

	ctx := context.Background()
	require.NoError(t, fx.gateway.UpdateQuantity(ctx, "501", 5))
	require.NoError(t, fx.gateway.Remove(ctx, "501"))
	require.NoError(t, fx.gateway.Clear(ctx))

	mu.Lock()
	defer mu.Unlock()
	assert.Equal(t, []string{
		"POST /api/cart/items/501/quantity/",
		"DELETE /api/cart/items/501/",
		"POST /api/cart/clear/",
	}, calls)
}

func TestHTTPCartGateway_SyncGuestItems(t *testing.T) {
	fx := newGatewayFixture(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/cart/sync/", r.URL.Path)

		var body struct {
			Items []service.SyncItem `json:"items"`
		}
		assert.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		assert.Equal(t, []service.SyncItem{{ProductID: "7", Quantity: 2}, {ProductID: "9", Quantity: 1}}, body.Items)

		_, _ = io.WriteString(w, serverCartJSON)
	})
	fx.withToken("token-1")

	cart, err := fx.gateway.SyncGuestItems(context.Background(), []service.SyncItem{
		{ProductID: "7", Quantity: 2},
		{ProductID: "9", Quantity: 1},
	})

	require.NoError(t, err)
	assert.Equal(t, 3, cart.TotalItems())
}

func TestHTTPCartGateway_Errors(t *testing.T) {
	tests := []struct {
		name         string
		status       int
		body         string
		unauthorized bool
		transient    bool
	}{
		{name: "401", status: http.StatusUnauthorized, body: `{"detail":"Authentication credentials were not provided."}`, unauthorized: true},
		{name: "403 expired token", status: http.StatusForbidden, body: `{"code":"token_not_valid","detail":"Token is invalid or expired"}`, unauthorized: true},
		{name: "403 forbidden", status: http.StatusForbidden, body: `{"detail":"nope"}`},
		{name: "400", status: http.StatusBadRequest, body: `{"quantity":["must be positive"]}`},
		{name: "503", status: http.StatusServiceUnavailable, body: "maintenance", transient: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fx := newGatewayFixture(t, func(w http.ResponseWriter, _ *http.Request) {
				w.WriteHeader(tt.status)
				_, _ = io.WriteString(w, tt.body)
			})
			fx.withToken("token-1")

			_, err := fx.gateway.Fetch(context.Background())

			require.Error(t, err)
			var gwErr *service.GatewayError
			require.ErrorAs(t, err, &gwErr)
			assert.Equal(t, tt.status, gwErr.StatusCode)
			assert.Equal(t, "fetch", gwErr.Operation)
			assert.Equal(t, tt.unauthorized, errors.Is(err, service.ErrUnauthorized))
			assert.Equal(t, tt.transient, gwErr.Transient())
		})
	}
}

func TestHTTPCartGateway_NoCredentialSkipsNetwork(t *testing.T) {
	var called atomic.Bool
	fx := newGatewayFixture(t, func(w http.ResponseWriter, _ *http.Request) {
		called.Store(true)
		w.WriteHeader(http.StatusOK)
	})
	fx.credentials.EXPECT().Load(mock.Anything).Return(nil, nil)

	_, err := fx.gateway.Fetch(context.Background())

	require.Error(t, err)
	assert.ErrorIs(t, err, service.ErrUnauthorized)
	assert.False(t, called.Load())
}

func TestHTTPCartGateway_TransportFailure(t *testing.T) {
	fx := newGatewayFixture(t, func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
	})
	fx.withToken("token-1")
	fx.server.Close()

	_, err := fx.gateway.Fetch(context.Background())

	require.Error(t, err)
	var gwErr *service.GatewayError
	assert.False(t, errors.As(err, &gwErr))
	assert.False(t, errors.Is(err, service.ErrUnauthorized))
}

func TestHTTPCartGateway_MalformedBody(t *testing.T) {
	fx := newGatewayFixture(t, func(w http.ResponseWriter, _ *http.Request) {
		_, _ = io.WriteString(w, "<html>")
	})
	fx.withToken("token-1")

	_, err := fx.gateway.Fetch(context.Background())

	require.Error(t, err)
	assert.Contains(t, err.Error(), "decode response")
}
