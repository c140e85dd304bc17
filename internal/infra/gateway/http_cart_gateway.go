// Package gateway implements the remote cart service client.
package gateway

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strings"
	"time"

	"storefront/config"
	deliverycontext "storefront/internal/delivery/context"
	"storefront/internal/domain/entity"
	"storefront/internal/domain/repository"
	"storefront/internal/domain/service"
	"storefront/internal/errors"

	"github.com/shopspring/decimal"
)

const (
	defaultTimeout   = 10 * time.Second
	maxResponseBytes = 1 << 20
	maxErrorBody     = 512
)

// httpCartGateway implements CartGateway over the cart REST API. The bearer
// token is read from the credential store on every call, so a login or logout
// takes effect on the next request.
type httpCartGateway struct {
	baseURL     string
	httpClient  *http.Client
	credentials repository.CredentialRepository
	logger      *slog.Logger
}

// NewHTTPCartGateway creates the gateway for cfg.CartAPI.
func NewHTTPCartGateway(cfg *config.Config, credentials repository.CredentialRepository, logger *slog.Logger) service.CartGateway {
	baseURL := ""
	timeout := defaultTimeout
	if cfg != nil && cfg.CartAPI != nil {
		baseURL = cfg.CartAPI.BaseURL
		if cfg.CartAPI.Timeout > 0 {
			timeout = cfg.CartAPI.Timeout
		}
	}

	return &httpCartGateway{
		baseURL: strings.TrimRight(baseURL, "/"),
		httpClient: &http.Client{
			Timeout: timeout,
		},
		credentials: credentials,
		logger:      logger,
	}
}

// cartResponse is the cart as the API sends it. TotalAmount is a pointer so a
// missing total can be told apart from a zero one.
type cartResponse struct {
	ID          *entity.ID        `json:"id"`
	Items       []entity.CartLine `json:"items"`
	TotalAmount *decimal.Decimal  `json:"total_amount"`
}

func (r *cartResponse) toCart() *entity.Cart {
	cart := &entity.Cart{ID: r.ID, Items: r.Items}
	if cart.ID != nil && cart.ID.IsZero() {
		cart.ID = nil
	}
	cart.Normalize()

	if r.TotalAmount != nil {
		cart.TotalAmount = *r.TotalAmount
	} else {
		cart.Recalculate()
	}

	return cart
}

type addRequest struct {
	ProductID entity.ID `json:"product_id"`
	Quantity  int       `json:"quantity"`
}

type quantityRequest struct {
	Quantity int `json:"quantity"`
}

type syncRequest struct {
	Items []service.SyncItem `json:"items"`
}

// Fetch returns the authenticated user's cart.
func (g *httpCartGateway) Fetch(ctx context.Context) (*entity.Cart, error) {
	var resp cartResponse
	if err := g.do(ctx, "fetch", http.MethodGet, "/cart/", nil, &resp); err != nil {
		return nil, err
	}

	return resp.toCart(), nil
}

// Add adds quantity of productID and returns the updated cart.
func (g *httpCartGateway) Add(ctx context.Context, productID entity.ID, quantity int) (*entity.Cart, error) {
	var resp cartResponse
	body := addRequest{ProductID: productID, Quantity: quantity}
	if err := g.do(ctx, "add", http.MethodPost, "/cart/add/", body, &resp); err != nil {
		return nil, err
	}

	return resp.toCart(), nil
}

// Remove deletes a line.
func (g *httpCartGateway) Remove(ctx context.Context, lineID entity.ID) error {
	return g.do(ctx, "remove", http.MethodDelete, linePath(lineID, ""), nil, nil)
}

// UpdateQuantity sets a line quantity.
func (g *httpCartGateway) UpdateQuantity(ctx context.Context, lineID entity.ID, quantity int) error {
	return g.do(ctx, "update_quantity", http.MethodPost, linePath(lineID, "quantity/"), quantityRequest{Quantity: quantity}, nil)
}

// Clear empties the server cart.
func (g *httpCartGateway) Clear(ctx context.Context) error {
	return g.do(ctx, "clear", http.MethodPost, "/cart/clear/", nil, nil)
}

// SyncGuestItems bulk-merges guest lines and returns the merged cart.
func (g *httpCartGateway) SyncGuestItems(ctx context.Context, items []service.SyncItem) (*entity.Cart, error) {
	if items == nil {
		items = []service.SyncItem{}
	}

	var resp cartResponse
	if err := g.do(ctx, "sync", http.MethodPost, "/cart/sync/", syncRequest{Items: items}, &resp); err != nil {
		return nil, err
	}

	return resp.toCart(), nil
}

func linePath(lineID entity.ID, suffix string) string {
	return "/cart/items/" + url.PathEscape(lineID.String()) + "/" + suffix
}

// do sends one authenticated request. Non-2xx answers become *service.GatewayError;
// transport failures are returned wrapped and count as transient.
func (g *httpCartGateway) do(ctx context.Context, operation, method, path string, in, out any) error {
	logger := deliverycontext.GetLoggerOrDefault(ctx, g.logger)

	credential, err := g.credentials.Load(ctx)
	if err != nil {
		return errors.Wrapf(err, "cart service %s: load credential", operation)
	}
	if credential == nil || credential.AccessToken == "" {
		return errors.Wrapf(service.ErrUnauthorized, "cart service %s: no stored credential", operation)
	}

	var body io.Reader
	if in != nil {
		payload, err := json.Marshal(in)
		if err != nil {
			return errors.WithStack(err)
		}
		body = bytes.NewReader(payload)
	}

	req, err := http.NewRequestWithContext(ctx, method, g.baseURL+path, body)
	if err != nil {
		return errors.WithStack(err)
	}
	req.Header.Set("Accept", "application/json")
	req.Header.Set("Authorization", "Bearer "+credential.AccessToken)
	if in != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if requestID := deliverycontext.GetRequestIDFromContext(ctx); requestID != "" {
		req.Header.Set(deliverycontext.HeaderXRequestID, requestID)
	}

	start := time.Now()
	resp, err := g.httpClient.Do(req)
	if err != nil {
		return errors.Wrapf(err, "cart service %s", operation)
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(io.LimitReader(resp.Body, maxResponseBytes))
	if err != nil {
		return errors.Wrapf(err, "cart service %s: read response", operation)
	}

	logger.Debug("Cart service call",
		slog.String("operation", operation),
		slog.String("method", method),
		slog.String("path", path),
		slog.Int("status", resp.StatusCode),
		slog.Duration("latency", time.Since(start)),
	)

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return newGatewayError(operation, resp.StatusCode, data)
	}

	if out == nil || len(bytes.TrimSpace(data)) == 0 {
		return nil
	}
	if err := json.Unmarshal(data, out); err != nil {
		return errors.Wrapf(err, "cart service %s: decode response", operation)
	}

	return nil
}

func newGatewayError(operation string, status int, body []byte) *service.GatewayError {
	text := string(body)
	if len(text) > maxErrorBody {
		text = text[:maxErrorBody]
	}

	lower := strings.ToLower(text)

	return &service.GatewayError{
		Operation:  operation,
		StatusCode: status,
		Body:       text,
		Expired: status == http.StatusForbidden &&
			(strings.Contains(lower, "expired") || strings.Contains(lower, "token_not_valid")),
	}
}
