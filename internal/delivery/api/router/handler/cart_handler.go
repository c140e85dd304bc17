package handler

import (
	"log/slog"
	"net/http"

	"storefront/internal/delivery/api/response"
	"storefront/internal/domain/entity"
	"storefront/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/shopspring/decimal"
	"go.uber.org/fx"
)

// CartHandlerParams holds dependencies for CartHandler, injected by Fx.
type CartHandlerParams struct {
	fx.In

	CartUC usecase.CartUsecase
	Events EventSubscriber
	Logger *slog.Logger
}

// CartHandler exposes the cart engine.
type CartHandler struct {
	cartUC usecase.CartUsecase
	events EventSubscriber
	logger *slog.Logger
}

// NewCartHandler is the constructor for CartHandler
func NewCartHandler(params CartHandlerParams) *CartHandler {
	return &CartHandler{
		cartUC: params.CartUC,
		events: params.Events,
		logger: params.Logger,
	}
}

// ProductRequest is the product snapshot sent with an add request.
type ProductRequest struct {
	ID    entity.ID       `json:"id" validate:"required,max=128"`
	Name  string          `json:"name" validate:"max=256"`
	Price decimal.Decimal `json:"price"`
	Image string          `json:"image" validate:"omitempty,max=2048"`
}

// AddItemRequest represents the request body for adding a product to the cart
type AddItemRequest struct {
	Product  ProductRequest `json:"product" validate:"required"`
	Quantity *int           `json:"quantity"` // Defaults to 1.
}

// UpdateQuantityRequest represents the request body for changing a line quantity
type UpdateQuantityRequest struct {
	Quantity *int `json:"quantity" validate:"required"`
}

// CartSummary is the header badge view of the cart.
type CartSummary struct {
	Mode       entity.Mode     `json:"mode"`
	Loading    bool            `json:"loading"`
	TotalItems int             `json:"total_items"`
	TotalPrice decimal.Decimal `json:"total_price"`
}

// GetCart returns the full cart state.
func (h *CartHandler) GetCart(c echo.Context) error {
	return response.Success(c, http.StatusOK, h.cartUC.State())
}

// GetSummary returns the item count and total for the header badge.
func (h *CartHandler) GetSummary(c echo.Context) error {
	state := h.cartUC.State()

	return response.Success(c, http.StatusOK, CartSummary{
		Mode:       state.Mode,
		Loading:    state.Loading,
		TotalItems: state.TotalItems,
		TotalPrice: state.TotalPrice,
	})
}

// AddItem handles adding a product to the cart
func (h *CartHandler) AddItem(c echo.Context) error {
	var req AddItemRequest
	if err := c.Bind(&req); err != nil {
		return response.ValidationError(c, "invalid cart item input")
	}

	if err := c.Validate(&req); err != nil {
		return err
	}

	if req.Product.Price.IsNegative() {
		return response.ValidationError(c, map[string]string{"Price": "gte"})
	}

	quantity := 1
	if req.Quantity != nil {
		quantity = *req.Quantity
	}

	product := entity.Product{
		ID:    req.Product.ID,
		Name:  req.Product.Name,
		Price: req.Product.Price,
		Image: req.Product.Image,
	}
	if err := h.cartUC.AddToCart(c.Request().Context(), product, quantity); err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, h.cartUC.State())
}

// UpdateItem handles changing the quantity of a cart line
func (h *CartHandler) UpdateItem(c echo.Context) error {
	lineID := entity.ID(c.Param("id"))

	var req UpdateQuantityRequest
	if err := c.Bind(&req); err != nil {
		return response.ValidationError(c, "invalid quantity input")
	}

	if err := c.Validate(&req); err != nil {
		return err
	}

	if err := h.cartUC.UpdateQuantity(c.Request().Context(), lineID, *req.Quantity); err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, h.cartUC.State())
}

// RemoveItem handles removing a cart line. The id may be a line id or a product id.
func (h *CartHandler) RemoveItem(c echo.Context) error {
	lineID := entity.ID(c.Param("id"))

	if err := h.cartUC.RemoveFromCart(c.Request().Context(), lineID); err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, h.cartUC.State())
}

// ClearCart handles removing every line
func (h *CartHandler) ClearCart(c echo.Context) error {
	if err := h.cartUC.ClearCart(c.Request().Context()); err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, h.cartUC.State())
}

// RefreshCart reloads the cart from its backing store
func (h *CartHandler) RefreshCart(c echo.Context) error {
	if err := h.cartUC.FetchCart(c.Request().Context()); err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, h.cartUC.State())
}

// SyncCart retries a guest cart sync that failed after login
func (h *CartHandler) SyncCart(c echo.Context) error {
	if err := h.cartUC.SyncGuestCart(c.Request().Context()); err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, h.cartUC.State())
}
