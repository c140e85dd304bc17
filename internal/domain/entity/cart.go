// Package entity contains the core business objects of the project,
// each representing a unique, identifiable concept within the domain.
package entity

import (
	"encoding/json"
	"fmt"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/shopspring/decimal"
)

// ID identifies products, carts and cart lines.
// The remote cart API sends either JSON numbers or strings; both decode into ID.
type ID string

// String returns the string representation of the ID.
func (id ID) String() string {
	return string(id)
}

// IsZero reports whether the ID is unset.
func (id ID) IsZero() bool {
	return id == ""
}

// UnmarshalJSON accepts a JSON string, a JSON number or null.
func (id *ID) UnmarshalJSON(data []byte) error {
	if string(data) == "null" {
		*id = ""

		return nil
	}

	if len(data) > 0 && data[0] == '"' {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return errors.WithStack(err)
		}
		*id = ID(s)

		return nil
	}

	var n json.Number
	if err := json.Unmarshal(data, &n); err != nil {
		return errors.Wrapf(err, "invalid id %s", string(data))
	}
	*id = ID(n.String())

	return nil
}

// Product is the snapshot of a catalogue product captured when it is added to a cart.
// It is not a live join: later catalogue price changes do not affect existing lines.
type Product struct {
	ID    ID              `json:"id"`
	Name  string          `json:"name"`
	Price decimal.Decimal `json:"price"`
	Image string          `json:"image,omitempty"`
}

// CartLine is a single product + quantity + price entry within a cart.
type CartLine struct {
	ID       ID                  `json:"id"`       // Server line id, or a synthesized guest id.
	Product  Product             `json:"product"`  // Product snapshot captured at add time.
	Quantity int                 `json:"quantity"` // Always >= 1.
	Price    decimal.NullDecimal `json:"price"`    // Unit price captured at add time; null falls back to Product.Price.
}

// UnitPrice returns the captured price, falling back to the product price.
func (l CartLine) UnitPrice() decimal.Decimal {
	if l.Price.Valid {
		return l.Price.Decimal
	}

	return l.Product.Price
}

// Subtotal returns unit price × quantity.
func (l CartLine) Subtotal() decimal.Decimal {
	return l.UnitPrice().Mul(decimal.NewFromInt(int64(l.Quantity)))
}

// Matches reports whether ref names this line either by its own id or by its product id.
// Callers are inconsistent about which identifier they hold, so both are accepted.
func (l CartLine) Matches(ref ID) bool {
	return !ref.IsZero() && (l.ID == ref || l.Product.ID == ref)
}

// NewGuestLineID synthesizes a line id for guest mode. It is unique per process
// lifetime: the product id followed by a time-ordered UUIDv7.
func NewGuestLineID(productID ID) ID {
	v7, err := uuid.NewV7()
	if err != nil {
		v7 = uuid.New()
	}

	return ID(fmt.Sprintf("guest-%s-%s", productID, v7))
}

// Cart is the aggregate root: an ordered set of lines and their total.
type Cart struct {
	ID          *ID             `json:"id"`           // Server cart id; nil while in guest mode.
	Items       []CartLine      `json:"items"`        // Insertion order is stable for display.
	TotalAmount decimal.Decimal `json:"total_amount"` // Server-supplied when authenticated, computed otherwise.
}

// NewEmptyCart returns a cart with no id, no lines and a zero total.
func NewEmptyCart() *Cart {
	return &Cart{
		Items:       []CartLine{},
		TotalAmount: decimal.Zero,
	}
}

// IsEmpty reports whether the cart has no lines. A nil cart is empty.
func (c *Cart) IsEmpty() bool {
	return c == nil || len(c.Items) == 0
}

// TotalItems returns the sum of line quantities. A nil cart has zero items.
func (c *Cart) TotalItems() int {
	if c == nil {
		return 0
	}

	total := 0
	for _, line := range c.Items {
		total += line.Quantity
	}

	return total
}

// Subtotal computes Σ(unit price × quantity) over all lines.
func (c *Cart) Subtotal() decimal.Decimal {
	total := decimal.Zero
	if c == nil {
		return total
	}

	for _, line := range c.Items {
		total = total.Add(line.Subtotal())
	}

	return total
}

// Recalculate sets TotalAmount to the locally computed subtotal.
func (c *Cart) Recalculate() {
	c.TotalAmount = c.Subtotal()
}

// IndexOf returns the index of the first line matching ref by line id or
// product id, preferring an exact line id match. It returns -1 when nothing matches.
func (c *Cart) IndexOf(ref ID) int {
	if c == nil || ref.IsZero() {
		return -1
	}

	for i, line := range c.Items {
		if line.ID == ref {
			return i
		}
	}

	for i, line := range c.Items {
		if line.Matches(ref) {
			return i
		}
	}

	return -1
}

// IndexOfProduct returns the index of the line holding productID, or -1.
func (c *Cart) IndexOfProduct(productID ID) int {
	if c == nil {
		return -1
	}

	for i, line := range c.Items {
		if line.Product.ID == productID {
			return i
		}
	}

	return -1
}

// Clone returns a deep copy so callers can never mutate engine state.
func (c *Cart) Clone() *Cart {
	if c == nil {
		return NewEmptyCart()
	}

	clone := &Cart{
		Items:       make([]CartLine, len(c.Items)),
		TotalAmount: c.TotalAmount,
	}
	copy(clone.Items, c.Items)

	if c.ID != nil {
		id := *c.ID
		clone.ID = &id
	}

	return clone
}

// Normalize makes a cart decoded from storage or the network safe to use:
// nil items become an empty slice and lines with a non-positive quantity are dropped.
func (c *Cart) Normalize() *Cart {
	if c == nil {
		return NewEmptyCart()
	}

	items := make([]CartLine, 0, len(c.Items))
	for _, line := range c.Items {
		if line.Quantity < 1 {
			continue
		}
		items = append(items, line)
	}
	c.Items = items

	return c
}
