package order

import (
	"context"
	"time"

	"github.com/shopspring/decimal"
)

// Order is a persisted order header together with its line items.
type Order struct {
	ID         string
	CustomerID string
	Items      []LineItem
	Total      decimal.Decimal
	ItemsCount int
	CreatedAt  time.Time
}

// LineItem is one product/quantity/price entry within an order.
type LineItem struct {
	ProductID string
	Quantity  int
	Price     decimal.Decimal
}

// CreateOrderRequest is a validated order-creation request. Instances are
// produced by ParseRequest and are guaranteed to carry a customer id and at
// least one line item with coerced numeric values.
type CreateOrderRequest struct {
	CustomerID string
	Items      []LineItem
}

// Repository defines persistence operations for orders. Create must write the
// header row and all item rows atomically.
type Repository interface {
	Create(ctx context.Context, o *Order) error
}
