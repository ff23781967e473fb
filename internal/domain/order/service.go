package order

import (
	"context"
	"encoding/hex"
	"strings"
	"time"

	"github.com/go-faster/errors"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Totals computes the exact-decimal order total and the unit count over the
// given line items. The total is the sum of price*quantity per item and the
// count is the sum of quantities, accumulated in input order. Pure function.
func Totals(items []LineItem) (total decimal.Decimal, itemsCount int) {
	total = decimal.Zero
	for _, item := range items {
		qty := decimal.NewFromInt(int64(item.Quantity))
		total = total.Add(item.Price.Mul(qty))
		itemsCount += item.Quantity
	}
	return total, itemsCount
}

// Service encapsulates order placement: totals computation, identifier and
// timestamp generation, and persistence.
type Service struct {
	orders Repository
}

// NewService creates an order Service backed by the given repository.
func NewService(orders Repository) *Service {
	return &Service{orders: orders}
}

// Place computes totals for a validated request, stamps a fresh order id and
// creation time, and persists the order atomically. The returned Order carries
// the exact values that were written.
func (s *Service) Place(ctx context.Context, req CreateOrderRequest) (*Order, error) {
	total, itemsCount := Totals(req.Items)

	// CreatedAt is captured once and reused for both the row and the response.
	o := &Order{
		ID:         NewOrderID(),
		CustomerID: req.CustomerID,
		Items:      req.Items,
		Total:      total,
		ItemsCount: itemsCount,
		CreatedAt:  time.Now().UTC(),
	}

	if err := s.orders.Create(ctx, o); err != nil {
		return nil, errors.Wrap(err, "create order")
	}

	return o, nil
}

// NewOrderID generates an order identifier of the form "ORD-" followed by
// eight uppercase hex characters. Uniqueness is probabilistic; collisions are
// not checked against existing rows.
func NewOrderID() string {
	id := uuid.New()
	return "ORD-" + strings.ToUpper(hex.EncodeToString(id[:4]))
}
