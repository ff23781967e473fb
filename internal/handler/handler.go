// Package handler implements the HTTP surface of the order intake API.
package handler

import (
	"context"
	"net/http"

	"github.com/oolio/order-intake/internal/domain/order"
)

// OrderPlacer is the slice of the order service the handler depends on.
type OrderPlacer interface {
	Place(ctx context.Context, req order.CreateOrderRequest) (*order.Order, error)
}

// Handler serves the order intake endpoints.
type Handler struct {
	orders OrderPlacer
}

// NewHandler constructs a Handler around the given order service.
func NewHandler(orders OrderPlacer) *Handler {
	return &Handler{orders: orders}
}

// Register mounts the API routes on the mux.
func (h *Handler) Register(mux *http.ServeMux) {
	mux.HandleFunc("POST /api/orders", h.CreateOrder)
	mux.HandleFunc("GET /health", h.Health)
}
