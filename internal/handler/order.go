package handler

import (
	"io"
	"net/http"
	"time"

	"github.com/go-faster/errors"
	"github.com/go-faster/sdk/zctx"
	"go.uber.org/zap"

	"github.com/oolio/order-intake/internal/domain/order"
)

// maxBodySize caps order payloads at 1 MiB.
const maxBodySize = 1 << 20

// orderResponse is the 201 body. totalAmount converts to a JSON number only
// here, at the serialization boundary; everything upstream is exact decimal.
type orderResponse struct {
	OrderID     string  `json:"orderId"`
	TotalAmount float64 `json:"totalAmount"`
	ItemsCount  int     `json:"itemsCount"`
	ProcessedAt string  `json:"processedAt"`
}

// CreateOrder handles POST /api/orders: validate, aggregate, persist, respond.
// Validation failures are 400s with their exact client message; anything past
// validation is a 500 with a generic body, the cause logged server-side.
func (h *Handler) CreateOrder(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	body, err := io.ReadAll(io.LimitReader(r.Body, maxBodySize))
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	req, err := order.ParseRequest(body)
	if err != nil {
		var verr *order.ValidationError
		if errors.As(err, &verr) {
			writeError(w, http.StatusBadRequest, verr.Message)
			return
		}
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	o, err := h.orders.Place(ctx, req)
	if err != nil {
		zctx.From(ctx).Error("placing order failed",
			zap.String("customer_id", req.CustomerID),
			zap.Int("items", len(req.Items)),
			zap.Error(err),
		)
		writeError(w, http.StatusInternalServerError, "internal server error")
		return
	}

	writeJSON(w, http.StatusCreated, orderResponse{
		OrderID:     o.ID,
		TotalAmount: o.Total.InexactFloat64(),
		ItemsCount:  o.ItemsCount,
		ProcessedAt: o.CreatedAt.Format(time.RFC3339Nano),
	})
}
