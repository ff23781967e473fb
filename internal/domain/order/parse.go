package order

import (
	"encoding/json"
	"strconv"
	"strings"

	"github.com/shopspring/decimal"
)

// ValidationError is a client-facing request validation failure. The message
// is safe to return verbatim in a 400 response body.
type ValidationError struct {
	Message string
}

func (e *ValidationError) Error() string {
	return e.Message
}

// Client messages. These are part of the API contract; do not reword casually.
var (
	errMalformedBody    = &ValidationError{Message: "invalid request body"}
	errMissingRequired  = &ValidationError{Message: "customerId and items are required"}
	errEmptyItems       = &ValidationError{Message: "items cannot be empty"}
	errMissingItemField = &ValidationError{Message: "Each item must have productId, quantity, and price"}
	errInvalidProductID = &ValidationError{Message: "invalid productId: must be a string"}
	errInvalidQuantity  = &ValidationError{Message: "invalid quantity: must be an integer"}
	errNonPositiveQty   = &ValidationError{Message: "quantity must be greater than 0"}
	errInvalidPrice     = &ValidationError{Message: "invalid price: must be a decimal number"}
	errNegativePrice    = &ValidationError{Message: "price cannot be negative"}
)

// rawOrder mirrors the wire payload with presence-preserving fields, so a
// missing key can be told apart from a zero value.
type rawOrder struct {
	CustomerID *string           `json:"customerId"`
	Items      []json.RawMessage `json:"items"`
}

type rawItem struct {
	ProductID json.RawMessage `json:"productId"`
	Quantity  json.RawMessage `json:"quantity"`
	Price     json.RawMessage `json:"price"`
}

// ParseRequest validates the raw request body and produces a
// CreateOrderRequest with exact-decimal prices. Checks run in a fixed order
// and the first failure short-circuits the whole request; every failure is a
// *ValidationError. ParseRequest is pure: no I/O, no side effects.
func ParseRequest(body []byte) (CreateOrderRequest, error) {
	var raw rawOrder
	if err := json.Unmarshal(body, &raw); err != nil {
		return CreateOrderRequest{}, errMalformedBody
	}
	if raw.CustomerID == nil || raw.Items == nil {
		return CreateOrderRequest{}, errMissingRequired
	}
	if len(raw.Items) == 0 {
		return CreateOrderRequest{}, errEmptyItems
	}

	items := make([]LineItem, 0, len(raw.Items))
	for _, data := range raw.Items {
		item, err := parseItem(data)
		if err != nil {
			return CreateOrderRequest{}, err
		}
		items = append(items, item)
	}

	return CreateOrderRequest{CustomerID: *raw.CustomerID, Items: items}, nil
}

func parseItem(data json.RawMessage) (LineItem, error) {
	var raw rawItem
	if err := json.Unmarshal(data, &raw); err != nil {
		return LineItem{}, errMalformedBody
	}
	if isAbsent(raw.ProductID) || isAbsent(raw.Quantity) || isAbsent(raw.Price) {
		return LineItem{}, errMissingItemField
	}

	var productID string
	if err := json.Unmarshal(raw.ProductID, &productID); err != nil {
		return LineItem{}, errInvalidProductID
	}

	quantity, err := coerceInt(raw.Quantity)
	if err != nil {
		return LineItem{}, errInvalidQuantity
	}
	if quantity <= 0 {
		return LineItem{}, errNonPositiveQty
	}

	price, err := coerceDecimal(raw.Price)
	if err != nil {
		return LineItem{}, errInvalidPrice
	}
	if price.IsNegative() {
		return LineItem{}, errNegativePrice
	}

	return LineItem{ProductID: productID, Quantity: quantity, Price: price}, nil
}

// isAbsent reports whether a raw field was missing from the payload or
// explicitly null.
func isAbsent(raw json.RawMessage) bool {
	return raw == nil || string(raw) == "null"
}

// numericText unwraps a JSON value to its textual numeric form. Both bare
// numbers and quoted numeric strings are accepted, matching the wire contract
// where price may arrive as either.
func numericText(raw json.RawMessage) (string, error) {
	if len(raw) > 0 && raw[0] == '"' {
		var s string
		if err := json.Unmarshal(raw, &s); err != nil {
			return "", err
		}
		return strings.TrimSpace(s), nil
	}
	return string(raw), nil
}

func coerceInt(raw json.RawMessage) (int, error) {
	text, err := numericText(raw)
	if err != nil {
		return 0, err
	}
	n, err := strconv.Atoi(text)
	if err != nil {
		return 0, err
	}
	return n, nil
}

// coerceDecimal parses the textual representation directly into a decimal,
// never round-tripping through binary floating point.
func coerceDecimal(raw json.RawMessage) (decimal.Decimal, error) {
	text, err := numericText(raw)
	if err != nil {
		return decimal.Decimal{}, err
	}
	return decimal.NewFromString(text)
}
