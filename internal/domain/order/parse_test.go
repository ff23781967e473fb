package order

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func parseErr(t *testing.T, body string) *ValidationError {
	t.Helper()
	_, err := ParseRequest([]byte(body))
	require.Error(t, err)
	var verr *ValidationError
	require.ErrorAs(t, err, &verr)
	return verr
}

func TestParseRequest_Valid(t *testing.T) {
	req, err := ParseRequest([]byte(`{
		"customerId": "C1",
		"items": [
			{"productId": "P1", "quantity": 2, "price": 9.99},
			{"productId": "P2", "quantity": 1, "price": 5.00}
		]
	}`))
	require.NoError(t, err)

	assert.Equal(t, "C1", req.CustomerID)
	require.Len(t, req.Items, 2)
	assert.Equal(t, "P1", req.Items[0].ProductID)
	assert.Equal(t, 2, req.Items[0].Quantity)
	assert.True(t, decimal.RequireFromString("9.99").Equal(req.Items[0].Price))
	assert.Equal(t, "P2", req.Items[1].ProductID)
	assert.Equal(t, 1, req.Items[1].Quantity)
	assert.True(t, decimal.RequireFromString("5.00").Equal(req.Items[1].Price))
}

func TestParseRequest_PriceAsString(t *testing.T) {
	req, err := ParseRequest([]byte(`{
		"customerId": "C1",
		"items": [{"productId": "P1", "quantity": 3, "price": "19.95"}]
	}`))
	require.NoError(t, err)
	assert.True(t, decimal.RequireFromString("19.95").Equal(req.Items[0].Price))
}

func TestParseRequest_PriceStaysExact(t *testing.T) {
	// 0.1 + 0.2 style values must not be touched by binary floating point.
	req, err := ParseRequest([]byte(`{
		"customerId": "C1",
		"items": [{"productId": "P1", "quantity": 1, "price": 0.1}]
	}`))
	require.NoError(t, err)
	assert.Equal(t, "0.1", req.Items[0].Price.String())
}

func TestParseRequest_MalformedBody(t *testing.T) {
	verr := parseErr(t, `{"customerId": "C1",`)
	assert.Equal(t, "invalid request body", verr.Message)
}

func TestParseRequest_MissingCustomerID(t *testing.T) {
	verr := parseErr(t, `{"items": [{"productId": "P1", "quantity": 1, "price": 1}]}`)
	assert.Equal(t, "customerId and items are required", verr.Message)
}

func TestParseRequest_MissingItems(t *testing.T) {
	verr := parseErr(t, `{"customerId": "C1"}`)
	assert.Equal(t, "customerId and items are required", verr.Message)
}

func TestParseRequest_NullItems(t *testing.T) {
	verr := parseErr(t, `{"customerId": "C1", "items": null}`)
	assert.Equal(t, "customerId and items are required", verr.Message)
}

func TestParseRequest_EmptyItems(t *testing.T) {
	verr := parseErr(t, `{"customerId": "C1", "items": []}`)
	assert.Equal(t, "items cannot be empty", verr.Message)
}

func TestParseRequest_MissingItemField(t *testing.T) {
	for _, body := range []string{
		`{"customerId": "C1", "items": [{"quantity": 1, "price": 1}]}`,
		`{"customerId": "C1", "items": [{"productId": "P1", "price": 1}]}`,
		`{"customerId": "C1", "items": [{"productId": "P1", "quantity": 1}]}`,
	} {
		verr := parseErr(t, body)
		assert.Equal(t, "Each item must have productId, quantity, and price", verr.Message)
	}
}

func TestParseRequest_FirstBadItemShortCircuits(t *testing.T) {
	// The second item is also invalid; the first one's failure wins.
	verr := parseErr(t, `{"customerId": "C1", "items": [
		{"productId": "P1", "price": 1},
		{"productId": "P2", "quantity": 0, "price": 1}
	]}`)
	assert.Equal(t, "Each item must have productId, quantity, and price", verr.Message)
}

func TestParseRequest_InvalidQuantity(t *testing.T) {
	verr := parseErr(t, `{"customerId": "C1", "items": [{"productId": "P1", "quantity": "two", "price": 1}]}`)
	assert.Equal(t, "invalid quantity: must be an integer", verr.Message)
}

func TestParseRequest_FractionalQuantity(t *testing.T) {
	verr := parseErr(t, `{"customerId": "C1", "items": [{"productId": "P1", "quantity": 1.5, "price": 1}]}`)
	assert.Equal(t, "invalid quantity: must be an integer", verr.Message)
}

func TestParseRequest_NonPositiveQuantity(t *testing.T) {
	for _, qty := range []string{"0", "-2"} {
		verr := parseErr(t, `{"customerId": "C1", "items": [{"productId": "P1", "quantity": `+qty+`, "price": 1}]}`)
		assert.Equal(t, "quantity must be greater than 0", verr.Message)
	}
}

func TestParseRequest_InvalidPrice(t *testing.T) {
	verr := parseErr(t, `{"customerId": "C1", "items": [{"productId": "P1", "quantity": 1, "price": "free"}]}`)
	assert.Equal(t, "invalid price: must be a decimal number", verr.Message)
}

func TestParseRequest_NegativePrice(t *testing.T) {
	verr := parseErr(t, `{"customerId": "C1", "items": [{"productId": "P1", "quantity": 1, "price": -0.01}]}`)
	assert.Equal(t, "price cannot be negative", verr.Message)
}

func TestParseRequest_NonStringProductID(t *testing.T) {
	verr := parseErr(t, `{"customerId": "C1", "items": [{"productId": 42, "quantity": 1, "price": 1}]}`)
	assert.Equal(t, "invalid productId: must be a string", verr.Message)
}
