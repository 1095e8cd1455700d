package validation

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func strPtr(s string) *string { return &s }

func floatPtr(f float64) *float64 { return &f }

func validCreateOrder() CreateOrderRequest {
	return CreateOrderRequest{
		OrderNumber:        "A-1",
		BuyerName:          "Jane",
		ShippingName:       "Jane",
		ShippingAddress1:   "1 Main St",
		ShippingCity:       "Rome",
		ShippingPostalCode: "00100",
		ShippingCountry:    "IT",
		Items: []OrderItemDraft{
			{Title: "Widget", Quantity: 2},
		},
	}
}

func TestCreateOrderRequest_Valid(t *testing.T) {
	v := New()

	req := validCreateOrder()
	assert.NoError(t, v.Struct(req))

	req.BuyerEmail = strPtr("jane@example.com")
	req.Status = "SHIPPED"
	req.Items[0].SKU = strPtr("W-1")
	req.Items[0].UnitPrice = floatPtr(9.5)
	req.Items[0].Currency = strPtr("EUR")
	assert.NoError(t, v.Struct(req))
}

func TestCreateOrderRequest_ReportsEveryViolation(t *testing.T) {
	v := New()

	req := CreateOrderRequest{
		BuyerEmail: strPtr("not-an-email"),
		Items: []OrderItemDraft{
			{Quantity: 0, Currency: strPtr("EURO")},
		},
	}

	err := v.Struct(req)
	assert.Error(t, err)

	fields := Violations(err)
	assert.Contains(t, fields, "CreateOrderRequest.orderNumber")
	assert.Contains(t, fields, "CreateOrderRequest.buyerName")
	assert.Contains(t, fields, "CreateOrderRequest.buyerEmail")
	assert.Contains(t, fields, "CreateOrderRequest.shippingName")
	assert.Contains(t, fields, "CreateOrderRequest.shippingAddress1")
	assert.Contains(t, fields, "CreateOrderRequest.shippingCity")
	assert.Contains(t, fields, "CreateOrderRequest.shippingPostalCode")
	assert.Contains(t, fields, "CreateOrderRequest.shippingCountry")
	assert.Contains(t, fields, "CreateOrderRequest.items[0].title")
	assert.Contains(t, fields, "CreateOrderRequest.items[0].quantity")
	assert.Contains(t, fields, "CreateOrderRequest.items[0].currency")
}

func TestCreateOrderRequest_InvalidCases(t *testing.T) {
	v := New()

	tests := []struct {
		name   string
		mutate func(*CreateOrderRequest)
	}{
		{"empty items", func(r *CreateOrderRequest) { r.Items = nil }},
		{"zero quantity", func(r *CreateOrderRequest) { r.Items[0].Quantity = 0 }},
		{"negative unit price", func(r *CreateOrderRequest) { r.Items[0].UnitPrice = floatPtr(-1) }},
		{"short currency", func(r *CreateOrderRequest) { r.Items[0].Currency = strPtr("EU") }},
		{"bad email", func(r *CreateOrderRequest) { r.BuyerEmail = strPtr("nope") }},
		{"bad status", func(r *CreateOrderRequest) { r.Status = "DELIVERED" }},
		{"one-char country", func(r *CreateOrderRequest) { r.ShippingCountry = "I" }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := validCreateOrder()
			tt.mutate(&req)
			assert.Error(t, v.Struct(req))
		})
	}
}

func TestPaginationQuery(t *testing.T) {
	v := New()

	tests := []struct {
		name    string
		query   PaginationQuery
		wantErr bool
	}{
		{"defaults", PaginationQuery{}, false},
		{"in range", PaginationQuery{Limit: 100, Offset: 7}, false},
		{"limit too high", PaginationQuery{Limit: 101}, true},
		{"negative offset", PaginationQuery{Offset: -1}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := v.Struct(tt.query)
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestPaginationQuery_ApplyDefaults(t *testing.T) {
	q := PaginationQuery{}
	q.ApplyDefaults()
	assert.Equal(t, 20, q.Limit)
	assert.Equal(t, 0, q.Offset)

	q = PaginationQuery{Limit: 5, Offset: 10}
	q.ApplyDefaults()
	assert.Equal(t, 5, q.Limit)
	assert.Equal(t, 10, q.Offset)
}

func TestUpdateStatusRequest(t *testing.T) {
	v := New()

	for _, s := range []string{"NOT_SHIPPED", "SHIPPED", "CANCELLED"} {
		assert.NoError(t, v.Struct(UpdateStatusRequest{Status: s}))
	}
	assert.Error(t, v.Struct(UpdateStatusRequest{}))
	assert.Error(t, v.Struct(UpdateStatusRequest{Status: "DELIVERED"}))
}

func TestChatRequest(t *testing.T) {
	v := New()

	assert.NoError(t, v.Struct(ChatRequest{OrderID: 1, Message: "where is my order?"}))
	assert.NoError(t, v.Struct(ChatRequest{OrderID: 1, Message: "hi", Language: "en", Tone: "friendly"}))

	assert.Error(t, v.Struct(ChatRequest{Message: "no order id"}))
	assert.Error(t, v.Struct(ChatRequest{OrderID: 1}))
	assert.Error(t, v.Struct(ChatRequest{OrderID: 1, Message: "hi", Language: "fr"}))
	assert.Error(t, v.Struct(ChatRequest{OrderID: 1, Message: "hi", Tone: "sarcastic"}))
}

func TestChatRequest_ApplyDefaults(t *testing.T) {
	r := ChatRequest{OrderID: 1, Message: "hi"}
	r.ApplyDefaults()
	assert.Equal(t, "it", r.Language)
	assert.Equal(t, "professional", r.Tone)

	r = ChatRequest{OrderID: 1, Message: "hi", Language: "en", Tone: "neutral"}
	r.ApplyDefaults()
	assert.Equal(t, "en", r.Language)
	assert.Equal(t, "neutral", r.Tone)
}
