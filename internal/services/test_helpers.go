package services

import (
	"time"

	"order-assistant/internal/domain"
)

func strPtr(s string) *string { return &s }

func floatPtr(f float64) *float64 { return &f }

// CreateMockOrder builds a fully-populated order fixture with one item.
func CreateMockOrder(id uint64, orderNumber string, status domain.OrderStatus) *domain.Order {
	return &domain.Order{
		ID:                 id,
		OrderNumber:        orderNumber,
		BuyerName:          TestBuyerName,
		BuyerEmail:         strPtr("jane@example.com"),
		ShippingName:       TestBuyerName,
		ShippingAddress1:   "1 Main St",
		ShippingCity:       "Rome",
		ShippingPostalCode: "00100",
		ShippingCountry:    "IT",
		Status:             status,
		CreatedAt:          time.Now(),
		Items: []domain.OrderItem{
			{ID: 1, OrderID: id, Title: TestItemTitle, Quantity: 2, UnitPrice: floatPtr(9.5), Currency: strPtr("EUR")},
		},
	}
}

const (
	TestOrderID     = uint64(1)
	TestOrderNumber = "A-1"
	TestBuyerName   = "Jane"
	TestItemTitle   = "Widget"
	TestModel       = "llama3"
)
