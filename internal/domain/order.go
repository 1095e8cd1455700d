package domain

import "time"

type OrderStatus string

const (
	StatusNotShipped OrderStatus = "NOT_SHIPPED"
	StatusShipped    OrderStatus = "SHIPPED"
	StatusCancelled  OrderStatus = "CANCELLED"
)

type Order struct {
	ID                 uint64      `json:"id" gorm:"primaryKey;autoIncrement"`
	OrderNumber        string      `json:"orderNumber" gorm:"not null;uniqueIndex:idx_orders_order_number"`
	BuyerName          string      `json:"buyerName" gorm:"not null"`
	BuyerEmail         *string     `json:"buyerEmail,omitempty"`
	ShippingName       string      `json:"shippingName" gorm:"not null"`
	ShippingAddress1   string      `json:"shippingAddress1" gorm:"not null"`
	ShippingAddress2   *string     `json:"shippingAddress2,omitempty"`
	ShippingCity       string      `json:"shippingCity" gorm:"not null"`
	ShippingPostalCode string      `json:"shippingPostalCode" gorm:"not null"`
	ShippingProvince   *string     `json:"shippingProvince,omitempty"`
	ShippingCountry    string      `json:"shippingCountry" gorm:"not null"`
	Status             OrderStatus `json:"status" gorm:"type:text;not null;default:'NOT_SHIPPED'"`
	CreatedAt          time.Time   `json:"createdAt" gorm:"autoCreateTime"`

	Items []OrderItem `json:"items,omitempty" gorm:"foreignKey:OrderID;constraint:OnDelete:CASCADE"`
}

type OrderItem struct {
	ID        uint64   `json:"id" gorm:"primaryKey;autoIncrement"`
	OrderID   uint64   `json:"orderId" gorm:"not null;index:idx_items_order_id"`
	Title     string   `json:"title" gorm:"not null"`
	SKU       *string  `json:"sku,omitempty"`
	Quantity  int      `json:"quantity" gorm:"not null"`
	UnitPrice *float64 `json:"unitPrice,omitempty"`
	Currency  *string  `json:"currency,omitempty"`
}
