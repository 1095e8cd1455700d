package validation

// OrderItemDraft is a single line item of an order being created.
type OrderItemDraft struct {
	Title     string   `json:"title" validate:"required"`
	SKU       *string  `json:"sku,omitempty" validate:"omitempty"`
	Quantity  int      `json:"quantity" validate:"required,min=1"`
	UnitPrice *float64 `json:"unitPrice,omitempty" validate:"omitempty,gte=0"`
	Currency  *string  `json:"currency,omitempty" validate:"omitempty,len=3"`
}

// CreateOrderRequest is the payload for POST /orders.
type CreateOrderRequest struct {
	OrderNumber string  `json:"orderNumber" validate:"required"`
	BuyerName   string  `json:"buyerName" validate:"required"`
	BuyerEmail  *string `json:"buyerEmail,omitempty" validate:"omitempty,email"`

	ShippingName       string  `json:"shippingName" validate:"required"`
	ShippingAddress1   string  `json:"shippingAddress1" validate:"required"`
	ShippingAddress2   *string `json:"shippingAddress2,omitempty"`
	ShippingCity       string  `json:"shippingCity" validate:"required"`
	ShippingPostalCode string  `json:"shippingPostalCode" validate:"required"`
	ShippingProvince   *string `json:"shippingProvince,omitempty"`
	ShippingCountry    string  `json:"shippingCountry" validate:"required,min=2"`

	Status string           `json:"status,omitempty" validate:"omitempty,oneof=NOT_SHIPPED SHIPPED CANCELLED"`
	Items  []OrderItemDraft `json:"items" validate:"required,min=1,dive"`
}

// PaginationQuery is the query string for GET /orders.
type PaginationQuery struct {
	Limit  int `form:"limit" validate:"omitempty,min=1,max=100"`
	Offset int `form:"offset" validate:"omitempty,min=0"`
}

// ApplyDefaults fills the documented pagination defaults for omitted values.
func (q *PaginationQuery) ApplyDefaults() {
	if q.Limit == 0 {
		q.Limit = 20
	}
}

// UpdateStatusRequest is the payload for PATCH /orders/:id/status.
type UpdateStatusRequest struct {
	Status string `json:"status" validate:"required,oneof=NOT_SHIPPED SHIPPED CANCELLED"`
}

// ChatRequest is the payload for POST /ai/support/chat.
type ChatRequest struct {
	OrderID  uint64 `json:"orderId" validate:"required,gt=0"`
	Message  string `json:"message" validate:"required"`
	Language string `json:"language,omitempty" validate:"omitempty,oneof=it en"`
	Tone     string `json:"tone,omitempty" validate:"omitempty,oneof=neutral friendly professional"`
}

// ApplyDefaults resolves omitted language/tone to their documented defaults.
func (r *ChatRequest) ApplyDefaults() {
	if r.Language == "" {
		r.Language = "it"
	}
	if r.Tone == "" {
		r.Tone = "professional"
	}
}

// EmailRequest is the (optional) payload for POST /ai/orders/:id/email.
// Stage is free-form here; unrecognized values fall back downstream.
type EmailRequest struct {
	Stage string `json:"stage,omitempty"`
}
