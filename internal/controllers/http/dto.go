package http

import "order-assistant/internal/domain"

type CreateOrderResponse struct {
	ID uint64 `json:"id"`
}

type ListOrdersResponse struct {
	Data   []domain.Order `json:"data"`
	Limit  int            `json:"limit"`
	Offset int            `json:"offset"`
}

type UpdateStatusResponse struct {
	ID     uint64             `json:"id"`
	Status domain.OrderStatus `json:"status"`
}

type SummaryResponse struct {
	OrderID uint64 `json:"orderId"`
	Summary string `json:"summary"`
}

type EmailResponse struct {
	OrderID uint64 `json:"orderId"`
	Subject string `json:"subject"`
	Email   string `json:"email"`
}

type ChatResponse struct {
	OrderID uint64 `json:"orderId"`
	Reply   string `json:"reply"`
}

type HealthResponse struct {
	OK              bool     `json:"ok"`
	DB              string   `json:"db"`
	Ollama          string   `json:"ollama"`
	Model           string   `json:"model"`
	ModelsInstalled []string `json:"modelsInstalled,omitempty"`
}
