package http

import (
	"errors"
	"net/http"
	"strconv"

	"order-assistant/internal/domain"
	"order-assistant/internal/infra"
	"order-assistant/internal/repository"
	"order-assistant/internal/services"
	"order-assistant/internal/validation"

	"github.com/gin-gonic/gin"
	validatorv10 "github.com/go-playground/validator/v10"
	"go.uber.org/zap"
)

type Handler struct {
	orders   *services.OrderService
	ai       *services.AIService
	llm      infra.GenerationClientInterface
	validate *validatorv10.Validate
	model    string
	logger   *zap.Logger
}

func NewHandler(orders *services.OrderService, ai *services.AIService, llm infra.GenerationClientInterface, model string, logger *zap.Logger) *Handler {
	return &Handler{
		orders:   orders,
		ai:       ai,
		llm:      llm,
		validate: validation.New(),
		model:    model,
		logger:   logger,
	}
}

func (h *Handler) RegisterRoutes(r *gin.Engine) {
	r.GET("/health", h.Health)

	r.GET("/orders", h.ListOrders)
	r.GET("/orders/:id", h.GetOrder)
	r.POST("/orders", h.CreateOrder)
	r.PATCH("/orders/:id/status", h.UpdateStatus)
	r.DELETE("/orders/:id", h.DeleteOrder)

	r.POST("/ai/orders/:id/summary", h.Summary)
	r.POST("/ai/orders/:id/email", h.Email)
	r.POST("/ai/support/chat", h.Chat)

	r.NoRoute(func(c *gin.Context) {
		c.JSON(http.StatusNotFound, gin.H{"error": "Not found"})
	})
}

// pathID parses the numeric :id segment. Writes the 400 itself on failure.
func pathID(c *gin.Context) (uint64, bool) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil || id == 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid id"})
		return 0, false
	}
	return id, true
}

func (h *Handler) ListOrders(c *gin.Context) {
	var q validation.PaginationQuery
	if err := validation.BindQueryAndValidate(c, &q, h.validate); err != nil {
		return
	}
	q.ApplyDefaults()

	orders, err := h.orders.ListOrders(c.Request.Context(), q.Limit, q.Offset)
	if err != nil {
		h.logger.Error("list orders", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to list orders"})
		return
	}
	if orders == nil {
		orders = []domain.Order{}
	}

	c.JSON(http.StatusOK, ListOrdersResponse{Data: orders, Limit: q.Limit, Offset: q.Offset})
}

func (h *Handler) GetOrder(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}

	order, err := h.orders.GetOrder(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, services.ErrOrderNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Order not found"})
			return
		}
		h.logger.Error("get order", zap.Uint64("id", id), zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch order"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"data": order})
}

func (h *Handler) CreateOrder(c *gin.Context) {
	var req validation.CreateOrderRequest
	if err := validation.BindAndValidate(c, &req, h.validate); err != nil {
		return
	}

	order, err := h.orders.CreateOrder(c.Request.Context(), req)
	if err != nil {
		if errors.Is(err, repository.ErrDuplicateOrderNumber) {
			c.JSON(http.StatusConflict, gin.H{"error": "orderNumber already exists"})
			return
		}
		h.logger.Error("create order", zap.String("orderNumber", req.OrderNumber), zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create order"})
		return
	}

	c.JSON(http.StatusCreated, gin.H{"data": CreateOrderResponse{ID: order.ID}})
}

func (h *Handler) UpdateStatus(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}

	var req validation.UpdateStatusRequest
	if err := validation.BindAndValidate(c, &req, h.validate); err != nil {
		return
	}

	status := domain.OrderStatus(req.Status)
	if err := h.orders.UpdateStatus(c.Request.Context(), id, status); err != nil {
		if errors.Is(err, services.ErrOrderNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Order not found"})
			return
		}
		h.logger.Error("update status", zap.Uint64("id", id), zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update status"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"data": UpdateStatusResponse{ID: id, Status: status}})
}

func (h *Handler) DeleteOrder(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}

	if err := h.orders.DeleteOrder(c.Request.Context(), id); err != nil {
		if errors.Is(err, services.ErrOrderNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Order not found"})
			return
		}
		h.logger.Error("delete order", zap.Uint64("id", id), zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete order"})
		return
	}

	c.Status(http.StatusNoContent)
}

func (h *Handler) Summary(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}

	summary, err := h.ai.SummarizeOrder(c.Request.Context(), id)
	if err != nil {
		h.aiError(c, id, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"data": SummaryResponse{OrderID: id, Summary: summary}})
}

func (h *Handler) Email(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}

	// body is optional; a missing or malformed body just means no stage
	var req validation.EmailRequest
	_ = c.ShouldBindJSON(&req)

	subject, body, err := h.ai.DraftStatusEmail(c.Request.Context(), id, req.Stage)
	if err != nil {
		h.aiError(c, id, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"data": EmailResponse{OrderID: id, Subject: subject, Email: body}})
}

func (h *Handler) Chat(c *gin.Context) {
	var req validation.ChatRequest
	if err := validation.BindAndValidate(c, &req, h.validate); err != nil {
		return
	}
	req.ApplyDefaults()

	reply, err := h.ai.SupportReply(c.Request.Context(), req.OrderID, req.Message, req.Language, req.Tone)
	if err != nil {
		h.aiError(c, req.OrderID, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"data": ChatResponse{OrderID: req.OrderID, Reply: reply}})
}

// aiError maps AI pipeline failures to their status codes. All generation
// failures share a single 502 shape.
func (h *Handler) aiError(c *gin.Context, id uint64, err error) {
	switch {
	case errors.Is(err, services.ErrOrderNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": "Order not found"})
	case errors.Is(err, services.ErrGenerationFailed):
		h.logger.Warn("generation backend failure", zap.Uint64("orderId", id), zap.Error(err))
		c.JSON(http.StatusBadGateway, gin.H{"error": "LLM request failed (Ollama unreachable or model not installed)"})
	default:
		h.logger.Error("ai endpoint failure", zap.Uint64("orderId", id), zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal error"})
	}
}

// Health always answers 200. The backend being down is reported in the
// payload, never as an endpoint failure.
func (h *Handler) Health(c *gin.Context) {
	resp := HealthResponse{OK: true, DB: "ok", Model: h.model}

	models, err := h.llm.ListModels(c.Request.Context())
	if err != nil {
		resp.Ollama = "unreachable"
	} else {
		resp.Ollama = "ok"
		resp.ModelsInstalled = models
	}

	c.JSON(http.StatusOK, resp)
}
