package services

import (
	"context"
	"errors"

	"order-assistant/internal/domain"
	"order-assistant/internal/repository"
	"order-assistant/internal/validation"
)

var ErrOrderNotFound = errors.New("order not found")

type OrderService struct {
	repo repository.OrderRepository
}

func NewOrderService(r repository.OrderRepository) *OrderService {
	return &OrderService{repo: r}
}

// CreateOrder persists a validated draft and returns the stored order with
// its assigned id. A missing status defaults to NOT_SHIPPED.
func (s *OrderService) CreateOrder(ctx context.Context, req validation.CreateOrderRequest) (*domain.Order, error) {
	status := domain.StatusNotShipped
	if req.Status != "" {
		status = domain.OrderStatus(req.Status)
	}

	items := make([]domain.OrderItem, 0, len(req.Items))
	for _, it := range req.Items {
		items = append(items, domain.OrderItem{
			Title:     it.Title,
			SKU:       it.SKU,
			Quantity:  it.Quantity,
			UnitPrice: it.UnitPrice,
			Currency:  it.Currency,
		})
	}

	order := &domain.Order{
		OrderNumber:        req.OrderNumber,
		BuyerName:          req.BuyerName,
		BuyerEmail:         req.BuyerEmail,
		ShippingName:       req.ShippingName,
		ShippingAddress1:   req.ShippingAddress1,
		ShippingAddress2:   req.ShippingAddress2,
		ShippingCity:       req.ShippingCity,
		ShippingPostalCode: req.ShippingPostalCode,
		ShippingProvince:   req.ShippingProvince,
		ShippingCountry:    req.ShippingCountry,
		Status:             status,
		Items:              items,
	}

	if err := s.repo.Create(ctx, order); err != nil {
		return nil, err
	}
	return order, nil
}

func (s *OrderService) ListOrders(ctx context.Context, limit, offset int) ([]domain.Order, error) {
	return s.repo.List(ctx, limit, offset)
}

func (s *OrderService) GetOrder(ctx context.Context, id uint64) (*domain.Order, error) {
	o, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if o == nil {
		return nil, ErrOrderNotFound
	}
	return o, nil
}

func (s *OrderService) UpdateStatus(ctx context.Context, id uint64, status domain.OrderStatus) error {
	ok, err := s.repo.UpdateStatus(ctx, id, status)
	if err != nil {
		return err
	}
	if !ok {
		return ErrOrderNotFound
	}
	return nil
}

func (s *OrderService) DeleteOrder(ctx context.Context, id uint64) error {
	ok, err := s.repo.Delete(ctx, id)
	if err != nil {
		return err
	}
	if !ok {
		return ErrOrderNotFound
	}
	return nil
}
