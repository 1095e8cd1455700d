package repository

import (
	"context"
	"errors"

	"order-assistant/internal/domain"
)

// ErrDuplicateOrderNumber is returned by Create when the order number is
// already taken. Callers map it to a conflict response.
var ErrDuplicateOrderNumber = errors.New("order number already exists")

type OrderRepository interface {
	Create(ctx context.Context, order *domain.Order) error
	List(ctx context.Context, limit, offset int) ([]domain.Order, error)
	FindByID(ctx context.Context, id uint64) (*domain.Order, error)
	UpdateStatus(ctx context.Context, id uint64, status domain.OrderStatus) (bool, error)
	Delete(ctx context.Context, id uint64) (bool, error)
}
