package sqlite

import (
	"context"
	"errors"

	"order-assistant/internal/domain"
	"order-assistant/internal/repository"

	"gorm.io/gorm"
)

type orderRepo struct {
	db *gorm.DB
}

func NewOrderRepository(db *gorm.DB) repository.OrderRepository {
	return &orderRepo{db: db}
}

// Create inserts the order row and all of its item rows in one transaction.
// Nothing persists if any insert fails.
func (r *orderRepo) Create(ctx context.Context, order *domain.Order) error {
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return tx.Create(order).Error
	})
	if err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return repository.ErrDuplicateOrderNumber
		}
		return err
	}
	return nil
}

// List returns a summary page: newest first, items not loaded.
func (r *orderRepo) List(ctx context.Context, limit, offset int) ([]domain.Order, error) {
	var out []domain.Order
	err := r.db.WithContext(ctx).
		Order("created_at DESC, id DESC").
		Limit(limit).
		Offset(offset).
		Find(&out).Error
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (r *orderRepo) FindByID(ctx context.Context, id uint64) (*domain.Order, error) {
	var o domain.Order
	err := r.db.WithContext(ctx).
		Preload("Items", func(db *gorm.DB) *gorm.DB {
			return db.Order("order_items.id ASC")
		}).
		First(&o, id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &o, nil
}

func (r *orderRepo) UpdateStatus(ctx context.Context, id uint64, status domain.OrderStatus) (bool, error) {
	res := r.db.WithContext(ctx).
		Model(&domain.Order{}).
		Where("id = ?", id).
		Update("status", status)
	if res.Error != nil {
		return false, res.Error
	}
	return res.RowsAffected > 0, nil
}

// Delete removes the order and all of its items atomically. Items go first
// so the parent row never outlives a failed child delete.
func (r *orderRepo) Delete(ctx context.Context, id uint64) (bool, error) {
	var affected int64
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("order_id = ?", id).Delete(&domain.OrderItem{}).Error; err != nil {
			return err
		}
		res := tx.Delete(&domain.Order{}, id)
		if res.Error != nil {
			return res.Error
		}
		affected = res.RowsAffected
		return nil
	})
	if err != nil {
		return false, err
	}
	return affected > 0, nil
}
