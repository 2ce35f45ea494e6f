package repositories

import (
	"errors"
	"fmt"

	"parrotshop/internal/models"

	"gorm.io/gorm"
)

// GORMOrderRepository is a GORM implementation of OrderRepository.
type GORMOrderRepository struct {
	db *gorm.DB
}

// NewGORMOrderRepository creates a new instance of GORMOrderRepository.
func NewGORMOrderRepository(db *gorm.DB) *GORMOrderRepository {
	return &GORMOrderRepository{
		db: db,
	}
}

// Create persists the order header and its line items inside one
// transaction so concurrent order creations never interleave partial
// writes.
func (r *GORMOrderRepository) Create(order *models.Order) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		items := order.Items
		order.Items = nil
		if err := tx.Create(order).Error; err != nil {
			return fmt.Errorf("failed to create order: %w", err)
		}
		for i := range items {
			items[i].OrderID = order.ID
		}
		if len(items) > 0 {
			if err := tx.Create(&items).Error; err != nil {
				return fmt.Errorf("failed to create order items: %w", err)
			}
		}
		order.Items = items
		return nil
	})
}

// GetAll retrieves all orders with their items, newest first.
func (r *GORMOrderRepository) GetAll() ([]models.Order, error) {
	var orders []models.Order
	if err := r.db.Preload("Items").Order("created_at DESC").Find(&orders).Error; err != nil {
		return nil, fmt.Errorf("failed to get all orders: %w", err)
	}
	return orders, nil
}

// GetByToken retrieves an order by its confirmation token.
func (r *GORMOrderRepository) GetByToken(token string) (*models.Order, error) {
	var order models.Order
	if err := r.db.Preload("Items").First(&order, "confirmation_token = ?", token).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("order token: %w", ErrNotFound)
		}
		return nil, fmt.Errorf("failed to get order by token: %w", err)
	}
	return &order, nil
}

// UpdateStatus updates the status of an order.
func (r *GORMOrderRepository) UpdateStatus(id uint, status string) error {
	res := r.db.Model(&models.Order{}).Where("id = ?", id).Update("status", status)
	if res.Error != nil {
		return fmt.Errorf("failed to update order status: %w", res.Error)
	}
	if res.RowsAffected == 0 {
		return fmt.Errorf("order %d for status update: %w", id, ErrNotFound)
	}
	return nil
}

// SetDecision records the confirmation workflow's outcome for an order.
func (r *GORMOrderRepository) SetDecision(id uint, status string, confirmed bool) error {
	res := r.db.Model(&models.Order{}).Where("id = ?", id).
		Updates(map[string]interface{}{"status": status, "confirmed": confirmed})
	if res.Error != nil {
		return fmt.Errorf("failed to record order decision: %w", res.Error)
	}
	if res.RowsAffected == 0 {
		return fmt.Errorf("order %d for decision: %w", id, ErrNotFound)
	}
	return nil
}
