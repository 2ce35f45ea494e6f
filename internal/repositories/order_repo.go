package repositories

import (
	"parrotshop/internal/models"
)

// OrderRepository defines the interface for order data access.
//
// Create must persist the order header and all line items as a single
// atomic unit: either everything becomes visible or nothing does.
type OrderRepository interface {
	Create(order *models.Order) error
	GetAll() ([]models.Order, error)
	GetByToken(token string) (*models.Order, error)
	UpdateStatus(id uint, status string) error
	SetDecision(id uint, status string, confirmed bool) error
}
