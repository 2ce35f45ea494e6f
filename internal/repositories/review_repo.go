package repositories

import (
	"parrotshop/internal/models"
)

// ReviewRepository defines the interface for review data access.
// Reviews are append-only: there is no update or delete.
type ReviewRepository interface {
	List() ([]models.Review, error)
	Create(review *models.Review) error
}
