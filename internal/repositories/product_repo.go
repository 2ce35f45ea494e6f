package repositories

import (
	"parrotshop/internal/models"
)

// Product sort keys accepted by ProductListParams.
const (
	SortPopular   = "popular"
	SortPriceAsc  = "price_asc"
	SortPriceDesc = "price_desc"
	SortName      = "name"
)

// ProductListParams is an optional conjunction of catalog filters.
// Zero values mean "not set". The empty Sort falls back to
// most-recently-created first.
type ProductListParams struct {
	Category string
	MinPrice *int
	MaxPrice *int
	InStock  bool
	Search   string
	Sort     string
}

// ProductRepository defines the interface for product data access.
type ProductRepository interface {
	List(params ProductListParams) ([]models.Product, error)
	GetBySlug(slug string) (*models.Product, error)
	GetByID(id uint) (*models.Product, error)
	Create(product *models.Product) error
	Update(product *models.Product) error
	Delete(id uint) error
}
