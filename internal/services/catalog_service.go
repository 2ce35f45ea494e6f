package services

import (
	"fmt"
	"math/rand"
	"strings"
	"unicode"

	"parrotshop/internal/models"
	"parrotshop/internal/repositories"
)

// CatalogService handles business logic related to the product catalog.
type CatalogService struct {
	repo repositories.ProductRepository
}

// NewCatalogService creates a new CatalogService.
func NewCatalogService(repo repositories.ProductRepository) *CatalogService {
	return &CatalogService{
		repo: repo,
	}
}

// ListProducts retrieves products matching the given filters.
func (s *CatalogService) ListProducts(params repositories.ProductListParams) ([]models.Product, error) {
	return s.repo.List(params)
}

// GetProductBySlug retrieves a single product by its slug.
func (s *CatalogService) GetProductBySlug(slug string) (*models.Product, error) {
	return s.repo.GetBySlug(slug)
}

// GetProductByID retrieves a single product by its numeric ID.
func (s *CatalogService) GetProductByID(id uint) (*models.Product, error) {
	return s.repo.GetByID(id)
}

// CreateProduct creates a new product, deriving a slug from the name
// when none is supplied.
func (s *CatalogService) CreateProduct(product *models.Product) error {
	if product.Slug == "" {
		product.Slug = GenerateSlug(product.Name)
	}
	if len(product.Images) == 0 && product.Image != "" {
		product.Images = models.StringList{product.Image}
	}
	return s.repo.Create(product)
}

// UpdateProduct updates an existing product. The slug stays untouched.
func (s *CatalogService) UpdateProduct(product *models.Product) error {
	return s.repo.Update(product)
}

// DeleteProduct deletes a product by its ID.
func (s *CatalogService) DeleteProduct(id uint) error {
	return s.repo.Delete(id)
}

// GenerateSlug builds a URL-safe slug from a product name, with a random
// numeric suffix to keep generated slugs unique across similar names.
func GenerateSlug(name string) string {
	var b strings.Builder
	for _, r := range strings.ToLower(name) {
		switch {
		case unicode.IsLetter(r) || unicode.IsDigit(r):
			b.WriteRune(r)
		case r == ' ' || r == '-':
			b.WriteRune('-')
		}
	}
	slug := strings.Trim(b.String(), "-")
	for strings.Contains(slug, "--") {
		slug = strings.ReplaceAll(slug, "--", "-")
	}
	return fmt.Sprintf("%s-%d", slug, rand.Intn(1000))
}
