package main

import (
	"testing"

	"parrotshop/internal/models"
	"parrotshop/internal/repositories"
	"parrotshop/internal/services"

	"github.com/stretchr/testify/assert"
)

func TestSeedCatalogIsValid(t *testing.T) {
	validCategories := map[string]bool{
		models.CategoryFeed:  true,
		models.CategoryCages: true,
		models.CategoryToys:  true,
		models.CategoryVet:   true,
	}

	seenNames := make(map[string]bool)
	for _, p := range seedProducts {
		assert.NotEmpty(t, p.Name)
		assert.False(t, seenNames[p.Name], "duplicate seed product: %s", p.Name)
		seenNames[p.Name] = true
		assert.True(t, validCategories[p.Category], "product %s has unknown category %s", p.Name, p.Category)
		assert.Greater(t, p.Price, 0, "product %s has no price", p.Name)
		if p.OldPrice != nil {
			assert.Greater(t, *p.OldPrice, p.Price, "product %s old price must exceed current", p.Name)
		}
	}

	for _, r := range seedReviews {
		assert.NotEmpty(t, r.CustomerName)
		assert.NotEmpty(t, r.Text)
		assert.GreaterOrEqual(t, r.Rating, 1)
		assert.LessOrEqual(t, r.Rating, 5)
	}
}

func TestSeedDatabaseIsIdempotent(t *testing.T) {
	catalog := services.NewCatalogService(repositories.NewMockProductRepository())
	reviews := services.NewReviewService(repositories.NewMockReviewRepository())

	seedDatabase(catalog, reviews)
	first, err := catalog.ListProducts(repositories.ProductListParams{})
	assert.NoError(t, err)
	assert.Len(t, first, len(seedProducts))

	// a second run against a populated store adds nothing
	seedDatabase(catalog, reviews)
	second, err := catalog.ListProducts(repositories.ProductListParams{})
	assert.NoError(t, err)
	assert.Len(t, second, len(first))

	seeded, err := reviews.ListReviews()
	assert.NoError(t, err)
	assert.Len(t, seeded, len(seedReviews))
}
