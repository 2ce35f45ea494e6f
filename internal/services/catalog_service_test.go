package services_test

import (
	"strings"
	"testing"

	"parrotshop/internal/models"
	"parrotshop/internal/repositories"
	"parrotshop/internal/services"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func TestCatalogService_ListProducts(t *testing.T) {
	repo := new(MockProductRepository)
	service := services.NewCatalogService(repo)

	expected := []models.Product{
		{ID: 1, Name: "Padovan GrandMix для попугаев", Price: 850},
		{ID: 2, Name: "Канат хлопковый", Price: 450},
	}
	params := repositories.ProductListParams{Category: models.CategoryFeed, Sort: repositories.SortPriceAsc}
	repo.On("List", params).Return(expected, nil).Once()

	products, err := service.ListProducts(params)
	assert.NoError(t, err)
	assert.Equal(t, expected, products)
	repo.AssertExpectations(t)
}

func TestCatalogService_CreateProduct_GeneratesSlug(t *testing.T) {
	repo := new(MockProductRepository)
	service := services.NewCatalogService(repo)

	repo.On("Create", mock.AnythingOfType("*models.Product")).Return(nil).Once()

	product := &models.Product{
		Name:     "Versele-Laga Prestige",
		Category: models.CategoryFeed,
		Price:    1200,
		Image:    "/images/prestige.jpg",
	}
	err := service.CreateProduct(product)

	assert.NoError(t, err)
	assert.True(t, strings.HasPrefix(product.Slug, "versele-laga-prestige-"))
	// the single image is promoted into the gallery
	assert.Equal(t, models.StringList{"/images/prestige.jpg"}, product.Images)
	repo.AssertExpectations(t)
}

func TestCatalogService_CreateProduct_KeepsExplicitSlug(t *testing.T) {
	repo := new(MockProductRepository)
	service := services.NewCatalogService(repo)

	repo.On("Create", mock.AnythingOfType("*models.Product")).Return(nil).Once()

	product := &models.Product{
		Name:     "Versele-Laga Prestige",
		Slug:     "prestige-budgies",
		Category: models.CategoryFeed,
		Price:    1200,
	}
	err := service.CreateProduct(product)

	assert.NoError(t, err)
	assert.Equal(t, "prestige-budgies", product.Slug)
}

func TestGenerateSlug(t *testing.T) {
	slug := services.GenerateSlug("Padovan GrandMix  --  корм!")
	assert.Equal(t, strings.ToLower(slug), slug)
	assert.NotContains(t, slug, "--")
	assert.NotContains(t, slug, "!")
	assert.NotContains(t, slug, " ")
	assert.False(t, strings.HasPrefix(slug, "-"))

	// two calls for the same name must diverge via the random suffix
	a := services.GenerateSlug("Канат хлопковый")
	assert.True(t, strings.HasPrefix(a, "канат-хлопковый-"))
}
