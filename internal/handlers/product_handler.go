package handlers

import (
	"errors"
	"log"
	"strconv"

	"parrotshop/internal/models"
	"parrotshop/internal/repositories"
	"parrotshop/internal/services"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

var validSortKeys = map[string]bool{
	repositories.SortPopular:   true,
	repositories.SortPriceAsc:  true,
	repositories.SortPriceDesc: true,
	repositories.SortName:      true,
}

// ProductHandler handles HTTP requests for the catalog.
type ProductHandler struct {
	service  *services.CatalogService
	validate *validator.Validate
}

// NewProductHandler creates a new ProductHandler.
func NewProductHandler(service *services.CatalogService) *ProductHandler {
	return &ProductHandler{
		service:  service,
		validate: newValidator(),
	}
}

// RegisterRoutes registers the catalog routes. The write endpoints go
// behind the admin guard; reads are public.
//
// The /products/id/:id route must register before /products/:slug so a
// numeric lookup is not swallowed by the slug parameter.
func (h *ProductHandler) RegisterRoutes(router fiber.Router, adminGuard fiber.Handler) {
	productRoutes := router.Group("/products")
	productRoutes.Get("/", h.HandleList)
	productRoutes.Get("/id/:id", h.HandleGetByID)
	productRoutes.Get("/:slug", h.HandleGetBySlug)
	productRoutes.Post("/", adminGuard, h.HandleCreate)
	productRoutes.Put("/:id", adminGuard, h.HandleUpdate)
	productRoutes.Delete("/:id", adminGuard, h.HandleDelete)

	router.Get("/categories", h.HandleCategories)
}

// HandleList returns products matching the query filters.
func (h *ProductHandler) HandleList(c *fiber.Ctx) error {
	params, err := parseListParams(c)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Invalid query parameters",
		})
	}

	products, err := h.service.ListProducts(params)
	if err != nil {
		log.Printf("Error listing products: %v", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"message": "Could not retrieve products",
		})
	}
	return c.JSON(products)
}

func parseListParams(c *fiber.Ctx) (repositories.ProductListParams, error) {
	params := repositories.ProductListParams{
		Category: c.Query("category"),
		Search:   c.Query("search"),
	}

	if raw := c.Query("minPrice"); raw != "" {
		value, err := strconv.Atoi(raw)
		if err != nil {
			return params, err
		}
		params.MinPrice = &value
	}
	if raw := c.Query("maxPrice"); raw != "" {
		value, err := strconv.Atoi(raw)
		if err != nil {
			return params, err
		}
		params.MaxPrice = &value
	}
	if raw := c.Query("inStock"); raw != "" {
		value, err := strconv.ParseBool(raw)
		if err != nil {
			return params, err
		}
		params.InStock = value
	}
	if sort := c.Query("sort"); sort != "" {
		if !validSortKeys[sort] {
			return params, errors.New("unknown sort key")
		}
		params.Sort = sort
	}
	return params, nil
}

// HandleGetBySlug returns one product by slug.
func (h *ProductHandler) HandleGetBySlug(c *fiber.Ctx) error {
	product, err := h.service.GetProductBySlug(c.Params("slug"))
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
				"message": "Product not found",
			})
		}
		log.Printf("Error getting product by slug: %v", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"message": "Could not retrieve product",
		})
	}
	return c.JSON(product)
}

// HandleGetByID returns one product by numeric ID.
func (h *ProductHandler) HandleGetByID(c *fiber.Ctx) error {
	id, err := strconv.ParseUint(c.Params("id"), 10, 32)
	if err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"message": "Product not found",
		})
	}

	product, err := h.service.GetProductByID(uint(id))
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
				"message": "Product not found",
			})
		}
		log.Printf("Error getting product by ID %d: %v", id, err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"message": "Could not retrieve product",
		})
	}
	return c.JSON(product)
}

// HandleCreate creates a new catalog product (admin).
func (h *ProductHandler) HandleCreate(c *fiber.Ctx) error {
	var product models.Product
	if err := c.BodyParser(&product); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Invalid request body",
		})
	}

	if err := h.validate.Struct(product); err != nil {
		return validationError(c, err)
	}

	if err := h.service.CreateProduct(&product); err != nil {
		log.Printf("Error creating product: %v", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"message": "Could not create product",
		})
	}
	return c.Status(fiber.StatusCreated).JSON(product)
}

// HandleUpdate updates an existing product (admin). The slug is
// immutable and ignored if present in the body.
func (h *ProductHandler) HandleUpdate(c *fiber.Ctx) error {
	id, err := strconv.ParseUint(c.Params("id"), 10, 32)
	if err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"message": "Product not found",
		})
	}

	var product models.Product
	if err := c.BodyParser(&product); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Invalid request body",
		})
	}
	product.ID = uint(id)

	if err := h.validate.Struct(product); err != nil {
		return validationError(c, err)
	}

	if err := h.service.UpdateProduct(&product); err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
				"message": "Product not found",
			})
		}
		log.Printf("Error updating product %d: %v", id, err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"message": "Could not update product",
		})
	}
	return c.JSON(product)
}

// HandleDelete deletes a product (admin).
func (h *ProductHandler) HandleDelete(c *fiber.Ctx) error {
	id, err := strconv.ParseUint(c.Params("id"), 10, 32)
	if err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"message": "Product not found",
		})
	}

	if err := h.service.DeleteProduct(uint(id)); err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
				"message": "Product not found",
			})
		}
		log.Printf("Error deleting product %d: %v", id, err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"message": "Could not delete product",
		})
	}
	return c.JSON(fiber.Map{
		"message": "Product deleted successfully",
	})
}

// HandleCategories returns the fixed storefront category list.
func (h *ProductHandler) HandleCategories(c *fiber.Ctx) error {
	return c.JSON([]fiber.Map{
		{"id": models.CategoryFeed, "name": "Корма"},
		{"id": models.CategoryCages, "name": "Клетки"},
		{"id": models.CategoryToys, "name": "Игрушки"},
		{"id": models.CategoryVet, "name": "Ветаптека"},
	})
}
