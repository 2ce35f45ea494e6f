package handlers

import (
	"log"

	"parrotshop/internal/models"
	"parrotshop/internal/services"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

// ReviewHandler handles HTTP requests for customer testimonials.
type ReviewHandler struct {
	service  *services.ReviewService
	validate *validator.Validate
}

// NewReviewHandler creates a new ReviewHandler.
func NewReviewHandler(service *services.ReviewService) *ReviewHandler {
	return &ReviewHandler{
		service:  service,
		validate: newValidator(),
	}
}

// RegisterRoutes registers the review routes.
func (h *ReviewHandler) RegisterRoutes(router fiber.Router) {
	reviewRoutes := router.Group("/reviews")
	reviewRoutes.Get("/", h.HandleList)
	reviewRoutes.Post("/", h.HandleCreate)
}

// HandleList returns all reviews, newest first.
func (h *ReviewHandler) HandleList(c *fiber.Ctx) error {
	reviews, err := h.service.ListReviews()
	if err != nil {
		log.Printf("Error listing reviews: %v", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"message": "Could not retrieve reviews",
		})
	}
	return c.JSON(reviews)
}

// HandleCreate appends a new review.
func (h *ReviewHandler) HandleCreate(c *fiber.Ctx) error {
	var review models.Review
	if err := c.BodyParser(&review); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Invalid request body",
		})
	}
	review.ID = 0

	if err := h.validate.Struct(review); err != nil {
		return validationError(c, err)
	}

	if err := h.service.CreateReview(&review); err != nil {
		log.Printf("Error creating review: %v", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"message": "Could not create review",
		})
	}
	return c.Status(fiber.StatusCreated).JSON(review)
}
