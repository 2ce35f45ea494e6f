package handlers

import (
	"errors"
	"log"
	"strconv"

	"parrotshop/internal/repositories"
	"parrotshop/internal/services"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

// CreateOrderRequest is the checkout submission body. Address fields are
// required for every delivery method except pickup. Line items never
// carry prices: the server recomputes them from the catalog.
type CreateOrderRequest struct {
	CustomerName   string             `json:"customerName" validate:"required,min=1,max=200"`
	CustomerPhone  string             `json:"customerPhone" validate:"required,min=5,max=32"`
	CustomerEmail  string             `json:"customerEmail" validate:"omitempty,email"`
	DeliveryMethod string             `json:"deliveryMethod" validate:"required,oneof=pickup courier cdek post"`
	City           string             `json:"city" validate:"required_unless=DeliveryMethod pickup"`
	Address        string             `json:"address" validate:"required_unless=DeliveryMethod pickup"`
	Apartment      string             `json:"apartment"`
	Comment        string             `json:"comment" validate:"omitempty,max=1000"`
	PaymentMethod  string             `json:"paymentMethod" validate:"required,oneof=cash card_online sbp"`
	Items          []OrderItemRequest `json:"items" validate:"required,min=1,dive"`
}

// OrderItemRequest is one cart line in the checkout submission.
type OrderItemRequest struct {
	ProductID uint `json:"productId" validate:"required"`
	Quantity  int  `json:"quantity" validate:"required,min=1"`
}

// OrderHandler handles HTTP requests for orders.
type OrderHandler struct {
	service  *services.OrderService
	validate *validator.Validate
}

// NewOrderHandler creates a new OrderHandler.
func NewOrderHandler(service *services.OrderService) *OrderHandler {
	return &OrderHandler{
		service:  service,
		validate: newValidator(),
	}
}

// RegisterRoutes registers the order routes. Creation is public; the
// listing and status endpoints are operator-only.
func (h *OrderHandler) RegisterRoutes(router fiber.Router, adminGuard fiber.Handler) {
	orderRoutes := router.Group("/orders")
	orderRoutes.Post("/", h.HandleCreateOrder)
	orderRoutes.Get("/", adminGuard, h.HandleGetOrders)
	orderRoutes.Patch("/:id/status", adminGuard, h.HandleUpdateOrderStatus)
}

// HandleCreateOrder validates a checkout submission and creates the
// order. Validation failures are 400s with the offending field; a line
// item referencing a vanished product is a 500, since it signals a race
// or stale catalog rather than a malformed request.
func (h *OrderHandler) HandleCreateOrder(c *fiber.Ctx) error {
	var req CreateOrderRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Invalid request body",
		})
	}

	if err := h.validate.Struct(req); err != nil {
		return validationError(c, err)
	}

	items := make([]services.CreateOrderItem, 0, len(req.Items))
	for _, item := range req.Items {
		items = append(items, services.CreateOrderItem{
			ProductID: item.ProductID,
			Quantity:  item.Quantity,
		})
	}

	result, err := h.service.CreateOrder(services.CreateOrderInput{
		CustomerName:   req.CustomerName,
		CustomerPhone:  req.CustomerPhone,
		CustomerEmail:  req.CustomerEmail,
		DeliveryMethod: req.DeliveryMethod,
		City:           req.City,
		Address:        req.Address,
		Apartment:      req.Apartment,
		Comment:        req.Comment,
		PaymentMethod:  req.PaymentMethod,
		Items:          items,
	})
	if err != nil {
		log.Printf("Error creating order: %v", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"message": err.Error(),
		})
	}

	return c.Status(fiber.StatusCreated).JSON(result)
}

// HandleGetOrders lists all orders for the operator.
func (h *OrderHandler) HandleGetOrders(c *fiber.Ctx) error {
	orders, err := h.service.GetAllOrders()
	if err != nil {
		log.Printf("Error getting all orders: %v", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"message": "Could not retrieve orders",
		})
	}
	return c.JSON(orders)
}

// HandleUpdateOrderStatus sets an out-of-band status on an order.
func (h *OrderHandler) HandleUpdateOrderStatus(c *fiber.Ctx) error {
	id, err := strconv.ParseUint(c.Params("id"), 10, 32)
	if err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"message": "Order not found",
		})
	}

	var updateData struct {
		Status string `json:"status"`
	}
	if err := c.BodyParser(&updateData); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Invalid request body",
		})
	}
	if updateData.Status == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Status is required",
			"field":   "status",
		})
	}

	if err := h.service.UpdateOrderStatus(uint(id), updateData.Status); err != nil {
		log.Printf("Error updating order status for order %d: %v", id, err)
		if errors.Is(err, repositories.ErrNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
				"message": "Order not found",
			})
		}
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": err.Error(),
		})
	}

	return c.JSON(fiber.Map{
		"message": "Order status updated successfully",
	})
}
