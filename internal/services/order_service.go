package services

import (
	"encoding/json"
	"fmt"
	"log"
	"math/rand"
	"time"

	"parrotshop/internal/models"
	"parrotshop/internal/repositories"

	"github.com/google/uuid"
)

// EventPublisher publishes order lifecycle events to a message broker.
// Publishing is best-effort: failures are logged and never block the
// order flow.
type EventPublisher interface {
	Publish(event string, body []byte) error
}

// OrderNotifier announces a freshly created order to the operator
// channel. The product map carries the catalog records for every line
// item so the notifier can render names and prices.
type OrderNotifier interface {
	OrderCreated(order *models.Order, products map[uint]models.Product) error
}

// PricingConfig holds the delivery surcharge parameters. The fee applies
// to courier delivery only and is waived once the merchandise subtotal
// reaches FreeDeliveryThreshold.
type PricingConfig struct {
	CourierFee            int
	FreeDeliveryThreshold int
}

// CreateOrderItem is one requested cart line. Any client-supplied price
// never reaches this type: prices are recomputed from the catalog.
type CreateOrderItem struct {
	ProductID uint
	Quantity  int
}

// CreateOrderInput carries a validated checkout submission.
type CreateOrderInput struct {
	CustomerName   string
	CustomerPhone  string
	CustomerEmail  string
	DeliveryMethod string
	City           string
	Address        string
	Apartment      string
	Comment        string
	PaymentMethod  string
	Items          []CreateOrderItem
}

// CreateOrderResult is what the checkout endpoint returns to the client.
type CreateOrderResult struct {
	OrderNumber       string `json:"orderNumber"`
	Total             int    `json:"total"`
	ConfirmationToken string `json:"confirmationToken"`
}

// OrderService owns order creation and the confirmation state machine.
type OrderService struct {
	orderRepo   repositories.OrderRepository
	productRepo repositories.ProductRepository
	publisher   EventPublisher
	notifier    OrderNotifier
	pricing     PricingConfig
}

// NewOrderService creates a new OrderService.
func NewOrderService(orderRepo repositories.OrderRepository, productRepo repositories.ProductRepository, publisher EventPublisher, pricing PricingConfig) *OrderService {
	return &OrderService{
		orderRepo:   orderRepo,
		productRepo: productRepo,
		publisher:   publisher,
		pricing:     pricing,
	}
}

// SetNotifier attaches the operator-channel notifier. Called after
// construction because the Telegram bot needs the service itself.
func (s *OrderService) SetNotifier(notifier OrderNotifier) {
	s.notifier = notifier
}

// CreateOrder creates a new order from a cart snapshot.
//
// Every line price is recomputed from the current catalog; the subtotal
// plus the delivery surcharge becomes the order total. The header and
// all items persist atomically: an unresolvable product ID fails the
// whole operation with nothing written.
func (s *OrderService) CreateOrder(input CreateOrderInput) (*CreateOrderResult, error) {
	if len(input.Items) == 0 {
		return nil, fmt.Errorf("order must contain at least one item")
	}

	var subtotal int
	items := make([]models.OrderItem, 0, len(input.Items))
	products := make(map[uint]models.Product, len(input.Items))

	for _, item := range input.Items {
		product, err := s.productRepo.GetByID(item.ProductID)
		if err != nil {
			return nil, fmt.Errorf("product %d not found: %w", item.ProductID, err)
		}
		products[product.ID] = *product
		subtotal += product.Price * item.Quantity
		items = append(items, models.OrderItem{
			ProductID: item.ProductID,
			Quantity:  item.Quantity,
			Price:     product.Price,
		})
	}

	total := subtotal + s.deliverySurcharge(input.DeliveryMethod, subtotal)

	order := &models.Order{
		OrderNumber:       generateOrderNumber(),
		CustomerName:      input.CustomerName,
		CustomerPhone:     input.CustomerPhone,
		CustomerEmail:     input.CustomerEmail,
		DeliveryMethod:    input.DeliveryMethod,
		City:              input.City,
		Address:           input.Address,
		Apartment:         input.Apartment,
		Comment:           input.Comment,
		PaymentMethod:     input.PaymentMethod,
		Total:             total,
		Status:            models.StatusNew,
		ConfirmationToken: uuid.New().String(),
		Confirmed:         false,
		CreatedAt:         time.Now(),
		Items:             items,
	}

	if err := s.orderRepo.Create(order); err != nil {
		return nil, fmt.Errorf("failed to create order in repository: %w", err)
	}

	s.publishEvent("order.created", order)

	if s.notifier != nil {
		if err := s.notifier.OrderCreated(order, products); err != nil {
			log.Printf("Warning: failed to notify operator channel about order %s: %v", order.OrderNumber, err)
		}
	}

	return &CreateOrderResult{
		OrderNumber:       order.OrderNumber,
		Total:             order.Total,
		ConfirmationToken: order.ConfirmationToken,
	}, nil
}

// deliverySurcharge returns the additive fee for the chosen delivery
// method given the merchandise subtotal.
func (s *OrderService) deliverySurcharge(deliveryMethod string, subtotal int) int {
	if deliveryMethod != models.DeliveryCourier {
		return 0
	}
	if subtotal >= s.pricing.FreeDeliveryThreshold {
		return 0
	}
	return s.pricing.CourierFee
}

// GetOrderByToken retrieves an order by its confirmation token.
func (s *OrderService) GetOrderByToken(token string) (*models.Order, error) {
	return s.orderRepo.GetByToken(token)
}

// ConfirmByToken drives the new -> confirmed transition. The returned
// bool reports whether a transition actually happened: confirming an
// order that already left the "new" state is an idempotent no-op
// returning its current record.
func (s *OrderService) ConfirmByToken(token string) (*models.Order, bool, error) {
	order, err := s.orderRepo.GetByToken(token)
	if err != nil {
		return nil, false, err
	}
	if order.Confirmed || order.Status != models.StatusNew {
		return order, false, nil
	}

	if err := s.orderRepo.SetDecision(order.ID, models.StatusConfirmed, true); err != nil {
		return nil, false, fmt.Errorf("failed to confirm order %s: %w", order.OrderNumber, err)
	}
	order.Status = models.StatusConfirmed
	order.Confirmed = true

	s.publishEvent("order.confirmed", order)
	return order, true, nil
}

// CancelByToken drives the new -> cancelled transition, with the same
// idempotency behavior as ConfirmByToken.
func (s *OrderService) CancelByToken(token string) (*models.Order, bool, error) {
	order, err := s.orderRepo.GetByToken(token)
	if err != nil {
		return nil, false, err
	}
	if order.Status != models.StatusNew {
		return order, false, nil
	}

	if err := s.orderRepo.SetDecision(order.ID, models.StatusCancelled, order.Confirmed); err != nil {
		return nil, false, fmt.Errorf("failed to cancel order %s: %w", order.OrderNumber, err)
	}
	order.Status = models.StatusCancelled

	s.publishEvent("order.cancelled", order)
	return order, true, nil
}

// GetAllOrders retrieves all orders for the operator view.
func (s *OrderService) GetAllOrders() ([]models.Order, error) {
	return s.orderRepo.GetAll()
}

// UpdateOrderStatus sets an out-of-band status (processing, completed)
// on an existing order.
func (s *OrderService) UpdateOrderStatus(id uint, status string) error {
	validStatuses := map[string]bool{
		models.StatusNew:        true,
		models.StatusConfirmed:  true,
		models.StatusProcessing: true,
		models.StatusCompleted:  true,
		models.StatusCancelled:  true,
	}
	if !validStatuses[status] {
		return fmt.Errorf("invalid order status: %s", status)
	}

	if err := s.orderRepo.UpdateStatus(id, status); err != nil {
		return fmt.Errorf("failed to update order status for order %d: %w", id, err)
	}
	return nil
}

// publishEvent emits an order lifecycle event to the broker, if one is
// configured. Delivery failures are logged and swallowed.
func (s *OrderService) publishEvent(event string, order *models.Order) {
	if s.publisher == nil {
		return
	}

	body, err := json.Marshal(map[string]interface{}{
		"event":       event,
		"orderNumber": order.OrderNumber,
		"status":      order.Status,
		"total":       order.Total,
	})
	if err != nil {
		log.Printf("Failed to marshal %s event: %v", event, err)
		return
	}

	if err := s.publisher.Publish(event, body); err != nil {
		log.Printf("Warning: failed to publish %s event for order %s: %v", event, order.OrderNumber, err)
	}
}

// generateOrderNumber mints a human-readable order number, distinct
// from the internal row ID. Collisions are prevented by the unique
// index on the column.
func generateOrderNumber() string {
	return fmt.Sprintf("ORD-%06d-%03d", time.Now().UnixMilli()%1000000, rand.Intn(1000))
}
