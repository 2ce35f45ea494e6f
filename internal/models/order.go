package models

import "time"

// Order statuses. The confirmation workflow only ever produces
// "confirmed" and "cancelled"; "processing" and "completed" are set
// out-of-band by the operator.
const (
	StatusNew        = "new"
	StatusConfirmed  = "confirmed"
	StatusProcessing = "processing"
	StatusCompleted  = "completed"
	StatusCancelled  = "cancelled"
)

// Delivery methods.
const (
	DeliveryPickup  = "pickup"
	DeliveryCourier = "courier"
	DeliveryCDEK    = "cdek"
	DeliveryPost    = "post"
)

// Payment methods.
const (
	PaymentCash       = "cash"
	PaymentCardOnline = "card_online"
	PaymentSBP        = "sbp"
)

// OrderItem is a line-item snapshot belonging to exactly one order.
// Price is the catalog price captured at order-creation time and never
// changes afterwards, regardless of later product price updates.
type OrderItem struct {
	ID        uint `json:"id" gorm:"primaryKey"`
	OrderID   uint `json:"orderId" gorm:"index"`
	ProductID uint `json:"productId"`
	Quantity  int  `json:"quantity"`
	Price     int  `json:"price"`
}

// Order is a customer order. OrderNumber is the human-readable public
// identifier; ConfirmationToken is an opaque key used only for the
// Telegram confirmation handshake and is never exposed over the catalog
// API responses.
type Order struct {
	ID                uint        `json:"id" gorm:"primaryKey"`
	OrderNumber       string      `json:"orderNumber" gorm:"uniqueIndex;type:varchar(32)"`
	CustomerName      string      `json:"customerName"`
	CustomerPhone     string      `json:"customerPhone"`
	CustomerEmail     string      `json:"customerEmail,omitempty"`
	DeliveryMethod    string      `json:"deliveryMethod"`
	City              string      `json:"city,omitempty"`
	Address           string      `json:"address,omitempty"`
	Apartment         string      `json:"apartment,omitempty"`
	Comment           string      `json:"comment,omitempty"`
	PaymentMethod     string      `json:"paymentMethod"`
	Total             int         `json:"total"`
	Status            string      `json:"status" gorm:"default:new"`
	ConfirmationToken string      `json:"-" gorm:"uniqueIndex;type:varchar(36)"`
	Confirmed         bool        `json:"confirmed"`
	CreatedAt         time.Time   `json:"createdAt"`
	Items             []OrderItem `json:"items,omitempty" gorm:"foreignKey:OrderID"`
}
