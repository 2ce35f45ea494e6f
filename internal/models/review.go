package models

import "time"

// Review is a customer testimonial. Purely display content: it has no
// relationship to orders or products, and DeliveryMethod here is a
// free-text label, not the order enumeration.
type Review struct {
	ID             uint      `json:"id" gorm:"primaryKey"`
	CustomerName   string    `json:"customerName" validate:"required,min=2,max=100"`
	City           string    `json:"city" validate:"required,min=2,max=100"`
	Rating         int       `json:"rating" validate:"required,min=1,max=5"`
	Text           string    `json:"text" validate:"required,min=3,max=2000"`
	Image          string    `json:"image" validate:"omitempty,url"`
	DeliveryMethod string    `json:"deliveryMethod" validate:"omitempty,max=100"`
	CreatedAt      time.Time `json:"createdAt"`
}
