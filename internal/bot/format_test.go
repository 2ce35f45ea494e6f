package bot

import (
	"testing"

	"parrotshop/internal/models"

	"github.com/stretchr/testify/assert"
)

func TestFormatRub(t *testing.T) {
	assert.Equal(t, "0 ₽", formatRub(0))
	assert.Equal(t, "850 ₽", formatRub(850))
	assert.Equal(t, "2 000 ₽", formatRub(2000))
	assert.Equal(t, "12 500 ₽", formatRub(12500))
	assert.Equal(t, "1 234 567 ₽", formatRub(1234567))
	assert.Equal(t, "-1 500 ₽", formatRub(-1500))
}

func TestFormatOrderMessage(t *testing.T) {
	order := &models.Order{
		OrderNumber:    "ORD-000123-001",
		CustomerName:   "Мария",
		CustomerPhone:  "+79990001122",
		CustomerEmail:  "maria@example.com",
		DeliveryMethod: models.DeliveryCourier,
		City:           "Москва",
		Address:        "ул. Ленина 1",
		Apartment:      "12",
		Comment:        "Позвоните заранее",
		PaymentMethod:  models.PaymentCash,
		Total:          2000,
		Items: []models.OrderItem{
			{ProductID: 1, Quantity: 2, Price: 850},
		},
	}
	products := map[uint]models.Product{
		1: {ID: 1, Name: "Padovan GrandMix для попугаев"},
	}

	text := FormatOrderMessage(order, products)
	assert.Contains(t, text, "ORD-000123-001")
	assert.Contains(t, text, "• Padovan GrandMix для попугаев x2 = 1 700 ₽")
	assert.Contains(t, text, "2 000 ₽")
	assert.Contains(t, text, "Курьер")
	assert.Contains(t, text, "Москва, ул. Ленина 1, кв. 12")
	assert.Contains(t, text, "Наличные")
	assert.Contains(t, text, "maria@example.com")
	assert.Contains(t, text, "Позвоните заранее")
	assert.Contains(t, text, "Ожидает подтверждения клиента")
}

func TestFormatOrderMessage_UnknownProductFallsBackToID(t *testing.T) {
	order := &models.Order{
		OrderNumber:    "ORD-000124-002",
		CustomerName:   "Иван",
		CustomerPhone:  "+79990001133",
		DeliveryMethod: models.DeliveryPickup,
		PaymentMethod:  models.PaymentSBP,
		Total:          450,
		Items:          []models.OrderItem{{ProductID: 42, Quantity: 1, Price: 450}},
	}

	text := FormatOrderMessage(order, nil)
	assert.Contains(t, text, "Товар #42")
	// pickup orders carry no address fragment
	assert.NotContains(t, text, "📍")
}

func TestAddressLine(t *testing.T) {
	pickup := &models.Order{DeliveryMethod: models.DeliveryPickup, City: "Москва"}
	assert.Equal(t, "", addressLine(pickup))

	partial := &models.Order{DeliveryMethod: models.DeliveryCDEK, City: "Казань"}
	assert.Equal(t, "\n📍 Казань, —", addressLine(partial))
}
