package bot

import (
	"fmt"
	"strconv"
	"strings"

	"parrotshop/internal/models"
)

// FormatOrderMessage renders the operator-chat summary for a freshly
// created order, including the recomputed line prices.
func FormatOrderMessage(order *models.Order, products map[uint]models.Product) string {
	var lines []string
	for _, item := range order.Items {
		name := fmt.Sprintf("Товар #%d", item.ProductID)
		if p, ok := products[item.ProductID]; ok {
			name = p.Name
		}
		lines = append(lines, fmt.Sprintf("• %s x%d = %s",
			name, item.Quantity, formatRub(item.Price*item.Quantity)))
	}

	var sb strings.Builder
	fmt.Fprintf(&sb, "🛒 <b>Новая заявка #%s</b>\n\n%s\n\n", order.OrderNumber, strings.Join(lines, "\n"))
	fmt.Fprintf(&sb, "💰 %s\n🚚 %s%s\n💳 %s\n\n",
		formatRub(order.Total), deliveryText(order.DeliveryMethod),
		addressLine(order), paymentText(order.PaymentMethod))
	fmt.Fprintf(&sb, "📱 %s\n👤 %s", order.CustomerPhone, order.CustomerName)
	if order.CustomerEmail != "" {
		fmt.Fprintf(&sb, "\n📧 %s", order.CustomerEmail)
	}
	if order.Comment != "" {
		fmt.Fprintf(&sb, "\n💬 %s", order.Comment)
	}
	sb.WriteString("\n\n⚠️ Ожидает подтверждения клиента в боте")
	return sb.String()
}

// addressLine renders the delivery address fragment, empty for pickup.
func addressLine(order *models.Order) string {
	if order.DeliveryMethod == models.DeliveryPickup {
		return ""
	}
	city := order.City
	if city == "" {
		city = "—"
	}
	address := order.Address
	if address == "" {
		address = "—"
	}
	line := fmt.Sprintf("\n📍 %s, %s", city, address)
	if order.Apartment != "" {
		line += ", кв. " + order.Apartment
	}
	return line
}

func deliveryText(method string) string {
	switch method {
	case models.DeliveryPickup:
		return "Самовывоз"
	case models.DeliveryCourier:
		return "Курьер"
	case models.DeliveryCDEK:
		return "CDEK"
	case models.DeliveryPost:
		return "Почта России"
	default:
		return method
	}
}

func paymentText(method string) string {
	switch method {
	case models.PaymentCash:
		return "Наличные"
	case models.PaymentCardOnline:
		return "Карта онлайн"
	case models.PaymentSBP:
		return "СБП"
	default:
		return method
	}
}

func statusText(status string) string {
	switch status {
	case models.StatusNew:
		return "Новый"
	case models.StatusConfirmed:
		return "Подтвержден"
	case models.StatusProcessing:
		return "В обработке"
	case models.StatusCompleted:
		return "Выполнен"
	case models.StatusCancelled:
		return "Отменен"
	default:
		return status
	}
}

// formatRub renders an integer ruble amount with thousands separators,
// e.g. 12500 -> "12 500 ₽".
func formatRub(amount int) string {
	s := strconv.Itoa(amount)
	neg := strings.HasPrefix(s, "-")
	if neg {
		s = s[1:]
	}
	var parts []string
	for len(s) > 3 {
		parts = append([]string{s[len(s)-3:]}, parts...)
		s = s[:len(s)-3]
	}
	parts = append([]string{s}, parts...)
	out := strings.Join(parts, " ")
	if neg {
		out = "-" + out
	}
	return out + " ₽"
}
