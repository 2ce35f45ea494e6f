package handlers

import (
	"log"

	"parrotshop/internal/bot"
	"parrotshop/pkg/telegram"

	"github.com/gofiber/fiber/v2"
)

// WebhookHandler ingests Telegram updates delivered over HTTP. It is
// the webhook alternative to the polling loop; both feed the same bot.
type WebhookHandler struct {
	bot *bot.Bot
}

// NewWebhookHandler creates a new WebhookHandler. bot may be nil when
// Telegram is not configured; updates are then acknowledged and
// discarded so Telegram stops retrying them.
func NewWebhookHandler(b *bot.Bot) *WebhookHandler {
	return &WebhookHandler{
		bot: b,
	}
}

// RegisterRoutes registers the webhook route on the app root.
func (h *WebhookHandler) RegisterRoutes(router fiber.Router) {
	router.Post("/bot-webhook", h.HandleUpdate)
}

// HandleUpdate processes one webhook delivery.
func (h *WebhookHandler) HandleUpdate(c *fiber.Ctx) error {
	var update telegram.Update
	if err := c.BodyParser(&update); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Invalid update payload",
		})
	}

	if h.bot == nil {
		return c.JSON(fiber.Map{"ok": true})
	}

	if err := h.bot.HandleUpdate(update); err != nil {
		log.Printf("Error handling webhook update %d: %v", update.UpdateID, err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"message": "Failed to process update",
		})
	}
	return c.JSON(fiber.Map{"ok": true})
}
