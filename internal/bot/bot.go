// Package bot implements the order confirmation workflow over Telegram.
//
// New orders are announced to the operator chat; the customer opens the
// bot through a deep link carrying the order's confirmation token,
// reviews the summary and confirms or cancels with inline buttons. For
// online payment methods the bot offers payment sub-views before the
// final choice; only confirm and cancel ever change order state.
package bot

import (
	"fmt"
	"log"
	"strconv"

	"parrotshop/internal/models"
	"parrotshop/internal/services"
	"parrotshop/pkg/telegram"
)

// API is the subset of the Telegram client the workflow uses.
type API interface {
	SendMessage(chatID, text string) error
	SendMessageWithKeyboard(chatID, text string, buttons [][]telegram.InlineButton) error
	EditMessageText(chatID string, messageID int64, text string, buttons [][]telegram.InlineButton) error
	SendPhoto(chatID, photoURL, caption string) error
	AnswerCallbackQuery(callbackQueryID string) error
}

// Config holds the bot's chat and link settings.
type Config struct {
	AdminChatID string // operator chat that receives order notices
	BotUsername string // used to build deep links
	BaseURL     string // public site URL for payment links
}

// Bot dispatches Telegram updates to the confirmation workflow.
type Bot struct {
	api    API
	orders *services.OrderService
	cfg    Config
}

// New creates a new Bot.
func New(api API, orders *services.OrderService, cfg Config) *Bot {
	return &Bot{
		api:    api,
		orders: orders,
		cfg:    cfg,
	}
}

// DeepLink returns the t.me link that opens the bot on a given order.
func (b *Bot) DeepLink(token string) string {
	if token == "" {
		return fmt.Sprintf("https://t.me/%s", b.cfg.BotUsername)
	}
	return fmt.Sprintf("https://t.me/%s?start=%s", b.cfg.BotUsername, token)
}

// HandleUpdate processes one incoming update, from either the webhook
// or the polling loop.
func (b *Bot) HandleUpdate(update telegram.Update) error {
	if update.CallbackQuery != nil {
		return b.handleCallback(update.CallbackQuery)
	}
	if update.Message != nil {
		return b.handleMessage(update.Message)
	}
	return nil
}

func (b *Bot) handleMessage(msg *telegram.Message) error {
	chatID := strconv.FormatInt(msg.Chat.ID, 10)

	cmd := ParseMessage(msg.Text)
	switch cmd.Kind {
	case CmdStart:
		if cmd.Token != "" {
			return b.showOrder(chatID, cmd.Token)
		}
		return b.api.SendMessage(chatID,
			"👋 Добро пожаловать в магазин товаров для попугаев!\n\n"+
				"Здесь вы можете подтвердить свои заказы и общаться с нами.\n\n"+
				"Для подтверждения заказа перейдите по ссылке из письма или сайта.")
	default:
		return b.api.SendMessage(chatID,
			"Спасибо за сообщение! Наш менеджер скоро с вами свяжется.\n\n"+
				"Для подтверждения заказа используйте ссылку из письма или сайта.")
	}
}

func (b *Bot) handleCallback(cb *telegram.CallbackQuery) error {
	if cb.Message == nil {
		return nil
	}
	chatID := strconv.FormatInt(cb.Message.Chat.ID, 10)
	messageID := cb.Message.MessageID

	var err error
	cmd := ParseCallback(cb.Data)
	switch cmd.Kind {
	case CmdConfirm:
		err = b.confirmOrder(chatID, messageID, cmd.Token)
	case CmdCancel:
		err = b.cancelOrder(chatID, messageID, cmd.Token)
	case CmdShowCardPayment:
		err = b.showCardPayment(chatID, messageID, cmd.Token)
	case CmdShowQRPayment:
		err = b.showQRPayment(chatID, messageID, cmd.Token)
	case CmdSendPaymentLink:
		err = b.sendPaymentLink(chatID, cmd.Token)
	case CmdBack:
		err = b.showOrder(chatID, cmd.Token)
	default:
		log.Printf("Unknown callback data: %q", cb.Data)
	}

	// Always release the button's loading state, even after a failed
	// action.
	if ackErr := b.api.AnswerCallbackQuery(cb.ID); ackErr != nil {
		log.Printf("Failed to answer callback query: %v", ackErr)
	}
	return err
}

// showOrder presents the order summary with the buttons appropriate for
// its payment method. A presentation-only operation: no state changes.
func (b *Bot) showOrder(chatID, token string) error {
	order, err := b.orders.GetOrderByToken(token)
	if err != nil {
		return b.api.SendMessage(chatID,
			"❌ Заказ не найден. Проверьте ссылку или обратитесь в поддержку.")
	}

	if order.Confirmed {
		return b.api.SendMessage(chatID, fmt.Sprintf(
			"✅ Заказ #%s уже подтвержден!\n\nСтатус: %s\nСумма: %s\n\nЕсли у вас есть вопросы, напишите нам здесь.",
			order.OrderNumber, statusText(order.Status), formatRub(order.Total)))
	}

	text := fmt.Sprintf(
		"🛒 <b>Заказ #%s</b>\n\n👤 %s\n📱 %s\n💰 %s\n🚚 %s%s\n💳 %s\n\nПодтвердите заказ, чтобы мы начали его обработку:",
		order.OrderNumber, order.CustomerName, order.CustomerPhone,
		formatRub(order.Total), deliveryText(order.DeliveryMethod),
		addressLine(order), paymentText(order.PaymentMethod))

	return b.api.SendMessageWithKeyboard(chatID, text, b.orderKeyboard(order, token))
}

// orderKeyboard picks the inline buttons for the order's payment method:
// online methods get a payment sub-view first, cash goes straight to
// confirm/cancel.
func (b *Bot) orderKeyboard(order *models.Order, token string) [][]telegram.InlineButton {
	switch order.PaymentMethod {
	case models.PaymentCardOnline:
		return [][]telegram.InlineButton{
			{{Text: "💳 Оплатить картой", CallbackData: cbPayCard + token}},
			{{Text: "❌ Отменить заказ", CallbackData: cbCancel + token}},
		}
	case models.PaymentSBP:
		return [][]telegram.InlineButton{
			{{Text: "📱 Оплатить по QR-коду", CallbackData: cbPayQR + token}},
			{{Text: "❌ Отменить заказ", CallbackData: cbCancel + token}},
		}
	default:
		return [][]telegram.InlineButton{{
			{Text: "✅ Подтвердить заказ", CallbackData: cbConfirm + token},
			{Text: "❌ Отменить", CallbackData: cbCancel + token},
		}}
	}
}

func (b *Bot) confirmOrder(chatID string, messageID int64, token string) error {
	order, changed, err := b.orders.ConfirmByToken(token)
	if err != nil {
		return b.api.SendMessage(chatID, "❌ Ошибка подтверждения заказа.")
	}

	if !changed {
		// Idempotent replay: report the current state without touching
		// the order.
		return b.api.EditMessageText(chatID, messageID, fmt.Sprintf(
			"✅ <b>Заказ #%s уже подтвержден!</b>\n\nСтатус: %s",
			order.OrderNumber, statusText(order.Status)), nil)
	}

	if err := b.api.EditMessageText(chatID, messageID, fmt.Sprintf(
		"✅ <b>Заказ #%s подтвержден!</b>\n\n"+
			"Спасибо! Мы начали обработку вашего заказа.\n"+
			"Наш менеджер свяжется с вами для уточнения деталей.\n\n"+
			"Если у вас есть вопросы, пишите прямо сюда.",
		order.OrderNumber), nil); err != nil {
		log.Printf("Failed to edit confirmation message: %v", err)
	}

	b.notifyAdmin(fmt.Sprintf(
		"✅ <b>Заказ #%s подтвержден клиентом!</b>\n\n👤 %s\n📱 %s",
		order.OrderNumber, order.CustomerName, order.CustomerPhone))
	return nil
}

func (b *Bot) cancelOrder(chatID string, messageID int64, token string) error {
	order, changed, err := b.orders.CancelByToken(token)
	if err != nil {
		return b.api.SendMessage(chatID, "❌ Ошибка отмены заказа.")
	}

	if !changed {
		return b.api.EditMessageText(chatID, messageID, fmt.Sprintf(
			"Заказ #%s уже обработан.\n\nСтатус: %s",
			order.OrderNumber, statusText(order.Status)), nil)
	}

	if err := b.api.EditMessageText(chatID, messageID, fmt.Sprintf(
		"❌ <b>Заказ #%s отменен</b>\n\nЕсли вы передумали, свяжитесь с нами:\n📱 %s",
		order.OrderNumber, order.CustomerPhone), nil); err != nil {
		log.Printf("Failed to edit cancellation message: %v", err)
	}

	b.notifyAdmin(fmt.Sprintf(
		"❌ <b>Заказ #%s отменен клиентом</b>\n\n👤 %s\n📱 %s",
		order.OrderNumber, order.CustomerName, order.CustomerPhone))
	return nil
}

// showCardPayment is a presentation variant over the token; it never
// mutates order state.
func (b *Bot) showCardPayment(chatID string, messageID int64, token string) error {
	order, err := b.orders.GetOrderByToken(token)
	if err != nil {
		return b.api.SendMessage(chatID, "❌ Ошибка загрузки заказа.")
	}

	text := fmt.Sprintf(
		"💳 <b>Оплата картой</b>\n\nЗаказ: #%s\nСумма: <b>%s</b>\n\n"+
			"Нажмите кнопку ниже чтобы получить ссылку на оплату\n\n"+
			"<i>Ваши данные защищены по стандарту PCI DSS</i>",
		order.OrderNumber, formatRub(order.Total))

	return b.api.EditMessageText(chatID, messageID, text, [][]telegram.InlineButton{
		{{Text: "💳 Получить ссылку на оплату", CallbackData: cbPaymentLink + token}},
		{{Text: "◀️ Назад к заказу", CallbackData: cbBack + token}},
	})
}

func (b *Bot) sendPaymentLink(chatID, token string) error {
	order, err := b.orders.GetOrderByToken(token)
	if err != nil {
		return b.api.SendMessage(chatID, "❌ Ошибка загрузки заказа.")
	}

	paymentURL := fmt.Sprintf("%s/payment.html?order=%s&amount=%d",
		b.cfg.BaseURL, order.OrderNumber, order.Total)

	return b.api.SendMessage(chatID, fmt.Sprintf(
		"💳 <b>Ссылка для оплаты заказа #%s</b>\n\nСумма: <b>%s</b>\n\n"+
			"Откройте ссылку в браузере:\n%s\n\n"+
			"После успешной оплаты заказ будет автоматически подтвержден.",
		order.OrderNumber, formatRub(order.Total), paymentURL))
}

func (b *Bot) showQRPayment(chatID string, messageID int64, token string) error {
	order, err := b.orders.GetOrderByToken(token)
	if err != nil {
		return b.api.SendMessage(chatID, "❌ Ошибка загрузки заказа.")
	}

	text := fmt.Sprintf(
		"📱 <b>Оплата по QR-коду СБП</b>\n\nЗаказ: #%s\nСумма: <b>%s</b>\n\n"+
			"1️⃣ Откройте приложение вашего банка\n"+
			"2️⃣ Найдите раздел \"Оплата по QR\"\n"+
			"3️⃣ Наведите камеру на QR-код ниже\n"+
			"4️⃣ Подтвердите платеж\n\n"+
			"<i>После оплаты заказ будет автоматически подтвержден</i>",
		order.OrderNumber, formatRub(order.Total))

	if err := b.api.EditMessageText(chatID, messageID, text, [][]telegram.InlineButton{
		{{Text: "◀️ Назад к заказу", CallbackData: cbBack + token}},
	}); err != nil {
		log.Printf("Failed to edit QR payment message: %v", err)
	}

	qrCodeURL := fmt.Sprintf(
		"https://api.qrserver.com/v1/create-qr-code/?size=300x300&data=https://sbp.example.com/pay/%s",
		token)
	return b.api.SendPhoto(chatID, qrCodeURL, fmt.Sprintf(
		"QR-код для оплаты заказа #%s\n\n💰 Сумма: %s",
		order.OrderNumber, formatRub(order.Total)))
}

// OrderCreated implements services.OrderNotifier: it posts the new-order
// summary to the operator chat.
func (b *Bot) OrderCreated(order *models.Order, products map[uint]models.Product) error {
	if b.cfg.AdminChatID == "" {
		return nil
	}
	return b.api.SendMessage(b.cfg.AdminChatID, FormatOrderMessage(order, products))
}

// notifyAdmin posts a notice to the operator chat, best-effort.
func (b *Bot) notifyAdmin(text string) {
	if b.cfg.AdminChatID == "" {
		return
	}
	if err := b.api.SendMessage(b.cfg.AdminChatID, text); err != nil {
		log.Printf("Failed to notify operator chat: %v", err)
	}
}
